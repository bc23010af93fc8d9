package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestStorage(t *testing.T) {
	keyring.MockInit()
	var testCases = []struct {
		description string
		storage     func(t *testing.T) Storage
	}{
		{
			description: "memory",
			storage: func(t *testing.T) Storage {
				return NewMemory()
			},
		},
		{
			description: "file",
			storage: func(t *testing.T) Storage {
				return NewFile(filepath.Join(t.TempDir(), "session.json"))
			},
		},
		{
			description: "keyring",
			storage: func(t *testing.T) Storage {
				return NewKeyring(t.Name())
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			ctx := context.Background()
			aStorage := testCase.storage(t)

			_, ok, err := aStorage.Get(ctx, "token")
			require.NoError(t, err)
			assert.False(t, ok, "empty storage should not have a value")

			require.NoError(t, aStorage.Set(ctx, "token", "abc"))
			require.NoError(t, aStorage.Set(ctx, "token", "def"))
			value, ok, err := aStorage.Get(ctx, "token")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "def", value, "latest write wins")

			require.NoError(t, aStorage.Remove(ctx, "token"))
			require.NoError(t, aStorage.Remove(ctx, "token"))
			_, ok, err = aStorage.Get(ctx, "token")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestFile_Snapshot(t *testing.T) {
	ctx := context.Background()
	location := filepath.Join(t.TempDir(), "nested", "session.json")
	writer := NewFile(location)
	require.NoError(t, writer.Set(ctx, "token", "abc"))

	data, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.JSONEq(t, `{"token":"abc"}`, string(data))

	reader := NewFile(location)
	value, ok, err := reader.Get(ctx, "token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", value)
}

func TestFile_Corrupted(t *testing.T) {
	location := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(location, []byte("{not json"), 0o600))
	_, _, err := NewFile(location).Get(context.Background(), "token")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	var testCases = []struct {
		description string
		kind        string
		location    string
		expectType  Storage
		expectErr   bool
	}{
		{description: "default", kind: "", expectType: &memory{}},
		{description: "memory", kind: KindMemory, expectType: &memory{}},
		{description: "file", kind: KindFile, location: "/tmp/session.json", expectType: &File{}},
		{description: "file without location", kind: KindFile, expectErr: true},
		{description: "keyring", kind: KindKeyring, expectType: &Keyring{}},
		{description: "unknown", kind: "redis", expectErr: true},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			actual, err := New(testCase.kind, testCase.location)
			if testCase.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, testCase.expectType, actual)
		})
	}
	_, err := New("redis", "")
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Equal(t, DefaultKeyringService, NewKeyring("").Service)
}
