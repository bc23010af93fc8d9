package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Ismael0303/SOUP-Market-sub001/client/auth/mock"
	"github.com/Ismael0303/SOUP-Market-sub001/gate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	stdout := &bytes.Buffer{}
	err := Execute(context.Background(), args, stdout)
	return stdout.String(), err
}

func TestExecute(t *testing.T) {
	server := mock.NewServer(mock.WithUser("cashier", "secret"))
	defer server.Close()
	location := filepath.Join(t.TempDir(), "session.json")
	global := []string{"-u", server.URL, "-s", "file", "-l", location}
	withGlobal := func(args ...string) []string {
		return append(append([]string{}, global...), args...)
	}

	output, err := execute(t, withGlobal("status")...)
	require.NoError(t, err)
	assert.JSONEq(t, `{"url":"`+server.URL+`","authenticated":false}`, output)

	_, err = execute(t, withGlobal("create", "-r", "5")...)
	require.Error(t, err)
	assert.Equal(t, mock.DetailNotAuthenticated, err.Error())

	_, err = execute(t, withGlobal("login", "-U", "cashier", "-P", "bad")...)
	require.Error(t, err)

	output, err = execute(t, withGlobal("login", "-U", "cashier", "-P", "secret")...)
	require.NoError(t, err)
	assert.JSONEq(t, `{"url":"`+server.URL+`","authenticated":true}`, output)
	data, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"token"`)

	output, err = execute(t, withGlobal("create", "-r", "4", "-m", "tasty", "-p", "3")...)
	require.NoError(t, err)
	created := map[string]interface{}{}
	require.NoError(t, json.Unmarshal([]byte(output), &created))
	assert.EqualValues(t, 1, created["id"])
	assert.EqualValues(t, 3, created["product"])
	assert.Equal(t, "cashier", created["author"])

	_, err = execute(t, withGlobal("create", "-r", "7")...)
	require.Error(t, err)
	assert.Equal(t, "Invalid rating", err.Error())

	output, err = execute(t, withGlobal("list")...)
	require.NoError(t, err)
	var reviews []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(output), &reviews))
	assert.Len(t, reviews, 1)

	output, err = execute(t, withGlobal("get", "-i", "1")...)
	require.NoError(t, err)
	assert.Contains(t, output, `"tasty"`)

	_, err = execute(t, withGlobal("get", "-i", "5")...)
	apiErr, ok := gate.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 404, apiErr.StatusCode)

	output, err = execute(t, withGlobal("logout")...)
	require.NoError(t, err)
	assert.JSONEq(t, `{"url":"`+server.URL+`","authenticated":false}`, output)
}

func TestExecute_Config(t *testing.T) {
	server := mock.NewServer(mock.WithUser("cashier", "secret"))
	defer server.Close()
	dir := t.TempDir()
	location := filepath.Join(dir, "token.json")
	configURL := filepath.Join(dir, "posreview.yaml")
	config := "url: " + server.URL + "\nstore: file\nlocation: " + location + "\ntimeout: 5\n"
	require.NoError(t, os.WriteFile(configURL, []byte(config), 0o600))

	_, err := execute(t, "-c", configURL, "login", "-U", "cashier", "-P", "secret")
	require.NoError(t, err)
	_, err = os.Stat(location)
	assert.NoError(t, err, "token should be stored at the configured location")

	output, err := execute(t, "-c", configURL, "-s", "memory", "status")
	require.NoError(t, err)
	assert.Contains(t, output, `"authenticated": false`, "flags take precedence over config")

	_, err = execute(t, "-c", filepath.Join(dir, "missing.yaml"), "status")
	assert.Error(t, err)
}

func TestExecute_Usage(t *testing.T) {
	_, err := execute(t)
	assert.Error(t, err, "a command is required")
	_, err = execute(t, "-s", "redis", "status")
	assert.Error(t, err)
	_, err = execute(t, "get")
	assert.Error(t, err, "id is required")

	output, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, output, "login")
	output, err = execute(t, "create", "-h")
	require.NoError(t, err)
	assert.Contains(t, output, "rating")
}
