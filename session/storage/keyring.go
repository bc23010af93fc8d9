package storage

import (
	"context"
	"errors"

	"github.com/zalando/go-keyring"
)

// DefaultKeyringService is the keyring service used when none is given.
const DefaultKeyringService = "soup-market"

// Keyring stores values in the OS keyring, one keyring user per key.
type Keyring struct {
	Service string
}

func (k *Keyring) Get(_ context.Context, key string) (string, bool, error) {
	value, err := keyring.Get(k.Service, key)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (k *Keyring) Set(_ context.Context, key, value string) error {
	return keyring.Set(k.Service, key, value)
}

func (k *Keyring) Remove(_ context.Context, key string) error {
	if err := keyring.Delete(k.Service, key); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return err
	}
	return nil
}

// NewKeyring creates a keyring storage for the given service.
func NewKeyring(service string) *Keyring {
	if service == "" {
		service = DefaultKeyringService
	}
	return &Keyring{Service: service}
}
