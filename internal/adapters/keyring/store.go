// Package keyring stores gateway passwords in the operating system keychain.
package keyring

import (
	"errors"
	"fmt"
	"sync"

	"github.com/99designs/keyring"

	cperrors "cpgate/internal/errors"
)

// DefaultServiceName is the keychain service under which passwords are stored.
const DefaultServiceName = "cpgate"

// Store is a SecretStore backed by the platform keyring. The keyring is
// opened lazily on first use so commands that never need a password do not
// trigger an unlock prompt.
type Store struct {
	open func() (keyring.Keyring, error)

	once sync.Once
	ring keyring.Keyring
	err  error
}

// New creates a store for the given keychain service name.
func New(serviceName string) *Store {
	return &Store{
		open: func() (keyring.Keyring, error) {
			return keyring.Open(keyring.Config{
				ServiceName: serviceName,
				AllowedBackends: []keyring.BackendType{
					keyring.KeychainBackend,      // macOS Keychain
					keyring.SecretServiceBackend, // Linux Secret Service (GNOME Keyring, KWallet)
					keyring.WinCredBackend,       // Windows Credential Manager
					keyring.PassBackend,          // Pass (password-store.org)
				},
			})
		},
	}
}

// NewWithKeyring wraps an already opened keyring.
func NewWithKeyring(ring keyring.Keyring) *Store {
	return &Store{
		open: func() (keyring.Keyring, error) { return ring, nil },
	}
}

func (s *Store) openRing() (keyring.Keyring, error) {
	s.once.Do(func() {
		s.ring, s.err = s.open()
	})
	if s.err != nil {
		return nil, fmt.Errorf("failed to open keyring: %w", s.err)
	}
	return s.ring, nil
}

// Get returns the secret stored under key. A missing entry yields an error
// matching errors.ErrNotFound.
func (s *Store) Get(key string) (string, error) {
	ring, err := s.openRing()
	if err != nil {
		return "", err
	}

	item, err := ring.Get(key)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", fmt.Errorf("no password stored for '%s': %w", key, cperrors.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to retrieve password: %w", err)
	}
	return string(item.Data), nil
}

// Set stores value under key, replacing any previous entry.
func (s *Store) Set(key, value string) error {
	ring, err := s.openRing()
	if err != nil {
		return err
	}

	return ring.Set(keyring.Item{
		Key:         key,
		Data:        []byte(value),
		Label:       DefaultServiceName + " " + key,
		Description: "Client Portal Gateway password",
	})
}

// Remove deletes the entry stored under key.
func (s *Store) Remove(key string) error {
	ring, err := s.openRing()
	if err != nil {
		return err
	}

	err = ring.Remove(key)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return fmt.Errorf("no password stored for '%s': %w", key, cperrors.ErrNotFound)
	}
	return err
}
