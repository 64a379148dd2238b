package credentials

import (
	"fmt"

	"geochat/internal/secrets"
)

// Source yields the API key for the remote generation endpoint.
// An empty key means no credential is configured; the caller decides
// how to surface that.
type Source interface {
	APIKey() (string, error)
}

// Static always returns the same key. Used by deployments that compile
// the credential in instead of asking the user for one.
type Static struct {
	Key string
}

func (s Static) APIKey() (string, error) {
	return s.Key, nil
}

// StoreBacked reads the key from a secrets store on every call, so a
// value saved from the settings screen takes effect immediately.
type StoreBacked struct {
	Store secrets.Store
	Name  string
}

func NewStoreBacked(store secrets.Store) StoreBacked {
	return StoreBacked{Store: store, Name: secrets.KeyGeminiAPIKey}
}

func (s StoreBacked) APIKey() (string, error) {
	key, err := s.Store.Get(s.Name)
	if err != nil {
		return "", fmt.Errorf("read credential %q: %w", s.Name, err)
	}
	return key, nil
}
