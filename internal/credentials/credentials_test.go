package credentials

import (
	"errors"
	"testing"
)

type fakeStore struct {
	values map[string]string
	err    error
}

func (f fakeStore) Get(name string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.values[name], nil
}

func (f fakeStore) Set(name, value string) error { return nil }

func TestStaticSource(t *testing.T) {
	key, err := Static{Key: "compiled-in"}.APIKey()
	if err != nil || key != "compiled-in" {
		t.Fatalf("unexpected: %q, %v", key, err)
	}
}

func TestStoreBackedSource(t *testing.T) {
	src := NewStoreBacked(fakeStore{values: map[string]string{"gemini_api_key": "k1"}})
	key, err := src.APIKey()
	if err != nil || key != "k1" {
		t.Fatalf("unexpected: %q, %v", key, err)
	}

	empty := NewStoreBacked(fakeStore{values: map[string]string{}})
	key, err = empty.APIKey()
	if err != nil || key != "" {
		t.Fatalf("absent key should be empty, got %q, %v", key, err)
	}

	boom := errors.New("disk gone")
	failing := NewStoreBacked(fakeStore{err: boom})
	if _, err := failing.APIKey(); !errors.Is(err, boom) {
		t.Fatalf("store error not propagated: %v", err)
	}
}
