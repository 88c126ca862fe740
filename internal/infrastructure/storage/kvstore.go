// Package storage holds the key-value persistence every repository writes
// through. A store maps string keys to JSON documents; which backend holds
// them (memory, SQLite file, Redis, Postgres) is a deployment choice.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"medicita/pkg/apperror"

	"github.com/sirupsen/logrus"
)

// ErrNotFound is returned by Get when the key holds no value
var ErrNotFound = errors.New("key not found")

// KeyValueStore is the persistence contract shared by all backends
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Load decodes the JSON document under key. A missing key, a JSON null or
// an undecodable document yield fallback; only a failing backend is an
// error, so callers never mistake an outage for an empty collection.
func Load[T any](ctx context.Context, log *logrus.Logger, store KeyValueStore, key string, fallback T) (T, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fallback, nil
		}
		return fallback, apperror.NewStorageError("read "+key, err)
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return fallback, nil
	}

	var value T
	if err := json.Unmarshal(trimmed, &value); err != nil {
		log.WithField("key", key).Warnf("Corrupt value, using fallback: %+v", err)
		return fallback, nil
	}
	return value, nil
}

// Read is Load for reads that must not fail: a backend error is logged and
// yields fallback as well.
func Read[T any](ctx context.Context, log *logrus.Logger, store KeyValueStore, key string, fallback T) T {
	value, err := Load(ctx, log, store, key, fallback)
	if err != nil {
		log.WithField("key", key).Warnf("Failed to read key, using fallback: %+v", err)
		return fallback
	}
	return value
}

// Write encodes value as JSON and stores it under key. Failures are
// StorageErrors and are not retried.
func Write(ctx context.Context, store KeyValueStore, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return apperror.NewStorageError("encode "+key, err)
	}
	if err := store.Set(ctx, key, data); err != nil {
		return apperror.NewStorageError("write "+key, err)
	}
	return nil
}

// Remove deletes key. Removing an absent key is not an error.
func Remove(ctx context.Context, store KeyValueStore, key string) error {
	if err := store.Delete(ctx, key); err != nil && !errors.Is(err, ErrNotFound) {
		return apperror.NewStorageError("delete "+key, err)
	}
	return nil
}

type prefixedStore struct {
	inner  KeyValueStore
	prefix string
}

// WithPrefix namespaces every key of inner, e.g. "citas" -> "med_citas".
func WithPrefix(inner KeyValueStore, prefix string) KeyValueStore {
	if prefix == "" {
		return inner
	}
	return &prefixedStore{inner: inner, prefix: prefix}
}

func (s *prefixedStore) Get(ctx context.Context, key string) ([]byte, error) {
	return s.inner.Get(ctx, s.prefix+key)
}

func (s *prefixedStore) Set(ctx context.Context, key string, value []byte) error {
	return s.inner.Set(ctx, s.prefix+key, value)
}

func (s *prefixedStore) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, s.prefix+key)
}

func (s *prefixedStore) Close() error {
	return s.inner.Close()
}
