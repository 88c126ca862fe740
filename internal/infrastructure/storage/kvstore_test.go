package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"medicita/pkg/apperror"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   string `json:"id"`
	Name string `json:"nombre"`
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func backends(t *testing.T) map[string]KeyValueStore {
	t.Helper()

	sqliteStore, err := NewSQLiteStore(filepath.Join(t.TempDir(), "nested", "kv.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqliteStore.Close() })

	return map[string]KeyValueStore{
		"memory": NewMemoryStore(),
		"sqlite": sqliteStore,
	}
}

func TestStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()

	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get(ctx, "missing")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, store.Set(ctx, "k", []byte(`[1]`)))
			require.NoError(t, store.Set(ctx, "k", []byte(`[1,2]`)))

			got, err := store.Get(ctx, "k")
			require.NoError(t, err)
			assert.JSONEq(t, `[1,2]`, string(got))

			require.NoError(t, store.Delete(ctx, "k"))
			_, err = store.Get(ctx, "k")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, store.Delete(ctx, "never-set"))
		})
	}
}

func TestRead_FallbackOnMissingCorruptAndNull(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	fallback := []item{}

	assert.Equal(t, fallback, Read(ctx, quietLogger(), store, "doctors", fallback))

	require.NoError(t, store.Set(ctx, "doctors", []byte(`{not json`)))
	assert.Equal(t, fallback, Read(ctx, quietLogger(), store, "doctors", fallback))

	require.NoError(t, store.Set(ctx, "doctors", []byte(`null`)))
	assert.Equal(t, fallback, Read(ctx, quietLogger(), store, "doctors", fallback))

	require.NoError(t, store.Set(ctx, "doctors", []byte(`{"id":"x"}`)))
	assert.Equal(t, fallback, Read(ctx, quietLogger(), store, "doctors", fallback), "object where array expected")
}

func TestReadWrite_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	items := []item{{ID: "doc_1", Name: "Dra. Sofía Pérez"}, {ID: "doc_2", Name: "Dr. Luis García"}}

	require.NoError(t, Write(ctx, store, KeyDoctors, items))

	raw, err := store.Get(ctx, KeyDoctors)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"doc_1","nombre":"Dra. Sofía Pérez"},{"id":"doc_2","nombre":"Dr. Luis García"}]`, string(raw))
	assert.Equal(t, items, Read[[]item](ctx, quietLogger(), store, KeyDoctors, nil))
}

type failingStore struct{ MemoryStore }

func (f *failingStore) Set(context.Context, string, []byte) error { return errors.New("quota exceeded") }
func (f *failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("backend down")
}

func TestWrite_FailureIsStorageError(t *testing.T) {
	err := Write(context.Background(), &failingStore{}, KeyCitas, []item{})

	require.Error(t, err)
	assert.True(t, apperror.IsType(err, apperror.TypeStorage))
}

func TestRead_BackendErrorYieldsFallback(t *testing.T) {
	got := Read(context.Background(), quietLogger(), &failingStore{}, KeyCitas, []item{{ID: "fallback"}})

	assert.Equal(t, []item{{ID: "fallback"}}, got)
}

func TestLoad_BackendErrorIsStorageError(t *testing.T) {
	got, err := Load(context.Background(), quietLogger(), &failingStore{}, KeyCitas, []item{})

	require.Error(t, err)
	assert.True(t, apperror.IsType(err, apperror.TypeStorage))
	assert.Empty(t, got)
}

func TestLoad_MissingNullAndCorruptAreNotErrors(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	got, err := Load(ctx, quietLogger(), store, KeyDoctors, []item{})
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, store.Set(ctx, KeyDoctors, []byte(`null`)))
	_, err = Load(ctx, quietLogger(), store, KeyDoctors, []item{})
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, KeyDoctors, []byte(`[{"id":`)))
	got, err = Load(ctx, quietLogger(), store, KeyDoctors, []item{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRead_WarnsThroughInjectedLogger(t *testing.T) {
	ctx := context.Background()
	log, hook := logtest.NewNullLogger()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, KeyDoctors, []byte(`{not json`)))

	Read(ctx, log, store, KeyDoctors, []item{})
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, KeyDoctors, hook.LastEntry().Data["key"])

	hook.Reset()
	Read(ctx, log, &failingStore{}, KeyCitas, []item{})
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, KeyCitas, hook.LastEntry().Data["key"])
}

func TestWithPrefix(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore()
	store := WithPrefix(inner, "med_")

	require.NoError(t, store.Set(ctx, KeyUsers, []byte(`[]`)))

	_, err := inner.Get(ctx, "med_users")
	assert.NoError(t, err)
	_, err = inner.Get(ctx, "users")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Same(t, inner, WithPrefix(inner, ""))
}
