package repository

import (
	"context"

	"medicita/internal/domain/entity"
	"medicita/internal/infrastructure/storage"

	"github.com/sirupsen/logrus"
)

// record is what every stored entity provides
type record interface {
	entity.Searchable
	GetID() string
}

// collection is one key of the store holding a JSON array of T.
// All writes go through mutate, which holds the key's lock across the
// read-modify-write.
type collection[T record] struct {
	log    *logrus.Logger
	store  storage.KeyValueStore
	locker *storage.KeyLocker
	key    string
}

func newCollection[T record](log *logrus.Logger, store storage.KeyValueStore, locker *storage.KeyLocker, key string) *collection[T] {
	return &collection[T]{log: log, store: store, locker: locker, key: key}
}

// load treats a missing or unreadable document as empty, but a failing
// backend is a StorageError.
func (c *collection[T]) load(ctx context.Context) ([]T, error) {
	return storage.Load(ctx, c.log, c.store, c.key, []T{})
}

// list returns the items in insertion order, filtered at read time
func (c *collection[T]) list(ctx context.Context, filter *entity.ListFilter) ([]T, error) {
	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if filter.Accepts(item) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (c *collection[T]) find(ctx context.Context, id string) (*T, error) {
	if id == "" {
		return nil, nil
	}
	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	if idx := indexOf(items, id); idx >= 0 {
		item := items[idx]
		return &item, nil
	}
	return nil, nil
}

// mutate aborts without writing when the current items cannot be read
func (c *collection[T]) mutate(ctx context.Context, fn func(items []T) ([]T, error)) error {
	unlock := c.locker.Lock(c.key)
	defer unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	next, err := fn(items)
	if err != nil {
		return err
	}
	return storage.Write(ctx, c.store, c.key, next)
}

// save replaces the item with the same id, or appends it when the id is
// empty or unknown. guard sees the current items and the index about to be
// replaced (-1 on create) before anything changes; assignID runs only on create.
func (c *collection[T]) save(ctx context.Context, item *T, assignID func(*T), guard func(items []T, idx int) error) (bool, error) {
	var created bool
	err := c.mutate(ctx, func(items []T) ([]T, error) {
		idx := indexOf(items, (*item).GetID())
		if guard != nil {
			if err := guard(items, idx); err != nil {
				return nil, err
			}
		}
		if idx >= 0 {
			items[idx] = *item
			return items, nil
		}
		assignID(item)
		created = true
		return append(items, *item), nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

// remove hard-deletes the item with id and reports whether it existed
func (c *collection[T]) remove(ctx context.Context, id string) (bool, error) {
	var found bool
	err := c.mutate(ctx, func(items []T) ([]T, error) {
		out := make([]T, 0, len(items))
		for _, item := range items {
			if item.GetID() == id {
				found = true
				continue
			}
			out = append(out, item)
		}
		return out, nil
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// seedIfEmpty writes defaults only when the collection has no items
func (c *collection[T]) seedIfEmpty(ctx context.Context, defaults []T) (bool, error) {
	errSkip := errNotEmpty{}
	err := c.mutate(ctx, func(items []T) ([]T, error) {
		if len(items) > 0 {
			return nil, errSkip
		}
		return append(items, defaults...), nil
	})
	if err == errSkip {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

type errNotEmpty struct{}

func (errNotEmpty) Error() string { return "collection not empty" }

func indexOf[T record](items []T, id string) int {
	if id == "" {
		return -1
	}
	for i, item := range items {
		if item.GetID() == id {
			return i
		}
	}
	return -1
}
