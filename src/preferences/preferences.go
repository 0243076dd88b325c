// Package preferences implements the key-value store where the sources keep their settings
// and the preference screens the user edits them with.
package preferences

import (
	"context"
	"fmt"
	"strings"

	"github.com/diogovalentte/tukangkomik/src/config"
	"github.com/diogovalentte/tukangkomik/src/errordefs"
	"github.com/diogovalentte/tukangkomik/src/util"
)

// Store is a key-value store for string preferences
type Store interface {
	// Get returns the value of key and whether it was found
	Get(ctx context.Context, key string) (string, bool, error)
	// Set creates or updates key
	Set(ctx context.Context, key, value string) error
	// Delete removes key, it's not an error if key doesn't exist
	Delete(ctx context.Context, key string) error
	// All returns every key and value in the store
	All(ctx context.Context) (map[string]string, error)
	Close() error
}

// Open opens the store configured in configs
func Open(configs *config.PreferencesConfigs) (Store, error) {
	contextError := fmt.Sprintf("error opening '%s' preferences store", configs.Backend)

	var store Store
	var err error
	switch configs.Backend {
	case "memory", "":
		store = NewMemoryStore()
	case "postgres":
		store, err = NewPostgresStore()
	case "sqlite":
		store, err = NewSQLiteStore(configs.SQLitePath)
	case "redis":
		store, err = NewRedisStore(configs.RedisAddress, configs.RedisPassword, configs.RedisDB)
	default:
		err = errordefs.ErrInvalidPreferencesBackend
	}
	if err != nil {
		return nil, util.AddErrorContext(contextError, err)
	}

	return store, nil
}

// ScopedStore is a Store whose keys are prefixed by a scope, like "source_123/overrideBaseUrl".
// Closing a ScopedStore doesn't close the underlying store.
type ScopedStore struct {
	store  Store
	prefix string
}

// Scoped returns a view of store with the keys prefixed by scope
func Scoped(store Store, scope string) *ScopedStore {
	return &ScopedStore{
		store:  store,
		prefix: scope + "/",
	}
}

// Get implements Store
func (s *ScopedStore) Get(ctx context.Context, key string) (string, bool, error) {
	return s.store.Get(ctx, s.prefix+key)
}

// Set implements Store
func (s *ScopedStore) Set(ctx context.Context, key, value string) error {
	return s.store.Set(ctx, s.prefix+key, value)
}

// Delete implements Store
func (s *ScopedStore) Delete(ctx context.Context, key string) error {
	return s.store.Delete(ctx, s.prefix+key)
}

// All implements Store, returning only the keys of the scope without the prefix
func (s *ScopedStore) All(ctx context.Context) (map[string]string, error) {
	all, err := s.store.All(ctx)
	if err != nil {
		return nil, err
	}

	scoped := map[string]string{}
	for key, value := range all {
		if strings.HasPrefix(key, s.prefix) {
			scoped[strings.TrimPrefix(key, s.prefix)] = value
		}
	}

	return scoped, nil
}

// Close implements Store
func (s *ScopedStore) Close() error {
	return nil
}

// GetString returns the value of key or defaultValue if key isn't set
func GetString(ctx context.Context, store Store, key, defaultValue string) (string, error) {
	value, found, err := store.Get(ctx, key)
	if err != nil {
		return defaultValue, util.AddErrorContext(fmt.Sprintf("error getting preference '%s'", key), err)
	}
	if !found {
		return defaultValue, nil
	}

	return value, nil
}

// Copy sets every key of from in to and returns how many keys were copied
func Copy(ctx context.Context, from, to Store) (int, error) {
	all, err := from.All(ctx)
	if err != nil {
		return 0, util.AddErrorContext("error listing preferences to copy", err)
	}

	copied := 0
	for key, value := range all {
		if err = to.Set(ctx, key, value); err != nil {
			return copied, util.AddErrorContext(fmt.Sprintf("error copying preference '%s'", key), err)
		}
		copied++
	}

	return copied, nil
}
