package store

import (
	"context"
	"errors"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const cacheExpireSeconds = 60 * 10

var _ Store = (*CachedStore)(nil)

// CachedStore is a read-through, write-through freecache layer over another Store.
type CachedStore struct {
	inner Store
	cache *freecache.Cache
}

func NewCachedStore(inner Store, cacheSizeMB int) *CachedStore {
	if cacheSizeMB <= 0 {
		cacheSizeMB = 1
	}
	return &CachedStore{
		inner: inner,
		cache: freecache.NewCache(cacheSizeMB * 1024 * 1024),
	}
}

func (s *CachedStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.cache.Get([]byte(key))
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, freecache.ErrNotFound) {
		log.Warnf("cached store, get [%s]: %s", key, err)
	}

	data, err = s.inner.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	if data != nil {
		s.cacheSet(key, data)
	}

	return data, nil
}

func (s *CachedStore) Save(ctx context.Context, key string, data []byte) error {
	if err := s.inner.Save(ctx, key, data); err != nil {
		// the cached value may no longer match the backend
		s.cache.Del([]byte(key))
		return err
	}
	s.cacheSet(key, data)
	return nil
}

func (s *CachedStore) cacheSet(key string, data []byte) {
	if err := s.cache.Set([]byte(key), data, cacheExpireSeconds); err != nil {
		// too large entries are served from the backend only
		log.Debugf("cached store, set [%s]: %s", key, err)
		s.cache.Del([]byte(key))
	}
}
