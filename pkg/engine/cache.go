package engine

import (
	"errors"

	lru "github.com/hashicorp/golang-lru/v2"
)

const DefaultCacheSize = 256

var (
	ErrCacheEntryNotFound            = errors.New("cache entry not found")
	ErrCacheSetOperationNotSupported = errors.New("cache set operation is not supported")
)

// QueryCache maps a raw query line to its parsed form.
type QueryCache interface {
	Get(raw string) (Query, error)
	Set(raw string, q Query) error
}

var _ QueryCache = (*MemoryQueryCache)(nil)
var _ QueryCache = (*ParserQueryCache)(nil)

type MemoryQueryCache struct {
	cache *lru.Cache[string, Query]
	src   QueryCache
}

func NewMemoryQueryCache(size int, src QueryCache) *MemoryQueryCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, _ := lru.New[string, Query](size)
	return &MemoryQueryCache{
		cache: cache,
		src:   src,
	}
}

func (mc *MemoryQueryCache) Get(raw string) (Query, error) {
	q, ok := mc.cache.Get(raw)
	if ok {
		return q, nil
	}

	if mc.src == nil {
		return q, ErrCacheEntryNotFound
	}
	q, err := mc.src.Get(raw)
	if err != nil {
		return q, err
	}
	mc.Set(raw, q)
	return q, nil
}

func (mc *MemoryQueryCache) Set(raw string, q Query) error {
	_ = mc.cache.Add(raw, q)
	return nil
}

func (mc *MemoryQueryCache) Len() int {
	return mc.cache.Len()
}

// ParserQueryCache has every query: it parses on each Get.
type ParserQueryCache struct{}

func (ParserQueryCache) Get(raw string) (Query, error) {
	return ParseQuery(raw), nil
}

func (ParserQueryCache) Set(raw string, q Query) error {
	return ErrCacheSetOperationNotSupported
}

func NewQueryCache(size int) QueryCache {
	return NewMemoryQueryCache(size, ParserQueryCache{})
}
