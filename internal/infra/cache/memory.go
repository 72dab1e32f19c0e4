package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache кэш дня в памяти процесса
// Значения хранятся сериализованными, чтобы вызывающие не делили срезы
type MemoryCache struct {
	mu    sync.Mutex
	store *gocache.Cache
	ttl   time.Duration
}

// NewMemoryCache создает кэш в памяти
func NewMemoryCache(ttl, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		store: gocache.New(ttl, cleanupInterval),
		ttl:   ttl,
	}
}

func (c *MemoryCache) Generation(_ context.Context, doctorID, date string) (int64, error) {
	return c.generation(doctorID, date), nil
}

func (c *MemoryCache) generation(doctorID, date string) int64 {
	value, ok := c.store.Get(generationKey(doctorID, date))
	if !ok {
		return 0
	}
	gen, _ := value.(int64)
	return gen
}

func (c *MemoryCache) GetDay(_ context.Context, scope, doctorID, date string) (*DayData, bool, error) {
	value, ok := c.store.Get(dayKey(scope, doctorID, date))
	if !ok {
		return nil, false, nil
	}

	raw, ok := value.([]byte)
	if !ok {
		return nil, false, fmt.Errorf("%w: unexpected value type %T", ErrDecode, value)
	}

	var data DayData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if data.Generation != c.generation(doctorID, date) {
		return nil, false, nil
	}
	return &data, true, nil
}

func (c *MemoryCache) SetDay(_ context.Context, scope, doctorID, date string, data DayData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	c.store.Set(dayKey(scope, doctorID, date), raw, c.ttl)
	return nil
}

func (c *MemoryCache) InvalidateDay(_ context.Context, doctorID, date string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store.Set(generationKey(doctorID, date), c.generation(doctorID, date)+1, c.ttl)
	return nil
}
