package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// MemoryLock блокировка в памяти процесса, для запуска без Redis
type MemoryLock struct {
	mu    sync.Mutex
	store *gocache.Cache
}

func NewMemoryLock() *MemoryLock {
	return &MemoryLock{store: gocache.New(gocache.NoExpiration, time.Minute)}
}

func (m *MemoryLock) Lock(_ context.Context, key string, ttl time.Duration) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	token := uuid.NewString()
	// Add не перезаписывает существующий неистёкший ключ
	if err := m.store.Add(lockKey(key), token, ttl); err != nil {
		return "", false, nil
	}
	return token, true, nil
}

func (m *MemoryLock) Unlock(_ context.Context, key, token string) error {
	const op = "lock.MemoryLock.Unlock"

	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.store.Get(lockKey(key))
	if !ok || current.(string) != token {
		return fmt.Errorf("%s: %w", op, ErrNotHeld)
	}

	m.store.Delete(lockKey(key))
	return nil
}
