package lock

import (
	"context"
	"errors"
	"time"
)

// ErrNotHeld возвращается при освобождении чужой или истёкшей блокировки
var ErrNotHeld = errors.New("lock: not held")

// Locker распределённая блокировка с TTL
// Lock возвращает токен владельца и false, если блокировка уже занята
type Locker interface {
	Lock(ctx context.Context, key string, ttl time.Duration) (string, bool, error)
	Unlock(ctx context.Context, key, token string) error
}

func lockKey(key string) string {
	return "lock:" + key
}
