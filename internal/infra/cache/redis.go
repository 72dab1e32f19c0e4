package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache кэш дня в Redis
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache создает кэш поверх готового клиента
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Generation(ctx context.Context, doctorID, date string) (int64, error) {
	const op = "cache.RedisCache.Generation"

	gen, err := c.client.Get(ctx, generationKey(doctorID, date)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrBackend, op, err)
	}
	return gen, nil
}

func (c *RedisCache) GetDay(ctx context.Context, scope, doctorID, date string) (*DayData, bool, error) {
	const op = "cache.RedisCache.GetDay"

	values, err := c.client.MGet(ctx, generationKey(doctorID, date), dayKey(scope, doctorID, date)).Result()
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s: %v", ErrBackend, op, err)
	}
	if len(values) != 2 || values[1] == nil {
		return nil, false, nil
	}

	var gen int64
	if raw, ok := values[0].(string); ok {
		gen, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, false, fmt.Errorf("%w: %s: generation: %v", ErrDecode, op, err)
		}
	}

	raw, ok := values[1].(string)
	if !ok {
		return nil, false, fmt.Errorf("%w: %s: unexpected value type %T", ErrDecode, op, values[1])
	}

	var data DayData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, false, fmt.Errorf("%w: %s: %v", ErrDecode, op, err)
	}
	if data.Generation != gen {
		return nil, false, nil
	}

	return &data, true, nil
}

func (c *RedisCache) SetDay(ctx context.Context, scope, doctorID, date string, data DayData) error {
	const op = "cache.RedisCache.SetDay"

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncode, op, err)
	}

	if err := c.client.Set(ctx, dayKey(scope, doctorID, date), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrBackend, op, err)
	}
	return nil
}

// InvalidateDay увеличивает поколение дня, записи всех областей становятся недействительными
// Счётчик живёт не меньше TTL записей, загруженных до инвалидации
func (c *RedisCache) InvalidateDay(ctx context.Context, doctorID, date string) error {
	const op = "cache.RedisCache.InvalidateDay"

	key := generationKey(doctorID, date)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, c.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrBackend, op, err)
	}
	return nil
}
