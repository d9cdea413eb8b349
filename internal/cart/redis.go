package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/holyweird/storefront/internal/redisx"
)

// RedisStore keeps carts in Redis so they survive restarts and are
// shared across API instances.
type RedisStore struct{ RDB *redis.Client }

func (s *RedisStore) Load(ctx context.Context, cartID string) (Cart, error) {
	key := fmt.Sprintf(redisx.KeyCart, cartID)
	b, err := s.RDB.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return Cart{}, nil
	}
	if err != nil {
		return Cart{}, err
	}
	return decode(b), nil
}

func (s *RedisStore) Save(ctx context.Context, cartID string, c Cart) error {
	b, err := json.Marshal(c)
	if err != nil {
		return err
	}
	key := fmt.Sprintf(redisx.KeyCart, cartID)
	return s.RDB.Set(ctx, key, b, redisx.TTLCart).Err()
}
