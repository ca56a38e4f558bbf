package redis

import (
	"context"
	"encoding/json"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"github.com/jimlawless/whereami"
	"github.com/shopmate-vn/go-backend/internal/cfg"
	"github.com/shopmate-vn/go-backend/internal/repository/redis/converter"
	"github.com/shopmate-vn/go-backend/internal/usecase"
	"github.com/shopmate-vn/go-backend/pkg/clients"
	"github.com/shopmate-vn/go-backend/pkg/e"
	"github.com/shopmate-vn/go-backend/pkg/logger"
)

// CacheRepo caches whole cart listings. One key per cart holds the JSON
// array of items; any mutation of the cart drops the key.
type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.CartItemConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.CartItemConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetCartItems returns the cached listing and whether the key was present.
// Corrupt payloads are dropped and reported as a miss.
func (r *CacheRepo) GetCartItems(ctx context.Context, cartID int64) ([]usecase.CartItem, bool, error) {
	key := r.cartItemsKey(cartID)

	data, err := r.client.Client.Get(ctx, key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, false, nil
		}

		return nil, false, e.Wrap(whereami.WhereAmI(), err)
	}

	var models []converter.CartItemRedisModel
	if err := json.Unmarshal(data, &models); err != nil {
		r.logger.Warnf("Redis unmarshal failed, dropping key %s: %v", key, e.Wrap(whereami.WhereAmI(), err))
		if err := r.client.Client.Del(context.Background(), key).Err(); err != nil {
			r.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}

		return nil, false, nil
	}

	return r.conv.ToArrUseCase(models), true, nil
}

// SetCartItems caches the listing with the configured TTL. Serialization and
// write errors are logged, not propagated.
func (r *CacheRepo) SetCartItems(ctx context.Context, cartID int64, items []usecase.CartItem) error {
	models := r.conv.ToArrRedisModel(items)
	if models == nil {
		models = []converter.CartItemRedisModel{}
	}

	data, err := json.Marshal(models)
	if err != nil {
		r.logger.Warnf("Failed to marshal cart items for caching (Cart ID: %d): %v", cartID, e.Wrap(whereami.WhereAmI(), err))
		return nil
	}

	if err := r.client.Client.Set(ctx, r.cartItemsKey(cartID), data, r.cfg.CartItemsTTL).Err(); err != nil {
		r.logger.Warnf("Redis SET failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

func (r *CacheRepo) DeleteCartItems(ctx context.Context, cartID int64) error {
	if err := r.client.Client.Del(ctx, r.cartItemsKey(cartID)).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (r *CacheRepo) cartItemsKey(cartID int64) string {
	return fmt.Sprintf("cart:items:%d", cartID)
}
