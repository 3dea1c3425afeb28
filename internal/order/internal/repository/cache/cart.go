package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/gamestore/internal/order/internal/domain"
	"github.com/redis/go-redis/v9"
)

// ErrKeyNotExist 目前只有 redis 一个实现, 直接用别名
var ErrKeyNotExist = redis.Nil

//go:generate mockgen -source=./cart.go -package=cachemocks -destination=mocks/cart.mock.go CartCache
type CartCache interface {
	Get(ctx context.Context, buyerID int64) ([]domain.CartItem, error)
	Set(ctx context.Context, buyerID int64, items []domain.CartItem) error
	Delete(ctx context.Context, buyerID int64) error
}

type CartECache struct {
	cache ecache.Cache
	// 过期时间
	expiration time.Duration
}

// NewCartECache 注意缓存前缀
func NewCartECache(c ecache.Cache) CartCache {
	return &CartECache{
		cache: &ecache.NamespaceCache{
			Namespace: "cart:",
			C:         c,
		},
		expiration: time.Minute * 20,
	}
}

func (cache *CartECache) Get(ctx context.Context, buyerID int64) ([]domain.CartItem, error) {
	var items []domain.CartItem
	err := cache.cache.Get(ctx, cache.key(buyerID)).JSONScan(&items)
	return items, err
}

func (cache *CartECache) Set(ctx context.Context, buyerID int64, items []domain.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return cache.cache.Set(ctx, cache.key(buyerID), data, cache.expiration)
}

func (cache *CartECache) Delete(ctx context.Context, buyerID int64) error {
	_, err := cache.cache.Delete(ctx, cache.key(buyerID))
	return err
}

func (cache *CartECache) key(buyerID int64) string {
	return fmt.Sprintf("gamestore:cart:items:%d", buyerID)
}
