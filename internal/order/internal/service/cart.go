// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/gamestore/internal/order/internal/domain"
	"github.com/ecodeclub/gamestore/internal/order/internal/repository"
	"github.com/ecodeclub/gamestore/internal/pkg/sequencenumber"
	"github.com/ecodeclub/gamestore/internal/product"
	"gorm.io/gorm"
)

var (
	// ErrGameNotFound 商品不存在或已下架
	ErrGameNotFound = errors.New("商品不存在")
	// ErrOutOfStock 商品已售罄
	ErrOutOfStock = errors.New("商品已售罄")
	// ErrNotEnoughStock 库存不足以继续加购
	ErrNotEnoughStock = errors.New("商品库存不足")
	// ErrCartEmpty 买家没有购物车订单
	ErrCartEmpty = errors.New("购物车为空")
	// ErrItemNotInCart 商品不在购物车中
	ErrItemNotInCart = errors.New("商品不在购物车中")
)

//go:generate mockgen -source=./cart.go -package=svcmocks -destination=mocks/cart.mock.go CartService
type CartService interface {
	// AddToCart 加购一件商品, 重复加购累加数量
	AddToCart(ctx context.Context, buyerID int64, gameKey string) (domain.Order, error)
	// RemoveFromCart 减购一件商品, 数量减到零删除行项, 最后一个行项删除后整单删除
	RemoveFromCart(ctx context.Context, buyerID int64, gameKey string) error
	// GetCart 购物车读模型, 缓存优先, 没有购物车返回空切片
	GetCart(ctx context.Context, buyerID int64) ([]domain.CartItem, error)
	ClearCartCache(ctx context.Context, buyerID int64) error
}

type cartService struct {
	repo        repository.OrderRepository
	productSvc  product.Service
	snGenerator *sequencenumber.Generator
}

func NewCartService(repo repository.OrderRepository,
	productSvc product.Service,
	snGenerator *sequencenumber.Generator) CartService {
	return &cartService{
		repo:        repo,
		productSvc:  productSvc,
		snGenerator: snGenerator,
	}
}

func (s *cartService) AddToCart(ctx context.Context, buyerID int64, gameKey string) (domain.Order, error) {
	game, err := s.productSvc.FindGameByKey(ctx, gameKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Order{}, ErrGameNotFound
		}
		return domain.Order{}, err
	}
	if game.Stock <= 0 {
		return domain.Order{}, ErrOutOfStock
	}

	sn, err := s.snGenerator.Generate(buyerID)
	if err != nil {
		return domain.Order{}, err
	}
	order, err := s.repo.FindOrCreateCart(ctx, buyerID, sn)
	if err != nil {
		return domain.Order{}, err
	}

	item, err := s.repo.FindItem(ctx, order.ID, game.ID)
	switch {
	case err == nil:
		if item.Quantity+1 > game.Stock {
			return domain.Order{}, ErrNotEnoughStock
		}
		err = s.repo.UpdateItemQuantity(ctx, order.ID, game.ID, item.Quantity+1)
	case errors.Is(err, gorm.ErrRecordNotFound):
		// 新行项捕获加购时的价格和折扣
		err = s.repo.AddItem(ctx, domain.OrderItem{
			OrderID:  order.ID,
			GameID:   game.ID,
			GameName: game.Name,
			Price:    game.Price,
			Discount: game.Discount,
			Quantity: 1,
		})
	}
	if err != nil {
		return domain.Order{}, err
	}
	return s.refreshCart(ctx, buyerID)
}

func (s *cartService) RemoveFromCart(ctx context.Context, buyerID int64, gameKey string) error {
	order, err := s.repo.FindCartByBuyerID(ctx, buyerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCartEmpty
		}
		return err
	}
	game, err := s.productSvc.FindGameByKey(ctx, gameKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGameNotFound
		}
		return err
	}
	item, ok := slice.Find(order.Items, func(src domain.OrderItem) bool {
		return src.GameID == game.ID
	})
	if !ok {
		return ErrItemNotInCart
	}

	if item.Quantity > 1 {
		err = s.repo.UpdateItemQuantity(ctx, order.ID, game.ID, item.Quantity-1)
		if err != nil {
			return err
		}
		_, err = s.refreshCart(ctx, buyerID)
		return err
	}

	err = s.repo.RemoveItem(ctx, order.ID, game.ID)
	if err != nil {
		return err
	}
	count, err := s.repo.CountItems(ctx, order.ID)
	if err != nil {
		return err
	}
	if count == 0 {
		// 最后一个行项被移除, 购物车订单一并删除
		err = s.repo.DeleteOrder(ctx, order.ID)
		if err != nil {
			return err
		}
		return s.repo.ClearCartCache(ctx, buyerID)
	}
	_, err = s.refreshCart(ctx, buyerID)
	return err
}

func (s *cartService) GetCart(ctx context.Context, buyerID int64) ([]domain.CartItem, error) {
	items, err := s.repo.GetCachedCart(ctx, buyerID)
	if err == nil {
		return items, nil
	}
	order, err := s.repo.FindCartByBuyerID(ctx, buyerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []domain.CartItem{}, nil
		}
		return nil, err
	}
	items = s.cartItems(order)
	// 缓存失败不影响读取
	_ = s.repo.CacheCart(ctx, buyerID, items)
	return items, nil
}

func (s *cartService) ClearCartCache(ctx context.Context, buyerID int64) error {
	return s.repo.ClearCartCache(ctx, buyerID)
}

// refreshCart 重新加载购物车并刷新缓存
func (s *cartService) refreshCart(ctx context.Context, buyerID int64) (domain.Order, error) {
	order, err := s.repo.FindCartByBuyerID(ctx, buyerID)
	if err != nil {
		return domain.Order{}, err
	}
	_ = s.repo.CacheCart(ctx, buyerID, s.cartItems(order))
	return order, nil
}

func (s *cartService) cartItems(order domain.Order) []domain.CartItem {
	return slice.Map(order.Items, func(idx int, src domain.OrderItem) domain.CartItem {
		return domain.CartItem{
			GameID:   src.GameID,
			Price:    src.Price,
			Quantity: src.Quantity,
			Discount: src.Discount,
		}
	})
}
