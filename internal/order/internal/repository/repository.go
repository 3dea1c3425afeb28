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

package repository

import (
	"context"
	"database/sql"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/gamestore/internal/order/internal/domain"
	"github.com/ecodeclub/gamestore/internal/order/internal/repository/cache"
	"github.com/ecodeclub/gamestore/internal/order/internal/repository/dao"
)

//go:generate mockgen -source=./repository.go -package=repomocks -destination=mocks/order.mock.go OrderRepository
type OrderRepository interface {
	// FindOrCreateCart 返回的订单不含行项
	FindOrCreateCart(ctx context.Context, buyerID int64, sn string) (domain.Order, error)
	FindCartByBuyerID(ctx context.Context, buyerID int64) (domain.Order, error)
	FindOrderByID(ctx context.Context, id int64) (domain.Order, error)
	FindOrderByUIDAndSN(ctx context.Context, buyerID int64, sn string) (domain.Order, error)
	ListOrders(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, error)
	TotalOrders(ctx context.Context, buyerID int64) (int64, error)

	AddItem(ctx context.Context, item domain.OrderItem) error
	FindItem(ctx context.Context, orderID, gameID int64) (domain.OrderItem, error)
	UpdateItemQuantity(ctx context.Context, orderID, gameID, quantity int64) error
	RemoveItem(ctx context.Context, orderID, gameID int64) error
	CountItems(ctx context.Context, orderID int64) (int64, error)

	DeleteOrder(ctx context.Context, orderID int64) error
	MarkPaid(ctx context.Context, orderID int64) error
	MarkCancelled(ctx context.Context, orderID int64) error
	MarkShipped(ctx context.Context, orderID int64) error

	GetCachedCart(ctx context.Context, buyerID int64) ([]domain.CartItem, error)
	CacheCart(ctx context.Context, buyerID int64, items []domain.CartItem) error
	ClearCartCache(ctx context.Context, buyerID int64) error
}

type orderRepository struct {
	dao   dao.OrderDAO
	cache cache.CartCache
}

func NewOrderRepository(d dao.OrderDAO, c cache.CartCache) OrderRepository {
	return &orderRepository{
		dao:   d,
		cache: c,
	}
}

func (r *orderRepository) FindOrCreateCart(ctx context.Context, buyerID int64, sn string) (domain.Order, error) {
	o, err := r.dao.FindOrCreateCart(ctx, buyerID, sn)
	if err != nil {
		return domain.Order{}, err
	}
	return r.toDomain(o, nil), nil
}

func (r *orderRepository) FindCartByBuyerID(ctx context.Context, buyerID int64) (domain.Order, error) {
	o, err := r.dao.FindCartByBuyerID(ctx, buyerID)
	if err != nil {
		return domain.Order{}, err
	}
	return r.withItems(ctx, o)
}

func (r *orderRepository) FindOrderByID(ctx context.Context, id int64) (domain.Order, error) {
	o, err := r.dao.FindOrderByID(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	return r.withItems(ctx, o)
}

func (r *orderRepository) FindOrderByUIDAndSN(ctx context.Context, buyerID int64, sn string) (domain.Order, error) {
	o, err := r.dao.FindOrderByUIDAndSN(ctx, buyerID, sn)
	if err != nil {
		return domain.Order{}, err
	}
	return r.withItems(ctx, o)
}

func (r *orderRepository) ListOrders(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, error) {
	os, err := r.dao.ListOrdersByUID(ctx, buyerID, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return r.toDomain(src, nil)
	}), nil
}

func (r *orderRepository) TotalOrders(ctx context.Context, buyerID int64) (int64, error) {
	return r.dao.TotalOrders(ctx, buyerID)
}

func (r *orderRepository) AddItem(ctx context.Context, item domain.OrderItem) error {
	return r.dao.UpsertOrderItem(ctx, r.toItemEntity(item))
}

func (r *orderRepository) FindItem(ctx context.Context, orderID, gameID int64) (domain.OrderItem, error) {
	it, err := r.dao.FindOrderItem(ctx, orderID, gameID)
	if err != nil {
		return domain.OrderItem{}, err
	}
	return r.toItemDomain(it), nil
}

func (r *orderRepository) UpdateItemQuantity(ctx context.Context, orderID, gameID, quantity int64) error {
	return r.dao.UpdateItemQuantity(ctx, orderID, gameID, quantity)
}

func (r *orderRepository) RemoveItem(ctx context.Context, orderID, gameID int64) error {
	return r.dao.DeleteOrderItem(ctx, orderID, gameID)
}

func (r *orderRepository) CountItems(ctx context.Context, orderID int64) (int64, error) {
	return r.dao.CountOrderItems(ctx, orderID)
}

func (r *orderRepository) DeleteOrder(ctx context.Context, orderID int64) error {
	return r.dao.DeleteOrder(ctx, orderID)
}

func (r *orderRepository) MarkPaid(ctx context.Context, orderID int64) error {
	return r.dao.MarkPaid(ctx, orderID)
}

func (r *orderRepository) MarkCancelled(ctx context.Context, orderID int64) error {
	return r.dao.MarkCancelled(ctx, orderID)
}

func (r *orderRepository) MarkShipped(ctx context.Context, orderID int64) error {
	return r.dao.MarkShipped(ctx, orderID)
}

func (r *orderRepository) GetCachedCart(ctx context.Context, buyerID int64) ([]domain.CartItem, error) {
	return r.cache.Get(ctx, buyerID)
}

func (r *orderRepository) CacheCart(ctx context.Context, buyerID int64, items []domain.CartItem) error {
	return r.cache.Set(ctx, buyerID, items)
}

func (r *orderRepository) ClearCartCache(ctx context.Context, buyerID int64) error {
	return r.cache.Delete(ctx, buyerID)
}

func (r *orderRepository) withItems(ctx context.Context, o dao.Order) (domain.Order, error) {
	items, err := r.dao.FindOrderItems(ctx, o.ID)
	if err != nil {
		return domain.Order{}, err
	}
	return r.toDomain(o, items), nil
}

func (r *orderRepository) toDomain(o dao.Order, items []dao.OrderItem) domain.Order {
	return domain.Order{
		ID:          o.ID,
		SN:          o.SN,
		BuyerID:     o.BuyerID,
		Status:      domain.OrderStatus(o.Status),
		PaidAt:      o.PaidAt,
		CancelledAt: o.CancelledAt,
		ShippedAt:   o.ShippedAt,
		Items: slice.Map(items, func(idx int, src dao.OrderItem) domain.OrderItem {
			return r.toItemDomain(src)
		}),
		Ctime: o.Ctime,
		Utime: o.Utime,
	}
}

func (r *orderRepository) toItemDomain(it dao.OrderItem) domain.OrderItem {
	var discount *int64
	if it.Discount.Valid {
		d := it.Discount.Int64
		discount = &d
	}
	return domain.OrderItem{
		OrderID:  it.OrderID,
		GameID:   it.GameID,
		GameName: it.GameName,
		Price:    it.Price,
		Discount: discount,
		Quantity: it.Quantity,
	}
}

func (r *orderRepository) toItemEntity(it domain.OrderItem) dao.OrderItem {
	var discount sql.NullInt64
	if it.Discount != nil {
		discount = sql.NullInt64{Int64: *it.Discount, Valid: true}
	}
	return dao.OrderItem{
		OrderID:  it.OrderID,
		GameID:   it.GameID,
		GameName: it.GameName,
		Price:    it.Price,
		Discount: discount,
		Quantity: it.Quantity,
	}
}
