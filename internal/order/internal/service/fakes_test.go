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
	"sort"
	"time"

	"github.com/ecodeclub/gamestore/internal/order/internal/domain"
	"github.com/ecodeclub/gamestore/internal/order/internal/repository/dao"
	"github.com/ecodeclub/gamestore/internal/product"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// fakeOrderRepository 内存版 OrderRepository, 供单元测试使用
type fakeOrderRepository struct {
	nextID int64
	orders map[int64]domain.Order
	// orderID -> gameID -> item
	items map[int64]map[int64]domain.OrderItem
	cache map[int64][]domain.CartItem
}

func newFakeOrderRepository() *fakeOrderRepository {
	return &fakeOrderRepository{
		orders: make(map[int64]domain.Order),
		items:  make(map[int64]map[int64]domain.OrderItem),
		cache:  make(map[int64][]domain.CartItem),
	}
}

func (f *fakeOrderRepository) FindOrCreateCart(_ context.Context, buyerID int64, sn string) (domain.Order, error) {
	for _, o := range f.orders {
		if o.BuyerID == buyerID && o.Status == domain.StatusOpen {
			return o, nil
		}
	}
	f.nextID++
	o := domain.Order{
		ID:      f.nextID,
		SN:      sn,
		BuyerID: buyerID,
		Status:  domain.StatusOpen,
		Ctime:   time.Now().UnixMilli(),
	}
	f.orders[o.ID] = o
	return o, nil
}

func (f *fakeOrderRepository) FindCartByBuyerID(_ context.Context, buyerID int64) (domain.Order, error) {
	for _, o := range f.orders {
		if o.BuyerID == buyerID && o.Status == domain.StatusOpen {
			return f.attachItems(o), nil
		}
	}
	return domain.Order{}, gorm.ErrRecordNotFound
}

func (f *fakeOrderRepository) FindOrderByID(_ context.Context, id int64) (domain.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return domain.Order{}, gorm.ErrRecordNotFound
	}
	return f.attachItems(o), nil
}

func (f *fakeOrderRepository) FindOrderByUIDAndSN(_ context.Context, buyerID int64, sn string) (domain.Order, error) {
	for _, o := range f.orders {
		if o.BuyerID == buyerID && o.SN == sn {
			return f.attachItems(o), nil
		}
	}
	return domain.Order{}, gorm.ErrRecordNotFound
}

func (f *fakeOrderRepository) ListOrders(_ context.Context, buyerID int64, offset, limit int) ([]domain.Order, error) {
	var res []domain.Order
	for _, o := range f.orders {
		if o.BuyerID == buyerID {
			res = append(res, o)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	if offset >= len(res) {
		return nil, nil
	}
	end := offset + limit
	if end > len(res) {
		end = len(res)
	}
	return res[offset:end], nil
}

func (f *fakeOrderRepository) TotalOrders(_ context.Context, buyerID int64) (int64, error) {
	var total int64
	for _, o := range f.orders {
		if o.BuyerID == buyerID {
			total++
		}
	}
	return total, nil
}

func (f *fakeOrderRepository) AddItem(_ context.Context, item domain.OrderItem) error {
	m, ok := f.items[item.OrderID]
	if !ok {
		m = make(map[int64]domain.OrderItem)
		f.items[item.OrderID] = m
	}
	if old, ok := m[item.GameID]; ok {
		old.Quantity += item.Quantity
		m[item.GameID] = old
		return nil
	}
	m[item.GameID] = item
	return nil
}

func (f *fakeOrderRepository) FindItem(_ context.Context, orderID, gameID int64) (domain.OrderItem, error) {
	it, ok := f.items[orderID][gameID]
	if !ok {
		return domain.OrderItem{}, gorm.ErrRecordNotFound
	}
	return it, nil
}

func (f *fakeOrderRepository) UpdateItemQuantity(_ context.Context, orderID, gameID, quantity int64) error {
	it, ok := f.items[orderID][gameID]
	if !ok {
		return nil
	}
	it.Quantity = quantity
	f.items[orderID][gameID] = it
	return nil
}

func (f *fakeOrderRepository) RemoveItem(_ context.Context, orderID, gameID int64) error {
	if _, ok := f.items[orderID][gameID]; !ok {
		return dao.ErrItemNotFound
	}
	delete(f.items[orderID], gameID)
	return nil
}

func (f *fakeOrderRepository) CountItems(_ context.Context, orderID int64) (int64, error) {
	return int64(len(f.items[orderID])), nil
}

func (f *fakeOrderRepository) DeleteOrder(_ context.Context, orderID int64) error {
	delete(f.orders, orderID)
	delete(f.items, orderID)
	return nil
}

func (f *fakeOrderRepository) MarkPaid(_ context.Context, orderID int64) error {
	return f.transition(orderID, domain.StatusOpen, domain.StatusPaid)
}

func (f *fakeOrderRepository) MarkCancelled(_ context.Context, orderID int64) error {
	return f.transition(orderID, domain.StatusOpen, domain.StatusCancelled)
}

func (f *fakeOrderRepository) MarkShipped(_ context.Context, orderID int64) error {
	return f.transition(orderID, domain.StatusPaid, domain.StatusShipped)
}

func (f *fakeOrderRepository) transition(orderID int64, from, to domain.OrderStatus) error {
	o, ok := f.orders[orderID]
	if !ok || o.Status != from {
		return dao.ErrInvalidStatus
	}
	o.Status = to
	now := time.Now().UnixMilli()
	switch to {
	case domain.StatusPaid:
		o.PaidAt = now
	case domain.StatusCancelled:
		o.CancelledAt = now
	case domain.StatusShipped:
		o.ShippedAt = now
	}
	f.orders[orderID] = o
	return nil
}

func (f *fakeOrderRepository) GetCachedCart(_ context.Context, buyerID int64) ([]domain.CartItem, error) {
	items, ok := f.cache[buyerID]
	if !ok {
		return nil, redis.Nil
	}
	return items, nil
}

func (f *fakeOrderRepository) CacheCart(_ context.Context, buyerID int64, items []domain.CartItem) error {
	f.cache[buyerID] = items
	return nil
}

func (f *fakeOrderRepository) ClearCartCache(_ context.Context, buyerID int64) error {
	delete(f.cache, buyerID)
	return nil
}

func (f *fakeOrderRepository) attachItems(o domain.Order) domain.Order {
	var items []domain.OrderItem
	for _, it := range f.items[o.ID] {
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].GameID < items[j].GameID })
	o.Items = items
	return o
}

// fakeProductService 内存版商品服务
type fakeProductService struct {
	games map[string]product.Game
	// 扣减记录 gameID -> 累计数量
	decremented   map[int64]int64
	decrementErrs map[int64]error
}

func newFakeProductService(games ...product.Game) *fakeProductService {
	f := &fakeProductService{
		games:         make(map[string]product.Game),
		decremented:   make(map[int64]int64),
		decrementErrs: make(map[int64]error),
	}
	for _, g := range games {
		f.games[g.Key] = g
	}
	return f
}

func (f *fakeProductService) FindGameByKey(_ context.Context, key string) (product.Game, error) {
	g, ok := f.games[key]
	if !ok {
		return product.Game{}, gorm.ErrRecordNotFound
	}
	return g, nil
}

func (f *fakeProductService) FindGameByID(_ context.Context, id int64) (product.Game, error) {
	for _, g := range f.games {
		if g.ID == id {
			return g, nil
		}
	}
	return product.Game{}, gorm.ErrRecordNotFound
}

func (f *fakeProductService) ListGames(_ context.Context, _, _ int) ([]product.Game, int64, error) {
	return nil, 0, nil
}

func (f *fakeProductService) CreateGame(_ context.Context, _ product.Game) (int64, error) {
	return 0, nil
}

func (f *fakeProductService) DecrementStock(_ context.Context, id int64, n int64) error {
	if err, ok := f.decrementErrs[id]; ok {
		return err
	}
	f.decremented[id] += n
	return nil
}
