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
	"testing"

	"github.com/ecodeclub/gamestore/internal/order/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService() (Service, *fakeOrderRepository, *fakeProductService) {
	repo := newFakeOrderRepository()
	productSvc := newFakeProductService()
	svc := NewService(repo, productSvc)
	return svc, repo, productSvc
}

// seedOrder 直接塞一个订单进仓储
func seedOrder(repo *fakeOrderRepository, status domain.OrderStatus, items ...domain.OrderItem) int64 {
	repo.nextID++
	id := repo.nextID
	repo.orders[id] = domain.Order{
		ID:      id,
		SN:      "sn-test",
		BuyerID: testBuyerID,
		Status:  status,
	}
	m := make(map[int64]domain.OrderItem, len(items))
	for _, it := range items {
		it.OrderID = id
		m[it.GameID] = it
	}
	repo.items[id] = m
	return id
}

func TestService_CompleteOrder(t *testing.T) {
	t.Parallel()

	t.Run("逐行扣减库存并流转为已支付", func(t *testing.T) {
		t.Parallel()
		svc, repo, productSvc := newTestService()
		id := seedOrder(repo, domain.StatusOpen,
			domain.OrderItem{GameID: 1, Price: 1999, Quantity: 2},
			domain.OrderItem{GameID: 2, Price: 999, Quantity: 1},
		)
		err := svc.CompleteOrder(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPaid, repo.orders[id].Status)
		assert.NotZero(t, repo.orders[id].PaidAt)
		assert.Equal(t, int64(2), productSvc.decremented[1])
		assert.Equal(t, int64(1), productSvc.decremented[2])
	})

	t.Run("扣减失败的行跳过不阻塞", func(t *testing.T) {
		t.Parallel()
		svc, repo, productSvc := newTestService()
		productSvc.decrementErrs[1] = gorm.ErrRecordNotFound
		id := seedOrder(repo, domain.StatusOpen,
			domain.OrderItem{GameID: 1, Price: 1999, Quantity: 2},
			domain.OrderItem{GameID: 2, Price: 999, Quantity: 3},
		)
		err := svc.CompleteOrder(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPaid, repo.orders[id].Status)
		assert.Zero(t, productSvc.decremented[1])
		assert.Equal(t, int64(3), productSvc.decremented[2])
	})

	t.Run("订单不存在", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newTestService()
		err := svc.CompleteOrder(context.Background(), 999)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("已取消订单不可再支付", func(t *testing.T) {
		t.Parallel()
		svc, repo, productSvc := newTestService()
		id := seedOrder(repo, domain.StatusCancelled,
			domain.OrderItem{GameID: 1, Price: 1999, Quantity: 1},
		)
		err := svc.CompleteOrder(context.Background(), id)
		assert.ErrorIs(t, err, ErrInvalidOrderStatus)
		// 库存不会被扣减
		assert.Empty(t, productSvc.decremented)
	})
}

func TestService_CancelOrder(t *testing.T) {
	t.Parallel()

	t.Run("购物车订单取消", func(t *testing.T) {
		t.Parallel()
		svc, repo, productSvc := newTestService()
		id := seedOrder(repo, domain.StatusOpen,
			domain.OrderItem{GameID: 1, Price: 1999, Quantity: 2},
		)
		err := svc.CancelOrder(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelled, repo.orders[id].Status)
		assert.NotZero(t, repo.orders[id].CancelledAt)
		// 取消不动库存
		assert.Empty(t, productSvc.decremented)
	})

	t.Run("订单不存在", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newTestService()
		err := svc.CancelOrder(context.Background(), 999)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("已支付订单不可取消", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService()
		id := seedOrder(repo, domain.StatusPaid)
		err := svc.CancelOrder(context.Background(), id)
		assert.ErrorIs(t, err, ErrInvalidOrderStatus)
	})
}

func TestService_ShipOrder(t *testing.T) {
	t.Parallel()

	t.Run("已支付订单发货", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService()
		id := seedOrder(repo, domain.StatusPaid)
		err := svc.ShipOrder(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusShipped, repo.orders[id].Status)
		assert.NotZero(t, repo.orders[id].ShippedAt)
	})

	t.Run("购物车订单不可发货", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService()
		id := seedOrder(repo, domain.StatusOpen)
		err := svc.ShipOrder(context.Background(), id)
		assert.ErrorIs(t, err, ErrInvalidOrderStatus)
	})

	t.Run("已发货订单不可重复发货", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService()
		id := seedOrder(repo, domain.StatusShipped)
		err := svc.ShipOrder(context.Background(), id)
		assert.ErrorIs(t, err, ErrInvalidOrderStatus)
	})
}

func TestService_UpdateItemQuantity(t *testing.T) {
	t.Parallel()

	t.Run("数量必须为正数", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService()
		id := seedOrder(repo, domain.StatusOpen,
			domain.OrderItem{GameID: 1, Price: 1999, Quantity: 2},
		)
		err := svc.UpdateItemQuantity(context.Background(), id, 1, 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
		err = svc.UpdateItemQuantity(context.Background(), id, 1, -3)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("更新成功", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService()
		id := seedOrder(repo, domain.StatusOpen,
			domain.OrderItem{GameID: 1, Price: 1999, Quantity: 2},
		)
		err := svc.UpdateItemQuantity(context.Background(), id, 1, 5)
		require.NoError(t, err)
		assert.Equal(t, int64(5), repo.items[id][1].Quantity)
	})

	t.Run("行项不存在", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService()
		id := seedOrder(repo, domain.StatusOpen)
		err := svc.UpdateItemQuantity(context.Background(), id, 42, 1)
		assert.ErrorIs(t, err, ErrItemNotInCart)
	})

	t.Run("已关闭订单不可变更", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService()
		id := seedOrder(repo, domain.StatusPaid,
			domain.OrderItem{GameID: 1, Price: 1999, Quantity: 2},
		)
		err := svc.UpdateItemQuantity(context.Background(), id, 1, 5)
		assert.ErrorIs(t, err, ErrOrderClosed)
	})
}

func TestService_Items(t *testing.T) {
	t.Parallel()

	t.Run("已关闭订单不可增删行项", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService()
		id := seedOrder(repo, domain.StatusCancelled,
			domain.OrderItem{GameID: 1, Price: 1999, Quantity: 1},
		)
		err := svc.AddItem(context.Background(), domain.OrderItem{OrderID: id, GameID: 2, Price: 999, Quantity: 1})
		assert.ErrorIs(t, err, ErrOrderClosed)
		err = svc.RemoveItem(context.Background(), id, 1)
		assert.ErrorIs(t, err, ErrOrderClosed)
	})

	t.Run("移除不存在的行项", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService()
		id := seedOrder(repo, domain.StatusOpen)
		err := svc.RemoveItem(context.Background(), id, 42)
		assert.ErrorIs(t, err, ErrItemNotInCart)
	})
}

func TestService_FindCart(t *testing.T) {
	t.Parallel()

	t.Run("没有购物车", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newTestService()
		_, err := svc.FindCart(context.Background(), testBuyerID)
		assert.ErrorIs(t, err, ErrCartEmpty)
	})

	t.Run("购物车没有行项", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService()
		seedOrder(repo, domain.StatusOpen)
		_, err := svc.FindCart(context.Background(), testBuyerID)
		assert.ErrorIs(t, err, ErrCartEmpty)
	})

	t.Run("返回购物车及行项", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService()
		id := seedOrder(repo, domain.StatusOpen,
			domain.OrderItem{GameID: 1, Price: 1999, Quantity: 2},
		)
		order, err := svc.FindCart(context.Background(), testBuyerID)
		require.NoError(t, err)
		assert.Equal(t, id, order.ID)
		require.Len(t, order.Items, 1)
		assert.Equal(t, int64(3998), order.Total())
	})
}

func TestService_ListOrders(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newTestService()
	seedOrder(repo, domain.StatusPaid)
	seedOrder(repo, domain.StatusCancelled)
	seedOrder(repo, domain.StatusShipped)

	orders, total, err := svc.ListOrders(context.Background(), testBuyerID, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, orders, 2)
}
