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
	"testing"

	"github.com/ecodeclub/gamestore/internal/order"
	"github.com/ecodeclub/gamestore/internal/payment/internal/domain"
	"github.com/ecodeclub/gamestore/internal/payment/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBuyerID = int64(7654)

// fakeOrderService 只记录状态流转, 其余操作按需返回
type fakeOrderService struct {
	cart        order.Order
	cartErr     error
	completed   []int64
	completeErr error
	cancelled   []int64
	cancelErr   error
}

func (f *fakeOrderService) FindCart(_ context.Context, _ int64) (order.Order, error) {
	if f.cartErr != nil {
		return order.Order{}, f.cartErr
	}
	return f.cart, nil
}

func (f *fakeOrderService) FindOrderByUIDAndSN(_ context.Context, _ int64, _ string) (order.Order, error) {
	return order.Order{}, nil
}

func (f *fakeOrderService) ListOrders(_ context.Context, _ int64, _, _ int) ([]order.Order, int64, error) {
	return nil, 0, nil
}

func (f *fakeOrderService) CompleteOrder(_ context.Context, orderID int64) error {
	if f.completeErr != nil {
		return f.completeErr
	}
	f.completed = append(f.completed, orderID)
	return nil
}

func (f *fakeOrderService) CancelOrder(_ context.Context, orderID int64) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelled = append(f.cancelled, orderID)
	return nil
}

func (f *fakeOrderService) ShipOrder(_ context.Context, _ int64) error { return nil }

func (f *fakeOrderService) AddItem(_ context.Context, _ order.OrderItem) error { return nil }

func (f *fakeOrderService) RemoveItem(_ context.Context, _, _ int64) error { return nil }

func (f *fakeOrderService) UpdateItemQuantity(_ context.Context, _, _, _ int64) error { return nil }

type fakeCartService struct {
	cleared  []int64
	clearErr error
}

func (f *fakeCartService) AddToCart(_ context.Context, _ int64, _ string) (order.Order, error) {
	return order.Order{}, nil
}

func (f *fakeCartService) RemoveFromCart(_ context.Context, _ int64, _ string) error { return nil }

func (f *fakeCartService) GetCart(_ context.Context, _ int64) ([]order.CartItem, error) {
	return nil, nil
}

func (f *fakeCartService) ClearCartCache(_ context.Context, buyerID int64) error {
	if f.clearErr != nil {
		return f.clearErr
	}
	f.cleared = append(f.cleared, buyerID)
	return nil
}

type fakeProducer struct {
	produced []events.PaymentEvent
	err      error
}

func (f *fakeProducer) Produce(_ context.Context, evt events.PaymentEvent) error {
	if f.err != nil {
		return f.err
	}
	f.produced = append(f.produced, evt)
	return nil
}

type fakeStrategy struct {
	calls  int
	result domain.PaymentResult
	err    error
}

func (f *fakeStrategy) Pay(_ context.Context, _ order.Order, _ int64, _ domain.PaymentRequest) (domain.PaymentResult, error) {
	f.calls++
	return f.result, f.err
}

func testCart() order.Order {
	return order.Order{
		ID:      42,
		SN:      "sn-42",
		BuyerID: testBuyerID,
		Status:  order.StatusOpen,
		Items: []order.OrderItem{
			{GameID: 1, Price: 1999, Quantity: 2},
		},
	}
}

type dispatcherDeps struct {
	orderSvc *fakeOrderService
	cartSvc  *fakeCartService
	producer *fakeProducer
	strategy *fakeStrategy
}

func newTestDispatcher() (Service, dispatcherDeps) {
	deps := dispatcherDeps{
		orderSvc: &fakeOrderService{cart: testCart()},
		cartSvc:  &fakeCartService{},
		producer: &fakeProducer{},
		strategy: &fakeStrategy{result: domain.CardReceipt{}},
	}
	svc := NewService(deps.orderSvc, deps.cartSvc, deps.producer, map[string]Strategy{
		domain.MethodBank:        deps.strategy,
		domain.MethodBoxTerminal: deps.strategy,
		domain.MethodCard:        deps.strategy,
	})
	return svc, deps
}

func TestService_Pay(t *testing.T) {
	t.Parallel()

	t.Run("成功后订单完成且缓存被清理", func(t *testing.T) {
		t.Parallel()
		svc, deps := newTestDispatcher()
		result, err := svc.Pay(context.Background(), testBuyerID, domain.PaymentRequest{
			Method: "Visa",
			Card:   &domain.CardModel{Holder: "n", CardNumber: "4", ExpiryMonth: 1, ExpiryYear: 2030, CVV: "1"},
		})
		require.NoError(t, err)
		assert.Equal(t, domain.CardReceipt{}, result)
		assert.Equal(t, []int64{42}, deps.orderSvc.completed)
		assert.Empty(t, deps.orderSvc.cancelled)
		assert.Equal(t, []int64{testBuyerID}, deps.cartSvc.cleared)
		require.Len(t, deps.producer.produced, 1)
		evt := deps.producer.produced[0]
		assert.Equal(t, "sn-42", evt.OrderSN)
		assert.Equal(t, "visa", evt.Method)
		assert.Equal(t, int64(3998), evt.Amount)
	})

	t.Run("购物车为空", func(t *testing.T) {
		t.Parallel()
		svc, deps := newTestDispatcher()
		deps.orderSvc.cartErr = order.ErrCartEmpty
		_, err := svc.Pay(context.Background(), testBuyerID, domain.PaymentRequest{Method: "bank"})
		assert.ErrorIs(t, err, order.ErrCartEmpty)
		assert.Zero(t, deps.strategy.calls)
	})

	t.Run("不支持的支付方式订单保持购物车状态", func(t *testing.T) {
		t.Parallel()
		svc, deps := newTestDispatcher()
		_, err := svc.Pay(context.Background(), testBuyerID, domain.PaymentRequest{Method: "bitcoin"})
		assert.ErrorIs(t, err, ErrUnsupportedPaymentMethod)
		assert.Zero(t, deps.strategy.calls)
		assert.Empty(t, deps.orderSvc.completed)
		assert.Empty(t, deps.orderSvc.cancelled)
	})

	t.Run("缺少卡模型", func(t *testing.T) {
		t.Parallel()
		svc, deps := newTestDispatcher()
		_, err := svc.Pay(context.Background(), testBuyerID, domain.PaymentRequest{Method: "visa"})
		assert.ErrorIs(t, err, ErrPaymentModelRequired)
		assert.Zero(t, deps.strategy.calls)
		assert.Empty(t, deps.orderSvc.cancelled)
	})

	t.Run("渠道失败触发补偿取消", func(t *testing.T) {
		t.Parallel()
		svc, deps := newTestDispatcher()
		strategyErr := errors.New("网关超时")
		deps.strategy.err = strategyErr
		deps.strategy.result = nil
		_, err := svc.Pay(context.Background(), testBuyerID, domain.PaymentRequest{Method: "bank"})
		assert.ErrorIs(t, err, strategyErr)
		assert.Empty(t, deps.orderSvc.completed)
		assert.Equal(t, []int64{42}, deps.orderSvc.cancelled)
		assert.Equal(t, []int64{testBuyerID}, deps.cartSvc.cleared)
	})

	t.Run("补偿取消失败不掩盖原始错误", func(t *testing.T) {
		t.Parallel()
		svc, deps := newTestDispatcher()
		strategyErr := errors.New("网关超时")
		deps.strategy.err = strategyErr
		deps.strategy.result = nil
		deps.orderSvc.cancelErr = errors.New("取消失败")
		_, err := svc.Pay(context.Background(), testBuyerID, domain.PaymentRequest{Method: "bank"})
		assert.ErrorIs(t, err, strategyErr)
	})

	t.Run("事件发送失败不影响支付结果", func(t *testing.T) {
		t.Parallel()
		svc, deps := newTestDispatcher()
		deps.producer.err = errors.New("kafka不可用")
		result, err := svc.Pay(context.Background(), testBuyerID, domain.PaymentRequest{Method: "bank"})
		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, []int64{42}, deps.orderSvc.completed)
	})
}

var _ order.Service = (*fakeOrderService)(nil)
var _ order.CartService = (*fakeCartService)(nil)
var _ events.PaymentEventProducer = (*fakeProducer)(nil)
