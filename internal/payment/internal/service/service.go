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
	"fmt"

	"github.com/ecodeclub/gamestore/internal/order"
	"github.com/ecodeclub/gamestore/internal/payment/internal/domain"
	"github.com/ecodeclub/gamestore/internal/payment/internal/events"
	"github.com/gotomicro/ego/core/elog"
)

var (
	// ErrUnsupportedPaymentMethod 未知支付方式
	ErrUnsupportedPaymentMethod = errors.New("不支持的支付方式")
	// ErrPaymentModelRequired 支付方式缺少所需输入模型
	ErrPaymentModelRequired = errors.New("缺少支付方式所需的参数")
)

// Strategy 支付渠道的统一契约
type Strategy interface {
	Pay(ctx context.Context, ord order.Order, buyerID int64, req domain.PaymentRequest) (domain.PaymentResult, error)
}

//go:generate mockgen -source=./service.go -destination=../../mocks/payment.mock.go -package=paymentmocks -typed Service
type Service interface {
	// Pay 结算买家的购物车订单
	// 返回后订单恰好处于三种状态之一: 业务校验拒绝时仍是购物车,
	// 渠道成功时已支付, 渠道失败时已取消
	Pay(ctx context.Context, buyerID int64, req domain.PaymentRequest) (domain.PaymentResult, error)
}

type service struct {
	orderSvc   order.Service
	cartSvc    order.CartService
	strategies map[string]Strategy
	producer   events.PaymentEventProducer
	logger     *elog.Component
}

func NewService(orderSvc order.Service,
	cartSvc order.CartService,
	producer events.PaymentEventProducer,
	strategies map[string]Strategy) Service {
	return &service{
		orderSvc:   orderSvc,
		cartSvc:    cartSvc,
		strategies: strategies,
		producer:   producer,
		logger:     elog.DefaultLogger,
	}
}

func (s *service) Pay(ctx context.Context, buyerID int64, req domain.PaymentRequest) (domain.PaymentResult, error) {
	ord, err := s.orderSvc.FindCart(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	method := domain.NormalizeMethod(req.Method)
	if err := s.checkModel(method, req); err != nil {
		// 业务校验失败, 订单保持购物车状态让买家重试
		return nil, err
	}
	strategy, ok := s.strategies[method]
	if !ok {
		return nil, ErrUnsupportedPaymentMethod
	}

	result, err := strategy.Pay(ctx, ord, buyerID, req)
	if err != nil {
		s.compensate(ctx, buyerID, ord.ID)
		return nil, err
	}

	err = s.orderSvc.CompleteOrder(ctx, ord.ID)
	if err != nil {
		return nil, fmt.Errorf("支付成功但订单流转失败: %w", err)
	}
	if cacheErr := s.cartSvc.ClearCartCache(ctx, buyerID); cacheErr != nil {
		s.logger.Error("清理购物车缓存失败",
			elog.Int64("buyerID", buyerID),
			elog.FieldErr(cacheErr))
	}
	evt := events.PaymentEvent{
		OrderSN: ord.SN,
		BuyerID: buyerID,
		Method:  method,
		Amount:  ord.Total(),
	}
	if prodErr := s.producer.Produce(ctx, evt); prodErr != nil {
		s.logger.Error("发送支付事件失败",
			elog.String("orderSN", ord.SN),
			elog.FieldErr(prodErr))
	}
	return result, nil
}

func (s *service) checkModel(method string, req domain.PaymentRequest) error {
	switch method {
	case domain.MethodBank:
		// 发票有效期来自配置, 买家无须提供输入模型
		return nil
	case domain.MethodBoxTerminal:
		if req.Box == nil {
			return ErrPaymentModelRequired
		}
		return nil
	case domain.MethodCard:
		if req.Card == nil {
			return ErrPaymentModelRequired
		}
		return nil
	default:
		return ErrUnsupportedPaymentMethod
	}
}

// compensate 渠道失败后的补偿: 尽力取消订单并清缓存, 失败只记日志不掩盖原始错误
func (s *service) compensate(ctx context.Context, buyerID, orderID int64) {
	if err := s.orderSvc.CancelOrder(ctx, orderID); err != nil {
		s.logger.Error("补偿取消订单失败",
			elog.Int64("orderID", orderID),
			elog.FieldErr(err))
	}
	if err := s.cartSvc.ClearCartCache(ctx, buyerID); err != nil {
		s.logger.Error("清理购物车缓存失败",
			elog.Int64("buyerID", buyerID),
			elog.FieldErr(err))
	}
}
