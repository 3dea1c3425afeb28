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

	"github.com/ecodeclub/gamestore/internal/order/internal/domain"
	"github.com/ecodeclub/gamestore/internal/order/internal/repository"
	"github.com/ecodeclub/gamestore/internal/order/internal/repository/dao"
	"github.com/ecodeclub/gamestore/internal/product"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = errors.New("订单不存在")
	// ErrInvalidOrderStatus 当前状态不允许该流转
	ErrInvalidOrderStatus = errors.New("订单状态非法")
	// ErrOrderClosed 订单已离开购物车状态, 行项不可再变更
	ErrOrderClosed = errors.New("订单已关闭")
	// ErrInvalidQuantity 数量必须为正数
	ErrInvalidQuantity = errors.New("数量非法")
)

//go:generate mockgen -source=./service.go -destination=../../mocks/order.mock.go -package=ordermocks -typed Service
type Service interface {
	// FindCart 查找买家的购物车订单及其行项
	FindCart(ctx context.Context, buyerID int64) (domain.Order, error)
	FindOrderByUIDAndSN(ctx context.Context, buyerID int64, sn string) (domain.Order, error)
	ListOrders(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, int64, error)

	// CompleteOrder 购物车 → 已支付, 逐行扣减库存
	CompleteOrder(ctx context.Context, orderID int64) error
	// CancelOrder 购物车 → 已取消, 不动库存
	CancelOrder(ctx context.Context, orderID int64) error
	// ShipOrder 已支付 → 已发货
	ShipOrder(ctx context.Context, orderID int64) error

	AddItem(ctx context.Context, item domain.OrderItem) error
	RemoveItem(ctx context.Context, orderID, gameID int64) error
	UpdateItemQuantity(ctx context.Context, orderID, gameID, quantity int64) error
}

type service struct {
	repo       repository.OrderRepository
	productSvc product.Service
	logger     *elog.Component
}

func NewService(repo repository.OrderRepository, productSvc product.Service) Service {
	return &service{
		repo:       repo,
		productSvc: productSvc,
		logger:     elog.DefaultLogger,
	}
}

func (s *service) FindCart(ctx context.Context, buyerID int64) (domain.Order, error) {
	order, err := s.repo.FindCartByBuyerID(ctx, buyerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Order{}, ErrCartEmpty
		}
		return domain.Order{}, err
	}
	if len(order.Items) == 0 {
		return domain.Order{}, ErrCartEmpty
	}
	return order, nil
}

func (s *service) FindOrderByUIDAndSN(ctx context.Context, buyerID int64, sn string) (domain.Order, error) {
	order, err := s.repo.FindOrderByUIDAndSN(ctx, buyerID, sn)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Order{}, ErrOrderNotFound
		}
		return domain.Order{}, err
	}
	return order, nil
}

func (s *service) ListOrders(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListOrders(ctx, buyerID, offset, limit)
		return err
	})

	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalOrders(ctx, buyerID)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) CompleteOrder(ctx context.Context, orderID int64) error {
	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if order.Status != domain.StatusOpen {
		return ErrInvalidOrderStatus
	}
	// 逐行扣减, 失败的行记日志后跳过, 不阻塞支付完成
	for _, item := range order.Items {
		err = s.productSvc.DecrementStock(ctx, item.GameID, item.Quantity)
		if err != nil {
			s.logger.Error("扣减库存失败",
				elog.Int64("orderID", orderID),
				elog.Int64("gameID", item.GameID),
				elog.Int64("quantity", item.Quantity),
				elog.FieldErr(err))
		}
	}
	return s.mapStatusErr(s.repo.MarkPaid(ctx, orderID))
}

func (s *service) CancelOrder(ctx context.Context, orderID int64) error {
	_, err := s.findOrder(ctx, orderID)
	if err != nil {
		return err
	}
	return s.mapStatusErr(s.repo.MarkCancelled(ctx, orderID))
}

func (s *service) ShipOrder(ctx context.Context, orderID int64) error {
	_, err := s.findOrder(ctx, orderID)
	if err != nil {
		return err
	}
	return s.mapStatusErr(s.repo.MarkShipped(ctx, orderID))
}

func (s *service) AddItem(ctx context.Context, item domain.OrderItem) error {
	if item.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	err := s.requireOpen(ctx, item.OrderID)
	if err != nil {
		return err
	}
	return s.repo.AddItem(ctx, item)
}

func (s *service) RemoveItem(ctx context.Context, orderID, gameID int64) error {
	err := s.requireOpen(ctx, orderID)
	if err != nil {
		return err
	}
	err = s.repo.RemoveItem(ctx, orderID, gameID)
	if errors.Is(err, dao.ErrItemNotFound) {
		return ErrItemNotInCart
	}
	return err
}

func (s *service) UpdateItemQuantity(ctx context.Context, orderID, gameID, quantity int64) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	err := s.requireOpen(ctx, orderID)
	if err != nil {
		return err
	}
	_, err = s.repo.FindItem(ctx, orderID, gameID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrItemNotInCart
		}
		return err
	}
	return s.repo.UpdateItemQuantity(ctx, orderID, gameID, quantity)
}

func (s *service) findOrder(ctx context.Context, orderID int64) (domain.Order, error) {
	order, err := s.repo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Order{}, ErrOrderNotFound
		}
		return domain.Order{}, err
	}
	return order, nil
}

func (s *service) requireOpen(ctx context.Context, orderID int64) error {
	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if order.Status != domain.StatusOpen {
		return ErrOrderClosed
	}
	return nil
}

func (s *service) mapStatusErr(err error) error {
	if errors.Is(err, dao.ErrInvalidStatus) {
		return ErrInvalidOrderStatus
	}
	return err
}
