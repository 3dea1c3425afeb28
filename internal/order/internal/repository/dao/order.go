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

package dao

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ecodeclub/gamestore/internal/order/internal/domain"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrInvalidStatus 状态流转前置条件不满足
	ErrInvalidStatus = errors.New("订单状态非法")
	// ErrItemNotFound 订单中不存在该行项
	ErrItemNotFound = errors.New("订单项不存在")
	// ErrRecordNotFound 订单不存在
	ErrRecordNotFound = gorm.ErrRecordNotFound
)

type OrderDAO interface {
	FindOrCreateCart(ctx context.Context, buyerID int64, sn string) (Order, error)
	FindCartByBuyerID(ctx context.Context, buyerID int64) (Order, error)
	FindOrderByID(ctx context.Context, id int64) (Order, error)
	FindOrderByUIDAndSN(ctx context.Context, buyerID int64, sn string) (Order, error)
	ListOrdersByUID(ctx context.Context, buyerID int64, offset, limit int) ([]Order, error)
	TotalOrders(ctx context.Context, buyerID int64) (int64, error)

	FindOrderItems(ctx context.Context, orderID int64) ([]OrderItem, error)
	FindOrderItem(ctx context.Context, orderID, gameID int64) (OrderItem, error)
	UpsertOrderItem(ctx context.Context, item OrderItem) error
	UpdateItemQuantity(ctx context.Context, orderID, gameID, quantity int64) error
	DeleteOrderItem(ctx context.Context, orderID, gameID int64) error
	CountOrderItems(ctx context.Context, orderID int64) (int64, error)

	DeleteOrder(ctx context.Context, orderID int64) error
	MarkPaid(ctx context.Context, orderID int64) error
	MarkCancelled(ctx context.Context, orderID int64) error
	MarkShipped(ctx context.Context, orderID int64) error
}

type OrderGORMDAO struct {
	db *egorm.Component
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &OrderGORMDAO{db: db}
}

// FindOrCreateCart 查找买家的购物车订单, 不存在则创建
// 事务内对购物车行加排他锁, 并发首次加购会在此串行化, 保证买家至多一个购物车订单
func (d *OrderGORMDAO) FindOrCreateCart(ctx context.Context, buyerID int64, sn string) (Order, error) {
	var o Order
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("buyer_id = ? AND status = ?", buyerID, domain.StatusOpen.ToUint8()).
			First(&o).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		now := time.Now().UnixMilli()
		o = Order{
			SN:      sn,
			BuyerID: buyerID,
			Status:  domain.StatusOpen.ToUint8(),
			Ctime:   now,
			Utime:   now,
		}
		return tx.Create(&o).Error
	})
	return o, err
}

func (d *OrderGORMDAO) FindCartByBuyerID(ctx context.Context, buyerID int64) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).
		Where("buyer_id = ? AND status = ?", buyerID, domain.StatusOpen.ToUint8()).
		First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindOrderByID(ctx context.Context, id int64) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindOrderByUIDAndSN(ctx context.Context, buyerID int64, sn string) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).
		Where("buyer_id = ? AND sn = ?", buyerID, sn).
		First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) ListOrdersByUID(ctx context.Context, buyerID int64, offset, limit int) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) TotalOrders(ctx context.Context, buyerID int64) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Order{}).
		Where("buyer_id = ?", buyerID).
		Count(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindOrderItems(ctx context.Context, orderID int64) ([]OrderItem, error) {
	var res []OrderItem
	err := d.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindOrderItem(ctx context.Context, orderID, gameID int64) (OrderItem, error) {
	var res OrderItem
	err := d.db.WithContext(ctx).
		Where("order_id = ? AND game_id = ?", orderID, gameID).
		First(&res).Error
	return res, err
}

// UpsertOrderItem 新增行项, 已存在时累加数量
func (d *OrderGORMDAO) UpsertOrderItem(ctx context.Context, item OrderItem) error {
	now := time.Now().UnixMilli()
	item.Ctime, item.Utime = now, now
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "order_id"}, {Name: "game_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity": gorm.Expr("quantity + ?", item.Quantity),
			"utime":    now,
		}),
	}).Create(&item).Error
}

func (d *OrderGORMDAO) UpdateItemQuantity(ctx context.Context, orderID, gameID, quantity int64) error {
	return d.db.WithContext(ctx).Model(&OrderItem{}).
		Where("order_id = ? AND game_id = ?", orderID, gameID).
		Updates(map[string]any{
			"quantity": quantity,
			"utime":    time.Now().UnixMilli(),
		}).Error
}

func (d *OrderGORMDAO) DeleteOrderItem(ctx context.Context, orderID, gameID int64) error {
	res := d.db.WithContext(ctx).
		Where("order_id = ? AND game_id = ?", orderID, gameID).
		Delete(&OrderItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (d *OrderGORMDAO) CountOrderItems(ctx context.Context, orderID int64) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&OrderItem{}).
		Where("order_id = ?", orderID).
		Count(&res).Error
	return res, err
}

// DeleteOrder 删除订单及其全部行项
func (d *OrderGORMDAO) DeleteOrder(ctx context.Context, orderID int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("order_id = ?", orderID).Delete(&OrderItem{}).Error
		if err != nil {
			return err
		}
		return tx.Where("id = ?", orderID).Delete(&Order{}).Error
	})
}

func (d *OrderGORMDAO) MarkPaid(ctx context.Context, orderID int64) error {
	return d.updateStatus(ctx, orderID,
		domain.StatusOpen.ToUint8(), domain.StatusPaid.ToUint8(), "paid_at")
}

func (d *OrderGORMDAO) MarkCancelled(ctx context.Context, orderID int64) error {
	return d.updateStatus(ctx, orderID,
		domain.StatusOpen.ToUint8(), domain.StatusCancelled.ToUint8(), "cancelled_at")
}

func (d *OrderGORMDAO) MarkShipped(ctx context.Context, orderID int64) error {
	return d.updateStatus(ctx, orderID,
		domain.StatusPaid.ToUint8(), domain.StatusShipped.ToUint8(), "shipped_at")
}

// updateStatus 条件流转, 仅当前状态匹配时生效
func (d *OrderGORMDAO) updateStatus(ctx context.Context, orderID int64, from, to uint8, stampColumn string) error {
	now := time.Now().UnixMilli()
	res := d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Updates(map[string]any{
			"status":    to,
			stampColumn: now,
			"utime":     now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInvalidStatus
	}
	return nil
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Order{}, &OrderItem{})
}

type Order struct {
	ID          int64  `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	SN          string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_order_sn;comment:订单序列号"`
	BuyerID     int64  `gorm:"not null;index:idx_buyer_id_status,priority:1;comment:买家ID"`
	Status      uint8  `gorm:"type:tinyint unsigned;not null;default:1;index:idx_buyer_id_status,priority:2;comment:订单状态 1=购物车 2=已支付 3=已取消 4=已发货"`
	PaidAt      int64  `gorm:"comment:支付完成时间"`
	CancelledAt int64  `gorm:"comment:取消时间"`
	ShippedAt   int64  `gorm:"comment:发货时间"`
	Ctime       int64
	Utime       int64
}

type OrderItem struct {
	ID       int64         `gorm:"primaryKey;autoIncrement;comment:订单项自增ID"`
	OrderID  int64         `gorm:"not null;uniqueIndex:uniq_order_id_game_id,priority:1;comment:订单自增ID"`
	GameID   int64         `gorm:"not null;uniqueIndex:uniq_order_id_game_id,priority:2;comment:游戏自增ID"`
	GameName string        `gorm:"type:varchar(255);not null;comment:游戏名称"`
	Price    int64         `gorm:"not null;comment:加购时单价;单位为分, 999表示9.99元"`
	Discount sql.NullInt64 `gorm:"comment:加购时折扣百分比, NULL表示无折扣"`
	Quantity int64         `gorm:"not null;comment:购买数量"`
	Ctime    int64
	Utime    int64
}
