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

	"github.com/ecodeclub/gamestore/internal/product/internal/domain"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	// ErrInsufficientStock 库存不足以完成扣减
	ErrInsufficientStock = errors.New("库存不足")
	// ErrDuplicateGameKey 商品别名已存在
	ErrDuplicateGameKey = errors.New("商品别名已存在")
	// ErrRecordNotFound 商品不存在
	ErrRecordNotFound = gorm.ErrRecordNotFound
)

type GameDAO interface {
	FindByKey(ctx context.Context, key string) (Game, error)
	FindByID(ctx context.Context, id int64) (Game, error)
	List(ctx context.Context, offset, limit int) ([]Game, error)
	Total(ctx context.Context) (int64, error)
	Create(ctx context.Context, g Game) (int64, error)
	DecrementStock(ctx context.Context, id int64, n int64) error
}

type GameGORMDAO struct {
	db *egorm.Component
}

func NewGameGORMDAO(db *egorm.Component) GameDAO {
	return &GameGORMDAO{db: db}
}

func (d *GameGORMDAO) FindByKey(ctx context.Context, key string) (Game, error) {
	var res Game
	err := d.db.WithContext(ctx).
		Where("`key` = ? AND status = ?", key, domain.StatusOnShelf.ToUint8()).
		First(&res).Error
	return res, err
}

func (d *GameGORMDAO) FindByID(ctx context.Context, id int64) (Game, error) {
	var res Game
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *GameGORMDAO) List(ctx context.Context, offset, limit int) ([]Game, error) {
	var res []Game
	err := d.db.WithContext(ctx).
		Where("status = ?", domain.StatusOnShelf.ToUint8()).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *GameGORMDAO) Total(ctx context.Context) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Game{}).
		Where("status = ?", domain.StatusOnShelf.ToUint8()).
		Count(&res).Error
	return res, err
}

func (d *GameGORMDAO) Create(ctx context.Context, g Game) (int64, error) {
	now := time.Now().UnixMilli()
	g.Ctime, g.Utime = now, now
	err := d.db.WithContext(ctx).Create(&g).Error
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) {
			const uniqueIndexErrNo uint16 = 1062
			if me.Number == uniqueIndexErrNo {
				return 0, ErrDuplicateGameKey
			}
		}
		return 0, err
	}
	return g.Id, nil
}

// DecrementStock 条件扣减, 只有库存充足时才会生效
func (d *GameGORMDAO) DecrementStock(ctx context.Context, id int64, n int64) error {
	res := d.db.WithContext(ctx).Model(&Game{}).
		Where("id = ? AND stock >= ?", id, n).
		Updates(map[string]any{
			"stock": gorm.Expr("stock - ?", n),
			"utime": time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Game{})
}

type Game struct {
	Id          int64         `gorm:"primaryKey;autoIncrement;comment:商品自增ID"`
	Key         string        `gorm:"type:varchar(255);not null;uniqueIndex:uniq_game_key;comment:商品别名"`
	Name        string        `gorm:"type:varchar(255);not null;comment:商品名称"`
	Description string        `gorm:"not null;comment:商品描述"`
	Genre       string        `gorm:"type:varchar(255);not null;comment:类型"`
	Platform    string        `gorm:"type:varchar(255);not null;comment:平台"`
	Publisher   string        `gorm:"type:varchar(255);not null;comment:发行商"`
	Price       int64         `gorm:"not null;comment:商品单价;单位为分, 999表示9.99元"`
	Discount    sql.NullInt64 `gorm:"comment:折扣百分比, NULL表示无折扣"`
	Stock       int64         `gorm:"not null;comment:库存数量"`
	Status      uint8         `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=下架 2=上架"`
	Ctime       int64
	Utime       int64
}
