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

package domain

type OrderStatus uint8

func (s OrderStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	// StatusOpen 购物车, 买家唯一一个可变更的订单
	StatusOpen OrderStatus = 1
	// StatusPaid 支付成功, 库存已扣减
	StatusPaid OrderStatus = 2
	// StatusCancelled 已取消, 终态
	StatusCancelled OrderStatus = 3
	// StatusShipped 已发货, 终态
	StatusShipped OrderStatus = 4
)

type Order struct {
	ID      int64
	SN      string
	BuyerID int64
	Status  OrderStatus
	// PaidAt/CancelledAt/ShippedAt 毫秒时间戳, 0表示尚未发生
	PaidAt      int64
	CancelledAt int64
	ShippedAt   int64
	Items       []OrderItem
	Ctime       int64
	Utime       int64
}

// Total 订单总价 = Σ(单价 × 数量)
// 注意: 行级折扣仅随行项记录, 当前不参与总价计算
func (o Order) Total() int64 {
	var total int64
	for _, it := range o.Items {
		total += it.Price * it.Quantity
	}
	return total
}

// OrderItem 订单内的一个行项, 以 (OrderID, GameID) 唯一确定
type OrderItem struct {
	OrderID  int64
	GameID   int64
	GameName string
	// Price 加购时捕获的单价, 不随商品价格变化
	Price int64
	// Discount 加购时捕获的折扣百分比, nil表示无折扣
	Discount *int64
	Quantity int64
}

// CartItem 购物车读模型
type CartItem struct {
	GameID   int64  `json:"gameId"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
	Discount *int64 `json:"discount,omitempty"`
}
