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

package web

type BuyGameReq struct {
	Key string `json:"key"`
}

type RemoveCartItemReq struct {
	Key string `json:"key"`
}

type CartListResp struct {
	Items []CartItem `json:"items"`
}

type CartItem struct {
	GameID   int64  `json:"gameId"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
	Discount *int64 `json:"discount,omitempty"`
}

type ListOrdersReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total"`
	Orders []Order `json:"orders"`
}

type OrderDetailReq struct {
	SN string `json:"sn"`
}

type OrderDetailResp struct {
	Order Order `json:"order"`
}

type ShipOrderReq struct {
	OrderID int64 `json:"oid"`
}

type Order struct {
	SN          string      `json:"sn"`
	Status      uint8       `json:"status"`
	Total       int64       `json:"total"`
	PaidAt      int64       `json:"paidAt,omitempty"`
	CancelledAt int64       `json:"cancelledAt,omitempty"`
	ShippedAt   int64       `json:"shippedAt,omitempty"`
	Items       []OrderItem `json:"items,omitempty"`
	Ctime       int64       `json:"ctime"`
}

type OrderItem struct {
	GameID   int64  `json:"gameId"`
	GameName string `json:"gameName"`
	Price    int64  `json:"price"`
	Discount *int64 `json:"discount,omitempty"`
	Quantity int64  `json:"quantity"`
}
