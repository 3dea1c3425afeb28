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

package terminal

import (
	"context"

	"github.com/ecodeclub/gamestore/internal/order"
	"github.com/ecodeclub/gamestore/internal/payment/internal/domain"
	"github.com/ecodeclub/gamestore/internal/payment/internal/gateway"
)

type Strategy struct {
	client *gateway.Client
}

func NewStrategy(client *gateway.Client) *Strategy {
	return &Strategy{client: client}
}

type boxRequest struct {
	Amount           int64  `json:"amount"`
	AccountReference int64  `json:"accountReference"`
	OrderID          string `json:"orderId"`
}

type boxResponse struct {
	UserID      int64  `json:"userId"`
	OrderID     string `json:"orderId"`
	PaymentDate string `json:"paymentDate"`
	Sum         int64  `json:"sum"`
}

func (s *Strategy) Pay(ctx context.Context, ord order.Order, buyerID int64, _ domain.PaymentRequest) (domain.PaymentResult, error) {
	var resp boxResponse
	err := s.client.PostJSON(ctx, "/api/payments/ibox", boxRequest{
		Amount:           ord.Total(),
		AccountReference: buyerID,
		OrderID:          ord.SN,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return domain.BoxReceipt{
		BuyerID: resp.UserID,
		OrderSN: resp.OrderID,
		PaidAt:  resp.PaymentDate,
		Amount:  resp.Sum,
	}, nil
}
