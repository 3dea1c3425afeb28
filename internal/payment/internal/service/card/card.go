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

package card

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

type cardRequest struct {
	HolderName  string `json:"holderName"`
	CardNumber  string `json:"cardNumber"`
	ExpiryMonth int    `json:"expiryMonth"`
	ExpiryYear  int    `json:"expiryYear"`
	CVV         string `json:"cvv"`
	Amount      int64  `json:"amount"`
}

// Pay visa 渠道只返回确认, 不解析响应体
func (s *Strategy) Pay(ctx context.Context, ord order.Order, _ int64, req domain.PaymentRequest) (domain.PaymentResult, error) {
	card := req.Card
	err := s.client.PostJSON(ctx, "/api/payments/visa", cardRequest{
		HolderName:  card.Holder,
		CardNumber:  card.CardNumber,
		ExpiryMonth: card.ExpiryMonth,
		ExpiryYear:  card.ExpiryYear,
		CVV:         card.CVV,
		Amount:      ord.Total(),
	}, nil)
	if err != nil {
		return nil, err
	}
	return domain.CardReceipt{}, nil
}
