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

package payment

import (
	"github.com/ecodeclub/gamestore/internal/payment/internal/domain"
	"github.com/ecodeclub/gamestore/internal/payment/internal/service"
	"github.com/ecodeclub/gamestore/internal/payment/internal/web"
)

type (
	Handler        = web.Handler
	Service        = service.Service
	PaymentRequest = domain.PaymentRequest
	PaymentResult  = domain.PaymentResult
	BankModel      = domain.BankModel
	BoxModel       = domain.BoxModel
	CardModel      = domain.CardModel
	BankReceipt    = domain.BankReceipt
	BoxReceipt     = domain.BoxReceipt
	CardReceipt    = domain.CardReceipt
)

const (
	MethodBank        = domain.MethodBank
	MethodBoxTerminal = domain.MethodBoxTerminal
	MethodCard        = domain.MethodCard
)

var (
	ErrUnsupportedPaymentMethod = service.ErrUnsupportedPaymentMethod
	ErrPaymentModelRequired     = service.ErrPaymentModelRequired
)

type Module struct {
	Hdl *Handler
	Svc Service
}
