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

package order

import (
	"github.com/ecodeclub/gamestore/internal/order/internal/domain"
	"github.com/ecodeclub/gamestore/internal/order/internal/service"
	"github.com/ecodeclub/gamestore/internal/order/internal/web"
)

type (
	Handler      = web.Handler
	AdminHandler = web.AdminHandler
	Service      = service.Service
	CartService  = service.CartService
	Order        = domain.Order
	OrderItem    = domain.OrderItem
	CartItem     = domain.CartItem
	OrderStatus  = domain.OrderStatus
)

const (
	StatusOpen      = domain.StatusOpen
	StatusPaid      = domain.StatusPaid
	StatusCancelled = domain.StatusCancelled
	StatusShipped   = domain.StatusShipped
)

var (
	ErrGameNotFound       = service.ErrGameNotFound
	ErrOutOfStock         = service.ErrOutOfStock
	ErrNotEnoughStock     = service.ErrNotEnoughStock
	ErrCartEmpty          = service.ErrCartEmpty
	ErrItemNotInCart      = service.ErrItemNotInCart
	ErrOrderNotFound      = service.ErrOrderNotFound
	ErrInvalidOrderStatus = service.ErrInvalidOrderStatus
	ErrOrderClosed        = service.ErrOrderClosed
	ErrInvalidQuantity    = service.ErrInvalidQuantity
)

type Module struct {
	Hdl      *Handler
	AdminHdl *AdminHandler
	Svc      Service
	CartSvc  CartService
}
