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

import (
	"errors"
	"fmt"

	"github.com/ecodeclub/gamestore/internal/order/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &AdminHandler{}

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/order/ship", ginx.B[ShipOrderReq](h.ShipOrder))
}

// ShipOrder 已支付订单发货
func (h *AdminHandler) ShipOrder(ctx *ginx.Context, req ShipOrderReq) (ginx.Result, error) {
	err := h.svc.ShipOrder(ctx.Request.Context(), req.OrderID)
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		return orderNotFoundResult, fmt.Errorf("发货失败 oid=%d: %w", req.OrderID, err)
	case errors.Is(err, service.ErrInvalidOrderStatus):
		return invalidStatusResult, fmt.Errorf("发货失败 oid=%d: %w", req.OrderID, err)
	case err != nil:
		return systemErrorResult, fmt.Errorf("发货失败 oid=%d: %w", req.OrderID, err)
	}
	return ginx.Result{Msg: "OK"}, nil
}
