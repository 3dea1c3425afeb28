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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/gamestore/internal/order/internal/domain"
	"github.com/ecodeclub/gamestore/internal/order/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	cartSvc service.CartService
	svc     service.Service
}

func NewHandler(cartSvc service.CartService, svc service.Service) *Handler {
	return &Handler{
		cartSvc: cartSvc,
		svc:     svc,
	}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/game/buy", ginx.BS[BuyGameReq](h.AddToCart))
	cart := server.Group("/cart")
	cart.POST("/remove", ginx.BS[RemoveCartItemReq](h.RemoveFromCart))
	cart.POST("/list", ginx.S(h.CartList))
	order := server.Group("/order")
	order.POST("/list", ginx.BS[ListOrdersReq](h.ListOrders))
	order.POST("/detail", ginx.BS[OrderDetailReq](h.OrderDetail))
}

// AddToCart 加购一件商品
func (h *Handler) AddToCart(ctx *ginx.Context, req BuyGameReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	order, err := h.cartSvc.AddToCart(ctx.Request.Context(), uid, req.Key)
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return gameNotFoundResult, fmt.Errorf("加购失败 uid=%d: %w", uid, err)
	case errors.Is(err, service.ErrOutOfStock):
		return outOfStockResult, fmt.Errorf("加购失败 uid=%d: %w", uid, err)
	case errors.Is(err, service.ErrNotEnoughStock):
		return notEnoughStockResult, fmt.Errorf("加购失败 uid=%d: %w", uid, err)
	case err != nil:
		return systemErrorResult, fmt.Errorf("加购失败 uid=%d: %w", uid, err)
	}
	return ginx.Result{
		Data: h.toOrderVO(order),
	}, nil
}

// RemoveFromCart 减购一件商品
func (h *Handler) RemoveFromCart(ctx *ginx.Context, req RemoveCartItemReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	err := h.cartSvc.RemoveFromCart(ctx.Request.Context(), uid, req.Key)
	switch {
	case errors.Is(err, service.ErrCartEmpty):
		return cartEmptyResult, fmt.Errorf("减购失败 uid=%d: %w", uid, err)
	case errors.Is(err, service.ErrGameNotFound):
		return gameNotFoundResult, fmt.Errorf("减购失败 uid=%d: %w", uid, err)
	case errors.Is(err, service.ErrItemNotInCart):
		return itemNotInCartResult, fmt.Errorf("减购失败 uid=%d: %w", uid, err)
	case err != nil:
		return systemErrorResult, fmt.Errorf("减购失败 uid=%d: %w", uid, err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

// CartList 购物车读模型, 缓存优先
func (h *Handler) CartList(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	items, err := h.cartSvc.GetCart(ctx.Request.Context(), uid)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询购物车失败 uid=%d: %w", uid, err)
	}
	return ginx.Result{
		Data: CartListResp{
			Items: slice.Map(items, func(idx int, src domain.CartItem) CartItem {
				return CartItem{
					GameID:   src.GameID,
					Price:    src.Price,
					Quantity: src.Quantity,
					Discount: src.Discount,
				}
			}),
		},
	}, nil
}

// ListOrders 分页查询买家历史订单
func (h *Handler) ListOrders(ctx *ginx.Context, req ListOrdersReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	orders, total, err := h.svc.ListOrders(ctx.Request.Context(), uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询订单列表失败 uid=%d: %w", uid, err)
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: total,
			Orders: slice.Map(orders, func(idx int, src domain.Order) Order {
				return h.toOrderVO(src)
			}),
		},
	}, nil
}

// OrderDetail 按序列号查询订单详情
func (h *Handler) OrderDetail(ctx *ginx.Context, req OrderDetailReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	order, err := h.svc.FindOrderByUIDAndSN(ctx.Request.Context(), uid, req.SN)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return orderNotFoundResult, fmt.Errorf("订单不存在 uid=%d: %w", uid, err)
		}
		return systemErrorResult, fmt.Errorf("查询订单失败 uid=%d: %w", uid, err)
	}
	return ginx.Result{
		Data: OrderDetailResp{Order: h.toOrderVO(order)},
	}, nil
}

func (h *Handler) toOrderVO(order domain.Order) Order {
	return Order{
		SN:          order.SN,
		Status:      order.Status.ToUint8(),
		Total:       order.Total(),
		PaidAt:      order.PaidAt,
		CancelledAt: order.CancelledAt,
		ShippedAt:   order.ShippedAt,
		Items: slice.Map(order.Items, func(idx int, src domain.OrderItem) OrderItem {
			return OrderItem{
				GameID:   src.GameID,
				GameName: src.GameName,
				Price:    src.Price,
				Discount: src.Discount,
				Quantity: src.Quantity,
			}
		}),
		Ctime: order.Ctime,
	}
}
