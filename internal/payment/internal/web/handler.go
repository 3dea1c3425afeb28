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
	"net/http"

	"github.com/ecodeclub/gamestore/internal/order"
	"github.com/ecodeclub/gamestore/internal/payment/internal/domain"
	"github.com/ecodeclub/gamestore/internal/payment/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

// Handler 银行渠道成功时直接回写 PDF 字节流, 所以不走 ginx 的包装器
type Handler struct {
	svc    service.Service
	logger *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/order/payment", h.Pay)
}

// Pay 结算购物车订单
func (h *Handler) Pay(ctx *gin.Context) {
	gtx := &ginx.Context{Context: ctx}
	sess, err := session.Get(gtx)
	if err != nil {
		h.logger.Error("获取 Session 失败", elog.FieldErr(err))
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	uid := sess.Claims().Uid

	var req PaymentReq
	if err := ctx.Bind(&req); err != nil {
		h.logger.Error("绑定参数失败", elog.FieldErr(err))
		ctx.AbortWithStatus(http.StatusBadRequest)
		return
	}

	result, err := h.svc.Pay(ctx.Request.Context(), uid, h.toDomain(req))
	if err != nil {
		h.logger.Error("支付失败",
			elog.Int64("uid", uid),
			elog.String("method", req.Method),
			elog.FieldErr(err))
		ctx.JSON(http.StatusOK, h.errResult(err))
		return
	}

	switch r := result.(type) {
	case domain.BankReceipt:
		ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", r.FileName))
		ctx.Data(http.StatusOK, "application/pdf", r.PDF)
	case domain.BoxReceipt:
		ctx.JSON(http.StatusOK, ginx.Result{
			Data: BoxReceiptVO{
				UserID:      r.BuyerID,
				OrderID:     r.OrderSN,
				PaymentDate: r.PaidAt,
				Sum:         r.Amount,
			},
		})
	case domain.CardReceipt:
		ctx.JSON(http.StatusOK, ginx.Result{Msg: "OK"})
	default:
		ctx.JSON(http.StatusOK, systemErrorResult)
	}
}

func (h *Handler) toDomain(req PaymentReq) domain.PaymentRequest {
	pr := domain.PaymentRequest{Method: req.Method}
	switch domain.NormalizeMethod(req.Method) {
	case domain.MethodBoxTerminal:
		pr.Box = &domain.BoxModel{}
	case domain.MethodCard:
		// 卡模型在这里校验, 不完整时让调度器按缺少模型拒绝
		m := req.Model
		if m != nil && m.Holder != "" && m.CardNumber != "" && m.CVV != "" &&
			m.ExpiryMonth >= 1 && m.ExpiryMonth <= 12 && m.ExpiryYear > 0 {
			pr.Card = &domain.CardModel{
				Holder:      m.Holder,
				CardNumber:  m.CardNumber,
				ExpiryMonth: m.ExpiryMonth,
				ExpiryYear:  m.ExpiryYear,
				CVV:         m.CVV,
			}
		}
	}
	return pr
}

func (h *Handler) errResult(err error) ginx.Result {
	switch {
	case errors.Is(err, order.ErrCartEmpty):
		return cartEmptyResult
	case errors.Is(err, service.ErrUnsupportedPaymentMethod):
		return unsupportedMethodResult
	case errors.Is(err, service.ErrPaymentModelRequired):
		return modelRequiredResult
	default:
		return systemErrorResult
	}
}
