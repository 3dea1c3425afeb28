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
	"github.com/ecodeclub/gamestore/internal/product/internal/domain"
	"github.com/ecodeclub/gamestore/internal/product/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/game")
	g.POST("/list", ginx.B[ListGamesReq](h.ListGames))
	g.POST("/detail", ginx.B[GameDetailReq](h.GameDetail))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

// ListGames 分页查询在售商品
func (h *Handler) ListGames(ctx *ginx.Context, req ListGamesReq) (ginx.Result, error) {
	games, total, err := h.svc.ListGames(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询商品列表失败: %w", err)
	}
	return ginx.Result{
		Data: ListGamesResp{
			Total: total,
			Games: slice.Map(games, func(idx int, src domain.Game) Game {
				return h.toGameVO(src)
			}),
		},
	}, nil
}

// GameDetail 获取商品详情
func (h *Handler) GameDetail(ctx *ginx.Context, req GameDetailReq) (ginx.Result, error) {
	game, err := h.svc.FindGameByKey(ctx.Request.Context(), req.Key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return gameNotFoundResult, fmt.Errorf("商品不存在: %w", err)
		}
		return systemErrorResult, fmt.Errorf("查询商品失败: %w", err)
	}
	return ginx.Result{
		Data: GameDetailResp{Game: h.toGameVO(game)},
	}, nil
}

func (h *Handler) toGameVO(game domain.Game) Game {
	return Game{
		Key:         game.Key,
		Name:        game.Name,
		Description: game.Description,
		Genre:       game.Genre,
		Platform:    game.Platform,
		Publisher:   game.Publisher,
		Price:       game.Price,
		Discount:    game.Discount,
		Stock:       game.Stock,
	}
}
