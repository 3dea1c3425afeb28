package web

import (
	"errors"
	"fmt"

	"github.com/ecodeclub/gamestore/internal/product/internal/domain"
	"github.com/ecodeclub/gamestore/internal/product/internal/repository/dao"
	"github.com/ecodeclub/gamestore/internal/product/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/game")
	g.POST("/create", ginx.B[CreateGameReq](h.CreateGame))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

// CreateGame 上架新商品
func (h *AdminHandler) CreateGame(ctx *ginx.Context, req CreateGameReq) (ginx.Result, error) {
	id, err := h.svc.CreateGame(ctx.Request.Context(), domain.Game{
		Key:         req.Key,
		Name:        req.Name,
		Description: req.Description,
		Genre:       req.Genre,
		Platform:    req.Platform,
		Publisher:   req.Publisher,
		Price:       req.Price,
		Discount:    req.Discount,
		Stock:       req.Stock,
		Status:      domain.StatusOnShelf,
	})
	if err != nil {
		if errors.Is(err, dao.ErrDuplicateGameKey) {
			return gameKeyDuplicateResult, fmt.Errorf("创建商品失败: %w", err)
		}
		return systemErrorResult, fmt.Errorf("创建商品失败: %w", err)
	}
	return ginx.Result{
		Data: CreateGameResp{ID: id},
	}, nil
}
