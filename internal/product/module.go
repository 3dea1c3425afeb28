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

package product

import (
	"github.com/ecodeclub/gamestore/internal/product/internal/domain"
	"github.com/ecodeclub/gamestore/internal/product/internal/repository/dao"
	"github.com/ecodeclub/gamestore/internal/product/internal/service"
	"github.com/ecodeclub/gamestore/internal/product/internal/web"
)

type (
	Handler      = web.Handler
	AdminHandler = web.AdminHandler
	Game         = domain.Game
	GameStatus   = domain.GameStatus
	Service      = service.Service
)

const (
	StatusOffShelf = domain.StatusOffShelf
	StatusOnShelf  = domain.StatusOnShelf
)

var (
	// ErrInsufficientStock 条件扣减库存失败
	ErrInsufficientStock = dao.ErrInsufficientStock
	// ErrDuplicateGameKey 商品别名已存在
	ErrDuplicateGameKey = dao.ErrDuplicateGameKey
)

type Module struct {
	Hdl      *Handler
	AdminHdl *AdminHandler
	Svc      Service
}
