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

package repository

import (
	"context"
	"database/sql"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/gamestore/internal/product/internal/domain"
	"github.com/ecodeclub/gamestore/internal/product/internal/repository/dao"
)

type GameRepository interface {
	FindGameByKey(ctx context.Context, key string) (domain.Game, error)
	FindGameByID(ctx context.Context, id int64) (domain.Game, error)
	ListGames(ctx context.Context, offset, limit int) ([]domain.Game, error)
	TotalGames(ctx context.Context) (int64, error)
	CreateGame(ctx context.Context, game domain.Game) (int64, error)
	DecrementStock(ctx context.Context, id int64, n int64) error
}

func NewGameRepository(d dao.GameDAO) GameRepository {
	return &gameRepository{d: d}
}

type gameRepository struct {
	d dao.GameDAO
}

func (g *gameRepository) FindGameByKey(ctx context.Context, key string) (domain.Game, error) {
	game, err := g.d.FindByKey(ctx, key)
	if err != nil {
		return domain.Game{}, err
	}
	return g.toDomain(game), nil
}

func (g *gameRepository) FindGameByID(ctx context.Context, id int64) (domain.Game, error) {
	game, err := g.d.FindByID(ctx, id)
	if err != nil {
		return domain.Game{}, err
	}
	return g.toDomain(game), nil
}

func (g *gameRepository) ListGames(ctx context.Context, offset, limit int) ([]domain.Game, error) {
	games, err := g.d.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(games, func(idx int, src dao.Game) domain.Game {
		return g.toDomain(src)
	}), nil
}

func (g *gameRepository) TotalGames(ctx context.Context) (int64, error) {
	return g.d.Total(ctx)
}

func (g *gameRepository) CreateGame(ctx context.Context, game domain.Game) (int64, error) {
	return g.d.Create(ctx, g.toEntity(game))
}

func (g *gameRepository) DecrementStock(ctx context.Context, id int64, n int64) error {
	return g.d.DecrementStock(ctx, id, n)
}

func (g *gameRepository) toDomain(game dao.Game) domain.Game {
	var discount *int64
	if game.Discount.Valid {
		d := game.Discount.Int64
		discount = &d
	}
	return domain.Game{
		ID:          game.Id,
		Key:         game.Key,
		Name:        game.Name,
		Description: game.Description,
		Genre:       game.Genre,
		Platform:    game.Platform,
		Publisher:   game.Publisher,
		Price:       game.Price,
		Discount:    discount,
		Stock:       game.Stock,
		Status:      domain.GameStatus(game.Status),
		Ctime:       game.Ctime,
		Utime:       game.Utime,
	}
}

func (g *gameRepository) toEntity(game domain.Game) dao.Game {
	var discount sql.NullInt64
	if game.Discount != nil {
		discount = sql.NullInt64{Int64: *game.Discount, Valid: true}
	}
	return dao.Game{
		Id:          game.ID,
		Key:         game.Key,
		Name:        game.Name,
		Description: game.Description,
		Genre:       game.Genre,
		Platform:    game.Platform,
		Publisher:   game.Publisher,
		Price:       game.Price,
		Discount:    discount,
		Stock:       game.Stock,
		Status:      game.Status.ToUint8(),
	}
}
