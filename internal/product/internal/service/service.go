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

package service

import (
	"context"

	"github.com/ecodeclub/gamestore/internal/product/internal/domain"
	"github.com/ecodeclub/gamestore/internal/product/internal/repository"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./service.go -destination=../../mocks/product.mock.go -package=productmocks -typed Service
type Service interface {
	FindGameByKey(ctx context.Context, key string) (domain.Game, error)
	FindGameByID(ctx context.Context, id int64) (domain.Game, error)
	ListGames(ctx context.Context, offset, limit int) ([]domain.Game, int64, error)
	CreateGame(ctx context.Context, game domain.Game) (int64, error)
	// DecrementStock 条件扣减库存, 库存不足时返回 dao.ErrInsufficientStock
	DecrementStock(ctx context.Context, id int64, n int64) error
}

func NewService(repo repository.GameRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.GameRepository
}

func (s *service) FindGameByKey(ctx context.Context, key string) (domain.Game, error) {
	return s.repo.FindGameByKey(ctx, key)
}

func (s *service) FindGameByID(ctx context.Context, id int64) (domain.Game, error) {
	return s.repo.FindGameByID(ctx, id)
}

func (s *service) ListGames(ctx context.Context, offset, limit int) ([]domain.Game, int64, error) {
	var (
		eg    errgroup.Group
		gs    []domain.Game
		total int64
	)
	eg.Go(func() error {
		var err error
		gs, err = s.repo.ListGames(ctx, offset, limit)
		return err
	})

	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalGames(ctx)
		return err
	})
	return gs, total, eg.Wait()
}

func (s *service) CreateGame(ctx context.Context, game domain.Game) (int64, error) {
	return s.repo.CreateGame(ctx, game)
}

func (s *service) DecrementStock(ctx context.Context, id int64, n int64) error {
	return s.repo.DecrementStock(ctx, id, n)
}
