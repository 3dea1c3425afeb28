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
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/gamestore/internal/product/internal/domain"
	"github.com/ecodeclub/gamestore/internal/product/internal/errs"
	"github.com/ecodeclub/gamestore/internal/product/internal/repository/dao"
	productmocks "github.com/ecodeclub/gamestore/internal/product/mocks"
	"github.com/ecodeclub/gamestore/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func newTestServer(svc *productmocks.MockService) *gin.Engine {
	server := gin.New()
	NewHandler(svc).PublicRoutes(server)
	NewAdminHandler(svc).PrivateRoutes(server)
	return server
}

func TestHandler_ListGames(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc := productmocks.NewMockService(ctrl)
	discount := int64(50)
	svc.EXPECT().ListGames(gomock.Any(), 0, 10).Return([]domain.Game{
		{
			ID:        100,
			Key:       "halo-3",
			Name:      "Halo 3",
			Genre:     "Shooter",
			Platform:  "Xbox",
			Publisher: "Microsoft",
			Price:     990,
			Stock:     10,
			Status:    domain.StatusOnShelf,
		},
		{
			ID:        101,
			Key:       "portal-2",
			Name:      "Portal 2",
			Genre:     "Puzzle",
			Platform:  "PC",
			Publisher: "Valve",
			Price:     9900,
			Discount:  &discount,
			Stock:     1,
			Status:    domain.StatusOnShelf,
		},
	}, int64(2), nil)

	server := newTestServer(svc)
	req, err := http.NewRequest(http.MethodPost,
		"/game/list", iox.NewJSONReader(ListGamesReq{Offset: 0, Limit: 10}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[ListGamesResp]()
	server.ServeHTTP(recorder, req)

	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan()
	assert.Equal(t, int64(2), resp.Data.Total)
	require.Len(t, resp.Data.Games, 2)
	assert.Equal(t, "halo-3", resp.Data.Games[0].Key)
	assert.Nil(t, resp.Data.Games[0].Discount)
	require.NotNil(t, resp.Data.Games[1].Discount)
	assert.Equal(t, int64(50), *resp.Data.Games[1].Discount)
}

func TestHandler_GameDetail(t *testing.T) {
	t.Parallel()

	t.Run("获取成功", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc := productmocks.NewMockService(ctrl)
		svc.EXPECT().FindGameByKey(gomock.Any(), "halo-3").Return(domain.Game{
			ID:          100,
			Key:         "halo-3",
			Name:        "Halo 3",
			Description: "Finish the fight",
			Genre:       "Shooter",
			Platform:    "Xbox",
			Publisher:   "Microsoft",
			Price:       990,
			Stock:       10,
			Status:      domain.StatusOnShelf,
		}, nil)

		server := newTestServer(svc)
		req, err := http.NewRequest(http.MethodPost,
			"/game/detail", iox.NewJSONReader(GameDetailReq{Key: "halo-3"}))
		req.Header.Set("content-type", "application/json")
		require.NoError(t, err)
		recorder := test.NewJSONResponseRecorder[GameDetailResp]()
		server.ServeHTTP(recorder, req)

		require.Equal(t, 200, recorder.Code)
		game := recorder.MustScan().Data.Game
		assert.Equal(t, "Halo 3", game.Name)
		assert.Equal(t, "Finish the fight", game.Description)
		assert.Equal(t, int64(990), game.Price)
	})

	t.Run("商品不存在", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc := productmocks.NewMockService(ctrl)
		svc.EXPECT().FindGameByKey(gomock.Any(), "unknown").
			Return(domain.Game{}, gorm.ErrRecordNotFound)

		server := newTestServer(svc)
		req, err := http.NewRequest(http.MethodPost,
			"/game/detail", iox.NewJSONReader(GameDetailReq{Key: "unknown"}))
		req.Header.Set("content-type", "application/json")
		require.NoError(t, err)
		recorder := test.NewJSONResponseRecorder[any]()
		server.ServeHTTP(recorder, req)

		require.Equal(t, 500, recorder.Code)
		assert.Equal(t, errs.GameNotFound.Code, recorder.MustScan().Code)
	})
}

func TestAdminHandler_CreateGame(t *testing.T) {
	t.Parallel()

	t.Run("创建成功", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc := productmocks.NewMockService(ctrl)
		svc.EXPECT().CreateGame(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, game domain.Game) (int64, error) {
				assert.Equal(t, "halo-3", game.Key)
				// 新商品默认上架
				assert.Equal(t, domain.StatusOnShelf, game.Status)
				return int64(100), nil
			})

		server := newTestServer(svc)
		req, err := http.NewRequest(http.MethodPost,
			"/game/create", iox.NewJSONReader(CreateGameReq{
				Key:       "halo-3",
				Name:      "Halo 3",
				Genre:     "Shooter",
				Platform:  "Xbox",
				Publisher: "Microsoft",
				Price:     990,
				Stock:     10,
			}))
		req.Header.Set("content-type", "application/json")
		require.NoError(t, err)
		recorder := test.NewJSONResponseRecorder[CreateGameResp]()
		server.ServeHTTP(recorder, req)

		require.Equal(t, 200, recorder.Code)
		assert.Equal(t, int64(100), recorder.MustScan().Data.ID)
	})

	t.Run("商品别名重复", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc := productmocks.NewMockService(ctrl)
		svc.EXPECT().CreateGame(gomock.Any(), gomock.Any()).
			Return(int64(0), dao.ErrDuplicateGameKey)

		server := newTestServer(svc)
		req, err := http.NewRequest(http.MethodPost,
			"/game/create", iox.NewJSONReader(CreateGameReq{Key: "halo-3"}))
		req.Header.Set("content-type", "application/json")
		require.NoError(t, err)
		recorder := test.NewJSONResponseRecorder[any]()
		server.ServeHTTP(recorder, req)

		require.Equal(t, 500, recorder.Code)
		assert.Equal(t, errs.GameKeyDuplicate.Code, recorder.MustScan().Code)
	})

	t.Run("创建失败", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc := productmocks.NewMockService(ctrl)
		svc.EXPECT().CreateGame(gomock.Any(), gomock.Any()).
			Return(int64(0), errors.New("mysql不可用"))

		server := newTestServer(svc)
		req, err := http.NewRequest(http.MethodPost,
			"/game/create", iox.NewJSONReader(CreateGameReq{Key: "halo-3"}))
		req.Header.Set("content-type", "application/json")
		require.NoError(t, err)
		recorder := test.NewJSONResponseRecorder[any]()
		server.ServeHTTP(recorder, req)

		require.Equal(t, 500, recorder.Code)
		assert.Equal(t, errs.SystemError.Code, recorder.MustScan().Code)
	})
}
