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

//go:build wireinject

package startup

import (
	"github.com/ecodeclub/gamestore/internal/order"
	"github.com/ecodeclub/gamestore/internal/order/internal/repository"
	"github.com/ecodeclub/gamestore/internal/order/internal/repository/cache"
	"github.com/ecodeclub/gamestore/internal/order/internal/repository/dao"
	"github.com/ecodeclub/gamestore/internal/order/internal/service"
	"github.com/ecodeclub/gamestore/internal/order/internal/web"
	"github.com/ecodeclub/gamestore/internal/pkg/sequencenumber"
	"github.com/ecodeclub/gamestore/internal/product"
	testioc "github.com/ecodeclub/gamestore/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(productSvc product.Service) *order.Module {
	wire.Build(
		testioc.BaseSet,
		initOrderDAO,
		cache.NewCartECache,
		repository.NewOrderRepository,
		sequencenumber.NewGenerator,
		service.NewCartService,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(order.Module), "*"),
	)
	return new(order.Module)
}

func initOrderDAO(db *egorm.Component) dao.OrderDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewOrderGORMDAO(db)
}
