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

package payment

import (
	"github.com/ecodeclub/gamestore/internal/order"
	"github.com/ecodeclub/gamestore/internal/payment/internal/service"
	"github.com/ecodeclub/gamestore/internal/payment/internal/web"
	"github.com/ecodeclub/gamestore/internal/pkg/pdf"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
)

func InitModule(q mq.MQ, converter pdf.Converter, orderModule *order.Module) *Module {
	wire.Build(
		initGatewayClient,
		initStrategies,
		initProducer,
		service.NewService,
		web.NewHandler,
		wire.FieldsOf(new(*order.Module), "Svc", "CartSvc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
