//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/gamestore/internal/order"
	"github.com/ecodeclub/gamestore/internal/payment"
	"github.com/ecodeclub/gamestore/internal/product"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitMQ,
		InitPDFConverter,
		InitSession,
		product.InitModule,
		order.InitModule,
		payment.InitModule,
		wire.FieldsOf(new(*product.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*order.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*payment.Module), "Hdl"),
		initGinxServer)
	return new(App), nil
}
