package ioc

import (
	"github.com/gotomicro/ego/server/egin"
)

type App struct {
	Web *egin.Component
}
