package web

import (
	"github.com/ecodeclub/gamestore/internal/order/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	cartEmptyResult = ginx.Result{
		Code: errs.CartEmpty.Code,
		Msg:  errs.CartEmpty.Msg,
	}
	gameNotFoundResult = ginx.Result{
		Code: errs.GameNotFound.Code,
		Msg:  errs.GameNotFound.Msg,
	}
	outOfStockResult = ginx.Result{
		Code: errs.OutOfStock.Code,
		Msg:  errs.OutOfStock.Msg,
	}
	notEnoughStockResult = ginx.Result{
		Code: errs.NotEnoughStock.Code,
		Msg:  errs.NotEnoughStock.Msg,
	}
	itemNotInCartResult = ginx.Result{
		Code: errs.ItemNotInCart.Code,
		Msg:  errs.ItemNotInCart.Msg,
	}
	orderNotFoundResult = ginx.Result{
		Code: errs.OrderNotFound.Code,
		Msg:  errs.OrderNotFound.Msg,
	}
	invalidStatusResult = ginx.Result{
		Code: errs.InvalidStatus.Code,
		Msg:  errs.InvalidStatus.Msg,
	}
)
