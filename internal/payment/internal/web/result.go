package web

import (
	"github.com/ecodeclub/gamestore/internal/payment/internal/errs"
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
	unsupportedMethodResult = ginx.Result{
		Code: errs.UnsupportedMethod.Code,
		Msg:  errs.UnsupportedMethod.Msg,
	}
	modelRequiredResult = ginx.Result{
		Code: errs.ModelRequired.Code,
		Msg:  errs.ModelRequired.Msg,
	}
)
