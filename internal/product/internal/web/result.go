package web

import (
	"github.com/ecodeclub/gamestore/internal/product/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	gameNotFoundResult = ginx.Result{
		Code: errs.GameNotFound.Code,
		Msg:  errs.GameNotFound.Msg,
	}
	gameKeyDuplicateResult = ginx.Result{
		Code: errs.GameKeyDuplicate.Code,
		Msg:  errs.GameKeyDuplicate.Msg,
	}
)
