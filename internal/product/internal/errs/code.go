package errs

var (
	SystemError      = ErrorCode{Code: 502001, Msg: "系统错误"}
	GameNotFound     = ErrorCode{Code: 502002, Msg: "商品不存在"}
	GameKeyDuplicate = ErrorCode{Code: 502003, Msg: "商品别名已存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
