package errs

var (
	SystemError       = ErrorCode{Code: 504001, Msg: "系统错误"}
	CartEmpty         = ErrorCode{Code: 504002, Msg: "购物车为空"}
	UnsupportedMethod = ErrorCode{Code: 504003, Msg: "不支持的支付方式"}
	ModelRequired     = ErrorCode{Code: 504004, Msg: "缺少支付方式所需的参数"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
