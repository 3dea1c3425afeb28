package errs

var (
	SystemError    = ErrorCode{Code: 503001, Msg: "系统错误"}
	CartEmpty      = ErrorCode{Code: 503002, Msg: "购物车为空"}
	GameNotFound   = ErrorCode{Code: 503003, Msg: "商品不存在"}
	OutOfStock     = ErrorCode{Code: 503004, Msg: "商品已售罄"}
	NotEnoughStock = ErrorCode{Code: 503005, Msg: "商品库存不足"}
	ItemNotInCart  = ErrorCode{Code: 503006, Msg: "商品不在购物车中"}
	OrderClosed    = ErrorCode{Code: 503007, Msg: "订单已关闭, 不可修改"}
	OrderNotFound  = ErrorCode{Code: 503008, Msg: "订单不存在"}
	InvalidStatus  = ErrorCode{Code: 503009, Msg: "订单状态非法"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
