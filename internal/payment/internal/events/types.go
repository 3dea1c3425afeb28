package events

// PaymentEventTopic 支付完成事件主题
const PaymentEventTopic = "payment_events"

// PaymentEvent 最简设计, 下游要支付详情时再扩展
type PaymentEvent struct {
	OrderSN string `json:"orderSN"`
	BuyerID int64  `json:"buyerID"`
	Method  string `json:"method"`
	Amount  int64  `json:"amount"`
}
