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

package domain

import "strings"

const (
	// MethodBank 银行转账, 本地生成PDF发票
	MethodBank = "bank"
	// MethodBoxTerminal ibox 终端, 走外部支付网关
	MethodBoxTerminal = "ibox terminal"
	// MethodCard visa 卡支付, 走外部支付网关
	MethodCard = "visa"
)

// NormalizeMethod 支付方式大小写不敏感
func NormalizeMethod(method string) string {
	return strings.ToLower(strings.TrimSpace(method))
}

// PaymentRequest 支付请求, Method 决定哪个输入模型生效
type PaymentRequest struct {
	Method string
	Bank   *BankModel
	Box    *BoxModel
	Card   *CardModel
}

// BankModel 发票有效期来自配置, 不由调用方提供
type BankModel struct {
	ValidityDays int
}

type BoxModel struct{}

type CardModel struct {
	Holder      string
	CardNumber  string
	ExpiryMonth int
	ExpiryYear  int
	CVV         string
}

// PaymentResult 支付结果的封闭集合
type PaymentResult interface {
	receipt()
}

// BankReceipt 银行转账发票
type BankReceipt struct {
	PDF      []byte
	FileName string
}

func (BankReceipt) receipt() {}

// BoxReceipt ibox 终端回执
type BoxReceipt struct {
	BuyerID int64
	OrderSN string
	PaidAt  string
	Amount  int64
}

func (BoxReceipt) receipt() {}

// CardReceipt visa 只返回确认, 没有回执内容
type CardReceipt struct{}

func (CardReceipt) receipt() {}
