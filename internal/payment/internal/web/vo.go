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

package web

type PaymentReq struct {
	Method string        `json:"method"`
	Model  *PaymentModel `json:"model"`
}

// PaymentModel 方法特定的输入模型, 字段按 method 取用
type PaymentModel struct {
	Holder      string `json:"holder"`
	CardNumber  string `json:"cardNumber"`
	ExpiryMonth int    `json:"expiryMonth"`
	ExpiryYear  int    `json:"expiryYear"`
	CVV         string `json:"cvv"`
}

// BoxReceiptVO ibox 终端回执, 字段名与外部网关保持一致
type BoxReceiptVO struct {
	UserID      int64  `json:"userId"`
	OrderID     string `json:"orderId"`
	PaymentDate string `json:"paymentDate"`
	Sum         int64  `json:"sum"`
}
