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

package config

type GamestoreConfig struct {
	DB             DBConfig
	Redis          RedisConfig
	PaymentGateway PaymentGatewayConfig
	Bank           BankConfig
	PDF            PDFConfig
}

type DBConfig struct {
	DSN string
}

type RedisConfig struct {
	Addr     string
	Password string
}

type PaymentGatewayConfig struct {
	BaseURL string
	// 单次请求超时, 秒
	Timeout int
}

type BankConfig struct {
	// 银行发票有效期, 天
	InvoiceValidityDays int
}

type PDFConfig struct {
	// 远程 chrome 实例的 websocket 地址
	ChromeWSURL string
}
