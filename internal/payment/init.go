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

package payment

import (
	"net/http"
	"time"

	"github.com/ecodeclub/gamestore/internal/payment/internal/domain"
	"github.com/ecodeclub/gamestore/internal/payment/internal/events"
	"github.com/ecodeclub/gamestore/internal/payment/internal/gateway"
	"github.com/ecodeclub/gamestore/internal/payment/internal/service"
	"github.com/ecodeclub/gamestore/internal/payment/internal/service/bank"
	"github.com/ecodeclub/gamestore/internal/payment/internal/service/card"
	"github.com/ecodeclub/gamestore/internal/payment/internal/service/terminal"
	"github.com/ecodeclub/gamestore/internal/pkg/pdf"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/econf"
)

func initGatewayClient() *gateway.Client {
	type Config struct {
		BaseURL string        `yaml:"baseURL"`
		Timeout time.Duration `yaml:"timeout"`
	}
	var cfg Config
	err := econf.UnmarshalKey("paymentGateway", &cfg)
	if err != nil {
		panic(err)
	}
	return gateway.NewClient(cfg.BaseURL, &http.Client{Timeout: cfg.Timeout})
}

func initStrategies(client *gateway.Client, converter pdf.Converter) map[string]service.Strategy {
	type Config struct {
		InvoiceValidityDays int `yaml:"invoiceValidityDays"`
	}
	var cfg Config
	err := econf.UnmarshalKey("bank", &cfg)
	if err != nil {
		panic(err)
	}
	return map[string]service.Strategy{
		domain.MethodBank:        bank.NewStrategy(converter, cfg.InvoiceValidityDays),
		domain.MethodBoxTerminal: terminal.NewStrategy(client),
		domain.MethodCard:        card.NewStrategy(client),
	}
}

func initProducer(q mq.MQ) events.PaymentEventProducer {
	producer, err := events.NewPaymentEventProducer(q)
	if err != nil {
		panic(err)
	}
	return producer
}
