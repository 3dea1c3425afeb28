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

package bank

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/gamestore/internal/order"
	"github.com/ecodeclub/gamestore/internal/payment/internal/domain"
	"github.com/ecodeclub/gamestore/internal/pkg/pdf"
)

// 银行转账不走外部网关, 本地渲染发票即可
const invoiceTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Invoice {{.OrderSN}}</title></head>
<body>
<h1>发票 / Invoice</h1>
<p>订单号: {{.OrderSN}}</p>
<p>买家: {{.BuyerID}}</p>
<p>开具日期: {{.IssuedAt}}</p>
<p>付款截止: {{.ValidUntil}}</p>
<table border="1" cellspacing="0" cellpadding="4">
<tr><th>商品</th><th>单价</th><th>数量</th><th>小计</th></tr>
{{range .Lines}}<tr><td>{{.Name}}</td><td>{{.Price}}</td><td>{{.Quantity}}</td><td>{{.Subtotal}}</td></tr>
{{end}}</table>
<h2>合计: {{.Total}}</h2>
</body>
</html>`

type Strategy struct {
	converter    pdf.Converter
	validityDays int
	tmpl         *template.Template
}

func NewStrategy(converter pdf.Converter, validityDays int) *Strategy {
	return &Strategy{
		converter:    converter,
		validityDays: validityDays,
		tmpl:         template.Must(template.New("invoice").Parse(invoiceTemplate)),
	}
}

func (s *Strategy) Pay(ctx context.Context, ord order.Order, buyerID int64, req domain.PaymentRequest) (domain.PaymentResult, error) {
	html, err := s.renderInvoice(ord, buyerID, s.validity(req))
	if err != nil {
		return nil, fmt.Errorf("渲染发票失败: %w", err)
	}
	data, err := s.converter.ConvertHTMLToPDF(ctx, html,
		pdf.WithTitle(fmt.Sprintf("Invoice %s", ord.SN)))
	if err != nil {
		return nil, fmt.Errorf("生成发票PDF失败: %w", err)
	}
	return domain.BankReceipt{
		PDF:      data,
		FileName: fmt.Sprintf("invoice_%s.pdf", ord.SN),
	}, nil
}

func (s *Strategy) validity(req domain.PaymentRequest) int {
	if req.Bank != nil && req.Bank.ValidityDays > 0 {
		return req.Bank.ValidityDays
	}
	return s.validityDays
}

type invoiceLine struct {
	Name     string
	Price    string
	Quantity int64
	Subtotal string
}

type invoiceData struct {
	OrderSN    string
	BuyerID    int64
	IssuedAt   string
	ValidUntil string
	Lines      []invoiceLine
	Total      string
}

func (s *Strategy) renderInvoice(ord order.Order, buyerID int64, validityDays int) (string, error) {
	now := time.Now()
	data := invoiceData{
		OrderSN:    ord.SN,
		BuyerID:    buyerID,
		IssuedAt:   now.Format("2006-01-02"),
		ValidUntil: now.AddDate(0, 0, validityDays).Format("2006-01-02"),
		Lines: slice.Map(ord.Items, func(idx int, src order.OrderItem) invoiceLine {
			return invoiceLine{
				Name:     src.GameName,
				Price:    formatPrice(src.Price),
				Quantity: src.Quantity,
				Subtotal: formatPrice(src.Price * src.Quantity),
			}
		}),
		Total: formatPrice(ord.Total()),
	}
	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// formatPrice 分转元
func formatPrice(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100)
}
