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

package gateway

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHTTPClient 按调用次数返回预设响应
type fakeHTTPClient struct {
	calls     int
	responses []fakeResponse
}

type fakeResponse struct {
	status int
	body   string
	err    error
}

func (f *fakeHTTPClient) Do(req *http.Request) (*http.Response, error) {
	idx := f.calls
	if idx >= len(f.responses) {
		idx = len(f.responses) - 1
	}
	f.calls++
	r := f.responses[idx]
	if r.err != nil {
		return nil, r.err
	}
	return &http.Response{
		StatusCode: r.status,
		Body:       io.NopCloser(strings.NewReader(r.body)),
		Request:    req,
	}, nil
}

// newTestClient 重试间隔压到毫秒级, 避免测试等待真实退避
func newTestClient(httpClient HTTPClient) *Client {
	return &Client{
		baseURL:     "http://gateway.test",
		client:      httpClient,
		interval:    time.Millisecond,
		maxInterval: 4 * time.Millisecond,
		maxRetries:  3,
	}
}

func TestClient_PostJSON(t *testing.T) {
	t.Parallel()

	t.Run("成功解析响应", func(t *testing.T) {
		t.Parallel()
		httpClient := &fakeHTTPClient{responses: []fakeResponse{
			{status: http.StatusOK, body: `{"userId": 7, "sum": 1999}`},
		}}
		c := newTestClient(httpClient)
		var resp struct {
			UserID int64 `json:"userId"`
			Sum    int64 `json:"sum"`
		}
		err := c.PostJSON(context.Background(), "/api/payments/ibox", map[string]any{}, &resp)
		require.NoError(t, err)
		assert.Equal(t, 1, httpClient.calls)
		assert.Equal(t, int64(7), resp.UserID)
		assert.Equal(t, int64(1999), resp.Sum)
	})

	t.Run("5xx重试至次数用尽", func(t *testing.T) {
		t.Parallel()
		httpClient := &fakeHTTPClient{responses: []fakeResponse{
			{status: http.StatusInternalServerError},
		}}
		c := newTestClient(httpClient)
		err := c.PostJSON(context.Background(), "/api/payments/visa", map[string]any{}, nil)
		assert.ErrorIs(t, err, ErrRetriesExhausted)
		// 首次请求 + 3 次重试
		assert.Equal(t, 4, httpClient.calls)
	})

	t.Run("5xx重试后成功", func(t *testing.T) {
		t.Parallel()
		httpClient := &fakeHTTPClient{responses: []fakeResponse{
			{status: http.StatusBadGateway},
			{status: http.StatusServiceUnavailable},
			{status: http.StatusOK, body: `{}`},
		}}
		c := newTestClient(httpClient)
		err := c.PostJSON(context.Background(), "/api/payments/visa", map[string]any{}, nil)
		require.NoError(t, err)
		assert.Equal(t, 3, httpClient.calls)
	})

	t.Run("网络错误重试", func(t *testing.T) {
		t.Parallel()
		httpClient := &fakeHTTPClient{responses: []fakeResponse{
			{err: errors.New("connection refused")},
			{status: http.StatusOK, body: `{}`},
		}}
		c := newTestClient(httpClient)
		err := c.PostJSON(context.Background(), "/api/payments/ibox", map[string]any{}, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, httpClient.calls)
	})

	t.Run("4xx不重试", func(t *testing.T) {
		t.Parallel()
		httpClient := &fakeHTTPClient{responses: []fakeResponse{
			{status: http.StatusBadRequest},
		}}
		c := newTestClient(httpClient)
		err := c.PostJSON(context.Background(), "/api/payments/visa", map[string]any{}, nil)
		assert.ErrorIs(t, err, ErrClientError)
		assert.Equal(t, 1, httpClient.calls)
	})

	t.Run("响应体不可解析不重试", func(t *testing.T) {
		t.Parallel()
		httpClient := &fakeHTTPClient{responses: []fakeResponse{
			{status: http.StatusOK, body: `not-json`},
		}}
		c := newTestClient(httpClient)
		var resp map[string]any
		err := c.PostJSON(context.Background(), "/api/payments/ibox", map[string]any{}, &resp)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrRetriesExhausted)
		assert.Equal(t, 1, httpClient.calls)
	})

	t.Run("context取消中止重试", func(t *testing.T) {
		t.Parallel()
		httpClient := &fakeHTTPClient{responses: []fakeResponse{
			{status: http.StatusInternalServerError},
		}}
		c := newTestClient(httpClient)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := c.PostJSON(ctx, "/api/payments/visa", map[string]any{}, nil)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, httpClient.calls)
	})
}
