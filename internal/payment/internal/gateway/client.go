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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ecodeclub/ekit/retry"
)

// 错误类型定义
var (
	// ErrClientError 客户端错误（4xx），不应重试
	ErrClientError = errors.New("客户端错误")
	// ErrServerError 服务端错误（5xx），应该重试
	ErrServerError = errors.New("服务端错误")
	// ErrNetworkError 网络错误，应该重试
	ErrNetworkError = errors.New("网络错误")
	// ErrRetriesExhausted 重试次数用尽, 包装最后一次错误
	ErrRetriesExhausted = errors.New("超过最大重试次数")
)

// HTTPClient HTTP 客户端接口，用于执行 HTTP 请求
// 便于测试时 mock
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client 支付网关客户端
// 每次调用内置指数退避重试: 初始2s, 上限8s, 额外重试3次, 最多4次请求
type Client struct {
	baseURL     string
	client      HTTPClient
	interval    time.Duration
	maxInterval time.Duration
	maxRetries  int32
}

func NewClient(baseURL string, client HTTPClient) *Client {
	return &Client{
		baseURL:     baseURL,
		client:      client,
		interval:    2 * time.Second,
		maxInterval: 8 * time.Second,
		maxRetries:  3,
	}
}

// PostJSON 向网关 POST 一个 JSON 请求并解析响应
// resp 为 nil 时丢弃响应体
func (c *Client) PostJSON(ctx context.Context, path string, payload any, resp any) error {
	return c.doWithRetry(ctx, func() error {
		return c.postOnce(ctx, path, payload, resp)
	})
}

func (c *Client) doWithRetry(ctx context.Context, operation func() error) error {
	retryStrategy, err := retry.NewExponentialBackoffRetryStrategy(
		c.interval,
		c.maxInterval,
		c.maxRetries,
	)
	if err != nil {
		return fmt.Errorf("创建重试策略失败: %w", err)
	}

	var lastErr error
	for {
		// 检查 context 是否已取消
		if ctx.Err() != nil {
			return fmt.Errorf("context已取消: %w", ctx.Err())
		}

		err := operation()
		if err == nil {
			return nil
		}

		lastErr = err

		// 只有网络错误和 5xx 才重试
		if !errors.Is(err, ErrNetworkError) && !errors.Is(err, ErrServerError) {
			return err
		}

		next, ok := retryStrategy.Next()
		if !ok {
			return fmt.Errorf("%w, 最后一次错误: %v", ErrRetriesExhausted, lastErr)
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("context已取消: %w", ctx.Err())
		case <-time.After(next):
			// 继续重试
		}
	}
}

// postOnce 执行单次请求（不重试）
func (c *Client) postOnce(ctx context.Context, path string, payload any, result any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		// 序列化错误不应重试
		return fmt.Errorf("%w: 序列化请求失败: %v", ErrClientError, err)
	}

	url := fmt.Sprintf("%s%s", c.baseURL, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: 创建请求失败: %v", ErrClientError, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		// 网络错误应该重试
		return fmt.Errorf("%w: 请求失败: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return fmt.Errorf("%w: HTTP状态码=%d", ErrClientError, resp.StatusCode)
	}
	if resp.StatusCode >= 500 {
		return fmt.Errorf("%w: HTTP状态码=%d", ErrServerError, resp.StatusCode)
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		// 响应体不可解析直接失败, 不重试
		return fmt.Errorf("解析响应失败: %w", err)
	}
	return nil
}
