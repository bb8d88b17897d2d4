// Package backend 是管理端唯一的后端出口：统一挂 Bearer token、
// 拆 {code, message, data} 信封、把所有失败归一化为 RequestError。
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultBaseURL 未配置时的接口前缀。
	DefaultBaseURL = "/api"
	// DefaultTimeout 单次请求的固定超时。
	DefaultTimeout = 10 * time.Second

	// fallbackErrorMessage 传输层失败的兜底文案。
	fallbackErrorMessage = "请求失败，请稍后重试"
	// envelopeFailedMessage 信封失败但后端没给 message 时的兜底文案。
	envelopeFailedMessage = "请求失败"
)

// TokenSource 提供当前会话 token，未登录返回空串。
type TokenSource interface {
	Token() string
}

// Client 请求分发器。除发请求外无任何副作用：401 也不会动会话。
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     *zap.Logger
}

// NewClient 建立后端客户端。baseURL、timeout 传零值用默认配置，
// logger 传 nil 则不输出日志。
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		logger:     logger,
	}
}

// call 发出一次请求并完成信封拆解与错误归一化。
// out 为 nil 时丢弃成功响应体。
func (c *Client) call(ctx context.Context, method, path string, params url.Values, payload any, out any) error {
	fullURL := c.baseURL + path
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return ResolveError(err, fallbackErrorMessage)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return ResolveError(err, fallbackErrorMessage)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("backend request failed",
			zap.String("method", method), zap.String("path", path), zap.Error(err))
		return ResolveError(err, fallbackErrorMessage)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ResolveError(err, fallbackErrorMessage)
	}
	c.logger.Debug("backend request",
		zap.String("method", method), zap.String("path", path),
		zap.Int("status", resp.StatusCode), zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode >= http.StatusBadRequest {
		return ResolveError(&httpError{status: resp.StatusCode, body: body}, fallbackErrorMessage)
	}

	if code, message, data, ok := decodeEnvelope(body); ok {
		if !isSuccessCode(code) {
			if message == "" {
				message = envelopeFailedMessage
			}
			return &RequestError{Message: message, Code: code, Status: resp.StatusCode}
		}
		return decodeInto(data, out)
	}

	// 部分接口不走信封，裸响应原样透传。
	return decodeInto(body, out)
}

func decodeInto(data json.RawMessage, out any) error {
	if out == nil || len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return ResolveError(err, fallbackErrorMessage)
	}
	return nil
}
