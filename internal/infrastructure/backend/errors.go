package backend

import (
	"encoding/json"
	"errors"
	"fmt"
)

// RequestError 归一化后的请求错误：始终带有可直接展示的文案，
// 可选后端业务码与 HTTP 状态码（0 表示缺省）。
// 调用方看到的所有失败最终都是这一种类型。
type RequestError struct {
	Message string
	Code    int
	Status  int
}

func (e *RequestError) Error() string {
	return e.Message
}

// httpError 拿到了 HTTP 响应但属于失败路径，保留状态码与响应体
// 供 ResolveError 提取文案，仅在包内流转。
type httpError struct {
	status int
	body   []byte
}

func (e *httpError) Error() string {
	return fmt.Sprintf("request failed with status %d", e.status)
}

// backendErrorPayload 后端错误响应体的松散形态，message 与 msg 并存过。
type backendErrorPayload struct {
	Code    any    `json:"code"`
	Message string `json:"message"`
	Msg     string `json:"msg"`
}

func decodeErrorPayload(body []byte) (payload backendErrorPayload, ok bool) {
	if len(body) == 0 {
		return payload, false
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return backendErrorPayload{}, false
	}
	return payload, true
}

// ResolveError 将任意错误归一化为 *RequestError：
//   - 已归一化的错误原样返回（幂等）；
//   - 带响应体的 HTTP 错误按 message → msg → 错误自身文案 → 兜底文案取值，
//     业务码只在响应体里确为数字时附带；
//   - 其余错误取其自身文案，空文案用兜底文案。
//
// 纯函数，不吞错误也不抛错误。
func ResolveError(err error, fallback string) *RequestError {
	if err == nil {
		return &RequestError{Message: fallback}
	}

	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr
	}

	var he *httpError
	if errors.As(err, &he) {
		message := ""
		code := 0
		if payload, ok := decodeErrorPayload(he.body); ok {
			if payload.Message != "" {
				message = payload.Message
			} else if payload.Msg != "" {
				message = payload.Msg
			}
			if n, isNumber := payload.Code.(float64); isNumber {
				code = int(n)
			}
		}
		if message == "" {
			message = he.Error()
		}
		if message == "" {
			message = fallback
		}
		return &RequestError{Message: message, Code: code, Status: he.status}
	}

	if msg := err.Error(); msg != "" {
		return &RequestError{Message: msg}
	}
	return &RequestError{Message: fallback}
}

// ErrorMessage 只取展示文案，取值优先级与 ResolveError 一致，
// 给 toast 一类只要一句话的场景用。
func ErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
