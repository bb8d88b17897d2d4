package backend

import "encoding/json"

// successCodes 信封约定的成功码全集。HTTP 200 但业务码不在此集合
// 同样算失败。
var successCodes = map[int]struct{}{
	0:   {},
	200: {},
}

// envelopeProbe 信封的显式解码形态：code、message、data 三键齐全
// 才按信封处理，任一缺失按裸响应透传。
type envelopeProbe struct {
	Code    *int             `json:"code"`
	Message *string          `json:"message"`
	Data    *json.RawMessage `json:"data"`
}

// decodeEnvelope 尝试把响应体按 {code, message, data} 信封解析。
// 非对象、键不全或 code 不是数字都返回 ok=false。
func decodeEnvelope(body []byte) (code int, message string, data json.RawMessage, ok bool) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(body, &keys); err != nil {
		return 0, "", nil, false
	}
	for _, key := range []string{"code", "message", "data"} {
		if _, present := keys[key]; !present {
			return 0, "", nil, false
		}
	}

	var probe envelopeProbe
	if err := json.Unmarshal(body, &probe); err != nil {
		return 0, "", nil, false
	}
	if probe.Code == nil {
		return 0, "", nil, false
	}
	if probe.Message != nil {
		message = *probe.Message
	}
	if probe.Data != nil {
		data = *probe.Data
	}
	return *probe.Code, message, data, true
}

// isSuccessCode 判断信封业务码是否表示成功。
func isSuccessCode(code int) bool {
	_, ok := successCodes[code]
	return ok
}
