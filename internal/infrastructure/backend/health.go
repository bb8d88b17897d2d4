package backend

import (
	"context"
	"net/http"
)

// HealthResponse 健康探针。
type HealthResponse struct {
	Service   string `json:"service"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Health 探活，接口不走信封。
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var res HealthResponse
	if err := c.call(ctx, http.MethodGet, "/health", nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
