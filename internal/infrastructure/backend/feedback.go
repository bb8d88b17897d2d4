package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// FeedbackListRequest 反馈列表筛选，Processed 为 nil 时不过滤。
type FeedbackListRequest struct {
	Page      int
	PageSize  int
	Processed *bool
}

// FeedbackListItem 反馈行。
type FeedbackListItem struct {
	ID          int64  `json:"id"`
	PostID      int64  `json:"post_id"`
	ReporterID  int64  `json:"reporter_id"`
	Type        string `json:"type"`
	TypeOther   string `json:"type_other"`
	Description string `json:"description"`
	Processed   bool   `json:"processed"`
	ProcessedAt any    `json:"processed_at,omitempty"`
	ProcessedBy int64  `json:"processed_by,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// FeedbackListResponse 反馈分页结果。
type FeedbackListResponse struct {
	List     []FeedbackListItem `json:"list"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
	Total    int                `json:"total"`
}

// FeedbackRelatedPost 反馈关联的信息概要。
type FeedbackRelatedPost struct {
	ID          int64  `json:"id"`
	ItemName    string `json:"item_name"`
	ItemType    string `json:"item_type"`
	Campus      string `json:"campus"`
	Location    string `json:"location"`
	Status      string `json:"status"`
	PublisherID int64  `json:"publisher_id"`
	CreatedAt   string `json:"created_at"`
}

// FeedbackDetail 反馈详情，post 可能缺失（原信息已删除）。
type FeedbackDetail struct {
	FeedbackListItem
	Post *FeedbackRelatedPost `json:"post,omitempty"`
}

// ProcessFeedbackRequest 处理反馈。
type ProcessFeedbackRequest struct {
	FeedbackID int64 `json:"feedback_id"`
}

// FeedbackList 查询反馈列表。
func (c *Client) FeedbackList(ctx context.Context, req FeedbackListRequest) (*FeedbackListResponse, error) {
	params := url.Values{}
	if req.Page > 0 {
		params.Set("page", strconv.Itoa(req.Page))
	}
	if req.PageSize > 0 {
		params.Set("page_size", strconv.Itoa(req.PageSize))
	}
	if req.Processed != nil {
		params.Set("processed", strconv.FormatBool(*req.Processed))
	}
	var res FeedbackListResponse
	if err := c.call(ctx, http.MethodGet, "/feedback/list", params, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// FeedbackDetail 查询反馈详情。
func (c *Client) FeedbackDetail(ctx context.Context, id int64) (*FeedbackDetail, error) {
	params := url.Values{}
	params.Set("id", strconv.FormatInt(id, 10))
	var res FeedbackDetail
	if err := c.call(ctx, http.MethodGet, "/feedback/detail", params, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ProcessFeedback 标记反馈已处理。
func (c *Client) ProcessFeedback(ctx context.Context, req ProcessFeedbackRequest) (*OperationResponse, error) {
	var res OperationResponse
	if err := c.call(ctx, http.MethodPost, "/feedback/process", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
