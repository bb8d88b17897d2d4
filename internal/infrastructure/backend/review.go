package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// PendingListRequest 待审核信息分页。
type PendingListRequest struct {
	Page     int
	PageSize int
}

// PendingPostItem 待审核信息行。
type PendingPostItem struct {
	ID          int64  `json:"id"`
	ItemName    string `json:"item_name"`
	ItemType    string `json:"item_type"`
	PublishType string `json:"publish_type"`
	Location    string `json:"location"`
	ContactName string `json:"contact_name"`
	EventTime   string `json:"event_time"`
	CreatedAt   string `json:"created_at"`
}

// PendingListResponse 待审核分页结果。
type PendingListResponse struct {
	List     []PendingPostItem `json:"list"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	Total    int               `json:"total"`
}

// PostDetail 信息详情。
type PostDetail struct {
	ID                int64    `json:"id"`
	ItemName          string   `json:"item_name"`
	ItemType          string   `json:"item_type"`
	PublishType       string   `json:"publish_type"`
	Location          string   `json:"location"`
	Features          string   `json:"features"`
	Images            []string `json:"images"`
	EventTime         string   `json:"event_time"`
	CreatedAt         string   `json:"created_at"`
	Status            string   `json:"status"`
	PublisherID       int64    `json:"publisher_id"`
	ContactName       string   `json:"contact_name"`
	ContactPhone      string   `json:"contact_phone"`
	HasReward         bool     `json:"has_reward"`
	RewardDescription string   `json:"reward_description"`
}

// PostOperationRequest 针对单条信息的操作。
type PostOperationRequest struct {
	PostID int64 `json:"post_id"`
}

// RejectPostRequest 驳回信息，必须带原因。
type RejectPostRequest struct {
	PostID int64  `json:"post_id"`
	Reason string `json:"reason"`
}

// ArchivePostRequest 归档信息。
type ArchivePostRequest struct {
	PostID        int64  `json:"post_id"`
	ArchiveMethod string `json:"archive_method"`
}

// OperationResponse 操作结果。
type OperationResponse struct {
	Success bool `json:"success"`
}

// StatisticsResponse 管理端统计。
type StatisticsResponse struct {
	StatusCounts   map[string]int    `json:"status_counts"`
	TypeCounts     map[string]int    `json:"type_counts"`
	TypePercentage map[string]string `json:"type_percentage"`
}

// PendingPostList 查询待审核信息。分页参数大小写各发一份，
// 兼容后端两代参数命名。
func (c *Client) PendingPostList(ctx context.Context, req PendingListRequest) (*PendingListResponse, error) {
	params := url.Values{}
	if req.Page > 0 {
		page := strconv.Itoa(req.Page)
		params.Set("page", page)
		params.Set("Page", page)
	}
	if req.PageSize > 0 {
		pageSize := strconv.Itoa(req.PageSize)
		params.Set("page_size", pageSize)
		params.Set("PageSize", pageSize)
	}
	var res PendingListResponse
	if err := c.call(ctx, http.MethodGet, "/admin/list", params, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// PostDetail 查询信息详情。
func (c *Client) PostDetail(ctx context.Context, postID int64) (*PostDetail, error) {
	params := url.Values{}
	params.Set("post_id", strconv.FormatInt(postID, 10))
	var res PostDetail
	if err := c.call(ctx, http.MethodGet, "/admin/detail", params, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ApprovePost 审核通过。
func (c *Client) ApprovePost(ctx context.Context, req PostOperationRequest) (*OperationResponse, error) {
	var res OperationResponse
	if err := c.call(ctx, http.MethodPost, "/admin/approve", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// RejectPost 驳回。
func (c *Client) RejectPost(ctx context.Context, req RejectPostRequest) (*OperationResponse, error) {
	var res OperationResponse
	if err := c.call(ctx, http.MethodPost, "/admin/reject", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ClaimPost 标记认领。
func (c *Client) ClaimPost(ctx context.Context, req PostOperationRequest) (*OperationResponse, error) {
	var res OperationResponse
	if err := c.call(ctx, http.MethodPost, "/admin/claim", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ArchivePost 归档。
func (c *Client) ArchivePost(ctx context.Context, req ArchivePostRequest) (*OperationResponse, error) {
	var res OperationResponse
	if err := c.call(ctx, http.MethodPost, "/admin/archive", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// DeletePost 删除信息。
func (c *Client) DeletePost(ctx context.Context, req PostOperationRequest) (*OperationResponse, error) {
	var res OperationResponse
	if err := c.call(ctx, http.MethodDelete, "/admin/post/delete", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Statistics 查询管理端统计。
func (c *Client) Statistics(ctx context.Context) (*StatisticsResponse, error) {
	var res StatisticsResponse
	if err := c.call(ctx, http.MethodGet, "/admin/statistics", nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
