package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// AnnouncementListRequest 公告分页。
type AnnouncementListRequest struct {
	Page     int
	PageSize int
}

// AnnouncementItem 公告行。
type AnnouncementItem struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Type        string `json:"type"`
	PublisherID int64  `json:"publisher_id,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// AnnouncementListResponse 公告分页结果。
type AnnouncementListResponse struct {
	List     []AnnouncementItem `json:"list"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
	Total    int                `json:"total"`
}

// PublishAnnouncementRequest 发布公告，Type 取 SYSTEM 或 REGION。
type PublishAnnouncementRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Type    string `json:"type"`
}

// PublishAnnouncementResponse 发布结果。
type PublishAnnouncementResponse struct {
	ID int64 `json:"id"`
}

// ApproveAnnouncementRequest 公告审核通过。
type ApproveAnnouncementRequest struct {
	ID int64 `json:"id"`
}

func announcementParams(req AnnouncementListRequest) url.Values {
	params := url.Values{}
	if req.Page > 0 {
		params.Set("page", strconv.Itoa(req.Page))
	}
	if req.PageSize > 0 {
		params.Set("page_size", strconv.Itoa(req.PageSize))
	}
	return params
}

// AnnouncementList 查询已发布公告。
func (c *Client) AnnouncementList(ctx context.Context, req AnnouncementListRequest) (*AnnouncementListResponse, error) {
	var res AnnouncementListResponse
	if err := c.call(ctx, http.MethodGet, "/announcement/list", announcementParams(req), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// AnnouncementReviewList 查询待审核公告。
func (c *Client) AnnouncementReviewList(ctx context.Context, req AnnouncementListRequest) (*AnnouncementListResponse, error) {
	var res AnnouncementListResponse
	if err := c.call(ctx, http.MethodGet, "/announcement/review-list", announcementParams(req), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// PublishAnnouncement 发布公告。
func (c *Client) PublishAnnouncement(ctx context.Context, req PublishAnnouncementRequest) (*PublishAnnouncementResponse, error) {
	var res PublishAnnouncementResponse
	if err := c.call(ctx, http.MethodPost, "/announcement/publish", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ApproveAnnouncement 公告审核通过。
func (c *Client) ApproveAnnouncement(ctx context.Context, req ApproveAnnouncementRequest) error {
	return c.call(ctx, http.MethodPost, "/announcement/approve", nil, req, nil)
}
