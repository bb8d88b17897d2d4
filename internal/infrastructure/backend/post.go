package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mao2006/lost-found-admin/internal/domain/lostfound"
)

// PostListRequest 信息列表筛选。Campus 填校区展示名、
// PublishType 填管理端种类，发送前转成线上词汇。
type PostListRequest struct {
	Campus      string
	PublishType lostfound.PublishKind
	ItemType    string
	Location    string
	Status      string
	StartTime   string
	EndTime     string
	Page        int
	PageSize    int
}

// PostListItem 信息行。
type PostListItem struct {
	ID            int64    `json:"id"`
	ItemName      string   `json:"item_name"`
	ItemType      string   `json:"item_type"`
	ItemTypeOther string   `json:"item_type_other"`
	PublishType   string   `json:"publish_type"`
	Campus        string   `json:"campus"`
	Location      string   `json:"location"`
	Features      string   `json:"features"`
	Images        []string `json:"images"`
	EventTime     string   `json:"event_time"`
	Status        string   `json:"status"`
}

// PostListResponse 信息分页结果。
type PostListResponse struct {
	List     []PostListItem `json:"list"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
	Total    int            `json:"total"`
}

// PostList 查询信息列表，出参前套用校区与种类转换。
func (c *Client) PostList(ctx context.Context, req PostListRequest) (*PostListResponse, error) {
	params := url.Values{}
	if campus := lostfound.ToCampusParam(req.Campus); campus != "" {
		params.Set("campus", campus)
	}
	if publishType := lostfound.ToPublishTypeParam(req.PublishType); publishType != "" {
		params.Set("publish_type", publishType)
	}
	if req.ItemType != "" {
		params.Set("item_type", req.ItemType)
	}
	if req.Location != "" {
		params.Set("location", req.Location)
	}
	if req.Status != "" {
		params.Set("status", req.Status)
	}
	if req.StartTime != "" {
		params.Set("start_time", req.StartTime)
	}
	if req.EndTime != "" {
		params.Set("end_time", req.EndTime)
	}
	if req.Page > 0 {
		params.Set("page", strconv.Itoa(req.Page))
	}
	if req.PageSize > 0 {
		params.Set("page_size", strconv.Itoa(req.PageSize))
	}
	var res PostListResponse
	if err := c.call(ctx, http.MethodGet, "/post/list", params, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
