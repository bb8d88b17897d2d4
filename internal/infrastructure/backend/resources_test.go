package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mao2006/lost-found-admin/internal/domain/lostfound"
)

// captureServer 回放一个成功信封并记录请求细节。
func captureServer(t *testing.T, data string) (*httptest.Server, *http.Request, *url.Values, *[]byte) {
	t.Helper()
	var captured http.Request
	var query url.Values
	var body []byte
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = *r
		query = r.URL.Query()
		body, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"code":0,"message":"ok","data":` + data + `}`))
	}))
	t.Cleanup(ts.Close)
	return ts, &captured, &query, &body
}

func TestPostList_TransformsOutboundParams(t *testing.T) {
	ts, req, query, _ := captureServer(t, `{"list":[],"page":1,"page_size":10,"total":0}`)
	c := newTestClient(ts, "")

	_, err := c.PostList(context.Background(), PostListRequest{
		Campus:      "朝晖",
		PublishType: lostfound.KindFound,
		Page:        1,
		PageSize:    10,
	})
	require.NoError(t, err)

	assert.Equal(t, "/post/list", req.URL.Path)
	assert.Equal(t, "ZHAO_HUI", query.Get("campus"))
	assert.Equal(t, "FOUND", query.Get("publish_type"))
	assert.Equal(t, "1", query.Get("page"))
	assert.Equal(t, "10", query.Get("page_size"))
	assert.Empty(t, query.Get("item_type"), "zero filters should be omitted")
}

func TestPendingPostList_DoubleCasedPaging(t *testing.T) {
	ts, req, query, _ := captureServer(t, `{"list":[],"page":2,"page_size":20,"total":0}`)
	c := newTestClient(ts, "")

	_, err := c.PendingPostList(context.Background(), PendingListRequest{Page: 2, PageSize: 20})
	require.NoError(t, err)

	assert.Equal(t, "/admin/list", req.URL.Path)
	// 后端两代参数命名都要兼容
	assert.Equal(t, "2", query.Get("page"))
	assert.Equal(t, "2", query.Get("Page"))
	assert.Equal(t, "20", query.Get("page_size"))
	assert.Equal(t, "20", query.Get("PageSize"))
}

func TestAccountList_OmitsZeroFilters(t *testing.T) {
	ts, _, query, _ := captureServer(t, `{"list":[],"page":1,"page_size":10,"total":0}`)
	c := newTestClient(ts, "")

	_, err := c.AccountList(context.Background(), AccountListRequest{UID: 2021001})
	require.NoError(t, err)

	assert.Equal(t, "2021001", query.Get("uid"))
	assert.Empty(t, query.Get("page"))
	assert.Empty(t, query.Get("user_type"))
}

func TestDisableAccount_SendsDurationToken(t *testing.T) {
	ts, req, _, body := captureServer(t, `null`)
	c := newTestClient(ts, "")

	err := c.DisableAccount(context.Background(), DisableAccountRequest{ID: 3, Duration: "7days"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/account/disable", req.URL.Path)

	var payload DisableAccountRequest
	require.NoError(t, json.Unmarshal(*body, &payload))
	assert.Equal(t, int64(3), payload.ID)
	assert.Equal(t, "7days", payload.Duration)
}

func TestDeletePost_UsesDeleteMethodWithBody(t *testing.T) {
	ts, req, _, body := captureServer(t, `{"success":true}`)
	c := newTestClient(ts, "")

	res, err := c.DeletePost(context.Background(), PostOperationRequest{PostID: 99})
	require.NoError(t, err)
	assert.True(t, res.Success)

	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/admin/post/delete", req.URL.Path)

	var payload PostOperationRequest
	require.NoError(t, json.Unmarshal(*body, &payload))
	assert.Equal(t, int64(99), payload.PostID)
}

func TestFeedbackList_ProcessedFilter(t *testing.T) {
	ts, _, query, _ := captureServer(t, `{"list":[],"page":1,"page_size":10,"total":0}`)
	c := newTestClient(ts, "")

	processed := false
	_, err := c.FeedbackList(context.Background(), FeedbackListRequest{Processed: &processed})
	require.NoError(t, err)
	assert.Equal(t, "false", query.Get("processed"))
}

func TestUpdateSystemConfig_SingleKeyPayload(t *testing.T) {
	ts, _, _, body := captureServer(t, `null`)
	c := newTestClient(ts, "")

	days := 30
	err := c.UpdateSystemConfig(context.Background(), UpdateSystemConfigRequest{
		ConfigKey:         "claim_validity_days",
		ClaimValidityDays: &days,
	})
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(*body, &raw))
	assert.Contains(t, raw, "config_key")
	assert.Contains(t, raw, "claim_validity_days")
	assert.NotContains(t, raw, "item_types", "unset keys must not be sent")
	assert.NotContains(t, raw, "publish_limit", "unset keys must not be sent")
}
