package google

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"time"

	"github.com/iWorld-y/trendify/app/trendify/pkg/trend"
)

const DefaultBaseURL = "https://trends.google.com"

// Client Google Trends 客户端，流程与网页端一致：
// explore 获取 TIMESERIES widget 的 token，再请求 multiline 数据
type Client struct {
	baseURL string
	hl      string
	tz      int
	client  *http.Client
}

// Ensure Client implements trend.Provider
var _ trend.Provider = (*Client)(nil)

// NewClient 创建一个新的 Google Trends 客户端
func NewClient(baseURL, hl string, tz int, timeout int) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	t := time.Duration(timeout) * time.Second
	if t == 0 {
		t = 25 * time.Second
	}
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL: baseURL,
		hl:      hl,
		tz:      tz,
		client: &http.Client{
			Timeout: t,
			Jar:     jar,
		},
	}
}

type comparisonItem struct {
	Keyword string `json:"keyword"`
	Time    string `json:"time"`
	Geo     string `json:"geo"`
}

type exploreRequest struct {
	ComparisonItem []comparisonItem `json:"comparisonItem"`
	Category       int              `json:"category"`
	Property       string           `json:"property"`
}

// ExploreResponse explore 接口响应
type ExploreResponse struct {
	Widgets []Widget `json:"widgets"`
}

// Widget explore 返回的单个组件
type Widget struct {
	ID      string          `json:"id"`
	Token   string          `json:"token"`
	Request json.RawMessage `json:"request"`
}

// MultilineResponse multiline 接口响应
type MultilineResponse struct {
	Default struct {
		TimelineData []TimelinePoint `json:"timelineData"`
	} `json:"default"`
}

// TimelinePoint 单个时间点
type TimelinePoint struct {
	Time          string `json:"time"`
	FormattedTime string `json:"formattedTime"`
	Value         []int  `json:"value"`
	HasData       []bool `json:"hasData"`
}

// Interest implements trend.Provider
func (c *Client) Interest(ctx context.Context, keyword, timeframe string) ([]float64, error) {
	c.warmup(ctx)

	widget, err := c.explore(ctx, keyword, timeframe)
	if err != nil {
		return nil, err
	}

	resp, err := c.multiline(ctx, widget)
	if err != nil {
		return nil, err
	}

	values := make([]float64, 0, len(resp.Default.TimelineData))
	for _, p := range resp.Default.TimelineData {
		if len(p.Value) == 0 {
			continue
		}
		values = append(values, float64(p.Value[0]))
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("google trends returned empty timeline for %q", keyword)
	}
	return values, nil
}

// warmup 访问首页拿到 NID cookie，失败不影响后续请求
func (c *Client) warmup(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/?geo=US", nil)
	if err != nil {
		return
	}
	res, err := c.client.Do(req)
	if err != nil {
		return
	}
	_, _ = io.Copy(io.Discard, res.Body)
	res.Body.Close()
}

func (c *Client) explore(ctx context.Context, keyword, timeframe string) (*Widget, error) {
	payload, err := json.Marshal(exploreRequest{
		ComparisonItem: []comparisonItem{{Keyword: keyword, Time: timeframe}},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal explore request failed: %w", err)
	}

	q := c.baseQuery()
	q.Set("req", string(payload))

	var resp ExploreResponse
	if err := c.getJSON(ctx, "/trends/api/explore", q, &resp); err != nil {
		return nil, fmt.Errorf("explore: %w", err)
	}

	for i := range resp.Widgets {
		if resp.Widgets[i].ID == "TIMESERIES" {
			return &resp.Widgets[i], nil
		}
	}
	return nil, fmt.Errorf("explore: no TIMESERIES widget for %q", keyword)
}

func (c *Client) multiline(ctx context.Context, w *Widget) (*MultilineResponse, error) {
	q := c.baseQuery()
	q.Set("req", string(w.Request))
	q.Set("token", w.Token)

	var resp MultilineResponse
	if err := c.getJSON(ctx, "/trends/api/widgetdata/multiline", q, &resp); err != nil {
		return nil, fmt.Errorf("multiline: %w", err)
	}
	return &resp, nil
}

func (c *Client) baseQuery() url.Values {
	q := url.Values{}
	q.Set("hl", c.hl)
	q.Set("tz", strconv.Itoa(c.tz))
	return q
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	u.Path = path
	u.RawQuery = q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("create request failed: %w", err)
	}
	httpReq.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	res, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read body failed: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("google trends error (status %d): %s", res.StatusCode, string(body))
	}

	if err := json.Unmarshal(stripGuard(body), out); err != nil {
		return fmt.Errorf("decode response failed: %w", err)
	}
	return nil
}

// stripGuard 去掉响应前的 )]}' 防护前缀
func stripGuard(body []byte) []byte {
	if i := bytes.IndexByte(body, '{'); i > 0 {
		return body[i:]
	}
	return body
}
