package gtrends

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"marketer_backend/internal/feature/market/domain/entity"
	"marketer_backend/internal/feature/market/usecase"
)

// Client は検索インタレスト時系列を取得するTrendFetcher実装です。
// Google Trendsのウィジェットプロトコル（explore → widgetdata/multiline）を話します。
type Client struct {
	cfg    Config
	client *http.Client
}

// ClientがTrendFetcherを実装していることをコンパイル時に検証します。
var _ usecase.TrendFetcher = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// timeseriesWidget はexploreレスポンス中の時系列ウィジェットです。
// multiline呼び出しにはトークンとリクエスト本体をそのまま渡す必要があります。
type timeseriesWidget struct {
	ID      string          `json:"id"`
	Token   string          `json:"token"`
	Request json.RawMessage `json:"request"`
}

// InterestOverTime はキーワード×地域の直近12ヶ月の相対人気度を返します。
func (c *Client) InterestOverTime(ctx context.Context, keyword, geo string) ([]entity.TrendPoint, error) {
	widget, err := c.explore(ctx, keyword, geo)
	if err != nil {
		return nil, err
	}
	return c.multiline(ctx, widget)
}

// explore は時系列ウィジェットのトークンを取得します。
func (c *Client) explore(ctx context.Context, keyword, geo string) (*timeseriesWidget, error) {
	payload := map[string]any{
		"comparisonItem": []map[string]any{
			{"keyword": keyword, "geo": geo, "time": c.cfg.Timeframe},
		},
		"category": 0,
		"property": "",
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("hl", c.cfg.HL)
	q.Set("tz", strconv.Itoa(c.cfg.TZ))
	q.Set("req", string(b))

	body, err := c.get(ctx, fmt.Sprintf("%s/explore?%s", c.cfg.BaseURL, q.Encode()))
	if err != nil {
		return nil, err
	}

	var resp struct {
		Widgets []timeseriesWidget `json:"widgets"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("trends: decode explore payload: %w", err)
	}

	for i := range resp.Widgets {
		if resp.Widgets[i].ID == "TIMESERIES" {
			return &resp.Widgets[i], nil
		}
	}
	return nil, fmt.Errorf("trends: timeseries widget not found")
}

// multiline はウィジェットトークンで時系列データ本体を取得します。
func (c *Client) multiline(ctx context.Context, widget *timeseriesWidget) ([]entity.TrendPoint, error) {
	q := url.Values{}
	q.Set("hl", c.cfg.HL)
	q.Set("tz", strconv.Itoa(c.cfg.TZ))
	q.Set("req", string(widget.Request))
	q.Set("token", widget.Token)

	body, err := c.get(ctx, fmt.Sprintf("%s/widgetdata/multiline?%s", c.cfg.BaseURL, q.Encode()))
	if err != nil {
		return nil, err
	}

	var resp struct {
		Default struct {
			TimelineData []struct {
				Time  string `json:"time"`
				Value []int  `json:"value"`
			} `json:"timelineData"`
		} `json:"default"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("trends: decode multiline payload: %w", err)
	}

	points := make([]entity.TrendPoint, 0, len(resp.Default.TimelineData))
	for _, row := range resp.Default.TimelineData {
		ts, err := strconv.ParseInt(row.Time, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("trends: parse time %q: %w", row.Time, err)
		}
		if len(row.Value) == 0 {
			continue
		}
		points = append(points, entity.TrendPoint{
			Date:  time.Unix(ts, 0).UTC().Format("2006-01-02"),
			Value: row.Value[0],
		})
	}
	return points, nil
}

// get はGETリクエストを実行し、JSON防御プレフィックスを除去した本文を返します。
func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("trends http %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	return stripJSONPrefix(body)
}

// stripJSONPrefix はGoogleのレスポンス先頭に付く ")]}'" ガードを取り除きます。
func stripJSONPrefix(b []byte) ([]byte, error) {
	idx := bytes.IndexByte(b, '{')
	if idx < 0 {
		return nil, fmt.Errorf("trends: malformed response")
	}
	return b[idx:], nil
}
