package worldbank

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"marketer_backend/internal/feature/market/adapters/worldbank/dto"
	"marketer_backend/internal/feature/market/usecase"
)

// ErrNoData は指標に値が存在しない場合に返されます。
var ErrNoData = errors.New("worldbank: no data")

// Client はWorld Bank APIからマクロ経済指標を取得するMacroFetcher実装です。
type Client struct {
	cfg    Config
	client *http.Client
}

// ClientがMacroFetcherを実装していることをコンパイル時に検証します。
var _ usecase.MacroFetcher = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// FetchIndicator は指定国・指定指標の直近の非null値とその基準年を返します。
func (c *Client) FetchIndicator(ctx context.Context, countryCode, indicatorCode string) (float64, string, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("per_page", "1")
	q.Set("date", c.cfg.DateRange)

	u := fmt.Sprintf("%s/country/%s/indicator/%s?%s",
		c.cfg.BaseURL, url.PathEscape(countryCode), url.PathEscape(indicatorCode), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, "", err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return 0, "", fmt.Errorf("worldbank http %d", res.StatusCode)
	}

	// レスポンスは [メタデータ, 行配列] の2要素配列
	var raw []json.RawMessage
	if err := json.NewDecoder(res.Body).Decode(&raw); err != nil {
		return 0, "", fmt.Errorf("worldbank: decode payload: %w", err)
	}
	if len(raw) < 2 {
		return 0, "", fmt.Errorf("worldbank: unexpected payload shape")
	}

	var rows []dto.IndicatorRow
	if err := json.Unmarshal(raw[1], &rows); err != nil {
		return 0, "", fmt.Errorf("worldbank: decode rows: %w", err)
	}
	if len(rows) == 0 {
		return 0, "", ErrNoData
	}

	row := rows[0]
	if row.Value == nil {
		return 0, "", ErrNoData
	}
	return *row.Value, row.Date, nil
}
