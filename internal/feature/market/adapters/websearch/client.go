package websearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-shiori/go-readability"

	"marketer_backend/internal/feature/market/domain/entity"
	"marketer_backend/internal/feature/market/usecase"
)

// maxContentRunes はreadability抽出テキストをスニペットへ取り込む上限です。
const maxContentRunes = 800

// Client はJSON検索APIを呼び出すSearcher実装です。
type Client struct {
	cfg    Config
	client *http.Client
}

// ClientがSearcherを実装していることをコンパイル時に検証します。
var _ usecase.Searcher = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

type searchRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type searchResponse struct {
	Results []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Content string `json:"content"`
	} `json:"results"`
}

// Search はクエリの上位結果（タイトル+スニペット）を返します。
// FetchContent が有効な場合、各結果ページの本文を抽出してスニペットを置き換えます。
// 本文抽出の失敗は結果単位で無視されます。
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]entity.SearchResult, error) {
	if c.cfg.BaseURL == "" {
		return nil, fmt.Errorf("websearch: base URL not configured")
	}

	body, err := json.Marshal(searchRequest{Query: query, MaxResults: maxResults})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
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
		return nil, fmt.Errorf("websearch http %d", res.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("websearch: decode payload: %w", err)
	}

	out := make([]entity.SearchResult, 0, len(payload.Results))
	for _, r := range payload.Results {
		sr := entity.SearchResult{Title: r.Title, URL: r.URL, Snippet: r.Content}
		if c.cfg.FetchContent {
			if text, ok := c.extractPageText(r.URL); ok {
				sr.Snippet = text
			}
		}
		out = append(out, sr)
	}
	return out, nil
}

// extractPageText はページ本文をreadabilityで抽出し、上限まで切り詰めます。
func (c *Client) extractPageText(pageURL string) (string, bool) {
	if pageURL == "" {
		return "", false
	}
	article, err := readability.FromURL(pageURL, c.cfg.ContentTimeout)
	if err != nil {
		slog.Warn("본문 추출 실패", "url", pageURL, "error", err)
		return "", false
	}

	runes := []rune(article.TextContent)
	if len(runes) > maxContentRunes {
		runes = runes[:maxContentRunes]
	}
	text := string(runes)
	if text == "" {
		return "", false
	}
	return text, true
}
