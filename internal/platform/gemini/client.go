package gemini

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// ErrNotConfigured は生成資格情報が未設定の場合に返されます。
var ErrNotConfigured = errors.New("generation credential is not configured")

// Client はGemini APIを使用してテキスト生成・マルチモーダル生成を行います。
// 全呼び出しはクライアント側レートリミッタを通過します。
type Client struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
}

// NewClient はAPIキー認証でClientの新しいインスタンスを生成します。
// APIキーが未設定の場合もクライアントは生成されますが、Ready() が false となり
// 全ての生成呼び出しは ErrNotConfigured を返します。
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	limiter := rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60.0), 1)

	if cfg.APIKey == "" {
		return &Client{client: nil, model: cfg.Model, limiter: limiter}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Client{client: client, model: cfg.Model, limiter: limiter}, nil
}

// Ready は生成資格情報が設定済みかどうかを返します。
func (c *Client) Ready() bool {
	return c.client != nil
}

// GenerateText はプロンプトからテキストを生成します。
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	if c.client == nil {
		return "", ErrNotConfigured
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}

	return resp.Text(), nil
}

// GenerateWithImages はプロンプトとPNG画像群から一つのマルチモーダル生成を行います。
func (c *Client) GenerateWithImages(ctx context.Context, prompt string, pngImages [][]byte) (string, error) {
	if c.client == nil {
		return "", ErrNotConfigured
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	parts := make([]*genai.Part, 0, len(pngImages)+1)
	parts = append(parts, genai.NewPartFromText(prompt))
	for _, img := range pngImages {
		parts = append(parts, genai.NewPartFromBytes(img, "image/png"))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}

	return resp.Text(), nil
}
