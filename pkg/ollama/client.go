// Package ollama 로컬 Ollama 서버 호출 래퍼.
// 인력 배치 조언 생성에만 쓰는 얇은 어댑터로, 프롬프트를 넣고 텍스트를 돌려받는다.
package ollama

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"

	"naminara/backend/config"
)

// Client Ollama API 클라이언트 래퍼
type Client struct {
	api   *api.Client
	model string
}

// NewClient 설정으로 클라이언트를 생성한다.
func NewClient(cfg *config.AIConfig) (*Client, error) {
	u, err := url.ParseRequestURI(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("잘못된 Ollama base url: %w", err)
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}
	return &Client{
		api:   api.NewClient(u, httpClient),
		model: cfg.Model,
	}, nil
}

// Model 사용 중인 모델명
func (c *Client) Model() string { return c.model }

// Generate 프롬프트를 보내 생성된 전체 텍스트를 반환한다(스트리밍 없음).
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	stream := false
	req := &api.GenerateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: &stream,
	}

	var sb strings.Builder
	err := c.api.Generate(ctx, req, func(resp api.GenerateResponse) error {
		sb.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama 생성 요청 실패: %w", err)
	}

	return sb.String(), nil
}
