// Package gemini 基于 Google Gemini API 的 llm.Client 实现
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/iWorld-y/trendify/app/trendify/pkg/llm"
)

const DefaultModel = "gemini-2.5-flash"

// Client Gemini 生成客户端
type Client struct {
	client      *genai.Client
	model       string
	temperature float32
	maxTokens   int32
}

var _ llm.Client = (*Client)(nil)

// ClientOption 配置客户端
type ClientOption func(*Client)

// WithModel 设置模型名，为空时使用默认模型
func WithModel(model string) ClientOption {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithSampling 设置 temperature 与最大输出 token 数
func WithSampling(temperature float32, maxTokens int) ClientOption {
	return func(c *Client) {
		c.temperature = temperature
		c.maxTokens = int32(maxTokens)
	}
}

// NewClient 创建 Gemini 客户端
func NewClient(ctx context.Context, apiKey string, opts ...ClientOption) (*Client, error) {
	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c := &Client{
		client:      genaiClient,
		model:       DefaultModel,
		temperature: 0.7,
		maxTokens:   1000,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Generate implements llm.Client
func (c *Client) Generate(ctx context.Context, p llm.Prompt) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(c.temperature),
		MaxOutputTokens: c.maxTokens,
	}
	if p.System != "" {
		config.SystemInstruction = genai.NewContentFromText(p.System, genai.RoleUser)
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(p.User), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return extractText(result)
}

// extractText 拼接响应中第一个候选的文本片段
func extractText(result *genai.GenerateContentResponse) (string, error) {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return sb.String(), nil
}
