package openai

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/iWorld-y/trendify/app/trendify/pkg/llm"
)

// Client 基于 eino ChatModel 的 OpenAI 兼容客户端
type Client struct {
	chatModel model.BaseChatModel
}

// Ensure Client implements llm.Client
var _ llm.Client = (*Client)(nil)

// Config OpenAI 兼容服务配置
type Config struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float32
	MaxTokens   int
}

// NewClient 初始化 ChatModel
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	temperature := cfg.Temperature
	maxTokens := cfg.MaxTokens

	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL:     cfg.BaseURL,
		APIKey:      cfg.APIKey,
		Model:       cfg.Model,
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM 初始化失败: %w", err)
	}
	return &Client{chatModel: chatModel}, nil
}

// NewWithModel 使用已有的 ChatModel，测试中注入假模型
func NewWithModel(cm model.BaseChatModel) *Client {
	return &Client{chatModel: cm}
}

// Generate implements llm.Client
func (c *Client) Generate(ctx context.Context, p llm.Prompt) (string, error) {
	messages := []*schema.Message{
		{Role: schema.System, Content: p.System},
		{Role: schema.User, Content: p.User},
	}

	resp, err := c.chatModel.Generate(ctx, messages)
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", fmt.Errorf("empty response from chat model")
	}
	return resp.Content, nil
}
