package factory

import (
	"context"
	"fmt"

	"github.com/iWorld-y/trendify/app/trendify/pkg/config"
	"github.com/iWorld-y/trendify/app/trendify/pkg/llm"
	"github.com/iWorld-y/trendify/app/trendify/pkg/llm/gemini"
	"github.com/iWorld-y/trendify/app/trendify/pkg/llm/openai"
)

// NewClient 根据配置创建生成客户端。
// 未配置凭证时返回 nil, nil，调用方据此走 fallback。
func NewClient(ctx context.Context, cfg *config.Config) (llm.Client, error) {
	if !cfg.HasCredential() {
		return nil, nil
	}

	switch cfg.LLM.Provider {
	case config.ProviderOpenAI, "":
		c, err := openai.NewClient(ctx, openai.Config{
			BaseURL:     cfg.LLM.BaseURL,
			APIKey:      cfg.LLM.APIKey,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			MaxTokens:   cfg.LLM.MaxTokens,
		})
		if err != nil {
			return nil, err
		}
		return c, nil

	case config.ProviderGemini:
		c, err := gemini.NewClient(ctx, cfg.LLM.APIKey,
			gemini.WithModel(cfg.LLM.Model),
			gemini.WithSampling(cfg.LLM.Temperature, cfg.LLM.MaxTokens),
		)
		if err != nil {
			return nil, err
		}
		return c, nil

	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.LLM.Provider)
	}
}
