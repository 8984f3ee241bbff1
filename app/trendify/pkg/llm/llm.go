package llm

import "context"

// Prompt 一次生成请求的提示词
type Prompt struct {
	System string
	User   string
}

// Client 定义通用的文本生成接口
type Client interface {
	Generate(ctx context.Context, p Prompt) (string, error)
}

// Func 将普通函数适配为 Client
type Func func(ctx context.Context, p Prompt) (string, error)

// Generate implements Client
func (f Func) Generate(ctx context.Context, p Prompt) (string, error) {
	return f(ctx, p)
}
