package strategy

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/iWorld-y/trendify/app/trendify/pkg/llm"
	"github.com/iWorld-y/trendify/app/trendify/pkg/logger"
	"github.com/iWorld-y/trendify/app/trendify/pkg/model"
)

// FallbackNotice 回退时展示给用户的提示
const FallbackNotice = "OpenAI unavailable or API key not set — using fallback generator."

// Outcome 一次生成的最终结果类型
type Outcome string

const (
	OutcomeExternal Outcome = "external"
	OutcomeRepaired Outcome = "repaired"
	OutcomeFallback Outcome = "fallback"
)

// Request 生成请求
type Request struct {
	Topic    string `json:"topic"`
	Audience string `json:"audience"`
	Goal     string `json:"goal"`
}

// Result 生成结果。Strategy 的日历至少 30 天
type Result struct {
	ID       string
	Outcome  Outcome
	Notice   string
	Strategy model.Strategy
	// Cause 回退或补全的原因，成功时为 nil
	Cause error
}

// Generator 调用外部生成服务，失败时回退到固定策略
type Generator struct {
	client   llm.Client
	repairer Repairer
	limiter  *rate.Limiter
}

// Option 配置 Generator
type Option func(*Generator)

// WithRepairer 设置 JSON 修复策略
func WithRepairer(r Repairer) Option {
	return func(g *Generator) {
		g.repairer = r
	}
}

// WithLimiter 设置调用限流器，nil 表示不限流
func WithLimiter(l *rate.Limiter) Option {
	return func(g *Generator) {
		g.limiter = l
	}
}

// NewLimiter 按每分钟请求数创建限流器，rpm <= 0 时返回 nil
func NewLimiter(rpm, burst int) *rate.Limiter {
	if rpm <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(float64(rpm)/60.0), burst)
}

// NewGenerator 创建生成器。client 为 nil 表示没有凭证，始终回退
func NewGenerator(client llm.Client, opts ...Option) *Generator {
	g := &Generator{client: client}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Enabled 是否配置了外部生成服务
func (g *Generator) Enabled() bool {
	return g.client != nil
}

// Generate 生成一份策略，总是返回可用结果
func (g *Generator) Generate(ctx context.Context, req Request) Result {
	id := uuid.NewString()
	log := logger.Log.WithFields(logrus.Fields{"generation_id": id, "topic": req.Topic})
	start := time.Now()

	s, outcome, cause := g.external(ctx, req)
	res := Result{ID: id, Outcome: outcome, Strategy: s, Cause: cause}

	switch outcome {
	case OutcomeExternal:
		log.Infof("外部生成成功，日历 %d 天 (%s)", len(s.Calendar), time.Since(start))
	case OutcomeRepaired:
		log.Infof("外部生成成功，日历已补全: %v", cause)
	default:
		res.Notice = FallbackNotice
		res.Strategy = BuildFallback(req.Topic, req.Audience, req.Goal)
		log.Warnf("使用 fallback 生成器 [%s]: %v", errors.Reason(cause), cause)
	}
	return res
}

func (g *Generator) external(ctx context.Context, req Request) (model.Strategy, Outcome, error) {
	if g.client == nil {
		return model.Strategy{}, OutcomeFallback, ErrCredentialMissing
	}

	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return model.Strategy{}, OutcomeFallback, fmt.Errorf("rate limiter: %w", err)
		}
	}

	text, err := g.client.Generate(ctx, BuildPrompt(req))
	if err != nil {
		return model.Strategy{}, OutcomeFallback, fmt.Errorf("generate: %w", err)
	}
	logger.Log.Debugf("模型原始输出: %s", text)

	obj, err := g.repairer.Extract(text)
	if err != nil {
		return model.Strategy{}, OutcomeFallback, err
	}

	s, complete, err := decodeStrategy(obj)
	if err != nil {
		return model.Strategy{}, OutcomeFallback, parseError("decode strategy object", err)
	}
	if !complete {
		s.Calendar = FillCalendar(s.Subtopics, s.Formats)
		return s, OutcomeRepaired, ErrCalendarIncomplete
	}
	return s, OutcomeExternal, nil
}

// decodeStrategy 将提取出的对象转换为 Strategy。
// 日历缺失、类型不对、条目无法解析或不足 30 天时 complete 为 false。
// 超过 30 天的日历原样保留。
func decodeStrategy(obj map[string]any) (s model.Strategy, complete bool, err error) {
	if err = decodeField(obj, "subtopics", &s.Subtopics); err != nil {
		return s, false, err
	}
	if err = decodeField(obj, "formats", &s.Formats); err != nil {
		return s, false, err
	}

	raw, ok := obj["calendar"].([]any)
	if !ok || len(raw) < model.CalendarDays {
		return s, false, nil
	}
	if err := decodeField(obj, "calendar", &s.Calendar); err != nil {
		s.Calendar = nil
		return s, false, nil
	}
	return s, true, nil
}

func decodeField(obj map[string]any, key string, dst any) error {
	v, ok := obj[key]
	if !ok || v == nil {
		return nil
	}
	if _, isList := v.([]any); !isList {
		return fmt.Errorf("%s: expected list, got %T", key, v)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}
