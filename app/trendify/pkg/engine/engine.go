package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-kratos/kratos/v2/errors"

	"github.com/iWorld-y/trendify/app/trendify/pkg/config"
	"github.com/iWorld-y/trendify/app/trendify/pkg/export"
	llmfactory "github.com/iWorld-y/trendify/app/trendify/pkg/llm/factory"
	"github.com/iWorld-y/trendify/app/trendify/pkg/logger"
	"github.com/iWorld-y/trendify/app/trendify/pkg/model"
	"github.com/iWorld-y/trendify/app/trendify/pkg/strategy"
	"github.com/iWorld-y/trendify/app/trendify/pkg/trend"
	trendfactory "github.com/iWorld-y/trendify/app/trendify/pkg/trend/factory"
)

// ReasonTopicRequired 请求缺少话题
const ReasonTopicRequired = "TOPIC_REQUIRED"

var ErrTopicRequired = errors.BadRequest(ReasonTopicRequired, "topic is required")

// Engine 串联趋势数据与策略生成
type Engine struct {
	generator *strategy.Generator
	trend     trend.Source
}

// NewEngine 按配置创建引擎
func NewEngine(ctx context.Context, cfg *config.Config) (*Engine, error) {
	client, err := llmfactory.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("LLM 初始化失败: %w", err)
	}
	if client == nil {
		logger.Log.Warn("未配置 API key，策略将使用 fallback 生成")
	}

	source, err := trendfactory.NewSource(cfg)
	if err != nil {
		return nil, fmt.Errorf("趋势数据源初始化失败: %w", err)
	}

	gen := strategy.NewGenerator(client,
		strategy.WithRepairer(strategy.Repairer{Lenient: cfg.LLM.LenientRepair}),
		strategy.WithLimiter(strategy.NewLimiter(cfg.LLM.RPM, cfg.LLM.Burst)),
	)
	return New(gen, source), nil
}

// New 使用已构造的组件创建引擎
func New(gen *strategy.Generator, source trend.Source) *Engine {
	return &Engine{generator: gen, trend: source}
}

// AIEnabled 是否配置了外部生成服务
func (e *Engine) AIEnabled() bool {
	return e.generator.Enabled()
}

// Report 一次请求的全部输出
type Report struct {
	Request strategy.Request
	Keyword string
	Trend   model.TrendSeries
	Result  strategy.Result
}

// Keyword 趋势查询使用小写话题
func Keyword(topic string) string {
	return strings.ToLower(strings.TrimSpace(topic))
}

// Trend 获取关键词趋势，失败时返回 mock 序列
func (e *Engine) Trend(ctx context.Context, keyword string) model.TrendSeries {
	return e.trend.Fetch(ctx, keyword)
}

// Run 获取趋势并生成策略
func (e *Engine) Run(ctx context.Context, req strategy.Request) (*Report, error) {
	req.Topic = strings.TrimSpace(req.Topic)
	if req.Topic == "" {
		return nil, ErrTopicRequired
	}

	keyword := Keyword(req.Topic)
	series := e.Trend(ctx, keyword)
	result := e.generator.Generate(ctx, req)

	logger.Log.Infof("话题 [%s] 策略生成完成: outcome=%s, 趋势来源=%s", req.Topic, result.Outcome, series.Provenance)
	return &Report{
		Request: req,
		Keyword: keyword,
		Trend:   series,
		Result:  result,
	}, nil
}

// Artifacts 按格式导出，png 为趋势图
func (r *Report) Artifacts(formats ...string) ([]export.Artifact, error) {
	out := make([]export.Artifact, 0, len(formats))
	for _, f := range formats {
		var (
			a   export.Artifact
			err error
		)
		if strings.EqualFold(f, export.FormatPNG) {
			a, err = export.RenderTrend(r.Request.Topic, r.Trend)
		} else {
			a, err = export.Render(f, r.Request.Topic, r.Result.Strategy)
		}
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// AllFormats 所有导出格式，包括趋势图
func AllFormats() []string {
	return append(append([]string{}, export.StrategyFormats...), export.FormatPNG)
}

// Page 生成结果页面数据。趋势图只用于展示，渲染失败时页面不显示图表
func (r *Report) Page(aiEnabled bool) (export.PageData, error) {
	artifacts, err := r.Artifacts(export.StrategyFormats...)
	if err != nil {
		return export.PageData{}, err
	}
	if chart, err := export.RenderTrend(r.Request.Topic, r.Trend); err != nil {
		logger.Log.Warnf("话题 [%s] 趋势图渲染失败: %v", r.Request.Topic, err)
	} else {
		artifacts = append(artifacts, chart)
	}
	p := export.NewPageData(aiEnabled)
	p.Topic, p.Audience, p.Goal = r.Request.Topic, r.Request.Audience, r.Request.Goal
	p.GenerationID = r.Result.ID
	p.Outcome = string(r.Result.Outcome)
	p.Notice = r.Result.Notice
	return p.WithStrategy(r.Result.Strategy, r.Trend, artifacts), nil
}
