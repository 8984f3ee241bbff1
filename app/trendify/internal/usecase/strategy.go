package usecase

import (
	"context"
	"strings"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/trendify/app/trendify/pkg/engine"
	"github.com/iWorld-y/trendify/app/trendify/pkg/export"
	"github.com/iWorld-y/trendify/app/trendify/pkg/model"
	"github.com/iWorld-y/trendify/app/trendify/pkg/strategy"
)

const (
	ReasonKeywordRequired   = "KEYWORD_REQUIRED"
	ReasonUnsupportedFormat = "UNSUPPORTED_FORMAT"
)

var (
	ErrKeywordRequired   = errors.BadRequest(ReasonKeywordRequired, "keyword is required")
	ErrUnsupportedFormat = errors.BadRequest(ReasonUnsupportedFormat, "unsupported export format")
)

// Engine 策略引擎
type Engine interface {
	AIEnabled() bool
	Run(ctx context.Context, req strategy.Request) (*engine.Report, error)
	Trend(ctx context.Context, keyword string) model.TrendSeries
}

// StrategyUseCase 策略生成业务逻辑
type StrategyUseCase struct {
	eng Engine
	log *log.Helper
}

// NewStrategyUseCase 创建策略业务逻辑实例
func NewStrategyUseCase(eng Engine, logger log.Logger) *StrategyUseCase {
	return &StrategyUseCase{eng: eng, log: log.NewHelper(logger)}
}

// AIEnabled 是否启用外部生成服务
func (uc *StrategyUseCase) AIEnabled() bool {
	return uc.eng.AIEnabled()
}

// Generate 生成一份策略
func (uc *StrategyUseCase) Generate(ctx context.Context, req strategy.Request) (*engine.Report, error) {
	report, err := uc.eng.Run(ctx, req)
	if err != nil {
		return nil, err
	}
	uc.log.WithContext(ctx).Infof("generation %s: topic=%s outcome=%s trend=%s",
		report.Result.ID, report.Request.Topic, report.Result.Outcome, report.Trend.Provenance)
	return report, nil
}

// Page 生成结果页面；topic 为空时只返回表单
func (uc *StrategyUseCase) Page(ctx context.Context, req strategy.Request) (export.PageData, error) {
	if strings.TrimSpace(req.Topic) == "" {
		return export.NewPageData(uc.AIEnabled()), nil
	}
	report, err := uc.Generate(ctx, req)
	if err != nil {
		return export.PageData{}, err
	}
	return report.Page(uc.AIEnabled())
}

// TrendChart 关键词趋势图
func (uc *StrategyUseCase) TrendChart(ctx context.Context, keyword string) (export.Artifact, error) {
	keyword = engine.Keyword(keyword)
	if keyword == "" {
		return export.Artifact{}, ErrKeywordRequired
	}
	return export.RenderTrend(keyword, uc.eng.Trend(ctx, keyword))
}

// Export 将客户端提交的策略导出为指定格式
func (uc *StrategyUseCase) Export(format, topic string, s model.Strategy) (export.Artifact, error) {
	if !supported(format) {
		return export.Artifact{}, ErrUnsupportedFormat.WithMetadata(map[string]string{"format": format})
	}
	if topic = strings.TrimSpace(topic); topic == "" {
		topic = "strategy"
	}
	a, err := export.Render(format, topic, s)
	if err != nil {
		uc.log.Errorf("export %s failed: %v", format, err)
		return export.Artifact{}, err
	}
	return a, nil
}

func supported(format string) bool {
	for _, f := range export.StrategyFormats {
		if strings.EqualFold(f, format) {
			return true
		}
	}
	return false
}
