package trend

import (
	"context"

	"github.com/go-kratos/kratos/v2/errors"

	"github.com/iWorld-y/trendify/app/trendify/pkg/logger"
	"github.com/iWorld-y/trendify/app/trendify/pkg/model"
)

const (
	// MaxPoints 序列最多保留的点数
	MaxPoints = 10
	// Timeframe 查询的时间窗口：最近一个月
	Timeframe = "today 1-m"

	ReasonTrendUnavailable = "TREND_UNAVAILABLE"
)

// ErrTrendUnavailable 实时趋势获取失败，由 mock 序列替代，不向调用方暴露
var ErrTrendUnavailable = errors.ServiceUnavailable(ReasonTrendUnavailable, "live trend data unavailable")

// Provider 定义实时趋势数据源
type Provider interface {
	Interest(ctx context.Context, keyword, timeframe string) ([]float64, error)
}

// Source 返回关键词的趋势序列，从不失败
type Source interface {
	Fetch(ctx context.Context, keyword string) model.TrendSeries
}

// Fetcher 优先查询实时数据源，任何失败都回退到 mock 序列
type Fetcher struct {
	provider Provider
}

var _ Source = (*Fetcher)(nil)

// NewFetcher provider 为 nil 时始终返回 mock 序列
func NewFetcher(provider Provider) *Fetcher {
	return &Fetcher{provider: provider}
}

// Fetch implements Source
func (f *Fetcher) Fetch(ctx context.Context, keyword string) model.TrendSeries {
	if f.provider == nil {
		return MockSeries()
	}

	values, err := f.provider.Interest(ctx, keyword, Timeframe)
	if err == nil && len(values) == 0 {
		err = errors.New(503, ReasonTrendUnavailable, "provider returned empty series")
	}
	if err != nil {
		logger.Log.Warnf("趋势获取失败 [%s]，使用 mock 数据: %v", keyword, ErrTrendUnavailable.WithCause(err))
		return MockSeries()
	}

	if len(values) > MaxPoints {
		values = values[len(values)-MaxPoints:]
	}
	out := make([]float64, len(values))
	copy(out, values)
	return model.TrendSeries{Provenance: model.ProvenanceReal, Values: out}
}

// MockSeries 固定的等差序列 10 + 3*i
func MockSeries() model.TrendSeries {
	values := make([]float64, MaxPoints)
	for i := range values {
		values[i] = float64(10 + 3*i)
	}
	return model.TrendSeries{Provenance: model.ProvenanceMock, Values: values}
}
