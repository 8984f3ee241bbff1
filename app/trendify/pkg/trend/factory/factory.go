package factory

import (
	"fmt"

	"github.com/iWorld-y/trendify/app/trendify/pkg/config"
	"github.com/iWorld-y/trendify/app/trendify/pkg/trend"
	"github.com/iWorld-y/trendify/app/trendify/pkg/trend/google"
)

// NewSource 根据配置创建趋势数据源
func NewSource(cfg *config.Config) (*trend.Fetcher, error) {
	switch cfg.Trend.Provider {
	case config.TrendProviderGoogle, "":
		return trend.NewFetcher(google.NewClient(cfg.Trend.BaseURL, cfg.Trend.HL, cfg.Trend.TZ, cfg.Trend.Timeout)), nil
	case config.TrendProviderMock:
		return trend.NewFetcher(nil), nil
	default:
		return nil, fmt.Errorf("unknown trend provider: %s", cfg.Trend.Provider)
	}
}
