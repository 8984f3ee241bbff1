package server

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/trendify/app/trendify/internal/conf"
	"github.com/iWorld-y/trendify/app/trendify/pkg/config"
	"github.com/iWorld-y/trendify/app/trendify/pkg/engine"
	"github.com/iWorld-y/trendify/app/trendify/pkg/logger"
)

// ToConfig 将 internal/conf.Trendify 转换为 pkg/config.Config，并补全默认值
func ToConfig(c *conf.Trendify) *config.Config {
	base := config.Base()
	cfg := &base
	if c == nil {
		cfg.Defaults()
		return cfg
	}
	if c.Llm != nil {
		cfg.LLM.Provider = c.Llm.Provider
		cfg.LLM.BaseURL = c.Llm.BaseUrl
		cfg.LLM.APIKey = c.Llm.ApiKey
		cfg.LLM.Model = c.Llm.Model
		cfg.LLM.MaxTokens = int(c.Llm.MaxTokens)
		cfg.LLM.RPM = int(c.Llm.Rpm)
		cfg.LLM.Burst = int(c.Llm.Burst)
		cfg.LLM.LenientRepair = c.Llm.LenientRepair
		if c.Llm.Temperature != nil {
			cfg.LLM.Temperature = *c.Llm.Temperature
		}
	}
	if c.Trend != nil {
		cfg.Trend.Provider = c.Trend.Provider
		cfg.Trend.BaseURL = c.Trend.BaseUrl
		cfg.Trend.HL = c.Trend.Hl
		cfg.Trend.Timeout = int(c.Trend.Timeout)
		if c.Trend.Tz != nil {
			cfg.Trend.TZ = int(*c.Trend.Tz)
		}
	}
	if c.Log != nil {
		cfg.Log = config.LogConfig{Level: c.Log.Level, File: c.Log.File}
	}
	if c.Export != nil {
		cfg.Export = config.ExportConfig{Dir: c.Export.Dir}
	}
	cfg.Defaults()
	return cfg
}

// NewEngine 初始化策略引擎
func NewEngine(c *conf.Trendify, logger log.Logger) (*engine.Engine, func(), error) {
	helper := log.NewHelper(logger)
	cfg := ToConfig(c)
	cfg.ApplyEnv()

	// 初始化 pipeline 日志
	if err := initPipelineLogger(cfg.Log); err != nil {
		helper.Errorf("Failed to init pipeline logger: %v", err)
		_ = initPipelineLogger(config.LogConfig{Level: "info"}) // 降级处理
	}

	eng, err := engine.NewEngine(context.Background(), cfg)
	if err != nil {
		helper.Errorf("Failed to init engine: %v", err)
		return nil, nil, err
	}
	helper.Infof("trendify engine ready: provider=%s ai_enabled=%t trend=%s", cfg.LLM.Provider, eng.AIEnabled(), cfg.Trend.Provider)

	cleanup := func() {
		helper.Info("Cleaning up trendify engine")
	}
	return eng, cleanup, nil
}

func initPipelineLogger(c config.LogConfig) error {
	return logger.InitLogger(c.Level, c.File)
}
