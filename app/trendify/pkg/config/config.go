package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	TrendProviderGoogle = "google"
	TrendProviderMock   = "mock"

	DefaultTemperature float32 = 0.7
	DefaultTZ                  = 360
)

// Config 项目配置结构体
type Config struct {
	LLM    LLMConfig    `yaml:"llm"`
	Trend  TrendConfig  `yaml:"trend"`
	Log    LogConfig    `yaml:"log"`
	Export ExportConfig `yaml:"export"`
}

// LLMConfig LLM 相关配置。APIKey 为空时走 fallback 生成器
type LLMConfig struct {
	Provider      string  `yaml:"provider"`
	BaseURL       string  `yaml:"base_url"`
	APIKey        string  `yaml:"api_key"`
	Model         string  `yaml:"model"`
	Temperature   float32 `yaml:"temperature"`
	MaxTokens     int     `yaml:"max_tokens"`
	RPM           int     `yaml:"rpm"`
	Burst         int     `yaml:"burst"`
	LenientRepair bool    `yaml:"lenient_repair"`
}

// TrendConfig 趋势数据源配置
type TrendConfig struct {
	Provider string `yaml:"provider"`
	BaseURL  string `yaml:"base_url"`
	HL       string `yaml:"hl"`
	TZ       int    `yaml:"tz"`
	Timeout  int    `yaml:"timeout"` // 秒
}

// LogConfig 日志相关配置
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ExportConfig 导出相关配置
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// LoadConfig 从指定路径加载配置
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Base()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.Defaults()
	return &cfg, nil
}

// Default 返回仅含默认值的配置，没有配置文件时使用
func Default() *Config {
	cfg := Base()
	cfg.Defaults()
	return &cfg
}

// Base 返回预置数值默认值的配置，用作解析目标。
// 0 是合法的 temperature 与 tz，这两项只能在解析前预置
func Base() Config {
	return Config{
		LLM:   LLMConfig{Temperature: DefaultTemperature},
		Trend: TrendConfig{TZ: DefaultTZ},
	}
}

// Defaults 填充未设置的字段，temperature 与 tz 除外（见 Base）
func (c *Config) Defaults() {
	if c.LLM.Provider == "" {
		c.LLM.Provider = ProviderOpenAI
	}
	if c.LLM.Model == "" {
		switch c.LLM.Provider {
		case ProviderGemini:
			c.LLM.Model = "gemini-2.5-flash"
		default:
			c.LLM.Model = "gpt-4o-mini"
		}
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 1000
	}
	if c.Trend.Provider == "" {
		c.Trend.Provider = TrendProviderGoogle
	}
	if c.Trend.HL == "" {
		c.Trend.HL = "en-US"
	}
	if c.Trend.Timeout == 0 {
		c.Trend.Timeout = 25
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Export.Dir == "" {
		c.Export.Dir = "output"
	}
}

// ApplyEnv 用环境变量覆盖凭证与提供方
func (c *Config) ApplyEnv() {
	if p := strings.ToLower(strings.TrimSpace(os.Getenv("TRENDIFY_LLM_PROVIDER"))); p != "" && p != c.LLM.Provider {
		// 切换提供方时模型名随之重置
		c.LLM.Provider = p
		c.LLM.Model = ""
		c.Defaults()
	}
	if c.LLM.APIKey != "" {
		return
	}
	switch c.LLM.Provider {
	case ProviderGemini:
		c.LLM.APIKey = os.Getenv("GEMINI_API_KEY")
	default:
		c.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	}
}

// HasCredential 是否配置了外部生成服务凭证
func (c *Config) HasCredential() bool {
	return strings.TrimSpace(c.LLM.APIKey) != ""
}
