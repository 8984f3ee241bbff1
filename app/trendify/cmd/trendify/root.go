package main

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/iWorld-y/trendify/app/trendify/pkg/config"
	"github.com/iWorld-y/trendify/app/trendify/pkg/logger"
)

type options struct {
	confPath string
	envFile  string
	logLevel string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "trendify",
		Short:         "Trendify AI content strategy engine",
		Long:          "Generate a trend-informed content strategy and 30-day calendar for a topic.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.confPath, "conf", "c", "app/trendify/configs/trendify.yaml", "config file path")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env", ".env", "environment file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override log level (debug|info|warn|error)")

	cmd.AddCommand(newGenerateCmd(opts), newTrendCmd(opts))
	return cmd
}

// load 读取 .env 与配置文件，配置文件不存在时使用默认值
func (o *options) load() error {
	if err := godotenv.Load(o.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	cfg, err := config.LoadConfig(o.confPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		cfg = config.Default()
	case err != nil:
		return err
	}
	cfg.ApplyEnv()
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}

	if err := logger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		return err
	}
	if !cfg.HasCredential() {
		logger.Log.Warn("未找到 API key，将使用 fallback 生成器")
	}
	o.cfg = cfg
	return nil
}
