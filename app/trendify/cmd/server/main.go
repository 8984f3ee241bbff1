package main

import (
	"flag"
	"os"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/env"
	"github.com/go-kratos/kratos/v2/config/file"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/joho/godotenv"

	"github.com/iWorld-y/trendify/app/trendify/internal/conf"
)

// go build -ldflags "-X main.Version=x.y.z"
var (
	// Name 是服务的名称
	Name string = "trendify"
	// Version 是服务的版本号
	Version string = "dev"
	// flagconf 是配置文件的路径命令行参数
	flagconf string

	id, _ = os.Hostname()
)

func init() {
	flag.StringVar(&flagconf, "conf", "app/trendify/configs/config.yaml", "config path, eg: -conf config.yaml")
}

func newApp(logger log.Logger, hs *http.Server) *kratos.App {
	return kratos.New(
		kratos.ID(id),
		kratos.Name(Name),
		kratos.Version(Version),
		kratos.Metadata(map[string]string{}),
		kratos.Logger(logger),
		kratos.Server(hs),
	)
}

// envPrefix 只有带此前缀的环境变量进入配置树，前缀在合并时去掉
const envPrefix = "TRENDIFY_"

// newConfig 配置文件中的 ${OPENAI_API_KEY:} 由 TRENDIFY_OPENAI_API_KEY 替换，
// 未设置时 OPENAI_API_KEY 由 pkg/config.ApplyEnv 读取
func newConfig(path string) config.Config {
	return config.New(
		config.WithSource(
			env.NewSource(envPrefix),
			file.NewSource(path),
		),
	)
}

func main() {
	flag.Parse()
	// .env 中的 OPENAI_API_KEY 等变量，文件不存在时忽略
	_ = godotenv.Load()

	logger := log.With(log.NewStdLogger(os.Stdout),
		"ts", log.DefaultTimestamp,
		"caller", log.DefaultCaller,
		"service.id", id,
		"service.name", Name,
		"service.version", Version,
	)

	c := newConfig(flagconf)
	defer c.Close()

	if err := c.Load(); err != nil {
		panic(err)
	}

	var bc conf.Bootstrap
	if err := c.Scan(&bc); err != nil {
		panic(err)
	}

	app, cleanup, err := initApp(bc.Server, bc.Trendify, logger)
	if err != nil {
		panic(err)
	}
	defer cleanup()

	printBanner(bc.Server)
	if err := app.Run(); err != nil {
		panic(err)
	}
}
