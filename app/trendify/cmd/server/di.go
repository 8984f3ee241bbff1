package main

import (
	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/trendify/app/trendify/internal/conf"
	"github.com/iWorld-y/trendify/app/trendify/internal/server"
	"github.com/iWorld-y/trendify/app/trendify/internal/service"
	"github.com/iWorld-y/trendify/app/trendify/internal/usecase"
)

// initApp 组装 kratos 应用
func initApp(confServer *conf.Server, confTrendify *conf.Trendify, logger log.Logger) (*kratos.App, func(), error) {
	eng, cleanup, err := server.NewEngine(confTrendify, logger)
	if err != nil {
		return nil, nil, err
	}
	strategyUseCase := usecase.NewStrategyUseCase(eng, logger)
	strategyService := service.NewStrategyService(strategyUseCase, logger)
	httpServer := server.NewHTTPServer(confServer, strategyService, logger)
	app := newApp(logger, httpServer)
	return app, func() {
		cleanup()
	}, nil
}
