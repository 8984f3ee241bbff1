package server

import (
	"context"
	"fmt"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/iWorld-y/trendify/app/trendify/internal/conf"
	"github.com/iWorld-y/trendify/app/trendify/internal/service"
	"github.com/iWorld-y/trendify/app/trendify/pkg/export"
)

const (
	OperationGenerateStrategy = "/trendify.v1.Strategy/GenerateStrategy"
	OperationExportStrategy   = "/trendify.v1.Strategy/ExportStrategy"
	OperationTrendChart       = "/trendify.v1.Strategy/TrendChart"
	OperationRenderPage       = "/trendify.v1.Strategy/RenderPage"
)

func NewHTTPServer(c *conf.Server, s *service.StrategyService, logger log.Logger) *http.Server {
	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
		),
	}
	if c != nil && c.Http != nil {
		if c.Http.Addr != "" {
			opts = append(opts, http.Address(c.Http.Addr))
		}
		if c.Http.Timeout != "" {
			if d, err := time.ParseDuration(c.Http.Timeout); err == nil {
				opts = append(opts, http.Timeout(d))
			} else {
				log.NewHelper(logger).Warnf("invalid http timeout %q: %v", c.Http.Timeout, err)
			}
		}
	}

	srv := http.NewServer(opts...)
	RegisterStrategyHTTPServer(srv, s)
	return srv
}

// RegisterStrategyHTTPServer 注册页面与 API 路由
func RegisterStrategyHTTPServer(srv *http.Server, s *service.StrategyService) {
	r := srv.Route("/")
	r.GET("/", renderPageHandler(s))
	r.GET("/strategy", renderPageHandler(s))
	r.GET("/trend.png", trendChartHandler(s))

	api := srv.Route("/api/v1")
	api.POST("/strategy", generateStrategyHandler(s))
	api.POST("/export/{format}", exportStrategyHandler(s))
}

func renderPageHandler(s *service.StrategyService) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		q := ctx.Query()
		in := service.GenerateReq{Topic: q.Get("topic"), Audience: q.Get("audience"), Goal: q.Get("goal")}
		http.SetOperation(ctx, OperationRenderPage)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return s.RenderPage(ctx, req.(*service.GenerateReq))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Blob(200, "text/html; charset=utf-8", out.([]byte))
	}
}

func trendChartHandler(s *service.StrategyService) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		in := service.TrendReq{Keyword: ctx.Query().Get("keyword")}
		http.SetOperation(ctx, OperationTrendChart)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return s.TrendChart(ctx, req.(*service.TrendReq))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		a := out.(*export.Artifact)
		return ctx.Blob(200, a.ContentType, a.Data)
	}
}

func generateStrategyHandler(s *service.StrategyService) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in service.GenerateReq
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationGenerateStrategy)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return s.GenerateStrategy(ctx, req.(*service.GenerateReq))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*service.GenerateReply))
	}
}

func exportStrategyHandler(s *service.StrategyService) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		in := service.ExportReq{
			Format: ctx.Vars().Get("format"),
			Topic:  ctx.Query().Get("topic"),
		}
		if err := ctx.Bind(&in.Strategy); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationExportStrategy)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return s.ExportStrategy(ctx, req.(*service.ExportReq))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		a := out.(*export.Artifact)
		ctx.Response().Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", a.Filename))
		return ctx.Blob(200, a.ContentType, a.Data)
	}
}
