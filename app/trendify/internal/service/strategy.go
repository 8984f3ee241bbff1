package service

import (
	"bytes"
	"context"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/trendify/app/trendify/internal/usecase"
	"github.com/iWorld-y/trendify/app/trendify/pkg/export"
	"github.com/iWorld-y/trendify/app/trendify/pkg/model"
	"github.com/iWorld-y/trendify/app/trendify/pkg/strategy"
)

type GenerateReq struct {
	Topic    string `json:"topic"`
	Audience string `json:"audience"`
	Goal     string `json:"goal"`
}

type GenerateReply struct {
	GenerationId string            `json:"generation_id"`
	Outcome      string            `json:"outcome"`
	Notice       string            `json:"notice,omitempty"`
	Trend        model.TrendSeries `json:"trend"`
	Strategy     model.Strategy    `json:"strategy"`
}

type ExportReq struct {
	Format   string
	Topic    string
	Strategy model.Strategy
}

type TrendReq struct {
	Keyword string
}

type StrategyService struct {
	uc  *usecase.StrategyUseCase
	log *log.Helper
}

func NewStrategyService(uc *usecase.StrategyUseCase, logger log.Logger) *StrategyService {
	return &StrategyService{
		uc:  uc,
		log: log.NewHelper(logger),
	}
}

func (s *StrategyService) GenerateStrategy(ctx context.Context, req *GenerateReq) (*GenerateReply, error) {
	report, err := s.uc.Generate(ctx, toRequest(req))
	if err != nil {
		return nil, err
	}
	return &GenerateReply{
		GenerationId: report.Result.ID,
		Outcome:      string(report.Result.Outcome),
		Notice:       report.Result.Notice,
		Trend:        report.Trend,
		Strategy:     report.Result.Strategy,
	}, nil
}

// RenderPage 渲染页面 HTML，topic 为空时只有表单
func (s *StrategyService) RenderPage(ctx context.Context, req *GenerateReq) ([]byte, error) {
	data, err := s.uc.Page(ctx, toRequest(req))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := export.RenderPage(&buf, data); err != nil {
		s.log.Errorf("render page failed: %v", err)
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *StrategyService) TrendChart(ctx context.Context, req *TrendReq) (*export.Artifact, error) {
	a, err := s.uc.TrendChart(ctx, req.Keyword)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *StrategyService) ExportStrategy(ctx context.Context, req *ExportReq) (*export.Artifact, error) {
	a, err := s.uc.Export(req.Format, req.Topic, req.Strategy)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func toRequest(req *GenerateReq) strategy.Request {
	return strategy.Request{Topic: req.Topic, Audience: req.Audience, Goal: req.Goal}
}
