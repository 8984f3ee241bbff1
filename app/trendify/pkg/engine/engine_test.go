package engine

import (
	"context"
	"os"
	"testing"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/trendify/app/trendify/pkg/config"
	"github.com/iWorld-y/trendify/app/trendify/pkg/export"
	"github.com/iWorld-y/trendify/app/trendify/pkg/llm"
	"github.com/iWorld-y/trendify/app/trendify/pkg/logger"
	"github.com/iWorld-y/trendify/app/trendify/pkg/model"
	"github.com/iWorld-y/trendify/app/trendify/pkg/strategy"
	"github.com/iWorld-y/trendify/app/trendify/pkg/trend"
)

func TestMain(m *testing.M) {
	logger.Silence()
	os.Exit(m.Run())
}

type recordingSource struct {
	keywords []string
}

func (s *recordingSource) Fetch(_ context.Context, keyword string) model.TrendSeries {
	s.keywords = append(s.keywords, keyword)
	return trend.MockSeries()
}

func TestRunFallback(t *testing.T) {
	src := &recordingSource{}
	e := New(strategy.NewGenerator(nil), src)

	report, err := e.Run(context.Background(), strategy.Request{Topic: " Skincare ", Audience: "Gen Z", Goal: "Engagement"})
	require.NoError(t, err)

	assert.False(t, e.AIEnabled())
	assert.Equal(t, []string{"skincare"}, src.keywords)
	assert.Equal(t, "Skincare", report.Request.Topic)
	assert.Equal(t, model.ProvenanceMock, report.Trend.Provenance)
	assert.Equal(t, strategy.OutcomeFallback, report.Result.Outcome)
	assert.Len(t, report.Result.Strategy.Calendar, 30)
}

func TestRunExternal(t *testing.T) {
	client := llm.Func(func(context.Context, llm.Prompt) (string, error) {
		return `{"subtopics": ["A"], "formats": ["Reel"], "calendar": []}`, nil
	})
	e := New(strategy.NewGenerator(client), &recordingSource{})

	report, err := e.Run(context.Background(), strategy.Request{Topic: "Coffee"})
	require.NoError(t, err)
	assert.True(t, e.AIEnabled())
	assert.Equal(t, strategy.OutcomeRepaired, report.Result.Outcome)
	assert.Equal(t, "A — Short 1", report.Result.Strategy.Calendar[0].Title)
}

func TestRunTopicRequired(t *testing.T) {
	e := New(strategy.NewGenerator(nil), &recordingSource{})
	_, err := e.Run(context.Background(), strategy.Request{Topic: "  "})
	assert.True(t, errors.Is(err, ErrTopicRequired))
	assert.EqualValues(t, 400, errors.FromError(err).Code)
}

func TestReportArtifacts(t *testing.T) {
	e := New(strategy.NewGenerator(nil), &recordingSource{})
	report, err := e.Run(context.Background(), strategy.Request{Topic: "Skincare"})
	require.NoError(t, err)

	artifacts, err := report.Artifacts(AllFormats()...)
	require.NoError(t, err)

	var names []string
	for _, a := range artifacts {
		names = append(names, a.Filename)
	}
	assert.Equal(t, []string{
		"Skincare_strategy.json",
		"Skincare_calendar.csv",
		"Skincare_summary.pdf",
		"Skincare_calendar.xlsx",
		"Skincare_trend.png",
	}, names)

	_, err = report.Artifacts("docx")
	assert.Error(t, err)
}

func TestReportPage(t *testing.T) {
	e := New(strategy.NewGenerator(nil), &recordingSource{})
	report, err := e.Run(context.Background(), strategy.Request{Topic: "Skincare", Audience: "Millennials", Goal: "Sales"})
	require.NoError(t, err)

	page, err := report.Page(e.AIEnabled())
	require.NoError(t, err)
	assert.True(t, page.HasResult)
	assert.Equal(t, "Millennials", page.Audience)
	assert.Equal(t, strategy.FallbackNotice, page.Notice)
	assert.Equal(t, report.Result.ID, page.GenerationID)
	assert.Len(t, page.Downloads, len(export.StrategyFormats))
	assert.NotEmpty(t, page.TrendChart)
}

type fixedSource struct {
	series model.TrendSeries
}

func (s fixedSource) Fetch(context.Context, string) model.TrendSeries {
	return s.series
}

func TestSinglePointTrend(t *testing.T) {
	src := fixedSource{series: model.TrendSeries{Provenance: model.ProvenanceReal, Values: []float64{42}}}
	e := New(strategy.NewGenerator(nil), src)

	report, err := e.Run(context.Background(), strategy.Request{Topic: "Skincare"})
	require.NoError(t, err)

	artifacts, err := report.Artifacts(AllFormats()...)
	require.NoError(t, err)
	assert.Len(t, artifacts, len(AllFormats()))

	page, err := report.Page(false)
	require.NoError(t, err)
	assert.NotEmpty(t, page.TrendChart)
	assert.Equal(t, "real", page.Provenance)
	assert.Len(t, page.Calendar, 30)
}

func TestPageWithoutChart(t *testing.T) {
	e := New(strategy.NewGenerator(nil), fixedSource{series: model.TrendSeries{Provenance: model.ProvenanceReal}})

	report, err := e.Run(context.Background(), strategy.Request{Topic: "Skincare"})
	require.NoError(t, err)

	page, err := report.Page(false)
	require.NoError(t, err)
	assert.Empty(t, page.TrendChart)
	assert.Len(t, page.Downloads, len(export.StrategyFormats))
}

func TestNewEngineFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Trend.Provider = config.TrendProviderMock

	e, err := NewEngine(context.Background(), cfg)
	require.NoError(t, err)
	assert.False(t, e.AIEnabled())
	assert.Equal(t, model.ProvenanceMock, e.Trend(context.Background(), "x").Provenance)

	cfg.Trend.Provider = "yahoo"
	_, err = NewEngine(context.Background(), cfg)
	assert.Error(t, err)
}
