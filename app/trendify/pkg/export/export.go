package export

import (
	"bytes"
	"encoding/base64"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/iWorld-y/trendify/app/trendify/pkg/model"
)

const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
	FormatPNG  = "png"
)

// StrategyFormats 可由 Strategy 直接生成的导出格式
var StrategyFormats = []string{FormatJSON, FormatCSV, FormatPDF, FormatXLSX}

// Artifact 一个可下载的导出文件
type Artifact struct {
	Format      string
	Filename    string
	ContentType string
	Data        []byte
}

// DataURI 以 data URI 形式内嵌到页面
func (a Artifact) DataURI() string {
	return "data:" + a.ContentType + ";base64," + base64.StdEncoding.EncodeToString(a.Data)
}

// fileStem 将话题转换为可用的文件名前缀，路径分隔符等字符替换为 "_"
func fileStem(topic string) string {
	stem := strings.Map(func(r rune) rune {
		switch {
		case r < 0x20, strings.ContainsRune(`/\:*?"<>|`, r):
			return '_'
		}
		return r
	}, strings.TrimSpace(topic))
	stem = strings.TrimLeft(stem, ". ")
	if stem == "" {
		return "strategy"
	}
	return stem
}

// Render 按格式导出策略
func Render(format, topic string, s model.Strategy) (Artifact, error) {
	topic = fileStem(topic)
	var (
		a   Artifact
		err error
	)
	switch strings.ToLower(format) {
	case FormatJSON:
		a.Data, err = JSON(s)
		a.Filename, a.ContentType = topic+"_strategy.json", "application/json"
	case FormatCSV:
		a.Data, err = CSV(s)
		a.Filename, a.ContentType = topic+"_calendar.csv", "text/csv"
	case FormatPDF:
		a.Data, err = PDF(topic, s)
		a.Filename, a.ContentType = topic+"_summary.pdf", "application/pdf"
	case FormatXLSX:
		a.Data, err = XLSX(s)
		a.Filename, a.ContentType = topic+"_calendar.xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return Artifact{}, fmt.Errorf("unsupported export format: %s", format)
	}
	if err != nil {
		return Artifact{}, fmt.Errorf("export %s: %w", format, err)
	}
	a.Format = strings.ToLower(format)
	return a, nil
}

// RenderTrend 导出趋势折线图
func RenderTrend(topic string, series model.TrendSeries) (Artifact, error) {
	topic = fileStem(topic)
	data, err := TrendChart(series)
	if err != nil {
		return Artifact{}, fmt.Errorf("export png: %w", err)
	}
	return Artifact{Format: FormatPNG, Filename: topic + "_trend.png", ContentType: "image/png", Data: data}, nil
}

// JSON 两空格缩进
func JSON(s model.Strategy) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// CSV 日历表，列顺序 day,title,format,notes
func CSV(s model.Strategy) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"day", "title", "format", "notes"}); err != nil {
		return nil, err
	}
	for _, e := range s.Calendar {
		if err := w.Write([]string{strconv.Itoa(e.Day), e.Title, e.Format, e.Notes}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
