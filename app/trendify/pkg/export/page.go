package export

import (
	"embed"
	"html/template"
	"io"

	"github.com/iWorld-y/trendify/app/trendify/pkg/model"
)

//go:embed templates/page.html
var templates embed.FS

var pageTpl = template.Must(template.ParseFS(templates, "templates/page.html"))

var (
	// Audiences 页面可选的目标受众
	Audiences = []string{"Gen Z", "Millennials", "Professionals"}
	// Goals 页面可选的主要目标
	Goals = []string{"Engagement", "Awareness", "Sales"}
)

// DefaultTopic 表单默认话题
const DefaultTopic = "Skincare"

// Download 页面上的下载链接
type Download struct {
	Label    string
	Filename string
	Href     template.URL
}

// PageData 用于模板渲染的数据
type PageData struct {
	Topic     string
	Audience  string
	Goal      string
	Audiences []string
	Goals     []string
	AIEnabled bool

	HasResult    bool
	GenerationID string
	Outcome      string
	Notice       string
	Provenance   string
	TrendChart   template.URL
	Subtopics    []model.Subtopic
	Formats      []model.Format
	Calendar     []model.CalendarEntry
	Downloads    []Download
}

// NewPageData 只含表单的页面
func NewPageData(aiEnabled bool) PageData {
	return PageData{
		Topic:     DefaultTopic,
		Audience:  Audiences[0],
		Goal:      Goals[0],
		Audiences: Audiences,
		Goals:     Goals,
		AIEnabled: aiEnabled,
	}
}

// WithStrategy 填入生成结果，artifacts 以 data URI 形式内嵌
func (p PageData) WithStrategy(s model.Strategy, series model.TrendSeries, artifacts []Artifact) PageData {
	p.HasResult = true
	p.Provenance = string(series.Provenance)
	p.Subtopics = model.Describe(s.Subtopics)
	p.Formats = s.Formats
	p.Calendar = s.Calendar
	for _, a := range artifacts {
		if a.Format == FormatPNG {
			p.TrendChart = template.URL(a.DataURI())
			continue
		}
		p.Downloads = append(p.Downloads, Download{
			Label:    downloadLabels[a.Format],
			Filename: a.Filename,
			Href:     template.URL(a.DataURI()),
		})
	}
	return p
}

var downloadLabels = map[string]string{
	FormatJSON: "Download strategy (JSON)",
	FormatCSV:  "Download calendar (CSV)",
	FormatPDF:  "Download PDF Summary",
	FormatXLSX: "Download calendar (XLSX)",
}

// RenderPage 渲染页面
func RenderPage(w io.Writer, data PageData) error {
	return pageTpl.Execute(w, data)
}
