package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/iWorld-y/trendify/app/trendify/pkg/model"
)

// pdfCalendarDays PDF 中只列出前 10 天
const pdfCalendarDays = 10

type pdfLine struct {
	Text   string
	Height float64
	Size   float64
	Gap    float64 // 行后额外空白
}

// summaryLines PDF 摘要的逐行内容
func summaryLines(topic string, s model.Strategy) []pdfLine {
	lines := []pdfLine{{Text: "Content Strategy: " + topic, Height: 10, Size: 14, Gap: 5}}

	for idx, sub := range model.Describe(s.Subtopics) {
		lines = append(lines,
			pdfLine{Text: fmt.Sprintf("%d: %s", idx, sub.Title), Height: 7, Size: 12},
			pdfLine{Text: "Description: " + sub.Description, Height: 6, Size: 12},
			pdfLine{Text: "Remedy/Tip: " + sub.Remedy, Height: 6, Size: 12, Gap: 3},
		)
	}

	lines = append(lines, pdfLine{Text: "\nRecommended Formats:", Height: 7, Size: 12})
	for _, f := range s.Formats {
		lines = append(lines, pdfLine{Text: fmt.Sprintf("- %s: %s", f.Name, f.Reason), Height: 6, Size: 12})
	}

	lines = append(lines, pdfLine{Text: "\nCalendar (first 10 days):", Height: 7, Size: 12})
	for _, e := range s.FirstDays(pdfCalendarDays) {
		lines = append(lines, pdfLine{Text: fmt.Sprintf("Day %d: %s (%s)", e.Day, e.Title, e.Format), Height: 6, Size: 12})
	}
	return lines
}

// PDF 生成策略摘要。核心字体只支持 cp1252，文本先做转换
func PDF(topic string, s model.Strategy) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Content Strategy: "+topic, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	for i, l := range summaryLines(topic, s) {
		pdf.SetFont("Helvetica", "", l.Size)
		if i == 0 {
			pdf.CellFormat(0, l.Height, tr(l.Text), "", 1, "", false, 0, "")
		} else {
			pdf.MultiCell(0, l.Height, tr(l.Text), "", "", false)
		}
		if l.Gap > 0 {
			pdf.Ln(l.Gap)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
