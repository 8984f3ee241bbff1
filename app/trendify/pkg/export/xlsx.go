package export

import (
	"github.com/xuri/excelize/v2"

	"github.com/iWorld-y/trendify/app/trendify/pkg/model"
)

const (
	sheetCalendar  = "Calendar"
	sheetSubtopics = "Subtopics"
	sheetFormats   = "Formats"
)

// XLSX 日历、子话题与形式各占一个工作表
func XLSX(s model.Strategy) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetCalendar); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(sheetSubtopics); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(sheetFormats); err != nil {
		return nil, err
	}

	calendar := [][]any{{"day", "title", "format", "notes"}}
	for _, e := range s.Calendar {
		calendar = append(calendar, []any{e.Day, e.Title, e.Format, e.Notes})
	}
	subtopics := [][]any{{"title", "description", "remedy"}}
	for _, sub := range model.Describe(s.Subtopics) {
		subtopics = append(subtopics, []any{sub.Title, sub.Description, sub.Remedy})
	}
	formats := [][]any{{"name", "reason"}}
	for _, fm := range s.Formats {
		formats = append(formats, []any{fm.Name, fm.Reason})
	}

	for sheet, rows := range map[string][][]any{
		sheetCalendar:  calendar,
		sheetSubtopics: subtopics,
		sheetFormats:   formats,
	} {
		if err := writeRows(f, sheet, rows); err != nil {
			return nil, err
		}
	}

	if err := f.SetColWidth(sheetCalendar, "B", "B", 48); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
