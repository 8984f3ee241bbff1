package strategy

import (
	"fmt"

	"github.com/iWorld-y/trendify/app/trendify/pkg/model"
)

var (
	defaultSubtopics = []string{"Key Tip 1", "Key Tip 2", "How-to", "Case Study"}
	defaultFormats   = []string{"Reel", "Short", "Carousel"}
)

// FillCalendar 将子话题与形式循环分配到 30 天。
// 任一列表为空时使用默认列表；结构化条目分别取 title / name。
func FillCalendar(subtopics []model.Subtopic, formats []model.Format) []model.CalendarEntry {
	titles := make([]string, 0, len(subtopics))
	for _, s := range subtopics {
		titles = append(titles, s.Title)
	}
	if len(titles) == 0 {
		titles = defaultSubtopics
	}

	names := make([]string, 0, len(formats))
	for _, f := range formats {
		names = append(names, f.Label())
	}
	if len(names) == 0 {
		names = defaultFormats
	}

	cal := make([]model.CalendarEntry, 0, model.CalendarDays)
	for i := 0; i < model.CalendarDays; i++ {
		day := i + 1
		cal = append(cal, model.CalendarEntry{
			Day:    day,
			Title:  fmt.Sprintf("%s — Short %d", titles[i%len(titles)], day),
			Format: names[i%len(names)],
			Notes:  "",
		})
	}
	return cal
}
