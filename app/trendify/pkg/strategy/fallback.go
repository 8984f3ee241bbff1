package strategy

import (
	"fmt"

	"github.com/iWorld-y/trendify/app/trendify/pkg/model"
)

// BuildFallback 不依赖外部服务的固定策略。
// audience 与 goal 目前不影响输出内容。
func BuildFallback(topic, audience, goal string) model.Strategy {
	subtopics := make([]model.Subtopic, 0, 4)
	for i := 1; i <= 4; i++ {
		subtopics = append(subtopics, model.Subtopic{Title: fmt.Sprintf("%s Quick Tip #%d", topic, i)})
	}

	formats := []model.Format{
		{Name: "Instagram Reel", Reason: "High engagement short video", Structured: true},
		{Name: "YouTube Short", Reason: "Good for discovery", Structured: true},
		{Name: "Carousel", Reason: "Saves educational content", Structured: true},
	}

	return model.Strategy{
		Subtopics: subtopics,
		Formats:   formats,
		Calendar:  FillCalendar(subtopics, formats),
	}
}
