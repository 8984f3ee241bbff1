package strategy

import (
	"fmt"

	"github.com/iWorld-y/trendify/app/trendify/pkg/llm"
)

const systemPrompt = "You are an expert content strategist. " +
	"Respond ONLY with a single JSON object with keys: " +
	"subtopics (list of strings), " +
	"formats (list of objects with 'name' and 'reason'), and " +
	"calendar (list of exactly 30 objects with keys day,title,format,notes). " +
	"No extra commentary."

// BuildPrompt 将请求填入固定的提示词模板
func BuildPrompt(req Request) llm.Prompt {
	return llm.Prompt{
		System: systemPrompt,
		User: fmt.Sprintf("Topic: %s\nAudience: %s\nGoal: %s\nReturn a JSON exactly as described.",
			req.Topic, req.Audience, req.Goal),
	}
}
