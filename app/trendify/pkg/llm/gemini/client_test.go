package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestExtractText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: "{'subtopics': "}, {Text: "['A']}"}}},
		}},
	}
	out, err := extractText(resp)
	require.NoError(t, err)
	assert.Equal(t, "{'subtopics': ['A']}", out)
}

func TestExtractText_Empty(t *testing.T) {
	_, err := extractText(&genai.GenerateContentResponse{})
	assert.Error(t, err)
	_, err = extractText(nil)
	assert.Error(t, err)
}

func TestOptions(t *testing.T) {
	c := &Client{model: DefaultModel}
	WithModel("")(c)
	assert.Equal(t, DefaultModel, c.model)
	WithModel("gemini-2.5-pro")(c)
	WithSampling(0.2, 512)(c)
	assert.Equal(t, "gemini-2.5-pro", c.model)
	assert.Equal(t, float32(0.2), c.temperature)
	assert.Equal(t, int32(512), c.maxTokens)
}
