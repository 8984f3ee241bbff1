package strategy

import (
	"testing"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON_EmbeddedObject(t *testing.T) {
	text := "Here is your plan:\n{\"subtopics\": [\"A\"],\n \"formats\": [{\"name\": \"Reel\", \"reason\": \"r\"}]}\nEnjoy!"

	obj, err := ExtractJSON(text)
	require.NoError(t, err)
	assert.Equal(t, []any{"A"}, obj["subtopics"])
	assert.Equal(t, []any{map[string]any{"name": "Reel", "reason": "r"}}, obj["formats"])
}

func TestExtractJSON_SingleQuoteRepair(t *testing.T) {
	obj, err := ExtractJSON("Sure! {'subtopics': ['A','B'], 'formats': ['Reel'], 'calendar': []}")
	require.NoError(t, err)
	assert.Equal(t, []any{"A", "B"}, obj["subtopics"])
	assert.Equal(t, []any{"Reel"}, obj["formats"])
	assert.Equal(t, []any{}, obj["calendar"])
}

func TestExtractJSON_NewlinesInsideStrings(t *testing.T) {
	obj, err := ExtractJSON("{\"notes\": \"line one\nline two\"}")
	require.NoError(t, err)
	assert.Equal(t, "line one line two", obj["notes"])
}

func TestExtractJSON_NoObject(t *testing.T) {
	for _, text := range []string{"", "no braces here", "only { open", "only close }"} {
		_, err := ExtractJSON(text)
		require.Error(t, err, text)
		assert.True(t, errors.Is(err, ErrParse), text)
		assert.Equal(t, "no object found", errors.FromError(err).Message, text)
	}
}

func TestExtractJSON_Unrecoverable(t *testing.T) {
	_, err := ExtractJSON("{subtopics: [A, B]}")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))
}

func TestExtractJSON_GreedySpan(t *testing.T) {
	// 首个 '{' 到最后一个 '}'，正文中的花括号会导致解析失败
	_, err := ExtractJSON(`{"a": 1} and later {"b": 2}`)
	assert.True(t, errors.Is(err, ErrParse))
}

func TestRepairer_Lenient(t *testing.T) {
	text := `result: {"subtopics": ["A", "B",], "formats": ["Reel"]}`

	_, err := ExtractJSON(text)
	require.Error(t, err)

	obj, err := Repairer{Lenient: true}.Extract(text)
	require.NoError(t, err)
	assert.Equal(t, []any{"A", "B"}, obj["subtopics"])
}

func TestReplaceSingleQuotes(t *testing.T) {
	assert.Equal(t, `{"a": "it\'s"}`, replaceSingleQuotes(`{'a': 'it\'s'}`))
}
