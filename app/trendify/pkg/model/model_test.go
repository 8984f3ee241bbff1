package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategy_KeepsEntryForms(t *testing.T) {
	raw := `{"subtopics":["A",{"title":"B","description":"d","remedy":"r"}],` +
		`"formats":["Reel",{"name":"Carousel","reason":"saves"}],` +
		`"calendar":[{"day":1,"title":"t","format":"Reel","notes":""}]}`

	var s Strategy
	require.NoError(t, json.Unmarshal([]byte(raw), &s))

	require.Len(t, s.Subtopics, 2)
	assert.Equal(t, Subtopic{Title: "A"}, s.Subtopics[0])
	assert.Equal(t, Subtopic{Title: "B", Description: "d", Remedy: "r", Structured: true}, s.Subtopics[1])
	assert.Equal(t, "Reel", s.Formats[0].Label())
	assert.Equal(t, "Carousel", s.Formats[1].Label())
	assert.True(t, s.Formats[1].Structured)

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}

func TestCalendarEntry_LooseTypes(t *testing.T) {
	var entries []CalendarEntry
	raw := `[{"day":"3","title":"x","format":"Reel"},{"day":4.0,"title":5,"notes":null}]`
	require.NoError(t, json.Unmarshal([]byte(raw), &entries))

	assert.Equal(t, CalendarEntry{Day: 3, Title: "x", Format: "Reel"}, entries[0])
	assert.Equal(t, CalendarEntry{Day: 4, Title: "5"}, entries[1])
}

func TestCalendarEntry_Rejects(t *testing.T) {
	var e CalendarEntry
	assert.Error(t, json.Unmarshal([]byte(`"day one"`), &e))
	assert.Error(t, json.Unmarshal([]byte(`{"day":"first"}`), &e))
}

func TestSubtopic_ScalarAndList(t *testing.T) {
	var s Subtopic
	require.NoError(t, json.Unmarshal([]byte(`42`), &s))
	assert.Equal(t, "42", s.Title)
	assert.Error(t, json.Unmarshal([]byte(`["a"]`), &s))

	var f Format
	assert.Error(t, json.Unmarshal([]byte(`[1]`), &f))
}

func TestDescribe(t *testing.T) {
	in := []Subtopic{{Title: "Hydration"}, {Title: "SPF", Description: "keep", Remedy: "it", Structured: true}}
	out := Describe(in)

	assert.Equal(t, "Sample description for 'Hydration' explaining key points.", out[0].Description)
	assert.Equal(t, "Sample remedy/tip for 'Hydration' to maintain effectiveness.", out[0].Remedy)
	assert.Equal(t, in[1], out[1])
	assert.Empty(t, in[0].Description, "input must not be mutated")
}

func TestFirstDays(t *testing.T) {
	s := Strategy{Calendar: make([]CalendarEntry, 3)}
	assert.Len(t, s.FirstDays(10), 3)
	assert.Len(t, s.FirstDays(2), 2)
}
