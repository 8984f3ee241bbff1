package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cast"
)

// CalendarDays 一份策略日历的天数
const CalendarDays = 30

// Strategy 一次生成请求的完整输出
type Strategy struct {
	Subtopics []Subtopic      `json:"subtopics"`
	Formats   []Format        `json:"formats"`
	Calendar  []CalendarEntry `json:"calendar"`
}

// FirstDays 返回日历前 n 天（不足 n 天时返回全部）
func (s *Strategy) FirstDays(n int) []CalendarEntry {
	if n > len(s.Calendar) {
		n = len(s.Calendar)
	}
	return s.Calendar[:n]
}

// Subtopic 子话题，可以是纯字符串或 {title, description, remedy}
type Subtopic struct {
	Title       string
	Description string
	Remedy      string
	// Structured 记录解码时的形态，编码时保持一致
	Structured bool
}

type subtopicRecord struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Remedy      string `json:"remedy"`
}

// PlainSubtopics 由字符串构造纯文本子话题
func PlainSubtopics(titles ...string) []Subtopic {
	out := make([]Subtopic, 0, len(titles))
	for _, t := range titles {
		out = append(out, Subtopic{Title: t})
	}
	return out
}

func (s Subtopic) MarshalJSON() ([]byte, error) {
	if !s.Structured {
		return json.Marshal(s.Title)
	}
	return json.Marshal(subtopicRecord{Title: s.Title, Description: s.Description, Remedy: s.Remedy})
}

func (s *Subtopic) UnmarshalJSON(data []byte) error {
	v, err := decodeLoose(data)
	if err != nil {
		return fmt.Errorf("subtopic: %w", err)
	}
	switch t := v.(type) {
	case map[string]any:
		*s = Subtopic{
			Title:       cast.ToString(t["title"]),
			Description: cast.ToString(t["description"]),
			Remedy:      cast.ToString(t["remedy"]),
			Structured:  true,
		}
	case []any:
		return fmt.Errorf("subtopic: unexpected list %s", string(data))
	default:
		*s = Subtopic{Title: cast.ToString(t)}
	}
	return nil
}

// Describe 为纯文本子话题补全示例描述与建议，供页面与 PDF 展示
func Describe(subtopics []Subtopic) []Subtopic {
	out := make([]Subtopic, len(subtopics))
	for i, s := range subtopics {
		if !s.Structured {
			s.Description = fmt.Sprintf("Sample description for '%s' explaining key points.", s.Title)
			s.Remedy = fmt.Sprintf("Sample remedy/tip for '%s' to maintain effectiveness.", s.Title)
		}
		out[i] = s
	}
	return out
}

// Format 内容形式，可以是纯字符串或 {name, reason}
type Format struct {
	Name       string
	Reason     string
	Structured bool
}

type formatRecord struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Label 日历中使用的形式名称
func (f Format) Label() string {
	return f.Name
}

func (f Format) MarshalJSON() ([]byte, error) {
	if !f.Structured {
		return json.Marshal(f.Name)
	}
	return json.Marshal(formatRecord{Name: f.Name, Reason: f.Reason})
}

func (f *Format) UnmarshalJSON(data []byte) error {
	v, err := decodeLoose(data)
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}
	switch t := v.(type) {
	case map[string]any:
		*f = Format{Name: cast.ToString(t["name"]), Reason: cast.ToString(t["reason"]), Structured: true}
	case []any:
		return fmt.Errorf("format: unexpected list %s", string(data))
	default:
		*f = Format{Name: cast.ToString(t)}
	}
	return nil
}

// CalendarEntry 日历中的一天
type CalendarEntry struct {
	Day    int    `json:"day"`
	Title  string `json:"title"`
	Format string `json:"format"`
	Notes  string `json:"notes"`
}

// UnmarshalJSON 兼容模型输出中 "day": "3" 之类的宽松类型
func (e *CalendarEntry) UnmarshalJSON(data []byte) error {
	v, err := decodeLoose(data)
	if err != nil {
		return fmt.Errorf("calendar entry: %w", err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return fmt.Errorf("calendar entry: expected object, got %s", string(data))
	}
	day, err := cast.ToIntE(m["day"])
	if err != nil {
		return fmt.Errorf("calendar entry day: %w", err)
	}
	*e = CalendarEntry{
		Day:    day,
		Title:  cast.ToString(m["title"]),
		Format: cast.ToString(m["format"]),
		Notes:  cast.ToString(m["notes"]),
	}
	return nil
}

// decodeLoose 解码任意 JSON 值，数字保留为 json.Number 以免丢失精度
func decodeLoose(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if n, ok := v.(json.Number); ok {
		return n.String(), nil
	}
	return v, nil
}

// Provenance 趋势数据来源
type Provenance string

const (
	ProvenanceReal Provenance = "real"
	ProvenanceMock Provenance = "mock"
)

// TrendSeries 关键词近期热度序列，下标从 0 开始
type TrendSeries struct {
	Provenance Provenance `json:"type"`
	Values     []float64  `json:"data"`
}
