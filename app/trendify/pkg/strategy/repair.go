package strategy

import (
	"encoding/json"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// Repairer 从模型自由文本中提取 JSON 对象
type Repairer struct {
	// Lenient 单引号修复失败后再用 jsonrepair 尝试一次
	Lenient bool
}

// ExtractJSON 使用默认(严格)修复策略提取对象
func ExtractJSON(text string) (map[string]any, error) {
	return Repairer{}.Extract(text)
}

// Extract 取第一个 '{' 到最后一个 '}' 之间的内容解析。
// 解析失败时把未转义的单引号替换为双引号再试一次。
func (r Repairer) Extract(text string) (map[string]any, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return nil, parseError("no object found", nil)
	}

	candidate := strings.ReplaceAll(text[start:end+1], "\n", " ")

	obj, err := decodeObject(candidate)
	if err == nil {
		return obj, nil
	}

	obj, err = decodeObject(replaceSingleQuotes(candidate))
	if err == nil {
		return obj, nil
	}

	if r.Lenient {
		if repaired, rerr := jsonrepair.JSONRepair(candidate); rerr == nil {
			if obj, rerr = decodeObject(repaired); rerr == nil {
				return obj, nil
			}
		}
	}

	return nil, parseError("json unmarshal failed after repair", err)
}

func decodeObject(s string) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(s), &obj); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, parseError("not an object", nil)
	}
	return obj, nil
}

// replaceSingleQuotes 替换前一个字符不是反斜杠的单引号
func replaceSingleQuotes(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\'' && (i == 0 || s[i-1] != '\\') {
			sb.WriteByte('"')
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
