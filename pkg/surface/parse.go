package surface

import (
	"strconv"
	"strings"
)

// ParseLength 解析长度属性，允许 "px" 后缀
func ParseLength(v string) (float64, bool) {
	v = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), "px"))
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ParseTranslate 解析 transform 属性中的 translate(x y)
// 只支持平移；无法识别时返回 ok=false
func ParseTranslate(transform string) (dx, dy float64, ok bool) {
	t := strings.TrimSpace(transform)
	if !strings.HasPrefix(t, "translate(") || !strings.HasSuffix(t, ")") {
		return 0, 0, false
	}
	fields := SplitNumbers(t[len("translate(") : len(t)-1])
	switch len(fields) {
	case 1:
		return fields[0], 0, true
	case 2:
		return fields[0], fields[1], true
	default:
		return 0, 0, false
	}
}

// Translate 格式化 translate 变换
func Translate(dx, dy float64) string {
	return "translate(" + FormatNumber(dx) + " " + FormatNumber(dy) + ")"
}

// SplitNumbers 按空白和逗号切分数值列表，忽略无法解析的项
func SplitNumbers(s string) []float64 {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		if f, err := strconv.ParseFloat(p, 64); err == nil {
			out = append(out, f)
		}
	}
	return out
}
