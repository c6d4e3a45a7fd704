package service

import (
	"fmt"
	"regexp"
	"strconv"
)

var placeholderRegex = regexp.MustCompile(`\{([^{}]+)\}`)

// RenderTemplate substitutes {name} placeholders in tmpl with values from
// data. If any placeholder has no value, the template is returned unformatted
// (complete=false) so a broken template never fails a confirmation.
func RenderTemplate(tmpl string, data map[string]any) (string, bool) {
	matches := placeholderRegex.FindAllStringSubmatch(tmpl, -1)
	for _, m := range matches {
		if _, ok := data[m[1]]; !ok {
			return tmpl, false
		}
	}

	rendered := placeholderRegex.ReplaceAllStringFunc(tmpl, func(m string) string {
		key := m[1 : len(m)-1]
		return formatValue(data[key])
	})
	return rendered, true
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}
