package web

import (
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/nosytlabs/nosytlabs-site/internal/calculator"
)

// templateFuncs are the helpers available in every template.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"iterate": func(count int) []int {
			result := make([]int, count)
			for i := range result {
				result[i] = i
			}

			return result
		},
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},
		"usd":   calculator.FormatUSD,
		"lower": strings.ToLower,
		"join":  strings.Join,
		"date": func(t time.Time, layout string) string {
			if t.IsZero() {
				return ""
			}

			return t.Format(layout)
		},
		"initials": func(name string) string {
			var b strings.Builder

			for _, f := range strings.Fields(name) {
				b.WriteString(strings.ToUpper(string([]rune(f)[:1])))

				if b.Len() >= 2 { //nolint:mnd
					break
				}
			}

			return b.String()
		},
		"dict": func(kv ...any) map[string]any {
			m := make(map[string]any, len(kv)/2) //nolint:mnd
			for i := 0; i+1 < len(kv); i += 2 {
				if k, ok := kv[i].(string); ok {
					m[k] = kv[i+1]
				}
			}

			return m
		},
		"percent": func(v float64) string {
			return strconv.FormatFloat(v, 'f', 2, 64) + "%"
		},
	}
}
