package scaffold

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	iconPolicyOnce sync.Once
	iconPolicy     *bluemonday.Policy
)

// SanitizeIcon keeps inline SVG markup and drops everything else (scripts,
// event handlers, foreign elements). It returns "" when nothing survives.
func SanitizeIcon(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(iconSanitizer().Sanitize(trimmed))
}

func iconSanitizer() *bluemonday.Policy {
	iconPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("svg", "g", "path", "circle", "rect", "line", "polyline", "polygon", "title")

		policy.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "stroke-linecap", "stroke-linejoin", "aria-hidden",
			"role", "focusable", "class",
		).OnElements("svg")

		for _, el := range []string{"path", "circle", "rect", "line", "polyline", "polygon"} {
			policy.AllowAttrs(
				"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
				"points", "rx", "ry", "fill", "stroke", "stroke-width",
				"stroke-linecap", "stroke-linejoin", "class",
			).OnElements(el)
		}
		policy.AllowAttrs("class").OnElements("g")

		iconPolicy = policy
	})
	return iconPolicy
}
