package eval

import (
	"strconv"
	"strings"
)

// Format renders a runtime value the way `print` and `evaluate` show
// it (spec.md §4.8): nil/bool print their literal spelling, strings
// print unquoted, and numbers print as an integer when they have no
// fractional part, else as a decimal with trailing zeros (and a
// trailing '.') trimmed.
func Format(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case bool:
		if v {
			return "true"
		}
		return "false"
	case string:
		return v
	case float64:
		return formatNumber(v)
	default:
		return strconv.FormatFloat(0, 'f', -1, 64) // unreachable for well-typed values
	}
}

func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}
