// Package engine implements the conditional rule evaluation at the heart of
// the questionnaire: answer predicates, condition-group normalization,
// question/rule visibility, timing constraints, partner ranking, and
// validation-committee triggering. Every function is pure: inputs are never
// mutated and identical inputs always produce identical outputs.
package engine

import (
	"strconv"

	"github.com/antoinelmariel-ux/compliance-navigator-sub000/pkg/schema"
)

// IsAnswered reports whether a raw answer value counts as present. Nil,
// empty strings, empty lists and empty maps all read as "not answered";
// missing data never satisfies a predicate.
func IsAnswered(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case []string:
		return len(val) > 0
	case []any:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	default:
		return true
	}
}

// Strings returns the elements of a multi-valued answer in their scalar form,
// or nil when the answer is not a list.
func Strings(v any) []string {
	switch val := v.(type) {
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := scalarValue(item); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// scalarValue extracts the comparable scalar form of an answer. Objects
// carrying a "value" or "name" entry compare on that inner scalar; file
// descriptors compare on the file name.
func scalarValue(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case int:
		return strconv.Itoa(val), true
	case bool:
		return strconv.FormatBool(val), true
	case schema.FileAnswer:
		return val.Name, true
	case map[string]any:
		if inner, ok := val["value"]; ok {
			return scalarValue(inner)
		}
		if inner, ok := val["name"]; ok {
			return scalarValue(inner)
		}
		return "", false
	default:
		return "", false
	}
}

// numberValue parses the answer as a real number. Lists have no numeric form.
func numberValue(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	default:
		s, ok := scalarValue(v)
		if !ok {
			return 0, false
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
