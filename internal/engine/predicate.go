package engine

import (
	"strconv"
	"strings"

	"github.com/antoinelmariel-ux/compliance-navigator-sub000/pkg/schema"
)

// Evaluate applies one atomic condition against the answer map.
//
// Fail-closed policy: a missing or empty answer is false for every operator,
// including not_equals — absence never flips to true through negation. Numeric
// operators require both sides to parse as real numbers and are undefined
// (false) over multi-valued answers. Unknown operators are false.
func Evaluate(c *schema.Condition, answers schema.AnswerMap) bool {
	if c == nil {
		return false
	}

	v, ok := answers[c.QuestionID]
	if !ok || !IsAnswered(v) {
		return false
	}

	switch c.Operator {
	case schema.OpEquals:
		if items := Strings(v); items != nil {
			return containsString(items, c.Value)
		}
		s, ok := scalarValue(v)
		return ok && s == c.Value

	case schema.OpNotEquals:
		if items := Strings(v); items != nil {
			return !containsString(items, c.Value)
		}
		s, ok := scalarValue(v)
		return ok && s != c.Value

	case schema.OpContains:
		if items := Strings(v); items != nil {
			return containsString(items, c.Value)
		}
		s, ok := scalarValue(v)
		return ok && strings.Contains(s, c.Value)

	case schema.OpLt, schema.OpLte, schema.OpGt, schema.OpGte:
		if Strings(v) != nil {
			return false
		}
		answer, ok := numberValue(v)
		if !ok {
			return false
		}
		expected, err := strconv.ParseFloat(strings.TrimSpace(c.Value), 64)
		if err != nil {
			return false
		}
		return compareNumbers(c.Operator, answer, expected)

	default:
		return false
	}
}

func compareNumbers(op schema.Operator, answer, expected float64) bool {
	switch op {
	case schema.OpLt:
		return answer < expected
	case schema.OpLte:
		return answer <= expected
	case schema.OpGt:
		return answer > expected
	case schema.OpGte:
		return answer >= expected
	default:
		return false
	}
}
