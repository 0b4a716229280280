// Package criteria parses the compact search grammar used by the user
// search endpoint and composes the parsed clauses into a conjunctive
// filter that storage engines translate into their own query language.
package criteria

import "regexp"

// Operator is the comparison applied by a single criterion.
type Operator int

const (
	// OpUnknown is the zero value; filters degenerate it to a predicate
	// that matches nothing.
	OpUnknown Operator = iota
	OpEquals
	OpNotEquals
)

// String returns the operator's token in the search grammar.
func (o Operator) String() string {
	switch o {
	case OpEquals:
		return ":"
	case OpNotEquals:
		return "!"
	default:
		return "?"
	}
}

// Criterion is one parsed (field, operator, value) filter unit.
type Criterion struct {
	Field    string
	Operator Operator
	Value    string
}

// Clauses are `field(:|!)value` separated by commas. Word characters
// include Unicode letters and digits, not just ASCII.
var clausePattern = regexp.MustCompile(`([\p{L}\p{N}_]+?)([:!])([\p{L}\p{N}_]+?),`)

// Parse extracts criteria from a raw comma-separated expression such as
// "country:England,firstName:Joe". A trailing comma is appended before
// matching so the final clause is captured uniformly.
//
// Parsing is deliberately permissive: clauses that do not match the
// grammar are dropped silently and contribute no criterion, so a
// malformed expression yields a broader result set rather than an
// error. Empty or entirely malformed input yields no criteria.
func Parse(raw string) []Criterion {
	matches := clausePattern.FindAllStringSubmatch(raw+",", -1)
	if len(matches) == 0 {
		return nil
	}

	criteria := make([]Criterion, 0, len(matches))
	for _, m := range matches {
		criteria = append(criteria, Criterion{
			Field:    m[1],
			Operator: operatorFor(m[2]),
			Value:    m[3],
		})
	}

	return criteria
}

func operatorFor(token string) Operator {
	switch token {
	case ":":
		return OpEquals
	case "!":
		return OpNotEquals
	default:
		return OpUnknown
	}
}
