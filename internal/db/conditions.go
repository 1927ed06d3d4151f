// Package db provides a typed SQL condition builder for the catalog
// store. Each clause kind has one constructor; parameter indices are
// managed internally so callers never track $n positions by hand, and
// user input never reaches the SQL text.
package db

import (
	"fmt"
	"strings"
)

// ConditionSet accumulates WHERE clauses joined with AND, with
// positionally-indexed parameters. The same set backs both the item query
// and the count query of a search, which keeps total and rows consistent.
type ConditionSet struct {
	clauses []string
	args    []any
}

// NewConditions creates an empty condition set.
func NewConditions() *ConditionSet {
	return &ConditionSet{}
}

// Literal appends a fixed predicate with no parameters, e.g. a
// non-optional visibility check. The expression must be a constant owned
// by the repository, never user input.
func (s *ConditionSet) Literal(expr string) *ConditionSet {
	s.clauses = append(s.clauses, expr)
	return s
}

// Equal appends an equality condition.
func (s *ConditionSet) Equal(column string, value any) *ConditionSet {
	s.clauses = append(s.clauses, fmt.Sprintf("%s = %s", column, s.bind(value)))
	return s
}

// EqualFold appends a case-insensitive equality condition.
func (s *ConditionSet) EqualFold(column, value string) *ConditionSet {
	s.clauses = append(s.clauses, fmt.Sprintf("LOWER(%s) = LOWER(%s)", column, s.bind(value)))
	return s
}

// GreaterOrEqual appends a lower-bound range condition.
func (s *ConditionSet) GreaterOrEqual(column string, value any) *ConditionSet {
	s.clauses = append(s.clauses, fmt.Sprintf("%s >= %s", column, s.bind(value)))
	return s
}

// LessOrEqual appends an upper-bound range condition.
func (s *ConditionSet) LessOrEqual(column string, value any) *ConditionSet {
	s.clauses = append(s.clauses, fmt.Sprintf("%s <= %s", column, s.bind(value)))
	return s
}

// FullTextAny appends a disjunction of full-text conditions against a
// tsvector column: one term per keyword, OR'd together. Multi-word
// keywords use phrase matching, single words plain word matching. Both go
// through tsquery parameters — never LIKE on raw input. Empty keyword
// sets append nothing.
func (s *ConditionSet) FullTextAny(column string, keywords []string) *ConditionSet {
	terms := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		fn := "plainto_tsquery"
		if strings.ContainsRune(kw, ' ') {
			fn = "phraseto_tsquery"
		}
		terms = append(terms, fmt.Sprintf("%s @@ %s('dutch', %s)", column, fn, s.bind(kw)))
	}
	if len(terms) == 0 {
		return s
	}
	if len(terms) == 1 {
		s.clauses = append(s.clauses, terms[0])
		return s
	}
	s.clauses = append(s.clauses, "("+strings.Join(terms, " OR ")+")")
	return s
}

// WhereClause renders the accumulated conditions as a WHERE clause, or an
// empty string when no condition was added.
func (s *ConditionSet) WhereClause() string {
	if len(s.clauses) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(s.clauses, " AND ")
}

// Args returns the bound parameters in positional order.
func (s *ConditionSet) Args() []any {
	return s.args
}

// Len returns the number of accumulated clauses.
func (s *ConditionSet) Len() int {
	return len(s.clauses)
}

// bind stores a parameter and returns its placeholder.
func (s *ConditionSet) bind(value any) string {
	s.args = append(s.args, value)
	return fmt.Sprintf("$%d", len(s.args))
}
