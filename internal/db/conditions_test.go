package db

import (
	"strings"
	"testing"
)

func TestConditionSet_PositionalIndices(t *testing.T) {
	s := NewConditions().
		Literal("visible = TRUE").
		Equal("type", "Beeld").
		GreaterOrEqual("price", 10.0).
		LessOrEqual("price", 80.0)

	where := s.WhereClause()
	want := "WHERE visible = TRUE AND type = $1 AND price >= $2 AND price <= $3"
	if where != want {
		t.Errorf("unexpected where clause:\ngot:  %s\nwant: %s", where, want)
	}

	args := s.Args()
	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %d", len(args))
	}
	if args[0] != "Beeld" || args[1] != 10.0 || args[2] != 80.0 {
		t.Errorf("args out of order: %v", args)
	}
}

func TestConditionSet_FullTextAny_SingleVsPhrase(t *testing.T) {
	s := NewConditions().FullTextAny("search_vector", []string{"hart", "romeinse goden"})

	where := s.WhereClause()
	if !strings.Contains(where, "plainto_tsquery('dutch', $1)") {
		t.Errorf("single word should use plainto_tsquery: %s", where)
	}
	if !strings.Contains(where, "phraseto_tsquery('dutch', $2)") {
		t.Errorf("multi-word phrase should use phraseto_tsquery: %s", where)
	}
	if !strings.Contains(where, " OR ") {
		t.Errorf("keyword terms should form a disjunction: %s", where)
	}
	if strings.Contains(where, "LIKE") {
		t.Errorf("keywords must never compile to LIKE: %s", where)
	}
}

func TestConditionSet_FullTextAny_SingleKeywordNoParens(t *testing.T) {
	s := NewConditions().FullTextAny("search_vector", []string{"hart"})

	want := "WHERE search_vector @@ plainto_tsquery('dutch', $1)"
	if got := s.WhereClause(); got != want {
		t.Errorf("unexpected clause:\ngot:  %s\nwant: %s", got, want)
	}
}

func TestConditionSet_FullTextAny_EmptyAppendsNothing(t *testing.T) {
	s := NewConditions().FullTextAny("search_vector", nil).FullTextAny("search_vector", []string{" ", ""})

	if s.Len() != 0 {
		t.Errorf("expected no clauses, got %q", s.WhereClause())
	}
	if len(s.Args()) != 0 {
		t.Errorf("expected no args, got %v", s.Args())
	}
}

func TestConditionSet_EqualFold(t *testing.T) {
	s := NewConditions().EqualFold("artist", "Vincent van Gogh")

	want := "WHERE LOWER(artist) = LOWER($1)"
	if got := s.WhereClause(); got != want {
		t.Errorf("unexpected clause:\ngot:  %s\nwant: %s", got, want)
	}
}

func TestConditionSet_Empty(t *testing.T) {
	if got := NewConditions().WhereClause(); got != "" {
		t.Errorf("expected empty where clause, got %q", got)
	}
}
