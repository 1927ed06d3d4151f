package catalog

import (
	"strings"
	"testing"

	"github.com/cadeso/searchapi/internal/domain/filter"
	"github.com/cadeso/searchapi/internal/domain/producttype"
)

func TestCompileConditions_AlwaysVisible(t *testing.T) {
	set := compileConditions(filter.Fallback("anything"))

	if !strings.Contains(set.WhereClause(), "visible = TRUE") {
		t.Errorf("visibility predicate missing: %s", set.WhereClause())
	}
}

func TestCompileConditions_NilTypeHasNoTypeClause(t *testing.T) {
	f := filter.New("hart", filter.Params{
		Keywords:    []string{"hart"},
		UseKeywords: true,
		Confidence:  0.8,
	})

	where := compileConditions(f).WhereClause()
	if strings.Contains(where, "type =") {
		t.Errorf("filter without type must not compile a type clause: %s", where)
	}
}

func TestCompileConditions_UseKeywordsFalseHasNoDisjunction(t *testing.T) {
	typ := producttype.Mok
	f := filter.New("mok", filter.Params{
		Type:        &typ,
		Keywords:    []string{"mok", "beker", "kop"},
		UseKeywords: false,
		Confidence:  0.95,
	})

	set := compileConditions(f)
	where := set.WhereClause()
	if strings.Contains(where, "tsquery") {
		t.Errorf("use_keywords=false must not compile a keyword disjunction: %s", where)
	}
	if !strings.Contains(where, "type = $1") {
		t.Errorf("expected type equality clause: %s", where)
	}
	if len(set.Args()) != 1 || set.Args()[0] != "Mok" {
		t.Errorf("expected single type arg, got %v", set.Args())
	}
}

func TestCompileConditions_FullFilter(t *testing.T) {
	typ := producttype.Beeld
	min, max := 10.0, 80.0
	artist := "Klimt"
	f := filter.New("beeldje met hart", filter.Params{
		Type:        &typ,
		Keywords:    []string{"hart", "hartje", "rode harten"},
		UseKeywords: true,
		PriceMin:    &min,
		PriceMax:    &max,
		Artist:      &artist,
		Confidence:  0.9,
	})

	set := compileConditions(f)
	where := set.WhereClause()

	for _, fragment := range []string{
		"visible = TRUE",
		"type = $1",
		"plainto_tsquery('dutch', $2)",
		"plainto_tsquery('dutch', $3)",
		"phraseto_tsquery('dutch', $4)",
		"price >= $5",
		"price <= $6",
		"LOWER(artist) = LOWER($7)",
	} {
		if !strings.Contains(where, fragment) {
			t.Errorf("missing %q in: %s", fragment, where)
		}
	}
	if len(set.Args()) != 7 {
		t.Errorf("expected 7 args, got %d: %v", len(set.Args()), set.Args())
	}
}

func TestBuildQueries_ShareConditionSet(t *testing.T) {
	typ := producttype.Beeld
	max := 80.0
	f := filter.New("beeldje met hart", filter.Params{
		Type:        &typ,
		Keywords:    []string{"hart"},
		UseKeywords: true,
		PriceMax:    &max,
		Confidence:  0.9,
	})

	itemSQL, countSQL, args := buildQueries(f)

	wherePart := countSQL[strings.Index(countSQL, "WHERE"):]
	if !strings.Contains(itemSQL, wherePart) {
		t.Errorf("item and count queries must share the condition set:\nitem:  %s\ncount: %s", itemSQL, countSQL)
	}
	if strings.Contains(countSQL, "LIMIT") || strings.Contains(countSQL, "OFFSET") {
		t.Errorf("count query must not paginate: %s", countSQL)
	}
	if strings.Contains(countSQL, "ORDER BY") {
		t.Errorf("count query must not order: %s", countSQL)
	}
	if !strings.Contains(itemSQL, "ORDER BY stock_sold DESC NULLS LAST, price ASC") {
		t.Errorf("item query missing canonical order: %s", itemSQL)
	}

	// Limit and offset bind directly after the shared parameters.
	wantLimit := len(args) + 1
	if !strings.Contains(itemSQL, "LIMIT $4 OFFSET $5") || wantLimit != 4 {
		t.Errorf("unexpected pagination placeholders (args %d): %s", len(args), itemSQL)
	}
}
