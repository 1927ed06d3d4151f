// Package classify assigns a catalog product to one of the fixed product
// types. The classifier is pure: no I/O, no randomness — identical input
// always yields the identical type.
package classify

import (
	"regexp"
	"strings"

	"github.com/cadeso/searchapi/internal/domain/producttype"
)

// Classifier matches product text against the canonical rule table.
type Classifier struct {
	rules []compiledRule
}

type compiledRule struct {
	typ      producttype.Type
	priority float64
	title    []compiledKeyword
	content  []compiledKeyword
	category []compiledKeyword
	exclude  []*regexp.Regexp
}

type compiledKeyword struct {
	re     *regexp.Regexp
	weight float64
}

// New builds a classifier from the canonical rule table. Keyword patterns
// are compiled once here; Classify allocates nothing but the result.
func New() *Classifier {
	rules := canonicalRules()
	compiled := make([]compiledRule, len(rules))
	for i, r := range rules {
		compiled[i] = compiledRule{
			typ:      r.typ,
			priority: r.priority,
			title:    compileKeywords(r.title),
			content:  compileKeywords(r.content),
			category: compileKeywords(r.category),
			exclude:  compileTerms(r.exclude),
		}
	}
	return &Classifier{rules: compiled}
}

// Classify returns the product type for the given title, content text and
// category labels, or nil when nothing matches. Passes run in priority
// order: title, then content, then categories. A rule whose exclude term
// appears in the title is disqualified before any scoring.
func (c *Classifier) Classify(title, content string, categories []string) *producttype.Type {
	title = strings.ToLower(title)
	content = strings.ToLower(content)
	catText := strings.ToLower(strings.Join(categories, " "))

	eligible := make([]*compiledRule, 0, len(c.rules))
	for i := range c.rules {
		r := &c.rules[i]
		if r.excludedBy(title) {
			continue
		}
		eligible = append(eligible, r)
	}

	passes := []struct {
		text string
		kind passKind
	}{
		{title, passTitle},
		{content, passContent},
		{catText, passCategory},
	}
	for _, p := range passes {
		if strings.TrimSpace(p.text) == "" {
			continue
		}
		if typ, ok := bestMatch(eligible, p.text, p.kind); ok {
			return &typ
		}
	}
	return nil
}

type passKind int

const (
	passTitle passKind = iota
	passContent
	passCategory
)

// bestMatch scores every eligible rule against one text pass. The first
// rule with the highest cumulative score wins, so rule order breaks ties.
func bestMatch(rules []*compiledRule, text string, pass passKind) (producttype.Type, bool) {
	var (
		best      producttype.Type
		bestScore float64
		found     bool
	)
	for _, r := range rules {
		var kws []compiledKeyword
		switch pass {
		case passTitle:
			kws = r.title
		case passContent:
			kws = r.content
		case passCategory:
			kws = r.category
		}

		score := 0.0
		for _, kw := range kws {
			if kw.re.MatchString(text) {
				score += kw.weight
			}
		}
		if score == 0 {
			continue
		}
		score *= r.priority
		if !found || score > bestScore {
			best = r.typ
			bestScore = score
			found = true
		}
	}
	return best, found
}

func (r *compiledRule) excludedBy(title string) bool {
	for _, re := range r.exclude {
		if re.MatchString(title) {
			return true
		}
	}
	return false
}

func compileKeywords(kws []keyword) []compiledKeyword {
	out := make([]compiledKeyword, len(kws))
	for i, kw := range kws {
		out[i] = compiledKeyword{re: wordPattern(kw.term), weight: kw.weight}
	}
	return out
}

func compileTerms(terms []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(terms))
	for i, t := range terms {
		out[i] = wordPattern(t)
	}
	return out
}

// wordPattern matches the term on word boundaries only. Substring hits
// inside longer words (brand names like "Mokum" against "mok") must not
// classify.
func wordPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(term)) + `\b`)
}
