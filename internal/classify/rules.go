package classify

import "github.com/cadeso/searchapi/internal/domain/producttype"

// keyword is one weighted match term. Terms are matched on word
// boundaries only, never as substrings.
type keyword struct {
	term   string
	weight float64
}

// typeRule holds the match vocabulary of one product type.
//
// priority scales every keyword weight for the type. Generic vocabularies
// (e.g. "kaart", which also appears in "cadeaukaart" contexts) carry a
// priority below 1 so a more specific type wins on mixed titles.
type typeRule struct {
	typ      producttype.Type
	priority float64
	title    []keyword
	content  []keyword
	category []keyword
	exclude  []string // title terms that disqualify the type outright
}

// canonicalRules is the single reconciled rule table. Rule order is the
// final tie-break, so the more specific types come first.
func canonicalRules() []typeRule {
	return []typeRule{
		{
			typ:      producttype.Beeld,
			priority: 1.2,
			title: []keyword{
				{"beeldje", 3}, {"beeld", 3}, {"sculptuur", 3},
				{"standbeeld", 2}, {"figurine", 2}, {"buste", 2},
			},
			content: []keyword{
				{"beeldje", 2}, {"sculptuur", 2}, {"brons", 1}, {"gegoten", 1},
			},
			category: []keyword{{"beelden", 2}, {"sculpturen", 2}},
			exclude:  []string{"schilderij", "wandbord"},
		},
		{
			typ:      producttype.Schilderij,
			priority: 1.1,
			title: []keyword{
				{"schilderij", 3}, {"schildering", 2}, {"canvas", 2},
				{"doek", 1}, {"paneel", 1},
			},
			content: []keyword{
				{"schilderij", 2}, {"canvas", 1}, {"ingelijst", 1},
			},
			category: []keyword{{"schilderijen", 2}, {"wanddecoratie", 1}},
			exclude:  []string{"beeld", "beeldje", "sculptuur", "mok", "wandbord"},
		},
		{
			typ:      producttype.Mok,
			priority: 1.0,
			title: []keyword{
				{"mok", 3}, {"beker", 2}, {"espressokop", 2}, {"theeglas", 2},
			},
			content: []keyword{
				{"mok", 2}, {"vaatwasserbestendig", 1}, {"porselein", 1},
			},
			category: []keyword{{"mokken", 2}, {"servies", 1}},
		},
		{
			typ:      producttype.Sieraad,
			priority: 1.0,
			title: []keyword{
				{"sieraad", 3}, {"ketting", 2}, {"armband", 2},
				{"oorbellen", 2}, {"broche", 2}, {"hanger", 1},
			},
			content: []keyword{
				{"sieraad", 2}, {"verguld", 1}, {"sterling", 1},
			},
			category: []keyword{{"sieraden", 2}},
		},
		{
			typ:      producttype.Sjaal,
			priority: 1.0,
			title: []keyword{
				{"sjaal", 3}, {"shawl", 2}, {"omslagdoek", 2},
			},
			content:  []keyword{{"sjaal", 2}, {"zijde", 1}, {"wol", 1}},
			category: []keyword{{"sjaals", 2}, {"mode", 1}},
		},
		{
			typ:      producttype.Wandbord,
			priority: 1.0,
			title: []keyword{
				{"wandbord", 3}, {"sierbord", 2}, {"bord", 1},
			},
			content:  []keyword{{"wandbord", 2}, {"ophangen", 1}},
			category: []keyword{{"wandborden", 2}},
			exclude:  []string{"mok", "onderzetter"},
		},
		{
			typ:      producttype.Vaas,
			priority: 1.0,
			title:    []keyword{{"vaas", 3}, {"vaasje", 2}},
			content:  []keyword{{"vaas", 2}, {"bloemen", 1}},
			category: []keyword{{"vazen", 2}},
		},
		{
			typ:      producttype.Onderzetter,
			priority: 1.0,
			title:    []keyword{{"onderzetter", 3}, {"onderzetters", 3}},
			content:  []keyword{{"onderzetter", 2}, {"kurk", 1}},
			category: []keyword{{"onderzetters", 2}},
		},
		{
			typ:      producttype.Kaart,
			priority: 0.8,
			title: []keyword{
				{"wenskaart", 3}, {"ansichtkaart", 3}, {"kaart", 2},
			},
			content:  []keyword{{"wenskaart", 2}, {"envelop", 1}},
			category: []keyword{{"kaarten", 2}},
			exclude:  []string{"cadeaukaart"},
		},
	}
}
