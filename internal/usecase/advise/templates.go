package advise

import "fmt"

// Count buckets. "few" results get item-naming advice, "many" a narrowing
// suggestion.
const (
	FewThreshold  = 3
	ManyThreshold = 24
)

type bucket int

const (
	bucketZero bucket = iota
	bucketFew
	bucketSome
	bucketMany
)

func bucketFor(total int) bucket {
	switch {
	case total == 0:
		return bucketZero
	case total <= FewThreshold:
		return bucketFew
	case total > ManyThreshold:
		return bucketMany
	default:
		return bucketSome
	}
}

// ZeroResultsMessage is the fixed zero-result advice.
const ZeroResultsMessage = "Helaas, we hebben niets gevonden voor je zoekopdracht. " +
	"Probeer het eens met andere zoektermen."

// templateFor renders the deterministic advice for a count bucket. Used
// directly for zero results and as the degradation path when the
// completion call fails. Never names items, so highlighted stays empty.
func templateFor(b bucket, total int) string {
	switch b {
	case bucketZero:
		return ZeroResultsMessage
	case bucketFew:
		if total == 1 {
			return "We hebben 1 resultaat gevonden dat goed bij je zoekopdracht past."
		}
		return fmt.Sprintf("We hebben %d resultaten gevonden die goed bij je zoekopdracht passen.", total)
	case bucketMany:
		return fmt.Sprintf("We hebben %d resultaten gevonden. "+
			"Verfijn je zoekopdracht met een thema of een prijs om sneller te kiezen.", total)
	default:
		return fmt.Sprintf("We hebben %d resultaten gevonden voor je zoekopdracht.", total)
	}
}
