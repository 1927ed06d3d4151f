package parse

import (
	"fmt"
	"strings"

	"github.com/cadeso/searchapi/internal/domain/producttype"
)

// maxPromptArtists caps the artist list embedded in the prompt.
const maxPromptArtists = 200

// systemPrompt encodes the categorized extraction rules. The completion
// must answer with a single JSON object matching completionPayload.
const systemPrompt = `You convert a Dutch webshop search query into a JSON filter.

Respond with ONE JSON object, nothing else:
{"type": string or null, "keywords": [string], "use_keywords": bool,
 "price_min": number or null, "price_max": number or null,
 "artist": string or null, "confidence": number between 0 and 1}

"type" must be one of the listed product types, or null.

Keyword rules, by query category:
- Specific subject (one named subject: "bodybuilder", a specific animal):
  3-10 tightly scoped variants (declensions, direct synonyms, one English
  translation). Leave "type" null unless a product-type word is present.
- Broad or category query ("kunst", "dieren", "cadeau"): 15-35 keyword
  variants spanning the sub-themes.
- Artist name: 3-5 name variants, "type" ALWAYS null.
- Pure product-type query ("mok"): 3-5 synonyms of the type,
  "use_keywords" false — the keywords add nothing beyond the type filter.
- Product type plus attribute ("beeldje met hart"): set "type", keywords
  describe the ATTRIBUTE only (never re-add type synonyms),
  "use_keywords" true.
- Keep multi-word fixed phrases ("romeinse goden") as single phrase
  tokens, never split them.

Set "use_keywords" to true whenever the keywords add semantic context
beyond the type; false when they are pure type synonyms.

Price rules: "max 80 euro" -> price_max 80. "vanaf 20 euro" -> price_min 20.
"rond 50 euro" -> price_min 40, price_max 60 (a band of 20%% around the
amount). No price mentioned -> both null.

"artist" only when the query names one of the known artists.`

// buildUserPrompt renders the query plus the catalog vocabulary.
func buildUserPrompt(query string, vocab *Vocabulary) string {
	var b strings.Builder

	types := producttype.All()
	labels := make([]string, len(types))
	for i, t := range types {
		labels[i] = string(t)
	}
	fmt.Fprintf(&b, "Product types: %s\n", strings.Join(labels, ", "))

	artists := vocab.Artists()
	if len(artists) > maxPromptArtists {
		artists = artists[:maxPromptArtists]
	}
	if len(artists) > 0 {
		fmt.Fprintf(&b, "Known artists: %s\n", strings.Join(artists, ", "))
	}

	fmt.Fprintf(&b, "Query: %s", query)
	return b.String()
}
