// Package producttype defines the fixed product type enumeration of the
// catalog. Unclassified products carry no type and are displayed as
// "Overig".
package producttype

import "strings"

// Type is one value of the fixed product type enumeration.
type Type string

// The canonical product types.
const (
	Beeld       Type = "Beeld"
	Schilderij  Type = "Schilderij"
	Mok         Type = "Mok"
	Sieraad     Type = "Sieraad"
	Sjaal       Type = "Sjaal"
	Wandbord    Type = "Wandbord"
	Vaas        Type = "Vaas"
	Onderzetter Type = "Onderzetter"
	Kaart       Type = "Kaart"
)

// Unclassified is the display label for products without a type.
const Unclassified = "Overig"

// All lists every canonical type in declaration order.
func All() []Type {
	return []Type{
		Beeld, Schilderij, Mok, Sieraad, Sjaal,
		Wandbord, Vaas, Onderzetter, Kaart,
	}
}

// IsValid reports whether t is one of the canonical types.
func (t Type) IsValid() bool {
	for _, v := range All() {
		if t == v {
			return true
		}
	}
	return false
}

// String returns the type label.
func (t Type) String() string { return string(t) }

// Parse maps a free-form label to a canonical type.
// Matching is case-insensitive; unknown labels and the "Overig"
// placeholder return ok=false.
func Parse(label string) (Type, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return "", false
	}
	for _, v := range All() {
		if strings.EqualFold(label, string(v)) {
			return v, true
		}
	}
	return "", false
}

// Label renders a nullable type for display: nil becomes Unclassified.
func Label(t *Type) string {
	if t == nil {
		return Unclassified
	}
	return string(*t)
}
