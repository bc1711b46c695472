package tables

import "strings"

// RelationTypeFallback is the relation type callers use when the source
// reference carries no type attribute.
const RelationTypeFallback = "OTHER"

// relationTypes maps BMEcat PRODUCT_REFERENCE type attributes to xChange
// relation type codes, including the synonym spellings seen in supplier
// catalogs.
var relationTypes = map[string]string{
	"accessories":  "ACCESSORY",
	"base_product": "MAIN_PRODUCT",
	"consists_of":  "CONSISTS_OF",
	"followup":     "SUCCESSOR",
	"mandatory":    "MANDATORY",
	"similar":      "SIMILAR",
	"select":       "SELECT",
	"sparepart":    "SPAREPART",
	"others":       "OTHER",

	// Synonyms
	"accessory":  "ACCESSORY",
	"main":       "MAIN_PRODUCT",
	"component":  "CONSISTS_OF",
	"successor":  "SUCCESSOR",
	"spare":      "SPAREPART",
	"spare_part": "SPAREPART",
	"other":      "OTHER",
}

// RelationType maps a BMEcat reference type to its xChange relation code.
// The lookup is case-insensitive on the trimmed type. Unmapped input
// returns ("", false).
func RelationType(referenceType string) (string, bool) {
	code, ok := relationTypes[strings.ToLower(strings.TrimSpace(referenceType))]
	return code, ok
}
