package tables

import "strings"

// productStatuses maps BMEcat PRODUCT_STATUS type attributes to the
// xChange product status values. The schema also allows PRE-LAUNCH,
// ON HOLD and PLANNED WITHDRAWAL, but BMEcat status types only carry
// enough signal for ACTIVE and OBSOLETE.
var productStatuses = map[string]string{
	"core":         "ACTIVE",
	"core_product": "ACTIVE",
	"new":          "ACTIVE",
	"new_product":  "ACTIVE",
	"old":          "OBSOLETE",
	"old_product":  "OBSOLETE",
	"bargain":      "ACTIVE",
	"used":         "ACTIVE",
	"refurbished":  "ACTIVE",
}

// ProductStatus maps a BMEcat status type to ACTIVE or OBSOLETE. The
// lookup is case-insensitive on the trimmed type. Unmapped input returns
// ("", false); callers leave the status absent.
func ProductStatus(statusType string) (string, bool) {
	status, ok := productStatuses[strings.ToLower(strings.TrimSpace(statusType))]
	return status, ok
}
