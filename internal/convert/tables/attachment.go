package tables

import "strings"

// AttachmentTypeFallback is the generic "others" attachment type callers
// use when a MIME code is absent or has no mapping.
const AttachmentTypeFallback = "ATX099"

// attachmentTypes maps BMEcat MIME codes (MD) to standardized xChange
// attachment type codes (ATX).
var attachmentTypes = map[string]string{
	// Product pictures
	"MD01": "ATX015", // Product picture -> Main product/item picture
	"MD02": "ATX018", // Similar figure -> Picture
	"MD20": "ATX018", // Ambient picture -> Picture
	"MD23": "ATX018", // Back view -> Picture
	"MD24": "ATX018", // Bottom view -> Picture
	"MD25": "ATX018", // Detailed view -> Picture
	"MD26": "ATX018", // Front view -> Picture
	"MD27": "ATX018", // Sloping view -> Picture
	"MD28": "ATX018", // Top view -> Picture
	"MD29": "ATX018", // View from the left -> Picture
	"MD30": "ATX018", // View from the right -> Picture
	"MD47": "ATX018", // Thumbnail -> Picture
	"MD48": "ATX018", // Pictogram/icon -> Picture
	"MD59": "ATX018", // Square format -> Picture
	"MD65": "ATX018", // Product family view -> Picture

	// Data sheets and technical information
	"MD03": "ATX019", // Safety data sheet
	"MD07": "ATX003", // Energy label data sheet -> Data sheet
	"MD19": "ATX003", // Luminaire data -> Data sheet
	"MD22": "ATX003", // Product data sheet -> Data sheet
	"MD32": "ATX003", // Technical information -> Data sheet
	"MD40": "ATX003", // Spare parts list -> Data sheet
	"MD63": "ATX003", // Specification text -> Data sheet

	// Declarations
	"MD05": "ATX007", // REACH
	"MD06": "ATX012", // Energy label
	"MD13": "ATX006", // Environment label -> EPD
	"MD49": "ATX008", // RoHS
	"MD51": "ATX005", // DOP
	"MD52": "ATX004", // DOC CE -> Declaration (other)
	"MD53": "ATX004", // BREEAM -> Declaration (other)
	"MD54": "ATX006", // EPD
	"MD55": "ATX004", // ETA -> Declaration (other)
	"MD56": "ATX021", // Warranty statement

	// Certificates and approvals
	"MD08": "ATX001", // Calibration certificate
	"MD09": "ATX001", // Certificate
	"MD31": "ATX001", // Seal of approval
	"MD33": "ATX001", // Test approval
	"MD42": "ATX001", // AVCP certificate
	"MD50": "ATX001", // CoC

	// Diagrams and drawings
	"MD10": "ATX010", // Circuit diagram
	"MD12": "ATX011", // Dimensioned drawing
	"MD15": "ATX010", // Light cone diagram
	"MD16": "ATX010", // Light distribution curve
	"MD34": "ATX010", // Wiring diagram
	"MD60": "ATX011", // Exploded view drawing
	"MD61": "ATX010", // Flowchart
	"MD64": "ATX011", // Line drawing

	// Manuals and instructions
	"MD14": "ATX016", // Instructions for use
	"MD21": "ATX016", // Mounting instruction
	"MD38": "ATX016", // Operation and maintenance document

	// Visual media
	"MD17": "ATX014", // Logo 1c
	"MD18": "ATX014", // Logo 4c
	"MD39": "ATX020", // Instructional video
	"MD45": "ATX020", // Product video
	"MD46": "ATX020", // 360 degree view
	"MD57": "ATX020", // Application video
	"MD58": "ATX020", // Q&A video

	// Special types
	"MD37": "ATX002", // 3D / BIM object
	"MD41": "ATX017", // Sales brochure -> Marketing document
	"MD62": "ATX017", // Product presentation -> Marketing document

	// Other classifications
	"MD11": "ATX004", // Construction Products Regulation
	"MD35": "ATX004", // Preferential origin declaration
	"MD43": "ATX004", // CLP
	"MD44": "ATX004", // ECOP

	// Miscellaneous
	"MD04": "ATX099", // Deeplink product page -> no direct match
	"MD99": "ATX099", // Others
}

// AttachmentType maps a BMEcat MIME code to its xChange attachment type.
// The lookup is case-insensitive on the trimmed code. Unmapped or empty
// input returns ("", false); callers apply [AttachmentTypeFallback].
func AttachmentType(mimeCode string) (string, bool) {
	code, ok := attachmentTypes[strings.ToUpper(strings.TrimSpace(mimeCode))]
	return code, ok
}
