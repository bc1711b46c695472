package convert

import (
	"strconv"
	"strings"
)

// FeatureValues is the classification of a feature's raw value set into
// exactly one of the xChange value kinds: coded, numeric, range, or
// logical. Zero value means the raw values fit no kind.
type FeatureValues struct {
	Code       string
	Numeric    string
	RangeLower string
	RangeUpper string
	Logical    *bool
}

// ClassifyValues classifies the raw FVALUE texts of one feature.
//
// A value starting with "EV" and exactly 8 characters long is a predefined
// coded value; the first one wins and suppresses all other classification.
// Otherwise every value is tried as a float: exactly two parses make a
// range (lower is always the minimum), exactly one a single numeric value.
// Values equal to "true"/"false" (case-insensitive) yield a logical value,
// first match in source order.
func ClassifyValues(values []string) FeatureValues {
	var fv FeatureValues

	for _, val := range values {
		if strings.HasPrefix(val, "EV") && len(val) == 8 {
			fv.Code = val
			return fv
		}
	}

	var numeric []float64
	for _, val := range values {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			numeric = append(numeric, f)
		}
	}
	switch len(numeric) {
	case 2:
		fv.RangeLower = FormatNumber(min(numeric[0], numeric[1]))
		fv.RangeUpper = FormatNumber(max(numeric[0], numeric[1]))
	case 1:
		fv.Numeric = FormatNumber(numeric[0])
	}

	for _, val := range values {
		switch strings.ToLower(val) {
		case "true":
			t := true
			fv.Logical = &t
		case "false":
			f := false
			fv.Logical = &f
		default:
			continue
		}
		break
	}

	return fv
}

// FormatNumber renders a feature value number for the xChange document.
// Whole numbers render as plain integers. Fractional numbers are truncated
// (not rounded) to 4 decimal places, then trailing zeros and a trailing
// decimal point are stripped: 2.0 -> "2", 2.5 -> "2.5",
// 2.123456 -> "2.1234".
func FormatNumber(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return s
	}
	if frac := len(s) - dot - 1; frac > 4 {
		s = s[:dot+5]
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
