package convert

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/samber/lo"

	"github.com/etim-tools/bmecat-xchange/internal/bmecat"
	"github.com/etim-tools/bmecat-xchange/internal/xchange"
)

// buildClassifications produces one classification per PRODUCT_FEATURES
// block, carrying the classified feature values and the modelling ports
// from the vendor extension block.
func (b *builder) buildClassifications(p, udx *etree.Element) ([]xchange.EtimClassification, error) {
	var out []xchange.EtimClassification

	for _, pf := range bmecat.Children(p, "PRODUCT_FEATURES") {
		cls := xchange.EtimClassification{
			EtimReleaseVersion:     extractEtimVersion(bmecat.Text(pf, "REFERENCE_FEATURE_SYSTEM_NAME")),
			EtimClassCode:          extractClassCode(bmecat.Text(pf, "REFERENCE_FEATURE_GROUP_ID")),
			EtimDynamicReleaseDate: bmecat.Text(udx, "UDX.EDXF.PRODUCT_ETIM_RELEASE_DATE"),
			EtimModellingClassCode: bmecat.Text(udx, "UDX.EDXF.REFERENCE_FEATURE_MC_ID"),
		}

		version, err := bmecat.Int(udx, "UDX.EDXF.REFERENCE_FEATURE_MC_VERSION")
		if err != nil {
			return nil, err
		}
		cls.EtimModellingClassVersion = version

		for _, f := range bmecat.Children(pf, "FEATURE") {
			feature, err := b.buildFeature(f)
			if err != nil {
				return nil, err
			}
			cls.EtimFeatures = append(cls.EtimFeatures, *feature)
		}

		ports, err := b.buildModellingPorts(udx)
		if err != nil {
			return nil, err
		}
		cls.EtimModellingPorts = ports

		out = append(out, cls)
	}

	return out, nil
}

func (b *builder) buildFeature(f *etree.Element) (*xchange.EtimFeature, error) {
	values := ClassifyValues(childTexts(f, "FVALUE"))

	details, err := b.localize(bmecat.FindAll(f, "FVALUE_DETAILS"), "EtimValueDetails")
	if err != nil {
		return nil, err
	}

	return &xchange.EtimFeature{
		EtimFeatureCode:     bmecat.Text(f, "FNAME"),
		EtimValueCode:       values.Code,
		EtimValueNumeric:    values.Numeric,
		EtimValueRangeLower: values.RangeLower,
		EtimValueRangeUpper: values.RangeUpper,
		EtimValueLogical:    values.Logical,
		EtimValueDetails:    details,
		ReasonNoValue:       bmecat.Text(f, "FVALUE_DETAILS"),
	}, nil
}

// buildModellingPorts groups the extension block's FEATURE_MC entries by
// port code, preserving the order port codes first appear in.
func (b *builder) buildModellingPorts(udx *etree.Element) ([]xchange.EtimModellingPort, error) {
	var codes []string
	for _, pc := range bmecat.FindAll(udx, "UDX.EDXF.PORTCODE") {
		if text := pc.Text(); text != "" {
			codes = append(codes, text)
		}
	}
	codes = lo.Uniq(codes)

	var ports []xchange.EtimModellingPort
	for _, code := range codes {
		port := xchange.EtimModellingPort{
			EtimModellingPortcode: portNumber(code),
		}

		for _, mc := range bmecat.FindAll(udx, "UDX.EDXF.FEATURE_MC") {
			if !hasPortcode(mc, code) {
				continue
			}
			feature := xchange.EtimModellingFeature{
				EtimFeatureCode:      bmecat.Text(mc, "UDX.EDXF.FNAME"),
				EtimValueCoordinateX: bmecat.Text(mc, "UDX.EDXF.COORDINATE_X"),
				EtimValueCoordinateY: bmecat.Text(mc, "UDX.EDXF.COORDINATE_Y"),
				EtimValueCoordinateZ: bmecat.Text(mc, "UDX.EDXF.COORDINATE_Z"),
			}

			values := ClassifyValues(childTexts(mc, "UDX.EDXF.FVALUE"))
			feature.EtimValueCode = values.Code
			feature.EtimValueNumeric = values.Numeric
			feature.EtimValueRangeLower = values.RangeLower
			feature.EtimValueRangeUpper = values.RangeUpper
			feature.EtimValueLogical = values.Logical

			source := bmecat.Text(mc, "UDX.EDXF.MATRIX_SOURCE_VALUE")
			result := bmecat.Text(mc, "UDX.EDXF.MATRIX_RESULT_VALUE")
			if source != "" && result != "" {
				feature.EtimValueMatrix = []xchange.EtimValueMatrix{{
					EtimValueMatrixSource: source,
					EtimValueMatrixResult: result,
				}}
			}

			port.EtimModellingFeatures = append(port.EtimModellingFeatures, feature)
		}

		ports = append(ports, port)
	}

	return ports, nil
}

// extractEtimVersion pulls the release version out of a feature system
// name such as "ETIM-9.0" or "ETIM 8.0". Names not mentioning ETIM yield
// nothing.
func extractEtimVersion(name string) string {
	idx := strings.Index(name, "ETIM")
	if idx < 0 {
		return ""
	}
	rest := name[idx+len("ETIM"):]
	start := -1
	for i := 0; i < len(rest); i++ {
		if rest[i] >= '0' && rest[i] <= '9' {
			start = i
			break
		}
	}
	if start < 0 {
		return ""
	}
	end := start
	for end < len(rest) && (rest[end] >= '0' && rest[end] <= '9' || rest[end] == '.') {
		end++
	}
	return rest[start:end]
}

// extractClassCode accepts class codes with the ETIM "EC" prefix and
// drops identifiers from other classification systems.
func extractClassCode(code string) string {
	if !strings.HasPrefix(code, "EC") {
		return ""
	}
	return code
}

// portNumber converts an all-digit port code to its numeric form; codes
// with other characters stay off the output.
func portNumber(code string) *int {
	if code == "" {
		return nil
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return nil
		}
	}
	n, err := strconv.Atoi(code)
	if err != nil {
		return nil
	}
	return &n
}

func hasPortcode(mc *etree.Element, code string) bool {
	for _, pc := range bmecat.Children(mc, "UDX.EDXF.PORTCODE") {
		if pc.Text() == code {
			return true
		}
	}
	return false
}

// childTexts returns the trimmed text of each direct child with the given
// tag, keeping empties so positional classification still sees them.
func childTexts(el *etree.Element, tag string) []string {
	var out []string
	for _, child := range bmecat.Children(el, tag) {
		out = append(out, strings.TrimSpace(child.Text()))
	}
	return out
}
