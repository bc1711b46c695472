package convert

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/etim-tools/bmecat-xchange/internal/bmecat"
	"github.com/etim-tools/bmecat-xchange/internal/convert/tables"
	"github.com/etim-tools/bmecat-xchange/internal/xchange"
)

// buildProduct assembles one product record. The vendor extension block
// (USER_DEFINED_EXTENSIONS) is the preferred scope for UDX.EDXF fields;
// products without one are scoped to themselves so the same lookups still
// resolve.
func (b *builder) buildProduct(p *etree.Element) (*xchange.Product, error) {
	udx := bmecat.Find(p, "USER_DEFINED_EXTENSIONS")
	if udx == nil {
		udx = p
	}

	product := &xchange.Product{}

	ident, err := b.buildIdentification(p, udx)
	if err != nil {
		return nil, err
	}
	product.ProductIdentification = *ident

	details, err := b.buildDetails(p, udx)
	if err != nil {
		return nil, err
	}
	product.ProductDetails = *details

	for _, ref := range bmecat.Children(p, "PRODUCT_REFERENCE") {
		relType, quantity, err := b.relation(ref)
		if err != nil {
			return nil, err
		}
		product.ProductRelations = append(product.ProductRelations, xchange.ProductRelation{
			RelatedManufacturerProductNumber: bmecat.Text(ref, "PROD_ID_TO"),
			RelationType:                     relType,
			RelatedProductQuantity:           quantity,
		})
	}

	legislation, err := b.buildLegislation(p, udx)
	if err != nil {
		return nil, err
	}
	product.Legislation = *legislation

	attachments, err := b.buildProductAttachments(p, udx)
	if err != nil {
		return nil, err
	}
	product.ProductAttachments = attachments

	classifications, err := b.buildClassifications(p, udx)
	if err != nil {
		return nil, err
	}
	product.EtimClassification = classifications

	if funit := bmecat.Text(p, "FUNIT"); funit != "" {
		product.OtherClassifications = append(product.OtherClassifications, xchange.OtherClassification{
			ClassificationName:      "FUNIT",
			ClassificationClassCode: funit,
			ClassificationFeatures: []xchange.ClassificationFeature{{
				ClassificationFeatureName:   "FUNIT",
				ClassificationFeatureValue1: funit,
				ClassificationFeatureUnit:   funit,
			}},
		})
	}

	for _, char := range bmecat.FindAll(udx, "UDX.EDXF.PRODUCT_CHARACTERISTIC") {
		field, err := b.buildCharacteristic(char)
		if err != nil {
			return nil, err
		}
		product.ProductCountrySpecificFields = append(product.ProductCountrySpecificFields, *field)
	}

	item, err := b.buildTradeItem(p, udx)
	if err != nil {
		return nil, err
	}
	product.TradeItem = []xchange.TradeItem{*item}

	return product, nil
}

func (b *builder) buildIdentification(p, udx *etree.Element) (*xchange.ProductIdentification, error) {
	series, err := b.localize(bmecat.Children(udx, "UDX.EDXF.PRODUCT_SERIES"), "BrandSeries")
	if err != nil {
		return nil, err
	}
	variation, err := b.localize(bmecat.Children(udx, "UDX.EDXF.PRODUCT_VARIATION"), "BrandSeriesVariation")
	if err != nil {
		return nil, err
	}

	return &xchange.ProductIdentification{
		ManufacturerName:           bmecat.Text(p, "MANUFACTURER_NAME"),
		ManufacturerShortname:      bmecat.Text(udx, "UDX.EDXF.MANUFACTURER_ACRONYM"),
		ManufacturerProductNumber:  bmecat.Text(p, "MANUFACTURER_PID"),
		ProductGtin:                []string{bmecat.Text(p, "INTERNATIONAL_PID")},
		BrandName:                  bmecat.Text(udx, "UDX.EDXF.BRAND_NAME"),
		BrandDetails:               []xchange.BrandDetail{{BrandSeries: series, BrandSeriesVariation: variation}},
		ProductValidityDate:        bmecat.Text(udx, "UDX.EDXF.VALID_FROM"),
		ProductObsolescenceDate:    bmecat.Text(udx, "UDX.EDXF.EXPIRATION_DATE"),
		CustomsCommodityCode:       bmecat.Text(p, "CUSTOMS_NUMBER"),
		FactorCustomsCommodityCode: bmecat.Text(p, "STATISTICS_FACTOR"),
		CountryOfOrigin:            []string{bmecat.Text(p, "COUNTRY_OF_ORIGIN")},
	}, nil
}

func (b *builder) buildDetails(p, udx *etree.Element) (*xchange.ProductDetails, error) {
	details := &xchange.ProductDetails{
		ProductType: strings.ToUpper(bmecat.Text(p, "PRODUCT_TYPE")),
	}

	if status := bmecat.Find(p, "PRODUCT_STATUS"); status != nil {
		if attr := status.SelectAttr("type"); attr != nil {
			mapped, _ := tables.ProductStatus(attr.Value)
			details.ProductStatus = mapped
		}
	}

	// The default language's description comes first and always exists,
	// built through the unlabeled-before-labeled fallback chains.
	details.ProductDescriptions = append(details.ProductDescriptions, xchange.ProductDescription{
		DescriptionLanguage: b.defaultLang,
		MinimalProductDescription: firstOf(
			bmecat.TextNoLang(udx, "UDX.EDXF.DESCRIPTION_VERY_SHORT"),
			bmecat.TextNoLang(p, "DESCRIPTION_SHORT"),
			bmecat.TextAttr(udx, "UDX.EDXF.DESCRIPTION_VERY_SHORT", "lang", b.defaultCode),
			bmecat.TextAttr(p, "DESCRIPTION_LONG", "lang", b.defaultCode),
		),
		UniqueMainProductDescription: firstOf(
			bmecat.TextNoLang(p, "DESCRIPTION_SHORT"),
			bmecat.TextAttr(p, "DESCRIPTION_SHORT", "lang", b.defaultCode),
		),
		FullProductDescription: firstOf(
			bmecat.TextNoLang(p, "DESCRIPTION_LONG"),
			bmecat.TextAttr(p, "DESCRIPTION_LONG", "lang", b.defaultCode),
		),
		ProductSpecificationText: firstOf(
			bmecat.TextNoLang(udx, "UDX.EDXF.TENDER_TEXT"),
			bmecat.TextAttr(udx, "UDX.EDXF.TENDER_TEXT", "lang", b.defaultCode),
		),
		ProductApplicationInstructions: firstOf(
			bmecat.TextNoLang(p, "REMARKS"),
			bmecat.TextAttr(p, "REMARKS", "lang", b.defaultCode),
		),
		ProductKeyword: b.keywords(p, b.defaultCode, true),
	})

	// One additional description block per other declared language, using
	// the language-labeled fields with an unlabeled fallback.
	for _, code := range b.langCodes {
		if code == "" || code == b.defaultCode {
			continue
		}
		lang, err := ResolveLanguage(code)
		if err != nil {
			return nil, err
		}
		details.ProductDescriptions = append(details.ProductDescriptions, xchange.ProductDescription{
			DescriptionLanguage: lang,
			MinimalProductDescription: firstOf(
				bmecat.TextAttr(p, "UDX.EDXF.DESCRIPTION_VERY_SHORT", "lang", code),
				bmecat.TextAttr(p, "DESCRIPTION_SHORT", "lang", code),
				bmecat.Text(p, "UDX.EDXF.DESCRIPTION_VERY_SHORT"),
				bmecat.Text(p, "DESCRIPTION_LONG"),
			),
			UniqueMainProductDescription:   bmecat.TextAttr(p, "DESCRIPTION_SHORT", "lang", code),
			FullProductDescription:         bmecat.TextAttr(p, "DESCRIPTION_LONG", "lang", code),
			ProductSpecificationText:       bmecat.TextAttr(p, "UDX.EDXF.TENDER_TEXT", "lang", code),
			ProductApplicationInstructions: bmecat.TextAttr(p, "REMARKS", "lang", code),
			ProductKeyword:                 b.keywords(p, code, false),
		})
	}

	consumer, err := bmecat.Int(udx, "UDX.EDXF.WARRANTY_CONSUMER")
	if err != nil {
		return nil, err
	}
	business, err := bmecat.Int(udx, "UDX.EDXF.WARRANTY_BUSINESS")
	if err != nil {
		return nil, err
	}
	details.WarrantyConsumer = consumer
	details.WarrantyBusiness = business

	return details, nil
}

// keywords collects non-empty KEYWORD texts for a language. For the
// default language, unlabeled keywords count too.
func (b *builder) keywords(p *etree.Element, code string, includeUnlabeled bool) []string {
	var out []string
	for _, kw := range bmecat.FindAll(p, "KEYWORD") {
		text := trimmedText(kw)
		if text == "" {
			continue
		}
		attr := kw.SelectAttr("lang")
		switch {
		case attr == nil:
			if !includeUnlabeled {
				continue
			}
		case attr.Value != code:
			continue
		}
		out = append(out, text)
	}
	return out
}

// relation maps a PRODUCT_REFERENCE element's type and quantity
// attributes. A missing type attribute defaults to OTHER; a present but
// unmapped one stays absent. A missing quantity defaults to 1.
func (b *builder) relation(ref *etree.Element) (string, *int, error) {
	relType := tables.RelationTypeFallback
	if attr := ref.SelectAttr("type"); attr != nil {
		relType, _ = tables.RelationType(attr.Value)
	}

	quantity, err := attrInt(ref, "quantity", 1)
	if err != nil {
		return "", nil, err
	}
	return relType, quantity, nil
}

func (b *builder) buildLegislation(p, udx *etree.Element) (*xchange.Legislation, error) {
	shipping, err := b.localize(bmecat.FindAll(udx, "UDX.EDXF.SHIPPING_NAME"), "UnShippingName")
	if err != nil {
		return nil, err
	}

	return &xchange.Legislation{
		BatteryContained:             bmecat.Bool(udx, "UDX.EDXF.BATTERY_CONTAINED"),
		RohsIndicator:                bmecat.Text(udx, "UDX.EDXF.ROHS_INDICATOR"),
		CeMarking:                    bmecat.Bool(udx, "UDX.EDXF.CE_MARKING"),
		SdsIndicator:                 bmecat.BoolAttr(p, "SPECIAL_TREATMENT_CLASS", "type", "SDS"),
		ReachIndicator:               bmecat.Text(udx, "UDX.EDXF.REACH.INFO"),
		ReachDate:                    bmecat.Text(udx, "UDX.EDXF.REACH.LISTDATE"),
		ScipNumber:                   bmecat.Text(udx, "UDX.EDXF.SCIP_NUMBER"),
		UfiCode:                      bmecat.Text(udx, "UDX.EDXF.UFI_CODE"),
		UnNumber:                     bmecat.Text(udx, "UDX.EDXF.UN_NUMBER"),
		HazardClass:                  []string{bmecat.Text(udx, "UDX.EDXF.HAZARD_CLASS")},
		AdrCategory:                  bmecat.Text(udx, "UDX.EDXF.TRANSPORT_CATEGORY"),
		NetWeightHazardousSubstances: bmecat.Text(udx, "UDX.EDXF.NET_WEIGHT_OF_HAZARDOUS_SUBSTANCE"),
		VolumeHazardousSubstances:    bmecat.Text(udx, "UDX.EDXF.VOLUME_OF_HAZARDOUS_SUBSTANCES"),
		UnShippingName:               shipping,
		PackingGroup:                 bmecat.Text(udx, "UDX.EDXF.PACKING_GROUP"),
		LimitedQuantities:            bmecat.Bool(udx, "UDX.EDXF.LIMITED_QUANTITIES"),
		ExceptedQuantities:           bmecat.Bool(udx, "UDX.EDXF.EXCEPTED_QUANTITIES"),
		AggregationState:             bmecat.Text(udx, "UDX.EDXF.AGGREGATION_STATE"),
		SpecialProvisionId:           []string{bmecat.Text(udx, "UDX.EDXF.SPECIAL_PROVISION_ID")},
		ClassificationCode:           bmecat.Text(udx, "UDX.EDXF.CLASSIFICATION_CODE"),
		HazardLabel:                  []string{bmecat.Text(udx, "UDX.EDXF.HAZARD_LABEL")},
		EnvironmentalHazards:         bmecat.Bool(udx, "UDX.EDXF.ENVIRONMENTAL_HAZARDS"),
		TunnelCode:                   bmecat.Text(udx, "UDX.EDXF.TUNNEL_CODE"),
		LabelCode:                    []string{bmecat.Text(udx, "UDX.EDXF.GHS_LABEL_CODE")},
		SignalWord:                   bmecat.Text(udx, "UDX.EDXF.GHS_SIGNAL_WORD"),
		HazardStatement:              []string{bmecat.Text(udx, "UDX.EDXF.HAZARD_STATEMENT")},
		PrecautionaryStatement:       []string{bmecat.Text(udx, "UDX.EDXF.PRECAUTIONARY_STATEMENT")},
		LiIonTested:                  bmecat.Bool(udx, "UDX.EDXF.LI-ION_TESTED"),
		LithiumAmount:                bmecat.Text(udx, "UDX.EDXF.LITHIUM_AMOUNT"),
		BatteryEnergy:                bmecat.Text(udx, "UDX.EDXF.BATTERY_ENERGY"),
		Nos274:                       bmecat.Bool(udx, "UDX.EDXF.NOS_274"),
		HazardTrigger:                []string{bmecat.Text(udx, "UDX.EDXF.HAZARD_TRIGGER")},
	}, nil
}

// buildProductAttachments merges attachments from the vendor extension
// MIME block and the legacy direct MIME block some suppliers use. Both
// sources are kept when present, without deduplication.
func (b *builder) buildProductAttachments(p, udx *etree.Element) ([]xchange.Attachment, error) {
	var out []xchange.Attachment

	for _, mime := range bmecat.FindAll(udx, "UDX.EDXF.MIME") {
		att, err := b.extensionAttachment(mime, true)
		if err != nil {
			return nil, err
		}
		out = append(out, *att)
	}

	for _, mime := range bmecat.FindAll(p, "MIME") {
		order, err := bmecat.Int(mime, "MIME_ORDER")
		if err != nil {
			return nil, err
		}
		lang, err := b.attachmentLanguage(bmecat.Find(mime, "MIME_SOURCE"))
		if err != nil {
			return nil, err
		}
		descr, err := b.localize(bmecat.Children(mime, "UDX.EDXF.MIME_DESIGNATION"), "AttachmentDescription")
		if err != nil {
			return nil, err
		}
		out = append(out, xchange.Attachment{
			AttachmentType:  b.attachmentType(firstOf(bmecat.Text(mime, "MIME_CODE"), bmecat.Text(mime, "MIME_DESCR"))),
			AttachmentOrder: order,
			AttachmentDetails: []xchange.AttachmentDetail{{
				AttachmentLanguage:    []string{lang},
				AttachmentFilename:    bmecat.Text(mime, "MIME_FILENAME"),
				AttachmentUri:         bmecat.Text(mime, "MIME_SOURCE"),
				AttachmentDescription: descr,
				AttachmentIssueDate:   bmecat.Text(mime, "MIME_ISSUE_DATE"),
				AttachmentExpiryDate:  bmecat.Text(mime, "MIME_EXPIRY_DATE"),
			}},
		})
	}

	return out, nil
}

// extensionAttachment builds one attachment from a UDX.EDXF.MIME element.
// Trade-item attachments reuse the same block but omit language and order.
func (b *builder) extensionAttachment(mime *etree.Element, withLanguage bool) (*xchange.Attachment, error) {
	descr, err := b.localize(bmecat.Children(mime, "UDX.EDXF.MIME_DESIGNATION"), "AttachmentDescription")
	if err != nil {
		return nil, err
	}

	detail := xchange.AttachmentDetail{
		AttachmentFilename:    bmecat.Text(mime, "UDX.EDXF.MIME_FILENAME"),
		AttachmentUri:         bmecat.Text(mime, "UDX.EDXF.MIME_SOURCE"),
		AttachmentDescription: descr,
		AttachmentIssueDate:   bmecat.Text(mime, "UDX.EDXF.MIME_ISSUE_DATE"),
		AttachmentExpiryDate:  bmecat.Text(mime, "UDX.EDXF.MIME_EXPIRY_DATE"),
	}

	att := &xchange.Attachment{
		AttachmentType:    b.attachmentType(bmecat.Text(mime, "UDX.EDXF.MIME_CODE")),
		AttachmentDetails: []xchange.AttachmentDetail{detail},
	}

	if withLanguage {
		order, err := bmecat.Int(mime, "UDX.EDXF.MIME_ORDER")
		if err != nil {
			return nil, err
		}
		lang, err := b.attachmentLanguage(bmecat.Find(mime, "UDX.EDXF.MIME_SOURCE"))
		if err != nil {
			return nil, err
		}
		att.AttachmentOrder = order
		att.AttachmentDetails[0].AttachmentLanguage = []string{lang}
	}

	return att, nil
}

func (b *builder) buildCharacteristic(char *etree.Element) (*xchange.CountrySpecificField, error) {
	names, err := b.localize(bmecat.FindAll(char, "UDX.EDXF.PRODUCT_CHARACTERISTIC_NAME"), "CSProductCharacteristicName")
	if err != nil {
		return nil, err
	}
	strs, err := b.localize(bmecat.FindAll(char, "UDX.EDXF.PRODUCT_CHARACTERISTIC_VALUE_STRING"), "CSProductCharacteristicValueString")
	if err != nil {
		return nil, err
	}
	sets, err := b.localize(bmecat.FindAll(char, "UDX.EDXF.PRODUCT_CHARACTERISTIC_VALUE_SET"), "CSProductCharacteristicValueSet")
	if err != nil {
		return nil, err
	}

	return &xchange.CountrySpecificField{
		CSProductCharacteristicCode:            bmecat.Text(char, "UDX.EDXF.PRODUCT_CHARACTERISTIC_CODE"),
		CSProductCharacteristicName:            names,
		CSProductCharacteristicValueBoolean:    bmecat.Bool(char, "UDX.EDXF.PRODUCT_CHARACTERISTIC_VALUE_BOOLEAN"),
		CSProductCharacteristicValueNumeric:    bmecat.Text(char, "UDX.EDXF.PRODUCT_CHARACTERISTIC_VALUE_NUMERIC"),
		CSProductCharacteristicValueRangeLower: bmecat.Text(char, "UDX.EDXF.PRODUCT_CHARACTERISTIC_VALUE_RANGE_FROM"),
		CSProductCharacteristicValueRangeUpper: bmecat.Text(char, "UDX.EDXF.PRODUCT_CHARACTERISTIC_VALUE_RANGE_TO"),
		CSProductCharacteristicValueString:     strs,
		CSProductCharacteristicValueSet:        sets,
		CSProductCharacteristicValueSelect:     bmecat.Text(char, "UDX.EDXF.PRODUCT_CHARACTERISTIC_VALUE_SELECT"),
		CSProductCharacteristicValueUnitCode:   bmecat.Text(char, "UDX.EDXF.PRODUCT_CHARACTERISTIC_VALUE_UNIT_CODE"),
		CSProductCharacteristicReferenceGtin:   bmecat.Text(char, "UDX.EDXF.PRODUCT_CHARACTERISTIC_REFERENCE_GTIN"),
	}, nil
}

// attrInt parses an integer attribute, applying a default when absent.
// A present but non-numeric attribute is a hard error.
func attrInt(el *etree.Element, name string, fallback int) (*int, error) {
	attr := el.SelectAttr(name)
	if attr == nil {
		return &fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(attr.Value))
	if err != nil {
		return nil, fmt.Errorf("attribute %s: non-numeric value %q", name, attr.Value)
	}
	return &n, nil
}
