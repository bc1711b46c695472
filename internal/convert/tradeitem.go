package convert

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/etim-tools/bmecat-xchange/internal/bmecat"
	"github.com/etim-tools/bmecat-xchange/internal/xchange"
)

// buildTradeItem assembles the orderable form of a product: ordering and
// pricing conditions, logistics, packaging, and the item-level mirrors of
// relations, attachments, and characteristics.
func (b *builder) buildTradeItem(p, udx *etree.Element) (*xchange.TradeItem, error) {
	item := &xchange.TradeItem{
		ItemIdentification: xchange.ItemIdentification{
			SupplierItemNumber:    bmecat.Text(p, "SUPPLIER_PID"),
			SupplierAltItemNumber: bmecat.Text(p, "SUPPLIER_ALT_PID"),
			ItemGtin:              []string{bmecat.TextAttr(p, "INTERNATIONAL_PID", "type", "gtin")},
			BuyerItemNumber:       bmecat.TextAttr(p, "BUYER_PID", "type", "buyer_specific"),
			DiscountGroupId:       bmecat.Text(udx, "UDX.EDXF.DISCOUNT_GROUP_SUPPLIER"),
			BonusGroupId:          bmecat.Text(udx, "UDX.EDXF.BONUS_GROUP_SUPPLIER"),
		},
		Ordering: xchange.Ordering{
			OrderUnit:               bmecat.Text(p, "ORDER_UNIT"),
			MinimumOrderQuantity:    bmecat.Text(p, "QUANTITY_MIN"),
			OrderStepSize:           bmecat.Text(p, "QUANTITY_INTERVAL"),
			UseUnit:                 bmecat.Text(p, "CONTENT_UNIT"),
			UseUnitConversionFactor: bmecat.Text(p, "NO_CU_PER_OU"),
		},
	}

	details, err := b.buildItemDetails(p, udx)
	if err != nil {
		return nil, err
	}
	item.ItemDetails = *details

	for _, ref := range bmecat.Children(p, "PRODUCT_REFERENCE") {
		relType, quantity, err := b.relation(ref)
		if err != nil {
			return nil, err
		}
		item.ItemRelations = append(item.ItemRelations, xchange.ItemRelation{
			RelatedSupplierItemNumber: bmecat.Text(ref, "PROD_ID_TO"),
			RelationType:              relType,
			RelatedItemQuantity:       quantity,
		})
	}

	item.ItemLogisticDetails = []xchange.ItemLogisticDetail{{
		BaseItemNetLength:   bmecat.Text(udx, "UDX.EDXF.NETLENGTH"),
		BaseItemNetWidth:    bmecat.Text(udx, "UDX.EDXF.NETWIDTH"),
		BaseItemNetHeight:   bmecat.Text(udx, "UDX.EDXF.NETDEPTH"),
		BaseItemNetDiameter: bmecat.Text(udx, "UDX.EDXF.NETDIAMETER"),
		BaseItemNetWeight:   bmecat.Text(udx, "UDX.EDXF.NETWEIGHT"),
		BaseItemNetVolume:   bmecat.Text(udx, "UDX.EDXF.NETVOLUME"),
	}}

	leadTime, err := bmecat.Int(p, "DELIVERY_TIME")
	if err != nil {
		return nil, err
	}
	item.Ordering.StandardOrderLeadTime = leadTime

	item.Pricing = []xchange.Pricing{{
		PriceUnit:              firstOf(bmecat.Text(p, "PRICE_UNIT"), bmecat.Text(p, "ORDER_UNIT")),
		PriceUnitFactor:        bmecat.Text(p, "PRICE_UNIT_FACTOR"),
		PriceQuantity:          bmecat.Text(p, "PRICE_QUANTITY"),
		PriceOnRequest:         bmecat.Bool(p, "DAILY_PRICE"),
		GrossListPrice:         priceAmount(p, "net_list"),
		NetPrice:               priceAmount(p, "net_customer"),
		RecommendedRetailPrice: priceAmount(p, "nrp"),
		Vat:                    bmecat.Text(p, "TAX"),
		PriceValidityDate:      priceDate(p, "valid_start_date"),
		PriceExpiryDate:        priceDate(p, "valid_end_date"),
	}}

	for _, mime := range bmecat.FindAll(udx, "UDX.EDXF.MIME") {
		att, err := b.extensionAttachment(mime, false)
		if err != nil {
			return nil, err
		}
		item.ItemAttachments = append(item.ItemAttachments, *att)
	}

	for _, char := range bmecat.FindAll(udx, "UDX.EDXF.PRODUCT_CHARACTERISTIC") {
		field, err := b.buildCharacteristic(char)
		if err != nil {
			return nil, err
		}
		item.ItemCountrySpecificFields = append(item.ItemCountrySpecificFields, *field)
	}

	for _, unit := range bmecat.FindAll(udx, "UDX.EDXF.PACKING_UNIT") {
		packaging, err := buildPackagingUnit(unit)
		if err != nil {
			return nil, err
		}
		item.PackagingUnit = append(item.PackagingUnit, *packaging)
	}

	return item, nil
}

func (b *builder) buildItemDetails(p, udx *etree.Element) (*xchange.ItemDetails, error) {
	details := &xchange.ItemDetails{
		ItemCondition: itemCondition(p),
		StockItem:     bmecat.Bool(udx, "UDX.EDXF.PRODUCT_TO_STOCK"),
		ItemDescriptions: []xchange.ItemDescription{{
			MinimalItemDescription: firstOf(
				bmecat.Text(udx, "UDX.EDXF.DESCRIPTION_VERY_SHORT"),
				bmecat.Text(p, "DESCRIPTION_SHORT"),
			),
		}},
	}

	shelfLife, err := bmecat.Int(udx, "UDX.EDXF.SHELF_LIFE_PERIOD")
	if err != nil {
		return nil, err
	}
	details.ShelfLifePeriod = shelfLife

	return details, nil
}

// itemCondition reports the product status type uppercased, but only for
// the condition-like statuses; lifecycle statuses stay on ProductStatus.
func itemCondition(p *etree.Element) string {
	status := bmecat.Find(p, "PRODUCT_STATUS")
	if status == nil {
		return ""
	}
	attr := status.SelectAttr("type")
	if attr == nil {
		return ""
	}
	switch strings.ToLower(attr.Value) {
	case "new", "refurbished", "used":
		return strings.ToUpper(attr.Value)
	}
	return ""
}

// priceAmount reads the PRICE_AMOUNT of the typed PRODUCT_PRICE entry.
func priceAmount(p *etree.Element, priceType string) string {
	price := bmecat.FindAttr(p, "PRODUCT_PRICE", "price_type", priceType)
	if price == nil {
		return ""
	}
	return bmecat.Text(price, "PRICE_AMOUNT")
}

// priceDate reads the DATE of the typed DATETIME entry.
func priceDate(p *etree.Element, dateType string) string {
	dt := bmecat.FindAttr(p, "DATETIME", "type", dateType)
	if dt == nil {
		return ""
	}
	return bmecat.Text(dt, "DATE")
}

func buildPackagingUnit(unit *etree.Element) (*xchange.PackagingUnit, error) {
	parts, err := bmecat.Int(unit, "UDX.EDXF.PACKING_PARTS")
	if err != nil {
		return nil, err
	}

	return &xchange.PackagingUnit{
		PackagingIdentification: xchange.PackagingIdentification{
			PackagingGtin:          []string{bmecat.Text(unit, "UDX.EDXF.GTIN")},
			PackagingTypeCode:      bmecat.Text(unit, "UDX.EDXF.PACKING_UNIT_CODE"),
			PackagingQuantity:      bmecat.Text(unit, "UDX.EDXF.QUANTITY_MAX"),
			PackagingGs1Code128:    bmecat.Text(unit, "UDX.EDXF.GS1_128"),
			PackagingBreak:         bmecat.Bool(unit, "UDX.EDXF.PACKAGE_BREAK"),
			NumberOfPackagingParts: parts,
		},
		PackagingLogisticDetails: []xchange.PackagingLogisticDetail{{
			PackagingTypeLength:   bmecat.Text(unit, "UDX.EDXF.LENGTH"),
			PackagingTypeWidth:    bmecat.Text(unit, "UDX.EDXF.WIDTH"),
			PackagingTypeHeight:   bmecat.Text(unit, "UDX.EDXF.DEPTH"),
			PackagingTypeDiameter: bmecat.Text(unit, "UDX.EDXF.DIAMETER"),
			PackagingTypeWeight:   bmecat.Text(unit, "UDX.EDXF.WEIGHT"),
		}},
	}, nil
}
