package xchange

// Document is the top-level xChange catalog document.
type Document struct {
	CatalogueId            string           `json:"CatalogueId"`
	CatalogueName          []LocalizedValue `json:"CatalogueName"`
	CatalogueVersion       string           `json:"CatalogueVersion"`
	CatalogueType          string           `json:"CatalogueType"`
	GenerationDate         string           `json:"GenerationDate"`
	NameDataCreator        string           `json:"NameDataCreator"`
	EmailDataCreator       string           `json:"EmailDataCreator"`
	BuyerName              string           `json:"BuyerName"`
	BuyerIdGln             string           `json:"BuyerIdGln"`
	CatalogueValidityStart string           `json:"CatalogueValidityStart"`
	Country                []string         `json:"Country"`
	Language               []string         `json:"Language"`
	CurrencyCode           string           `json:"CurrencyCode"`
	Supplier               []Supplier       `json:"Supplier"`
}

// Supplier identifies the catalog supplier and carries its attachments and
// products.
type Supplier struct {
	SupplierName        string       `json:"SupplierName"`
	SupplierIdGln       string       `json:"SupplierIdGln"`
	SupplierIdDuns      string       `json:"SupplierIdDuns"`
	SupplierVatNo       string       `json:"SupplierVatNo"`
	SupplierAttachments []Attachment `json:"SupplierAttachments"`
	Product             []Product    `json:"Product"`
}

// Attachment is a typed link to an external document or medium. The same
// shape serves supplier, product, and trade-item attachments.
type Attachment struct {
	AttachmentType    string             `json:"AttachmentType"`
	AttachmentOrder   *int               `json:"AttachmentOrder,omitempty"`
	AttachmentDetails []AttachmentDetail `json:"AttachmentDetails"`
}

type AttachmentDetail struct {
	AttachmentLanguage          []string         `json:"AttachmentLanguage"`
	AttachmentTypeSpecification []LocalizedValue `json:"AttachmentTypeSpecification"`
	AttachmentFilename          string           `json:"AttachmentFilename"`
	AttachmentUri               string           `json:"AttachmentUri"`
	AttachmentDescription       []LocalizedValue `json:"AttachmentDescription"`
	AttachmentIssueDate         string           `json:"AttachmentIssueDate"`
	AttachmentExpiryDate        string           `json:"AttachmentExpiryDate"`
}

// Product is one catalog product record.
type Product struct {
	ProductIdentification       ProductIdentification  `json:"ProductIdentification"`
	ProductDetails              ProductDetails         `json:"ProductDetails"`
	ProductRelations            []ProductRelation      `json:"ProductRelations"`
	Legislation                 Legislation            `json:"Legislation"`
	ProductAttachments          []Attachment           `json:"ProductAttachments"`
	EtimClassification          []EtimClassification   `json:"EtimClassification"`
	OtherClassifications        []OtherClassification  `json:"OtherClassifications"`
	ProductCountrySpecificFields []CountrySpecificField `json:"ProductCountrySpecificFields"`
	TradeItem                   []TradeItem            `json:"TradeItem"`
}

type ProductIdentification struct {
	ManufacturerName           string           `json:"ManufacturerName"`
	ManufacturerShortname      string           `json:"ManufacturerShortname"`
	ManufacturerProductNumber  string           `json:"ManufacturerProductNumber"`
	ProductGtin                []string         `json:"ProductGtin"`
	BrandName                  string           `json:"BrandName"`
	BrandDetails               []BrandDetail    `json:"BrandDetails"`
	ProductValidityDate        string           `json:"ProductValidityDate"`
	ProductObsolescenceDate    string           `json:"ProductObsolescenceDate"`
	CustomsCommodityCode       string           `json:"CustomsCommodityCode"`
	FactorCustomsCommodityCode string           `json:"FactorCustomsCommodityCode"`
	CountryOfOrigin            []string         `json:"CountryOfOrigin"`
}

type BrandDetail struct {
	BrandSeries          []LocalizedValue `json:"BrandSeries"`
	BrandSeriesVariation []LocalizedValue `json:"BrandSeriesVariation"`
}

type ProductDetails struct {
	ProductStatus       string               `json:"ProductStatus"`
	ProductType         string               `json:"ProductType"`
	ProductDescriptions []ProductDescription `json:"ProductDescriptions"`
	WarrantyConsumer    *int                 `json:"WarrantyConsumer,omitempty"`
	WarrantyBusiness    *int                 `json:"WarrantyBusiness,omitempty"`
}

// ProductDescription is the per-language description bundle. Exactly one
// exists per declared catalog language; the default language's bundle is
// always first.
type ProductDescription struct {
	DescriptionLanguage            string   `json:"DescriptionLanguage"`
	MinimalProductDescription      string   `json:"MinimalProductDescription"`
	UniqueMainProductDescription   string   `json:"UniqueMainProductDescription"`
	FullProductDescription         string   `json:"FullProductDescription"`
	ProductSpecificationText       string   `json:"ProductSpecificationText"`
	ProductApplicationInstructions string   `json:"ProductApplicationInstructions"`
	ProductKeyword                 []string `json:"ProductKeyword"`
}

type ProductRelation struct {
	RelatedManufacturerProductNumber string `json:"RelatedManufacturerProductNumber"`
	RelationType                     string `json:"RelationType"`
	RelatedProductQuantity           *int   `json:"RelatedProductQuantity,omitempty"`
}

// Legislation carries hazardous-goods and compliance fields, extracted
// verbatim from the vendor extension block.
type Legislation struct {
	BatteryContained             *bool            `json:"BatteryContained,omitempty"`
	RohsIndicator                string           `json:"RohsIndicator"`
	CeMarking                    *bool            `json:"CeMarking,omitempty"`
	SdsIndicator                 *bool            `json:"SdsIndicator,omitempty"`
	ReachIndicator               string           `json:"ReachIndicator"`
	ReachDate                    string           `json:"ReachDate"`
	ScipNumber                   string           `json:"ScipNumber"`
	UfiCode                      string           `json:"UfiCode"`
	UnNumber                     string           `json:"UnNumber"`
	HazardClass                  []string         `json:"HazardClass"`
	AdrCategory                  string           `json:"AdrCategory"`
	NetWeightHazardousSubstances string           `json:"NetWeightHazardousSubstances"`
	VolumeHazardousSubstances    string           `json:"VolumeHazardousSubstances"`
	UnShippingName               []LocalizedValue `json:"UnShippingName"`
	PackingGroup                 string           `json:"PackingGroup"`
	LimitedQuantities            *bool            `json:"LimitedQuantities,omitempty"`
	ExceptedQuantities           *bool            `json:"ExceptedQuantities,omitempty"`
	AggregationState             string           `json:"AggregationState"`
	SpecialProvisionId           []string         `json:"SpecialProvisionId"`
	ClassificationCode           string           `json:"ClassificationCode"`
	HazardLabel                  []string         `json:"HazardLabel"`
	EnvironmentalHazards         *bool            `json:"EnvironmentalHazards,omitempty"`
	TunnelCode                   string           `json:"TunnelCode"`
	LabelCode                    []string         `json:"LabelCode"`
	SignalWord                   string           `json:"SignalWord"`
	HazardStatement              []string         `json:"HazardStatement"`
	PrecautionaryStatement       []string         `json:"PrecautionaryStatement"`
	LiIonTested                  *bool            `json:"LiIonTested,omitempty"`
	LithiumAmount                string           `json:"LithiumAmount"`
	BatteryEnergy                string           `json:"BatteryEnergy"`
	Nos274                       *bool            `json:"Nos274,omitempty"`
	HazardTrigger                []string         `json:"HazardTrigger"`
}

// EtimClassification is one ETIM release classification of a product.
type EtimClassification struct {
	EtimReleaseVersion       string              `json:"EtimReleaseVersion"`
	EtimClassCode            string              `json:"EtimClassCode"`
	EtimDynamicReleaseDate   string              `json:"EtimDynamicReleaseDate"`
	EtimFeatures             []EtimFeature       `json:"EtimFeatures"`
	EtimModellingClassCode   string              `json:"EtimModellingClassCode"`
	EtimModellingClassVersion *int               `json:"EtimModellingClassVersion,omitempty"`
	EtimModellingPorts       []EtimModellingPort `json:"EtimModellingPorts"`
}

// EtimFeature holds one classified feature value. At most one of the value
// members (code, numeric, range, logical) is set for a given feature.
type EtimFeature struct {
	EtimFeatureCode     string           `json:"EtimFeatureCode"`
	EtimValueCode       string           `json:"EtimValueCode"`
	EtimValueNumeric    string           `json:"EtimValueNumeric"`
	EtimValueRangeLower string           `json:"EtimValueRangeLower"`
	EtimValueRangeUpper string           `json:"EtimValueRangeUpper"`
	EtimValueLogical    *bool            `json:"EtimValueLogical,omitempty"`
	EtimValueDetails    []LocalizedValue `json:"EtimValueDetails"`
	ReasonNoValue       string           `json:"ReasonNoValue"`
}

// EtimModellingPort is a named connection point carrying its own features.
type EtimModellingPort struct {
	EtimModellingPortcode *int                   `json:"EtimModellingPortcode,omitempty"`
	EtimModellingFeatures []EtimModellingFeature `json:"EtimModellingFeatures"`
}

type EtimModellingFeature struct {
	EtimFeatureCode      string            `json:"EtimFeatureCode"`
	EtimValueCode        string            `json:"EtimValueCode"`
	EtimValueNumeric     string            `json:"EtimValueNumeric"`
	EtimValueRangeLower  string            `json:"EtimValueRangeLower"`
	EtimValueRangeUpper  string            `json:"EtimValueRangeUpper"`
	EtimValueLogical     *bool             `json:"EtimValueLogical,omitempty"`
	EtimValueCoordinateX string            `json:"EtimValueCoordinateX"`
	EtimValueCoordinateY string            `json:"EtimValueCoordinateY"`
	EtimValueCoordinateZ string            `json:"EtimValueCoordinateZ"`
	EtimValueMatrix      []EtimValueMatrix `json:"EtimValueMatrix"`
}

type EtimValueMatrix struct {
	EtimValueMatrixSource string `json:"EtimValueMatrixSource"`
	EtimValueMatrixResult string `json:"EtimValueMatrixResult"`
}

type OtherClassification struct {
	ClassificationName     string                  `json:"ClassificationName"`
	ClassificationClassCode string                 `json:"ClassificationClassCode"`
	ClassificationFeatures []ClassificationFeature `json:"ClassificationFeatures"`
}

type ClassificationFeature struct {
	ClassificationFeatureName   string `json:"ClassificationFeatureName"`
	ClassificationFeatureValue1 string `json:"ClassificationFeatureValue1"`
	ClassificationFeatureUnit   string `json:"ClassificationFeatureUnit"`
}

// CountrySpecificField is one country-specific product or item
// characteristic from the vendor extension block.
type CountrySpecificField struct {
	CSProductCharacteristicCode            string           `json:"CSProductCharacteristicCode"`
	CSProductCharacteristicName            []LocalizedValue `json:"CSProductCharacteristicName"`
	CSProductCharacteristicValueBoolean    *bool            `json:"CSProductCharacteristicValueBoolean,omitempty"`
	CSProductCharacteristicValueNumeric    string           `json:"CSProductCharacteristicValueNumeric"`
	CSProductCharacteristicValueRangeLower string           `json:"CSProductCharacteristicValueRangeLower"`
	CSProductCharacteristicValueRangeUpper string           `json:"CSProductCharacteristicValueRangeUpper"`
	CSProductCharacteristicValueString     []LocalizedValue `json:"CSProductCharacteristicValueString"`
	CSProductCharacteristicValueSet        []LocalizedValue `json:"CSProductCharacteristicValueSet"`
	CSProductCharacteristicValueSelect     string           `json:"CSProductCharacteristicValueSelect"`
	CSProductCharacteristicValueUnitCode   string           `json:"CSProductCharacteristicValueUnitCode"`
	CSProductCharacteristicReferenceGtin   string           `json:"CSProductCharacteristicReferenceGtin"`
}

// TradeItem is the orderable form of a product.
type TradeItem struct {
	ItemIdentification        ItemIdentification     `json:"ItemIdentification"`
	ItemDetails               ItemDetails            `json:"ItemDetails"`
	ItemRelations             []ItemRelation         `json:"ItemRelations"`
	ItemLogisticDetails       []ItemLogisticDetail   `json:"ItemLogisticDetails"`
	Ordering                  Ordering               `json:"Ordering"`
	Pricing                   []Pricing              `json:"Pricing"`
	ItemAttachments           []Attachment           `json:"ItemAttachments"`
	ItemCountrySpecificFields []CountrySpecificField `json:"ItemCountrySpecificFields"`
	PackagingUnit             []PackagingUnit        `json:"PackagingUnit"`
}

type ItemIdentification struct {
	SupplierItemNumber    string   `json:"SupplierItemNumber"`
	SupplierAltItemNumber string   `json:"SupplierAltItemNumber"`
	ItemGtin              []string `json:"ItemGtin"`
	BuyerItemNumber       string   `json:"BuyerItemNumber"`
	DiscountGroupId       string   `json:"DiscountGroupId"`
	BonusGroupId          string   `json:"BonusGroupId"`
}

type ItemDetails struct {
	ItemCondition    string            `json:"ItemCondition"`
	StockItem        *bool             `json:"StockItem,omitempty"`
	ShelfLifePeriod  *int              `json:"ShelfLifePeriod,omitempty"`
	ItemDescriptions []ItemDescription `json:"ItemDescriptions"`
}

type ItemDescription struct {
	MinimalItemDescription string `json:"MinimalItemDescription"`
}

type ItemRelation struct {
	RelatedSupplierItemNumber string `json:"RelatedSupplierItemNumber"`
	RelationType              string `json:"RelationType"`
	RelatedItemQuantity       *int   `json:"RelatedItemQuantity,omitempty"`
}

type ItemLogisticDetail struct {
	BaseItemNetLength   string `json:"BaseItemNetLength"`
	BaseItemNetWidth    string `json:"BaseItemNetWidth"`
	BaseItemNetHeight   string `json:"BaseItemNetHeight"`
	BaseItemNetDiameter string `json:"BaseItemNetDiameter"`
	BaseItemNetWeight   string `json:"BaseItemNetWeight"`
	BaseItemNetVolume   string `json:"BaseItemNetVolume"`
}

type Ordering struct {
	OrderUnit               string `json:"OrderUnit"`
	MinimumOrderQuantity    string `json:"MinimumOrderQuantity"`
	OrderStepSize           string `json:"OrderStepSize"`
	StandardOrderLeadTime   *int   `json:"StandardOrderLeadTime,omitempty"`
	UseUnit                 string `json:"UseUnit"`
	UseUnitConversionFactor string `json:"UseUnitConversionFactor"`
}

type Pricing struct {
	PriceUnit              string `json:"PriceUnit"`
	PriceUnitFactor        string `json:"PriceUnitFactor"`
	PriceQuantity          string `json:"PriceQuantity"`
	PriceOnRequest         *bool  `json:"PriceOnRequest,omitempty"`
	GrossListPrice         string `json:"GrossListPrice"`
	NetPrice               string `json:"NetPrice"`
	RecommendedRetailPrice string `json:"RecommendedRetailPrice"`
	Vat                    string `json:"Vat"`
	PriceValidityDate      string `json:"PriceValidityDate"`
	PriceExpiryDate        string `json:"PriceExpiryDate"`
}

type PackagingUnit struct {
	PackagingIdentification  PackagingIdentification   `json:"PackagingIdentification"`
	PackagingLogisticDetails []PackagingLogisticDetail `json:"PackagingLogisticDetails"`
}

type PackagingIdentification struct {
	PackagingGtin          []string `json:"PackagingGtin"`
	PackagingTypeCode      string   `json:"PackagingTypeCode"`
	PackagingQuantity      string   `json:"PackagingQuantity"`
	PackagingGs1Code128    string   `json:"PackagingGs1Code128"`
	PackagingBreak         *bool    `json:"PackagingBreak,omitempty"`
	NumberOfPackagingParts *int     `json:"NumberOfPackagingParts,omitempty"`
}

type PackagingLogisticDetail struct {
	PackagingTypeLength   string `json:"PackagingTypeLength"`
	PackagingTypeWidth    string `json:"PackagingTypeWidth"`
	PackagingTypeHeight   string `json:"PackagingTypeHeight"`
	PackagingTypeDiameter string `json:"PackagingTypeDiameter"`
	PackagingTypeWeight   string `json:"PackagingTypeWeight"`
}
