package convert

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/beevik/etree"

	"github.com/etim-tools/bmecat-xchange/internal/bmecat"
	"github.com/etim-tools/bmecat-xchange/internal/convert/tables"
	"github.com/etim-tools/bmecat-xchange/internal/xchange"
)

// fallbackValidityStart is the hard-coded last resort for the mandatory
// CatalogueValidityStart when neither the header date nor the vendor
// extension provides one.
const fallbackValidityStart = "1971-08-15"

// builder carries the per-conversion state: the located header and catalog
// sections and the resolved language policy. One builder serves exactly
// one conversion and is never shared.
type builder struct {
	log     *slog.Logger
	header  *etree.Element
	catalog *etree.Element

	// defaultCode is the catalog default language as a raw BMEcat code
	// ("ger"); defaultLang is its resolved tag ("de-DE"). langCodes lists
	// every declared header language, raw, in source order.
	defaultCode string
	defaultLang string
	langCodes   []string
}

// Convert parses the BMEcat file at path and assembles the xChange
// document. The result is the pre-pruning tree: identical input always
// produces an identical document, with repeated elements in source order.
// Callers run the result through the pruner before serialization.
func Convert(path string, log *slog.Logger) (*xchange.Document, error) {
	doc, err := bmecat.Load(path)
	if err != nil {
		return nil, err
	}
	return ConvertDocument(doc, log)
}

// ConvertDocument assembles the xChange document from an already parsed,
// namespace-stripped BMEcat tree.
func ConvertDocument(doc *etree.Document, log *slog.Logger) (*xchange.Document, error) {
	if log == nil {
		log = slog.Default()
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("BMEcat document has no root element")
	}

	b := &builder{
		log:     log,
		header:  sectionOf(root, "HEADER"),
		catalog: catalogOf(root),
	}
	if err := b.resolveLanguages(); err != nil {
		return nil, err
	}
	return b.build()
}

// sectionOf returns the first descendant with the given tag, or an empty
// placeholder element so that lookups resolve to absent instead of
// panicking. A catalog without a HEADER is tolerated here and rejected by
// schema validation downstream.
func sectionOf(root *etree.Element, tag string) *etree.Element {
	if el := bmecat.Find(root, tag); el != nil {
		return el
	}
	return etree.NewElement(tag)
}

// catalogOf locates the product data section. Full catalogs carry
// T_NEW_CATALOG; some dialects use T_NEW_PRODUCTDATA instead.
func catalogOf(root *etree.Element) *etree.Element {
	if el := bmecat.Find(root, "T_NEW_CATALOG"); el != nil {
		return el
	}
	return sectionOf(root, "T_NEW_PRODUCTDATA")
}

// resolveLanguages evaluates the default-language policy once per catalog:
// the header language flagged default, else the first declared language,
// else absent. It also records every declared language in order.
func (b *builder) resolveLanguages() error {
	if el := bmecat.FindAttr(b.header, "LANGUAGE", "default", "true"); el != nil {
		b.defaultCode = trimmedText(el)
	} else if code := bmecat.Text(b.header, "LANGUAGE"); code != "" {
		b.defaultCode = code
	}

	tag, err := ResolveLanguage(b.defaultCode)
	if err != nil {
		return err
	}
	b.defaultLang = tag

	for _, el := range bmecat.FindAll(b.header, "LANGUAGE") {
		b.langCodes = append(b.langCodes, trimmedText(el))
	}
	return nil
}

func (b *builder) build() (*xchange.Document, error) {
	doc := &xchange.Document{
		CatalogueId:      firstOf(bmecat.Text(b.header, "CATALOG_ID"), bmecat.Text(b.header, "CATALOG_NAME")),
		CatalogueVersion: bmecat.Text(b.header, "CATALOG_VERSION"),
		CatalogueType:    "FULL",
		GenerationDate:   bmecat.Text(b.header, "DATE"),
		NameDataCreator:  bmecat.Text(b.header, "GENERATOR_INFO"),
		EmailDataCreator: bmecat.Text(b.header, "EMAIL"),
		BuyerName:        bmecat.Text(b.header, "BUYER_NAME"),
		BuyerIdGln:       bmecat.TextAttr(b.header, "BUYER_ID", "type", "gln"),
		CatalogueValidityStart: firstOf(
			bmecat.Text(b.header, "DATE"),
			bmecat.Text(b.catalog, "UDX.EDXF.VALID_FROM"),
			fallbackValidityStart,
		),
		Country:      []string{bmecat.Text(b.header, "TERRITORY")},
		CurrencyCode: bmecat.Text(b.header, "CURRENCY"),
	}

	names, err := b.localize(bmecat.FindAll(b.header, "CATALOG_NAME"), "CatalogueName")
	if err != nil {
		return nil, err
	}
	doc.CatalogueName = names

	// Declared languages form the document language set; a catalog
	// declaring none falls back to the resolved default as sole entry.
	if len(b.langCodes) > 0 {
		for _, code := range b.langCodes {
			tag, err := ResolveLanguage(code)
			if err != nil {
				return nil, err
			}
			doc.Language = append(doc.Language, tag)
		}
	} else {
		doc.Language = []string{b.defaultLang}
	}

	supplier, err := b.buildSupplier()
	if err != nil {
		return nil, err
	}

	products := bmecat.Children(b.catalog, "PRODUCT")
	b.log.Info("processing products", "count", len(products))
	for i, el := range products {
		product, err := b.buildProduct(el)
		if err != nil {
			return nil, fmt.Errorf("product %d: %w", i+1, err)
		}
		supplier.Product = append(supplier.Product, *product)
		if (i+1)%1000 == 0 {
			b.log.Debug("processed products", "count", i+1)
		}
	}

	doc.Supplier = []xchange.Supplier{*supplier}
	return doc, nil
}

func (b *builder) buildSupplier() (*xchange.Supplier, error) {
	supplier := &xchange.Supplier{
		SupplierName:   bmecat.Text(b.header, "SUPPLIER_NAME"),
		SupplierIdGln:  bmecat.TextAttr(b.header, "SUPPLIER_ID", "type", "gln"),
		SupplierIdDuns: bmecat.TextAttr(b.header, "SUPPLIER_ID", "type", "duns"),
		SupplierVatNo:  bmecat.Text(b.header, "VAT_ID"),
	}

	for _, mime := range bmecat.FindAll(b.header, "MIME") {
		spec, err := b.localize(bmecat.Children(mime, "MIME_DESCR"), "AttachmentTypeSpecification")
		if err != nil {
			return nil, err
		}
		descr, err := b.localize(bmecat.Children(mime, "MIME_DESCR"), "AttachmentDescription")
		if err != nil {
			return nil, err
		}
		supplier.SupplierAttachments = append(supplier.SupplierAttachments, xchange.Attachment{
			AttachmentType: b.attachmentType(bmecat.Text(mime, "MIME_DESCR")),
			AttachmentDetails: []xchange.AttachmentDetail{{
				AttachmentLanguage:          []string{b.defaultLang},
				AttachmentTypeSpecification: spec,
				AttachmentUri:               bmecat.Text(mime, "MIME_SOURCE"),
				AttachmentDescription:       descr,
			}},
		})
	}
	return supplier, nil
}

// attachmentType maps a MIME code through the attachment table, applying
// the generic fallback for absent or unmapped codes.
func (b *builder) attachmentType(mimeCode string) string {
	if code, ok := tables.AttachmentType(mimeCode); ok {
		return code
	}
	return tables.AttachmentTypeFallback
}

// attachmentLanguage resolves the lang attribute of a MIME source element,
// falling back to the catalog default language.
func (b *builder) attachmentLanguage(source *etree.Element) (string, error) {
	if source != nil {
		if code := source.SelectAttrValue("lang", ""); code != "" {
			return ResolveLanguage(code)
		}
	}
	return b.defaultLang, nil
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func trimmedText(el *etree.Element) string {
	return strings.TrimSpace(el.Text())
}
