package convert

import (
	"github.com/beevik/etree"

	"github.com/etim-tools/bmecat-xchange/internal/xchange"
)

// localize builds one {language, value} record per element, preserving
// source order. The language is the element's own lang attribute resolved
// through the language table, or the catalog default language when the
// element carries no lang attribute. field names the value member in the
// output ("CatalogueName", "BrandSeries", ...).
func (b *builder) localize(elements []*etree.Element, field string) ([]xchange.LocalizedValue, error) {
	var out []xchange.LocalizedValue
	for _, el := range elements {
		lang := b.defaultLang
		if code := el.SelectAttrValue("lang", ""); code != "" {
			resolved, err := ResolveLanguage(code)
			if err != nil {
				return nil, err
			}
			lang = resolved
		}
		out = append(out, xchange.Localize(field, lang, el.Text()))
	}
	return out, nil
}
