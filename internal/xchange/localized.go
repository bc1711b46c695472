package xchange

import "encoding/json"

// LocalizedValue is one entry of a multilingual list. The xChange schema
// names the value field after its context ("CatalogueName", "BrandSeries",
// "AttachmentDescription", ...), so the field name travels with the value
// and marshalling produces {"Language": ..., <Field>: ...}.
type LocalizedValue struct {
	Language string
	Field    string
	Value    string
}

// Localize builds a LocalizedValue for the given schema field name.
func Localize(field, language, value string) LocalizedValue {
	return LocalizedValue{Language: language, Field: field, Value: value}
}

// MarshalJSON renders the entry with its context-specific field name.
// Empty members are emitted as-is; the pruner removes them later.
func (v LocalizedValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{
		"Language": v.Language,
		v.Field:    v.Value,
	})
}
