// Package validate checks converted catalogs against the xChange JSON
// schema. Validation is advisory: a failing document is still delivered,
// with the violations reported to the caller for logging.
package validate

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Validator wraps a compiled JSON schema.
type Validator struct {
	schema *jsonschema.Schema
}

// New compiles the schema at path. A schema that fails to compile is a
// startup error, not a per-request one.
func New(path string) (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	schema, err := compiler.Compile(path)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", path, err)
	}
	return &Validator{schema: schema}, nil
}

// Validate checks an encoded JSON document against the schema. It returns
// the schema violations, or an error if the document is not valid JSON.
func (v *Validator) Validate(encoded []byte) ([]string, error) {
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	err = v.schema.Validate(instance)
	if err == nil {
		return nil, nil
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return nil, err
	}

	var violations []string
	for _, cause := range flatten(verr) {
		violations = append(violations, cause.Error())
	}
	return violations, nil
}

// flatten walks the cause tree down to leaf violations.
func flatten(err *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(err.Causes) == 0 {
		return []*jsonschema.ValidationError{err}
	}
	var out []*jsonschema.ValidationError
	for _, cause := range err.Causes {
		out = append(out, flatten(cause)...)
	}
	return out
}
