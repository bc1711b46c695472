package bmecat

import (
	"fmt"

	"github.com/beevik/etree"
)

// Load parses the BMEcat XML file at path and strips namespace prefixes
// from every element, so that lookups can use bare tag names.
// A file that fails to parse is a fatal error for the whole conversion.
func Load(path string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("parse BMEcat %s: %w", path, err)
	}
	StripNamespaces(doc)
	return doc, nil
}

// StripNamespaces removes the namespace prefix from every element in the
// document, in place. Comments and processing instructions are untouched.
// Documents without namespaces pass through unchanged.
func StripNamespaces(doc *etree.Document) {
	if root := doc.Root(); root != nil {
		stripNamespaces(root)
	}
}

func stripNamespaces(el *etree.Element) {
	el.Space = ""
	for _, child := range el.ChildElements() {
		stripNamespaces(child)
	}
}
