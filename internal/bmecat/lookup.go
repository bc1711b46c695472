package bmecat

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// langAttr is the attribute BMEcat producers use to tag element language.
const langAttr = "lang"

// matchFunc is an extra predicate a descendant must satisfy to be selected.
type matchFunc func(*etree.Element) bool

// Find returns the first descendant of scope with the given tag, in
// document order, or nil. The scope element itself is never matched.
func Find(scope *etree.Element, tag string) *etree.Element {
	return findMatch(scope, tag, nil)
}

// FindAttr returns the first descendant of scope with the given tag that
// carries attribute attr equal to val, or nil.
func FindAttr(scope *etree.Element, tag, attr, val string) *etree.Element {
	return findMatch(scope, tag, hasAttr(attr, val))
}

// FindAll returns every descendant of scope with the given tag, in
// document order.
func FindAll(scope *etree.Element, tag string) []*etree.Element {
	var out []*etree.Element
	collect(scope, tag, &out)
	return out
}

// Children returns the direct child elements of scope with the given tag,
// in document order.
func Children(scope *etree.Element, tag string) []*etree.Element {
	var out []*etree.Element
	for _, child := range scope.ChildElements() {
		if child.Tag == tag {
			out = append(out, child)
		}
	}
	return out
}

// Text returns the trimmed text of the first descendant with the given
// tag, or "" if no such element exists or its text starts with the "-"
// not-provided sentinel.
func Text(scope *etree.Element, tag string) string {
	s, _ := lookup(scope, tag, nil)
	return s
}

// TextAttr is Text restricted to elements carrying attr=val.
func TextAttr(scope *etree.Element, tag, attr, val string) string {
	s, _ := lookup(scope, tag, hasAttr(attr, val))
	return s
}

// TextNoLang is Text restricted to elements carrying no lang attribute.
func TextNoLang(scope *etree.Element, tag string) string {
	s, _ := lookup(scope, tag, noLang)
	return s
}

// Bool returns the boolean value of the first descendant with the given
// tag: true iff its lowercased text equals "true". Returns nil when the
// element is absent or carries the not-provided sentinel.
func Bool(scope *etree.Element, tag string) *bool {
	return coerceBool(lookup(scope, tag, nil))
}

// BoolAttr is Bool restricted to elements carrying attr=val.
func BoolAttr(scope *etree.Element, tag, attr, val string) *bool {
	return coerceBool(lookup(scope, tag, hasAttr(attr, val)))
}

// Int returns the integer value of the first descendant with the given
// tag. Absent elements, empty text, and the not-provided sentinel yield
// (nil, nil). Non-numeric text is a hard error: the field was provided but
// cannot be coerced, and the conversion must not silently continue.
func Int(scope *etree.Element, tag string) (*int, error) {
	s, ok := lookup(scope, tag, nil)
	return coerceInt(tag, s, ok)
}

// IntAttr is Int restricted to elements carrying attr=val.
func IntAttr(scope *etree.Element, tag, attr, val string) (*int, error) {
	s, ok := lookup(scope, tag, hasAttr(attr, val))
	return coerceInt(tag, s, ok)
}

// lookup finds the first matching descendant and extracts its trimmed
// text. The second result reports whether a usable value was found; text
// starting with "-" counts as not provided.
func lookup(scope *etree.Element, tag string, match matchFunc) (string, bool) {
	el := findMatch(scope, tag, match)
	if el == nil {
		return "", false
	}
	s := strings.TrimSpace(el.Text())
	if strings.HasPrefix(s, "-") {
		return "", false
	}
	return s, true
}

func coerceBool(s string, ok bool) *bool {
	if !ok {
		return nil
	}
	b := strings.ToLower(s) == "true"
	return &b
}

func coerceInt(tag, s string, ok bool) (*int, error) {
	if !ok || s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("element %s: non-numeric value %q", tag, s)
	}
	return &n, nil
}

// findMatch walks the descendants of scope depth-first in document order
// and returns the first element whose tag and predicate match.
func findMatch(scope *etree.Element, tag string, match matchFunc) *etree.Element {
	for _, child := range scope.ChildElements() {
		if child.Tag == tag && (match == nil || match(child)) {
			return child
		}
		if found := findMatch(child, tag, match); found != nil {
			return found
		}
	}
	return nil
}

func collect(scope *etree.Element, tag string, out *[]*etree.Element) {
	for _, child := range scope.ChildElements() {
		if child.Tag == tag {
			*out = append(*out, child)
		}
		collect(child, tag, out)
	}
}

func hasAttr(attr, val string) matchFunc {
	return func(el *etree.Element) bool {
		a := el.SelectAttr(attr)
		return a != nil && a.Value == val
	}
}

func noLang(el *etree.Element) bool {
	return el.SelectAttr(langAttr) == nil
}
