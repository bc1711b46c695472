// Package bmecat provides low-level access to BMEcat catalog XML.
//
// BMEcat files in the wild are inconsistent about namespaces: some declare
// the official namespace, some a vendor one, many none at all. The package
// therefore normalizes every element to its bare local name on load, so all
// downstream lookups use plain tag names.
//
// # Lookups
//
// Field extraction follows a "first match wins" convention over a deep
// descendant search rooted at a context element, mirroring how catalog
// consumers address fields (the same field may sit at different depths
// depending on the producing system). Two families exist:
//
//   - [Text], [Bool], [Int]: first descendant with the given tag.
//   - [TextAttr], [BoolAttr], [IntAttr], [TextNoLang]: additionally require
//     an attribute=value match, or the absence of a lang attribute.
//
// All lookups share the sentinel-null convention: a trimmed text beginning
// with "-" means "not provided" and is treated as absent, never as an error.
// Only integer coercion can fail, and it fails loudly.
package bmecat
