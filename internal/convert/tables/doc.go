// Package tables holds the static BMEcat-to-xChange code mapping tables:
// attachment types, product relation types, and product status.
//
// All tables are immutable package-level data initialized at startup and
// safe for unsynchronized concurrent reads. Lookups are case-insensitive
// on trimmed keys and return ("", false) for unmapped input; the fallback
// policy (generic attachment type, OTHER relation, absent status) belongs
// to the call sites, not the tables.
package tables
