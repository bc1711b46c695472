// Package convert transforms BMEcat catalog documents into the ETIM
// xChange JSON structure.
//
// This package is the heart of the converter, containing all domain logic
// independent of any UI or transport layer. It can be used by web
// handlers, CLI tools, or tests without modification.
//
// # Architecture
//
// A conversion is one synchronous pass over an in-memory catalog tree:
//
//  1. Client calls [Convert] with a file path (or [ConvertDocument] with a
//     parsed tree).
//  2. The catalog's default and declared languages are resolved once and
//     mapped to region-tagged language codes.
//  3. The supplier block is built from the header, then products are
//     walked in source order: identification, per-language descriptions,
//     relations, legislation, attachments, ETIM classifications, and the
//     trade item with ordering, pricing, and packaging.
//  4. The caller renders the typed document through the xchange package,
//     which prunes empty values before encoding.
//
// # Value semantics
//
// Missing fields are never errors; they become absent values that pruning
// removes. Three things are fatal: XML that does not parse, a language
// code the resolver table does not know, and non-numeric text where an
// integer is required.
//
// # Code tables
//
// Attachment types, relation types, and product statuses are mapped
// through the static tables in the tables subpackage. Unmapped inputs
// resolve to a documented fallback or stay absent; they never fail a
// conversion.
//
// # Concurrency
//
// The conversion itself is single-threaded and CPU-bound. [Limiter]
// bounds the number of simultaneous conversions a process runs, since
// each one holds the full source and output trees in memory.
package convert
