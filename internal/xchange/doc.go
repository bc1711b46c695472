// Package xchange defines the ETIM xChange catalog document model.
//
// The model mirrors the xChange JSON schema as explicit typed records so
// that absent-vs-empty distinctions are type-checked instead of living in
// dynamically keyed maps. Booleans and integers are pointer-typed: nil is
// absent, while false and 0 are real values the schema keeps. Strings
// collapse absent and empty, since the pruner removes empty strings either
// way.
//
// A document is assembled once, never mutated afterwards, and handed to
// [Prune] (via [Tree]) before serialization.
package xchange
