// Package karyajson is a minimal JSON codec built around a generic value
// tree.
//
// It provides:
//
//   - Value: a closed sum type covering every JSON value, preserving the
//     integer/float distinction that untyped any-trees lose
//   - Parse/ParseBytes: a single-pass recursive-descent parser with
//     configurable nesting-depth enforcement and code-tagged errors
//   - Marshal/MarshalString: a total, compact structural printer
//   - FromAny/ToAny: bridges between Value trees and the untyped trees
//     produced by encoding/json and friends
//
// Design policy:
//   - Keep the public API in the root package; auxiliary decode drivers
//     live under gojson/ (goccy-backed) and yaml/ (YAML ingestion).
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	v, err := karyajson.Parse(`{"id":1,"tags":["x","y"]}`)
//	out := karyajson.Marshal(v)
//
// Each parse call owns its own cursor state; Value trees are immutable
// after construction and safe to share read-only across goroutines.
package karyajson
