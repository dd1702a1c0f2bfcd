// Package ir provides the constrained literal values used by query IR
// predicates and the canonical JSON used for golden snapshots.
//
// This package imports nothing internal. Key constraints:
//   - NO float types; numbers are int64
//   - Object keys serialize in RFC 8785 order (UTF-16 code units)
//   - Strings are NFC normalized at the serialization boundary
package ir
