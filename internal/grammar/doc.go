// Package grammar implements the switch-descriptor grammar.
//
// A descriptor is a dash-delimited string such as "ae-title" or
// "r-Post-createdAt". Each segment is either a switch group (every letter a
// known switch) or a literal entity/property name.
//
// GRAMMAR:
//
//	descriptor   ::= segment ('-' segment)*
//	segment      ::= <any characters>
//	switch-group ::= one or more letters, all in {a,b,c,d,e,j,l,n,o,p,r,s,t,u}
//
// RESOLUTION:
//
// Resolve classifies a segment into one of two variants:
//   - Switches: every letter resolved, tokens in input order, duplicates kept
//   - Literal: at least one letter unknown, segment is a name
//
// A single-letter segment that collides with a switch letter is always a
// switch group. "Post" is a switch group too (p, o, s, t). Callers that need
// such names must use the three-segment form.
//
// MODE PRIORITY:
//
// At most one mode token governs a group, picked top-down from
// [AndFilter, OrFilter, OrderBy]. Every other token belongs to the action.
//
// This package is pure: no I/O, no shared mutable state.
package grammar
