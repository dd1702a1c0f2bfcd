// Package descriptor resolves a switch descriptor into a query directive.
//
// A Builder starts from an origin entity (the type the query is issued
// against) and is mutated by a single SetParameters call. Build returns an
// immutable Directive that the query translator consumes.
//
// SEGMENT DISPATCH:
//
//	1 segment   "title"             property
//	2 segments  "ae-title"          switches + property
//	            "Comment-author"    entity + property
//	3 segments  "r-Post-createdAt"  switches (optional) + entity + property
//
// Any other count is rejected with a SegmentCountError unless the Builder
// was created WithLenientSegments, in which case the call is a no-op.
//
// DERIVED JOIN:
//
// After every resolution the join flag is set when the entity differs from
// the origin's table name, or when ordering by count. Join never goes back
// to false.
//
// ORDER-BY DEFAULTS:
//
// Entering order-by mode seeds property "id" and action [property] when
// they are unset. Build applies the same defaults so a Directive in
// order-by mode always has both.
package descriptor
