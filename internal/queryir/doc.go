// Package queryir provides the abstract query intermediate representation
// (IR) that resolved descriptor directives are translated into.
//
// QueryIR is the boundary between directive planning and backend query
// engines:
//
//	[descriptor] → [Directive] → [Query IR] → [SQL Backend]
//
// SEALED INTERFACES:
//
// Query and Predicate are sealed interfaces using the marker method pattern.
// Only types in this package can implement them, so backends can switch
// exhaustively:
//
//	switch q := query.(type) {
//	case Select:
//	    // Handle select
//	case Join:
//	    // Handle join
//	}
//
// DIALECT-NEUTRAL FRAGMENT:
//
// Select, inner Join, Equals, FieldEquals, Like, NotNull, And and explicit
// bindings translate to any relational backend. OR predicates, aggregate
// ordering, date comparison and SELECT * are accepted but reported by
// Validate, since their translation depends on the dialect.
//
// All literal values in predicates are ir.IRValue types (no floats).
package queryir
