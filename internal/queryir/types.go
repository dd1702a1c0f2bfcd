package queryir

import "github.com/roach88/descq/internal/ir"

// Query is an abstract query.
//
// This is a sealed interface - only Select and Join implement it.
type Query interface {
	queryNode() // Marker method - seals interface to this package
}

// Predicate is a filter condition.
//
// This is a sealed interface - only types in this package implement it.
type Predicate interface {
	predicateNode() // Marker method - seals interface to this package
}

// Select reads rows from a table.
//
// Semantics:
//
//	SELECT [DISTINCT] <bindings> FROM <from> WHERE <filter>
//	GROUP BY <group_by> ORDER BY <order_by>
//
// Field names in Filter, GroupBy and OrderBy are qualified
// ("table.column") whenever the Select takes part in a Join.
type Select struct {
	From     string            // Table name (e.g., "Post")
	Filter   Predicate         // WHERE conditions (nil = no filter)
	Bindings map[string]string // source_field → output name (empty = SELECT <from>.*)
	Distinct bool
	GroupBy  []string
	OrderBy  []OrderKey
}

func (Select) queryNode() {}

// Join is an inner join of two queries.
//
// Semantics:
//
//	<left> INNER JOIN <right> ON <on>
//
// Bindings, grouping and ordering come from the leftmost Select; filters of
// every Select in the tree apply.
type Join struct {
	Left  Query     // Left query (Select or Join)
	Right Query     // Right query (Select or Join)
	On    Predicate // Join condition
}

func (Join) queryNode() {}

// Aggregate selects an aggregate function for an order key.
type Aggregate int

const (
	AggregateNone Aggregate = iota
	AggregateCount
	AggregateSum
)

func (a Aggregate) String() string {
	switch a {
	case AggregateCount:
		return "COUNT"
	case AggregateSum:
		return "SUM"
	default:
		return ""
	}
}

// OrderKey is one ORDER BY term.
type OrderKey struct {
	Field     string
	Aggregate Aggregate
	Desc      bool
}

// Equals is field = literal.
type Equals struct {
	Field string
	Value ir.IRValue
}

func (Equals) predicateNode() {}

// FieldEquals is left_field = right_field, used for join conditions.
type FieldEquals struct {
	Left  string
	Right string
}

func (FieldEquals) predicateNode() {}

// Like is a pattern match: field LIKE pattern. A non-zero Escape is the
// character escaping % and _ in Pattern.
type Like struct {
	Field   string
	Pattern string
	Escape  rune
}

func (Like) predicateNode() {}

// NotNull is field IS NOT NULL.
type NotNull struct {
	Field string
}

func (NotNull) predicateNode() {}

// DateEquals compares the calendar date of a date-time field.
type DateEquals struct {
	Field string
	Value string // ISO-8601 date or date-time
}

func (DateEquals) predicateNode() {}

// And is a conjunction (empty = always true).
type And struct {
	Predicates []Predicate
}

func (And) predicateNode() {}

// Or is a disjunction (empty = always false).
type Or struct {
	Predicates []Predicate
}

func (Or) predicateNode() {}
