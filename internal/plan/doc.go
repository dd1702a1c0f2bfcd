// Package plan translates resolved directives into query IR.
//
// A request carries one criterion per descriptor, each with the value the
// caller supplied for it (?ae-title=Go&rc-Comment-id=desc). Plan folds the
// criteria, in order, into a single query against the origin table:
//
//	search mode    one predicate per criterion, combined with the
//	               directive's operator (and/or)
//	order-by mode  one ORDER BY key per criterion; count and sum order by
//	               the aggregate and group by the origin id
//	join           one inner join per foreign entity, first use wins
//
// Search predicates by action, first match wins:
//
//	notNull     field IS NOT NULL (value ignored)
//	boolean     field = <bool>
//	exactMatch  field = value
//	dateTime    date(field) = date(value)
//	otherwise   field LIKE %value%   (like, simpleArray, no action)
//
// Like values are escaped with \ so % and _ in a value match literally.
//
// A join is added only for an entity whose table differs from the origin
// table. Ordering by the count of an origin property (rc-Post-comments)
// sets the directive's join flag, but the aggregate runs over the origin
// rows grouped by id and no join is planned.
//
// Names maps entities and properties to storage identifiers. IdentityNames
// uses them unchanged; real callers supply their own mapping. Every table
// and column name must be a plain identifier ([A-Za-z_][A-Za-z0-9_]*), since
// names are written into the SQL text while values are bound.
package plan
