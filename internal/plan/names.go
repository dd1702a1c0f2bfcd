package plan

import (
	"unicode"
	"unicode/utf8"

	"github.com/roach88/descq/internal/descriptor"
)

// Names maps directive identifiers to storage identifiers.
type Names interface {
	// Table returns the table for an entity.
	Table(entity string) string

	// Column returns the column for an entity property.
	Column(entity, property string) string

	// JoinKey returns the qualified columns joining originTable to
	// entityTable.
	JoinKey(originTable, entityTable string) (left, right string)
}

// IdentityNames uses entity and property names as storage names and joins
// on <origin>.<entity>_id = <entity>.id, the entity lower-cased at its
// first letter.
type IdentityNames struct{}

func (IdentityNames) Table(entity string) string { return entity }

func (IdentityNames) Column(_, property string) string { return property }

func (IdentityNames) JoinKey(originTable, entityTable string) (string, string) {
	return originTable + "." + lowerFirst(entityTable) + "_id", entityTable + ".id"
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// TableNames derives table names with a descriptor.TableNamer and
// otherwise behaves like IdentityNames. Use the namer the directives were
// parsed with so that the join check agrees with the planned tables.
type TableNames struct {
	Namer descriptor.TableNamer
}

func (n TableNames) Table(entity string) string {
	if n.Namer == nil {
		return entity
	}
	return n.Namer(entity)
}

func (TableNames) Column(_, property string) string { return property }

func (TableNames) JoinKey(originTable, entityTable string) (string, string) {
	return IdentityNames{}.JoinKey(originTable, entityTable)
}
