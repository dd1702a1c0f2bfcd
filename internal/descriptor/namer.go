package descriptor

import "strings"

// TableNamer derives the table name implied by an entity identifier.
// The join rule compares the resolved entity against the origin's table
// name, so the namer decides which entity names count as "the same table".
type TableNamer func(entity string) string

// ShortName strips any namespace qualifier ("App\Entity\Post",
// "app/entity/Post", "app.entity.Post" all yield "Post").
func ShortName(entity string) string {
	if i := strings.LastIndexAny(entity, `\/.`); i >= 0 {
		return entity[i+1:]
	}
	return entity
}

// IdentityName returns the entity unchanged.
func IdentityName(entity string) string {
	return entity
}

// NamerByName returns a TableNamer by configuration name.
func NamerByName(name string) (TableNamer, bool) {
	switch name {
	case "", "short":
		return ShortName, true
	case "identity":
		return IdentityName, true
	default:
		return nil, false
	}
}
