package queryir

import (
	"fmt"

	"github.com/roach88/descq/internal/ir"
)

// ValidationResult reports dialect-specific features used by a query.
type ValidationResult struct {
	// IsNeutral is true when the query uses only the dialect-neutral fragment.
	IsNeutral bool

	// Warnings lists dialect-specific features. Empty when IsNeutral is true.
	Warnings []string
}

// Validate checks a query against the dialect-neutral fragment.
//
// Non-neutral queries are still compiled by the SQL backend; the warnings
// tell the caller which parts would need attention on another backend.
//
// Validate is a pure function with no side effects.
func Validate(query Query) ValidationResult {
	v := &validator{
		warnings: []string{},
	}
	v.validateQuery(query)

	return ValidationResult{
		IsNeutral: len(v.warnings) == 0,
		Warnings:  v.warnings,
	}
}

// validator accumulates warnings during traversal.
type validator struct {
	warnings []string
}

func (v *validator) addWarning(format string, args ...any) {
	v.warnings = append(v.warnings, fmt.Sprintf(format, args...))
}

func (v *validator) validateQuery(q Query) {
	if q == nil {
		v.addWarning("nil query")
		return
	}

	switch query := q.(type) {
	case Select:
		v.validateSelect(query)
	case *Select:
		v.validateSelect(*query)
	case Join:
		v.validateJoin(query)
	case *Join:
		v.validateJoin(*query)
	default:
		v.addWarning("Unknown query type: %T", q)
	}
}

func (v *validator) validateSelect(sel Select) {
	if len(sel.Bindings) == 0 {
		v.addWarning("Empty bindings on %s (SELECT *) - explicit field selection is dialect-neutral", sel.From)
	}
	for _, key := range sel.OrderBy {
		if key.Aggregate != AggregateNone {
			v.addWarning("Order by %s(%s) requires GROUP BY support", key.Aggregate, key.Field)
		}
	}
	if sel.Filter != nil {
		v.validatePredicate(sel.Filter)
	}
}

func (v *validator) validateJoin(join Join) {
	v.validateQuery(join.Left)
	v.validateQuery(join.Right)

	if join.On == nil {
		v.addWarning("Join without ON condition is a cross join")
		return
	}
	v.validatePredicate(join.On)
}

func (v *validator) validatePredicate(p Predicate) {
	if p == nil {
		return
	}

	switch pred := p.(type) {
	case Equals:
		v.validateEquals(pred)
	case *Equals:
		v.validateEquals(*pred)
	case FieldEquals, *FieldEquals, Like, *Like, NotNull, *NotNull:
		// Neutral.
	case DateEquals:
		v.addWarning("Date comparison on '%s' uses a dialect-specific date function", pred.Field)
	case *DateEquals:
		v.addWarning("Date comparison on '%s' uses a dialect-specific date function", pred.Field)
	case And:
		v.validateAll(pred.Predicates)
	case *And:
		v.validateAll(pred.Predicates)
	case Or:
		v.addWarning("OR predicate - not every backend supports disjunction")
		v.validateAll(pred.Predicates)
	case *Or:
		v.addWarning("OR predicate - not every backend supports disjunction")
		v.validateAll(pred.Predicates)
	default:
		v.addWarning("Unknown predicate type: %T", p)
	}
}

func (v *validator) validateEquals(eq Equals) {
	if _, isNull := eq.Value.(ir.IRNull); isNull {
		v.addWarning("Field '%s' compared to NULL - use NotNull or an explicit value", eq.Field)
	}
}

func (v *validator) validateAll(preds []Predicate) {
	for _, sub := range preds {
		v.validatePredicate(sub)
	}
}
