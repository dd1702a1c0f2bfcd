package plan

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"github.com/roach88/descq/internal/descriptor"
	"github.com/roach88/descq/internal/grammar"
	"github.com/roach88/descq/internal/ir"
	"github.com/roach88/descq/internal/queryir"
)

// identifierPattern matches the table and column names Plan will emit.
// Names end up in the SQL text, so anything else is rejected.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// likeEscape escapes wildcards in like patterns.
const likeEscape = '\\'

// Criterion pairs a resolved directive with its request value.
type Criterion struct {
	Directive descriptor.Directive
	Value     string
}

// Planner translates criteria into queryir queries.
type Planner struct {
	names  Names
	logger *slog.Logger
}

// NewPlanner creates a Planner. A nil names uses IdentityNames.
func NewPlanner(names Names, logger *slog.Logger) *Planner {
	if names == nil {
		names = IdentityNames{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Planner{names: names, logger: logger}
}

// Plan builds one query against origin from the criteria, in order.
func (p *Planner) Plan(origin string, criteria []Criterion) (queryir.Query, error) {
	if len(criteria) == 0 {
		return nil, ErrNoCriteria
	}

	originTable := p.names.Table(origin)
	if err := checkIdentifier(originTable); err != nil {
		return nil, fmt.Errorf("origin: %w", err)
	}
	root := queryir.Select{From: originTable}
	var joined []string

	for i, c := range criteria {
		d := c.Directive
		if d.Property() == "" {
			return nil, &CriterionError{Index: i, Descriptor: d.RawParameters(), Err: ErrNoProperty}
		}

		entityTable := p.names.Table(d.Entity())
		column := p.names.Column(d.Entity(), d.Property())
		for _, name := range []string{entityTable, column} {
			if err := checkIdentifier(name); err != nil {
				return nil, &CriterionError{Index: i, Descriptor: d.RawParameters(), Err: err}
			}
		}
		if entityTable != originTable {
			if !d.Join() {
				return nil, &CriterionError{Index: i, Descriptor: d.RawParameters(), Err: ErrUnjoinedEntity}
			}
			if !slices.Contains(joined, entityTable) {
				joined = append(joined, entityTable)
			}
		}

		field := entityTable + "." + column
		action := d.Action()

		switch d.Mode() {
		case descriptor.ModeSearch:
			pred, err := searchPredicate(field, action, c.Value)
			if err != nil {
				return nil, &CriterionError{Index: i, Descriptor: d.RawParameters(), Err: err}
			}
			if action.Has(grammar.Count) || action.Has(grammar.Sum) {
				p.logger.Debug("aggregate action ignored in search mode",
					"descriptor", d.RawParameters(),
					"action", action.String())
			}
			if action.Has(grammar.Distinct) {
				root.Distinct = true
			}
			root.Filter = combine(root.Filter, pred, d.Operator())

		case descriptor.ModeOrderBy:
			key := orderKey(field, action, c.Value)
			if key.Aggregate != queryir.AggregateNone {
				groupKey := originTable + ".id"
				if !slices.Contains(root.GroupBy, groupKey) {
					root.GroupBy = append(root.GroupBy, groupKey)
				}
			}
			root.OrderBy = append(root.OrderBy, key)

		default:
			return nil, &CriterionError{Index: i, Descriptor: d.RawParameters(), Err: fmt.Errorf("unsupported mode %s", d.Mode())}
		}
	}

	var q queryir.Query = root
	for _, table := range joined {
		left, right := p.names.JoinKey(originTable, table)
		q = queryir.Join{
			Left:  q,
			Right: queryir.Select{From: table},
			On:    queryir.FieldEquals{Left: left, Right: right},
		}
	}

	return q, nil
}

func searchPredicate(field string, action grammar.Action, value string) (queryir.Predicate, error) {
	switch {
	case action.Has(grammar.NotNull):
		return queryir.NotNull{Field: field}, nil
	case action.Has(grammar.Boolean):
		b, err := parseBool(value)
		if err != nil {
			return nil, err
		}
		return queryir.Equals{Field: field, Value: ir.IRBool(b)}, nil
	case action.Has(grammar.ExactMatch):
		return queryir.Equals{Field: field, Value: ir.IRString(value)}, nil
	case action.Has(grammar.DateTime):
		return queryir.DateEquals{Field: field, Value: value}, nil
	default:
		return queryir.Like{Field: field, Pattern: "%" + escapeLike(value) + "%", Escape: likeEscape}, nil
	}
}

var likeReplacer = strings.NewReplacer(
	string(likeEscape), string(likeEscape)+string(likeEscape),
	"%", string(likeEscape)+"%",
	"_", string(likeEscape)+"_",
)

// escapeLike makes value match literally inside a like pattern.
func escapeLike(value string) string {
	return likeReplacer.Replace(value)
}

func checkIdentifier(name string) error {
	if !identifierPattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
	}
	return nil
}

func parseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "t", "true", "y", "yes", "on":
		return true, nil
	case "0", "f", "false", "n", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidBoolean, value)
	}
}

func orderKey(field string, action grammar.Action, value string) queryir.OrderKey {
	key := queryir.OrderKey{
		Field: field,
		Desc:  strings.EqualFold(strings.TrimSpace(value), "desc"),
	}
	switch {
	case action.Has(grammar.Count):
		key.Aggregate = queryir.AggregateCount
	case action.Has(grammar.Sum):
		key.Aggregate = queryir.AggregateSum
	}
	return key
}

// combine folds pred into acc with op, flattening same-operator chains.
func combine(acc, pred queryir.Predicate, op descriptor.Operator) queryir.Predicate {
	if acc == nil {
		return pred
	}
	if op == descriptor.OperatorOr {
		if or, ok := acc.(queryir.Or); ok {
			return queryir.Or{Predicates: append(slices.Clone(or.Predicates), pred)}
		}
		return queryir.Or{Predicates: []queryir.Predicate{acc, pred}}
	}
	if and, ok := acc.(queryir.And); ok {
		return queryir.And{Predicates: append(slices.Clone(and.Predicates), pred)}
	}
	return queryir.And{Predicates: []queryir.Predicate{acc, pred}}
}
