// Package querysql compiles queryir queries to parameterized SQLite SQL.
//
// The compiler never executes anything. Values are always bound as "?"
// parameters, and every query ends with an "<from>.id ASC" tiebreaker so
// that result order is deterministic.
package querysql

import (
	"fmt"
	"sort"
	"strings"

	"github.com/roach88/descq/internal/ir"
	"github.com/roach88/descq/internal/queryir"
)

// SQLCompiler compiles QueryIR to parameterized SQL for SQLite.
type SQLCompiler struct{}

// NewSQLCompiler creates a new SQLCompiler.
func NewSQLCompiler() *SQLCompiler {
	return &SQLCompiler{}
}

// Compile converts a QueryIR query to parameterized SQL.
// Returns (sql, params, error) tuple; params follow placeholder order.
func (c *SQLCompiler) Compile(q queryir.Query) (string, []any, error) {
	if q == nil {
		return "", nil, fmt.Errorf("cannot compile nil query")
	}

	root, ok := leftmostSelect(q)
	if !ok {
		return "", nil, fmt.Errorf("unsupported query type: %T", q)
	}
	_, joined := asJoin(q)

	fromSQL, params, selects, err := c.compileFrom(q)
	if err != nil {
		return "", nil, err
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	if root.Distinct {
		b.WriteString("DISTINCT ")
	}
	b.WriteString(c.compileBindings(root, joined))
	b.WriteString(" FROM ")
	b.WriteString(fromSQL)

	var filters []queryir.Predicate
	for _, sel := range selects {
		if sel.Filter != nil {
			filters = append(filters, sel.Filter)
		}
	}
	if len(filters) > 0 {
		var where queryir.Predicate = queryir.And{Predicates: filters}
		if len(filters) == 1 {
			where = filters[0]
		}
		whereSQL, whereParams, err := c.compilePredicate(where)
		if err != nil {
			return "", nil, fmt.Errorf("compile filter: %w", err)
		}
		b.WriteString(" WHERE ")
		b.WriteString(whereSQL)
		params = append(params, whereParams...)
	}

	if len(root.GroupBy) > 0 {
		b.WriteString(" GROUP BY ")
		b.WriteString(strings.Join(root.GroupBy, ", "))
	}

	b.WriteString(" ORDER BY ")
	b.WriteString(c.compileOrderBy(root))

	return b.String(), params, nil
}

// compileFrom renders the FROM clause and collects every Select in the
// tree, left to right.
func (c *SQLCompiler) compileFrom(q queryir.Query) (string, []any, []queryir.Select, error) {
	if sel, ok := asSelect(q); ok {
		if sel.From == "" {
			return "", nil, nil, fmt.Errorf("select has no table")
		}
		return sel.From, nil, []queryir.Select{sel}, nil
	}

	j, ok := asJoin(q)
	if !ok {
		return "", nil, nil, fmt.Errorf("unsupported query type: %T", q)
	}

	leftSQL, params, selects, err := c.compileFrom(j.Left)
	if err != nil {
		return "", nil, nil, fmt.Errorf("compile join left: %w", err)
	}
	rightSQL, rightParams, rightSelects, err := c.compileFrom(j.Right)
	if err != nil {
		return "", nil, nil, fmt.Errorf("compile join right: %w", err)
	}
	if _, nested := asJoin(j.Right); nested {
		rightSQL = "(" + rightSQL + ")"
	}
	params = append(params, rightParams...)
	selects = append(selects, rightSelects...)

	onSQL := "1 = 1" // Cross join
	if j.On != nil {
		sql, onParams, err := c.compilePredicate(j.On)
		if err != nil {
			return "", nil, nil, fmt.Errorf("compile join ON: %w", err)
		}
		onSQL = sql
		params = append(params, onParams...)
	}

	return fmt.Sprintf("%s INNER JOIN %s ON %s", leftSQL, rightSQL, onSQL), params, selects, nil
}

// compileBindings converts bindings to the SELECT column list.
// Example: {"item_id": "itemId"} → "item_id AS itemId"
// Keys are sorted for deterministic output.
func (c *SQLCompiler) compileBindings(root queryir.Select, joined bool) string {
	if len(root.Bindings) == 0 {
		if joined {
			return root.From + ".*"
		}
		return "*"
	}

	keys := make([]string, 0, len(root.Bindings))
	for k := range root.Bindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, sourceField := range keys {
		boundVar := root.Bindings[sourceField]
		if sourceField == boundVar {
			parts = append(parts, sourceField)
		} else {
			parts = append(parts, fmt.Sprintf("%s AS %s", sourceField, boundVar))
		}
	}

	return strings.Join(parts, ", ")
}

// compileOrderBy renders the order keys followed by the stable tiebreaker.
func (c *SQLCompiler) compileOrderBy(root queryir.Select) string {
	tiebreaker := stableOrderKey(root)

	parts := make([]string, 0, len(root.OrderBy)+1)
	hasTiebreaker := false
	for _, key := range root.OrderBy {
		expr := key.Field
		if key.Aggregate != queryir.AggregateNone {
			expr = fmt.Sprintf("%s(%s)", key.Aggregate, key.Field)
		} else if key.Field == tiebreaker {
			hasTiebreaker = true
		}
		dir := "ASC"
		if key.Desc {
			dir = "DESC"
		}
		parts = append(parts, expr+" "+dir)
	}
	if !hasTiebreaker {
		parts = append(parts, tiebreaker+" ASC")
	}
	return strings.Join(parts, ", ")
}

// stableOrderKey returns the primary key column every query is ordered by last.
func stableOrderKey(root queryir.Select) string {
	return root.From + ".id"
}

// compilePredicate compiles a predicate to a WHERE fragment.
// Values are NEVER interpolated - always "?" placeholders.
func (c *SQLCompiler) compilePredicate(p queryir.Predicate) (string, []any, error) {
	if p == nil {
		return "1 = 1", nil, nil
	}

	switch pred := p.(type) {
	case queryir.Equals:
		return c.compileEquals(pred)
	case *queryir.Equals:
		return c.compileEquals(*pred)
	case queryir.FieldEquals:
		return fmt.Sprintf("%s = %s", pred.Left, pred.Right), nil, nil
	case *queryir.FieldEquals:
		return fmt.Sprintf("%s = %s", pred.Left, pred.Right), nil, nil
	case queryir.Like:
		return compileLike(pred), []any{pred.Pattern}, nil
	case *queryir.Like:
		return compileLike(*pred), []any{pred.Pattern}, nil
	case queryir.NotNull:
		return fmt.Sprintf("%s IS NOT NULL", pred.Field), nil, nil
	case *queryir.NotNull:
		return fmt.Sprintf("%s IS NOT NULL", pred.Field), nil, nil
	case queryir.DateEquals:
		return fmt.Sprintf("date(%s) = date(?)", pred.Field), []any{pred.Value}, nil
	case *queryir.DateEquals:
		return fmt.Sprintf("date(%s) = date(?)", pred.Field), []any{pred.Value}, nil
	case queryir.And:
		return c.compileJunction(pred.Predicates, " AND ", "1 = 1")
	case *queryir.And:
		return c.compileJunction(pred.Predicates, " AND ", "1 = 1")
	case queryir.Or:
		return c.compileJunction(pred.Predicates, " OR ", "1 = 0")
	case *queryir.Or:
		return c.compileJunction(pred.Predicates, " OR ", "1 = 0")
	default:
		return "", nil, fmt.Errorf("unsupported predicate type: %T", p)
	}
}

func compileLike(like queryir.Like) string {
	if like.Escape == 0 {
		return fmt.Sprintf("%s LIKE ?", like.Field)
	}
	escape := strings.ReplaceAll(string(like.Escape), "'", "''")
	return fmt.Sprintf("%s LIKE ? ESCAPE '%s'", like.Field, escape)
}

// compileEquals compiles an Equals predicate. A null value compiles to
// IS NULL since "= NULL" never matches.
func (c *SQLCompiler) compileEquals(eq queryir.Equals) (string, []any, error) {
	if _, isNull := eq.Value.(ir.IRNull); isNull {
		return fmt.Sprintf("%s IS NULL", eq.Field), nil, nil
	}

	param, err := ir.ToParam(eq.Value)
	if err != nil {
		return "", nil, fmt.Errorf("convert value: %w", err)
	}

	return fmt.Sprintf("%s = ?", eq.Field), []any{param}, nil
}

// compileJunction joins sub-predicates with sep. Nested junctions are
// parenthesized; an empty junction compiles to empty.
func (c *SQLCompiler) compileJunction(preds []queryir.Predicate, sep, empty string) (string, []any, error) {
	if len(preds) == 0 {
		return empty, nil, nil
	}

	parts := make([]string, 0, len(preds))
	var allParams []any
	for _, pred := range preds {
		sql, params, err := c.compilePredicate(pred)
		if err != nil {
			return "", nil, err
		}
		if isJunction(pred) && len(preds) > 1 {
			sql = "(" + sql + ")"
		}
		parts = append(parts, sql)
		allParams = append(allParams, params...)
	}

	return strings.Join(parts, sep), allParams, nil
}

func isJunction(p queryir.Predicate) bool {
	switch p.(type) {
	case queryir.And, *queryir.And, queryir.Or, *queryir.Or:
		return true
	default:
		return false
	}
}

func asSelect(q queryir.Query) (queryir.Select, bool) {
	switch query := q.(type) {
	case queryir.Select:
		return query, true
	case *queryir.Select:
		if query == nil {
			return queryir.Select{}, false
		}
		return *query, true
	default:
		return queryir.Select{}, false
	}
}

func asJoin(q queryir.Query) (queryir.Join, bool) {
	switch query := q.(type) {
	case queryir.Join:
		return query, true
	case *queryir.Join:
		if query == nil {
			return queryir.Join{}, false
		}
		return *query, true
	default:
		return queryir.Join{}, false
	}
}

// leftmostSelect returns the Select that owns bindings and ordering.
func leftmostSelect(q queryir.Query) (queryir.Select, bool) {
	if sel, ok := asSelect(q); ok {
		return sel, true
	}
	if j, ok := asJoin(q); ok {
		return leftmostSelect(j.Left)
	}
	return queryir.Select{}, false
}
