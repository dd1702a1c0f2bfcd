package descriptor

import (
	"log/slog"
	"slices"

	"github.com/roach88/descq/internal/grammar"
)

// Builder accumulates a directive from an origin entity and one descriptor.
//
// A Builder is not safe for concurrent mutation. Build the Directive and
// share that instead.
type Builder struct {
	origin   string
	table    string
	entity   string
	property string
	mode     Mode
	operator Operator
	join     bool
	action   grammar.Action
	raw      string

	lenient bool
	logger  *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithTableNamer sets the function deriving the origin's table name.
// Defaults to ShortName.
func WithTableNamer(namer TableNamer) Option {
	return func(b *Builder) {
		b.table = namer(b.origin)
	}
}

// WithLenientSegments makes out-of-range segment counts a silent no-op
// instead of an error.
func WithLenientSegments() Option {
	return func(b *Builder) {
		b.lenient = true
	}
}

// WithLogger sets the logger for resolution diagnostics.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// New creates a Builder for queries issued against origin.
// The entity starts as origin, mode as search, operator as and.
func New(origin string, opts ...Option) *Builder {
	b := &Builder{
		origin:   origin,
		table:    ShortName(origin),
		entity:   origin,
		mode:     ModeSearch,
		operator: OperatorAnd,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Origin returns the entity the Builder was created for.
func (b *Builder) Origin() string { return b.origin }

// Table returns the origin's table name.
func (b *Builder) Table() string { return b.table }

// Entity returns the target entity.
func (b *Builder) Entity() string { return b.entity }

// Property returns the target property, "" when unset.
func (b *Builder) Property() string { return b.property }

// Mode returns the current mode.
func (b *Builder) Mode() Mode { return b.mode }

// Operator returns the current operator.
func (b *Builder) Operator() Operator { return b.operator }

// Join reports whether the directive needs a join.
func (b *Builder) Join() bool { return b.join }

// Action returns a copy of the current action, nil when unset.
func (b *Builder) Action() grammar.Action { return slices.Clone(b.action) }

// RawParameters returns the last descriptor passed to SetParameters.
func (b *Builder) RawParameters() string { return b.raw }

// SetEntity sets the target entity.
func (b *Builder) SetEntity(entity string) *Builder {
	b.entity = entity
	return b
}

// SetProperty sets the target property.
func (b *Builder) SetProperty(property string) *Builder {
	b.property = property
	return b
}

// SetOperator sets the filter operator.
func (b *Builder) SetOperator(op Operator) *Builder {
	b.operator = op
	return b
}

// SetAction sets the auxiliary action.
func (b *Builder) SetAction(action grammar.Action) *Builder {
	b.action = slices.Clone(action)
	return b
}

// SetMode sets the mode. The transition from search to order-by seeds the
// action with [property] and the property with "id" when either is unset.
// Setting order-by again seeds nothing; Build supplies the defaults.
func (b *Builder) SetMode(mode Mode) *Builder {
	if mode == ModeOrderBy && b.mode != ModeOrderBy {
		b.seedOrderDefaults()
	}
	b.mode = mode
	return b
}

func (b *Builder) seedOrderDefaults() {
	if len(b.action) == 0 {
		b.action = grammar.Action{grammar.Property}
	}
	if b.property == "" {
		b.property = DefaultOrderProperty
	}
}

// SetParameters resolves a descriptor into the Builder's fields.
//
// The raw string is kept verbatim. Dispatch is on segment count:
//   - 1: a non-empty segment is the property
//   - 2: switches + property, or entity + property when segment 0 is not
//     a switch group
//   - 3: optional switches + entity + property; a segment 0 that is not a
//     switch group is ignored
//
// Empty entity segments keep the current entity. Any other segment count
// returns a SegmentCountError and leaves the Builder unchanged, unless the
// Builder is lenient. The join flag is derived afterwards.
func (b *Builder) SetParameters(raw string) error {
	segments := grammar.Split(raw)

	if n := len(segments); n < 1 || n > 3 {
		if !b.lenient {
			return newSegmentCountError(raw, n)
		}
		b.logger.Debug("descriptor ignored: segment count out of range",
			"descriptor", raw,
			"segments", n)
		b.raw = raw
		b.deriveJoin()
		return nil
	}

	b.raw = raw

	switch len(segments) {
	case 1:
		if segments[0] != "" {
			b.property = segments[0]
		}

	case 2:
		switch r := grammar.Resolve(segments[0]).(type) {
		case grammar.Switches:
			b.applySwitches(r.Tokens)
		case grammar.Literal:
			if r.Text != "" {
				b.logger.Debug("segment is not a switch group, using it as entity",
					"descriptor", raw,
					"segment", r.Text)
			}
			b.setEntitySegment(r.Text)
		}
		b.property = segments[1]

	case 3:
		if sw, ok := grammar.Resolve(segments[0]).(grammar.Switches); ok {
			b.applySwitches(sw.Tokens)
		} else if segments[0] != "" {
			b.logger.Debug("switch group ignored: not all letters are switches",
				"descriptor", raw,
				"segment", segments[0])
		}
		b.setEntitySegment(segments[1])
		b.property = segments[2]
	}

	b.deriveJoin()
	return nil
}

func (b *Builder) setEntitySegment(entity string) {
	if entity != "" {
		b.entity = entity
	}
}

// applySwitches applies the mode and action of a switch group. Missing
// values leave the current state alone.
func (b *Builder) applySwitches(tokens []grammar.Token) {
	if mode, ok := grammar.ResolveMode(tokens); ok {
		switch mode {
		case grammar.AndFilter:
			b.SetMode(ModeSearch)
			b.operator = OperatorAnd
		case grammar.OrFilter:
			b.SetMode(ModeSearch)
			b.operator = OperatorOr
		case grammar.OrderBy:
			b.SetMode(ModeOrderBy)
		}
	}

	if action, ok := grammar.ResolveAction(tokens); ok {
		b.action = action
	}
}

// deriveJoin only ever sets join to true.
func (b *Builder) deriveJoin() {
	if b.entity != b.table {
		b.join = true
	}
	if b.mode == ModeOrderBy && b.action.Is(grammar.Count) {
		b.join = true
	}
}

// Build returns the immutable Directive for the Builder's current state.
// In order-by mode unset property and action take their defaults.
func (b *Builder) Build() Directive {
	d := Directive{
		origin:   b.origin,
		table:    b.table,
		entity:   b.entity,
		property: b.property,
		mode:     b.mode,
		operator: b.operator,
		join:     b.join,
		action:   slices.Clone(b.action),
		raw:      b.raw,
	}
	if d.mode == ModeOrderBy {
		if len(d.action) == 0 {
			d.action = grammar.Action{grammar.Property}
		}
		if d.property == "" {
			d.property = DefaultOrderProperty
		}
	}
	return d
}

// Parse resolves a single descriptor against origin.
func Parse(origin, raw string, opts ...Option) (Directive, error) {
	if origin == "" {
		return Directive{}, ErrEmptyEntity
	}
	b := New(origin, opts...)
	if err := b.SetParameters(raw); err != nil {
		return Directive{}, err
	}
	return b.Build(), nil
}
