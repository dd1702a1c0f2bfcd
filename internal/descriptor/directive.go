package descriptor

import (
	"encoding/json"
	"slices"

	"github.com/roach88/descq/internal/grammar"
)

// Directive is the resolved, read-only result of a descriptor.
// The zero value is not meaningful; obtain one from Builder.Build or Parse.
type Directive struct {
	origin   string
	table    string
	entity   string
	property string
	mode     Mode
	operator Operator
	join     bool
	action   grammar.Action
	raw      string
}

// Origin returns the entity the query is issued against.
func (d Directive) Origin() string { return d.origin }

// Table returns the origin's table name.
func (d Directive) Table() string { return d.table }

// Entity returns the target entity.
func (d Directive) Entity() string { return d.entity }

// Property returns the target property, "" when unset.
func (d Directive) Property() string { return d.property }

// Mode returns the directive mode.
func (d Directive) Mode() Mode { return d.mode }

// Operator returns the filter operator.
func (d Directive) Operator() Operator { return d.operator }

// Join reports whether the target is reached through a join.
func (d Directive) Join() bool { return d.join }

// Action returns a copy of the auxiliary action, nil when unset.
func (d Directive) Action() grammar.Action { return slices.Clone(d.action) }

// HasAction reports whether an action is set.
func (d Directive) HasAction() bool { return len(d.action) > 0 }

// RawParameters returns the descriptor exactly as given.
func (d Directive) RawParameters() string { return d.raw }

type directiveJSON struct {
	Origin        string   `json:"origin"`
	Table         string   `json:"table"`
	Entity        string   `json:"entity"`
	Property      string   `json:"property,omitempty"`
	Mode          Mode     `json:"mode"`
	Operator      Operator `json:"operator"`
	Join          bool     `json:"join"`
	Action        string   `json:"action,omitempty"`
	RawParameters string   `json:"raw_parameters"`
}

// MarshalJSON implements json.Marshaler.
func (d Directive) MarshalJSON() ([]byte, error) {
	return json.Marshal(directiveJSON{
		Origin:        d.origin,
		Table:         d.table,
		Entity:        d.entity,
		Property:      d.property,
		Mode:          d.mode,
		Operator:      d.operator,
		Join:          d.join,
		Action:        d.action.String(),
		RawParameters: d.raw,
	})
}
