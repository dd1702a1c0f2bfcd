package descriptor

import "fmt"

// Mode selects between filtering and ordering.
type Mode int

const (
	ModeSearch Mode = iota
	ModeOrderBy
)

func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "search"
	case ModeOrderBy:
		return "orderBy"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// ParseMode parses the String form of a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "search":
		return ModeSearch, nil
	case "orderBy":
		return ModeOrderBy, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", s)
	}
}

// Operator combines a filter with the filters before it.
// Only meaningful in search mode.
type Operator int

const (
	OperatorAnd Operator = iota
	OperatorOr
)

func (o Operator) String() string {
	switch o {
	case OperatorAnd:
		return "andFilter"
	case OperatorOr:
		return "orFilter"
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Operator) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// ParseOperator parses the String form of an Operator.
func ParseOperator(s string) (Operator, error) {
	switch s {
	case "andFilter":
		return OperatorAnd, nil
	case "orFilter":
		return OperatorOr, nil
	default:
		return 0, fmt.Errorf("unknown operator %q", s)
	}
}

// DefaultOrderProperty is the property ordered by when none is given.
const DefaultOrderProperty = "id"
