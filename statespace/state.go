package statespace

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// State is a point in a planning space: a fixed-length sequence of components, e.g. a position
// or a position and an orientation. Only a StateSpace interprets its components. A nil State
// means "absent".
type State []float64

// Equal returns whether two states have the same length and identical components.
func (s State) Equal(other State) bool {
	return len(s) == len(other) && floats.Equal(s, other)
}

// HasPrefix returns whether the leading components of s equal prefix. This allows partial state
// matches, e.g. position only against a position and orientation state.
func (s State) HasPrefix(prefix State) bool {
	if len(prefix) > len(s) {
		return false
	}
	return floats.Equal(s[:len(prefix)], prefix)
}

// Copy returns a copy of s that shares no memory with it.
func (s State) Copy() State {
	if s == nil {
		return nil
	}
	return append(State(nil), s...)
}

func (s State) String() string {
	return formatVector(s)
}

// Input is the control that moved a parent state to a child state. The planner stores inputs
// for path reconstruction but never interprets them.
type Input []float64

// Negate returns the additive inverse of u.
func (u Input) Negate() Input {
	if u == nil {
		return nil
	}
	neg := make(Input, len(u))
	floats.ScaleTo(neg, -1, u)
	return neg
}

func (u Input) String() string {
	return formatVector(u)
}

func formatVector(v []float64) string {
	if v == nil {
		return "<nil>"
	}
	parts := make([]string, 0, len(v))
	for _, f := range v {
		parts = append(parts, strconv.FormatFloat(f, 'g', -1, 64))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
