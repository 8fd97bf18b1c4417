package fonts

import (
	"fmt"
	"strconv"
)

// Weight is a single token on the wght axis. It is either a decimal integer
// ("400") or a variable-font range ("100..900") passed through verbatim.
// The one exception is the empty token, which Compile and Decode reject
// with INVALID_WEIGHT.
type Weight string

// WeightValue returns the decimal token for an integer weight.
func WeightValue(w int) Weight {
	return Weight(strconv.Itoa(w))
}

// WeightRange returns a variable-font range token such as "100..900".
func WeightRange(lo, hi int) Weight {
	return Weight(fmt.Sprintf("%d..%d", lo, hi))
}

// Weights converts integer weights into tokens, preserving order.
func Weights(ws ...int) []Weight {
	out := make([]Weight, len(ws))
	for i, w := range ws {
		out[i] = WeightValue(w)
	}
	return out
}

// ItalicPair selects one (ital, wght) combination. Ital is 0 for upright
// and 1 for italic.
type ItalicPair struct {
	Ital   int `json:"ital" yaml:"ital" toml:"ital"`
	Weight int `json:"wght" yaml:"wght" toml:"wght"`
}

// Upright returns the non-italic pair for weight w.
func Upright(w int) ItalicPair { return ItalicPair{Ital: 0, Weight: w} }

// Italic returns the italic pair for weight w.
func Italic(w int) ItalicPair { return ItalicPair{Ital: 1, Weight: w} }

func (p ItalicPair) String() string {
	return strconv.Itoa(p.Ital) + "," + strconv.Itoa(p.Weight)
}

// Family is one entry of a font query.
//
// Weights and Italics are both optional. If Italics is non-empty, Weights
// is ignored when rendering.
type Family struct {
	Name    string       `json:"name" yaml:"name" toml:"name"`
	Weights []Weight     `json:"weights,omitempty" yaml:"weights,omitempty" toml:"weights,omitempty"`
	Italics []ItalicPair `json:"italics,omitempty" yaml:"italics,omitempty" toml:"italics,omitempty"`
}

// FamilyOption configures a Family built with NewFamily.
type FamilyOption func(*Family)

// NewFamily builds a Family from a name and options.
func NewFamily(name string, opts ...FamilyOption) Family {
	f := Family{Name: name}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// WithWeights appends integer weights.
func WithWeights(ws ...int) FamilyOption {
	return func(f *Family) {
		f.Weights = append(f.Weights, Weights(ws...)...)
	}
}

// WithWeightTokens appends raw weight tokens.
func WithWeightTokens(ws ...Weight) FamilyOption {
	return func(f *Family) {
		f.Weights = append(f.Weights, ws...)
	}
}

// WithWeightRange appends a variable-font range.
func WithWeightRange(lo, hi int) FamilyOption {
	return func(f *Family) {
		f.Weights = append(f.Weights, WeightRange(lo, hi))
	}
}

// WithItalics appends italic pairs.
func WithItalics(pairs ...ItalicPair) FamilyOption {
	return func(f *Family) {
		f.Italics = append(f.Italics, pairs...)
	}
}
