package normalize

import (
	"fmt"

	"github.com/cwbudde/algo-dataset/array"
)

// Policy selects a normalization algorithm.
type Policy int

const (
	// PolicyZScoreFeatures standardizes each feature across the sample axis.
	PolicyZScoreFeatures Policy = iota
	// PolicyZScore2D standardizes each sample over its flattened features and
	// appends a trailing unit channel dimension.
	PolicyZScore2D
	// PolicyRange01 maps the global [min, max] of the data onto [0, 1].
	PolicyRange01
	// PolicyZScoreSamples standardizes each sample over its features.
	PolicyZScoreSamples
	// PolicyMaxAbs divides each feature by its largest absolute value.
	PolicyMaxAbs
	// PolicyWhiten decorrelates features and scales them to unit variance.
	PolicyWhiten
	// PolicyUnitL2 scales each sample to unit Euclidean norm.
	PolicyUnitL2
)

var policyNames = []string{
	PolicyZScoreFeatures: "z_score_features",
	PolicyZScore2D:       "z_score_2d",
	PolicyRange01:        "range_0_1",
	PolicyZScoreSamples:  "z_score_samples",
	PolicyMaxAbs:         "max_abs",
	PolicyWhiten:         "whiten",
	PolicyUnitL2:         "unit_l2",
}

// Policies returns the configuration names of every policy, in enum order.
func Policies() []string {
	out := make([]string, len(policyNames))
	copy(out, policyNames)
	return out
}

// String returns the configuration name of p.
func (p Policy) String() string {
	if p.valid() {
		return policyNames[p]
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

func (p Policy) valid() bool {
	return p >= 0 && int(p) < len(policyNames)
}

// ParsePolicy maps a configuration name to its Policy.
func ParsePolicy(name string) (Policy, error) {
	for i, n := range policyNames {
		if n == name {
			return Policy(i), nil
		}
	}
	return 0, &ConfigError{Value: name, Valid: Policies()}
}

// MarshalText implements encoding.TextMarshaler.
func (p Policy) MarshalText() ([]byte, error) {
	if !p.valid() {
		return nil, &ConfigError{Value: p.String(), Valid: Policies()}
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Policy) UnmarshalText(text []byte) error {
	v, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Apply normalizes data with policy p and returns a new array.
func Apply(data *array.Array, p Policy) (*array.Array, error) {
	switch p {
	case PolicyZScoreFeatures:
		return ZScoreFeatures(data), nil
	case PolicyZScore2D:
		return ZScore2D(data)
	case PolicyRange01:
		return Range01(data), nil
	case PolicyZScoreSamples:
		return ZScoreSamples(data), nil
	case PolicyMaxAbs:
		return MaxAbsScale(data), nil
	case PolicyWhiten:
		return Whiten(data)
	case PolicyUnitL2:
		return UnitNorm(data, L2), nil
	default:
		return nil, &ConfigError{Value: p.String(), Valid: Policies()}
	}
}
