package problem

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Weight is one matrix entry; +Inf marks a missing edge.
type Weight float64

// Missing reports whether w marks a missing edge.
func (w Weight) Missing() bool { return math.IsInf(float64(w), 1) }

func parseWeight(s string) (Weight, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inf", "+inf", ".inf", "∞", "-", "x":
		return Weight(math.Inf(1)), nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %q", ErrBadWeight, s)
	}

	return Weight(v), nil
}

// UnmarshalYAML accepts numbers, YAML .inf, and the markers inf, ∞, -, x.
func (w *Weight) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected a scalar", ErrBadWeight, value.Line)
	}
	v, err := parseWeight(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*w = v

	return nil
}

// MarshalYAML writes missing edges as inf.
func (w Weight) MarshalYAML() (interface{}, error) {
	if w.Missing() {
		return "inf", nil
	}

	return float64(w), nil
}

// UnmarshalJSON accepts numbers, null and the string markers.
func (w *Weight) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*w = Weight(math.Inf(1))
		return nil
	}
	if unq, err := strconv.Unquote(s); err == nil {
		s = unq
	}
	v, err := parseWeight(s)
	if err != nil {
		return err
	}
	*w = v

	return nil
}

// MarshalJSON writes missing edges as "inf".
func (w Weight) MarshalJSON() ([]byte, error) {
	if w.Missing() {
		return []byte(`"inf"`), nil
	}

	return json.Marshal(float64(w))
}
