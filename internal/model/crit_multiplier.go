package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/jackc/pgx/v5/pgtype"
	"gopkg.in/yaml.v3"
)

// Crit multiplier bounds (inclusive).
const (
	MinCritMultiplier int32 = -25
	MaxCritMultiplier int32 = 99
)

// ErrCritMultiplierOutOfRange is matched by every OutOfRangeError via errors.Is.
var ErrCritMultiplierOutOfRange = errors.New("crit multiplier out of range")

// OutOfRangeError reports a crit multiplier outside [MinCritMultiplier, MaxCritMultiplier].
type OutOfRangeError struct {
	Value int32
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("crit multiplier must be within %d and %d, value provided was %d",
		MinCritMultiplier, MaxCritMultiplier, e.Value)
}

func (e *OutOfRangeError) Unwrap() error {
	return ErrCritMultiplierOutOfRange
}

// CritMultiplier wraps the weapon crit multiplier stat.
// Value type, передаётся по значению (immutable). Zero value = бонус не задан.
//
// Multiplier formula: v/51 + 1.5 when set, 1.0 otherwise.
type CritMultiplier struct {
	value int32
	set   bool
}

// NewCritMultiplier validates raw and wraps it.
// nil означает отсутствие бонуса и всегда валиден.
func NewCritMultiplier(raw *int32) (CritMultiplier, error) {
	if raw == nil {
		return CritMultiplier{}, nil
	}
	v := *raw
	if v < MinCritMultiplier || v > MaxCritMultiplier {
		return CritMultiplier{}, &OutOfRangeError{Value: v}
	}
	return CritMultiplier{value: v, set: true}, nil
}

// CritMultiplierOf is NewCritMultiplier for a value that is always present.
func CritMultiplierOf(v int32) (CritMultiplier, error) {
	return NewCritMultiplier(&v)
}

// Multiplier returns the crit damage multiplier.
func (c CritMultiplier) Multiplier() float64 {
	if !c.set {
		return 1.0
	}
	return float64(c.value)/51.0 + 1.5
}

// Value returns the raw stat and whether it is set.
func (c CritMultiplier) Value() (int32, bool) {
	return c.value, c.set
}

// IsSet reports whether a bonus is configured.
func (c CritMultiplier) IsSet() bool {
	return c.set
}

func (c CritMultiplier) String() string {
	if !c.set {
		return "none"
	}
	return strconv.FormatInt(int64(c.value), 10)
}

// MarshalJSON encodes the value as a bare integer or null.
func (c CritMultiplier) MarshalJSON() ([]byte, error) {
	if !c.set {
		return []byte("null"), nil
	}
	return strconv.AppendInt(nil, int64(c.value), 10), nil
}

// UnmarshalJSON accepts null or a bare integer in range. Anything else is an error.
func (c *CritMultiplier) UnmarshalJSON(data []byte) error {
	var raw *int32
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding crit multiplier: %w", err)
	}
	parsed, err := NewCritMultiplier(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML encodes the value as an integer or null.
func (c CritMultiplier) MarshalYAML() (any, error) {
	if !c.set {
		return nil, nil
	}
	return c.value, nil
}

// UnmarshalYAML accepts null or an !!int scalar in range.
// yaml.v3 не вызывает unmarshaler для null, поле остаётся нулевым (absent).
func (c *CritMultiplier) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		*c = CritMultiplier{}
		return nil
	}
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!int" {
		return fmt.Errorf("decoding crit multiplier: line %d: expected integer or null, got %q", node.Line, node.Value)
	}
	var v int32
	if err := node.Decode(&v); err != nil {
		return fmt.Errorf("decoding crit multiplier: %w", err)
	}
	parsed, err := CritMultiplierOf(v)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Int64Value implements pgtype.Int64Valuer so the value binds to an integer NULL column.
func (c CritMultiplier) Int64Value() (pgtype.Int8, error) {
	return pgtype.Int8{Int64: int64(c.value), Valid: c.set}, nil
}

// ScanInt64 implements pgtype.Int64Scanner. NULL scans to the absent state.
func (c *CritMultiplier) ScanInt64(v pgtype.Int8) error {
	if !v.Valid {
		*c = CritMultiplier{}
		return nil
	}
	if v.Int64 < math.MinInt32 || v.Int64 > math.MaxInt32 {
		return fmt.Errorf("crit multiplier %d overflows int32: %w", v.Int64, ErrCritMultiplierOutOfRange)
	}
	parsed, err := CritMultiplierOf(int32(v.Int64))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
