// Package params implements the copy-then-override model used to derive one
// medium's decode tuning from another's. A parameter set starts life as a
// full copy of a baseline owned by the upstream decoding library; a fixed
// override table then replaces the handful of values that differ for the
// target medium. Everything not named by the table is inherited unchanged.
package params

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/mitchellh/copystructure"
)

// Set is a named collection of tuning values for one stage of the decode
// pipeline. A Set is built once, never mutated, and read many times, so it
// is safe to share between goroutines without locking.
type Set struct {
	fields map[string]interface{}
}

// FromMap builds a Set from a plain map. The map is deep-copied, including
// composite values such as deemphasis time-constant pairs, so later mutation
// of the source map does not leak into the Set.
func FromMap(m map[string]interface{}) (Set, error) {
	if len(m) == 0 {
		return Set{}, fmt.Errorf("parameter set: source map is empty")
	}
	dup, err := copystructure.Copy(m)
	if err != nil {
		return Set{}, fmt.Errorf("parameter set: copying source map: %w", err)
	}
	return Set{fields: dup.(map[string]interface{})}, nil
}

// Len returns the number of fields in the set.
func (s Set) Len() int {
	return len(s.fields)
}

// Has reports whether the set carries the named field.
func (s Set) Has(name string) bool {
	_, ok := s.fields[name]
	return ok
}

// Lookup returns the raw value of the named field.
func (s Set) Lookup(name string) (interface{}, bool) {
	v, ok := s.fields[name]
	return v, ok
}

// Fields returns every field name in the set, sorted.
func (s Set) Fields() []string {
	names := make([]string, 0, len(s.fields))
	for name := range s.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Float returns the named field as a float64. Integer values are widened;
// anything non-numeric is a FieldTypeError.
func (s Set) Float(name string) (float64, error) {
	v, ok := s.fields[name]
	if !ok {
		return 0, &MissingFieldError{Field: name}
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, &FieldTypeError{Field: name, Value: v, Want: "number"}
	}
	return f, nil
}

// Int returns the named field as an int. Floating point values are accepted
// only when they carry a whole number.
func (s Set) Int(name string) (int, error) {
	v, ok := s.fields[name]
	if !ok {
		return 0, &MissingFieldError{Field: name}
	}
	n, ok := toInt(v)
	if !ok {
		return 0, &FieldTypeError{Field: name, Value: v, Want: "integer"}
	}
	return n, nil
}

// Map returns the set as a plain map. The result is a deep copy; mutating it
// does not affect the Set.
func (s Set) Map() (map[string]interface{}, error) {
	if len(s.fields) == 0 {
		return nil, fmt.Errorf("parameter set: set is empty")
	}
	dup, err := copystructure.Copy(s.fields)
	if err != nil {
		return nil, fmt.Errorf("parameter set: copying fields: %w", err)
	}
	return dup.(map[string]interface{}), nil
}

// Equal reports whether both sets carry the same fields with equal values.
func (s Set) Equal(other Set) bool {
	if len(s.fields) != len(other.fields) {
		return false
	}
	for name, v := range s.fields {
		ov, ok := other.fields[name]
		if !ok || !valuesEqual(v, ov) {
			return false
		}
	}
	return true
}

// Diff returns the names of the fields whose values differ between base and
// derived, sorted. Fields present on only one side count as differing. The
// override tables are retuned by hand from time to time, and a field-level
// diff is the quickest way to see what a retune actually changed.
func Diff(base, derived Set) []string {
	changed := make(map[string]struct{})
	for name, v := range base.fields {
		ov, ok := derived.fields[name]
		if !ok || !valuesEqual(v, ov) {
			changed[name] = struct{}{}
		}
	}
	for name := range derived.fields {
		if _, ok := base.fields[name]; !ok {
			changed[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(changed))
	for name := range changed {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func valuesEqual(a, b interface{}) bool {
	// Compare numbers by value so an int baseline field overridden with a
	// float of the same magnitude does not register as a change.
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			return fa == fb
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
		return 0, false
	case float32:
		if float64(n) == float64(int(n)) {
			return int(n), true
		}
		return 0, false
	default:
		return 0, false
	}
}
