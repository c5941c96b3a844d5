package params

import "github.com/hashicorp/go-multierror"

// FieldKind says what shape of value a schema field accepts.
type FieldKind int

const (
	// Number accepts any integer or floating point value.
	Number FieldKind = iota
	// Integer accepts whole-number values only, such as a filter order.
	Integer
)

// Field is one schema requirement: a name and the shape its value must have.
type Field struct {
	Name string
	Kind FieldKind
}

// Schema lists the fields a baseline must carry before derivation. It only
// names the fields this module's consumers are known to read; baselines
// routinely carry more, and the extras pass through derivation untouched.
type Schema []Field

// Validate checks the set against the schema and reports every violation,
// not just the first. These values are tuned by hand, and seeing the whole
// list of problems in one run beats fixing them one rebuild at a time.
func (sc Schema) Validate(s Set) error {
	var result *multierror.Error
	for _, f := range sc {
		v, ok := s.Lookup(f.Name)
		if !ok {
			result = multierror.Append(result, &MissingFieldError{Field: f.Name})
			continue
		}
		switch f.Kind {
		case Integer:
			if _, ok := toInt(v); !ok {
				result = multierror.Append(result, &FieldTypeError{Field: f.Name, Value: v, Want: "integer"})
			}
		default:
			if _, ok := toFloat(v); !ok {
				result = multierror.Append(result, &FieldTypeError{Field: f.Name, Value: v, Want: "number"})
			}
		}
	}
	return result.ErrorOrNil()
}
