package params

import "fmt"

// MissingFieldError reports a read of a field that neither the baseline nor
// an override table ever provided.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("parameter %q is not present in the set", e.Field)
}

// FieldTypeError reports a field whose value has the wrong shape for the
// requested read, for example a string where a cutoff frequency belongs.
type FieldTypeError struct {
	Field string
	Value interface{}
	Want  string
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("parameter %q is %T (%v), want %s", e.Field, e.Value, e.Value, e.Want)
}

// OverrideConflictError reports an override table entry naming a field the
// baseline does not carry. That means the table and the baseline are out of
// step, and derivation refuses to smuggle a new field into the schema.
type OverrideConflictError struct {
	Field string
}

func (e *OverrideConflictError) Error() string {
	return fmt.Sprintf("override names %q, which the baseline does not carry", e.Field)
}
