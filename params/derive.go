package params

import "fmt"

// Override pins one field to a fixed, hand-tuned value.
type Override struct {
	Field string
	Value interface{}
}

// Overrides is an override table. Order is kept for logging and review; the
// derived result does not depend on it because every field is distinct.
type Overrides []Override

// Fields returns the field names in table order.
func (o Overrides) Fields() []string {
	names := make([]string, len(o))
	for i, ov := range o {
		names[i] = ov.Field
	}
	return names
}

// Derive produces a new Set that inherits every field of the baseline and
// then applies each override on top. The baseline itself is never touched,
// and the result shares no storage with it, so either side can outlive the
// other. An override naming a field absent from the baseline fails with an
// OverrideConflictError rather than adding the field silently.
func Derive(baseline Set, overrides Overrides) (Set, error) {
	if baseline.Len() == 0 {
		return Set{}, fmt.Errorf("derive: baseline set is empty")
	}
	dup, err := baseline.Map()
	if err != nil {
		return Set{}, fmt.Errorf("derive: %w", err)
	}
	for _, ov := range overrides {
		if _, ok := dup[ov.Field]; !ok {
			return Set{}, &OverrideConflictError{Field: ov.Field}
		}
		dup[ov.Field] = ov.Value
	}
	return Set{fields: dup}, nil
}
