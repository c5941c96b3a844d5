// Package vhs derives the tuning parameters for decoding VHS tape RF from
// the laserdisc baselines shipped by the upstream decoding library. The tape
// signal chain has the same broad shape as the laserdisc one, so each VHS
// set starts as a full copy of the matching laserdisc set with only the
// tape-specific values replaced: filter band edges, the colour-under
// carrier, and the demodulated-signal reference levels.
package vhs

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"vhstape/params"
)

// Standard identifies a broadcast line/field-rate convention.
type Standard int

const (
	// PAL is the 625-line, 50-field family.
	PAL Standard = iota
	// NTSC is the 525-line family at the 1000/1001-adjusted field rate.
	NTSC
)

func (s Standard) String() string {
	switch s {
	case PAL:
		return "PAL"
	case NTSC:
		return "NTSC"
	default:
		return fmt.Sprintf("Standard(%d)", int(s))
	}
}

// Kind identifies which half of the tuning a parameter set covers.
type Kind int

const (
	// RF covers band-pass/low-pass filtering and the colour-under carrier
	// of the raw tape signal.
	RF Kind = iota
	// System covers demodulated-signal reference levels and the chroma
	// burst reference used for automatic chroma control.
	System
)

func (k Kind) String() string {
	switch k {
	case RF:
		return "RF"
	case System:
		return "system"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Baselines holds the four laserdisc parameter sets this package derives
// from, one per (standard, kind). They are owned by the upstream decoding
// library; this package treats them as opaque beyond the fields its own
// schemas and override tables name.
type Baselines struct {
	PALRF      params.Set
	NTSCRF     params.Set
	PALSystem  params.Set
	NTSCSystem params.Set
}

// Params holds the four derived VHS parameter sets. New builds them once;
// they are read-only afterwards and safe for concurrent readers.
type Params struct {
	PALRF      params.Set
	NTSCRF     params.Set
	PALSystem  params.Set
	NTSCSystem params.Set
}

// Set returns the derived set for a (standard, kind) pair.
func (p *Params) Set(std Standard, kind Kind) (params.Set, error) {
	switch {
	case std == PAL && kind == RF:
		return p.PALRF, nil
	case std == PAL && kind == System:
		return p.PALSystem, nil
	case std == NTSC && kind == RF:
		return p.NTSCRF, nil
	case std == NTSC && kind == System:
		return p.NTSCSystem, nil
	default:
		return params.Set{}, fmt.Errorf("no parameter set for %s %s", std, kind)
	}
}

// DeriveError reports which (standard, kind) pairing failed to build and
// why. The wrapped error names the offending field.
type DeriveError struct {
	Standard Standard
	Kind     Kind
	Err      error
}

func (e *DeriveError) Error() string {
	return fmt.Sprintf("deriving %s %s parameters: %v", e.Standard, e.Kind, e.Err)
}

func (e *DeriveError) Unwrap() error { return e.Err }

// Option adjusts how New builds the parameter sets.
type Option func(*options)

type options struct {
	logger hclog.Logger
}

// WithLogger makes New log each override it applies at debug level. Handy
// while the tables are being retuned against fresh tape captures.
func WithLogger(l hclog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// New validates the four baselines and derives the four VHS sets. The
// baselines are left untouched. Any missing or mistyped field aborts the
// whole build: the decode pipeline cannot run on a partial profile, so there
// is no partial-success mode.
func New(b Baselines, opts ...Option) (*Params, error) {
	o := options{logger: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	var (
		p   Params
		err error
	)
	if p.PALRF, err = derive(PAL, RF, b.PALRF, o.logger); err != nil {
		return nil, err
	}
	if p.NTSCRF, err = derive(NTSC, RF, b.NTSCRF, o.logger); err != nil {
		return nil, err
	}
	if p.PALSystem, err = derive(PAL, System, b.PALSystem, o.logger); err != nil {
		return nil, err
	}
	if p.NTSCSystem, err = derive(NTSC, System, b.NTSCSystem, o.logger); err != nil {
		return nil, err
	}
	return &p, nil
}

func derive(std Standard, kind Kind, baseline params.Set, logger hclog.Logger) (params.Set, error) {
	if err := schemaFor(kind).Validate(baseline); err != nil {
		return params.Set{}, &DeriveError{Standard: std, Kind: kind, Err: err}
	}
	table := overridesFor(std, kind)
	derived, err := params.Derive(baseline, table)
	if err != nil {
		return params.Set{}, &DeriveError{Standard: std, Kind: kind, Err: err}
	}
	for _, ov := range table {
		logger.Debug("override applied",
			"standard", std.String(),
			"kind", kind.String(),
			"field", ov.Field,
			"value", ov.Value,
		)
	}
	return derived, nil
}
