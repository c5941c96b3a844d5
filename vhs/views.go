package vhs

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"vhstape/params"
)

// RFParams is the typed view of an RF parameter set, covering the fields the
// tape demodulator reads. Tags carry the upstream key names.
type RFParams struct {
	VideoBPFLow       float64 `mapstructure:"video_bpf_low"`
	VideoBPFHigh      float64 `mapstructure:"video_bpf_high"`
	VideoBPFOrder     int     `mapstructure:"video_bpf_order"`
	VideoLPFFreq      float64 `mapstructure:"video_lpf_freq"`
	ColorUnderCarrier float64 `mapstructure:"color_under_carrier"`
}

// SystemParams is the typed view of a system parameter set: demodulated
// signal level references and the chroma burst reference.
type SystemParams struct {
	IRE0        float64 `mapstructure:"ire0"`
	HzPerIRE    float64 `mapstructure:"hz_ire"`
	MaxIRE      int     `mapstructure:"max_ire"`
	BurstAbsRef float64 `mapstructure:"burst_abs_ref"`
}

// RFView decodes the RF fields of a set into a typed record.
func RFView(s params.Set) (RFParams, error) {
	var rf RFParams
	if err := decodeView(s, &rf); err != nil {
		return RFParams{}, fmt.Errorf("rf view: %w", err)
	}
	return rf, nil
}

// SystemView decodes the level-reference fields of a set into a typed
// record.
func SystemView(s params.Set) (SystemParams, error) {
	var sys SystemParams
	if err := decodeView(s, &sys); err != nil {
		return SystemParams{}, fmt.Errorf("system view: %w", err)
	}
	return sys, nil
}

// decodeView maps the set onto out. Weak typing is on so integer-valued
// baseline fields land in float64 struct fields; fields the struct does not
// name are ignored, since baselines carry plenty the views never read.
func decodeView(s params.Set, out interface{}) error {
	m, err := s.Map()
	if err != nil {
		return err
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(m)
}
