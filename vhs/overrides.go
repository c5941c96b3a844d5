package vhs

import "vhstape/params"

// NTSC runs at 30/1.001 frames per second. The carrier is built up in
// float64 steps so the value matches the reference tuning bit for bit.
var (
	ntscFrameRate float64 = 30 / 1.001
	ntscLineRate          = 525 * ntscFrameRate
)

// palColorUnderCarrier sits 1953 Hz above 40 times the PAL line rate.
const palColorUnderCarrier = (625*25)*40 + 1953

// palRF holds the tape-specific RF values that differ from the PAL laserdisc
// baseline.
// TODO: the band-pass edges still need tweaking against more tape captures.
var palRF = params.Overrides{
	// Band-pass filter on the raw video RF.
	{Field: "video_bpf_low", Value: 3550000},
	{Field: "video_bpf_high", Value: 5200000},
	{Field: "video_bpf_order", Value: 1},
	// Low-pass on luma after demodulation.
	{Field: "video_lpf_freq", Value: 3600000},
	// Colour-under carrier, 40H + 1953 Hz.
	{Field: "color_under_carrier", Value: palColorUnderCarrier},
}

// ntscRF holds the tape-specific RF values that differ from the NTSC
// laserdisc baseline.
var ntscRF = params.Overrides{
	{Field: "video_bpf_low", Value: 3300000},
	{Field: "video_bpf_high", Value: 5000000},
	{Field: "video_bpf_order", Value: 2},
	{Field: "video_lpf_freq", Value: 3600000},
	// Colour-under carrier, 40H.
	{Field: "color_under_carrier", Value: ntscLineRate * 40},
}

// palSystem holds the demodulated-signal levels for PAL tape.
var palSystem = params.Overrides{
	// 0 IRE level after demodulation.
	{Field: "ire0", Value: 4100000},
	// Frequency swing per IRE unit.
	{Field: "hz_ire", Value: 700000 / 100.0},
	// White point per the standard, 4.8 MHz.
	{Field: "max_ire", Value: 100},
	// Mean absolute colour burst value for automatic chroma control.
	// Eyeballed to give usable chroma level, still needs tweaking.
	{Field: "burst_abs_ref", Value: 750},
}

// ntscSystem holds the demodulated-signal levels for NTSC tape.
var ntscSystem = params.Overrides{
	{Field: "ire0", Value: 3685000},
	{Field: "hz_ire", Value: 715000 / 100.0},
	{Field: "max_ire", Value: 100},
	{Field: "burst_abs_ref", Value: 300},
}

// TODO: SECAM tables once a SECAM baseline is available upstream.

// rfSchema lists the RF fields the tape demodulator reads. Baselines carry
// more; only these are required and only these get overridden.
var rfSchema = params.Schema{
	{Name: "video_bpf_low", Kind: params.Number},
	{Name: "video_bpf_high", Kind: params.Number},
	{Name: "video_bpf_order", Kind: params.Integer},
	{Name: "video_lpf_freq", Kind: params.Number},
	{Name: "color_under_carrier", Kind: params.Number},
}

// systemSchema lists the level-reference fields the pipeline reads.
var systemSchema = params.Schema{
	{Name: "ire0", Kind: params.Number},
	{Name: "hz_ire", Kind: params.Number},
	{Name: "max_ire", Kind: params.Integer},
	{Name: "burst_abs_ref", Kind: params.Number},
}

func overridesFor(std Standard, kind Kind) params.Overrides {
	switch {
	case std == PAL && kind == RF:
		return palRF
	case std == NTSC && kind == RF:
		return ntscRF
	case std == PAL && kind == System:
		return palSystem
	default:
		return ntscSystem
	}
}

func schemaFor(kind Kind) params.Schema {
	if kind == RF {
		return rfSchema
	}
	return systemSchema
}
