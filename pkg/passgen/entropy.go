package passgen

import "math"

// meterCeiling is the bit count rendered as a full strength meter.
const meterCeiling = 128

// Entropy returns the theoretical entropy of a password generated under cfg,
// in bits: Length × log2(pool size). It is an advisory readout for display,
// not a security guarantee.
func Entropy(cfg Config) float64 {
	if cfg.Length < 1 {
		return 0
	}
	return float64(cfg.Length) * math.Log2(float64(len(cfg.Pool())))
}

// StrengthFraction maps an entropy value to [0, 1] for meter display,
// saturating at meterCeiling bits.
func StrengthFraction(bits float64) float64 {
	if bits <= 0 {
		return 0
	}
	if bits >= meterCeiling {
		return 1
	}
	return bits / meterCeiling
}

// StrengthLabel buckets an entropy value into a short human label.
func StrengthLabel(bits float64) string {
	switch {
	case bits < 40:
		return "weak"
	case bits < 65:
		return "fair"
	case bits < 100:
		return "strong"
	default:
		return "excellent"
	}
}
