package effects

import "math"

// Glyph alphabets stay single cell wide so the terminal grid never
// shifts. Katakana uses the half-width block for that reason.
var (
	matrixAlphabet   = []rune("ｱｲｳｴｵｶｷｸｹｺｻｼｽｾｿﾀﾁﾂﾃﾄﾅﾆﾇﾈﾉﾊﾋﾌﾍﾎﾏﾐﾑﾒﾓﾔﾕﾖﾗﾘﾙﾚﾛﾜﾝ0123456789")
	binaryAlphabet   = []rune("01")
	scrambleAlphabet = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*()_+-=[]{};:,.<>?")
	tickerDigits     = []rune("0123456789")
	tickerSymbols    = []rune("$%+-")
)

// cycleGlyph picks alphabet[floor(frame/period + phaseTerm) mod len].
// Reports false when the alphabet cannot produce a rune, so callers
// keep the particle's original glyph.
func cycleGlyph(alphabet []rune, frame uint64, period uint64, phaseTerm float64) (rune, bool) {
	if len(alphabet) == 0 || period == 0 {
		return 0, false
	}
	idx := int(math.Floor(float64(frame)/float64(period)+phaseTerm)) % len(alphabet)
	if idx < 0 {
		idx += len(alphabet)
	}
	return alphabet[idx], true
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
