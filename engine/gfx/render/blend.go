package render

// BlendFactor selects a source/destination scaling factor for the GPU
// blend stage. Values map 1:1 onto the backend's native constants.
type BlendFactor uint8

const (
	FactorZero BlendFactor = iota
	FactorOne
	FactorSrcColor
	FactorOneMinusSrcColor
	FactorDstColor
	FactorOneMinusDstColor
	FactorSrcAlpha
	FactorOneMinusSrcAlpha
	FactorDstAlpha
	FactorOneMinusDstAlpha
)

// BlendEquation combines the scaled source and destination values.
type BlendEquation uint8

const (
	EquationAdd BlendEquation = iota
	EquationSubtract
	EquationReverseSubtract
	EquationMin
	EquationMax
)

// BlendMode configures the compositing stage, with separate factor and
// equation per color/alpha channel group. Equality is structural
// (plain ==), so BlendMode works as a map key directly.
type BlendMode struct {
	ColorSrc BlendFactor
	ColorDst BlendFactor
	ColorEq  BlendEquation
	AlphaSrc BlendFactor
	AlphaDst BlendFactor
	AlphaEq  BlendEquation
}

var (
	// BlendAlpha is standard (straight) alpha compositing.
	BlendAlpha = BlendMode{
		ColorSrc: FactorSrcAlpha, ColorDst: FactorOneMinusSrcAlpha, ColorEq: EquationAdd,
		AlphaSrc: FactorOne, AlphaDst: FactorOneMinusSrcAlpha, AlphaEq: EquationAdd,
	}

	// BlendAdd accumulates light additively.
	BlendAdd = BlendMode{
		ColorSrc: FactorSrcAlpha, ColorDst: FactorOne, ColorEq: EquationAdd,
		AlphaSrc: FactorOne, AlphaDst: FactorOne, AlphaEq: EquationAdd,
	}

	// BlendMultiply modulates the destination by the source.
	BlendMultiply = BlendMode{
		ColorSrc: FactorDstColor, ColorDst: FactorZero, ColorEq: EquationAdd,
		AlphaSrc: FactorDstColor, AlphaDst: FactorZero, AlphaEq: EquationAdd,
	}

	// BlendNone overwrites the destination.
	BlendNone = BlendMode{
		ColorSrc: FactorOne, ColorDst: FactorZero, ColorEq: EquationAdd,
		AlphaSrc: FactorOne, AlphaDst: FactorZero, AlphaEq: EquationAdd,
	}
)

// Compare orders blend modes lexicographically over all six fields.
// The order is total and agrees with ==: Compare returns 0 exactly for
// equal modes. Useful for sorted containers keyed by BlendMode.
func (m BlendMode) Compare(o BlendMode) int {
	fields := [6][2]uint8{
		{uint8(m.ColorSrc), uint8(o.ColorSrc)},
		{uint8(m.ColorDst), uint8(o.ColorDst)},
		{uint8(m.ColorEq), uint8(o.ColorEq)},
		{uint8(m.AlphaSrc), uint8(o.AlphaSrc)},
		{uint8(m.AlphaDst), uint8(o.AlphaDst)},
		{uint8(m.AlphaEq), uint8(o.AlphaEq)},
	}
	for _, f := range fields {
		if f[0] != f[1] {
			if f[0] < f[1] {
				return -1
			}
			return 1
		}
	}
	return 0
}
