package sprite

// BlendMode selects how sprite pixels combine with pixels already in the
// render target. Every registered shader keeps one pipeline per mode it
// has been asked to draw with.
type BlendMode uint8

const (
	// BlendAdd sums source and destination. Formula: src + dst
	BlendAdd BlendMode = iota

	// BlendSubtract subtracts the destination from the source.
	// Formula: src - dst
	BlendSubtract

	// BlendAlpha performs standard alpha compositing (source over
	// destination). Formula: src*a + dst*(1-a)
	BlendAlpha

	// BlendInvert flips the destination wherever the source is opaque.
	// Formula: src * (1-dst)
	BlendInvert
)

const unknownBlendMode = "Unknown"

// String returns a string representation of the blend mode.
func (b BlendMode) String() string {
	switch b {
	case BlendAdd:
		return "Add"
	case BlendSubtract:
		return "Subtract"
	case BlendAlpha:
		return "Alpha"
	case BlendInvert:
		return "Invert"
	default:
		return unknownBlendMode
	}
}

// AllBlendModes returns every defined blend mode, in declaration order.
// Useful for warming up pipelines before the first frame.
func AllBlendModes() []BlendMode {
	return []BlendMode{BlendAdd, BlendSubtract, BlendAlpha, BlendInvert}
}
