package calc

// Algorithm selects which ARCS variant(s) a Calculation accumulates. It is
// a small closed tag type rather than an interface: spec.md §9 requires
// the per-sample inner loop to stay monomorphized, so dispatch on
// Algorithm happens once per track-aligned partition (a WantsV2 check in
// Calculation.consume), never once per sample.
type Algorithm int

const (
	// V1 computes only ARCSv1.
	V1 Algorithm = iota
	// V2 computes only ARCSv2.
	V2
	// V1AndV2 computes both in a single pass over the sample stream.
	V1AndV2
)

func (a Algorithm) String() string {
	switch a {
	case V1:
		return "ARCSv1"
	case V2:
		return "ARCSv2"
	case V1AndV2:
		return "ARCSv1+2"
	default:
		return "unknown"
	}
}

// WantsV1 reports whether this algorithm produces an ARCS1 value.
func (a Algorithm) WantsV1() bool {
	return a == V1 || a == V1AndV2
}

// WantsV2 reports whether this algorithm produces an ARCS2 value.
func (a Algorithm) WantsV2() bool {
	return a == V2 || a == V1AndV2
}
