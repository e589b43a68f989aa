package shadowlayout

import "fmt"

// MeasureMode tells a node how to interpret the size in a MeasureSpec.
type MeasureMode int

const (
	// ModeUnspecified places no constraint on the node.
	ModeUnspecified MeasureMode = iota
	// ModeExactly requires the node to be exactly Size.
	ModeExactly
	// ModeAtMost lets the node be as large as it wants up to Size.
	ModeAtMost
)

// String returns the mode name.
func (m MeasureMode) String() string {
	switch m {
	case ModeUnspecified:
		return "unspecified"
	case ModeExactly:
		return "exactly"
	case ModeAtMost:
		return "at-most"
	default:
		return fmt.Sprintf("MeasureMode(%d)", int(m))
	}
}

// MeasureSpec is the constraint a parent passes down for one axis.
type MeasureSpec struct {
	Mode MeasureMode
	Size int
}

// Exactly returns a spec that forces the given size.
func Exactly(size int) MeasureSpec {
	return MeasureSpec{Mode: ModeExactly, Size: max(size, 0)}
}

// AtMost returns a spec bounded by the given size.
func AtMost(size int) MeasureSpec {
	return MeasureSpec{Mode: ModeAtMost, Size: max(size, 0)}
}

// Unconstrained returns a spec with no bound. The size is advisory only.
func Unconstrained(size int) MeasureSpec {
	return MeasureSpec{Mode: ModeUnspecified, Size: max(size, 0)}
}

// String formats the spec as "mode(size)".
func (s MeasureSpec) String() string {
	return fmt.Sprintf("%s(%d)", s.Mode, s.Size)
}

// MeasuredState carries flags about how a measurement went.
type MeasuredState uint8

const (
	// StateTooSmall is set when the resolved size is smaller than the
	// space the content asked for.
	StateTooSmall MeasuredState = 1 << iota
)

// MeasuredSize is the outcome of a measure pass for one node.
type MeasuredSize struct {
	Width       int
	Height      int
	WidthState  MeasuredState
	HeightState MeasuredState
}

// Size returns the width and height without state flags.
func (m MeasuredSize) Size() Size {
	return Size{Width: m.Width, Height: m.Height}
}

// DefaultSize returns size when the spec is unconstrained and the spec size
// otherwise.
func DefaultSize(size int, spec MeasureSpec) int {
	if spec.Mode == ModeUnspecified {
		return size
	}
	return spec.Size
}

// ResolveSizeAndState reconciles a desired size with a spec. An exact spec
// wins; an at-most spec caps the size and reports StateTooSmall when it had
// to. The child state is merged into the result.
func ResolveSizeAndState(size int, spec MeasureSpec, childState MeasuredState) (int, MeasuredState) {
	var (
		result int
		state  MeasuredState
	)
	switch spec.Mode {
	case ModeAtMost:
		if spec.Size < size {
			result = spec.Size
			state = StateTooSmall
		} else {
			result = size
		}
	case ModeExactly:
		result = spec.Size
	default:
		result = size
	}
	return result, state | childState
}

// ChildMeasureSpec derives the spec for one axis of a child from the
// parent's spec, the space already used on that axis (padding plus the
// child's margins) and the child's requested dimension.
func ChildMeasureSpec(spec MeasureSpec, used int, childDimension Dimension) MeasureSpec {
	size := max(spec.Size-used, 0)

	if childDimension >= 0 {
		return Exactly(int(childDimension))
	}
	switch spec.Mode {
	case ModeExactly:
		if childDimension == MatchParent {
			return Exactly(size)
		}
		return AtMost(size)
	case ModeAtMost:
		return AtMost(size)
	default:
		return Unconstrained(size)
	}
}
