package shadowlayout

import "github.com/gogpu/gg"

// Drawable is an overlay the container can composite above its children.
// Renderers decide how to paint it; the container only sizes, tints and
// positions it.
type Drawable interface {
	// IntrinsicSize returns the natural size, or a non-positive value on an
	// axis that has none (the drawable then stretches on that axis).
	IntrinsicSize() (width, height int)
	// MinimumSize returns the smallest size the drawable can render at.
	MinimumSize() (width, height int)
	// SetBounds assigns the rectangle the drawable renders into.
	SetBounds(bounds Rect)
	// Bounds returns the last rectangle passed to SetBounds.
	Bounds() Rect
	// SetCallback installs the repaint hook. A nil callback detaches it.
	SetCallback(cb Callback)
}

// Callback receives repaint requests from a drawable.
type Callback interface {
	InvalidateDrawable(d Drawable)
}

// Tintable drawables apply a tint across all their states, like a ripple.
type Tintable interface {
	SetTint(c gg.RGBA)
}

// FilterMode is the compositing rule of a color filter.
type FilterMode int

const (
	// FilterSrcAtop paints the filter color over the drawable's opaque pixels.
	FilterSrcAtop FilterMode = iota
	// FilterMultiply multiplies the drawable's pixels by the filter color.
	FilterMultiply
)

// ColorFilterable drawables accept a flat color filter.
type ColorFilterable interface {
	SetColorFilter(c gg.RGBA, mode FilterMode)
}

// State is one entry of a drawable state set.
type State int

// Drawable states forwarded by the host.
const (
	StateEnabled State = iota
	StatePressed
	StateFocused
	StateHovered
	StateSelected
)

// Stateful drawables change appearance with the host's state set.
type Stateful interface {
	IsStateful() bool
	// SetState updates the state set and reports whether the appearance changed.
	SetState(states []State) bool
}

// Hotspotter drawables track a touch point, e.g. the origin of a ripple.
type Hotspotter interface {
	SetHotspot(x, y float64)
}

// Animated drawables can skip any running transition.
type Animated interface {
	JumpToCurrentState()
}

// DrawableBase implements the bookkeeping half of Drawable. Embed it and
// provide IntrinsicSize and MinimumSize.
type DrawableBase struct {
	bounds   Rect
	callback Callback
}

// SetBounds stores the rectangle.
func (d *DrawableBase) SetBounds(bounds Rect) { d.bounds = bounds }

// Bounds returns the stored rectangle.
func (d *DrawableBase) Bounds() Rect { return d.bounds }

// SetCallback stores the repaint hook.
func (d *DrawableBase) SetCallback(cb Callback) { d.callback = cb }

// Callback returns the installed repaint hook, or nil.
func (d *DrawableBase) Callback() Callback { return d.callback }

// InvalidateSelf asks the installed callback to repaint self. It does
// nothing when detached.
func (d *DrawableBase) InvalidateSelf(self Drawable) {
	if d.callback != nil {
		d.callback.InvalidateDrawable(self)
	}
}

// ForegroundSpec groups an overlay drawable with its placement.
type ForegroundSpec struct {
	Drawable Drawable
	Gravity  Gravity
	// DrawInPadding places the overlay over the whole container instead of
	// its padding box.
	DrawInPadding bool
}
