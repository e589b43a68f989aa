package shadowlayout

// Dimension is a requested width or height: a size in pixels, or one of
// MatchParent and WrapContent.
type Dimension int

const (
	// MatchParent asks to be as large as the parent allows.
	MatchParent Dimension = -1
	// WrapContent asks to be just large enough for the content.
	WrapContent Dimension = -2
)

// Visibility controls whether a node takes part in measure and layout.
type Visibility int

const (
	// Visible nodes are measured, laid out and drawn.
	Visible Visibility = iota
	// Invisible nodes take space but are not drawn by the host.
	Invisible
	// Gone nodes are skipped by measure and layout.
	Gone
)

// LayoutParams describe how a node wants to be placed by its parent.
type LayoutParams struct {
	Width   Dimension
	Height  Dimension
	Margins Insets
	// Gravity aligns the node inside the container. NoGravity means
	// DefaultChildGravity.
	Gravity Gravity
}

// Node is the single child of a Container. It is owned by the host; the
// container only measures and positions it.
type Node interface {
	// Measure sizes the node under the given constraints.
	Measure(width, height MeasureSpec) MeasuredSize
	// Layout assigns the node its final rectangle in container coordinates.
	Layout(bounds Rect)
	// LayoutParams returns the node's placement request.
	LayoutParams() LayoutParams
	// Visibility reports whether the node participates in layout.
	Visibility() Visibility
}
