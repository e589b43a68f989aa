package shadowlayout

import "github.com/gogpu/shadowlayout/shape"

// Renderer is the drawing capability a Container draws through. Backends
// implement it against a concrete 2D API. Calls are made in order on the
// host's goroutine; a clip set by ClipTo stays in effect for the rest of the
// Draw call and the backend is responsible for restoring it afterwards.
type Renderer interface {
	// FillPath fills the outline with paint, including its shadow layer.
	FillPath(path *shape.Path, paint Paint)

	// ClipTo restricts all later drawing to the interior of path.
	ClipTo(path *shape.Path)

	// DrawChildren draws the container's content. Content is opaque to the
	// container, so the backend forwards this to the host.
	DrawChildren()

	// DrawOverlay renders the foreground drawable into bounds.
	DrawOverlay(d Drawable, bounds Rect)
}
