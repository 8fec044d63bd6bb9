package panel

import "github.com/Norgate-AV/clippanel/internal/windows"

// DragTracker turns pointer events on the panel background into window moves.
// The anchor is the window-relative point where the primary button went down.
type DragTracker struct {
	anchor   windows.Point
	anchored bool
}

// Press records the anchor for the drag that follows
func (d *DragTracker) Press(at windows.Point) {
	d.anchor = at
	d.anchored = true
}

// Move returns the new window position for a pointer now at the given
// window-relative point. It reports false, leaving the window where it is,
// when no press has been seen yet.
func (d *DragTracker) Move(window, at windows.Point) (windows.Point, bool) {
	if !d.anchored {
		return window, false
	}

	return window.Add(at.Sub(d.anchor)), true
}

// Anchor returns the last press point and whether one has been recorded
func (d *DragTracker) Anchor() (windows.Point, bool) {
	return d.anchor, d.anchored
}
