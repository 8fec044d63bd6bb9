// Package interfaces defines core interfaces for dependency injection and testing.
package interfaces

import "github.com/Norgate-AV/clippanel/internal/windows"

// ClipboardSink receives text destined for the system clipboard
type ClipboardSink interface {
	SetText(text string) error
}

// Window is a movable top-level window
type Window interface {
	Position() windows.Point
	MoveTo(pos windows.Point)
}

// PointerSurface delivers pointer events in window-relative coordinates
type PointerSurface interface {
	OnPress(handler func(at windows.Point))
	OnMove(handler func(at windows.Point, primaryHeld bool))
}

// Clickable is a control that reports activation
type Clickable interface {
	OnClick(handler func())
}
