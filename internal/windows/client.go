//go:build windows

package windows

import (
	"log/slog"

	"github.com/lxn/win"

	"github.com/Norgate-AV/clippanel/internal/logger"
)

// Client provides methods for interacting with Windows APIs
type Client struct {
	log    logger.LoggerInterface
	Window *windowManager
}

// NewClient creates a new Windows API client
func NewClient(log logger.LoggerInterface) *Client {
	return &Client{
		log:    log,
		Window: newWindowManager(log),
	}
}

// HandleWindow adapts a top-level window handle for moving by drag
func (c *Client) HandleWindow(hwnd win.HWND) *Window {
	return &Window{hwnd: hwnd, manager: c.Window}
}

// Window is a top-level window addressed by its handle
type Window struct {
	hwnd    win.HWND
	manager *windowManager
	last    Point
}

// Handle returns the underlying window handle
func (w *Window) Handle() win.HWND {
	return w.hwnd
}

// Position returns the top-left corner of the window in screen coordinates.
// If the rectangle cannot be read the last known position is returned.
func (w *Window) Position() Point {
	if r, ok := w.manager.Bounds(w.hwnd); ok {
		w.last = r.Origin()
	}

	return w.last
}

// MoveTo places the top-left corner of the window at pos
func (w *Window) MoveTo(pos Point) {
	if w.manager.MoveTo(w.hwnd, pos) {
		w.last = pos
		return
	}

	w.manager.log.Debug("Window move failed", slog.Int("x", pos.X), slog.Int("y", pos.Y))
}
