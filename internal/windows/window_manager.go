//go:build windows

package windows

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/lxn/win"

	"github.com/Norgate-AV/clippanel/internal/logger"
)

const frameStyles = win.WS_CAPTION | win.WS_THICKFRAME | win.WS_SYSMENU | win.WS_MINIMIZEBOX | win.WS_MAXIMIZEBOX

// windowManager styles and positions top-level windows
type windowManager struct {
	log logger.LoggerInterface
}

// newWindowManager creates a new window manager
func newWindowManager(log logger.LoggerInterface) *windowManager {
	return &windowManager{log: log}
}

// StripFrame removes the caption and border so only the client area remains
func (w *windowManager) StripFrame(hwnd win.HWND) error {
	style := uint32(win.GetWindowLong(hwnd, win.GWL_STYLE))
	next := popupStyle(style)

	w.log.Debug("Stripping window frame",
		slog.String("from", fmt.Sprintf("0x%08X", style)),
		slog.String("to", fmt.Sprintf("0x%08X", next)),
	)

	win.SetWindowLong(hwnd, win.GWL_STYLE, int32(next))

	// Cached frame metrics are only refreshed by SWP_FRAMECHANGED
	if !win.SetWindowPos(hwnd, 0, 0, 0, 0, 0,
		win.SWP_FRAMECHANGED|win.SWP_NOMOVE|win.SWP_NOSIZE|win.SWP_NOZORDER|win.SWP_NOACTIVATE) {
		return fmt.Errorf("failed to apply frame change to window 0x%X", hwnd)
	}

	return nil
}

// SetTopmost keeps the window above all non-topmost windows
func (w *windowManager) SetTopmost(hwnd win.HWND) error {
	w.log.Debug("Setting window topmost", slog.Uint64("hwnd", uint64(hwnd)))

	if !win.SetWindowPos(hwnd, win.HWND_TOPMOST, 0, 0, 0, 0,
		win.SWP_NOMOVE|win.SWP_NOSIZE|win.SWP_NOACTIVATE) {
		return fmt.Errorf("failed to make window 0x%X topmost", hwnd)
	}

	return nil
}

// ClearTabStop stops a control from taking keyboard focus through tabbing
func (w *windowManager) ClearTabStop(hwnd win.HWND) {
	style := uint32(win.GetWindowLong(hwnd, win.GWL_STYLE))
	if style&win.WS_TABSTOP == 0 {
		return
	}

	win.SetWindowLong(hwnd, win.GWL_STYLE, int32(style&^win.WS_TABSTOP))
	w.log.Trace("Cleared tab stop", slog.Uint64("hwnd", uint64(hwnd)))
}

// Bounds returns the window rectangle in screen coordinates
func (w *windowManager) Bounds(hwnd win.HWND) (Rect, bool) {
	var rc win.RECT
	if !win.GetWindowRect(hwnd, &rc) {
		w.log.Warn("GetWindowRect failed", slog.Uint64("hwnd", uint64(hwnd)))
		return Rect{}, false
	}

	return rectFromWin(rc), true
}

// MoveTo places the top-left corner of the window at pos
func (w *windowManager) MoveTo(hwnd win.HWND, pos Point) bool {
	ok := win.SetWindowPos(hwnd, 0, int32(pos.X), int32(pos.Y), 0, 0,
		win.SWP_NOSIZE|win.SWP_NOZORDER|win.SWP_NOACTIVATE)
	if !ok {
		w.log.Trace("SetWindowPos move failed", slog.Int("x", pos.X), slog.Int("y", pos.Y))
	}

	return ok
}

// Resize sets the outer size of the window
func (w *windowManager) Resize(hwnd win.HWND, size Size) error {
	w.log.Debug("Resizing window", slog.Int("width", size.Width), slog.Int("height", size.Height))

	if !win.SetWindowPos(hwnd, 0, 0, 0, int32(size.Width), int32(size.Height),
		win.SWP_NOMOVE|win.SWP_NOZORDER|win.SWP_NOACTIVATE) {
		return fmt.Errorf("failed to resize window 0x%X", hwnd)
	}

	return nil
}

// PrimaryWorkArea returns the primary monitor's work area, excluding taskbars
func (w *windowManager) PrimaryWorkArea() Rect {
	var mi win.MONITORINFO
	mi.CbSize = uint32(unsafe.Sizeof(mi))

	monitor := win.MonitorFromWindow(0, win.MONITOR_DEFAULTTOPRIMARY)
	if monitor == 0 || !win.GetMonitorInfo(monitor, &mi) {
		w.log.Warn("GetMonitorInfo failed, falling back to screen metrics")

		return Rect{
			Width:  int(win.GetSystemMetrics(win.SM_CXSCREEN)),
			Height: int(win.GetSystemMetrics(win.SM_CYSCREEN)),
		}
	}

	return rectFromWin(mi.RcWork)
}

// popupStyle drops every frame style and marks the window as a popup
func popupStyle(style uint32) uint32 {
	return (style &^ frameStyles) | win.WS_POPUP
}

func rectFromWin(rc win.RECT) Rect {
	return Rect{
		X:      int(rc.Left),
		Y:      int(rc.Top),
		Width:  int(rc.Right - rc.Left),
		Height: int(rc.Bottom - rc.Top),
	}
}
