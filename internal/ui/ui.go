// Package ui builds and runs the panel window.
package ui

import (
	"errors"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/Norgate-AV/clippanel/internal/logger"
	"github.com/Norgate-AV/clippanel/internal/windows"
)

// ErrUnsupportedPlatform is returned by Run where no window toolkit is available
var ErrUnsupportedPlatform = errors.New("the panel window is only supported on Windows")

const (
	// Title is the window title shown in the taskbar
	Title = "Clipboard Copier"

	// MarginX is the padding left and right of the button column
	MarginX = 10

	// MarginY is the padding above and below the button column
	MarginY = 5

	// ButtonSpacing is the gap between adjacent buttons
	ButtonSpacing = 5

	// CloseActionText labels the context menu entry that closes the window
	CloseActionText = "&Close"
)

// ButtonText escapes a label so it is shown literally on a push button
// instead of '&' marking a mnemonic
func ButtonText(label string) string {
	return strings.ReplaceAll(label, "&", "&&")
}

// frame is a created but still hidden native window
type frame interface {
	StripFrame() error
	ClearTabStops()
	ContentSize() windows.Size
	Resize(size windows.Size) error
	WorkArea() windows.Rect
	MoveTo(pos windows.Point)
	SetTopmost() error
	Show()
}

// present turns f into a fixed-size borderless panel centered in the work
// area and above other windows. The window is shown only once it is final.
func present(f frame, log logger.LoggerInterface) error {
	if err := f.StripFrame(); err != nil {
		return err
	}

	f.ClearTabStops()

	size := f.ContentSize()
	if err := f.Resize(size); err != nil {
		return err
	}

	pos := windows.CenterIn(f.WorkArea(), size)
	f.MoveTo(pos)

	if err := f.SetTopmost(); err != nil {
		return err
	}

	log.Debug("Showing panel",
		slog.Int("x", pos.X),
		slog.Int("y", pos.Y),
		slog.Int("width", size.Width),
		slog.Int("height", size.Height),
	)

	f.Show()

	return nil
}

// forwardShutdown asks the window to close when a signal arrives. If the
// window has not closed within grace the process exits with code 130.
// It returns when done is closed.
func forwardShutdown(
	signals <-chan os.Signal,
	done <-chan struct{},
	requestClose func(),
	grace time.Duration,
	exitFunc func(int),
	log logger.LoggerInterface,
) {
	select {
	case <-done:
		return
	case sig := <-signals:
		log.Debug("Received signal", slog.Any("signal", sig))
		log.Info("Interrupt signal received, closing panel")
	}

	requestClose()

	select {
	case <-done:
		log.Debug("Panel closed after signal")
	case <-time.After(grace):
		log.Warn("Panel did not close in time, exiting", slog.Duration("grace", grace))
		exitFunc(130)
	}
}

// waitClosed blocks until done is closed or timeout elapses and reports
// whether the window closed in time
func waitClosed(done <-chan struct{}, timeout time.Duration) bool {
	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}
