//go:build windows

package ui

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lxn/walk"
	. "github.com/lxn/walk/declarative"

	"github.com/Norgate-AV/clippanel/internal/interfaces"
	"github.com/Norgate-AV/clippanel/internal/logger"
	"github.com/Norgate-AV/clippanel/internal/panel"
	"github.com/Norgate-AV/clippanel/internal/timeouts"
	"github.com/Norgate-AV/clippanel/internal/windows"
)

// Run shows the panel window and blocks until it is closed
func Run(p *panel.Panel, log logger.LoggerInterface) error {
	client := windows.NewClient(log)
	defs := p.Buttons()

	var mw *walk.MainWindow
	var surface *walk.Composite

	pushButtons := make([]*walk.PushButton, len(defs))
	children := make([]Widget, len(defs))

	for i, def := range defs {
		children[i] = PushButton{
			AssignTo: &pushButtons[i],
			Text:     ButtonText(def.Label),
		}
	}

	err := MainWindow{
		AssignTo: &mw,
		Title:    Title,
		Visible:  false,
		Layout:   VBox{MarginsZero: true, SpacingZero: true},
		Children: []Widget{
			Composite{
				AssignTo: &surface,
				Layout: VBox{
					Margins: Margins{Left: MarginX, Top: MarginY, Right: MarginX, Bottom: MarginY},
					Spacing: ButtonSpacing,
				},
				Children: children,
				ContextMenuItems: []MenuItem{
					Action{
						Text: CloseActionText,
						OnTriggered: func() {
							log.Debug("Close requested from context menu")
							_ = mw.Close()
						},
					},
				},
			},
		},
	}.Create()
	if err != nil {
		return fmt.Errorf("failed to create panel window: %w", err)
	}

	window := client.HandleWindow(mw.Handle())

	if err := present(&walkFrame{
		client:  client,
		mw:      mw,
		surface: surface,
		buttons: pushButtons,
		window:  window,
	}, log); err != nil {
		mw.Dispose()
		return err
	}

	clickables := make([]interfaces.Clickable, len(pushButtons))
	for i, pb := range pushButtons {
		clickables[i] = pushButton{pb}
	}

	if err := p.Bind(window, compositeSurface{surface}, clickables); err != nil {
		mw.Dispose()
		return fmt.Errorf("failed to bind panel: %w", err)
	}

	done := make(chan struct{})
	requestClose := func() {
		mw.Synchronize(func() {
			_ = mw.Close()
		})
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go forwardShutdown(sigChan, done, requestClose, timeouts.ShutdownGrace, os.Exit, log)

	// Closing the console window ends the process shortly after the handler returns
	if err := windows.WatchConsole(func(ctrlType uint32) bool {
		log.Debug("Received console control event",
			slog.String("type", windows.GetCtrlTypeName(ctrlType)),
			slog.Uint64("code", uint64(ctrlType)),
		)

		if !windows.EndsSession(ctrlType) {
			return false
		}

		requestClose()
		return waitClosed(done, timeouts.ConsoleCloseGrace)
	}); err != nil {
		log.Warn("Could not watch console events", slog.Any("error", err))
	}

	log.Debug("Panel window ready", slog.Int("buttons", len(defs)))

	code := mw.Run()
	close(done)

	log.Debug("Panel window closed", slog.Int("code", code))

	return nil
}

// walkFrame applies the panel decoration to a walk main window
type walkFrame struct {
	client  *windows.Client
	mw      *walk.MainWindow
	surface *walk.Composite
	buttons []*walk.PushButton
	window  *windows.Window
}

func (f *walkFrame) StripFrame() error {
	return f.client.Window.StripFrame(f.mw.Handle())
}

func (f *walkFrame) ClearTabStops() {
	for _, pb := range f.buttons {
		f.client.Window.ClearTabStop(pb.Handle())
	}
}

func (f *walkFrame) ContentSize() windows.Size {
	hint := f.surface.MinSizeHint()
	return windows.Size{Width: hint.Width, Height: hint.Height}
}

func (f *walkFrame) Resize(size windows.Size) error {
	return f.client.Window.Resize(f.mw.Handle(), size)
}

func (f *walkFrame) WorkArea() windows.Rect {
	return f.client.Window.PrimaryWorkArea()
}

func (f *walkFrame) MoveTo(pos windows.Point) {
	f.window.MoveTo(pos)
}

func (f *walkFrame) SetTopmost() error {
	return f.client.Window.SetTopmost(f.mw.Handle())
}

func (f *walkFrame) Show() {
	f.mw.Show()
}

// compositeSurface reports mouse events on the panel background
type compositeSurface struct {
	c *walk.Composite
}

func (s compositeSurface) OnPress(handler func(at windows.Point)) {
	s.c.MouseDown().Attach(func(x, y int, button walk.MouseButton) {
		if button == walk.LeftButton {
			handler(windows.Point{X: x, Y: y})
		}
	})
}

func (s compositeSurface) OnMove(handler func(at windows.Point, primaryHeld bool)) {
	s.c.MouseMove().Attach(func(x, y int, button walk.MouseButton) {
		handler(windows.Point{X: x, Y: y}, button&walk.LeftButton != 0)
	})
}

// pushButton reports clicks on a walk push button
type pushButton struct {
	b *walk.PushButton
}

func (p pushButton) OnClick(handler func()) {
	p.b.Clicked().Attach(handler)
}
