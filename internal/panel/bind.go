package panel

import (
	"fmt"
	"log/slog"

	"github.com/Norgate-AV/clippanel/internal/interfaces"
	"github.com/Norgate-AV/clippanel/internal/windows"
)

// Bind attaches the panel behaviour to a window. The background surface
// drives dragging and each clickable is paired with the button at the same
// position in Buttons.
func (p *Panel) Bind(win interfaces.Window, surface interfaces.PointerSurface, buttons []interfaces.Clickable) error {
	if len(buttons) != len(p.buttons) {
		return fmt.Errorf("expected %d buttons to bind, got %d", len(p.buttons), len(buttons))
	}

	surface.OnPress(func(at windows.Point) {
		p.drag.Press(at)
		p.log.Trace("Drag anchored", slog.Int("x", at.X), slog.Int("y", at.Y))
	})

	surface.OnMove(func(at windows.Point, primaryHeld bool) {
		if !primaryHeld {
			return
		}

		next, ok := p.drag.Move(win.Position(), at)
		if !ok {
			return
		}

		win.MoveTo(next)
	})

	for i, c := range buttons {
		def := p.buttons[i]

		c.OnClick(func() {
			// Already logged by Press; the UI keeps running
			_ = p.Press(def)
		})
	}

	p.log.Debug("Panel bound", slog.Int("buttons", len(buttons)))

	return nil
}
