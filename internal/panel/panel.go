package panel

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Norgate-AV/clippanel/internal/interfaces"
	"github.com/Norgate-AV/clippanel/internal/logger"
)

// TimestampLayout is the local time format used on press lines
const TimestampLayout = "2006-01-02 15:04:05"

// ClipboardError reports that a button payload could not be placed on the clipboard
type ClipboardError struct {
	Label string
	Err   error
}

func (e *ClipboardError) Error() string {
	return fmt.Sprintf("failed to copy %q to clipboard: %v", e.Label, e.Err)
}

func (e *ClipboardError) Unwrap() error {
	return e.Err
}

// Panel owns the button definitions and the state behind them
type Panel struct {
	buttons []ButtonDefinition
	counter *PressCounter
	drag    *DragTracker
	sink    interfaces.ClipboardSink
	out     io.Writer
	log     logger.LoggerInterface
	now     func() time.Time
}

// Option customises a Panel
type Option func(*Panel)

// WithClock replaces the clock used for press line timestamps
func WithClock(now func() time.Time) Option {
	return func(p *Panel) {
		p.now = now
	}
}

// New creates a panel for the given buttons. Press lines are written to out.
func New(buttons []ButtonDefinition, sink interfaces.ClipboardSink, out io.Writer, log logger.LoggerInterface, opts ...Option) *Panel {
	counter := NewPressCounter()
	for _, b := range buttons {
		counter.Seed(b.Label)
	}

	p := &Panel{
		buttons: buttons,
		counter: counter,
		drag:    &DragTracker{},
		sink:    sink,
		out:     out,
		log:     log,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Buttons returns the definitions in display order
func (p *Panel) Buttons() []ButtonDefinition {
	return p.buttons
}

// Counter returns the press counter
func (p *Panel) Counter() *PressCounter {
	return p.counter
}

// Drag returns the drag tracker for the panel background
func (p *Panel) Drag() *DragTracker {
	return p.drag
}

// Press copies the payload of def to the clipboard, counts the press
// and writes the press line. Nothing is counted when the copy fails.
func (p *Panel) Press(def ButtonDefinition) error {
	if err := p.sink.SetText(def.Payload); err != nil {
		p.log.Error("Clipboard write failed",
			slog.String("label", def.Label),
			slog.Any("error", err),
		)

		return &ClipboardError{Label: def.Label, Err: err}
	}

	count := p.counter.Increment(def.Label)
	line := FormatPressLine(p.now(), def.Label, count)

	if _, err := io.WriteString(p.out, line+"\n"); err != nil {
		p.log.Warn("Failed to write press line", slog.Any("error", err))
	}

	p.log.Debug("Button pressed",
		slog.Int("index", def.Index),
		slog.String("label", def.Label),
		slog.Int("count", count),
	)

	return nil
}

// FormatPressLine renders one stdout line for a successful press
func FormatPressLine(at time.Time, label string, count int) string {
	return fmt.Sprintf("%s | %s pressed | count: %d", at.Format(TimestampLayout), label, count)
}
