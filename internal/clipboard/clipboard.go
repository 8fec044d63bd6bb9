// Package clipboard places button payloads on the system clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/Norgate-AV/clippanel/internal/interfaces"
)

// System writes to the operating system clipboard
type System struct {
	write func(string) error
	read  func() (string, error)
}

var _ interfaces.ClipboardSink = (*System)(nil)

// NewSystem returns a sink backed by the platform clipboard
func NewSystem() *System {
	return &System{
		write: clipboard.WriteAll,
		read:  clipboard.ReadAll,
	}
}

// SetText replaces the clipboard contents with text
func (s *System) SetText(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}

	if err := s.write(text); err != nil {
		return fmt.Errorf("clipboard write: %w", err)
	}

	return nil
}

// Text returns the current clipboard contents
func (s *System) Text() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnsupported
	}

	text, err := s.read()
	if err != nil {
		return "", fmt.Errorf("clipboard read: %w", err)
	}

	return text, nil
}
