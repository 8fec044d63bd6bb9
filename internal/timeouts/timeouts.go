// Package timeouts defines timeout and delay constants for window lifecycle operations.
package timeouts

import "time"

const (
	// ShutdownGrace is how long a shutdown request waits for the window
	// to close on the UI thread before the process exits regardless.
	ShutdownGrace = 3 * time.Second

	// ConsoleCloseGrace bounds the wait inside a console close handler.
	// The system terminates the process a few seconds after the console
	// window is closed, so this must stay below that limit.
	ConsoleCloseGrace = 2 * time.Second
)
