//go:build windows

package windows

import (
	"sync"
	"syscall"
)

var (
	kernel32DLL           = syscall.NewLazyDLL("kernel32.dll")
	setConsoleCtrlHandler = kernel32DLL.NewProc("SetConsoleCtrlHandler")

	consoleOnce     sync.Once
	consoleErr      error
	consoleMu       sync.Mutex
	consoleHandlers []func(ctrlType uint32) bool
)

// WatchConsole calls handler for console control events such as the
// console window being closed. A handler returning true marks the event
// handled; otherwise the next handler, and finally the system default, runs.
func WatchConsole(handler func(ctrlType uint32) bool) error {
	consoleMu.Lock()
	consoleHandlers = append(consoleHandlers, handler)
	consoleMu.Unlock()

	consoleOnce.Do(func() {
		ret, _, err := setConsoleCtrlHandler.Call(
			syscall.NewCallback(consoleCtrlCallback),
			1, // TRUE - add handler
		)
		if ret == 0 {
			consoleErr = err
		}
	})

	return consoleErr
}

// consoleCtrlCallback runs on a thread created by the system
func consoleCtrlCallback(ctrlType uint32) uintptr {
	consoleMu.Lock()
	handlers := make([]func(uint32) bool, len(consoleHandlers))
	copy(handlers, consoleHandlers)
	consoleMu.Unlock()

	for _, h := range handlers {
		if h(ctrlType) {
			return 1
		}
	}

	return 0 // FALSE - let default handler process it
}
