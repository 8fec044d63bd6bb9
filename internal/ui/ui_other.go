//go:build !windows

package ui

import (
	"log/slog"
	"runtime"

	"github.com/Norgate-AV/clippanel/internal/logger"
	"github.com/Norgate-AV/clippanel/internal/panel"
)

// Run reports that the panel window cannot be shown on this platform
func Run(p *panel.Panel, log logger.LoggerInterface) error {
	log.Debug("No window toolkit for platform",
		slog.String("os", runtime.GOOS),
		slog.Int("buttons", len(p.Buttons())),
	)

	return ErrUnsupportedPlatform
}
