package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/clippanel/internal/clipboard"
	"github.com/Norgate-AV/clippanel/internal/config"
	"github.com/Norgate-AV/clippanel/internal/interfaces"
	"github.com/Norgate-AV/clippanel/internal/logger"
	"github.com/Norgate-AV/clippanel/internal/panel"
	"github.com/Norgate-AV/clippanel/internal/ui"
	"github.com/Norgate-AV/clippanel/internal/version"
)

// Dependencies holds the collaborators Execute wires together.
// Tests replace them to run the command without a real window or clipboard.
type Dependencies struct {
	Clipboard func() interfaces.ClipboardSink
	RunWindow func(p *panel.Panel, log logger.LoggerInterface) error
	Stdout    io.Writer
	Console   io.Writer
}

// DefaultDependencies returns the production wiring
func DefaultDependencies() Dependencies {
	return Dependencies{
		Clipboard: func() interfaces.ClipboardSink { return clipboard.NewSystem() },
		RunWindow: ui.Run,
		Stdout:    os.Stdout,
		Console:   os.Stderr,
	}
}

// RootCmd is the root command for the clippanel CLI application.
var RootCmd = &cobra.Command{
	Use:          "clippanel <config-file>",
	Short:        "clippanel - Always-on-top buttons that copy text to the clipboard",
	Long:         "clippanel shows a small borderless window with one button per buttonN.label/buttonN.text pair\nin the given properties file. Clicking a button copies its text to the clipboard.",
	Version:      version.GetVersion(),
	Args:         validateArgs,
	RunE:         Execute,
	SilenceUsage: true, // Don't show usage on runtime errors
}

func init() {
	// Set custom version template to show full version info
	RootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	RootCmd.PersistentFlags().BoolP("verbose", "V", false, "enable verbose output")
	RootCmd.PersistentFlags().String("log-dir", "", "also write rotating diagnostic logs to this directory")
}

// usageError is returned when the configuration file argument is missing
type usageError struct {
	line string
}

func (e *usageError) Error() string {
	return "usage: " + e.line
}

func (e *usageError) Unwrap() error {
	return config.ErrUsage
}

// validateArgs requires exactly one configuration file argument
func validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return &usageError{line: cmd.UseLine()}
	}

	return cobra.ExactArgs(1)(cmd, args)
}

// initializeLogger creates a logger and logs startup information
func initializeLogger(cfg *Config, console io.Writer) (logger.LoggerInterface, error) {
	log, err := logger.NewLogger(logger.LoggerOptions{
		Verbose:  cfg.Verbose,
		LogDir:   cfg.LogDir,
		Console:  console,
		Compress: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return log, nil
}

// loadButtons reads the configuration file and extracts the button definitions
func loadButtons(path string, log logger.LoggerInterface) ([]panel.ButtonDefinition, error) {
	log.Debug("Loading configuration", slog.String("path", path))

	props, err := config.Load(path)
	if err != nil {
		log.Debug("Configuration load failed", slog.Any("error", err))
		return nil, err
	}

	buttons := panel.Extract(props)

	log.Debug("Configuration loaded",
		slog.Int("properties", len(props)),
		slog.Int("buttons", len(buttons)),
	)

	if len(buttons) == 0 {
		log.Warn("No complete buttonN.label/buttonN.text pairs found", slog.String("path", path))
	}

	return buttons, nil
}

// Execute runs the provided command with the given arguments.
func Execute(cmd *cobra.Command, args []string) error {
	return ExecuteWith(cmd, args, DefaultDependencies())
}

// ExecuteWith runs the command using the supplied dependencies
func ExecuteWith(cmd *cobra.Command, args []string, deps Dependencies) (err error) {
	cfg := NewConfigFromFlags(cmd)

	if len(args) == 0 {
		return &usageError{line: cmd.UseLine()}
	}

	log, err := initializeLogger(cfg, deps.Console)
	if err != nil {
		return err
	}

	defer log.Close()

	log.Debug("Starting clippanel",
		slog.Any("args", args),
		slog.String("version", version.GetFullVersion()),
	)
	log.Debug("Flags set",
		slog.Bool("verbose", cfg.Verbose),
		slog.String("logDir", cfg.LogDir),
	)

	// Recover from panics and log them
	defer func() {
		if r := recover(); r != nil {
			log.Error("PANIC RECOVERED",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)

			fmt.Fprintf(deps.Console, "\n*** PANIC: %v ***\n", r)
			if path := log.GetLogPath(); path != "" {
				fmt.Fprintf(deps.Console, "Check log file for details: %s\n", path)
			}

			err = fmt.Errorf("panic: %v", r)
		}
	}()

	buttons, err := loadButtons(args[0], log)
	if err != nil {
		return err
	}

	p := panel.New(buttons, deps.Clipboard(), deps.Stdout, log)

	if err := deps.RunWindow(p, log); err != nil {
		log.Debug("Panel window failed", slog.Any("error", err))
		return err
	}

	log.Debug("Exiting")

	return nil
}
