package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/clippanel/internal/config"
	"github.com/Norgate-AV/clippanel/internal/interfaces"
	"github.com/Norgate-AV/clippanel/internal/logger"
	"github.com/Norgate-AV/clippanel/internal/panel"
	"github.com/Norgate-AV/clippanel/internal/testutil"
	"github.com/Norgate-AV/clippanel/internal/version"
)

func init() {
	color.NoColor = true
}

// resetFlags resets all flags to their default values between tests
func resetFlags() {
	_ = RootCmd.PersistentFlags().Set("verbose", "false")
	_ = RootCmd.PersistentFlags().Set("log-dir", "")

	// cobra adds these on first Execute and they stay set on RootCmd
	_ = RootCmd.Flags().Set("help", "false")
	_ = RootCmd.Flags().Set("version", "false")
}

// newTestCommand returns a command carrying the same flags as RootCmd
func newTestCommand(args ...string) *cobra.Command {
	cmd := &cobra.Command{Use: "clippanel <config-file>"}
	cmd.PersistentFlags().BoolP("verbose", "V", false, "enable verbose output")
	cmd.PersistentFlags().String("log-dir", "", "log directory")
	_ = cmd.ParseFlags(args)

	return cmd
}

// fakeRun records what the window would have received and clicks buttons
type fakeRun struct {
	panel  *panel.Panel
	clicks []int
	err    error
}

func (f *fakeRun) run(p *panel.Panel, log logger.LoggerInterface) error {
	f.panel = p

	buttons := testutil.NewMockClickables(len(p.Buttons()))
	clickables := make([]interfaces.Clickable, len(buttons))
	for i, b := range buttons {
		clickables[i] = b
	}

	if err := p.Bind(testutil.NewMockWindow(), testutil.NewMockPointerSurface(), clickables); err != nil {
		return err
	}

	for _, i := range f.clicks {
		buttons[i].Click()
	}

	return f.err
}

func testDeps(clip *testutil.MockClipboard, run *fakeRun, stdout, console *bytes.Buffer) Dependencies {
	return Dependencies{
		Clipboard: func() interfaces.ClipboardSink { return clip },
		RunWindow: run.run,
		Stdout:    stdout,
		Console:   console,
	}
}

func TestValidateArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		args      []string
		expectErr string
	}{
		{name: "single file", args: []string{"buttons.properties"}},
		{name: "any extension", args: []string{"buttons.txt"}},
		{name: "too many", args: []string{"a.properties", "b.properties"}, expectErr: "accepts 1 arg(s), received 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateArgs(newTestCommand(), tt.args)
			if tt.expectErr == "" {
				assert.NoError(t, err)
				return
			}

			assert.ErrorContains(t, err, tt.expectErr)
		})
	}
}

func TestValidateArgs_MissingArgument(t *testing.T) {
	t.Parallel()

	err := validateArgs(newTestCommand(), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrUsage)
	assert.Equal(t, "usage: clippanel <config-file> [flags]", err.Error())
}

func TestNewConfigFromFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		args            []string
		expectedVerbose bool
		expectedLogDir  string
	}{
		{name: "no flags", args: []string{}},
		{name: "verbose short", args: []string{"-V"}, expectedVerbose: true},
		{name: "verbose long", args: []string{"--verbose"}, expectedVerbose: true},
		{name: "log dir", args: []string{"--log-dir", "logs"}, expectedLogDir: "logs"},
		{name: "all flags", args: []string{"-V", "--log-dir=out"}, expectedVerbose: true, expectedLogDir: "out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfigFromFlags(newTestCommand(tt.args...))

			assert.Equal(t, tt.expectedVerbose, cfg.Verbose, "Verbose flag mismatch")
			assert.Equal(t, tt.expectedLogDir, cfg.LogDir, "LogDir flag mismatch")
		})
	}
}

func TestExecuteWith_PressesReachStdout(t *testing.T) {
	t.Parallel()

	path := testutil.WriteConfigFile(t, `button10.label=Ten
button10.text=ten
button2.label=Two
button2.text=two
button1.label=One
button1.text=one
button5.label=Orphan
`)

	clip := testutil.NewMockClipboard()
	run := &fakeRun{clicks: []int{0, 2, 0}}
	var stdout, console bytes.Buffer

	err := ExecuteWith(newTestCommand(), []string{path}, testDeps(clip, run, &stdout, &console))
	require.NoError(t, err)

	require.NotNil(t, run.panel)
	assert.Equal(t, []panel.ButtonDefinition{
		{Index: 1, Label: "One", Payload: "one"},
		{Index: 2, Label: "Two", Payload: "two"},
		{Index: 10, Label: "Ten", Payload: "ten"},
	}, run.panel.Buttons())

	assert.Equal(t, []string{"one", "ten", "one"}, clip.SetTextCalls)

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 3)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} \| One pressed \| count: 1$`, lines[0])
	assert.Regexp(t, `\| Ten pressed \| count: 1$`, lines[1])
	assert.Regexp(t, `\| One pressed \| count: 2$`, lines[2])

	assert.NotContains(t, console.String(), "pressed", "Diagnostics never go to stdout's stream")
}

func TestExecuteWith_MissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.properties")
	run := &fakeRun{}

	err := ExecuteWith(newTestCommand(), []string{path}, testDeps(testutil.NewMockClipboard(), run, &bytes.Buffer{}, &bytes.Buffer{}))

	var notFound *config.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, err.Error(), path)
	assert.Nil(t, run.panel, "No window for a missing file")
}

func TestExecuteWith_MalformedFile(t *testing.T) {
	t.Parallel()

	path := testutil.WriteConfigFile(t, `button1.label=\uZZZZ`)
	run := &fakeRun{}

	err := ExecuteWith(newTestCommand(), []string{path}, testDeps(testutil.NewMockClipboard(), run, &bytes.Buffer{}, &bytes.Buffer{}))

	var readErr *config.ReadError
	require.ErrorAs(t, err, &readErr)
	assert.Contains(t, err.Error(), "error reading properties file")
	assert.Nil(t, run.panel)
}

func TestExecuteWith_NoArgs(t *testing.T) {
	t.Parallel()

	run := &fakeRun{}

	err := ExecuteWith(newTestCommand(), nil, testDeps(testutil.NewMockClipboard(), run, &bytes.Buffer{}, &bytes.Buffer{}))

	assert.ErrorIs(t, err, config.ErrUsage)
	assert.Nil(t, run.panel)
}

func TestExecuteWith_EmptyConfigWarns(t *testing.T) {
	t.Parallel()

	path := testutil.WriteConfigFile(t, "title=nothing here\n")
	run := &fakeRun{}
	var console bytes.Buffer

	err := ExecuteWith(newTestCommand(), []string{path}, testDeps(testutil.NewMockClipboard(), run, &bytes.Buffer{}, &console))
	require.NoError(t, err)

	require.NotNil(t, run.panel)
	assert.Empty(t, run.panel.Buttons())
	assert.Contains(t, console.String(), "WARNING: No complete buttonN.label/buttonN.text pairs found")
}

func TestExecuteWith_WindowError(t *testing.T) {
	t.Parallel()

	path := testutil.WriteConfigFile(t, "button1.label=A\nbutton1.text=a\n")
	run := &fakeRun{err: errors.New("window failed")}

	err := ExecuteWith(newTestCommand(), []string{path}, testDeps(testutil.NewMockClipboard(), run, &bytes.Buffer{}, &bytes.Buffer{}))

	assert.EqualError(t, err, "window failed")
}

func TestExecuteWith_RecoversPanic(t *testing.T) {
	t.Parallel()

	path := testutil.WriteConfigFile(t, "button1.label=A\nbutton1.text=a\n")
	var console bytes.Buffer

	deps := Dependencies{
		Clipboard: func() interfaces.ClipboardSink { return testutil.NewMockClipboard() },
		RunWindow: func(*panel.Panel, logger.LoggerInterface) error { panic("boom") },
		Stdout:    &bytes.Buffer{},
		Console:   &console,
	}

	var err error
	assert.NotPanics(t, func() {
		err = ExecuteWith(newTestCommand(), []string{path}, deps)
	})

	assert.EqualError(t, err, "panic: boom")
	assert.Contains(t, console.String(), "*** PANIC: boom ***")
}

func TestExecuteWith_VerboseAndLogDir(t *testing.T) {
	t.Parallel()

	path := testutil.WriteConfigFile(t, "button1.label=A\nbutton1.text=a\n")
	logDir := filepath.Join(t.TempDir(), "logs")
	var console bytes.Buffer

	cmd := newTestCommand("--verbose", "--log-dir", logDir)
	err := ExecuteWith(cmd, []string{path}, testDeps(testutil.NewMockClipboard(), &fakeRun{clicks: []int{0}}, &bytes.Buffer{}, &console))
	require.NoError(t, err)

	assert.Contains(t, console.String(), "VERBOSE: Configuration loaded")

	data, err := os.ReadFile(filepath.Join(logDir, logger.LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Button pressed")
	assert.Contains(t, string(data), "label=A")
}

// TestRootCmd_Version tests --version flag
func TestRootCmd_Version(t *testing.T) {
	resetFlags()

	output := captureCommandOutput(t, []string{"--version"})

	assert.Contains(t, output, version.GetVersion(), "Should print version information")
}

// TestRootCmd_Help tests --help flag
func TestRootCmd_Help(t *testing.T) {
	resetFlags()

	output := captureCommandOutput(t, []string{"--help"})

	assert.Contains(t, output, "clippanel <config-file>", "Should show usage")
	assert.Contains(t, output, "copy text to the clipboard", "Should show description")
	assert.Contains(t, output, "--verbose", "Should list verbose flag")
	assert.Contains(t, output, "--log-dir", "Should list log-dir flag")
}

// TestRootCmd_InvalidFlag tests behavior with unknown flags
func TestRootCmd_InvalidFlag(t *testing.T) {
	resetFlags()

	var stderr bytes.Buffer
	RootCmd.SetErr(&stderr)
	defer RootCmd.SetErr(nil)

	RootCmd.SetArgs([]string{"--invalid-flag", "buttons.properties"})
	err := RootCmd.Execute()

	assert.Error(t, err, "Should return error for invalid flag")
	assert.Contains(t, stderr.String(), "unknown flag")
}

// TestRootCmd_NoArgs tests that a missing argument is reported before anything runs
func TestRootCmd_NoArgs(t *testing.T) {
	resetFlags()

	var stderr bytes.Buffer
	RootCmd.SetErr(&stderr)
	defer RootCmd.SetErr(nil)

	RootCmd.SetArgs([]string{})
	err := RootCmd.Execute()

	assert.ErrorIs(t, err, config.ErrUsage)
	assert.Contains(t, stderr.String(), "usage: clippanel <config-file> [flags]")
}

// TestRootCmd_NoArgsAfterHelp tests that an earlier --help run does not leak into later runs
func TestRootCmd_NoArgsAfterHelp(t *testing.T) {
	resetFlags()

	for _, first := range [][]string{{"--help"}, {"--version"}} {
		_ = captureCommandOutput(t, first)
		resetFlags()

		var stderr bytes.Buffer
		RootCmd.SetErr(&stderr)

		RootCmd.SetArgs([]string{})
		err := RootCmd.Execute()

		RootCmd.SetErr(nil)

		assert.ErrorIs(t, err, config.ErrUsage, "after %v", first)
		assert.Contains(t, stderr.String(), "usage: clippanel <config-file> [flags]", "after %v", first)
	}
}

// Helper function to capture command output
func captureCommandOutput(_ *testing.T, args []string) string {
	var buf bytes.Buffer

	RootCmd.SetOut(&buf)
	defer RootCmd.SetOut(nil)

	RootCmd.SetArgs(args)
	_ = RootCmd.Execute()

	return buf.String()
}
