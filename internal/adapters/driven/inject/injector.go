package inject

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/custodia-labs/snipdeck-cli/internal/core/ports/driven"
	"github.com/custodia-labs/snipdeck-cli/internal/logger"
)

// Operating system identifiers.
const (
	osDarwin  = "darwin"
	osLinux   = "linux"
	osWindows = "windows"
)

// Ensure implementations satisfy the interface.
var _ driven.Injector = (*CommandInjector)(nil)
var _ driven.Injector = (*ClipboardInjector)(nil)

// CommandInjector pipes the payload to a user-configured shell command
// on stdin, e.g. "xdotool type --file -" or "wl-copy".
type CommandInjector struct {
	command string
}

// NewCommandInjector creates an injector for the given shell command.
func NewCommandInjector(command string) *CommandInjector {
	return &CommandInjector{command: command}
}

// Inject runs the configured command with the payload on stdin.
func (i *CommandInjector) Inject(ctx context.Context, payload string, itemCount int) error {
	if strings.TrimSpace(i.command) == "" {
		return fmt.Errorf("injector command is empty")
	}

	logger.Debug("Injecting %d item(s) via command: %s", itemCount, i.command)

	cmd := exec.CommandContext(ctx, "sh", "-c", i.command)
	cmd.Stdin = strings.NewReader(payload)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("injector command failed: %w (%s)", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// ClipboardInjector copies the payload to the system clipboard using
// OS-specific commands.
type ClipboardInjector struct{}

// NewClipboardInjector creates a clipboard-backed injector.
func NewClipboardInjector() *ClipboardInjector {
	return &ClipboardInjector{}
}

// Inject copies the payload to the clipboard.
func (i *ClipboardInjector) Inject(ctx context.Context, payload string, itemCount int) error {
	logger.Debug("Copying %d item(s) to clipboard", itemCount)

	cmd, err := clipboardCommand(ctx)
	if err != nil {
		return err
	}

	cmd.Stdin = strings.NewReader(payload)
	return cmd.Run()
}

// clipboardCommand picks the platform clipboard utility.
func clipboardCommand(ctx context.Context) (*exec.Cmd, error) {
	switch runtime.GOOS {
	case osDarwin:
		return exec.CommandContext(ctx, "pbcopy"), nil
	case osLinux:
		// Try xclip first, fall back to xsel
		if _, err := exec.LookPath("xclip"); err == nil {
			return exec.CommandContext(ctx, "xclip", "-selection", "clipboard"), nil
		}
		if _, err := exec.LookPath("xsel"); err == nil {
			return exec.CommandContext(ctx, "xsel", "--clipboard", "--input"), nil
		}
		return nil, fmt.Errorf("no clipboard utility found (install xclip or xsel)")
	case osWindows:
		return exec.CommandContext(ctx, "cmd", "/c", "clip"), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}
