package inject

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/custodia-labs/snipdeck-cli/internal/core/ports/driven"
	"github.com/custodia-labs/snipdeck-cli/internal/logger"
)

// Ensure implementations satisfy the interface.
var _ driven.Notifier = (*DesktopNotifier)(nil)
var _ driven.Notifier = (*NopNotifier)(nil)

// DesktopNotifier shows a desktop notification through the platform
// notification tool.
type DesktopNotifier struct{}

// NewDesktopNotifier creates a platform desktop notifier.
func NewDesktopNotifier() *DesktopNotifier {
	return &DesktopNotifier{}
}

// Notify shows a short desktop notification.
func (n *DesktopNotifier) Notify(ctx context.Context, title, message string) error {
	logger.Debug("Notifying: %s - %s", title, message)

	switch runtime.GOOS {
	case osDarwin:
		script := fmt.Sprintf("display notification %q with title %q", message, title)
		return exec.CommandContext(ctx, "osascript", "-e", script).Run()
	case osLinux:
		if _, err := exec.LookPath("notify-send"); err != nil {
			return fmt.Errorf("no notification utility found (install notify-send)")
		}
		return exec.CommandContext(ctx, "notify-send", title, message).Run()
	default:
		return fmt.Errorf("notifications not supported on %s", runtime.GOOS)
	}
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

// NewNopNotifier creates a notifier that does nothing.
func NewNopNotifier() *NopNotifier {
	return &NopNotifier{}
}

// Notify discards the message.
func (n *NopNotifier) Notify(_ context.Context, _, _ string) error {
	return nil
}
