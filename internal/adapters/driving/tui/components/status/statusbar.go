// Package status provides the status bar for the launcher overlay.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/snipdeck-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/snipdeck-cli/internal/adapters/driving/tui/styles"
)

// Bar displays position, combining-mode state and keybinding hints.
type Bar struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	position   int
	total      int
	collecting bool
	collected  int
	totalSize  int
	errMessage string
	width      int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		width:  80,
	}
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)
	padding := s.width - leftLen - rightLen
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the position and combining-mode indicator.
func (s *Bar) renderLeft() string {
	if s.errMessage != "" {
		return s.styles.Error.Render("Error: " + s.errMessage)
	}

	var parts []string
	if s.total > 0 {
		parts = append(parts, s.styles.Normal.Render(fmt.Sprintf("%d/%d", s.position+1, s.total)))
	} else {
		parts = append(parts, s.styles.Muted.Render("0/0"))
	}

	if s.collecting {
		parts = append(parts, s.styles.Collecting.Render(
			fmt.Sprintf("[collecting %d, %d bytes]", s.collected, s.totalSize),
		))
	}

	return strings.Join(parts, " ")
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	bindings := s.keymap.ShortHelp()

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Help.Render(strings.Join(hints, " | "))
}

// SetPosition sets the 0-based cursor position and result total.
func (s *Bar) SetPosition(position, total int) {
	s.position = position
	s.total = total
}

// SetCollecting sets the combining-mode display values.
func (s *Bar) SetCollecting(collecting bool, collected, totalSize int) {
	s.collecting = collecting
	s.collected = collected
	s.totalSize = totalSize
}

// Collecting reports whether combining mode is shown.
func (s *Bar) Collecting() bool {
	return s.collecting
}

// SetError sets an error message, overriding the position display.
func (s *Bar) SetError(message string) {
	s.errMessage = message
}

// ClearError removes the error message.
func (s *Bar) ClearError() {
	s.errMessage = ""
}

// Error returns the current error message.
func (s *Bar) Error() string {
	return s.errMessage
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}
