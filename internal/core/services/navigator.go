package services

// WindowNavigator tracks a selection cursor and a visible-window
// offset over a ranked list whose length can change between calls.
// It is a pure position-tracking structure: it has no view of the
// list itself, only the length it was last bound to, and it cannot
// detect list identity changes. Callers must Rebind whenever the
// underlying list changes.
type WindowNavigator struct {
	windowSize  int
	windowStart int
	cursor      int
	length      int
}

// NewWindowNavigator creates a navigator with a fixed window size.
// Sizes below 1 are clamped to 1.
func NewWindowNavigator(windowSize int) *WindowNavigator {
	if windowSize < 1 {
		windowSize = 1
	}
	return &WindowNavigator{windowSize: windowSize}
}

// Rebind binds the navigator to a list of the given length and resets
// the window and cursor to the top.
func (n *WindowNavigator) Rebind(length int) {
	if length < 0 {
		length = 0
	}
	n.length = length
	n.windowStart = 0
	n.cursor = 0
}

// Length returns the currently bound list length.
func (n *WindowNavigator) Length() int {
	return n.length
}

// WindowSize returns the configured window size.
func (n *WindowNavigator) WindowSize() int {
	return n.windowSize
}

// GlobalIndex returns the absolute index of the selection in the full
// list. Undefined (0) when the bound length is zero.
func (n *WindowNavigator) GlobalIndex() int {
	return n.windowStart + n.cursor
}

// CursorRow returns the selected row within the visible window.
func (n *WindowNavigator) CursorRow() int {
	return n.cursor
}

// Window returns the [start, end) bounds of the visible slice,
// clamped to the bound length.
func (n *WindowNavigator) Window() (start, end int) {
	start = n.windowStart
	end = n.windowStart + n.windowSize
	if end > n.length {
		end = n.length
	}
	return start, end
}

// MoveDown advances the selection by one row. At the bottom of the
// window it slides the window down for a continuous-scroll feel; at
// the end of the list it wraps to the top.
func (n *WindowNavigator) MoveDown() {
	if n.length == 0 {
		return
	}

	visible := n.length - n.windowStart
	if visible > n.windowSize {
		visible = n.windowSize
	}

	if n.cursor+1 < visible {
		n.cursor++
		return
	}
	if n.windowStart+n.windowSize < n.length {
		n.windowStart++
		return
	}

	n.windowStart = 0
	n.cursor = 0
}

// MoveUp is the mirror of MoveDown: retreat within the window, slide
// the window up, or wrap to the bottom of the list.
func (n *WindowNavigator) MoveUp() {
	if n.length == 0 {
		return
	}

	if n.cursor > 0 {
		n.cursor--
		return
	}
	if n.windowStart > 0 {
		n.windowStart--
		return
	}

	n.windowStart = n.length - n.windowSize
	if n.windowStart < 0 {
		n.windowStart = 0
	}
	n.cursor = n.length - 1 - n.windowStart
	if n.cursor > n.windowSize-1 {
		n.cursor = n.windowSize - 1
	}
}
