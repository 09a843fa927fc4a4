package tui

import "errors"

// ErrMissingSession is returned when the launcher session is not provided.
var ErrMissingSession = errors.New("tui: launcher session is required")
