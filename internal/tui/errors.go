package tui

import "errors"

// ErrUserQuit reports that the user left the program from inside a flow.
var ErrUserQuit = errors.New("user quit")
