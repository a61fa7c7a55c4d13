package service

import "errors"

// ErrEmptyText is returned by CreateCard when the input is empty or blank
// after trimming.
var ErrEmptyText = errors.New("text must not be empty")
