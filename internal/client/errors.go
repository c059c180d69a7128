package client

import "errors"

var (
	ErrUsage              = errors.New("usage")
	ErrUnknownCommand     = errors.New("unknown command")
	ErrPasswordsDontMatch = errors.New("passwords do not match")
	ErrNothingToReveal    = errors.New("item has no revealable secret")
	ErrItemNotFound       = errors.New("item not found")
	ErrNotConfirmed       = errors.New("not confirmed")
)
