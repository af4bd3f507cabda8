package app

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrTextTooLong     = errors.New("text too long")
	ErrUnknownModel    = errors.New("unknown model")
	ErrHistoryDisabled = errors.New("history store unavailable")
)
