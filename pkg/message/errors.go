package message

import "errors"

var (
	ErrEmptyMessageID  = errors.New("message: message id cannot be empty")
	ErrInvalidResource = errors.New("message: invalid resource document")
)
