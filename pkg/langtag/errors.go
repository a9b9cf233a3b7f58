package langtag

import "errors"

var (
	ErrEmptyTag   = errors.New("langtag: tag cannot be empty")
	ErrInvalidTag = errors.New("langtag: invalid language tag")
)
