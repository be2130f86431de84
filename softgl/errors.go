package softgl

import "errors"

var (
	ErrUnknownList = errors.New("softgl: unknown display list")
	ErrOutOfBounds = errors.New("softgl: pixel outside frame buffer")
)
