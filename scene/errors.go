package scene

import (
	"errors"

	"glscene/common"
)

var (
	ErrClosed        = errors.New("scene: panel closed")
	ErrNotInvertible = common.ErrNotInvertible
)
