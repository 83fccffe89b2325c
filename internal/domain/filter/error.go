package filter

import (
	"errors"
)

var (
	ErrInvalidMonth = errors.New("invalid month")
)
