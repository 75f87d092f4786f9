package domain

import "errors"

var (
	ErrMissingMapKey = errors.New("mapKey is required to sort non-string items")
	ErrInvalidLocale = errors.New("invalid locale")
)
