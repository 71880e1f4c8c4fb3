package catalog

import "errors"

var (
	ErrNotFound        = errors.New("book not found")
	ErrAlreadyExists   = errors.New("book already exists")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOverrun         = errors.New("watcher overrun")
	ErrUnavailable     = errors.New("catalog unavailable")
)
