package errors

import "errors"

var (
	ErrContentNotFound = errors.New("content not found")
	ErrEmptyContent    = errors.New("empty content")
)
