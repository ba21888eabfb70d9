package errors

import "errors"

var (
	ErrTokenNotFound    = errors.New("token not found")
	ErrNotTokenOwner    = errors.New("not the token owner")
	ErrInvalidRecipient = errors.New("invalid recipient")
	ErrIndexOutOfRange  = errors.New("index out of range")
)
