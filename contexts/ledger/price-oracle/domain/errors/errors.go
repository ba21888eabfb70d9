package errors

import "errors"

var (
	ErrOracleUnavailable = errors.New("price feed unavailable")
	ErrInvalidAmount     = errors.New("invalid usd amount")
)
