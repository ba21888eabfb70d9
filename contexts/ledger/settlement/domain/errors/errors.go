package errors

import "errors"

// ErrInvalidPurchase covers malformed purchase input: a null buyer address
// or a missing payment amount.
var ErrInvalidPurchase = errors.New("invalid purchase")
