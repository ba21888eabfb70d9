package errors

import "errors"

var (
	ErrNotSupplier    = errors.New("not a supplier")
	ErrItemNotFound   = errors.New("item not found")
	ErrItemNotForSale = errors.New("not for sale")
	ErrNotPaidEnough  = errors.New("not paid enough")
	ErrInvalidItem    = errors.New("invalid item")
)
