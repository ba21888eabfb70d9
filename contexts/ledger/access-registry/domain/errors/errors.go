package errors

import "errors"

var (
	ErrNotAdmin         = errors.New("not an admin")
	ErrInvalidAddress   = errors.New("invalid address")
	ErrInvalidSupplier  = errors.New("invalid supplier record")
	ErrSupplierNotFound = errors.New("supplier not found")
)
