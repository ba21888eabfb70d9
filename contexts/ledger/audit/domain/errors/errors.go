package errors

import "errors"

var ErrEntryNotFound = errors.New("audit entry not found")
