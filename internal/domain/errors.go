package domain

import "errors"

// ErrNotFound distingue ausencia de registro de una falla de transporte.
var ErrNotFound = errors.New("not found")
