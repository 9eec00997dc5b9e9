package sqrterr

import "errors"

// Errors returned by the verifier.
var (
	ErrNilTables = errors.New("sqrterr: tables are nil")
	ErrWorkers   = errors.New("sqrterr: worker count must not be negative")
)
