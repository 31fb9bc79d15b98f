package storage

import "errors"

// ErrSchemaMissing is returned by VerifySchema when a seed table does not exist.
var ErrSchemaMissing = errors.New("storage: seed table missing")
