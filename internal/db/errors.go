package db

import "errors"

// Store errors. Repositories wrap the underlying client error with one of
// these sentinels so the service layer can classify failures with errors.Is
// without knowing the backing store.
var (
	// ErrStoreRead indicates the document store could not be read.
	ErrStoreRead = errors.New("document store read failed")
	// ErrStoreWrite indicates a write to the document store failed.
	ErrStoreWrite = errors.New("document store write failed")
)
