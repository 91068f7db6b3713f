package db

import "errors"

// ErrKeyNotFound signals a missing key in a key-value store.
var ErrKeyNotFound = errors.New("db: key not found")

// Op constants name store operations for error context.
const (
	OpPing     = "PING"
	OpScan     = "SCAN"
	OpJSONGet  = "JSON.GET"
	OpJSONSet  = "JSON.SET"
	OpQuery    = "QUERY"
	OpExec     = "EXEC"
	OpReadFile = "READ"
	OpWrite    = "WRITE"
	OpReadDir  = "READDIR"
	OpMigrate  = "MIGRATE"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
