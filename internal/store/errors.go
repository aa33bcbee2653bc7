package store

import "errors"

var (
	ErrEmptyStatement = errors.New("statement has no accounts")
	ErrExportNotFound = errors.New("export not found")
)
