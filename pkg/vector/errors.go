// Package vector pkg/vector/errors.go provides errors for the vector package.

package vector

import "errors"

var (
	errFailedToConnect = errors.New("failed to connect to vector database")
	errFailedToEnsure  = errors.New("failed to ensure collection")
	errEmptyDocumentID = errors.New("document id must not be empty")
	errEmptyText       = errors.New("document text must not be empty")
	errMissingHost     = errors.New("vector config requires a host")
)
