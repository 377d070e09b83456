// Package objectstore pkg/objectstore/errors.go provides errors for the objectstore package.

package objectstore

import "errors"

var (
	// ErrNotFound is returned when the requested object does not exist.
	ErrNotFound = errors.New("object not found")

	errFailedToConnect = errors.New("failed to connect to object storage")
	errFailedToEnsure  = errors.New("failed to ensure bucket")
	errEmptyName       = errors.New("object name must not be empty")
	errMissingEndpoint = errors.New("object_storage config requires an endpoint")
	errMissingBucket   = errors.New("object_storage config requires a bucket")
)
