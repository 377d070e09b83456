// Package graph pkg/graph/errors.go provides errors for the graph package.

package graph

import "errors"

var (
	// ErrNoPath is returned when no path exists between two users.
	ErrNoPath = errors.New("no path between users")

	errFailedToConnect = errors.New("failed to connect to graph database")
	errEmptyName       = errors.New("user name must not be empty")
	errMissingURI      = errors.New("graph config requires a uri")
	errUnexpectedType  = errors.New("unexpected result type from graph query")
)
