// Package columnar pkg/columnar/errors.go provides errors for the columnar package.

package columnar

import "errors"

var (
	// ErrUnknownQuery is returned for an unrecognized analytics query kind.
	ErrUnknownQuery = errors.New("unknown analytics query")

	// ErrInvalidSale is returned when a sale is missing required fields.
	ErrInvalidSale = errors.New("sale requires a product name, category, and region")

	errFailedOpenDB   = errors.New("failed to open database")
	errFailedToInit   = errors.New("failed to initialize schema")
	errFailedToInsert = errors.New("failed to insert")
	errFailedToQuery  = errors.New("failed to query")
	errFailedToScan   = errors.New("failed to scan")
	errMissingDBPath  = errors.New("columnar config requires a db_path")
)
