package product

import "errors"

var (
	ErrNotFound     = errors.New("product not found")
	ErrInvalidInput = errors.New("invalid product data")

	// ErrUnknownPiece is returned when a BOM line references a piece id
	// that does not exist.
	ErrUnknownPiece = errors.New("unknown piece")

	// ErrInvalidCSV is returned for cut-list files that cannot be parsed:
	// bad encoding, missing columns or non-positive values.
	ErrInvalidCSV = errors.New("invalid CSV file")
)
