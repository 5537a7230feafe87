package order

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest marks client mistakes: missing or non-positive fields,
// unknown enum values, bad sort keys. Wrapped errors carry the detail.
var ErrInvalidRequest = errors.New("invalid request")

// ProductNotFoundError reports the first requested product id that does
// not exist. The whole calculation is aborted; no partial result is kept.
type ProductNotFoundError struct {
	ID int
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product with id %d not found", e.ID)
}
