package piece

import (
	"errors"
	"fmt"

	"github.com/IgorBayerl/garden-erp/internal/piece/dto"
)

var (
	ErrNotFound     = errors.New("piece not found")
	ErrInvalidInput = errors.New("invalid piece data")
)

// InUseError is returned when a piece cannot be deleted because products
// still reference it. It carries the referencing products for the client.
type InUseError struct {
	RelatedProducts []dto.RelatedProduct
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("piece is referenced by %d product(s)", len(e.RelatedProducts))
}
