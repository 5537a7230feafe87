package product

import (
	"context"

	"github.com/IgorBayerl/garden-erp/internal/model"
	"github.com/IgorBayerl/garden-erp/internal/product/dto"
)

// Repository persists products and their BOM lines. Every read returns
// fully materialized BOM lines (piece included) so callers never traverse
// the relation themselves.
type Repository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id int) (*model.Product, error)
	FindAll(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id int) error

	// RegisterWithPieces creates a product together with its pieces in one
	// transaction, reusing pieces that already exist with the same name and
	// dimensions. This is the CSV-import path.
	RegisterWithPieces(ctx context.Context, name string, image *string, lines []dto.PieceLine) (*model.Product, error)
}
