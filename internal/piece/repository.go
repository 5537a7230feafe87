package piece

import (
	"context"

	"github.com/IgorBayerl/garden-erp/internal/model"
	"github.com/IgorBayerl/garden-erp/internal/piece/dto"
)

type Repository interface {
	Create(ctx context.Context, piece *model.Piece) error
	FindByID(ctx context.Context, id int) (*model.Piece, error)
	FindAll(ctx context.Context) ([]model.Piece, error)
	Update(ctx context.Context, piece *model.Piece) error
	Delete(ctx context.Context, id int) error

	// FindRelatedProducts lists the products whose BOM references the piece,
	// used to refuse deletes that would orphan BOM lines.
	FindRelatedProducts(ctx context.Context, pieceID int) ([]dto.RelatedProduct, error)
}
