package piece

import (
	"context"

	"github.com/IgorBayerl/garden-erp/internal/model"
	"github.com/IgorBayerl/garden-erp/internal/piece/dto"
)

type UseCase interface {
	CreatePiece(ctx context.Context, input *dto.CreatePieceInput) (*model.Piece, error)
	GetPiece(ctx context.Context, id int) (*model.Piece, error)
	ListPieces(ctx context.Context) ([]model.Piece, error)
	UpdatePiece(ctx context.Context, input *dto.UpdatePieceInput) (*model.Piece, error)
	DeletePiece(ctx context.Context, id int) error
}
