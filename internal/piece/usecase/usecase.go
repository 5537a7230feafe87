package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IgorBayerl/garden-erp/internal/model"
	"github.com/IgorBayerl/garden-erp/internal/piece"
	"github.com/IgorBayerl/garden-erp/internal/piece/dto"
	"github.com/IgorBayerl/garden-erp/pkg/cache"
	"github.com/IgorBayerl/garden-erp/pkg/logger"
	"go.uber.org/zap"
)

const listCacheKey = "pieces:list"

type pieceUseCase struct {
	repo     piece.Repository
	cache    *cache.RedisClient
	cacheTTL time.Duration
	logger   logger.Logger
}

func NewPieceUseCase(repo piece.Repository, cache *cache.RedisClient, cacheTTL time.Duration, log logger.Logger) piece.UseCase {
	return &pieceUseCase{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   log,
	}
}

func validatePieceFields(name string, sizeX, sizeY, sizeZ int) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", piece.ErrInvalidInput)
	}
	if sizeX <= 0 || sizeY <= 0 || sizeZ <= 0 {
		return fmt.Errorf("%w: sizeX, sizeY and sizeZ must be positive integers", piece.ErrInvalidInput)
	}
	return nil
}

func (uc *pieceUseCase) CreatePiece(ctx context.Context, input *dto.CreatePieceInput) (*model.Piece, error) {
	if err := validatePieceFields(input.Name, input.SizeX, input.SizeY, input.SizeZ); err != nil {
		return nil, err
	}

	p := &model.Piece{
		Name:  input.Name,
		SizeX: input.SizeX,
		SizeY: input.SizeY,
		SizeZ: input.SizeZ,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.cache.Del(ctx, listCacheKey)
	uc.logger.Info("piece created", zap.Int("piece_id", p.ID), zap.String("name", p.Name))
	return p, nil
}

func (uc *pieceUseCase) GetPiece(ctx context.Context, id int) (*model.Piece, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, piece.ErrNotFound
	}
	return p, nil
}

func (uc *pieceUseCase) ListPieces(ctx context.Context) ([]model.Piece, error) {
	if val, ok := uc.cache.Get(ctx, listCacheKey); ok {
		var pieces []model.Piece
		if err := json.Unmarshal([]byte(val), &pieces); err == nil {
			return pieces, nil
		}
	}

	pieces, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(pieces); err == nil {
		uc.cache.Set(ctx, listCacheKey, string(encoded), uc.cacheTTL)
	}
	return pieces, nil
}

func (uc *pieceUseCase) UpdatePiece(ctx context.Context, input *dto.UpdatePieceInput) (*model.Piece, error) {
	if err := validatePieceFields(input.Name, input.SizeX, input.SizeY, input.SizeZ); err != nil {
		return nil, err
	}

	existing, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, piece.ErrNotFound
	}

	existing.Name = input.Name
	existing.SizeX = input.SizeX
	existing.SizeY = input.SizeY
	existing.SizeZ = input.SizeZ

	if err := uc.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	uc.cache.Del(ctx, listCacheKey)
	uc.logger.Info("piece updated", zap.Int("piece_id", existing.ID))
	return existing, nil
}

func (uc *pieceUseCase) DeletePiece(ctx context.Context, id int) error {
	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return piece.ErrNotFound
	}

	related, err := uc.repo.FindRelatedProducts(ctx, id)
	if err != nil {
		return err
	}
	if len(related) > 0 {
		return &piece.InUseError{RelatedProducts: related}
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.cache.Del(ctx, listCacheKey)
	uc.logger.Info("piece deleted", zap.Int("piece_id", id))
	return nil
}
