package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/IgorBayerl/garden-erp/internal/model"
	"github.com/IgorBayerl/garden-erp/internal/product"
	"github.com/IgorBayerl/garden-erp/internal/product/dto"
	"github.com/IgorBayerl/garden-erp/pkg/cache"
	"github.com/IgorBayerl/garden-erp/pkg/logger"
	"go.uber.org/zap"
)

const listCacheKey = "products:list"

type productUseCase struct {
	repo     product.Repository
	cache    *cache.RedisClient
	cacheTTL time.Duration
	logger   logger.Logger
}

func NewProductUseCase(repo product.Repository, cache *cache.RedisClient, cacheTTL time.Duration, log logger.Logger) product.UseCase {
	return &productUseCase{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   log,
	}
}

func validateInput(name string, lines []dto.ProductPieceInput) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", product.ErrInvalidInput)
	}
	for _, line := range lines {
		if line.PieceID <= 0 {
			return fmt.Errorf("%w: piece_id must be a positive integer", product.ErrInvalidInput)
		}
		if line.Quantity <= 0 {
			return fmt.Errorf("%w: quantity must be a positive integer", product.ErrInvalidInput)
		}
	}
	return nil
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	if err := validateInput(input.Name, input.ProductPieces); err != nil {
		return nil, err
	}

	p := &model.Product{
		Name:   input.Name,
		Image:  input.Image,
		Pieces: linesFromInput(input.ProductPieces),
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.cache.Del(ctx, listCacheKey)
	uc.logger.Info("product created",
		zap.Int("product_id", p.ID),
		zap.String("name", p.Name),
		zap.Int("bom_lines", len(p.Pieces)))

	// Re-read so the response carries materialized piece data.
	return uc.repo.FindByID(ctx, p.ID)
}

func (uc *productUseCase) GetProduct(ctx context.Context, id int) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, product.ErrNotFound
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context) ([]model.Product, error) {
	if val, ok := uc.cache.Get(ctx, listCacheKey); ok {
		var products []model.Product
		if err := json.Unmarshal([]byte(val), &products); err == nil {
			return products, nil
		}
	}

	products, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(products); err == nil {
		uc.cache.Set(ctx, listCacheKey, string(encoded), uc.cacheTTL)
	}
	return products, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	if err := validateInput(input.Name, input.ProductPieces); err != nil {
		return nil, err
	}

	existing, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, product.ErrNotFound
	}

	existing.Name = input.Name
	if input.Image != nil {
		existing.Image = input.Image
	}
	existing.Pieces = linesFromInput(input.ProductPieces)

	if err := uc.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	uc.cache.Del(ctx, listCacheKey)
	uc.logger.Info("product updated", zap.Int("product_id", existing.ID))
	return uc.repo.FindByID(ctx, existing.ID)
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int) error {
	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return product.ErrNotFound
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.cache.Del(ctx, listCacheKey)
	uc.logger.Info("product deleted", zap.Int("product_id", id))
	return nil
}

func (uc *productUseCase) ImportCSV(ctx context.Context, productName string, file io.Reader) (*model.Product, error) {
	if productName == "" {
		return nil, fmt.Errorf("%w: product name is required", product.ErrInvalidInput)
	}

	lines, err := ParsePiecesCSV(file)
	if err != nil {
		return nil, err
	}

	p, err := uc.repo.RegisterWithPieces(ctx, productName, nil, lines)
	if err != nil {
		return nil, err
	}

	uc.cache.Del(ctx, listCacheKey)
	uc.logger.Info("product imported from CSV",
		zap.Int("product_id", p.ID),
		zap.String("name", p.Name),
		zap.Int("bom_lines", len(lines)))
	return p, nil
}

func linesFromInput(inputs []dto.ProductPieceInput) []model.ProductPiece {
	lines := make([]model.ProductPiece, 0, len(inputs))
	for _, in := range inputs {
		lines = append(lines, model.ProductPiece{PieceID: in.PieceID, Quantity: in.Quantity})
	}
	return lines
}
