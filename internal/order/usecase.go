package order

import (
	"context"

	"github.com/IgorBayerl/garden-erp/internal/model"
	"github.com/IgorBayerl/garden-erp/internal/order/dto"
)

// ProductRepository is the slice of the product store the calculation
// needs: a product resolved by id with its BOM lines fully materialized.
type ProductRepository interface {
	FindByID(ctx context.Context, id int) (*model.Product, error)
}

// UseCase computes production orders. Each calculation is a pure pass over
// the repository state at call time: expand the requested quantities
// through the BOM, aggregate by the requested key, estimate plank usage
// (cross-section mode) and sort.
type UseCase interface {
	CalculateBySize(ctx context.Context, input *dto.CalculateOrderInput) ([]dto.SizeGroup, error)
	CalculateByProduct(ctx context.Context, input *dto.CalculateOrderInput) ([]dto.ProductGroup, error)
	CalculateByCrossSection(ctx context.Context, input *dto.CalculateOrderInput) (*dto.CrossSectionResult, error)
}
