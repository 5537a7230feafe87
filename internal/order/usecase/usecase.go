package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/IgorBayerl/garden-erp/internal/order"
	"github.com/IgorBayerl/garden-erp/internal/order/dto"
	"github.com/IgorBayerl/garden-erp/pkg/logger"
)

type orderUseCase struct {
	products order.ProductRepository
	logger   logger.Logger
}

func NewOrderUseCase(products order.ProductRepository, logger logger.Logger) order.UseCase {
	return &orderUseCase{
		products: products,
		logger:   logger,
	}
}

func (uc *orderUseCase) CalculateBySize(ctx context.Context, input *dto.CalculateOrderInput) ([]dto.SizeGroup, error) {
	desc, err := parseDirection(input.Order, false)
	if err != nil {
		return nil, err
	}
	if err := validateItems(input.Products); err != nil {
		return nil, err
	}

	facts, _, err := uc.expand(ctx, input.Products)
	if err != nil {
		return nil, err
	}

	groups := aggregateBySize(facts)
	if err := sortSizeGroups(groups, input.SortBy, desc); err != nil {
		return nil, err
	}

	uc.logger.Info("order calculated",
		zap.String("group_by", order.GroupBySize.String()),
		zap.Int("products", len(input.Products)),
		zap.Int("groups", len(groups)),
	)
	return groups, nil
}

func (uc *orderUseCase) CalculateByProduct(ctx context.Context, input *dto.CalculateOrderInput) ([]dto.ProductGroup, error) {
	desc, err := parseDirection(input.Order, false)
	if err != nil {
		return nil, err
	}
	if err := validateItems(input.Products); err != nil {
		return nil, err
	}

	facts, _, err := uc.expand(ctx, input.Products)
	if err != nil {
		return nil, err
	}

	groups := aggregateByProduct(facts)
	if err := sortProductGroups(groups, input.SortBy, desc); err != nil {
		return nil, err
	}

	uc.logger.Info("order calculated",
		zap.String("group_by", order.GroupByProduct.String()),
		zap.Int("products", len(input.Products)),
		zap.Int("groups", len(groups)),
	)
	return groups, nil
}

// CalculateByCrossSection additionally estimates plank usage, so plank_size
// is validated before any repository work.
func (uc *orderUseCase) CalculateByCrossSection(ctx context.Context, input *dto.CalculateOrderInput) (*dto.CrossSectionResult, error) {
	desc, err := parseDirection(input.Order, true)
	if err != nil {
		return nil, err
	}
	if input.PlankSize <= 0 {
		return nil, fmt.Errorf("%w: plank_size must be a positive length", order.ErrInvalidRequest)
	}
	if err := validateItems(input.Products); err != nil {
		return nil, err
	}

	facts, requested, err := uc.expand(ctx, input.Products)
	if err != nil {
		return nil, err
	}

	accums := aggregateByCrossSection(facts)
	groups := make([]dto.CrossSectionGroup, 0, len(accums))
	for _, acc := range accums {
		acc.group.PlanksNeeded = planksNeeded(acc.sizeSum, input.PlankSize)
		acc.group.ItemCount = len(acc.group.Details)
		groups = append(groups, acc.group)
	}
	if err := sortCrossSectionGroups(groups, input.SortBy, desc); err != nil {
		return nil, err
	}

	uc.logger.Info("order calculated",
		zap.String("group_by", order.GroupByCrossSection.String()),
		zap.Int("products", len(input.Products)),
		zap.Int("groups", len(groups)),
		zap.Int("plank_size", input.PlankSize),
	)
	return &dto.CrossSectionResult{
		RequestedProducts: requested,
		Order:             groups,
	}, nil
}
