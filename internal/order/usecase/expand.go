package usecase

import (
	"context"
	"fmt"

	"github.com/IgorBayerl/garden-erp/internal/model"
	"github.com/IgorBayerl/garden-erp/internal/order"
	"github.com/IgorBayerl/garden-erp/internal/order/dto"
)

// expandedFact is one BOM line scaled by the ordered quantity.
type expandedFact struct {
	piece       model.Piece
	perUnitQty  int
	resolvedQty int
	productName string
	orderQty    int
}

func validateItems(items []dto.OrderItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: products field is required", order.ErrInvalidRequest)
	}
	for _, item := range items {
		if item.ProductID <= 0 || item.Quantity <= 0 {
			return fmt.Errorf("%w: each product needs a positive product_id and quantity", order.ErrInvalidRequest)
		}
	}
	return nil
}

// expand resolves every requested product and multiplies its BOM lines by
// the ordered quantity. BOM line order is preserved; the first missing
// product aborts the whole expansion.
func (uc *orderUseCase) expand(ctx context.Context, items []dto.OrderItem) ([]expandedFact, []dto.RequestedProduct, error) {
	facts := []expandedFact{}
	requested := make([]dto.RequestedProduct, 0, len(items))

	for _, item := range items {
		p, err := uc.products.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, nil, fmt.Errorf("resolve product %d: %w", item.ProductID, err)
		}
		if p == nil {
			return nil, nil, &order.ProductNotFoundError{ID: item.ProductID}
		}

		for _, line := range p.Pieces {
			facts = append(facts, expandedFact{
				piece:       line.Piece,
				perUnitQty:  line.Quantity,
				resolvedQty: line.Quantity * item.Quantity,
				productName: p.Name,
				orderQty:    item.Quantity,
			})
		}

		requested = append(requested, dto.RequestedProduct{
			Product:       p.Name,
			TotalQuantity: item.Quantity,
			Pieces:        len(p.Pieces),
		})
	}
	return facts, requested, nil
}

func factDetail(f expandedFact) dto.Detail {
	return dto.Detail{
		Product:         f.productName,
		Piece:           f.piece.Name,
		Quantity:        f.perUnitQty,
		ProductQuantity: f.orderQty,
		TotalQuantity:   f.resolvedQty,
	}
}
