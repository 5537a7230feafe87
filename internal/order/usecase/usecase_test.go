package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IgorBayerl/garden-erp/internal/model"
	"github.com/IgorBayerl/garden-erp/internal/order"
	"github.com/IgorBayerl/garden-erp/internal/order/dto"
	"github.com/IgorBayerl/garden-erp/pkg/logger"
)

type fakeProductRepo struct {
	products map[int]*model.Product
	err      error
}

func (f *fakeProductRepo) FindByID(_ context.Context, id int) (*model.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products[id], nil
}

func bomLine(piece string, x, y, z, qty int) model.ProductPiece {
	return model.ProductPiece{
		Quantity: qty,
		Piece:    model.Piece{Name: piece, SizeX: x, SizeY: y, SizeZ: z},
	}
}

func catalogProduct(id int, name string, lines ...model.ProductPiece) *model.Product {
	return &model.Product{ID: id, Name: name, Pieces: lines}
}

func newTestUseCase(products ...*model.Product) order.UseCase {
	repo := &fakeProductRepo{products: map[int]*model.Product{}}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return NewOrderUseCase(repo, logger.NewNop())
}

func TestCalculateBySizeExpandsQuantities(t *testing.T) {
	uc := newTestUseCase(
		catalogProduct(1, "Mesa 757 Piquenique",
			bomLine("Pé Piquenique", 743, 78, 35, 4),
		),
	)

	groups, err := uc.CalculateBySize(context.Background(), &dto.CalculateOrderInput{
		Products: []dto.OrderItem{{ProductID: 1, Quantity: 5}},
	})
	require.NoError(t, err)

	require.Len(t, groups, 1)
	g := groups[0]
	assert.Equal(t, 743, g.X)
	assert.Equal(t, 78, g.Y)
	assert.Equal(t, 35, g.Z)
	assert.Equal(t, 20, g.TotalQuantity)

	require.Len(t, g.Details, 1)
	d := g.Details[0]
	assert.Equal(t, "Mesa 757 Piquenique", d.Product)
	assert.Equal(t, "Pé Piquenique", d.Piece)
	assert.Equal(t, 4, d.Quantity)
	assert.Equal(t, 5, d.ProductQuantity)
	assert.Equal(t, 20, d.TotalQuantity)
}

func TestCalculateBySizeMergesSharedDimensions(t *testing.T) {
	uc := newTestUseCase(
		catalogProduct(1, "Mesa", bomLine("Pé Mesa", 700, 70, 30, 4)),
		catalogProduct(2, "Banco", bomLine("Pé Banco", 700, 70, 30, 2)),
	)

	groups, err := uc.CalculateBySize(context.Background(), &dto.CalculateOrderInput{
		Products: []dto.OrderItem{
			{ProductID: 1, Quantity: 1},
			{ProductID: 2, Quantity: 3},
		},
	})
	require.NoError(t, err)

	require.Len(t, groups, 1)
	assert.Equal(t, 10, groups[0].TotalQuantity)

	// Same dimensions through different pieces stay separate rows.
	require.Len(t, groups[0].Details, 2)
	assert.Equal(t, "Pé Mesa", groups[0].Details[0].Piece)
	assert.Equal(t, "Pé Banco", groups[0].Details[1].Piece)
}

func TestCalculateBySizeConservesQuantity(t *testing.T) {
	uc := newTestUseCase(
		catalogProduct(1, "Mesa",
			bomLine("Pé", 700, 70, 30, 4),
			bomLine("Ripa", 1100, 90, 28, 7),
			bomLine("Travessa", 640, 78, 35, 2),
		),
		catalogProduct(2, "Banco",
			bomLine("Pé", 700, 70, 30, 4),
			bomLine("Ripa Assento", 1100, 68, 28, 3),
		),
	)
	input := &dto.CalculateOrderInput{
		Products: []dto.OrderItem{
			{ProductID: 1, Quantity: 3},
			{ProductID: 2, Quantity: 2},
		},
	}

	groups, err := uc.CalculateBySize(context.Background(), input)
	require.NoError(t, err)

	// 3×(4+7+2) + 2×(4+3) = 39 + 14
	sum := 0
	detailSum := 0
	for _, g := range groups {
		sum += g.TotalQuantity
		for _, d := range g.Details {
			detailSum += d.TotalQuantity
		}
	}
	assert.Equal(t, 53, sum)
	assert.Equal(t, 53, detailSum)
}

func TestCalculateBySizeScalesLinearly(t *testing.T) {
	uc := newTestUseCase(
		catalogProduct(1, "Mesa",
			bomLine("Pé", 700, 70, 30, 4),
			bomLine("Ripa", 1100, 90, 28, 7),
		),
	)
	ctx := context.Background()

	single, err := uc.CalculateBySize(ctx, &dto.CalculateOrderInput{
		Products: []dto.OrderItem{{ProductID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	double, err := uc.CalculateBySize(ctx, &dto.CalculateOrderInput{
		Products: []dto.OrderItem{{ProductID: 1, Quantity: 2}},
	})
	require.NoError(t, err)

	require.Len(t, double, len(single))
	for i := range single {
		assert.Equal(t, single[i].TotalQuantity*2, double[i].TotalQuantity)
	}
}

func TestCalculateBySizePermutedInputSameGroups(t *testing.T) {
	products := []*model.Product{
		catalogProduct(1, "Mesa", bomLine("Pé", 700, 70, 30, 4)),
		catalogProduct(2, "Banco", bomLine("Ripa", 1100, 68, 28, 3)),
	}
	uc := newTestUseCase(products...)
	ctx := context.Background()

	a, err := uc.CalculateBySize(ctx, &dto.CalculateOrderInput{
		Products: []dto.OrderItem{{ProductID: 1, Quantity: 1}, {ProductID: 2, Quantity: 1}},
	})
	require.NoError(t, err)

	b, err := uc.CalculateBySize(ctx, &dto.CalculateOrderInput{
		Products: []dto.OrderItem{{ProductID: 2, Quantity: 1}, {ProductID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	// Same groups and totals either way; only ordering may differ, and the
	// default sort makes even that identical.
	assert.ElementsMatch(t, a, b)
	assert.Equal(t, a, b)
}

func TestCalculateBySizeSortsComposite(t *testing.T) {
	uc := newTestUseCase(
		catalogProduct(1, "Mix",
			bomLine("A", 500, 50, 20, 1),
			bomLine("B", 300, 90, 20, 1),
			bomLine("C", 300, 50, 20, 1),
			bomLine("D", 500, 50, 10, 1),
		),
	)
	ctx := context.Background()
	input := func(order string, sortBy []string) *dto.CalculateOrderInput {
		return &dto.CalculateOrderInput{
			Order:    order,
			SortBy:   sortBy,
			Products: []dto.OrderItem{{ProductID: 1, Quantity: 1}},
		}
	}

	asc, err := uc.CalculateBySize(ctx, input("asc", []string{"x", "y", "z"}))
	require.NoError(t, err)
	require.Len(t, asc, 4)
	assert.Equal(t, [3]int{300, 50, 20}, [3]int{asc[0].X, asc[0].Y, asc[0].Z})
	assert.Equal(t, [3]int{300, 90, 20}, [3]int{asc[1].X, asc[1].Y, asc[1].Z})
	assert.Equal(t, [3]int{500, 50, 10}, [3]int{asc[2].X, asc[2].Y, asc[2].Z})
	assert.Equal(t, [3]int{500, 50, 20}, [3]int{asc[3].X, asc[3].Y, asc[3].Z})

	desc, err := uc.CalculateBySize(ctx, input("desc", []string{"x", "y", "z"}))
	require.NoError(t, err)
	require.Len(t, desc, 4)
	for i := range desc {
		assert.Equal(t, asc[len(asc)-1-i], desc[i])
	}

	byZ, err := uc.CalculateBySize(ctx, input("asc", []string{"z"}))
	require.NoError(t, err)
	// Ties on z keep first-occurrence order.
	assert.Equal(t, 10, byZ[0].Z)
	assert.Equal(t, "A", byZ[1].Details[0].Piece)
	assert.Equal(t, "B", byZ[2].Details[0].Piece)
	assert.Equal(t, "C", byZ[3].Details[0].Piece)
}

func TestCalculateBySizeRejectsBadInput(t *testing.T) {
	uc := newTestUseCase(catalogProduct(1, "Mesa", bomLine("Pé", 700, 70, 30, 4)))
	ctx := context.Background()

	_, err := uc.CalculateBySize(ctx, &dto.CalculateOrderInput{})
	assert.ErrorIs(t, err, order.ErrInvalidRequest)

	_, err = uc.CalculateBySize(ctx, &dto.CalculateOrderInput{
		Products: []dto.OrderItem{{ProductID: 1, Quantity: 0}},
	})
	assert.ErrorIs(t, err, order.ErrInvalidRequest)

	_, err = uc.CalculateBySize(ctx, &dto.CalculateOrderInput{
		Order:    "sideways",
		Products: []dto.OrderItem{{ProductID: 1, Quantity: 1}},
	})
	assert.ErrorIs(t, err, order.ErrInvalidRequest)

	_, err = uc.CalculateBySize(ctx, &dto.CalculateOrderInput{
		SortBy:   []string{"weight"},
		Products: []dto.OrderItem{{ProductID: 1, Quantity: 1}},
	})
	assert.ErrorIs(t, err, order.ErrInvalidRequest)
}

func TestCalculateReportsMissingProduct(t *testing.T) {
	uc := newTestUseCase(catalogProduct(1, "Mesa", bomLine("Pé", 700, 70, 30, 4)))

	_, err := uc.CalculateBySize(context.Background(), &dto.CalculateOrderInput{
		Products: []dto.OrderItem{
			{ProductID: 1, Quantity: 1},
			{ProductID: 99, Quantity: 1},
		},
	})

	var notFound *order.ProductNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, 99, notFound.ID)
	assert.Equal(t, "product with id 99 not found", notFound.Error())
}

func TestCalculateWrapsRepositoryFailure(t *testing.T) {
	repo := &fakeProductRepo{err: errors.New("connection refused")}
	uc := NewOrderUseCase(repo, logger.NewNop())

	_, err := uc.CalculateBySize(context.Background(), &dto.CalculateOrderInput{
		Products: []dto.OrderItem{{ProductID: 1, Quantity: 1}},
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, order.ErrInvalidRequest)
}

func TestCalculateByProductGroupsPerProduct(t *testing.T) {
	uc := newTestUseCase(
		catalogProduct(1, "Mesa",
			bomLine("Pé", 700, 70, 30, 4),
			bomLine("Ripa", 1100, 90, 28, 7),
		),
		catalogProduct(2, "Banco", bomLine("Pé Banco", 700, 70, 30, 2)),
	)

	groups, err := uc.CalculateByProduct(context.Background(), &dto.CalculateOrderInput{
		GroupBy: "product",
		Products: []dto.OrderItem{
			{ProductID: 2, Quantity: 5},
			{ProductID: 1, Quantity: 2},
		},
	})
	require.NoError(t, err)

	// Outer groups sort by product name.
	require.Len(t, groups, 2)
	assert.Equal(t, "Banco", groups[0].Product)
	assert.Equal(t, 10, groups[0].TotalQuantity)
	assert.Equal(t, "Mesa", groups[1].Product)
	assert.Equal(t, 22, groups[1].TotalQuantity)

	mesa := groups[1]
	require.Len(t, mesa.Pieces, 2)
	// Inner pieces sort by dimensions ascending by default.
	assert.Equal(t, "Pé", mesa.Pieces[0].Piece)
	assert.Equal(t, 8, mesa.Pieces[0].TotalQuantity)
	assert.Equal(t, "Ripa", mesa.Pieces[1].Piece)
	assert.Equal(t, 14, mesa.Pieces[1].TotalQuantity)
}

func TestCalculateByCrossSection(t *testing.T) {
	uc := newTestUseCase(
		catalogProduct(1, "Estrutura",
			bomLine("Longarina", 1000, 78, 35, 2),
			bomLine("Travessa", 1500, 78, 35, 1),
			bomLine("Ripa Fina", 900, 68, 28, 3),
		),
	)

	result, err := uc.CalculateByCrossSection(context.Background(), &dto.CalculateOrderInput{
		GroupBy:   "cross_section",
		PlankSize: 3000,
		Products:  []dto.OrderItem{{ProductID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	require.Len(t, result.RequestedProducts, 1)
	assert.Equal(t, "Estrutura", result.RequestedProducts[0].Product)
	assert.Equal(t, 1, result.RequestedProducts[0].TotalQuantity)
	assert.Equal(t, 3, result.RequestedProducts[0].Pieces)

	require.Len(t, result.Order, 2)

	// Default order is descending on (y, z): the 78×35 profile first.
	wide := result.Order[0]
	assert.Equal(t, 78, wide.Y)
	assert.Equal(t, 35, wide.Z)
	// 2×1000 + 1×1500 = 3500 over 3000mm planks.
	assert.Equal(t, 2, wide.PlanksNeeded)
	assert.Equal(t, 2, wide.ItemCount)
	require.Len(t, wide.Details, 2)
	assert.Equal(t, 1000, wide.Details[0].X)
	assert.Equal(t, 2, wide.Details[0].TotalQuantity)
	assert.Equal(t, 1500, wide.Details[1].X)
	assert.Equal(t, 1, wide.Details[1].TotalQuantity)

	thin := result.Order[1]
	assert.Equal(t, 68, thin.Y)
	assert.Equal(t, 28, thin.Z)
	// 3×900 = 2700 fits one plank.
	assert.Equal(t, 1, thin.PlanksNeeded)
	assert.Equal(t, 1, thin.ItemCount)
}

func TestCalculateByCrossSectionMergesLengthBuckets(t *testing.T) {
	uc := newTestUseCase(
		catalogProduct(1, "Mesa", bomLine("Pé", 700, 70, 30, 4)),
		catalogProduct(2, "Banco", bomLine("Pé Banco", 700, 70, 30, 2)),
	)

	result, err := uc.CalculateByCrossSection(context.Background(), &dto.CalculateOrderInput{
		GroupBy:   "cross_section",
		PlankSize: 3000,
		Products: []dto.OrderItem{
			{ProductID: 1, Quantity: 1},
			{ProductID: 2, Quantity: 1},
		},
	})
	require.NoError(t, err)

	require.Len(t, result.Order, 1)
	g := result.Order[0]
	require.Len(t, g.Details, 1)
	assert.Equal(t, 700, g.Details[0].X)
	assert.Equal(t, 6, g.Details[0].TotalQuantity)
	// Both contributing products show inside the merged bucket.
	require.Len(t, g.Details[0].Details, 2)
	// 6×700 = 4200 over 3000mm planks.
	assert.Equal(t, 2, g.PlanksNeeded)
}

func TestCalculateByCrossSectionSortsLengthsWithX(t *testing.T) {
	uc := newTestUseCase(
		catalogProduct(1, "Estrutura",
			bomLine("Longarina", 1000, 78, 35, 2),
			bomLine("Travessa", 1500, 78, 35, 1),
			bomLine("Ripa Curta", 900, 68, 28, 3),
			bomLine("Ripa Longa", 1200, 68, 28, 1),
		),
	)

	// The estimate view requests sort_by ["z","y","x"] descending.
	result, err := uc.CalculateByCrossSection(context.Background(), &dto.CalculateOrderInput{
		GroupBy:   "cross_section",
		Order:     "desc",
		SortBy:    []string{"z", "y", "x"},
		PlankSize: 3000,
		Products:  []dto.OrderItem{{ProductID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	require.Len(t, result.Order, 2)
	assert.Equal(t, 35, result.Order[0].Z)
	assert.Equal(t, 28, result.Order[1].Z)

	// x orders each group's length buckets, longest first.
	wide := result.Order[0]
	require.Len(t, wide.Details, 2)
	assert.Equal(t, 1500, wide.Details[0].X)
	assert.Equal(t, 1000, wide.Details[1].X)

	thin := result.Order[1]
	require.Len(t, thin.Details, 2)
	assert.Equal(t, 1200, thin.Details[0].X)
	assert.Equal(t, 900, thin.Details[1].X)
}

func TestCalculateByCrossSectionRequiresPlankSize(t *testing.T) {
	uc := newTestUseCase(catalogProduct(1, "Mesa", bomLine("Pé", 700, 70, 30, 4)))

	_, err := uc.CalculateByCrossSection(context.Background(), &dto.CalculateOrderInput{
		GroupBy:  "cross_section",
		Products: []dto.OrderItem{{ProductID: 1, Quantity: 1}},
	})
	assert.ErrorIs(t, err, order.ErrInvalidRequest)
	assert.ErrorContains(t, err, "plank_size")
}

func TestPlanksNeeded(t *testing.T) {
	tests := []struct {
		total, plank, want int
	}{
		{7500, 3000, 3},
		{6000, 3000, 2},
		{1, 3000, 1},
		{3000, 3000, 1},
		{3001, 3000, 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, planksNeeded(tt.total, tt.plank),
			"planksNeeded(%d, %d)", tt.total, tt.plank)
	}
}
