package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IgorBayerl/garden-erp/internal/model"
	orderusecase "github.com/IgorBayerl/garden-erp/internal/order/usecase"
	"github.com/IgorBayerl/garden-erp/pkg/logger"
)

type stubProductRepo struct {
	products map[int]*model.Product
}

func (s *stubProductRepo) FindByID(_ context.Context, id int) (*model.Product, error) {
	return s.products[id], nil
}

func newTestHandler() *OrderHandler {
	repo := &stubProductRepo{products: map[int]*model.Product{
		1: {
			ID:   1,
			Name: "Mesa 757 Piquenique",
			Pieces: []model.ProductPiece{
				{Quantity: 4, Piece: model.Piece{Name: "Pé Piquenique", SizeX: 743, SizeY: 78, SizeZ: 35}},
			},
		},
	}}
	uc := orderusecase.NewOrderUseCase(repo, logger.NewNop())
	return NewOrderHandler(uc, logger.NewNop())
}

func TestCalculateStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantInBody string
	}{
		{
			name:       "size grouping ok",
			body:       `{"products":[{"product_id":1,"quantity":5}]}`,
			wantStatus: http.StatusOK,
			wantInBody: `"total_quantity":20`,
		},
		{
			name:       "product grouping ok",
			body:       `{"group_by":"product","products":[{"product_id":1,"quantity":2}]}`,
			wantStatus: http.StatusOK,
			wantInBody: `"product":"Mesa 757 Piquenique"`,
		},
		{
			name:       "cross section ok",
			body:       `{"group_by":"cross_section","plank_size":3000,"products":[{"product_id":1,"quantity":1}]}`,
			wantStatus: http.StatusOK,
			wantInBody: `"planks_needed":1`,
		},
		{
			name:       "missing products",
			body:       `{"group_by":"size"}`,
			wantStatus: http.StatusBadRequest,
			wantInBody: "products field is required",
		},
		{
			name:       "unknown group_by",
			body:       `{"group_by":"color","products":[{"product_id":1,"quantity":1}]}`,
			wantStatus: http.StatusBadRequest,
			wantInBody: "group_by",
		},
		{
			name:       "unknown sort field",
			body:       `{"sort_by":["weight"],"products":[{"product_id":1,"quantity":1}]}`,
			wantStatus: http.StatusBadRequest,
			wantInBody: "sort_by",
		},
		{
			name:       "missing plank size",
			body:       `{"group_by":"cross_section","products":[{"product_id":1,"quantity":1}]}`,
			wantStatus: http.StatusBadRequest,
			wantInBody: "plank_size",
		},
		{
			name:       "unknown product",
			body:       `{"products":[{"product_id":42,"quantity":1}]}`,
			wantStatus: http.StatusNotFound,
			wantInBody: "product with id 42 not found",
		},
		{
			name:       "malformed body",
			body:       `{"products":`,
			wantStatus: http.StatusBadRequest,
			wantInBody: "malformed",
		},
	}

	h := newTestHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/orders/calculate", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.Calculate(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), tt.wantInBody)
		})
	}
}
