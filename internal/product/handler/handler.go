package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/IgorBayerl/garden-erp/internal/product"
	"github.com/IgorBayerl/garden-erp/internal/product/dto"
	"github.com/IgorBayerl/garden-erp/pkg/httpx"
	"github.com/IgorBayerl/garden-erp/pkg/logger"
	"go.uber.org/zap"
)

// maxCSVUploadBytes bounds the multipart form kept in memory on import.
const maxCSVUploadBytes = 10 << 20

type ProductHandler struct {
	uc     product.UseCase
	logger logger.Logger
}

func NewProductHandler(uc product.UseCase, log logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, logger: log}
}

// Create handles POST /products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateProductInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.uc.CreateProduct(r.Context(), &input)
	if err != nil {
		h.writeError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]any{
		"message":    "Product and pieces added successfully",
		"product_id": p.ID,
	})
}

// List handles GET /products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.uc.ListProducts(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, products)
}

// Get handles GET /products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	p, err := h.uc.GetProduct(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

// Update handles PUT /products/{id}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var input dto.UpdateProductInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	input.ID = id

	if _, err := h.uc.UpdateProduct(r.Context(), &input); err != nil {
		h.writeError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Product and related pieces updated successfully"})
}

// Delete handles DELETE /products/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.uc.DeleteProduct(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Product and related pieces deleted successfully"})
}

// ImportCSV handles POST /products/csv (multipart: product_name + file)
func (h *ProductHandler) ImportCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxCSVUploadBytes); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	productName := r.FormValue("product_name")
	if productName == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Product name is required")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "CSV file is required")
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".csv") {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid file type")
		return
	}

	p, err := h.uc.ImportCSV(r.Context(), productName, file)
	if err != nil {
		h.writeError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]any{
		"message":    "CSV processed successfully",
		"product_id": p.ID,
	})
}

func (h *ProductHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, product.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, product.ErrInvalidInput),
		errors.Is(err, product.ErrUnknownPiece),
		errors.Is(err, product.ErrInvalidCSV):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("product request failed", zap.Error(err))
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		httpx.WriteError(w, http.StatusBadRequest, "invalid id in path")
		return 0, false
	}
	return id, true
}
