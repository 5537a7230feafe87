package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/IgorBayerl/garden-erp/internal/piece"
	"github.com/IgorBayerl/garden-erp/internal/piece/dto"
	"github.com/IgorBayerl/garden-erp/pkg/httpx"
	"github.com/IgorBayerl/garden-erp/pkg/logger"
	"go.uber.org/zap"
)

type PieceHandler struct {
	uc     piece.UseCase
	logger logger.Logger
}

func NewPieceHandler(uc piece.UseCase, log logger.Logger) *PieceHandler {
	return &PieceHandler{uc: uc, logger: log}
}

// Create handles POST /pieces
func (h *PieceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dto.CreatePieceInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.uc.CreatePiece(r.Context(), &input)
	if err != nil {
		h.writeError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]any{
		"message": "Piece added successfully",
		"id":      p.ID,
	})
}

// List handles GET /pieces
func (h *PieceHandler) List(w http.ResponseWriter, r *http.Request) {
	pieces, err := h.uc.ListPieces(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, pieces)
}

// Get handles GET /pieces/{id}
func (h *PieceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	p, err := h.uc.GetPiece(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

// Update handles PUT /pieces/{id}
func (h *PieceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var input dto.UpdatePieceInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	input.ID = id

	if _, err := h.uc.UpdatePiece(r.Context(), &input); err != nil {
		h.writeError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Piece updated successfully"})
}

// Delete handles DELETE /pieces/{id}
func (h *PieceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.uc.DeletePiece(r.Context(), id); err != nil {
		var inUse *piece.InUseError
		if errors.As(err, &inUse) {
			httpx.WriteJSON(w, http.StatusBadRequest, map[string]any{
				"message":          "Cannot delete piece because it is related to existing products.",
				"related_products": inUse.RelatedProducts,
			})
			return
		}
		h.writeError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Piece deleted successfully"})
}

func (h *PieceHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, piece.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Piece not found")
	case errors.Is(err, piece.ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("piece request failed", zap.Error(err))
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
