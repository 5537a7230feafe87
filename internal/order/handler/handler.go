package handler

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/IgorBayerl/garden-erp/internal/order"
	"github.com/IgorBayerl/garden-erp/internal/order/dto"
	"github.com/IgorBayerl/garden-erp/pkg/httpx"
	"github.com/IgorBayerl/garden-erp/pkg/logger"
	"github.com/IgorBayerl/garden-erp/pkg/metrics"
)

type OrderHandler struct {
	uc     order.UseCase
	logger logger.Logger
}

func NewOrderHandler(uc order.UseCase, log logger.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: log}
}

// Calculate handles POST /orders/calculate. The group_by field selects the
// result shape, so dispatch happens here and each mode serializes its own
// payload.
func (h *OrderHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var input dto.CalculateOrderInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	mode, err := order.ParseGroupMode(input.GroupBy)
	if err != nil {
		metrics.OrderCalculationsTotal.WithLabelValues("unknown", "invalid").Inc()
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var result any
	switch mode {
	case order.GroupBySize:
		result, err = h.uc.CalculateBySize(r.Context(), &input)
	case order.GroupByProduct:
		result, err = h.uc.CalculateByProduct(r.Context(), &input)
	case order.GroupByCrossSection:
		result, err = h.uc.CalculateByCrossSection(r.Context(), &input)
	}
	if err != nil {
		h.writeError(w, mode, err)
		return
	}

	metrics.OrderCalculationsTotal.WithLabelValues(mode.String(), "ok").Inc()
	httpx.WriteJSON(w, http.StatusOK, result)
}

func (h *OrderHandler) writeError(w http.ResponseWriter, mode order.GroupMode, err error) {
	var notFound *order.ProductNotFoundError
	switch {
	case errors.Is(err, order.ErrInvalidRequest):
		metrics.OrderCalculationsTotal.WithLabelValues(mode.String(), "invalid").Inc()
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &notFound):
		metrics.OrderCalculationsTotal.WithLabelValues(mode.String(), "not_found").Inc()
		httpx.WriteError(w, http.StatusNotFound, notFound.Error())
	default:
		metrics.OrderCalculationsTotal.WithLabelValues(mode.String(), "error").Inc()
		h.logger.Error("order calculation failed", zap.Error(err))
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
