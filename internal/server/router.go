package server

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	orderhandler "github.com/IgorBayerl/garden-erp/internal/order/handler"
	piecehandler "github.com/IgorBayerl/garden-erp/internal/piece/handler"
	producthandler "github.com/IgorBayerl/garden-erp/internal/product/handler"
	"github.com/IgorBayerl/garden-erp/pkg/httpx"
	"github.com/IgorBayerl/garden-erp/pkg/logger"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Pieces   *piecehandler.PieceHandler
	Products *producthandler.ProductHandler
	Orders   *orderhandler.OrderHandler
}

// NewRouter wires the HTTP routes. Method and path parameters are handled
// by the standard mux patterns.
func NewRouter(h Handlers, db *sqlx.DB, log logger.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /pieces", h.Pieces.Create)
	mux.HandleFunc("GET /pieces", h.Pieces.List)
	mux.HandleFunc("GET /pieces/{id}", h.Pieces.Get)
	mux.HandleFunc("PUT /pieces/{id}", h.Pieces.Update)
	mux.HandleFunc("DELETE /pieces/{id}", h.Pieces.Delete)

	mux.HandleFunc("POST /products", h.Products.Create)
	mux.HandleFunc("GET /products", h.Products.List)
	mux.HandleFunc("GET /products/{id}", h.Products.Get)
	mux.HandleFunc("PUT /products/{id}", h.Products.Update)
	mux.HandleFunc("DELETE /products/{id}", h.Products.Delete)
	mux.HandleFunc("POST /products/csv", h.Products.ImportCSV)

	mux.HandleFunc("POST /orders/calculate", h.Orders.Calculate)

	mux.HandleFunc("GET /health", healthCheck(db))
	mux.Handle("GET /metrics", promhttp.Handler())

	var handler http.Handler = mux
	handler = requestLogger(log)(handler)
	handler = requestID(handler)
	return handler
}

func healthCheck(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			httpx.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
