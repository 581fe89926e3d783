package orderstatus

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hotelops/settlement/internal/service/models/order"
	"github.com/hotelops/settlement/internal/transport/http/httperr"
)

// service is an interface for the service layer.
type service interface {
	UpdateOrderStatus(ctx context.Context, id, newStatus string) (*order.Order, error)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles the order status update request.
func UpdateStatus(w http.ResponseWriter, r *http.Request, service service) {
	id := chi.URLParam(r, "id")

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.WriteValidationError(w, err)
		slog.Error("Error decoding request body for status update", "error", err)

		return
	}

	updated, err := service.UpdateOrderStatus(r.Context(), id, req.Status)
	if err != nil {
		httperr.WriteError(w, err)
		slog.Error("Error updating order status", "order_id", id, "error", err)

		return
	}

	if err := httperr.WriteJSON(w, http.StatusOK, updated); err != nil {
		slog.Error("Error writing response for status update", "error", err)
	}
}
