package processpayment

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hotelops/settlement/internal/service/models/payment"
	"github.com/hotelops/settlement/internal/transport/http/httperr"
)

// service is an interface for the service layer.
type service interface {
	ProcessPayment(ctx context.Context, id, newStatus, transactionID string) (*payment.Payment, error)
}

type processPaymentRequest struct {
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
}

// ProcessPayment handles the payment processing request. An omitted status
// defaults to completed.
func ProcessPayment(w http.ResponseWriter, r *http.Request, service service) {
	id := chi.URLParam(r, "id")

	var req processPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.WriteValidationError(w, err)
		slog.Error("Error decoding request body for process payment", "error", err)

		return
	}

	if req.Status == "" {
		req.Status = payment.StatusCompleted.String()
	}

	processed, err := service.ProcessPayment(r.Context(), id, req.Status, req.TransactionID)
	if err != nil {
		httperr.WriteError(w, err)
		slog.Error("Error processing payment", "payment_id", id, "error", err)

		return
	}

	if err := httperr.WriteJSON(w, http.StatusOK, processed); err != nil {
		slog.Error("Error writing response for process payment", "error", err)
	}
}
