package createpayment

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/hotelops/settlement/internal/service/models/payment"
	"github.com/hotelops/settlement/internal/transport/http/httperr"
)

// service is an interface for the service layer.
type service interface {
	CreatePayment(ctx context.Context, p payment.Payment) (*payment.Payment, error)
}

type createPaymentRequest struct {
	OrderID string          `json:"order"`
	Amount  decimal.Decimal `json:"amount"`
	Method  string          `json:"method"`
	Notes   string          `json:"notes"`
}

// CreatePayment handles the create payment request.
func CreatePayment(w http.ResponseWriter, r *http.Request, service service) {
	var req createPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.WriteValidationError(w, err)
		slog.Error("Error decoding request body for create payment", "error", err)

		return
	}

	created, err := service.CreatePayment(r.Context(), payment.Payment{
		OrderID: req.OrderID,
		Amount:  req.Amount,
		Method:  payment.Method(req.Method),
		Notes:   req.Notes,
	})
	if err != nil {
		httperr.WriteError(w, err)
		slog.Error("Error creating payment", "order_id", req.OrderID, "error", err)

		return
	}

	if err := httperr.WriteJSON(w, http.StatusCreated, created); err != nil {
		slog.Error("Error writing response for create payment", "error", err)
	}
}
