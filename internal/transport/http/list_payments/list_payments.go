package listpayments

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/schema"

	"github.com/hotelops/settlement/internal/service/models/apperr"
	"github.com/hotelops/settlement/internal/service/models/payment"
	"github.com/hotelops/settlement/internal/transport/http/httperr"
)

// service is an interface for the service layer.
type service interface {
	ListPayments(ctx context.Context, filter *payment.QueryPaymentsModel) ([]payment.Payment, error)
	GetPayment(ctx context.Context, id string) (*payment.Payment, error)
}

type queryPaymentsRequest struct {
	Status  string `schema:"status"`
	Method  string `schema:"method"`
	OrderID string `schema:"order"`
	Search  string `schema:"search"`
	Limit   int    `schema:"limit"`
	Offset  int    `schema:"offset"`
}

func (q *queryPaymentsRequest) ToModel() (*payment.QueryPaymentsModel, error) {
	filter := &payment.QueryPaymentsModel{
		OrderID: q.OrderID,
		Search:  q.Search,
		Limit:   q.Limit,
		Offset:  q.Offset,
	}

	if q.Status != "" {
		status, err := payment.ParseStatus(q.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperr.ErrValidationFailed, err)
		}
		filter.Status = status
	}

	if q.Method != "" {
		method, err := payment.ParseMethod(q.Method)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperr.ErrValidationFailed, err)
		}
		filter.Method = method
	}

	return filter, nil
}

// ListPayments handles the list payments request.
func ListPayments(w http.ResponseWriter, r *http.Request, service service) {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	query := &queryPaymentsRequest{}
	if err := decoder.Decode(query, r.URL.Query()); err != nil {
		httperr.WriteValidationError(w, err)
		slog.Error("Error decoding request", "error", err)

		return
	}

	filter, err := query.ToModel()
	if err != nil {
		httperr.WriteError(w, err)

		return
	}

	payments, err := service.ListPayments(r.Context(), filter)
	if err != nil {
		httperr.WriteError(w, err)
		slog.Error("Error listing payments", "error", err)

		return
	}

	if err := httperr.WriteJSON(w, http.StatusOK, payments); err != nil {
		slog.Error("Error sending response", "error", err)
	}
}

// GetPayment handles the get payment request.
func GetPayment(w http.ResponseWriter, r *http.Request, service service) {
	id := chi.URLParam(r, "id")

	p, err := service.GetPayment(r.Context(), id)
	if err != nil {
		httperr.WriteError(w, err)

		return
	}

	if err := httperr.WriteJSON(w, http.StatusOK, p); err != nil {
		slog.Error("Error sending response", "error", err)
	}
}
