package listorders

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/schema"

	"github.com/hotelops/settlement/internal/service/models/apperr"
	"github.com/hotelops/settlement/internal/service/models/order"
	"github.com/hotelops/settlement/internal/transport/http/httperr"
)

// service is an interface for the service layer.
type service interface {
	ListOrders(ctx context.Context, filter *order.QueryOrdersModel) ([]order.Order, error)
	GetOrder(ctx context.Context, id string) (*order.Order, error)
}

type queryOrdersRequest struct {
	Status      string `schema:"status"`
	Type        string `schema:"type"`
	RoomNumber  string `schema:"room_number"`
	TableNumber string `schema:"table_number"`
	Search      string `schema:"search"`
	Ordering    string `schema:"ordering"`
	Limit       int    `schema:"limit"`
	Offset      int    `schema:"offset"`
}

// ToModel validates enum and ordering values and builds the query filter.
// Ordering uses a leading '-' for descending, e.g. "-created_at".
func (q *queryOrdersRequest) ToModel() (*order.QueryOrdersModel, error) {
	filter := &order.QueryOrdersModel{
		RoomNumber:  q.RoomNumber,
		TableNumber: q.TableNumber,
		Search:      q.Search,
		Limit:       q.Limit,
		Offset:      q.Offset,
	}

	if q.Status != "" {
		status, err := order.ParseStatus(q.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperr.ErrValidationFailed, err)
		}
		filter.Status = status
	}

	if q.Type != "" {
		typ, err := order.ParseType(q.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperr.ErrValidationFailed, err)
		}
		filter.Type = typ
	}

	if q.Ordering != "" {
		field := strings.TrimPrefix(q.Ordering, "-")
		switch field {
		case order.OrderByCreatedAt, order.OrderByTotal, order.OrderByStatus:
		default:
			return nil, fmt.Errorf("%w: unknown ordering field %q", apperr.ErrValidationFailed, field)
		}
		filter.OrderBy = field
		filter.Descending = strings.HasPrefix(q.Ordering, "-")
	}

	return filter, nil
}

// ListOrders handles the list orders request.
func ListOrders(w http.ResponseWriter, r *http.Request, service service) {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	query := &queryOrdersRequest{}
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

	orders, err := service.ListOrders(r.Context(), filter)
	if err != nil {
		httperr.WriteError(w, err)
		slog.Error("Error listing orders", "error", err)

		return
	}

	if err := httperr.WriteJSON(w, http.StatusOK, orders); err != nil {
		slog.Error("Error sending response", "error", err)
	}
}

// GetOrder handles the get order request.
func GetOrder(w http.ResponseWriter, r *http.Request, service service) {
	id := chi.URLParam(r, "id")

	o, err := service.GetOrder(r.Context(), id)
	if err != nil {
		httperr.WriteError(w, err)

		return
	}

	if err := httperr.WriteJSON(w, http.StatusOK, o); err != nil {
		slog.Error("Error sending response", "error", err)
	}
}
