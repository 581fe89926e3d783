package createorder

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/hotelops/settlement/internal/service/models/order"
	"github.com/hotelops/settlement/internal/service/models/orderitem"
	"github.com/hotelops/settlement/internal/transport/http/httperr"
)

// service is an interface for the service layer.
type service interface {
	CreateOrder(ctx context.Context, o order.Order) (*order.Order, error)
}

type createOrderItem struct {
	MenuItemID string `json:"menu_item"`
	Quantity   int    `json:"quantity"`
	Notes      string `json:"notes"`
}

type createOrderRequest struct {
	RoomNumber   string            `json:"room_number"`
	TableNumber  string            `json:"table_number"`
	CustomerName string            `json:"customer_name"`
	GuestID      string            `json:"guest"`
	Subtotal     decimal.Decimal   `json:"subtotal"`
	Tax          decimal.Decimal   `json:"tax"`
	Total        decimal.Decimal   `json:"total"`
	Type         string            `json:"type"`
	Notes        string            `json:"notes"`
	Items        []createOrderItem `json:"items"`
}

func (req *createOrderRequest) ToModel() order.Order {
	items := make([]orderitem.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = orderitem.OrderItem{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
			Notes:      item.Notes,
		}
	}

	return order.Order{
		RoomNumber:   req.RoomNumber,
		TableNumber:  req.TableNumber,
		CustomerName: req.CustomerName,
		GuestID:      req.GuestID,
		Subtotal:     req.Subtotal,
		Tax:          req.Tax,
		Total:        req.Total,
		Type:         order.Type(req.Type),
		Notes:        req.Notes,
		Items:        items,
	}
}

// CreateOrder handles the create order request.
func CreateOrder(w http.ResponseWriter, r *http.Request, service service) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.WriteValidationError(w, err)
		slog.Error("Error decoding request body for create order", "error", err)

		return
	}

	created, err := service.CreateOrder(r.Context(), req.ToModel())
	if err != nil {
		httperr.WriteError(w, err)
		slog.Error("Error creating order", "error", err)

		return
	}

	if err := httperr.WriteJSON(w, http.StatusCreated, created); err != nil {
		slog.Error("Error writing response for create order", "error", err)
	}
}
