package order

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hotelops/settlement/internal/service/models/orderitem"
)

// Order represents a venue order together with its owned item snapshots.
type Order struct {
	ID           string                `json:"id"`
	RoomNumber   string                `json:"room_number,omitempty"`
	TableNumber  string                `json:"table_number,omitempty"`
	CustomerName string                `json:"customer_name,omitempty"`
	GuestID      string                `json:"guest,omitempty"`
	Subtotal     decimal.Decimal       `json:"subtotal"`
	Tax          decimal.Decimal       `json:"tax"`
	Total        decimal.Decimal       `json:"total"`
	Status       Status                `json:"status"`
	Type         Type                  `json:"type"`
	Notes        string                `json:"notes,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
	Items        []orderitem.OrderItem `json:"items"`
}
