package orderitem

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem represents an item within an order. Name and Price are snapshots
// captured from the catalog at creation time and never follow later catalog
// edits.
type OrderItem struct {
	ID         string          `json:"id"`
	OrderID    string          `json:"order_id"`
	MenuItemID string          `json:"menu_item"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}
