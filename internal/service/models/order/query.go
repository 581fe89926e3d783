package order

import "time"

// Sortable fields for order listings.
const (
	OrderByCreatedAt = "created_at"
	OrderByTotal     = "total"
	OrderByStatus    = "status"
)

// QueryOrdersModel represents filter parameters for querying orders.
type QueryOrdersModel struct {
	Ids         []string  `json:"ids,omitempty"`
	Status      Status    `json:"status,omitempty"`
	Type        Type      `json:"type,omitempty"`
	RoomNumber  string    `json:"room_number,omitempty"`
	TableNumber string    `json:"table_number,omitempty"`
	Search      string    `json:"search,omitempty"`
	CreatedFrom time.Time `json:"created_from,omitempty"`
	CreatedTo   time.Time `json:"created_to,omitempty"`
	OrderBy     string    `json:"order_by,omitempty"`
	Descending  bool      `json:"descending,omitempty"`
	Limit       int       `json:"limit,omitempty"`
	Offset      int       `json:"offset,omitempty"`
}
