package payment

import "time"

// QueryPaymentsModel represents filter parameters for querying payments.
// Search matches the transaction id or the owning order's customer name.
type QueryPaymentsModel struct {
	Ids         []string  `json:"ids,omitempty"`
	OrderID     string    `json:"order,omitempty"`
	Status      Status    `json:"status,omitempty"`
	Method      Method    `json:"method,omitempty"`
	Search      string    `json:"search,omitempty"`
	CreatedFrom time.Time `json:"created_from,omitempty"`
	CreatedTo   time.Time `json:"created_to,omitempty"`
	Limit       int       `json:"limit,omitempty"`
	Offset      int       `json:"offset,omitempty"`
}
