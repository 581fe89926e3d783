package report

import (
	"github.com/shopspring/decimal"

	"github.com/hotelops/settlement/internal/service/models/order"
	"github.com/hotelops/settlement/internal/service/models/payment"
)

// Period is the inclusive calendar-date window a report was computed over.
type Period struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Summary holds the headline sales figures.
type Summary struct {
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalOrders       int             `json:"total_orders"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
}

// TypeBreakdown is revenue and count for one order type.
type TypeBreakdown struct {
	Type         order.Type      `json:"type"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	OrderCount   int             `json:"order_count"`
}

// StatusBreakdown is revenue and count for one order status.
type StatusBreakdown struct {
	Status       order.Status    `json:"status"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	OrderCount   int             `json:"order_count"`
}

// TopItem is an aggregated line for one snapshotted item name. TotalRevenue
// is the sum of unit prices across matching order items, not price×quantity.
type TopItem struct {
	Name          string          `json:"name"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

// SalesReport is the aggregate over orders created inside the window.
type SalesReport struct {
	Period          Period            `json:"period"`
	Summary         Summary           `json:"summary"`
	SalesByType     []TypeBreakdown   `json:"sales_by_type"`
	SalesByStatus   []StatusBreakdown `json:"sales_by_status"`
	TopSellingItems []TopItem         `json:"top_selling_items"`
}

// MethodBreakdown is amount and count for one payment method.
type MethodBreakdown struct {
	Method       payment.Method  `json:"method"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	PaymentCount int             `json:"payment_count"`
}

// PaymentStatusBreakdown is amount and count for one payment status.
type PaymentStatusBreakdown struct {
	Status       payment.Status  `json:"status"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	PaymentCount int             `json:"payment_count"`
}

// PaymentReport is the aggregate over payments created inside the window.
type PaymentReport struct {
	Period         Period                   `json:"period"`
	TotalPayments  decimal.Decimal          `json:"total_payments"`
	PaymentMethods []MethodBreakdown        `json:"payment_methods"`
	PaymentStatus  []PaymentStatusBreakdown `json:"payment_status"`
}
