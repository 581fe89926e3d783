package settlementsvc

import (
	"fmt"

	"github.com/hotelops/settlement/internal/service/models/apperr"
	"github.com/hotelops/settlement/internal/service/models/money"
	"github.com/hotelops/settlement/internal/service/models/order"
	"github.com/hotelops/settlement/internal/service/models/payment"
)

func validateOrder(o *order.Order) error {
	if _, err := order.ParseType(o.Type.String()); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrValidationFailed, err)
	}

	if len(o.Items) == 0 {
		return fmt.Errorf("%w: order must have at least one item", apperr.ErrValidationFailed)
	}

	for i, item := range o.Items {
		if item.MenuItemID == "" {
			return fmt.Errorf("%w: item %d has no menu item reference", apperr.ErrValidationFailed, i)
		}
		if item.Quantity < 1 {
			return fmt.Errorf("%w: item %d quantity must be at least 1", apperr.ErrValidationFailed, i)
		}
	}

	if money.IsNegative(o.Subtotal) || money.IsNegative(o.Tax) || money.IsNegative(o.Total) {
		return fmt.Errorf("%w: monetary amounts must be non-negative", apperr.ErrValidationFailed)
	}

	if !money.Reconciles(o.Subtotal, o.Tax, o.Total) {
		return fmt.Errorf(
			"%w: total %s does not reconcile with subtotal %s + tax %s",
			apperr.ErrValidationFailed, o.Total, o.Subtotal, o.Tax,
		)
	}

	return nil
}

func validatePayment(p *payment.Payment) error {
	if p.OrderID == "" {
		return fmt.Errorf("%w: payment must reference an order", apperr.ErrValidationFailed)
	}

	if _, err := payment.ParseMethod(p.Method.String()); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrValidationFailed, err)
	}

	if !money.IsPositive(p.Amount) {
		return fmt.Errorf("%w: payment amount must be positive", apperr.ErrValidationFailed)
	}

	return nil
}
