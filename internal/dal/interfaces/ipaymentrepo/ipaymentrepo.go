package ipaymentrepo

import (
	"context"
	"time"

	"github.com/hotelops/settlement/internal/service/models/payment"
)

// IPaymentRepository is an interface for the payment postgres repository.
type IPaymentRepository interface {
	Insert(ctx context.Context, p payment.Payment) (*payment.Payment, error)
	GetByID(ctx context.Context, id string) (*payment.Payment, error)
	Query(ctx context.Context, filter *payment.QueryPaymentsModel) ([]payment.Payment, error)
	UpdateStatus(ctx context.Context, id string, status payment.Status, transactionID string, updatedAt time.Time) error
}
