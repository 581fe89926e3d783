package payment

import (
	"database/sql/driver"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Status is the payment processing state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Method is the tender used to settle a payment.
type Method string

const (
	MethodCash       Method = "cash"
	MethodCredit     Method = "credit"
	MethodDebit      Method = "debit"
	MethodRoomCharge Method = "room-charge"
)

var (
	ErrInvalidStatus = errors.New("invalid payment status")
	ErrInvalidMethod = errors.New("invalid payment method")
)

// Payment is a ledger entry against an order. Many payments may reference one
// order; the order linkage never changes after creation.
type Payment struct {
	ID            string          `json:"id"`
	OrderID       string          `json:"order"`
	Amount        decimal.Decimal `json:"amount"`
	Method        Method          `json:"method"`
	Status        Status          `json:"status"`
	TransactionID string          `json:"transaction_id,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (s Status) String() string {
	return string(s)
}

func (s Status) Value() (driver.Value, error) {
	return s.String(), nil
}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusCompleted, StatusFailed:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (m Method) String() string {
	return string(m)
}

func (m Method) Value() (driver.Value, error) {
	return m.String(), nil
}

func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodCash, MethodCredit, MethodDebit, MethodRoomCharge:
		return Method(s), nil
	default:
		return "", ErrInvalidMethod
	}
}
