package outbox

import (
	"time"
)

// Routing for settlement domain events.
const (
	ExchangeSettlementEvents = "settlement.events"

	RoutingKeyOrderCreated     = "order.created"
	RoutingKeyPaymentCompleted = "payment.completed"
)

// Message is a domain event staged in the outbox table inside the same
// transaction as the business write, and published to RabbitMQ by the worker.
type Message struct {
	ID           int64
	ExchangeName string
	RoutingKey   string
	Payload      []byte
	ContentType  string
	RetryCount   int
	MaxRetries   int
	LastError    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	NextRetryAt  time.Time
}
