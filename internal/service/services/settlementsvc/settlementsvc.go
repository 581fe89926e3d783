package settlementsvc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hotelops/settlement/internal/clients/catalog"
	"github.com/hotelops/settlement/internal/dal/interfaces/iorderitemrepo"
	"github.com/hotelops/settlement/internal/dal/interfaces/iorderrepo"
	"github.com/hotelops/settlement/internal/dal/interfaces/ioutboxrepo"
	"github.com/hotelops/settlement/internal/dal/interfaces/ipaymentrepo"
	"github.com/hotelops/settlement/internal/dal/postgres"
	"github.com/hotelops/settlement/internal/dal/uow"
	"github.com/hotelops/settlement/internal/service/models/apperr"
	"github.com/hotelops/settlement/internal/service/models/order"
	"github.com/hotelops/settlement/internal/service/models/orderitem"
	"github.com/hotelops/settlement/internal/service/models/outbox"
	"github.com/hotelops/settlement/internal/service/models/payment"
)

const outboxMaxRetries = 5

// SettlementService orchestrates order creation, status updates, and payment
// processing. It holds no state of its own; multi-entity invariants are
// enforced here and nowhere else.
type SettlementService struct {
	pgClient *postgres.Client
	catalog  catalog.Client
	newUOW   func() unitOfWork
}

type unitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() iorderrepo.IOrderRepository
	OrderItemRepository() iorderitemrepo.IOrderItemRepository
	PaymentRepository() ipaymentrepo.IPaymentRepository
	OutboxRepository() ioutboxrepo.IOutboxRepository
}

// option is a function that configures the SettlementService.
type option func(*SettlementService)

// MustNewSettlementService creates a new SettlementService.
func MustNewSettlementService(opts ...option) *SettlementService {
	s := &SettlementService{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithPostgresClient sets the Postgres client for the SettlementService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPostgresClient(pgClient *postgres.Client) option {
	return func(s *SettlementService) {
		s.pgClient = pgClient
		s.newUOW = func() unitOfWork {
			return uow.NewUnitOfWork(pgClient)
		}
	}
}

// WithCatalog sets the catalog collaborator client.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithCatalog(c catalog.Client) option {
	return func(s *SettlementService) {
		s.catalog = c
	}
}

// CreateOrder validates the order, snapshots catalog data into its items, and
// persists the order with all items in one transaction. Either all rows exist
// afterwards or none do.
func (s *SettlementService) CreateOrder(ctx context.Context, o order.Order) (*order.Order, error) {
	if err := validateOrder(&o); err != nil {
		return nil, err
	}

	if err := s.resolveReferences(ctx, &o); err != nil {
		return nil, err
	}

	now := time.Now()
	o.ID = uuid.NewString()
	o.Status = order.StatusPending
	o.CreatedAt = now
	o.UpdatedAt = now
	for i := range o.Items {
		o.Items[i].ID = uuid.NewString()
		o.Items[i].OrderID = o.ID
		o.Items[i].CreatedAt = now
	}

	work := s.newUOW()
	if err := work.Begin(ctx); err != nil {
		return nil, err
	}
	defer work.Rollback(ctx) //nolint:errcheck // no-op after commit

	inserted, err := work.OrderRepository().Insert(ctx, o)
	if err != nil {
		return nil, err
	}

	items, err := work.OrderItemRepository().BulkInsert(ctx, o.Items)
	if err != nil {
		return nil, err
	}
	inserted.Items = items

	if err := s.stageEvent(ctx, work, outbox.RoutingKeyOrderCreated, inserted, now); err != nil {
		return nil, err
	}

	if err := work.Commit(ctx); err != nil {
		return nil, err
	}

	return inserted, nil
}

// UpdateOrderStatus sets the order status after an enum-membership check. Any
// recognized status is reachable from any other.
func (s *SettlementService) UpdateOrderStatus(ctx context.Context, id, newStatus string) (*order.Order, error) {
	status, err := order.ParseStatus(newStatus)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrValidationFailed, err)
	}

	work := s.newUOW()
	if err := work.OrderRepository().UpdateStatus(ctx, id, status, time.Now()); err != nil {
		return nil, err
	}

	return s.GetOrder(ctx, id)
}

// GetOrder retrieves one order with its items.
func (s *SettlementService) GetOrder(ctx context.Context, id string) (*order.Order, error) {
	work := s.newUOW()

	o, err := work.OrderRepository().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := work.OrderItemRepository().Query(ctx, &orderitem.QueryOrderItemsModel{
		OrderIds: []string{id},
	})
	if err != nil {
		return nil, err
	}
	o.Items = items

	return o, nil
}

// ListOrders retrieves orders with their items based on the filter.
func (s *SettlementService) ListOrders(ctx context.Context, filter *order.QueryOrdersModel) ([]order.Order, error) {
	work := s.newUOW()

	orders, err := work.OrderRepository().Query(ctx, filter)
	if err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return []order.Order{}, nil
	}

	itemFilter := &orderitem.QueryOrderItemsModel{}
	for _, o := range orders {
		itemFilter.OrderIds = append(itemFilter.OrderIds, o.ID)
	}
	items, err := work.OrderItemRepository().Query(ctx, itemFilter)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].Items = []orderitem.OrderItem{}
		for _, item := range items {
			if item.OrderID == orders[i].ID {
				orders[i].Items = append(orders[i].Items, item)
			}
		}
	}

	return orders, nil
}

// CreatePayment records a pending payment against an existing order.
func (s *SettlementService) CreatePayment(ctx context.Context, p payment.Payment) (*payment.Payment, error) {
	if err := validatePayment(&p); err != nil {
		return nil, err
	}

	work := s.newUOW()

	if _, err := work.OrderRepository().GetByID(ctx, p.OrderID); err != nil {
		return nil, err
	}

	now := time.Now()
	p.ID = uuid.NewString()
	p.Status = payment.StatusPending
	p.TransactionID = ""
	p.CreatedAt = now
	p.UpdatedAt = now

	return work.PaymentRepository().Insert(ctx, p)
}

// ProcessPayment transitions a payment's status as reported by the external
// processor. Completing a payment cascades the owning order to paid inside
// the same transaction: both writes succeed or neither does.
func (s *SettlementService) ProcessPayment(ctx context.Context, id, newStatus, transactionID string) (*payment.Payment, error) {
	status, err := payment.ParseStatus(newStatus)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrValidationFailed, err)
	}

	work := s.newUOW()
	if err := work.Begin(ctx); err != nil {
		return nil, err
	}
	defer work.Rollback(ctx) //nolint:errcheck // no-op after commit

	p, err := work.PaymentRepository().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := work.PaymentRepository().UpdateStatus(ctx, id, status, transactionID, now); err != nil {
		return nil, err
	}

	p.Status = status
	if transactionID != "" {
		p.TransactionID = transactionID
	}
	p.UpdatedAt = now

	if status == payment.StatusCompleted {
		if err := s.markOrderPaid(ctx, work, p, now); err != nil {
			return nil, err
		}
	}

	if err := work.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}

// markOrderPaid is the explicit payment-to-order cascade. It runs inside the
// payment transaction; concurrent completions are idempotent, last writer
// wins the order status.
func (s *SettlementService) markOrderPaid(ctx context.Context, work unitOfWork, p *payment.Payment, now time.Time) error {
	err := work.OrderRepository().UpdateStatus(ctx, p.OrderID, order.StatusPaid, now)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			// A completed payment referencing a missing order means the
			// ledger and the orders table disagree.
			return fmt.Errorf("%w: payment %s references missing order %s", apperr.ErrInconsistency, p.ID, p.OrderID)
		}

		return err
	}

	return s.stageEvent(ctx, work, outbox.RoutingKeyPaymentCompleted, p, now)
}

// GetPayment retrieves one payment by id.
func (s *SettlementService) GetPayment(ctx context.Context, id string) (*payment.Payment, error) {
	return s.newUOW().PaymentRepository().GetByID(ctx, id)
}

// ListPayments retrieves payments based on the filter.
func (s *SettlementService) ListPayments(ctx context.Context, filter *payment.QueryPaymentsModel) ([]payment.Payment, error) {
	payments, err := s.newUOW().PaymentRepository().Query(ctx, filter)
	if err != nil {
		return nil, err
	}

	if payments == nil {
		payments = []payment.Payment{}
	}

	return payments, nil
}

// resolveReferences consults the catalog collaborator to snapshot item
// name/price and to verify the guest reference. Any lookup failure aborts the
// creation; a missing record surfaces as ErrReferenceNotFound.
func (s *SettlementService) resolveReferences(ctx context.Context, o *order.Order) error {
	if o.GuestID != "" {
		if _, err := s.catalog.Guest(ctx, o.GuestID); err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return fmt.Errorf("guest %s: %w", o.GuestID, apperr.ErrReferenceNotFound)
			}

			return err
		}
	}

	for i := range o.Items {
		item, err := s.catalog.MenuItem(ctx, o.Items[i].MenuItemID)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return fmt.Errorf("menu item %s: %w", o.Items[i].MenuItemID, apperr.ErrReferenceNotFound)
			}

			return err
		}

		o.Items[i].Name = item.Name
		o.Items[i].Price = item.Price
	}

	return nil
}

// stageEvent writes a domain event into the outbox within the current
// transaction.
func (s *SettlementService) stageEvent(ctx context.Context, work unitOfWork, routingKey string, payload any, now time.Time) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return work.OutboxRepository().Insert(ctx, outbox.Message{
		ExchangeName: outbox.ExchangeSettlementEvents,
		RoutingKey:   routingKey,
		Payload:      body,
		ContentType:  "application/json",
		MaxRetries:   outboxMaxRetries,
		CreatedAt:    now,
		UpdatedAt:    now,
		NextRetryAt:  now,
	})
}
