package uow

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/hotelops/settlement/internal/dal/interfaces/iorderitemrepo"
	"github.com/hotelops/settlement/internal/dal/interfaces/iorderrepo"
	"github.com/hotelops/settlement/internal/dal/interfaces/ioutboxrepo"
	"github.com/hotelops/settlement/internal/dal/interfaces/ipaymentrepo"
	"github.com/hotelops/settlement/internal/dal/postgres"
	orderrepo "github.com/hotelops/settlement/internal/dal/repositories/order/postgres"
	orderitemrepo "github.com/hotelops/settlement/internal/dal/repositories/orderitem/postgres"
	outboxrepo "github.com/hotelops/settlement/internal/dal/repositories/outbox/postgres"
	paymentrepo "github.com/hotelops/settlement/internal/dal/repositories/payment/postgres"
)

// unitOfWork scopes repository writes to a single pgx transaction. Before
// Begin the repositories run on the pool; after Begin they are rebound to the
// transaction so every write commits or rolls back together.
type unitOfWork struct {
	client        *postgres.Client
	tx            pgx.Tx
	orderRepo     iorderrepo.IOrderRepository
	orderItemRepo iorderitemrepo.IOrderItemRepository
	paymentRepo   ipaymentrepo.IPaymentRepository
	outboxRepo    ioutboxrepo.IOutboxRepository
}

func NewUnitOfWork(client *postgres.Client) *unitOfWork {
	pool := client.Pool()

	return &unitOfWork{
		client:        client,
		orderRepo:     orderrepo.NewPostgresOrderRepository(pool),
		orderItemRepo: orderitemrepo.NewPostgresOrderItemRepository(pool),
		paymentRepo:   paymentrepo.NewPostgresPaymentRepository(pool),
		outboxRepo:    outboxrepo.NewOutboxRepository(pool),
	}
}

func (u *unitOfWork) OrderRepository() iorderrepo.IOrderRepository {
	return u.orderRepo
}

func (u *unitOfWork) OrderItemRepository() iorderitemrepo.IOrderItemRepository {
	return u.orderItemRepo
}

func (u *unitOfWork) PaymentRepository() ipaymentrepo.IPaymentRepository {
	return u.paymentRepo
}

func (u *unitOfWork) OutboxRepository() ioutboxrepo.IOutboxRepository {
	return u.outboxRepo
}

func (u *unitOfWork) Begin(ctx context.Context) error {
	tx, err := u.client.Pool().Begin(ctx)
	if err != nil {
		return err
	}

	u.tx = tx
	u.orderRepo = orderrepo.NewPostgresOrderRepository(tx)
	u.orderItemRepo = orderitemrepo.NewPostgresOrderItemRepository(tx)
	u.paymentRepo = paymentrepo.NewPostgresPaymentRepository(tx)
	u.outboxRepo = outboxrepo.NewOutboxRepository(tx)

	return nil
}

func (u *unitOfWork) Commit(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}
	return u.tx.Commit(ctx)
}

func (u *unitOfWork) Rollback(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}
	return u.tx.Rollback(ctx)
}
