package postgresrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/hotelops/settlement/internal/service/models/apperr"
	"github.com/hotelops/settlement/internal/service/models/payment"
)

// PaymentDal represents the payment data access layer model.
type PaymentDal struct {
	Id            string          `db:"id"`
	OrderId       string          `db:"order_id"`
	Amount        decimal.Decimal `db:"amount"`
	Method        string          `db:"method"`
	Status        string          `db:"status"`
	TransactionId *string         `db:"transaction_id"`
	Notes         *string         `db:"notes"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

// ToModel converts PaymentDal to the service layer Payment model.
func (p *PaymentDal) ToModel() (*payment.Payment, error) {
	method, err := payment.ParseMethod(p.Method)
	if err != nil {
		return nil, err
	}
	status, err := payment.ParseStatus(p.Status)
	if err != nil {
		return nil, err
	}

	txnID := ""
	if p.TransactionId != nil {
		txnID = *p.TransactionId
	}
	notes := ""
	if p.Notes != nil {
		notes = *p.Notes
	}

	return &payment.Payment{
		ID:            p.Id,
		OrderID:       p.OrderId,
		Amount:        p.Amount,
		Method:        method,
		Status:        status,
		TransactionID: txnID,
		Notes:         notes,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}, nil
}

// GenericConn is an interface that works with both pgxpool.Pool and pgx.Tx
type GenericConn interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// PostgresPaymentRepository represents a Postgres payment repository.
type PostgresPaymentRepository struct {
	conn GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresPaymentRepository creates a new Postgres payment repository.
func NewPostgresPaymentRepository(conn GenericConn) *PostgresPaymentRepository {
	return &PostgresPaymentRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var paymentColumns = []string{
	"p.id",
	"p.order_id",
	"p.amount",
	"p.method",
	"p.status",
	"p.transaction_id",
	"p.notes",
	"p.created_at",
	"p.updated_at",
}

// Insert persists a single payment row.
func (r *PostgresPaymentRepository) Insert(ctx context.Context, p payment.Payment) (*payment.Payment, error) {
	var txnID, notes *string
	if p.TransactionID != "" {
		txnID = &p.TransactionID
	}
	if p.Notes != "" {
		notes = &p.Notes
	}

	query, args, err := r.sb.
		Insert("payments").
		Columns(
			"id",
			"order_id",
			"amount",
			"method",
			"status",
			"transaction_id",
			"notes",
			"created_at",
			"updated_at",
		).
		Values(
			p.ID,
			p.OrderID,
			p.Amount,
			p.Method,
			p.Status,
			txnID,
			notes,
			p.CreatedAt,
			p.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("failed to insert payment: %w", err)
	}

	return &p, nil
}

// GetByID retrieves one payment by id.
func (r *PostgresPaymentRepository) GetByID(ctx context.Context, id string) (*payment.Payment, error) {
	query, args, err := r.sb.
		Select(paymentColumns...).
		From("payments p").
		Where(sq.Eq{"p.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	row := r.conn.QueryRow(ctx, query, args...)

	dal, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("payment %s: %w", id, apperr.ErrNotFound)
		}

		return nil, fmt.Errorf("failed to scan payment: %w", err)
	}

	return dal.ToModel()
}

// Query retrieves payments based on filter criteria. Search matches the
// transaction id or the owning order's customer name.
func (r *PostgresPaymentRepository) Query(
	ctx context.Context,
	filter *payment.QueryPaymentsModel,
) ([]payment.Payment, error) {
	query := r.sb.
		Select(paymentColumns...).
		From("payments p")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.
			LeftJoin("orders o ON o.id = p.order_id").
			Where(sq.Or{
				sq.ILike{"p.transaction_id": pattern},
				sq.ILike{"o.customer_name": pattern},
			})
	}

	if len(filter.Ids) > 0 {
		query = query.Where(sq.Eq{"p.id": filter.Ids})
	}
	if filter.OrderID != "" {
		query = query.Where(sq.Eq{"p.order_id": filter.OrderID})
	}
	if filter.Status != "" {
		query = query.Where(sq.Eq{"p.status": filter.Status})
	}
	if filter.Method != "" {
		query = query.Where(sq.Eq{"p.method": filter.Method})
	}
	if !filter.CreatedFrom.IsZero() {
		query = query.Where(sq.GtOrEq{"p.created_at": filter.CreatedFrom})
	}
	if !filter.CreatedTo.IsZero() {
		query = query.Where(sq.Lt{"p.created_at": filter.CreatedTo})
	}

	query = query.OrderBy("p.created_at DESC")

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	var result []payment.Payment
	for rows.Next() {
		dal, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		model, err := dal.ToModel()
		if err != nil {
			return nil, fmt.Errorf("failed to convert payment dal to model: %w", err)
		}
		result = append(result, *model)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// UpdateStatus sets the payment status, records the transaction id when
// supplied, and bumps the last-modified timestamp.
func (r *PostgresPaymentRepository) UpdateStatus(
	ctx context.Context,
	id string,
	status payment.Status,
	transactionID string,
	updatedAt time.Time,
) error {
	update := r.sb.
		Update("payments").
		Set("status", status).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id})

	if transactionID != "" {
		update = update.Set("transaction_id", transactionID)
	}

	query, args, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	tag, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payment %s: %w", id, apperr.ErrNotFound)
	}

	return nil
}

func scanPayment(row pgx.Row) (*PaymentDal, error) {
	var dal PaymentDal
	err := row.Scan(
		&dal.Id,
		&dal.OrderId,
		&dal.Amount,
		&dal.Method,
		&dal.Status,
		&dal.TransactionId,
		&dal.Notes,
		&dal.CreatedAt,
		&dal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &dal, nil
}
