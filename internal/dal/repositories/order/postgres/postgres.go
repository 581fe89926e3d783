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
	"github.com/hotelops/settlement/internal/service/models/order"
	"github.com/hotelops/settlement/internal/service/models/orderitem"
)

// OrderDal represents the order data access layer model.
type OrderDal struct {
	Id           string          `db:"id"`
	RoomNumber   *string         `db:"room_number"`
	TableNumber  *string         `db:"table_number"`
	CustomerName *string         `db:"customer_name"`
	GuestId      *string         `db:"guest_id"`
	Subtotal     decimal.Decimal `db:"subtotal"`
	Tax          decimal.Decimal `db:"tax"`
	Total        decimal.Decimal `db:"total"`
	Status       string          `db:"status"`
	Type         string          `db:"type"`
	Notes        *string         `db:"notes"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

// ToModel converts OrderDal to the service layer Order model.
func (o *OrderDal) ToModel() (*order.Order, error) {
	status, err := order.ParseStatus(o.Status)
	if err != nil {
		return nil, err
	}
	typ, err := order.ParseType(o.Type)
	if err != nil {
		return nil, err
	}

	return &order.Order{
		ID:           o.Id,
		RoomNumber:   deref(o.RoomNumber),
		TableNumber:  deref(o.TableNumber),
		CustomerName: deref(o.CustomerName),
		GuestID:      deref(o.GuestId),
		Subtotal:     o.Subtotal,
		Tax:          o.Tax,
		Total:        o.Total,
		Status:       status,
		Type:         typ,
		Notes:        deref(o.Notes),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
		Items:        []orderitem.OrderItem{}, // Populated separately
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// GenericConn is an interface that works with both pgxpool.Pool and pgx.Tx
type GenericConn interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// PostgresOrderRepository represents a Postgres order repository.
type PostgresOrderRepository struct {
	conn GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresOrderRepository creates a new Postgres order repository.
func NewPostgresOrderRepository(conn GenericConn) *PostgresOrderRepository {
	return &PostgresOrderRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var orderColumns = []string{
	"id",
	"room_number",
	"table_number",
	"customer_name",
	"guest_id",
	"subtotal",
	"tax",
	"total",
	"status",
	"type",
	"notes",
	"created_at",
	"updated_at",
}

// Insert persists a single order row.
func (r *PostgresOrderRepository) Insert(ctx context.Context, o order.Order) (*order.Order, error) {
	query, args, err := r.sb.
		Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID,
			nullable(o.RoomNumber),
			nullable(o.TableNumber),
			nullable(o.CustomerName),
			nullable(o.GuestID),
			o.Subtotal,
			o.Tax,
			o.Total,
			o.Status,
			o.Type,
			nullable(o.Notes),
			o.CreatedAt,
			o.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	return &o, nil
}

// GetByID retrieves one order by id.
func (r *PostgresOrderRepository) GetByID(ctx context.Context, id string) (*order.Order, error) {
	query, args, err := r.sb.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	row := r.conn.QueryRow(ctx, query, args...)

	dal, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("order %s: %w", id, apperr.ErrNotFound)
		}

		return nil, fmt.Errorf("failed to scan order: %w", err)
	}

	return dal.ToModel()
}

// Query retrieves orders based on filter criteria.
func (r *PostgresOrderRepository) Query(ctx context.Context, filter *order.QueryOrdersModel) ([]order.Order, error) {
	query := r.sb.
		Select(orderColumns...).
		From("orders")

	if len(filter.Ids) > 0 {
		query = query.Where(sq.Eq{"id": filter.Ids})
	}
	if filter.Status != "" {
		query = query.Where(sq.Eq{"status": filter.Status})
	}
	if filter.Type != "" {
		query = query.Where(sq.Eq{"type": filter.Type})
	}
	if filter.RoomNumber != "" {
		query = query.Where(sq.Eq{"room_number": filter.RoomNumber})
	}
	if filter.TableNumber != "" {
		query = query.Where(sq.Eq{"table_number": filter.TableNumber})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(sq.Or{
			sq.ILike{"customer_name": pattern},
			sq.ILike{"room_number": pattern},
			sq.ILike{"table_number": pattern},
			sq.ILike{"notes": pattern},
		})
	}
	if !filter.CreatedFrom.IsZero() {
		query = query.Where(sq.GtOrEq{"created_at": filter.CreatedFrom})
	}
	if !filter.CreatedTo.IsZero() {
		query = query.Where(sq.Lt{"created_at": filter.CreatedTo})
	}

	query = query.OrderBy(orderClause(filter))

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
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var result []order.Order
	for rows.Next() {
		dal, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		model, err := dal.ToModel()
		if err != nil {
			return nil, fmt.Errorf("failed to convert order dal to model: %w", err)
		}
		result = append(result, *model)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// UpdateStatus sets the order status and bumps the last-modified timestamp.
func (r *PostgresOrderRepository) UpdateStatus(
	ctx context.Context,
	id string,
	status order.Status,
	updatedAt time.Time,
) error {
	query, args, err := r.sb.
		Update("orders").
		Set("status", status).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	tag, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %s: %w", id, apperr.ErrNotFound)
	}

	return nil
}

func orderClause(filter *order.QueryOrdersModel) string {
	field := filter.OrderBy
	switch field {
	case order.OrderByCreatedAt, order.OrderByTotal, order.OrderByStatus:
	default:
		// Newest-first is the default ordering.
		return "created_at DESC"
	}

	if filter.Descending {
		return field + " DESC"
	}

	return field + " ASC"
}

func scanOrder(row pgx.Row) (*OrderDal, error) {
	var dal OrderDal
	err := row.Scan(
		&dal.Id,
		&dal.RoomNumber,
		&dal.TableNumber,
		&dal.CustomerName,
		&dal.GuestId,
		&dal.Subtotal,
		&dal.Tax,
		&dal.Total,
		&dal.Status,
		&dal.Type,
		&dal.Notes,
		&dal.CreatedAt,
		&dal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &dal, nil
}
