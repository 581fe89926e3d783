package reportsvc

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hotelops/settlement/internal/dal/interfaces/iorderitemrepo"
	"github.com/hotelops/settlement/internal/dal/interfaces/iorderrepo"
	"github.com/hotelops/settlement/internal/dal/interfaces/ipaymentrepo"
	"github.com/hotelops/settlement/internal/dal/postgres"
	orderrepo "github.com/hotelops/settlement/internal/dal/repositories/order/postgres"
	orderitemrepo "github.com/hotelops/settlement/internal/dal/repositories/orderitem/postgres"
	paymentrepo "github.com/hotelops/settlement/internal/dal/repositories/payment/postgres"
	"github.com/hotelops/settlement/internal/service/models/order"
	"github.com/hotelops/settlement/internal/service/models/orderitem"
	"github.com/hotelops/settlement/internal/service/models/payment"
	"github.com/hotelops/settlement/internal/service/models/report"
)

const (
	dateLayout        = "2006-01-02"
	defaultWindowDays = 30
	topItemsLimit     = 10
)

// ReportService computes read-only aggregates over persisted orders and
// payments. It takes no locks and never mutates underlying records; reports
// are best-effort point-in-time snapshots.
type ReportService struct {
	orders     iorderrepo.IOrderRepository
	orderItems iorderitemrepo.IOrderItemRepository
	payments   ipaymentrepo.IPaymentRepository
}

// option is a function that configures the ReportService.
type option func(*ReportService)

// MustNewReportService creates a new ReportService.
func MustNewReportService(opts ...option) *ReportService {
	s := &ReportService{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithPostgresClient binds the report repositories to the connection pool.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPostgresClient(pgClient *postgres.Client) option {
	return func(s *ReportService) {
		pool := pgClient.Pool()
		s.orders = orderrepo.NewPostgresOrderRepository(pool)
		s.orderItems = orderitemrepo.NewPostgresOrderItemRepository(pool)
		s.payments = paymentrepo.NewPostgresPaymentRepository(pool)
	}
}

// SalesReport aggregates orders created inside [start, end]. Zero bounds
// default to the trailing 30 days ending today.
func (s *ReportService) SalesReport(ctx context.Context, start, end time.Time) (*report.SalesReport, error) {
	period, from, to := resolveWindow(start, end)

	orders, err := s.orders.Query(ctx, &order.QueryOrdersModel{
		CreatedFrom: from,
		CreatedTo:   to,
	})
	if err != nil {
		return nil, err
	}

	rep := &report.SalesReport{
		Period:          period,
		SalesByType:     []report.TypeBreakdown{},
		SalesByStatus:   []report.StatusBreakdown{},
		TopSellingItems: []report.TopItem{},
	}

	revenue := decimal.Zero
	typeIndex := map[order.Type]int{}
	statusIndex := map[order.Status]int{}

	for _, o := range orders {
		revenue = revenue.Add(o.Total)

		ti, ok := typeIndex[o.Type]
		if !ok {
			ti = len(rep.SalesByType)
			typeIndex[o.Type] = ti
			rep.SalesByType = append(rep.SalesByType, report.TypeBreakdown{Type: o.Type})
		}
		rep.SalesByType[ti].TotalRevenue = rep.SalesByType[ti].TotalRevenue.Add(o.Total)
		rep.SalesByType[ti].OrderCount++

		si, ok := statusIndex[o.Status]
		if !ok {
			si = len(rep.SalesByStatus)
			statusIndex[o.Status] = si
			rep.SalesByStatus = append(rep.SalesByStatus, report.StatusBreakdown{Status: o.Status})
		}
		rep.SalesByStatus[si].TotalRevenue = rep.SalesByStatus[si].TotalRevenue.Add(o.Total)
		rep.SalesByStatus[si].OrderCount++
	}

	rep.Summary = report.Summary{
		TotalRevenue:      revenue,
		TotalOrders:       len(orders),
		AverageOrderValue: decimal.Zero,
	}
	if len(orders) > 0 {
		rep.Summary.AverageOrderValue = revenue.
			Div(decimal.NewFromInt(int64(len(orders)))).
			Round(2)
	}

	topItems, err := s.topSellingItems(ctx, orders)
	if err != nil {
		return nil, err
	}
	rep.TopSellingItems = topItems

	return rep, nil
}

// PaymentReport aggregates payments created inside [start, end].
func (s *ReportService) PaymentReport(ctx context.Context, start, end time.Time) (*report.PaymentReport, error) {
	period, from, to := resolveWindow(start, end)

	payments, err := s.payments.Query(ctx, &payment.QueryPaymentsModel{
		CreatedFrom: from,
		CreatedTo:   to,
	})
	if err != nil {
		return nil, err
	}

	rep := &report.PaymentReport{
		Period:         period,
		TotalPayments:  decimal.Zero,
		PaymentMethods: []report.MethodBreakdown{},
		PaymentStatus:  []report.PaymentStatusBreakdown{},
	}

	methodIndex := map[payment.Method]int{}
	statusIndex := map[payment.Status]int{}

	for _, p := range payments {
		rep.TotalPayments = rep.TotalPayments.Add(p.Amount)

		mi, ok := methodIndex[p.Method]
		if !ok {
			mi = len(rep.PaymentMethods)
			methodIndex[p.Method] = mi
			rep.PaymentMethods = append(rep.PaymentMethods, report.MethodBreakdown{Method: p.Method})
		}
		rep.PaymentMethods[mi].TotalAmount = rep.PaymentMethods[mi].TotalAmount.Add(p.Amount)
		rep.PaymentMethods[mi].PaymentCount++

		si, ok := statusIndex[p.Status]
		if !ok {
			si = len(rep.PaymentStatus)
			statusIndex[p.Status] = si
			rep.PaymentStatus = append(rep.PaymentStatus, report.PaymentStatusBreakdown{Status: p.Status})
		}
		rep.PaymentStatus[si].TotalAmount = rep.PaymentStatus[si].TotalAmount.Add(p.Amount)
		rep.PaymentStatus[si].PaymentCount++
	}

	return rep, nil
}

// topSellingItems groups the selection's order items by snapshotted name,
// summing quantity and unit price. Sorted by quantity descending with stable
// ties, truncated to the top 10. The revenue column sums price, not
// price×quantity, matching the established report output.
func (s *ReportService) topSellingItems(ctx context.Context, orders []order.Order) ([]report.TopItem, error) {
	if len(orders) == 0 {
		return []report.TopItem{}, nil
	}

	filter := &orderitem.QueryOrderItemsModel{}
	for _, o := range orders {
		filter.OrderIds = append(filter.OrderIds, o.ID)
	}

	items, err := s.orderItems.Query(ctx, filter)
	if err != nil {
		return nil, err
	}

	grouped := []report.TopItem{}
	nameIndex := map[string]int{}
	for _, item := range items {
		i, ok := nameIndex[item.Name]
		if !ok {
			i = len(grouped)
			nameIndex[item.Name] = i
			grouped = append(grouped, report.TopItem{Name: item.Name})
		}
		grouped[i].TotalQuantity += int64(item.Quantity)
		grouped[i].TotalRevenue = grouped[i].TotalRevenue.Add(item.Price)
	}

	sort.SliceStable(grouped, func(a, b int) bool {
		return grouped[a].TotalQuantity > grouped[b].TotalQuantity
	})

	if len(grouped) > topItemsLimit {
		grouped = grouped[:topItemsLimit]
	}

	return grouped, nil
}

// resolveWindow turns optional bounds into the report period and a half-open
// timestamp range. Bounds are inclusive calendar dates.
func resolveWindow(start, end time.Time) (report.Period, time.Time, time.Time) {
	now := time.Now()
	if end.IsZero() {
		end = now
	}
	if start.IsZero() {
		start = now.AddDate(0, 0, -defaultWindowDays)
	}

	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	to := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location()).AddDate(0, 0, 1)

	period := report.Period{
		StartDate: from.Format(dateLayout),
		EndDate:   end.Format(dateLayout),
	}

	return period, from, to
}
