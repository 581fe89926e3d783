package reportsvc

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelops/settlement/internal/service/models/order"
	"github.com/hotelops/settlement/internal/service/models/orderitem"
	"github.com/hotelops/settlement/internal/service/models/payment"
)

type stubOrderRepo struct {
	orders     []order.Order
	lastFilter *order.QueryOrdersModel
}

func (s *stubOrderRepo) Insert(_ context.Context, o order.Order) (*order.Order, error) {
	return &o, nil
}

func (s *stubOrderRepo) GetByID(_ context.Context, _ string) (*order.Order, error) {
	return nil, nil
}

func (s *stubOrderRepo) Query(_ context.Context, filter *order.QueryOrdersModel) ([]order.Order, error) {
	s.lastFilter = filter

	return s.orders, nil
}

func (s *stubOrderRepo) UpdateStatus(_ context.Context, _ string, _ order.Status, _ time.Time) error {
	return nil
}

type stubOrderItemRepo struct {
	items []orderitem.OrderItem
}

func (s *stubOrderItemRepo) BulkInsert(_ context.Context, items []orderitem.OrderItem) ([]orderitem.OrderItem, error) {
	return items, nil
}

func (s *stubOrderItemRepo) Query(_ context.Context, _ *orderitem.QueryOrderItemsModel) ([]orderitem.OrderItem, error) {
	return s.items, nil
}

type stubPaymentRepo struct {
	payments []payment.Payment
}

func (s *stubPaymentRepo) Insert(_ context.Context, p payment.Payment) (*payment.Payment, error) {
	return &p, nil
}

func (s *stubPaymentRepo) GetByID(_ context.Context, _ string) (*payment.Payment, error) {
	return nil, nil
}

func (s *stubPaymentRepo) Query(_ context.Context, _ *payment.QueryPaymentsModel) ([]payment.Payment, error) {
	return s.payments, nil
}

func (s *stubPaymentRepo) UpdateStatus(
	_ context.Context,
	_ string,
	_ payment.Status,
	_ string,
	_ time.Time,
) error {
	return nil
}

func newTestService(orders *stubOrderRepo, items *stubOrderItemRepo, payments *stubPaymentRepo) *ReportService {
	return &ReportService{
		orders:     orders,
		orderItems: items,
		payments:   payments,
	}
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSalesReportEmptyWindow(t *testing.T) {
	svc := newTestService(&stubOrderRepo{}, &stubOrderItemRepo{}, &stubPaymentRepo{})

	rep, err := svc.SalesReport(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)

	assert.True(t, rep.Summary.TotalRevenue.IsZero())
	assert.Zero(t, rep.Summary.TotalOrders)
	assert.True(t, rep.Summary.AverageOrderValue.IsZero())
	assert.Empty(t, rep.SalesByType)
	assert.Empty(t, rep.SalesByStatus)
	assert.Empty(t, rep.TopSellingItems)
}

func TestSalesReportSingleOrder(t *testing.T) {
	orders := &stubOrderRepo{orders: []order.Order{
		{ID: "o1", Type: order.TypeRoomService, Status: order.StatusPaid, Total: amount("25.28")},
	}}
	items := &stubOrderItemRepo{items: []orderitem.OrderItem{
		{OrderID: "o1", Name: "Club Sandwich", Price: amount("11.49"), Quantity: 2},
	}}
	svc := newTestService(orders, items, &stubPaymentRepo{})

	rep, err := svc.SalesReport(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)

	assert.True(t, amount("25.28").Equal(rep.Summary.TotalRevenue))
	assert.Equal(t, 1, rep.Summary.TotalOrders)
	assert.True(t, amount("25.28").Equal(rep.Summary.AverageOrderValue))

	require.Len(t, rep.SalesByType, 1)
	assert.Equal(t, order.TypeRoomService, rep.SalesByType[0].Type)
	assert.Equal(t, 1, rep.SalesByType[0].OrderCount)
	assert.True(t, amount("25.28").Equal(rep.SalesByType[0].TotalRevenue))

	require.Len(t, rep.SalesByStatus, 1)
	assert.Equal(t, order.StatusPaid, rep.SalesByStatus[0].Status)

	require.Len(t, rep.TopSellingItems, 1)
	assert.Equal(t, "Club Sandwich", rep.TopSellingItems[0].Name)
	assert.EqualValues(t, 2, rep.TopSellingItems[0].TotalQuantity)
}

func TestSalesReportAverageRounding(t *testing.T) {
	orders := &stubOrderRepo{orders: []order.Order{
		{ID: "o1", Type: order.TypeBar, Status: order.StatusPaid, Total: amount("10.00")},
		{ID: "o2", Type: order.TypeBar, Status: order.StatusPaid, Total: amount("10.01")},
	}}
	svc := newTestService(orders, &stubOrderItemRepo{}, &stubPaymentRepo{})

	rep, err := svc.SalesReport(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)

	// 20.01 / 2 = 10.005, rounded half away from zero.
	assert.True(t, amount("10.01").Equal(rep.Summary.AverageOrderValue))
}

func TestSalesReportGroupsByTypeInEncounterOrder(t *testing.T) {
	orders := &stubOrderRepo{orders: []order.Order{
		{ID: "o1", Type: order.TypeRestaurant, Status: order.StatusPending, Total: amount("5.00")},
		{ID: "o2", Type: order.TypeBar, Status: order.StatusPending, Total: amount("7.00")},
		{ID: "o3", Type: order.TypeRestaurant, Status: order.StatusPaid, Total: amount("3.00")},
	}}
	svc := newTestService(orders, &stubOrderItemRepo{}, &stubPaymentRepo{})

	rep, err := svc.SalesReport(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)

	require.Len(t, rep.SalesByType, 2)
	assert.Equal(t, order.TypeRestaurant, rep.SalesByType[0].Type)
	assert.Equal(t, 2, rep.SalesByType[0].OrderCount)
	assert.True(t, amount("8.00").Equal(rep.SalesByType[0].TotalRevenue))
	assert.Equal(t, order.TypeBar, rep.SalesByType[1].Type)
}

func TestTopSellingItemsSumsUnitPrice(t *testing.T) {
	orders := &stubOrderRepo{orders: []order.Order{
		{ID: "o1", Type: order.TypeBar, Status: order.StatusPaid, Total: amount("15.00")},
		{ID: "o2", Type: order.TypeBar, Status: order.StatusPaid, Total: amount("15.00")},
	}}
	items := &stubOrderItemRepo{items: []orderitem.OrderItem{
		{OrderID: "o1", Name: "House Red", Price: amount("5.00"), Quantity: 3},
		{OrderID: "o2", Name: "House Red", Price: amount("5.00"), Quantity: 3},
	}}
	svc := newTestService(orders, items, &stubPaymentRepo{})

	rep, err := svc.SalesReport(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)

	require.Len(t, rep.TopSellingItems, 1)
	top := rep.TopSellingItems[0]
	assert.EqualValues(t, 6, top.TotalQuantity)
	// Revenue sums the unit price per line, not price times quantity.
	assert.True(t, amount("10.00").Equal(top.TotalRevenue))
}

func TestTopSellingItemsTruncatesToTen(t *testing.T) {
	orders := &stubOrderRepo{orders: []order.Order{
		{ID: "o1", Type: order.TypeBar, Status: order.StatusPaid, Total: amount("1.00")},
	}}

	items := &stubOrderItemRepo{}
	for i := 0; i < 12; i++ {
		items.items = append(items.items, orderitem.OrderItem{
			OrderID:  "o1",
			Name:     fmt.Sprintf("dish-%d", i),
			Price:    amount("1.00"),
			Quantity: 12 - i,
		})
	}
	svc := newTestService(orders, items, &stubPaymentRepo{})

	rep, err := svc.SalesReport(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)

	require.Len(t, rep.TopSellingItems, 10)
	assert.Equal(t, "dish-0", rep.TopSellingItems[0].Name)
	assert.EqualValues(t, 12, rep.TopSellingItems[0].TotalQuantity)
	assert.Equal(t, "dish-9", rep.TopSellingItems[9].Name)
}

func TestSalesReportWindowIsHalfOpen(t *testing.T) {
	orders := &stubOrderRepo{}
	svc := newTestService(orders, &stubOrderItemRepo{}, &stubPaymentRepo{})

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	rep, err := svc.SalesReport(context.Background(), start, end)
	require.NoError(t, err)

	assert.Equal(t, "2026-08-01", rep.Period.StartDate)
	assert.Equal(t, "2026-08-31", rep.Period.EndDate)

	require.NotNil(t, orders.lastFilter)
	assert.Equal(t, start, orders.lastFilter.CreatedFrom)
	assert.Equal(t, end.AddDate(0, 0, 1), orders.lastFilter.CreatedTo)
}

func TestSalesReportDefaultsToTrailingThirtyDays(t *testing.T) {
	orders := &stubOrderRepo{}
	svc := newTestService(orders, &stubOrderItemRepo{}, &stubPaymentRepo{})

	_, err := svc.SalesReport(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)

	require.NotNil(t, orders.lastFilter)
	days := orders.lastFilter.CreatedTo.Sub(orders.lastFilter.CreatedFrom).Hours() / 24
	assert.InDelta(t, defaultWindowDays+1, days, 1.1)
}

func TestPaymentReportGroupsByMethodAndStatus(t *testing.T) {
	payments := &stubPaymentRepo{payments: []payment.Payment{
		{ID: "p1", Method: payment.MethodCash, Status: payment.StatusCompleted, Amount: amount("10.00")},
		{ID: "p2", Method: payment.MethodCredit, Status: payment.StatusCompleted, Amount: amount("20.00")},
		{ID: "p3", Method: payment.MethodCash, Status: payment.StatusFailed, Amount: amount("5.00")},
	}}
	svc := newTestService(&stubOrderRepo{}, &stubOrderItemRepo{}, payments)

	rep, err := svc.PaymentReport(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)

	assert.True(t, amount("35.00").Equal(rep.TotalPayments))

	require.Len(t, rep.PaymentMethods, 2)
	assert.Equal(t, payment.MethodCash, rep.PaymentMethods[0].Method)
	assert.Equal(t, 2, rep.PaymentMethods[0].PaymentCount)
	assert.True(t, amount("15.00").Equal(rep.PaymentMethods[0].TotalAmount))

	require.Len(t, rep.PaymentStatus, 2)
	assert.Equal(t, payment.StatusCompleted, rep.PaymentStatus[0].Status)
	assert.True(t, amount("30.00").Equal(rep.PaymentStatus[0].TotalAmount))
}

func TestPaymentReportEmptyWindow(t *testing.T) {
	svc := newTestService(&stubOrderRepo{}, &stubOrderItemRepo{}, &stubPaymentRepo{})

	rep, err := svc.PaymentReport(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)

	assert.True(t, rep.TotalPayments.IsZero())
	assert.Empty(t, rep.PaymentMethods)
	assert.Empty(t, rep.PaymentStatus)
}
