package reports

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelops/settlement/internal/service/models/report"
)

type stubService struct {
	start time.Time
	end   time.Time
}

func (s *stubService) SalesReport(_ context.Context, start, end time.Time) (*report.SalesReport, error) {
	s.start = start
	s.end = end

	return &report.SalesReport{}, nil
}

func (s *stubService) PaymentReport(_ context.Context, start, end time.Time) (*report.PaymentReport, error) {
	s.start = start
	s.end = end

	return &report.PaymentReport{}, nil
}

func TestSalesReportParsesWindow(t *testing.T) {
	svc := &stubService{}
	req := httptest.NewRequest(http.MethodGet, "/api/reports/sales?start_date=2026-08-01&end_date=2026-08-31", nil)
	rec := httptest.NewRecorder()

	SalesReport(rec, req, svc)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), svc.start)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), svc.end)
}

func TestSalesReportDefaultsMissingBounds(t *testing.T) {
	svc := &stubService{}
	req := httptest.NewRequest(http.MethodGet, "/api/reports/sales", nil)
	rec := httptest.NewRecorder()

	SalesReport(rec, req, svc)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, svc.start.IsZero())
	assert.True(t, svc.end.IsZero())
}

func TestSalesReportRejectsBadDate(t *testing.T) {
	svc := &stubService{}
	req := httptest.NewRequest(http.MethodGet, "/api/reports/sales?start_date=08-01-2026", nil)
	rec := httptest.NewRecorder()

	SalesReport(rec, req, svc)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPaymentReportParsesWindow(t *testing.T) {
	svc := &stubService{}
	req := httptest.NewRequest(http.MethodGet, "/api/reports/payments?start_date=2026-01-15&end_date=2026-02-15", nil)
	rec := httptest.NewRecorder()

	PaymentReport(rec, req, svc)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), svc.start)
	assert.Equal(t, time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC), svc.end)
}
