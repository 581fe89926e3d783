package reports

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/hotelops/settlement/internal/service/models/apperr"
	"github.com/hotelops/settlement/internal/service/models/report"
	"github.com/hotelops/settlement/internal/transport/http/httperr"
)

const dateLayout = "2006-01-02"

// service is an interface for the reporting layer.
type service interface {
	SalesReport(ctx context.Context, start, end time.Time) (*report.SalesReport, error)
	PaymentReport(ctx context.Context, start, end time.Time) (*report.PaymentReport, error)
}

// SalesReport handles the sales report request.
func SalesReport(w http.ResponseWriter, r *http.Request, service service) {
	start, end, err := parseWindow(r)
	if err != nil {
		httperr.WriteError(w, err)

		return
	}

	rep, err := service.SalesReport(r.Context(), start, end)
	if err != nil {
		httperr.WriteError(w, err)
		slog.Error("Error building sales report", "error", err)

		return
	}

	if err := httperr.WriteJSON(w, http.StatusOK, rep); err != nil {
		slog.Error("Error sending response", "error", err)
	}
}

// PaymentReport handles the payment report request.
func PaymentReport(w http.ResponseWriter, r *http.Request, service service) {
	start, end, err := parseWindow(r)
	if err != nil {
		httperr.WriteError(w, err)

		return
	}

	rep, err := service.PaymentReport(r.Context(), start, end)
	if err != nil {
		httperr.WriteError(w, err)
		slog.Error("Error building payment report", "error", err)

		return
	}

	if err := httperr.WriteJSON(w, http.StatusOK, rep); err != nil {
		slog.Error("Error sending response", "error", err)
	}
}

// parseWindow reads optional start_date/end_date query parameters. Zero
// values mean the service applies its default trailing window.
func parseWindow(r *http.Request) (time.Time, time.Time, error) {
	var start, end time.Time

	query := r.URL.Query()

	if raw := query.Get("start_date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return start, end, fmt.Errorf("%w: unparsable start_date %q", apperr.ErrValidationFailed, raw)
		}
		start = parsed
	}

	if raw := query.Get("end_date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return start, end, fmt.Errorf("%w: unparsable end_date %q", apperr.ErrValidationFailed, raw)
		}
		end = parsed
	}

	return start, end, nil
}
