package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/viper"

	"github.com/hotelops/settlement/internal/service/models/order"
	"github.com/hotelops/settlement/internal/service/models/payment"
	"github.com/hotelops/settlement/internal/service/models/report"
	createorder "github.com/hotelops/settlement/internal/transport/http/create_order"
	createpayment "github.com/hotelops/settlement/internal/transport/http/create_payment"
	listorders "github.com/hotelops/settlement/internal/transport/http/list_orders"
	listpayments "github.com/hotelops/settlement/internal/transport/http/list_payments"
	orderstatus "github.com/hotelops/settlement/internal/transport/http/order_status"
	processpayment "github.com/hotelops/settlement/internal/transport/http/process_payment"
	"github.com/hotelops/settlement/internal/transport/http/reports"
	"github.com/hotelops/settlement/pkg/http/middleware/trace"
	"github.com/hotelops/settlement/pkg/logger"
)

type settlementService interface {
	CreateOrder(ctx context.Context, o order.Order) (*order.Order, error)
	GetOrder(ctx context.Context, id string) (*order.Order, error)
	ListOrders(ctx context.Context, filter *order.QueryOrdersModel) ([]order.Order, error)
	UpdateOrderStatus(ctx context.Context, id, newStatus string) (*order.Order, error)
	CreatePayment(ctx context.Context, p payment.Payment) (*payment.Payment, error)
	GetPayment(ctx context.Context, id string) (*payment.Payment, error)
	ListPayments(ctx context.Context, filter *payment.QueryPaymentsModel) ([]payment.Payment, error)
	ProcessPayment(ctx context.Context, id, newStatus, transactionID string) (*payment.Payment, error)
}

type reportService interface {
	SalesReport(ctx context.Context, start, end time.Time) (*report.SalesReport, error)
	PaymentReport(ctx context.Context, start, end time.Time) (*report.PaymentReport, error)
}

type HTTPTransport struct {
	server     *http.Server
	router     *chi.Mux
	settlement settlementService
	reporting  reportService
}

func NewHTTPTransport(settlement settlementService, reporting reportService) *HTTPTransport {
	router := newRouter()
	server := newServer(router)
	return &HTTPTransport{
		server:     server,
		router:     router,
		settlement: settlement,
		reporting:  reporting,
	}
}

func (h *HTTPTransport) Run() error {
	return h.server.ListenAndServe()
}

func (h *HTTPTransport) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// RegisterRoutes registers the routes for the HTTPTransport.
func (h *HTTPTransport) RegisterRoutes() {
	h.router.Route("/api", func(r chi.Router) {
		r.Route("/orders", func(r chi.Router) {
			r.Post("/", h.createOrder)
			r.Get("/", h.listOrders)
			r.Get("/{id}", h.getOrder)
			r.Patch("/{id}/status", h.updateOrderStatus)
		})
		r.Route("/payments", func(r chi.Router) {
			r.Post("/", h.createPayment)
			r.Get("/", h.listPayments)
			r.Get("/{id}", h.getPayment)
			r.Patch("/{id}/process", h.processPayment)
		})
		r.Route("/reports", func(r chi.Router) {
			r.Get("/sales", h.salesReport)
			r.Get("/payments", h.paymentReport)
		})
	})
}

func (h *HTTPTransport) createOrder(w http.ResponseWriter, r *http.Request) {
	createorder.CreateOrder(w, r, h.settlement)
}

func (h *HTTPTransport) listOrders(w http.ResponseWriter, r *http.Request) {
	listorders.ListOrders(w, r, h.settlement)
}

func (h *HTTPTransport) getOrder(w http.ResponseWriter, r *http.Request) {
	listorders.GetOrder(w, r, h.settlement)
}

func (h *HTTPTransport) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderstatus.UpdateStatus(w, r, h.settlement)
}

func (h *HTTPTransport) createPayment(w http.ResponseWriter, r *http.Request) {
	createpayment.CreatePayment(w, r, h.settlement)
}

func (h *HTTPTransport) listPayments(w http.ResponseWriter, r *http.Request) {
	listpayments.ListPayments(w, r, h.settlement)
}

func (h *HTTPTransport) getPayment(w http.ResponseWriter, r *http.Request) {
	listpayments.GetPayment(w, r, h.settlement)
}

func (h *HTTPTransport) processPayment(w http.ResponseWriter, r *http.Request) {
	processpayment.ProcessPayment(w, r, h.settlement)
}

func (h *HTTPTransport) salesReport(w http.ResponseWriter, r *http.Request) {
	reports.SalesReport(w, r, h.reporting)
}

func (h *HTTPTransport) paymentReport(w http.ResponseWriter, r *http.Request) {
	reports.PaymentReport(w, r, h.reporting)
}

func newRouter() *chi.Mux {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(logger.NewLoggerMiddleware(slog.Default()))
	router.Use(trace.NewTraceMiddleware)

	allowedOrigins := viper.GetStringSlice("server.http.cors.allowed_origins")
	allowedMethods := viper.GetStringSlice("server.http.cors.allowed_methods")
	allowedHeaders := viper.GetStringSlice("server.http.cors.allowed_headers")
	exposedHeaders := viper.GetStringSlice("server.http.cors.exposed_headers")
	allowCredentials := viper.GetBool("server.http.cors.allow_credentials")
	maxAge := viper.GetInt("server.http.cors.max_age")

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   allowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: allowCredentials,
		MaxAge:           maxAge,
	})

	router.Use(c.Handler)

	return router
}

func newServer(router http.Handler) *http.Server {
	return &http.Server{
		Addr:    "0.0.0.0:" + viper.GetString("server.http.port"),
		Handler: router,
	}
}
