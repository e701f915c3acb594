package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"manuparts/internal/auth"
	"manuparts/internal/config"
	"manuparts/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Services bundles the application services the HTTP layer dispatches to.
type Services struct {
	Products *service.ProductService
	Bookings *service.BookingService
	Users    *service.UserService
	Reviews  *service.ReviewService
	Payments *service.PaymentService
}

type Server struct {
	cfg     config.ServerConfig
	log     zerolog.Logger
	tokens  *auth.TokenIssuer
	svc     Services
	health  Pinger
	limiter *rateLimiter
	server  *http.Server
}

func NewServer(cfg config.ServerConfig, rl config.RateLimitConfig, tokens *auth.TokenIssuer, svc Services, health Pinger, logger *zerolog.Logger) *Server {
	var log zerolog.Logger
	if logger != nil {
		log = *logger
	}

	s := &Server{
		cfg:     cfg,
		log:     log,
		tokens:  tokens,
		svc:     svc,
		health:  health,
		limiter: newRateLimiter(rl),
	}

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.routes(),
		ReadHeaderTimeout: time.Duration(cfg.ReadHeaderTimeout) * time.Second,
		WriteTimeout:      time.Duration(cfg.WriteTimeout) * time.Second,
	}

	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(s.loggingMiddleware)
	r.Use(corsMiddleware(s.cfg.CORSOrigins))
	r.Use(s.rateLimitMiddleware)

	r.Get("/", s.handleLiveness)
	r.Get("/healthz", s.handleHealthz)

	r.Get("/products", s.handleListProducts)
	r.Post("/products", s.handleCreateProduct)
	r.Get("/products/{id}", s.handleGetProduct)
	r.Get("/singleProduct", s.handleListProductNames)

	r.Get("/review", s.handleListReviews)
	r.Post("/review", s.handleCreateReview)

	r.Get("/admin/{email}", s.handleAdminCheck)
	r.Get("/showUpdateProfile/{email}", s.handleGetProfile)
	r.Put("/updateProfile/{email}", s.handleUpdateProfile)
	r.Put("/user/{email}", s.handleSignIn)

	r.Get("/booking", s.handleListBookings)
	r.Post("/booking", s.handleCreateBooking)

	r.Group(func(pr chi.Router) {
		pr.Use(s.requireAuth)

		pr.Get("/user", s.handleListUsers)
		pr.Put("/user/admin/{email}", s.handlePromoteAdmin)
		pr.Get("/booking/{email}", s.handleListBookingsByEmail)
		pr.Get("/payment/{id}", s.handleGetBookingForPayment)
		pr.Post("/create-payment-intent", s.handleCreatePaymentIntent)
		pr.Get("/export/bookings", s.handleExportBookings)
	})

	return r
}

func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("HTTP API listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Handler exposes the routed handler for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func (s *Server) handleLiveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Server running for Manufacture Parts"))
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if s.health != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.health.Ping(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
