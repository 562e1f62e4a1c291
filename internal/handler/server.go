// Package handler implements the HTTP handlers for the tagsync API.
// All handlers are methods on Server. Methods are split into per-endpoint
// files (webhook.go, health.go, etc.) but share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/tagsync/internal/domain"
)

// Webhook header names. The operator CLI imports these so replayed
// deliveries use the exact same contract as real ones.
const (
	HeaderEvent     = "X-Webhook-Event"
	HeaderSignature = "X-Webhook-Signature"
	HeaderDelivery  = "X-Webhook-Delivery"
)

// ReconcileServicer defines the business operation the webhook handler
// depends on. Defining the interface here (in the consumer package) follows
// the Go convention: "accept interfaces, return concrete types". It lets
// handler tests inject a mock without touching the service layer.
type ReconcileServicer interface {
	Reconcile(ctx context.Context, event domain.OrderEvent) (domain.Outcome, error)
}

// Server holds the HTTP endpoints' dependencies.
type Server struct {
	reconciler ReconcileServicer
	secret     []byte
	logger     *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default().
func NewServer(reconciler ReconcileServicer, secret []byte, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{reconciler: reconciler, secret: secret, logger: logger}
}

// RegisterRoutes mounts every endpoint on r. main.go and the handler tests
// share this wiring, so the routes they see cannot drift apart.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Post("/webhooks/orders", s.HandleOrderWebhook)
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)
}
