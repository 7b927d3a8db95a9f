// Package session serializes access to a cart and adapts its errors for
// transport layers. A Session owns exactly one logic.Cart.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"google.golang.org/grpc/status"

	"shopcart/logic"
)

const Domain = "cart"

// Runtime holds what every session shares: the logger and the metrics.
type Runtime struct {
	Logger  *zap.Logger
	Metrics *Metrics
}

func NewRuntime(cfg Config, reg prometheus.Registerer) (*Runtime, error) {
	logger, err := NewLogger(cfg.LogMode)
	if err != nil {
		return nil, err
	}
	metrics, err := NewMetrics(cfg.MetricsNamespace, reg)
	if err != nil {
		return nil, err
	}
	return &Runtime{Logger: logger, Metrics: metrics}, nil
}

func (r *Runtime) NewSession() *Session {
	return New(r.Logger, r.Metrics)
}

type Session struct {
	ID string

	mu      sync.Mutex
	cart    *logic.Cart
	logger  *zap.Logger
	metrics *Metrics
}

// New returns a session with an empty cart. logger and metrics may be nil.
func New(logger *zap.Logger, metrics *Metrics) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	return &Session{
		ID:      id,
		cart:    logic.NewCart(),
		logger:  logger.With(zap.String("domain", Domain), zap.String("session_id", id)),
		metrics: metrics,
	}
}

// Dispatch applies cmd to the cart. Rejections come back as grpc status
// errors; use ReasonOf to recover the cart reason.
func (s *Session) Dispatch(ctx context.Context, cmd Command) error {
	if err := ctx.Err(); err != nil {
		return status.FromContextError(err).Err()
	}

	start := time.Now()
	s.mu.Lock()
	err := s.dispatchCommand(cmd)
	s.mu.Unlock()

	name := commandLabel(cmd)
	s.metrics.observe(name, start, err)
	if err != nil {
		s.logger.Warn("command rejected", zap.String("command", name), zap.Error(err))
		return mapError(err)
	}
	return nil
}

// Quote computes an amount from the current cart contents.
func (s *Session) Quote(ctx context.Context, q Quote) (decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Zero, status.FromContextError(err).Err()
	}

	start := time.Now()
	s.mu.Lock()
	amount, err := s.dispatchQuote(q)
	s.mu.Unlock()

	name := quoteLabel(q)
	s.metrics.observe(name, start, err)
	if err != nil {
		s.logger.Warn("quote rejected", zap.String("quote", name), zap.Error(err))
		return decimal.Zero, mapError(err)
	}
	return amount, nil
}

// Snapshot is a consistent read of the cart at one point in time.
type Snapshot struct {
	Items []logic.LineItem
	Count int
	Total decimal.Decimal
}

// Snapshot returns the cart contents ordered by criterion (see
// logic.Cart.ItemsSorted); an empty criterion keeps insertion order.
func (s *Session) Snapshot(criterion string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Items: s.cart.ItemsSorted(criterion),
		Count: s.cart.CountItems(),
		Total: s.cart.Total(),
	}
}

func commandLabel(cmd Command) string {
	if cmd == nil {
		return "unknown"
	}
	return cmd.commandName()
}

func quoteLabel(q Quote) string {
	if q == nil {
		return "unknown"
	}
	return q.quoteName()
}
