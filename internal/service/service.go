// Package service implements the Connect RPC handlers for settlements,
// groups and ledgers.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/moneysplitter/internal/calculator"
	"github.com/mmynk/moneysplitter/internal/events"
	"github.com/mmynk/moneysplitter/internal/metrics"
	"github.com/mmynk/moneysplitter/internal/models"
	"github.com/mmynk/moneysplitter/internal/storage"
)

// DefaultSettleConcurrency bounds parallel ledger settlements per request.
const DefaultSettleConcurrency = 4

// publishTimeout caps how long a settlement request waits on the broker.
const publishTimeout = 5 * time.Second

// errInvalid marks request validation failures.
var errInvalid = errors.New("invalid argument")

type options struct {
	metrics     *metrics.Metrics
	publisher   events.Publisher
	concurrency int
}

// Option configures the optional collaborators of a service.
type Option func(*options)

// WithMetrics records every settlement in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithPublisher publishes LedgerSettled events through p.
func WithPublisher(p events.Publisher) Option {
	return func(o *options) { o.publisher = p }
}

// WithSettleConcurrency sets how many ledgers of one group settle at once.
func WithSettleConcurrency(n int) Option {
	return func(o *options) { o.concurrency = n }
}

func newOptions(opts []Option) options {
	o := options{
		publisher:   events.NoopPublisher{},
		concurrency: DefaultSettleConcurrency,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.concurrency < 1 {
		o.concurrency = 1
	}
	return o
}

// invalidf returns a validation error.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errInvalid, fmt.Sprintf(format, args...))
}

// connectError maps domain errors to Connect codes.
func connectError(err error) error {
	switch {
	case errors.Is(err, errInvalid),
		errors.Is(err, calculator.ErrNoPeople),
		errors.Is(err, calculator.ErrInvalidMode):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// settleLedger runs the ledger calculator and records the run.
func settleLedger(m *metrics.Metrics, group models.Group, ledger models.Ledger) calculator.LedgerSettlement {
	start := time.Now()
	settlement := calculator.SettleLedger(group, ledger)
	m.ObserveSettlement(metrics.KindLedger, len(settlement.Settlements), len(settlement.Unsettled) > 0, time.Since(start))

	if len(settlement.Skipped) > 0 || len(settlement.Unsettled) > 0 {
		slog.Warn("Ledger settlement incomplete",
			"ledger_id", ledger.ID,
			"skipped_count", len(settlement.Skipped),
			"unsettled_count", len(settlement.Unsettled),
		)
	}
	return settlement
}

// loadLedgerWithGroup fetches a ledger and the group it is settled against.
func loadLedgerWithGroup(ctx context.Context, store storage.Store, ledgerID string) (*models.Group, *models.Ledger, error) {
	ledger, err := store.GetLedger(ctx, ledgerID)
	if err != nil {
		return nil, nil, err
	}
	group, err := store.GetGroup(ctx, ledger.GroupID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load group of ledger %s: %w", ledgerID, err)
	}
	return group, ledger, nil
}
