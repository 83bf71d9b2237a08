package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/moneysplitter/internal/calculator"
	"github.com/mmynk/moneysplitter/internal/events"
	"github.com/mmynk/moneysplitter/internal/metrics"
	"github.com/mmynk/moneysplitter/internal/models"
	"github.com/mmynk/moneysplitter/internal/storage"
	"github.com/mmynk/moneysplitter/pkg/api"
	"github.com/mmynk/moneysplitter/pkg/api/apiconnect"
)

// Ensure LedgerService implements apiconnect.LedgerServiceHandler
var _ apiconnect.LedgerServiceHandler = (*LedgerService)(nil)

// LedgerService implements the Connect LedgerService
type LedgerService struct {
	store     storage.Store
	metrics   *metrics.Metrics
	publisher events.Publisher
}

// NewLedgerService creates a new LedgerService with the given storage backend.
func NewLedgerService(store storage.Store, opts ...Option) *LedgerService {
	o := newOptions(opts)
	return &LedgerService{store: store, metrics: o.metrics, publisher: o.publisher}
}

// CreateLedger creates a ledger for an existing group.
func (s *LedgerService) CreateLedger(ctx context.Context, req *connect.Request[api.CreateLedgerRequest]) (*connect.Response[api.CreateLedgerResponse], error) {
	slog.Info("CreateLedger request received",
		"group_id", req.Msg.GroupID,
		"name", req.Msg.Name,
		"transactions_count", len(req.Msg.Transactions),
	)

	if req.Msg.GroupID == "" {
		return nil, connectError(invalidf("group_id required"))
	}
	if strings.TrimSpace(req.Msg.Name) == "" {
		return nil, connectError(invalidf("ledger name required"))
	}

	group, err := s.store.GetGroup(ctx, req.Msg.GroupID)
	if err != nil {
		slog.Error("CreateLedger failed - group not found", "group_id", req.Msg.GroupID, "error", err)
		return nil, connectError(err)
	}

	ledger := &models.Ledger{
		Name:         req.Msg.Name,
		GroupID:      group.ID,
		Transactions: toTransactions(req.Msg.Transactions),
	}
	for i := range ledger.Transactions {
		if err := validateTransaction(group, &ledger.Transactions[i]); err != nil {
			return nil, connectError(err)
		}
	}

	if err := s.store.CreateLedger(ctx, ledger); err != nil {
		slog.Error("CreateLedger failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("Ledger created", "ledger_id", ledger.ID, "group_id", group.ID)

	return connect.NewResponse(&api.CreateLedgerResponse{
		Ledger: fromLedger(ledger),
	}), nil
}

// GetLedger retrieves a ledger with all of its transactions.
func (s *LedgerService) GetLedger(ctx context.Context, req *connect.Request[api.GetLedgerRequest]) (*connect.Response[api.GetLedgerResponse], error) {
	slog.Info("GetLedger request received", "ledger_id", req.Msg.LedgerID)

	if req.Msg.LedgerID == "" {
		return nil, connectError(invalidf("ledger_id required"))
	}

	ledger, err := s.store.GetLedger(ctx, req.Msg.LedgerID)
	if err != nil {
		slog.Error("GetLedger failed", "ledger_id", req.Msg.LedgerID, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.GetLedgerResponse{
		Ledger: fromLedger(ledger),
	}), nil
}

// ListLedgers retrieves all ledgers of a group.
func (s *LedgerService) ListLedgers(ctx context.Context, req *connect.Request[api.ListLedgersRequest]) (*connect.Response[api.ListLedgersResponse], error) {
	slog.Info("ListLedgers request received", "group_id", req.Msg.GroupID)

	if req.Msg.GroupID == "" {
		return nil, connectError(invalidf("group_id required"))
	}

	// Verify group exists
	if _, err := s.store.GetGroup(ctx, req.Msg.GroupID); err != nil {
		slog.Error("ListLedgers failed - group not found", "group_id", req.Msg.GroupID, "error", err)
		return nil, connectError(err)
	}

	ledgers, err := s.store.ListLedgersByGroup(ctx, req.Msg.GroupID)
	if err != nil {
		slog.Error("ListLedgers failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, connectError(err)
	}

	out := make([]*api.Ledger, len(ledgers))
	for i, ledger := range ledgers {
		out[i] = fromLedger(ledger)
	}

	slog.Info("ListLedgers successful", "group_id", req.Msg.GroupID, "count", len(ledgers))

	return connect.NewResponse(&api.ListLedgersResponse{
		Ledgers: out,
	}), nil
}

// AddTransaction appends a transaction to a ledger.
func (s *LedgerService) AddTransaction(ctx context.Context, req *connect.Request[api.AddTransactionRequest]) (*connect.Response[api.AddTransactionResponse], error) {
	slog.Info("AddTransaction request received", "ledger_id", req.Msg.LedgerID)

	if req.Msg.LedgerID == "" || req.Msg.Transaction == nil {
		return nil, connectError(invalidf("ledger_id and transaction required"))
	}

	group, _, err := loadLedgerWithGroup(ctx, s.store, req.Msg.LedgerID)
	if err != nil {
		slog.Error("AddTransaction failed", "ledger_id", req.Msg.LedgerID, "error", err)
		return nil, connectError(err)
	}

	tx := toTransaction(req.Msg.Transaction)
	if err := validateTransaction(group, &tx); err != nil {
		return nil, connectError(err)
	}

	if err := s.store.AddTransaction(ctx, req.Msg.LedgerID, &tx); err != nil {
		slog.Error("AddTransaction failed", "ledger_id", req.Msg.LedgerID, "error", err)
		return nil, connectError(err)
	}

	ledger, err := s.store.GetLedger(ctx, req.Msg.LedgerID)
	if err != nil {
		slog.Error("Failed to fetch updated ledger", "error", err)
		return nil, connectError(err)
	}

	slog.Info("Transaction added", "ledger_id", ledger.ID, "transaction_id", tx.ID)

	return connect.NewResponse(&api.AddTransactionResponse{
		Ledger: fromLedger(ledger),
	}), nil
}

// DeleteLedger removes a ledger by ID.
func (s *LedgerService) DeleteLedger(ctx context.Context, req *connect.Request[api.DeleteLedgerRequest]) (*connect.Response[api.DeleteLedgerResponse], error) {
	slog.Info("DeleteLedger request received", "ledger_id", req.Msg.LedgerID)

	if err := s.store.DeleteLedger(ctx, req.Msg.LedgerID); err != nil {
		slog.Error("DeleteLedger failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("Ledger deleted", "ledger_id", req.Msg.LedgerID)

	return connect.NewResponse(&api.DeleteLedgerResponse{}), nil
}

// GetLedgerSettlement settles a stored ledger against its group's current
// members and publishes a LedgerSettled event.
func (s *LedgerService) GetLedgerSettlement(ctx context.Context, req *connect.Request[api.GetLedgerSettlementRequest]) (*connect.Response[api.GetLedgerSettlementResponse], error) {
	ledgerID := req.Msg.LedgerID
	slog.Info("GetLedgerSettlement request received", "ledger_id", ledgerID)

	if ledgerID == "" {
		return nil, connectError(invalidf("ledger_id required"))
	}

	group, ledger, err := loadLedgerWithGroup(ctx, s.store, ledgerID)
	if err != nil {
		slog.Error("GetLedgerSettlement failed", "ledger_id", ledgerID, "error", err)
		return nil, connectError(err)
	}

	settlement := settleLedger(s.metrics, *group, *ledger)
	s.publish(ctx, ledger, settlement)

	slog.Info("GetLedgerSettlement successful",
		"ledger_id", ledgerID,
		"payments_count", len(settlement.Settlements),
	)

	return connect.NewResponse(&api.GetLedgerSettlementResponse{
		Settlement: fromLedgerSettlement(ledger.ID, settlement),
	}), nil
}

// publish sends the settlement event. Failures are logged and do not fail
// the request.
func (s *LedgerService) publish(ctx context.Context, ledger *models.Ledger, settlement calculator.LedgerSettlement) {
	event := events.LedgerSettled{
		LedgerID:  ledger.ID,
		GroupID:   ledger.GroupID,
		Payments:  make([]events.Payment, len(settlement.Settlements)),
		Unsettled: len(settlement.Unsettled),
		SettledAt: time.Now().UTC(),
	}
	for i, p := range settlement.Settlements {
		event.Payments[i] = events.Payment{From: p.From, To: p.To, Amount: p.Amount}
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := s.publisher.PublishLedgerSettled(ctx, event); err != nil {
		slog.Warn("Failed to publish settlement event", "ledger_id", ledger.ID, "error", err)
	}
}
