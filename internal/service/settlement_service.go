package service

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/moneysplitter/internal/calculator"
	"github.com/mmynk/moneysplitter/internal/examples"
	"github.com/mmynk/moneysplitter/internal/metrics"
	"github.com/mmynk/moneysplitter/internal/models"
	"github.com/mmynk/moneysplitter/internal/render"
	"github.com/mmynk/moneysplitter/internal/storage"
	"github.com/mmynk/moneysplitter/pkg/api"
	"github.com/mmynk/moneysplitter/pkg/api/apiconnect"
)

// Ensure SettlementService implements apiconnect.SettlementServiceHandler
var _ apiconnect.SettlementServiceHandler = (*SettlementService)(nil)

// SettlementService implements the Connect SettlementService
type SettlementService struct {
	store   storage.QuickSplitStore
	metrics *metrics.Metrics
}

// NewSettlementService creates a new SettlementService with the given storage backend.
func NewSettlementService(store storage.QuickSplitStore, opts ...Option) *SettlementService {
	o := newOptions(opts)
	return &SettlementService{store: store, metrics: o.metrics}
}

// QuickSplit settles a one-off quick split without storing it.
func (s *SettlementService) QuickSplit(ctx context.Context, req *connect.Request[api.QuickSplitRequest]) (*connect.Response[api.QuickSplitResponse], error) {
	split := toQuickSplit(req.Msg.Split)
	slog.Info("QuickSplit request received",
		"mode", split.Mode,
		"total_amount", split.TotalAmount,
		"people_count", len(split.People),
	)

	if err := validateQuickSplit(&split); err != nil {
		return nil, connectError(err)
	}

	start := time.Now()
	result, err := calculator.SettleQuickSplit(split)
	if err != nil {
		slog.Error("QuickSplit failed", "error", err)
		return nil, connectError(err)
	}
	s.metrics.ObserveSettlement(metrics.KindQuickSplit, len(result.Payments), !allSolved(result.People), time.Since(start))

	slog.Info("QuickSplit successful",
		"payments_count", len(result.Payments),
		"overpayment", result.Overpayment,
	)

	return connect.NewResponse(&api.QuickSplitResponse{
		People:      fromSplitPeople(result.People),
		Payments:    fromPayments(result.Payments),
		TotalPaid:   result.TotalPaid,
		TotalCost:   result.TotalCost,
		Overpayment: result.Overpayment,
		Diagram:     render.Mermaid(result.Payments),
		Table:       fromTableRows(render.SplitTable(split, result.Payments)),
	}), nil
}

// SettleLedger settles a group and ledger passed inline. Nothing is stored.
// Transactions naming non-members are tolerated and those people ignored.
func (s *SettlementService) SettleLedger(ctx context.Context, req *connect.Request[api.SettleLedgerRequest]) (*connect.Response[api.SettleLedgerResponse], error) {
	if req.Msg.Group == nil || req.Msg.Ledger == nil {
		return nil, connectError(invalidf("group and ledger required"))
	}
	group := toGroup(req.Msg.Group)
	ledger := toLedger(req.Msg.Ledger)

	slog.Info("SettleLedger request received",
		"members_count", len(group.Members),
		"transactions_count", len(ledger.Transactions),
	)

	settlement := settleLedger(s.metrics, group, ledger)

	slog.Info("SettleLedger successful", "payments_count", len(settlement.Settlements))

	return connect.NewResponse(&api.SettleLedgerResponse{
		Settlement: fromLedgerSettlement(ledger.ID, settlement),
	}), nil
}

// SaveQuickSplit stores a quick split form, replacing any earlier version.
func (s *SettlementService) SaveQuickSplit(ctx context.Context, req *connect.Request[api.SaveQuickSplitRequest]) (*connect.Response[api.SaveQuickSplitResponse], error) {
	split := toQuickSplit(req.Msg.Split)
	slog.Info("SaveQuickSplit request received", "split_id", split.ID)

	if err := validateQuickSplit(&split); err != nil {
		return nil, connectError(err)
	}

	if err := s.store.SaveQuickSplit(ctx, &split); err != nil {
		slog.Error("SaveQuickSplit failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("Quick split saved", "split_id", split.ID)

	return connect.NewResponse(&api.SaveQuickSplitResponse{
		Split: fromQuickSplit(&split),
	}), nil
}

// GetQuickSplit retrieves a saved quick split by ID.
func (s *SettlementService) GetQuickSplit(ctx context.Context, req *connect.Request[api.GetQuickSplitRequest]) (*connect.Response[api.GetQuickSplitResponse], error) {
	slog.Info("GetQuickSplit request received", "split_id", req.Msg.SplitID)

	if req.Msg.SplitID == "" {
		return nil, connectError(invalidf("split_id required"))
	}

	split, err := s.store.GetQuickSplit(ctx, req.Msg.SplitID)
	if err != nil {
		slog.Error("GetQuickSplit failed", "split_id", req.Msg.SplitID, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.GetQuickSplitResponse{
		Split: fromQuickSplit(split),
	}), nil
}

// ResizeQuickSplit sets the number of people, resetting or keeping rows.
func (s *SettlementService) ResizeQuickSplit(ctx context.Context, req *connect.Request[api.ResizeQuickSplitRequest]) (*connect.Response[api.ResizeQuickSplitResponse], error) {
	split := toQuickSplit(req.Msg.Split)
	split.People = models.ResizePeople(split.People, req.Msg.NoOfPeople, req.Msg.Keep)
	split.TotalNoOfPeople = len(split.People)

	slog.Debug("ResizeQuickSplit", "people_count", split.TotalNoOfPeople, "keep", req.Msg.Keep)

	return connect.NewResponse(&api.ResizeQuickSplitResponse{
		Split: fromQuickSplit(&split),
	}), nil
}

// LoadExample returns the sample quick split and trip ledger.
func (s *SettlementService) LoadExample(ctx context.Context, req *connect.Request[api.LoadExampleRequest]) (*connect.Response[api.LoadExampleResponse], error) {
	split := examples.QuickSplitExample()
	group, ledger := examples.LedgerExample()

	return connect.NewResponse(&api.LoadExampleResponse{
		QuickSplit: fromQuickSplit(&split),
		Group:      fromGroup(&group),
		Ledger:     fromLedger(&ledger),
	}), nil
}

func allSolved(people []calculator.SplitPerson) bool {
	for _, p := range people {
		if !p.Solved {
			return false
		}
	}
	return true
}
