package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/moneysplitter/internal/metrics"
	"github.com/mmynk/moneysplitter/internal/models"
	"github.com/mmynk/moneysplitter/internal/storage"
	"github.com/mmynk/moneysplitter/pkg/api"
	"github.com/mmynk/moneysplitter/pkg/api/apiconnect"
)

// Ensure GroupService implements apiconnect.GroupServiceHandler
var _ apiconnect.GroupServiceHandler = (*GroupService)(nil)

// GroupService implements the Connect GroupService
type GroupService struct {
	store       storage.Store
	metrics     *metrics.Metrics
	concurrency int
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store, opts ...Option) *GroupService {
	o := newOptions(opts)
	return &GroupService{store: store, metrics: o.metrics, concurrency: o.concurrency}
}

// CreateGroup creates a new group.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error) {
	slog.Info("CreateGroup request received",
		"name", req.Msg.Name,
		"members_count", len(req.Msg.Members),
	)

	group := &models.Group{
		Name:    req.Msg.Name,
		Members: toPeople(req.Msg.Members),
	}
	if err := validateGroup(group); err != nil {
		return nil, connectError(err)
	}

	// Save to storage (generates IDs and CreatedAt)
	if err := s.store.CreateGroup(ctx, group); err != nil {
		slog.Error("CreateGroup failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("Group created", "group_id", group.ID)

	return connect.NewResponse(&api.CreateGroupResponse{
		Group: fromGroup(group),
	}), nil
}

// GetGroup retrieves a group by ID.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error) {
	slog.Info("GetGroup request received", "group_id", req.Msg.GroupID)

	if req.Msg.GroupID == "" {
		return nil, connectError(invalidf("group_id required"))
	}

	group, err := s.store.GetGroup(ctx, req.Msg.GroupID)
	if err != nil {
		slog.Error("GetGroup failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.GetGroupResponse{
		Group: fromGroup(group),
	}), nil
}

// ListGroups retrieves all groups.
func (s *GroupService) ListGroups(ctx context.Context, req *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error) {
	slog.Info("ListGroups request received")

	groups, err := s.store.ListGroups(ctx)
	if err != nil {
		slog.Error("ListGroups failed", "error", err)
		return nil, connectError(err)
	}

	out := make([]*api.Group, len(groups))
	for i, group := range groups {
		out[i] = fromGroup(group)
	}

	slog.Info("ListGroups successful", "count", len(groups))

	return connect.NewResponse(&api.ListGroupsResponse{
		Groups: out,
	}), nil
}

// UpdateGroup replaces the name and members of an existing group.
func (s *GroupService) UpdateGroup(ctx context.Context, req *connect.Request[api.UpdateGroupRequest]) (*connect.Response[api.UpdateGroupResponse], error) {
	slog.Info("UpdateGroup request received",
		"group_id", req.Msg.GroupID,
		"name", req.Msg.Name,
		"members_count", len(req.Msg.Members),
	)

	if req.Msg.GroupID == "" {
		return nil, connectError(invalidf("group_id required"))
	}

	group := &models.Group{
		ID:      req.Msg.GroupID,
		Name:    req.Msg.Name,
		Members: toPeople(req.Msg.Members),
	}
	if err := validateGroup(group); err != nil {
		return nil, connectError(err)
	}

	if err := s.store.UpdateGroup(ctx, group); err != nil {
		slog.Error("UpdateGroup failed", "error", err)
		return nil, connectError(err)
	}

	// Fetch updated group to get CreatedAt
	updated, err := s.store.GetGroup(ctx, group.ID)
	if err != nil {
		slog.Error("Failed to fetch updated group", "error", err)
		return nil, connectError(err)
	}

	slog.Info("Group updated", "group_id", group.ID)

	return connect.NewResponse(&api.UpdateGroupResponse{
		Group: fromGroup(updated),
	}), nil
}

// DeleteGroup removes a group and all of its ledgers.
func (s *GroupService) DeleteGroup(ctx context.Context, req *connect.Request[api.DeleteGroupRequest]) (*connect.Response[api.DeleteGroupResponse], error) {
	slog.Info("DeleteGroup request received", "group_id", req.Msg.GroupID)

	if err := s.store.DeleteGroup(ctx, req.Msg.GroupID); err != nil {
		slog.Error("DeleteGroup failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("Group deleted", "group_id", req.Msg.GroupID)

	return connect.NewResponse(&api.DeleteGroupResponse{}), nil
}

// GetGroupSettlements settles every ledger of a group.
// Ledgers are settled concurrently; results keep ledger order.
func (s *GroupService) GetGroupSettlements(ctx context.Context, req *connect.Request[api.GetGroupSettlementsRequest]) (*connect.Response[api.GetGroupSettlementsResponse], error) {
	groupID := req.Msg.GroupID
	slog.Info("GetGroupSettlements request received", "group_id", groupID)

	if groupID == "" {
		return nil, connectError(invalidf("group_id required"))
	}

	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		slog.Error("GetGroupSettlements failed - group not found", "group_id", groupID, "error", err)
		return nil, connectError(err)
	}

	ledgers, err := s.store.ListLedgersByGroup(ctx, groupID)
	if err != nil {
		slog.Error("GetGroupSettlements failed - could not list ledgers", "group_id", groupID, "error", err)
		return nil, connectError(err)
	}

	settlements := make([]*api.LedgerSettlement, len(ledgers))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, ledger := range ledgers {
		i, ledger := i, ledger
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			settlement := settleLedger(s.metrics, *group, *ledger)
			settlements[i] = fromLedgerSettlement(ledger.ID, settlement)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		slog.Error("GetGroupSettlements failed", "group_id", groupID, "error", err)
		return nil, connectError(err)
	}

	slog.Info("GetGroupSettlements successful",
		"group_id", groupID,
		"ledgers_count", len(ledgers),
	)

	return connect.NewResponse(&api.GetGroupSettlementsResponse{
		Settlements: settlements,
	}), nil
}
