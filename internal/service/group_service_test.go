package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/moneysplitter/pkg/api"
)

func TestCreateGroup(t *testing.T) {
	env := setupTestServer(t)

	resp, err := env.groups.CreateGroup(context.Background(), connect.NewRequest(&api.CreateGroupRequest{
		Name:    "Roommates",
		Members: []*api.Person{{Name: "Alice"}, {Name: "Bob"}, {ID: "charlie", Name: "Charlie"}},
	}))
	require.NoError(t, err)

	group := resp.Msg.Group
	require.NotNil(t, group)
	assert.NotEmpty(t, group.ID)
	assert.Equal(t, "Roommates", group.Name)
	require.Len(t, group.Members, 3)
	assert.NotEmpty(t, group.Members[0].ID)
	assert.Equal(t, "charlie", group.Members[2].ID)
	assert.NotZero(t, group.CreatedAt)
}

func TestCreateGroup_Invalid(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  *api.CreateGroupRequest
	}{
		{"empty name", &api.CreateGroupRequest{Name: "  ", Members: []*api.Person{{Name: "Alice"}}}},
		{"empty member name", &api.CreateGroupRequest{Name: "G", Members: []*api.Person{{Name: ""}}}},
		{"duplicate member id", &api.CreateGroupRequest{Name: "G", Members: []*api.Person{{ID: "x", Name: "A"}, {ID: "x", Name: "B"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.groups.CreateGroup(ctx, connect.NewRequest(tt.req))
			assertCode(t, err, connect.CodeInvalidArgument)
		})
	}
}

func TestGetGroup(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	created := createTripGroup(t, env)

	resp, err := env.groups.GetGroup(ctx, connect.NewRequest(&api.GetGroupRequest{GroupID: created.ID}))
	require.NoError(t, err)
	assert.Equal(t, created, resp.Msg.Group)

	_, err = env.groups.GetGroup(ctx, connect.NewRequest(&api.GetGroupRequest{GroupID: "nope"}))
	assertCode(t, err, connect.CodeNotFound)

	_, err = env.groups.GetGroup(ctx, connect.NewRequest(&api.GetGroupRequest{}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestListGroups(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	empty, err := env.groups.ListGroups(ctx, connect.NewRequest(&api.ListGroupsRequest{}))
	require.NoError(t, err)
	assert.Empty(t, empty.Msg.Groups)

	createTripGroup(t, env)
	createTripGroup(t, env)

	resp, err := env.groups.ListGroups(ctx, connect.NewRequest(&api.ListGroupsRequest{}))
	require.NoError(t, err)
	assert.Len(t, resp.Msg.Groups, 2)
}

func TestUpdateGroup(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	created := createTripGroup(t, env)

	members := append(created.Members, &api.Person{Name: "Eve"})
	resp, err := env.groups.UpdateGroup(ctx, connect.NewRequest(&api.UpdateGroupRequest{
		GroupID: created.ID,
		Name:    "Japan Trip 2024",
		Members: members,
	}))
	require.NoError(t, err)

	assert.Equal(t, "Japan Trip 2024", resp.Msg.Group.Name)
	assert.Equal(t, created.CreatedAt, resp.Msg.Group.CreatedAt)
	require.Len(t, resp.Msg.Group.Members, 5)
	assert.Equal(t, created.Members[0].ID, resp.Msg.Group.Members[0].ID)
	assert.NotEmpty(t, resp.Msg.Group.Members[4].ID)

	_, err = env.groups.UpdateGroup(ctx, connect.NewRequest(&api.UpdateGroupRequest{
		GroupID: "nope",
		Name:    "Ghost",
	}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestDeleteGroup(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	created := createTripGroup(t, env)

	_, err := env.groups.DeleteGroup(ctx, connect.NewRequest(&api.DeleteGroupRequest{GroupID: created.ID}))
	require.NoError(t, err)

	_, err = env.groups.GetGroup(ctx, connect.NewRequest(&api.GetGroupRequest{GroupID: created.ID}))
	assertCode(t, err, connect.CodeNotFound)

	_, err = env.groups.DeleteGroup(ctx, connect.NewRequest(&api.DeleteGroupRequest{GroupID: created.ID}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestGetGroupSettlements(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	group := createTripGroup(t, env)
	alice, bob, charlie, dave := group.Members[0], group.Members[1], group.Members[2], group.Members[3]

	ledgers := []*api.CreateLedgerRequest{
		{
			GroupID: group.ID,
			Name:    "Dinner",
			Transactions: []*api.Transaction{
				{Description: "Sushi", Payers: []*api.Payer{payer(alice, 80)}, Beneficiaries: group.Members},
			},
		},
		{
			GroupID: group.ID,
			Name:    "Taxi",
			Transactions: []*api.Transaction{
				{Description: "Cab", Payers: []*api.Payer{payer(bob, 30)}, Beneficiaries: []*api.Person{bob, charlie, dave}},
			},
		},
		{
			GroupID: group.ID,
			Name:    "Empty",
		},
	}
	for _, req := range ledgers {
		_, err := env.ledgers.CreateLedger(ctx, connect.NewRequest(req))
		require.NoError(t, err)
	}

	resp, err := env.groups.GetGroupSettlements(ctx, connect.NewRequest(&api.GetGroupSettlementsRequest{GroupID: group.ID}))
	require.NoError(t, err)
	require.Len(t, resp.Msg.Settlements, 3)

	// Alice paid 80 for four people: everyone else owes her 20.
	dinner := resp.Msg.Settlements[0]
	require.Len(t, dinner.Settlements, 3)
	for _, p := range dinner.Settlements {
		assert.Equal(t, "Alice", p.To)
		assert.InDelta(t, 20, p.Amount, 1e-9)
	}

	taxi := resp.Msg.Settlements[1]
	require.Len(t, taxi.Settlements, 2)
	for _, p := range taxi.Settlements {
		assert.Equal(t, "Bob", p.To)
		assert.InDelta(t, 10, p.Amount, 1e-9)
	}

	assert.Empty(t, resp.Msg.Settlements[2].Settlements)
	assert.Equal(t, 3.0, counterValue(t, env, "moneysplitter_settlements_total", "ledger"))

	_, err = env.groups.GetGroupSettlements(ctx, connect.NewRequest(&api.GetGroupSettlementsRequest{GroupID: "nope"}))
	assertCode(t, err, connect.CodeNotFound)
}
