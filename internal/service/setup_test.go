package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/moneysplitter/internal/events"
	"github.com/mmynk/moneysplitter/internal/metrics"
	"github.com/mmynk/moneysplitter/internal/middleware"
	"github.com/mmynk/moneysplitter/internal/storage/sqlite"
	"github.com/mmynk/moneysplitter/pkg/api"
	"github.com/mmynk/moneysplitter/pkg/api/apiconnect"
)

// recordingPublisher keeps every published event in memory.
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.LedgerSettled
}

func (p *recordingPublisher) PublishLedgerSettled(_ context.Context, event events.LedgerSettled) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) published() []events.LedgerSettled {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]events.LedgerSettled(nil), p.events...)
}

type testEnv struct {
	settlement apiconnect.SettlementServiceClient
	groups     apiconnect.GroupServiceClient
	ledgers    apiconnect.LedgerServiceClient
	publisher  *recordingPublisher
	registry   *prometheus.Registry
}

// setupTestServer serves all three services over a temp-file SQLite store.
func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	// Create temp database
	tmpFile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()
	t.Cleanup(func() { os.Remove(tmpFile.Name()) })

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	registry := prometheus.NewRegistry()
	publisher := &recordingPublisher{}
	opts := []Option{
		WithMetrics(metrics.New(registry)),
		WithPublisher(publisher),
		WithSettleConcurrency(2),
	}

	interceptors := connect.WithInterceptors(middleware.LoggingInterceptor())
	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewSettlementServiceHandler(NewSettlementService(store, opts...), interceptors))
	mux.Handle(apiconnect.NewGroupServiceHandler(NewGroupService(store, opts...), interceptors))
	mux.Handle(apiconnect.NewLedgerServiceHandler(NewLedgerService(store, opts...), interceptors))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return &testEnv{
		settlement: apiconnect.NewSettlementServiceClient(http.DefaultClient, server.URL),
		groups:     apiconnect.NewGroupServiceClient(http.DefaultClient, server.URL),
		ledgers:    apiconnect.NewLedgerServiceClient(http.DefaultClient, server.URL),
		publisher:  publisher,
		registry:   registry,
	}
}

// createTripGroup creates a four-person group and returns it.
func createTripGroup(t *testing.T, env *testEnv) *api.Group {
	t.Helper()

	resp, err := env.groups.CreateGroup(context.Background(), connect.NewRequest(&api.CreateGroupRequest{
		Name: "Japan Trip",
		Members: []*api.Person{
			{Name: "Alice"},
			{Name: "Bob"},
			{Name: "Charlie"},
			{Name: "Dave"},
		},
	}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	return resp.Msg.Group
}

func payer(p *api.Person, amount float64) *api.Payer {
	return &api.Payer{ID: p.ID, Name: p.Name, Amount: amount}
}

// assertCode fails the test unless err carries the given Connect code.
func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Fatalf("expected code %v, got %v (%v)", want, got, err)
	}
}
