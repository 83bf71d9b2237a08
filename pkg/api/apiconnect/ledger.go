package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/moneysplitter/pkg/api"
)

// LedgerServiceName is the fully-qualified name of the LedgerService.
const LedgerServiceName = "moneysplitter.v1.LedgerService"

// Procedure names for LedgerService RPCs.
const (
	LedgerServiceCreateLedgerProcedure        = "/moneysplitter.v1.LedgerService/CreateLedger"
	LedgerServiceGetLedgerProcedure           = "/moneysplitter.v1.LedgerService/GetLedger"
	LedgerServiceListLedgersProcedure         = "/moneysplitter.v1.LedgerService/ListLedgers"
	LedgerServiceAddTransactionProcedure      = "/moneysplitter.v1.LedgerService/AddTransaction"
	LedgerServiceDeleteLedgerProcedure        = "/moneysplitter.v1.LedgerService/DeleteLedger"
	LedgerServiceGetLedgerSettlementProcedure = "/moneysplitter.v1.LedgerService/GetLedgerSettlement"
)

// LedgerServiceHandler manages ledgers and their transactions.
type LedgerServiceHandler interface {
	CreateLedger(context.Context, *connect.Request[api.CreateLedgerRequest]) (*connect.Response[api.CreateLedgerResponse], error)
	GetLedger(context.Context, *connect.Request[api.GetLedgerRequest]) (*connect.Response[api.GetLedgerResponse], error)
	ListLedgers(context.Context, *connect.Request[api.ListLedgersRequest]) (*connect.Response[api.ListLedgersResponse], error)
	AddTransaction(context.Context, *connect.Request[api.AddTransactionRequest]) (*connect.Response[api.AddTransactionResponse], error)
	DeleteLedger(context.Context, *connect.Request[api.DeleteLedgerRequest]) (*connect.Response[api.DeleteLedgerResponse], error)
	GetLedgerSettlement(context.Context, *connect.Request[api.GetLedgerSettlementRequest]) (*connect.Response[api.GetLedgerSettlementResponse], error)
}

// NewLedgerServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewLedgerServiceHandler(svc LedgerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(api.JSONCodec{})}, opts...)

	createLedgerHandler := connect.NewUnaryHandler(
		LedgerServiceCreateLedgerProcedure,
		svc.CreateLedger,
		opts...,
	)
	getLedgerHandler := connect.NewUnaryHandler(
		LedgerServiceGetLedgerProcedure,
		svc.GetLedger,
		opts...,
	)
	listLedgersHandler := connect.NewUnaryHandler(
		LedgerServiceListLedgersProcedure,
		svc.ListLedgers,
		opts...,
	)
	addTransactionHandler := connect.NewUnaryHandler(
		LedgerServiceAddTransactionProcedure,
		svc.AddTransaction,
		opts...,
	)
	deleteLedgerHandler := connect.NewUnaryHandler(
		LedgerServiceDeleteLedgerProcedure,
		svc.DeleteLedger,
		opts...,
	)
	getLedgerSettlementHandler := connect.NewUnaryHandler(
		LedgerServiceGetLedgerSettlementProcedure,
		svc.GetLedgerSettlement,
		opts...,
	)
	return "/" + LedgerServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case LedgerServiceCreateLedgerProcedure:
			createLedgerHandler.ServeHTTP(w, r)
		case LedgerServiceGetLedgerProcedure:
			getLedgerHandler.ServeHTTP(w, r)
		case LedgerServiceListLedgersProcedure:
			listLedgersHandler.ServeHTTP(w, r)
		case LedgerServiceAddTransactionProcedure:
			addTransactionHandler.ServeHTTP(w, r)
		case LedgerServiceDeleteLedgerProcedure:
			deleteLedgerHandler.ServeHTTP(w, r)
		case LedgerServiceGetLedgerSettlementProcedure:
			getLedgerSettlementHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// LedgerServiceClient is a client for the LedgerService.
type LedgerServiceClient interface {
	CreateLedger(context.Context, *connect.Request[api.CreateLedgerRequest]) (*connect.Response[api.CreateLedgerResponse], error)
	GetLedger(context.Context, *connect.Request[api.GetLedgerRequest]) (*connect.Response[api.GetLedgerResponse], error)
	ListLedgers(context.Context, *connect.Request[api.ListLedgersRequest]) (*connect.Response[api.ListLedgersResponse], error)
	AddTransaction(context.Context, *connect.Request[api.AddTransactionRequest]) (*connect.Response[api.AddTransactionResponse], error)
	DeleteLedger(context.Context, *connect.Request[api.DeleteLedgerRequest]) (*connect.Response[api.DeleteLedgerResponse], error)
	GetLedgerSettlement(context.Context, *connect.Request[api.GetLedgerSettlementRequest]) (*connect.Response[api.GetLedgerSettlementResponse], error)
}

// NewLedgerServiceClient constructs a client for the LedgerService.
// baseURL is the server address without the service path (e.g. http://localhost:8080).
func NewLedgerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) LedgerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.JSONCodec{})}, opts...)
	return &ledgerServiceClient{
		createLedger: connect.NewClient[api.CreateLedgerRequest, api.CreateLedgerResponse](
			httpClient,
			baseURL+LedgerServiceCreateLedgerProcedure,
			opts...,
		),
		getLedger: connect.NewClient[api.GetLedgerRequest, api.GetLedgerResponse](
			httpClient,
			baseURL+LedgerServiceGetLedgerProcedure,
			opts...,
		),
		listLedgers: connect.NewClient[api.ListLedgersRequest, api.ListLedgersResponse](
			httpClient,
			baseURL+LedgerServiceListLedgersProcedure,
			opts...,
		),
		addTransaction: connect.NewClient[api.AddTransactionRequest, api.AddTransactionResponse](
			httpClient,
			baseURL+LedgerServiceAddTransactionProcedure,
			opts...,
		),
		deleteLedger: connect.NewClient[api.DeleteLedgerRequest, api.DeleteLedgerResponse](
			httpClient,
			baseURL+LedgerServiceDeleteLedgerProcedure,
			opts...,
		),
		getLedgerSettlement: connect.NewClient[api.GetLedgerSettlementRequest, api.GetLedgerSettlementResponse](
			httpClient,
			baseURL+LedgerServiceGetLedgerSettlementProcedure,
			opts...,
		),
	}
}

type ledgerServiceClient struct {
	createLedger        *connect.Client[api.CreateLedgerRequest, api.CreateLedgerResponse]
	getLedger           *connect.Client[api.GetLedgerRequest, api.GetLedgerResponse]
	listLedgers         *connect.Client[api.ListLedgersRequest, api.ListLedgersResponse]
	addTransaction      *connect.Client[api.AddTransactionRequest, api.AddTransactionResponse]
	deleteLedger        *connect.Client[api.DeleteLedgerRequest, api.DeleteLedgerResponse]
	getLedgerSettlement *connect.Client[api.GetLedgerSettlementRequest, api.GetLedgerSettlementResponse]
}

func (c *ledgerServiceClient) CreateLedger(ctx context.Context, req *connect.Request[api.CreateLedgerRequest]) (*connect.Response[api.CreateLedgerResponse], error) {
	return c.createLedger.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetLedger(ctx context.Context, req *connect.Request[api.GetLedgerRequest]) (*connect.Response[api.GetLedgerResponse], error) {
	return c.getLedger.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ListLedgers(ctx context.Context, req *connect.Request[api.ListLedgersRequest]) (*connect.Response[api.ListLedgersResponse], error) {
	return c.listLedgers.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) AddTransaction(ctx context.Context, req *connect.Request[api.AddTransactionRequest]) (*connect.Response[api.AddTransactionResponse], error) {
	return c.addTransaction.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) DeleteLedger(ctx context.Context, req *connect.Request[api.DeleteLedgerRequest]) (*connect.Response[api.DeleteLedgerResponse], error) {
	return c.deleteLedger.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetLedgerSettlement(ctx context.Context, req *connect.Request[api.GetLedgerSettlementRequest]) (*connect.Response[api.GetLedgerSettlementResponse], error) {
	return c.getLedgerSettlement.CallUnary(ctx, req)
}
