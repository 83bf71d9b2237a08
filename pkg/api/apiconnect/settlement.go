// Package apiconnect wires the api messages to Connect handlers and clients.
//
// Every handler and client installs api.JSONCodec.
package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/moneysplitter/pkg/api"
)

// SettlementServiceName is the fully-qualified name of the SettlementService.
const SettlementServiceName = "moneysplitter.v1.SettlementService"

// Procedure names for SettlementService RPCs.
const (
	SettlementServiceQuickSplitProcedure       = "/moneysplitter.v1.SettlementService/QuickSplit"
	SettlementServiceSettleLedgerProcedure     = "/moneysplitter.v1.SettlementService/SettleLedger"
	SettlementServiceSaveQuickSplitProcedure   = "/moneysplitter.v1.SettlementService/SaveQuickSplit"
	SettlementServiceGetQuickSplitProcedure    = "/moneysplitter.v1.SettlementService/GetQuickSplit"
	SettlementServiceResizeQuickSplitProcedure = "/moneysplitter.v1.SettlementService/ResizeQuickSplit"
	SettlementServiceLoadExampleProcedure      = "/moneysplitter.v1.SettlementService/LoadExample"
)

// SettlementServiceHandler settles quick splits and ad-hoc ledgers without touching storage, and
// keeps saved quick split forms.
type SettlementServiceHandler interface {
	QuickSplit(context.Context, *connect.Request[api.QuickSplitRequest]) (*connect.Response[api.QuickSplitResponse], error)
	SettleLedger(context.Context, *connect.Request[api.SettleLedgerRequest]) (*connect.Response[api.SettleLedgerResponse], error)
	SaveQuickSplit(context.Context, *connect.Request[api.SaveQuickSplitRequest]) (*connect.Response[api.SaveQuickSplitResponse], error)
	GetQuickSplit(context.Context, *connect.Request[api.GetQuickSplitRequest]) (*connect.Response[api.GetQuickSplitResponse], error)
	ResizeQuickSplit(context.Context, *connect.Request[api.ResizeQuickSplitRequest]) (*connect.Response[api.ResizeQuickSplitResponse], error)
	LoadExample(context.Context, *connect.Request[api.LoadExampleRequest]) (*connect.Response[api.LoadExampleResponse], error)
}

// NewSettlementServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewSettlementServiceHandler(svc SettlementServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(api.JSONCodec{})}, opts...)

	quickSplitHandler := connect.NewUnaryHandler(
		SettlementServiceQuickSplitProcedure,
		svc.QuickSplit,
		opts...,
	)
	settleLedgerHandler := connect.NewUnaryHandler(
		SettlementServiceSettleLedgerProcedure,
		svc.SettleLedger,
		opts...,
	)
	saveQuickSplitHandler := connect.NewUnaryHandler(
		SettlementServiceSaveQuickSplitProcedure,
		svc.SaveQuickSplit,
		opts...,
	)
	getQuickSplitHandler := connect.NewUnaryHandler(
		SettlementServiceGetQuickSplitProcedure,
		svc.GetQuickSplit,
		opts...,
	)
	resizeQuickSplitHandler := connect.NewUnaryHandler(
		SettlementServiceResizeQuickSplitProcedure,
		svc.ResizeQuickSplit,
		opts...,
	)
	loadExampleHandler := connect.NewUnaryHandler(
		SettlementServiceLoadExampleProcedure,
		svc.LoadExample,
		opts...,
	)
	return "/" + SettlementServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case SettlementServiceQuickSplitProcedure:
			quickSplitHandler.ServeHTTP(w, r)
		case SettlementServiceSettleLedgerProcedure:
			settleLedgerHandler.ServeHTTP(w, r)
		case SettlementServiceSaveQuickSplitProcedure:
			saveQuickSplitHandler.ServeHTTP(w, r)
		case SettlementServiceGetQuickSplitProcedure:
			getQuickSplitHandler.ServeHTTP(w, r)
		case SettlementServiceResizeQuickSplitProcedure:
			resizeQuickSplitHandler.ServeHTTP(w, r)
		case SettlementServiceLoadExampleProcedure:
			loadExampleHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// SettlementServiceClient is a client for the SettlementService.
type SettlementServiceClient interface {
	QuickSplit(context.Context, *connect.Request[api.QuickSplitRequest]) (*connect.Response[api.QuickSplitResponse], error)
	SettleLedger(context.Context, *connect.Request[api.SettleLedgerRequest]) (*connect.Response[api.SettleLedgerResponse], error)
	SaveQuickSplit(context.Context, *connect.Request[api.SaveQuickSplitRequest]) (*connect.Response[api.SaveQuickSplitResponse], error)
	GetQuickSplit(context.Context, *connect.Request[api.GetQuickSplitRequest]) (*connect.Response[api.GetQuickSplitResponse], error)
	ResizeQuickSplit(context.Context, *connect.Request[api.ResizeQuickSplitRequest]) (*connect.Response[api.ResizeQuickSplitResponse], error)
	LoadExample(context.Context, *connect.Request[api.LoadExampleRequest]) (*connect.Response[api.LoadExampleResponse], error)
}

// NewSettlementServiceClient constructs a client for the SettlementService.
// baseURL is the server address without the service path (e.g. http://localhost:8080).
func NewSettlementServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SettlementServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.JSONCodec{})}, opts...)
	return &settlementServiceClient{
		quickSplit: connect.NewClient[api.QuickSplitRequest, api.QuickSplitResponse](
			httpClient,
			baseURL+SettlementServiceQuickSplitProcedure,
			opts...,
		),
		settleLedger: connect.NewClient[api.SettleLedgerRequest, api.SettleLedgerResponse](
			httpClient,
			baseURL+SettlementServiceSettleLedgerProcedure,
			opts...,
		),
		saveQuickSplit: connect.NewClient[api.SaveQuickSplitRequest, api.SaveQuickSplitResponse](
			httpClient,
			baseURL+SettlementServiceSaveQuickSplitProcedure,
			opts...,
		),
		getQuickSplit: connect.NewClient[api.GetQuickSplitRequest, api.GetQuickSplitResponse](
			httpClient,
			baseURL+SettlementServiceGetQuickSplitProcedure,
			opts...,
		),
		resizeQuickSplit: connect.NewClient[api.ResizeQuickSplitRequest, api.ResizeQuickSplitResponse](
			httpClient,
			baseURL+SettlementServiceResizeQuickSplitProcedure,
			opts...,
		),
		loadExample: connect.NewClient[api.LoadExampleRequest, api.LoadExampleResponse](
			httpClient,
			baseURL+SettlementServiceLoadExampleProcedure,
			opts...,
		),
	}
}

type settlementServiceClient struct {
	quickSplit       *connect.Client[api.QuickSplitRequest, api.QuickSplitResponse]
	settleLedger     *connect.Client[api.SettleLedgerRequest, api.SettleLedgerResponse]
	saveQuickSplit   *connect.Client[api.SaveQuickSplitRequest, api.SaveQuickSplitResponse]
	getQuickSplit    *connect.Client[api.GetQuickSplitRequest, api.GetQuickSplitResponse]
	resizeQuickSplit *connect.Client[api.ResizeQuickSplitRequest, api.ResizeQuickSplitResponse]
	loadExample      *connect.Client[api.LoadExampleRequest, api.LoadExampleResponse]
}

func (c *settlementServiceClient) QuickSplit(ctx context.Context, req *connect.Request[api.QuickSplitRequest]) (*connect.Response[api.QuickSplitResponse], error) {
	return c.quickSplit.CallUnary(ctx, req)
}

func (c *settlementServiceClient) SettleLedger(ctx context.Context, req *connect.Request[api.SettleLedgerRequest]) (*connect.Response[api.SettleLedgerResponse], error) {
	return c.settleLedger.CallUnary(ctx, req)
}

func (c *settlementServiceClient) SaveQuickSplit(ctx context.Context, req *connect.Request[api.SaveQuickSplitRequest]) (*connect.Response[api.SaveQuickSplitResponse], error) {
	return c.saveQuickSplit.CallUnary(ctx, req)
}

func (c *settlementServiceClient) GetQuickSplit(ctx context.Context, req *connect.Request[api.GetQuickSplitRequest]) (*connect.Response[api.GetQuickSplitResponse], error) {
	return c.getQuickSplit.CallUnary(ctx, req)
}

func (c *settlementServiceClient) ResizeQuickSplit(ctx context.Context, req *connect.Request[api.ResizeQuickSplitRequest]) (*connect.Response[api.ResizeQuickSplitResponse], error) {
	return c.resizeQuickSplit.CallUnary(ctx, req)
}

func (c *settlementServiceClient) LoadExample(ctx context.Context, req *connect.Request[api.LoadExampleRequest]) (*connect.Response[api.LoadExampleResponse], error) {
	return c.loadExample.CallUnary(ctx, req)
}
