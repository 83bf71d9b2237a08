// Package middleware holds the Connect interceptors shared by all services.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

type groupScoped interface{ GetGroupID() string }

type ledgerScoped interface{ GetLedgerID() string }

type splitScoped interface{ GetSplitID() string }

// LoggingInterceptor returns a Connect interceptor that logs every RPC call
// with its procedure, client, duration and the group, ledger or quick split
// the request targets. Failures also carry the error code.
// Install it after RequireAuth so the client is known.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			attrs := append([]any{
				"procedure", req.Spec().Procedure,
				"client", GetClient(ctx), // empty when auth is disabled
			}, targetAttrs(req.Any())...)

			resp, err := next(ctx, req)

			attrs = append(attrs, "duration_ms", time.Since(start).Milliseconds())
			var connectErr *connect.Error
			switch {
			case err == nil:
				slog.Info("RPC ok", attrs...)
			case errors.As(err, &connectErr):
				slog.Warn("RPC error", append(attrs, "code", connectErr.Code(), "error", connectErr.Message())...)
			default:
				slog.Error("RPC error", append(attrs, "error", err)...)
			}
			return resp, err
		}
	}
}

// targetAttrs returns the non-empty group, ledger and split IDs of msg.
func targetAttrs(msg any) []any {
	var attrs []any
	if m, ok := msg.(groupScoped); ok && m.GetGroupID() != "" {
		attrs = append(attrs, "group_id", m.GetGroupID())
	}
	if m, ok := msg.(ledgerScoped); ok && m.GetLedgerID() != "" {
		attrs = append(attrs, "ledger_id", m.GetLedgerID())
	}
	if m, ok := msg.(splitScoped); ok && m.GetSplitID() != "" {
		attrs = append(attrs, "split_id", m.GetSplitID())
	}
	return attrs
}
