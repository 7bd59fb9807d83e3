// Package middleware holds connect interceptors shared by every service.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// LoggingInterceptor returns a Connect interceptor that logs every RPC call
// with its procedure, peer, duration and, on failure, the connect code.
// Client errors (bad input, wrong password, wrong phase) log at WARN;
// everything else that fails logs at ERROR.
func LoggingInterceptor(logger *slog.Logger) connect.UnaryInterceptorFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure
			peer := req.Peer().Addr

			resp, err := next(ctx, req)

			duration := time.Since(start).Milliseconds()
			if err == nil {
				logger.Info("RPC ok",
					"procedure", procedure,
					"peer", peer,
					"duration_ms", duration,
				)
				return resp, nil
			}

			code := connect.CodeOf(err)
			message := err.Error()
			var connectErr *connect.Error
			if errors.As(err, &connectErr) {
				message = connectErr.Message()
			}
			level := slog.LevelError
			if isClientError(code) {
				level = slog.LevelWarn
			}
			logger.Log(ctx, level, "RPC error",
				"procedure", procedure,
				"peer", peer,
				"code", code.String(),
				"error", message,
				"duration_ms", duration,
			)
			return resp, err
		}
	}
}

func isClientError(code connect.Code) bool {
	switch code {
	case connect.CodeInvalidArgument,
		connect.CodePermissionDenied,
		connect.CodeFailedPrecondition,
		connect.CodeNotFound,
		connect.CodeAborted:
		return true
	}
	return false
}
