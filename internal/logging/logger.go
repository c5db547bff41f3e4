// Package logging defines the structured logger the rest of the server
// programs against, so the concrete backend stays swappable.
package logging

import "context"

// Logger is a context-aware structured logger. The variadic args are
// alternating key/value pairs:
//
//	log.Info(ctx, "starting http server", "addr", addr)
type Logger interface {
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always carries the given pairs.
	With(args ...any) Logger
}
