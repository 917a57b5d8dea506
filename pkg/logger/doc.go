// Package logger builds *slog.Logger instances for the generators and carries
// them through a context.Context.
//
// New applies functional options (level, JSON or text output, writer, static
// attributes) on top of production-safe defaults: JSON at INFO to stdout.
// NewContext and FromContext move a logger through call chains; FromContext
// falls back to a logger that discards everything, so library code can log
// unconditionally.
//
// Attribute helpers (Seed, Component, Error, ...) keep keys consistent across
// packages.
//
//	log := logger.New(logger.WithLevel(slog.LevelDebug), logger.WithTextFormatter())
//	ctx := logger.NewContext(context.Background(), log)
//	logger.FromContext(ctx).DebugContext(ctx, "avatar generated", logger.Seed(id))
package logger
