// Package logger is a thin factory around log/slog used by the rest of the
// module.
//
// New builds a *slog.Logger from functional options (format, level, output,
// static attributes) and wraps the handler with a decorator that injects
// attributes pulled from context.Context on every record. Attribute helpers in
// attr.go keep key names consistent between packages.
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(logger.Component("worker")),
//	)
//	log.DebugContext(ctx, "transition", logger.Transition("idle", "running"))
//
// Library code never logs on its own: components accept a *slog.Logger and
// fall back to Discard when none is given.
package logger
