package accesslog

// Package accesslog records authorization denials through the
// structured logger so denied attempts are visible in diagnostics.

import (
	"context"
	"log/slog"

	domainauth "github.com/wanderlanka/planner-cli/internal/domain/auth"
	"github.com/wanderlanka/planner-cli/internal/domain/nav"
	"github.com/wanderlanka/planner-cli/internal/ports"
)

// Recorder is a slog-backed AccessEvents sink.
type Recorder struct {
	logger *slog.Logger
}

var _ ports.AccessEvents = (*Recorder)(nil)

// New creates a Recorder. A nil logger falls back to slog.Default.
func New(logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{logger: logger}
}

func (r *Recorder) RecordDenial(ctx context.Context, route nav.Route, user domainauth.User) {
	r.logger.WarnContext(ctx, "route access denied",
		slog.String("route", string(route)),
		slog.String("user_id", user.ID),
		slog.String("email", user.Email),
		slog.String("role", string(user.Role)),
	)
}
