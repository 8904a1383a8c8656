package decisionlog

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/guardkit/pkg/accessctl"
	"github.com/dmitrymomot/guardkit/pkg/permission"
)

// Recorder logs authorization decisions. The zero value is a no-op; use New
// or NewFromEnv. Safe for concurrent use.
type Recorder struct {
	log         *slog.Logger
	denialsOnly bool
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithDenialsOnly suppresses records for allowed checks, keeping only
// denials. Useful in production where allowed checks dominate.
func WithDenialsOnly() Option {
	return func(r *Recorder) { r.denialsOnly = true }
}

// New creates a recorder writing to log. A nil log yields a no-op recorder.
func New(log *slog.Logger, opts ...Option) *Recorder {
	r := &Recorder{log: log}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Decision implements accessctl.Observer. err is nil for allowed checks.
func (r *Recorder) Decision(ctx context.Context, p permission.Permission, err error) {
	if r == nil || r.log == nil {
		return
	}
	if err == nil && r.denialsOnly {
		return
	}

	attrs := []slog.Attr{
		slog.String("event_id", uuid.New().String()),
		slog.String("permission", p.Name()),
		slog.Bool("allowed", err == nil),
	}

	if err == nil {
		r.log.LogAttrs(ctx, slog.LevelInfo, "access allowed", attrs...)
		return
	}

	var denial *accessctl.AccessError
	if errors.As(err, &denial) && denial.Domain != nil {
		attrs = append(attrs, slog.String("domain", denial.Domain.Name()))
	}
	attrs = append(attrs, slog.String("error", err.Error()))

	r.log.LogAttrs(ctx, slog.LevelWarn, "access denied", attrs...)
}
