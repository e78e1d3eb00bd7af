// Package notify models the user-facing feedback surfaces: toast-style
// notifications and the global busy indicator. Both are narrow, injectable
// containers rather than ambient singletons.
package notify

import (
	"log/slog"
	"sync/atomic"
)

// Notifier receives user-visible outcome messages.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// LogNotifier writes notifications to a structured logger.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) Success(msg string) {
	if n.Logger != nil {
		n.Logger.Info("notify", slog.String("level", "success"), slog.String("message", msg))
	}
}

func (n LogNotifier) Error(msg string) {
	if n.Logger != nil {
		n.Logger.Warn("notify", slog.String("level", "error"), slog.String("message", msg))
	}
}

// Busy is the global loading indicator. Begin/End pair around every
// network call; End runs on every path so the indicator never sticks.
type Busy struct {
	n atomic.Int32
}

// Begin marks the start of a suspended operation.
func (b *Busy) Begin() {
	if b != nil {
		b.n.Add(1)
	}
}

// End marks the completion of a suspended operation.
func (b *Busy) End() {
	if b == nil {
		return
	}
	if b.n.Add(-1) < 0 {
		b.n.Store(0)
	}
}

// Active reports whether any operation is in flight.
func (b *Busy) Active() bool {
	return b != nil && b.n.Load() > 0
}
