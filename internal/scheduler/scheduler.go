// Package scheduler binds workflows that declare a cron schedule to a timer.
// The timer itself is an injected capability so tests can drive firings
// directly.
package scheduler

import (
	"hookflow/internal/registry"
	"hookflow/pkg/models"
)

// Timer is the capability the binder needs from a cron implementation:
// register a callback under a cron expression and control the run loop.
type Timer interface {
	// AddFunc registers cmd to run at times matching the cron expression.
	// An invalid expression is reported here, at bind time.
	AddFunc(spec string, cmd func()) error
	Start()
	Stop()
}

// Invoker is the direct-invocation entry point of the dispatcher.
type Invoker interface {
	DispatchScheduled(wf *models.Workflow)
}

// Logger defines the logging interface compatible with the application logger.
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

// Binder wires scheduled workflows to the timer at load time.
type Binder struct {
	timer   Timer
	invoker Invoker
	logger  Logger
}

// NewBinder creates a Binder.
func NewBinder(timer Timer, invoker Invoker, logger Logger) *Binder {
	return &Binder{timer: timer, invoker: invoker, logger: logger}
}

// BindAll registers a timer callback for every workflow in the registry that
// declares a schedule, and returns the number bound. A workflow whose cron
// expression is rejected is logged and skipped; it never aborts startup or
// affects other bindings.
func (b *Binder) BindAll(reg *registry.Registry) int {
	bound := 0
	for _, wf := range reg.All() {
		if wf.Config.Schedule == "" {
			continue
		}
		err := b.timer.AddFunc(wf.Config.Schedule, func() {
			b.invoker.DispatchScheduled(wf)
		})
		if err != nil {
			b.logger.Error("workflow %q: cannot bind schedule %q: %v", wf.Config.ID, wf.Config.Schedule, err)
			continue
		}
		b.logger.Info("workflow %q: scheduled %q", wf.Config.ID, wf.Config.Schedule)
		bound++
	}
	return bound
}

// Start starts the underlying timer.
func (b *Binder) Start() {
	b.timer.Start()
}

// Stop stops the underlying timer. Running callbacks are not interrupted.
func (b *Binder) Stop() {
	b.timer.Stop()
}
