package agentseed

import "context"

// Hook receives a notification each time a table has been fully written.
// Hooks run synchronously on the writing goroutine, so they must return
// quickly. Errors are logged and do not fail the run.
type Hook interface {
	OnTableWritten(ctx context.Context, table string, rows int) error
}

// HookFunc adapts a function to the Hook interface.
type HookFunc func(ctx context.Context, table string, rows int) error

// OnTableWritten calls f.
func (f HookFunc) OnTableWritten(ctx context.Context, table string, rows int) error {
	return f(ctx, table, rows)
}
