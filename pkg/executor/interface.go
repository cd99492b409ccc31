package executor

import "context"

// Executor runs an external tool and returns its captured stdout.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
}
