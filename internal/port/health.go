package port

import "context"

// HealthChecker is implemented by dependencies that can report readiness.
type HealthChecker interface {
	Check(ctx context.Context) error
}
