package launcher

import (
	"context"
	"time"
)

// Status is the lifecycle state of a launched process.
type Status string

const (
	StatusPending Status = "pending"
	StatusRunning Status = "running"
	StatusExited  Status = "exited"
	StatusFailed  Status = "failed"
)

// Run describes a single launch from start to exit.
type Run struct {
	ID         string
	Name       string
	Command    string
	PID        int
	ExitCode   int
	StartedAt  time.Time
	FinishedAt time.Time
	Err        error
}

// Duration reports how long the process ran. It is zero until the run finishes.
func (r *Run) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// Recorder persists finished runs.
type Recorder interface {
	Record(ctx context.Context, run *Run) error
}
