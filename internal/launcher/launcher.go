package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/specialistvlad/nodelaunch/internal/config"
	"github.com/specialistvlad/nodelaunch/internal/ctxlog"
)

const defaultGracePeriod = 10 * time.Second

// Launcher spawns processes and tracks their status by name.
type Launcher struct {
	stdout   io.Writer
	stderr   io.Writer
	baseEnv  []string
	cleanEnv bool
	recorder Recorder
	grace    time.Duration

	mu     sync.RWMutex
	status map[string]Status
}

// New creates a Launcher. Without options, process output is copied to the
// launcher's own stdout and stderr and the overlay is merged onto os.Environ.
func New(opts ...Option) *Launcher {
	l := &Launcher{
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		baseEnv: os.Environ(),
		grace:   defaultGracePeriod,
		status:  make(map[string]Status),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Launch starts the process described by spec and blocks until it exits.
// The returned Run is non-nil whenever the spec was valid, including when the
// process failed to start or exited non-zero.
func (l *Launcher) Launch(ctx context.Context, spec config.LaunchSpec) (*Run, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	ctx = ctxlog.With(ctx, "app", spec.Name)
	logger := ctxlog.FromContext(ctx)
	l.setStatus(spec.Name, StatusPending)

	args := spec.Args()
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = l.grace
	if l.cleanEnv {
		cmd.Env = spec.Environ(nil)
	} else {
		cmd.Env = spec.Environ(l.baseEnv)
	}

	run := &Run{
		ID:        uuid.NewString(),
		Name:      spec.Name,
		Command:   spec.Command,
		ExitCode:  -1,
		StartedAt: time.Now().UTC(),
	}

	logger.Debug("Starting process.", "run_id", run.ID, "command", spec.Command, "env_count", len(spec.Env))
	if err := cmd.Start(); err != nil {
		run.FinishedAt = time.Now().UTC()
		run.Err = err
		l.setStatus(spec.Name, StatusFailed)
		l.record(ctx, run)
		return run, fmt.Errorf("failed to start %q: %w", spec.Name, err)
	}
	run.PID = cmd.Process.Pid
	l.setStatus(spec.Name, StatusRunning)
	logger.Info("Process started.", "run_id", run.ID, "pid", run.PID)

	waitErr := cmd.Wait()
	run.FinishedAt = time.Now().UTC()
	if cmd.ProcessState != nil {
		run.ExitCode = cmd.ProcessState.ExitCode()
	}

	var err error
	switch {
	case ctx.Err() != nil:
		run.Err = ctx.Err()
		l.setStatus(spec.Name, StatusExited)
		logger.Info("Process stopped.", "run_id", run.ID, "exit_code", run.ExitCode, "duration", run.Duration())
		err = fmt.Errorf("process %q stopped: %w", spec.Name, ctx.Err())
	case waitErr != nil:
		run.Err = waitErr
		l.setStatus(spec.Name, StatusFailed)
		logger.Error("Process failed.", "run_id", run.ID, "exit_code", run.ExitCode, "error", waitErr)
		err = fmt.Errorf("process %q failed: %w", spec.Name, waitErr)
	default:
		l.setStatus(spec.Name, StatusExited)
		logger.Info("Process exited.", "run_id", run.ID, "exit_code", run.ExitCode, "duration", run.Duration())
	}

	l.record(ctx, run)
	return run, err
}

// Status returns the current state of the named process and whether the
// launcher has seen it.
func (l *Launcher) Status(name string) (Status, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	s, ok := l.status[name]
	return s, ok
}

// Statuses returns a snapshot of every tracked process.
func (l *Launcher) Statuses() map[string]Status {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return maps.Clone(l.status)
}

// Healthy reports whether at least one process is tracked and all tracked
// processes are running.
func (l *Launcher) Healthy() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(l.status) == 0 {
		return false
	}
	for _, s := range l.status {
		if s != StatusRunning {
			return false
		}
	}
	return true
}

func (l *Launcher) setStatus(name string, s Status) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.status[name] = s
}

// record stores the run. A storage failure is logged but does not change the
// launch result.
func (l *Launcher) record(ctx context.Context, run *Run) {
	if l.recorder == nil {
		return
	}
	// The launch context may already be cancelled; the record must still land.
	recCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := l.recorder.Record(recCtx, run); err != nil {
		ctxlog.FromContext(ctx).Warn("Failed to record launch.", "run_id", run.ID, "error", err)
	}
}

// IsStopped reports whether err came from a launch that ended because its
// context was cancelled.
func IsStopped(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
