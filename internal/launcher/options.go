package launcher

import (
	"io"
	"time"
)

// Option configures a Launcher.
type Option func(*Launcher)

// WithOutput sets where process stdout and stderr are copied.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(l *Launcher) {
		l.stdout = stdout
		l.stderr = stderr
	}
}

// WithBaseEnv sets the environment the overlay is merged onto. The default is
// the launcher's own environment.
func WithBaseEnv(env []string) Option {
	return func(l *Launcher) {
		l.baseEnv = env
	}
}

// WithCleanEnv starts processes with only their overlay, ignoring the base
// environment.
func WithCleanEnv(clean bool) Option {
	return func(l *Launcher) {
		l.cleanEnv = clean
	}
}

// WithRecorder stores every finished run.
func WithRecorder(r Recorder) Option {
	return func(l *Launcher) {
		l.recorder = r
	}
}

// WithGracePeriod sets how long a cancelled process may take to exit after
// being interrupted before it is killed.
func WithGracePeriod(d time.Duration) Option {
	return func(l *Launcher) {
		l.grace = d
	}
}
