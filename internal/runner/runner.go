// Package runner runs the external project generator and package manager.
package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	"github.com/tacogips/vitesetup/internal/debug"
)

// Result holds the result of a command execution.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Opts holds optional parameters for command execution.
type Opts struct {
	Dir string            // working directory (optional)
	Env map[string]string // extra environment variables (overlay)
}

// Runner is the interface for running external commands.
type Runner interface {
	// Run executes a command and returns the result.
	// A process that exits non-zero is not an error: ExitCode carries the status.
	// Errors are reserved for failures to run at all (binary missing, ctx canceled).
	Run(ctx context.Context, name string, args []string, opts Opts) (Result, error)
}

// ExecRunner is the os/exec implementation of Runner.
type ExecRunner struct {
	// Timeout bounds each command when positive.
	Timeout time.Duration
}

// NewExecRunner creates a new ExecRunner.
func NewExecRunner(timeout time.Duration) *ExecRunner {
	return &ExecRunner{Timeout: timeout}
}

// Run executes the command and captures stdout/stderr.
func (r *ExecRunner) Run(ctx context.Context, name string, args []string, opts Opts) (Result, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}

	if len(opts.Env) > 0 {
		cmd.Env = cmd.Environ()
		for k, v := range opts.Env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}

	start := time.Now()
	debug.Debug("[runner] %s %v (dir: %s)", name, args, opts.Dir)
	err := cmd.Run()
	debug.Debug("[runner] %s finished in %s", name, time.Since(start).Round(time.Millisecond))

	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, err
	}

	return result, nil
}
