// Package runner executes a command inside every discovered project
// directory, streaming output with a per-project line prefix.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Runner runs external commands inside project directories.
type Runner struct {
	stdout io.Writer
	stderr io.Writer
	env    []string

	// For mocking in tests
	commandFunc func(name string, args ...string) *exec.Cmd
}

// Options configures a Runner.
type Options struct {
	Stdout io.Writer // defaults to os.Stdout
	Stderr io.Writer // defaults to os.Stderr
	Env    []string  // additional environment variables
}

// New creates a runner with sensible defaults.
func New(opts *Options) *Runner {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	return &Runner{
		stdout:      opts.Stdout,
		stderr:      opts.Stderr,
		env:         opts.Env,
		commandFunc: exec.Command, // can be mocked for tests
	}
}

// RunIn runs the command in dir, prefixing every output line with the
// project path so interleaved runs stay readable.
func (r *Runner) RunIn(ctx context.Context, dir string, name string, args ...string) error {
	cmd := r.commandFunc(name, args...)
	cmd.Dir = filepath.FromSlash(dir)

	if len(r.env) > 0 {
		cmd.Env = append(os.Environ(), r.env...)
	}

	prefix := "[" + dir + "] "
	stdout := NewStreamingWriter(r.stdout, prefix, lipgloss.NewStyle())
	stderr := NewStreamingWriter(r.stderr, prefix, lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")))
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	defer stdout.Flush()
	defer stderr.Flush()

	if err := cmd.Start(); err != nil {
		if isCommandNotFound(err) {
			return enhanceError(err, name)
		}
		return fmt.Errorf("failed to start %s: %w", name, err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- cmd.Wait()
	}()

	select {
	case <-ctx.Done():
		if cmd.Process != nil {
			cmd.Process.Kill()
		}
		return fmt.Errorf("%s cancelled: %w", name, ctx.Err())
	case err := <-errCh:
		if err != nil {
			if isCommandNotFound(err) {
				return enhanceError(err, name)
			}
			return fmt.Errorf("%s failed in %s: %w", name, dir, err)
		}
		return nil
	}
}

// Each runs the command in every project directory, continuing past
// per-project failures and reporting them together at the end. With
// quiet set, per-project output is replaced by a spinner.
func (r *Runner) Each(ctx context.Context, projects []string, quiet bool, name string, args ...string) error {
	var failed []string
	for _, project := range projects {
		var err error
		if quiet {
			err = r.RunQuiet(ctx, project, name, args...)
		} else {
			err = r.RunIn(ctx, project, name, args...)
		}
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			failed = append(failed, project)
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("command failed in %d of %d projects: %s",
			len(failed), len(projects), strings.Join(failed, ", "))
	}
	return nil
}

// isCommandNotFound checks if an error indicates a missing executable.
func isCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, exec.ErrNotFound) ||
		strings.Contains(err.Error(), "executable file not found") ||
		strings.Contains(err.Error(), "command not found")
}

// enhanceError turns a bare not-found error into an actionable one.
func enhanceError(err error, name string) error {
	return fmt.Errorf("'%s' not found on PATH: %w", name, err)
}
