package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// ExitCode represents a process exit status code. The zero value means success.
type ExitCode int

// IsSuccess returns true if the exit code indicates successful execution.
func (c ExitCode) IsSuccess() bool { return c == 0 }

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }

// Launcher starts a resolved command and waits for it.
type Launcher interface {
	Launch(ctx context.Context, cmd *ResolvedCommand) (ExitCode, error)
}

// ExecLauncher launches commands with os/exec, inheriting stdio.
type ExecLauncher struct{}

// Launch implements Launcher. A non-zero exit is reported through the
// ExitCode, not as an error.
func (ExecLauncher) Launch(ctx context.Context, rc *ResolvedCommand) (ExitCode, error) {
	cmd := rc.Cmd(ctx)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return ExitCode(exitErr.ExitCode()), nil
		}
		return 1, fmt.Errorf("failed to launch %s: %w", rc.Program, err)
	}
	return 0, nil
}
