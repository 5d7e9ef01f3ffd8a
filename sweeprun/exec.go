package sweeprun

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Executor runs shell commands. extraEnv entries have the form KEY=value and
// are added to the environment of the command.
type Executor interface {
	Run(ctx context.Context, cmd string, extraEnv []string) error
}

// ExitError reports a command that exited with a non-zero code.
type ExitError struct {
	Cmd  string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command %q failed with return code %d", e.Cmd, e.Code)
}

// ShellExecutor runs commands with bash in the foreground, one at a time.
type ShellExecutor struct {
	// Shell defaults to /bin/bash.
	Shell string
	// Dir is the working directory; empty means the current directory.
	Dir    string
	Stdout io.Writer
	Stderr io.Writer
}

// Run runs cmd with "bash -c" and waits for it to exit.
func (s ShellExecutor) Run(ctx context.Context, cmd string, extraEnv []string) error {
	shell := s.Shell
	if shell == "" {
		shell = "/bin/bash"
	}
	c := exec.CommandContext(ctx, shell, "-c", cmd)
	c.Dir = s.Dir
	c.Env = append(os.Environ(), extraEnv...)
	c.Stdout = s.Stdout
	c.Stderr = s.Stderr
	err := c.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Cmd: commandLine(cmd, extraEnv), Code: exitErr.ExitCode()}
	}
	return err
}

// commandLine renders the command with its environment as it would be typed in a shell.
func commandLine(cmd string, extraEnv []string) string {
	if len(extraEnv) == 0 {
		return cmd
	}
	return strings.Join(extraEnv, " ") + " " + cmd
}
