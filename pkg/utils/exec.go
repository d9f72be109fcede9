package utils

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Runner executes a system command and returns what it printed.
type Runner interface {
	Run(name string, args ...string) (string, error)
}

var _ Runner = CommandRunner{}

// ExecutionFailedError is returned when a command could not be started or
// exited unsuccessfully.
type ExecutionFailedError struct {
	Command []string
	Output  string
	Err     error
}

func (e *ExecutionFailedError) Error() string {
	return fmt.Sprintf("command %q failed: %v", strings.Join(e.Command, " "), e.Err)
}

func (e *ExecutionFailedError) Unwrap() error {
	return e.Err
}

// CommandRunner runs commands on the host. Prefix is prepended to every
// command, eg. the path of the root helper. A zero Timeout waits forever.
type CommandRunner struct {
	Prefix  []string
	Timeout time.Duration
	Log     logrus.FieldLogger
}

func (r CommandRunner) Run(name string, args ...string) (string, error) {
	argv := append(append([]string{}, r.Prefix...), name)
	argv = append(argv, args...)

	log := OrStandardLogger(r.Log).WithField("cmd", strings.Join(argv, " "))
	log.Debug("Running command")

	ctx := context.Background()
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	output := &strings.Builder{}
	cmd.Stdout = output
	cmd.Stderr = output
	if r.Timeout > 0 {
		// Children holding the output pipe open must not outlive the timeout.
		cmd.WaitDelay = time.Second
	}

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			err = fmt.Errorf("timed out after %s: %w", r.Timeout, err)
		}
		log.Debugf("Command failed: %v", err)
		return output.String(), &ExecutionFailedError{Command: argv, Output: output.String(), Err: err}
	}

	return output.String(), nil
}
