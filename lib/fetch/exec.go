// Package fetch provides a reference load routine backed by a subprocess.
// The module binary is forked on first load, and the load is reported
// successful once the module announces readiness on stdout. Production
// embedders supply their own platform load routine; this one exists so the
// loader can be exercised end to end without extra tooling.
package fetch

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/snowmerak/split.go/lib/split"
)

// ReadySignal is the line a module must print on stdout once it is ready
// for calls.
const ReadySignal = "ready"

// ReadyTimeout bounds how long Exec waits for a module's ready signal.
const ReadyTimeout = 5 * time.Second

// Process is a running split module binary with attached stdio pipes.
type Process struct {
	cmd          *exec.Cmd
	stdinWriter  *io.PipeWriter
	stdoutReader *io.PipeReader
}

// Start forks the module binary at path and wires up its stdio.
func Start(path string, args ...string) (*Process, error) {
	cmd := exec.Command(path, args...)
	stdinReader, stdinWriter := io.Pipe()
	stdoutReader, stdoutWriter := io.Pipe()
	cmd.Stdin = stdinReader
	cmd.Stdout = stdoutWriter
	cmd.Stderr = stdoutWriter
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start module process: %w", err)
	}

	return &Process{
		cmd:          cmd,
		stdinWriter:  stdinWriter,
		stdoutReader: stdoutReader,
	}, nil
}

func (p *Process) Stdin() *io.PipeWriter {
	return p.stdinWriter
}

func (p *Process) Stdout() *io.PipeReader {
	return p.stdoutReader
}

func (p *Process) Wait() error {
	if err := p.cmd.Wait(); err != nil {
		return fmt.Errorf("module process exited with error: %w", err)
	}
	return nil
}

func (p *Process) Close() error {
	if err := p.stdinWriter.Close(); err != nil {
		return fmt.Errorf("failed to close stdin writer: %w", err)
	}
	if err := p.stdoutReader.Close(); err != nil {
		return fmt.Errorf("failed to close stdout reader: %w", err)
	}
	if err := p.cmd.Process.Kill(); err != nil {
		return fmt.Errorf("failed to kill module process: %w", err)
	}
	return nil
}

// Exec returns a load routine that forks the module binary at path and
// reports success once the module prints its ready signal. The process stays
// resident after a successful load; there is no unload path.
func Exec(path string, args ...string) split.LoadFunc {
	return ExecTimeout(path, ReadyTimeout, args...)
}

// ExecTimeout is Exec with a caller-chosen ready timeout. A module that
// neither signals readiness nor exits within the timeout is killed and the
// load is reported failed.
func ExecTimeout(path string, timeout time.Duration, args ...string) split.LoadFunc {
	return func(complete split.CompleteFunc, token split.Token) {
		go func() {
			p, err := Start(path, args...)
			if err != nil {
				complete(token, false)
				return
			}
			complete(token, waitForReady(p, timeout))
		}()
	}
}

// waitForReady scans the module's stdout for the ready signal. EOF before
// the signal means the module exited without becoming ready.
func waitForReady(p *Process, timeout time.Duration) bool {
	ready := make(chan bool, 1)
	go func() {
		scanner := bufio.NewScanner(p.Stdout())
		for scanner.Scan() {
			if strings.TrimSpace(scanner.Text()) == ReadySignal {
				ready <- true
				return
			}
		}
		ready <- false
	}()

	select {
	case ok := <-ready:
		if !ok {
			p.Close()
		}
		return ok
	case <-time.After(timeout):
		p.Close()
		return false
	}
}
