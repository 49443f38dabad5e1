package adapters

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// commandRunner abstracts subprocess execution so adapter tests can
// substitute canned output.
type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// runCommand executes a command, returning stdout. On failure the error
// carries the trimmed stderr for diagnostics.
func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := name + " failed"
		if detail := strings.TrimSpace(stderr.String()); detail != "" {
			msg = msg + ": " + detail
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(msg).
			WithCause(err)
	}
	return stdout.Bytes(), nil
}
