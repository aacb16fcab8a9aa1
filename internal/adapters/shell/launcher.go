// Package shell provides the wrapped-binary launcher adapter.
package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"

	"go.nixgl.dev/glhost/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Launcher = (*Launcher)(nil)

// Launcher implements ports.Launcher using os/exec.
type Launcher struct {
	logger ports.Logger
}

// NewLauncher creates a new Launcher.
func NewLauncher(logger ports.Logger) *Launcher {
	return &Launcher{logger: logger}
}

// Launch runs the binary with the wrapper's stdio and the current
// environment overlaid with extraEnv. The wrapped binary's exit code
// is returned as-is so the wrapper can forward it; only a failure to
// start the binary is an error.
func (l *Launcher) Launch(ctx context.Context, binary string, args []string, extraEnv map[string]string) (int, error) {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec // The user asked us to run this binary
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = overlayEnvironment(os.Environ(), extraEnv)

	for _, k := range sortedKeys(extraEnv) {
		l.logger.Debug(fmt.Sprintf("%s = %s", k, extraEnv[k]))
	}
	l.logger.Debug(fmt.Sprintf("launching %s", binary))

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, zerr.With(zerr.Wrap(err, "failed to launch wrapped binary"), "binary", binary)
	}
	return 0, nil
}

// overlayEnvironment replaces or appends the extra variables on top of
// the base "KEY=VALUE" environment.
func overlayEnvironment(base []string, extra map[string]string) []string {
	env := make([]string, 0, len(base)+len(extra))
	replaced := make(map[string]bool, len(extra))
	for _, entry := range base {
		k, _, ok := strings.Cut(entry, "=")
		if ok {
			if v, overridden := extra[k]; overridden {
				env = append(env, k+"="+v)
				replaced[k] = true
				continue
			}
		}
		env = append(env, entry)
	}
	for _, k := range sortedKeys(extra) {
		if !replaced[k] {
			env = append(env, k+"="+extra[k])
		}
	}
	return env
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
