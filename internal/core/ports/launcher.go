package ports

import "context"

// Launcher executes the wrapped binary with the injected environment.
//
//go:generate go run go.uber.org/mock/mockgen -source=launcher.go -destination=mocks/mock_launcher.go -package=mocks
type Launcher interface {
	// Launch runs the binary with the given arguments, overlaying
	// extraEnv onto the current process environment, and passes the
	// wrapper's stdio through unchanged. It returns the binary's exit
	// code. A non-zero exit of the wrapped binary is not an error;
	// failing to start it is.
	Launch(ctx context.Context, binary string, args []string, extraEnv map[string]string) (int, error)
}
