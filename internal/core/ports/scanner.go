// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.nixgl.dev/glhost/internal/core/domain"
)

// Scanner walks the configured host directories and produces a full
// resolution snapshot.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type Scanner interface {
	// Scan lists each directory in order, classifies the shared
	// objects it contains, and returns the categorized snapshot.
	// Missing or unreadable directories contribute an empty entry,
	// never an error.
	Scan(ctx context.Context, dirs []string) (*domain.Snapshot, error)
}
