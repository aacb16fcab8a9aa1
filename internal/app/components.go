package app

import "go.nixgl.dev/glhost/internal/core/ports"

// Components bundles the top-level objects the entry point needs once
// the dependency graph has been executed.
type Components struct {
	App    *App
	Logger ports.Logger
}
