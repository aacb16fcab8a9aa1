// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.nixgl.dev/glhost/internal/adapters/cache"
	_ "go.nixgl.dev/glhost/internal/adapters/config"
	_ "go.nixgl.dev/glhost/internal/adapters/fs"
	_ "go.nixgl.dev/glhost/internal/adapters/glvnd"
	_ "go.nixgl.dev/glhost/internal/adapters/ldpath"
	_ "go.nixgl.dev/glhost/internal/adapters/logger"
	_ "go.nixgl.dev/glhost/internal/adapters/shell"
	// Register app and engine nodes.
	_ "go.nixgl.dev/glhost/internal/app"
	_ "go.nixgl.dev/glhost/internal/engine/resolver"
)
