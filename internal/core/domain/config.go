package domain

// Config holds the wrapper's runtime configuration, resolved from the
// optional config file and environment defaults. It is passed
// explicitly into the components that need it; there is no implicit
// global state so tests can run against isolated temporary locations.
type Config struct {
	// DriverDirectories are extra host directories scanned before the
	// discovered load path.
	DriverDirectories []string
	// CacheDir is the directory holding the resolution cache file and
	// the generated EGL vendor configs.
	CacheDir string
	// Debug enables debug logging.
	Debug bool
}
