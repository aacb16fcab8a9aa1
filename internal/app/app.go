// Package app implements the application layer for glhost.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.nixgl.dev/glhost/internal/core/domain"
	"go.nixgl.dev/glhost/internal/core/ports"
	"go.nixgl.dev/glhost/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// eglConfigDirName is the subdirectory of the cache directory holding
// the generated libglvnd vendor ICD files.
const eglConfigDirName = "egl-confs"

// RunOptions carries the per-invocation flags from the CLI.
type RunOptions struct {
	// DriverDirectory, when set, replaces host search path discovery
	// with a single directory.
	DriverDirectory string
	// PrintSearchPath prints the composed library path instead of
	// launching a binary.
	PrintSearchPath bool
	// NoCache forces a fresh scan, bypassing any cached resolution.
	NoCache bool
	// Binary is the wrapped program, with Args forwarded verbatim.
	Binary string
	Args   []string
}

// App represents the main application logic.
type App struct {
	cfg        *domain.Config
	searchPath ports.SearchPathProvider
	resolver   *resolver.Resolver
	eglWriter  ports.EGLConfigWriter
	launcher   ports.Launcher
	logger     ports.Logger
	out        io.Writer
}

// New creates a new App instance.
func New(
	cfg *domain.Config,
	searchPath ports.SearchPathProvider,
	res *resolver.Resolver,
	eglWriter ports.EGLConfigWriter,
	launcher ports.Launcher,
	logger ports.Logger,
) *App {
	return &App{
		cfg:        cfg,
		searchPath: searchPath,
		resolver:   res,
		eglWriter:  eglWriter,
		launcher:   launcher,
		logger:     logger,
		out:        os.Stdout,
	}
}

// SetOutput redirects the wrapper's own output. Used for testing; the
// wrapped binary's stdio is never touched.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

// Run resolves the host driver libraries and either prints the
// composed search path or launches the wrapped binary with the driver
// environment injected. It returns the process exit code.
func (a *App) Run(ctx context.Context, opts RunOptions) (int, error) {
	snap, err := a.resolver.Resolve(ctx, a.scanDirs(opts), opts.NoCache)
	if err != nil {
		return 1, zerr.Wrap(err, "failed to resolve host driver libraries")
	}

	searchPath := domain.ComposeSearchPath(snap, domain.Categories...)

	if opts.PrintSearchPath {
		fmt.Fprintln(a.out, strings.Join(searchPath, ":"))
		return 0, nil
	}

	if opts.Binary == "" {
		return 1, domain.ErrNoBinarySpecified
	}

	env, err := a.driverEnvironment(snap, searchPath)
	if err != nil {
		return 1, err
	}

	code, err := a.launcher.Launch(ctx, opts.Binary, opts.Args, env)
	if err != nil {
		return 1, err
	}
	return code, nil
}

// scanDirs returns the ordered directories to resolve against. An
// explicit driver directory replaces discovery entirely; otherwise
// configured extras come first, then the discovered host load path,
// deduplicated at first occurrence.
func (a *App) scanDirs(opts RunOptions) []string {
	if opts.DriverDirectory != "" {
		return []string{opts.DriverDirectory}
	}

	var dirs []string
	seen := make(map[string]bool)
	for _, dir := range append(append([]string{}, a.cfg.DriverDirectories...), a.searchPath.LibraryDirs()...) {
		if seen[dir] {
			continue
		}
		seen[dir] = true
		dirs = append(dirs, dir)
	}
	return dirs
}

// driverEnvironment builds the variables injected into the wrapped
// binary. The composed directories are prepended to any LD_LIBRARY_PATH
// already present so caller-provided paths keep working.
func (a *App) driverEnvironment(snap *domain.Snapshot, searchPath []string) (map[string]string, error) {
	env := make(map[string]string)

	if len(searchPath) > 0 {
		ldPath := strings.Join(searchPath, ":")
		if current := os.Getenv("LD_LIBRARY_PATH"); current != "" {
			ldPath += ":" + current
		}
		env["LD_LIBRARY_PATH"] = ldPath
	}

	if snap.HasCategory(domain.CategoryGLX) {
		env["__GLX_VENDOR_LIBRARY_NAME"] = "nvidia"
	}

	if snap.HasCategory(domain.CategoryEGL) {
		eglDir, err := a.eglWriter.WriteConfigs(filepath.Join(a.cfg.CacheDir, eglConfigDirName))
		if err != nil {
			return nil, zerr.Wrap(err, "failed to write EGL vendor configs")
		}
		env["__EGL_VENDOR_LIBRARY_DIRS"] = eglDir
	}

	if len(env) == 0 {
		a.logger.Warn("no host driver libraries found, launching with an unmodified environment")
	}

	return env, nil
}
