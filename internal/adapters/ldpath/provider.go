// Package ldpath discovers the host's library search directories from
// the dynamic linker configuration.
package ldpath

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.nixgl.dev/glhost/internal/core/ports"
)

var _ ports.SearchPathProvider = (*Provider)(nil)

// defaultDirs are probed last, after the linker configuration.
// /run/opengl-driver/lib is the NixOS driver location and
// /usr/lib/wsl/lib the WSL one.
var defaultDirs = []string{
	"/lib",
	"/usr/lib",
	"/lib64",
	"/usr/lib64",
	"/run/opengl-driver/lib",
	"/usr/lib/wsl/lib",
}

// Provider implements ports.SearchPathProvider from LD_LIBRARY_PATH,
// /etc/ld.so.conf (including files it pulls in via include
// directives), the Termux-style PREFIX tree, and a fixed list of
// platform defaults.
type Provider struct {
	// ConfPath is the linker configuration file, /etc/ld.so.conf by
	// default.
	ConfPath string
	// Defaults are the directories appended after the configured ones.
	Defaults []string
	logger   ports.Logger
}

// NewProvider creates a search path provider using the host's linker
// configuration.
func NewProvider(logger ports.Logger) *Provider {
	return &Provider{
		ConfPath: "/etc/ld.so.conf",
		Defaults: defaultDirs,
		logger:   logger,
	}
}

// LibraryDirs returns the candidate library directories in search
// precedence order: LD_LIBRARY_PATH first, then the linker
// configuration, then the PREFIX tree, then the defaults. Duplicates
// keep their first-seen position; entries that are not existing
// directories are dropped.
func (p *Provider) LibraryDirs() []string {
	var paths []string

	if ld := os.Getenv("LD_LIBRARY_PATH"); ld != "" {
		paths = append(paths, filepath.SplitList(ld)...)
	}

	if _, err := os.Stat(p.ConfPath); err == nil {
		paths = append(paths, p.parseConfFile(p.ConfPath)...)
	} else {
		p.logger.Warn(fmt.Sprintf("linker configuration %s not found", p.ConfPath))
	}

	if prefix := os.Getenv("PREFIX"); prefix != "" {
		prefixConf := filepath.Join(prefix, "etc", "ld.so.conf")
		if _, err := os.Stat(prefixConf); err == nil {
			paths = append(paths, p.parseConfFile(prefixConf)...)
		} else {
			p.logger.Warn(fmt.Sprintf("linker configuration %s not found", prefixConf))
		}
		paths = append(paths,
			filepath.Join(prefix, "lib"),
			filepath.Join(prefix, "usr/lib"),
			filepath.Join(prefix, "lib64"),
			filepath.Join(prefix, "usr/lib64"),
		)
	}

	paths = append(paths, p.Defaults...)

	var dirs []string
	seen := make(map[string]bool)
	for _, path := range paths {
		if seen[path] {
			continue
		}
		seen[path] = true
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			dirs = append(dirs, path)
		}
	}
	return dirs
}

// parseConfFile reads an ld.so.conf-style file: one directory per
// line, # comments, and "include GLOB" directives resolved relative to
// the file's own directory.
func (p *Provider) parseConfFile(path string) []string {
	data, err := os.ReadFile(path) //nolint:gosec // Linker configuration paths come from the host
	if err != nil {
		p.logger.Debug(fmt.Sprintf("skipping unreadable linker configuration %s: %v", path, err))
		return nil
	}

	var paths []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if pattern, ok := strings.CutPrefix(line, "include "); ok {
			pattern = strings.TrimSpace(pattern)
			if !filepath.IsAbs(pattern) {
				pattern = filepath.Join(filepath.Dir(filepath.Clean(path)), pattern)
			}
			matches, err := filepath.Glob(pattern)
			if err != nil {
				p.logger.Debug(fmt.Sprintf("skipping invalid include pattern %q: %v", pattern, err))
				continue
			}
			for _, match := range matches {
				paths = append(paths, p.parseConfFile(match)...)
			}
			continue
		}
		paths = append(paths, line)
	}
	return paths
}
