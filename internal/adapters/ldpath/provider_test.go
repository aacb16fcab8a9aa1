package ldpath_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.nixgl.dev/glhost/internal/adapters/ldpath"
	"go.nixgl.dev/glhost/internal/adapters/logger"
)

func discardLogger() *logger.Logger {
	l := logger.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestProvider(t *testing.T, confPath string, defaults []string) *ldpath.Provider {
	t.Helper()
	p := ldpath.NewProvider(discardLogger())
	p.ConfPath = confPath
	p.Defaults = defaults
	return p
}

func TestProvider_LDLibraryPathFirst(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	def := t.TempDir()
	t.Setenv("LD_LIBRARY_PATH", first+string(os.PathListSeparator)+second)
	t.Setenv("PREFIX", "")

	p := newTestProvider(t, filepath.Join(t.TempDir(), "absent.conf"), []string{def})
	assert.Equal(t, []string{first, second, def}, p.LibraryDirs())
}

func TestProvider_ParsesConfWithIncludes(t *testing.T) {
	confDir := t.TempDir()
	libA := t.TempDir()
	libB := t.TempDir()

	subDir := filepath.Join(confDir, "ld.so.conf.d")
	require.NoError(t, os.Mkdir(subDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(subDir, "graphics.conf"), []byte(libB+"\n"), 0o644))

	conf := filepath.Join(confDir, "ld.so.conf")
	content := "# host linker config\n" +
		"include ld.so.conf.d/*.conf\n" +
		"\n" +
		libA + "\n"
	require.NoError(t, os.WriteFile(conf, []byte(content), 0o644))

	t.Setenv("LD_LIBRARY_PATH", "")
	t.Setenv("PREFIX", "")

	p := newTestProvider(t, conf, nil)
	assert.Equal(t, []string{libB, libA}, p.LibraryDirs())
}

func TestProvider_SkipsNonDirectories(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	missing := filepath.Join(dir, "missing")

	t.Setenv("LD_LIBRARY_PATH", "")
	t.Setenv("PREFIX", "")

	p := newTestProvider(t, filepath.Join(dir, "absent.conf"), []string{file, missing, dir})
	assert.Equal(t, []string{dir}, p.LibraryDirs())
}

func TestProvider_DeduplicatesPreservingOrder(t *testing.T) {
	dir := t.TempDir()
	other := t.TempDir()
	t.Setenv("LD_LIBRARY_PATH", dir)
	t.Setenv("PREFIX", "")

	p := newTestProvider(t, filepath.Join(t.TempDir(), "absent.conf"), []string{other, dir})
	assert.Equal(t, []string{dir, other}, p.LibraryDirs())
}

func TestProvider_PrefixTree(t *testing.T) {
	prefix := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(prefix, "lib"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(prefix, "usr/lib"), 0o755))

	t.Setenv("LD_LIBRARY_PATH", "")
	t.Setenv("PREFIX", prefix)

	p := newTestProvider(t, filepath.Join(t.TempDir(), "absent.conf"), nil)
	assert.Equal(t, []string{
		filepath.Join(prefix, "lib"),
		filepath.Join(prefix, "usr/lib"),
	}, p.LibraryDirs())
}
