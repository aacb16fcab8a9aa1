package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.nixgl.dev/glhost/cmd/glhost/commands"
	"go.nixgl.dev/glhost/internal/app"
	"go.nixgl.dev/glhost/internal/core/domain"
	"go.nixgl.dev/glhost/internal/core/ports/mocks"
	"go.nixgl.dev/glhost/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

type cliFixture struct {
	cli      *commands.CLI
	scanner  *mocks.MockScanner
	store    *mocks.MockSnapshotStore
	launcher *mocks.MockLauncher
	out      *bytes.Buffer
}

func newCLIFixture(t *testing.T) *cliFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &cliFixture{
		scanner:  mocks.NewMockScanner(ctrl),
		store:    mocks.NewMockSnapshotStore(ctrl),
		launcher: mocks.NewMockLauncher(ctrl),
		out:      &bytes.Buffer{},
	}

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	prober := mocks.NewMockProber(ctrl)
	eglWriter := mocks.NewMockEGLConfigWriter(ctrl)
	eglWriter.EXPECT().WriteConfigs(gomock.Any()).Return(t.TempDir(), nil).AnyTimes()

	searchPath := mocks.NewMockSearchPathProvider(ctrl)
	searchPath.EXPECT().LibraryDirs().Return([]string{"/usr/lib"}).AnyTimes()

	res := resolver.NewResolver(f.scanner, prober, f.store, log)
	a := app.New(&domain.Config{CacheDir: t.TempDir()}, searchPath, res, eglWriter, f.launcher, log)
	a.SetOutput(f.out)

	f.cli = commands.New(a)
	return f
}

func (f *cliFixture) expectScan(snap *domain.Snapshot) {
	f.store.EXPECT().Load().Return(nil)
	f.scanner.EXPECT().Scan(gomock.Any(), gomock.Any()).Return(snap, nil)
	f.store.EXPECT().Save(snap).Return(nil)
}

func glxSnapshot(dir string) *domain.Snapshot {
	return domain.NewSnapshot([]string{dir}, []domain.HostLibraryPath{{
		Fullpath: dir,
		Libraries: []domain.Library{{
			Category: domain.CategoryGLX,
			LibraryIdentity: domain.LibraryIdentity{
				Name:     "libGLX_nvidia.so.0",
				Fullpath: dir + "/libGLX_nvidia.so.0",
			},
		}},
	}})
}

func TestCLI_NoArgumentsFails(t *testing.T) {
	f := newCLIFixture(t)
	f.cli.SetArgs([]string{})

	err := f.cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrNoBinarySpecified)
}

func TestCLI_PrintWithBinaryConflicts(t *testing.T) {
	f := newCLIFixture(t)
	f.cli.SetArgs([]string{"-p", "/bin/true"})

	err := f.cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrConflictingArguments)
}

func TestCLI_PrintSearchPath(t *testing.T) {
	f := newCLIFixture(t)
	f.expectScan(glxSnapshot("/usr/lib"))
	f.cli.SetArgs([]string{"-p"})

	err := f.cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/usr/lib\n", f.out.String())
	assert.Equal(t, 0, f.cli.ExitCode())
}

func TestCLI_FlagsAfterBinaryAreForwarded(t *testing.T) {
	f := newCLIFixture(t)
	f.expectScan(glxSnapshot("/usr/lib"))
	f.launcher.EXPECT().
		Launch(gomock.Any(), "/bin/app", []string{"-p", "--verbose"}, gomock.Any()).
		Return(3, nil)
	f.cli.SetArgs([]string{"/bin/app", "-p", "--verbose"})

	err := f.cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, f.cli.ExitCode())
}

func TestCLI_NoCacheBypassesLoad(t *testing.T) {
	f := newCLIFixture(t)
	snap := glxSnapshot("/usr/lib")
	f.scanner.EXPECT().Scan(gomock.Any(), gomock.Any()).Return(snap, nil)
	f.store.EXPECT().Save(snap).Return(nil)
	f.launcher.EXPECT().
		Launch(gomock.Any(), "/bin/app", []string{}, gomock.Any()).
		Return(0, nil)
	f.cli.SetArgs([]string{"--no-cache", "/bin/app"})

	err := f.cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, f.cli.ExitCode())
}

func TestCLI_DriverDirectoryFlag(t *testing.T) {
	f := newCLIFixture(t)
	snap := glxSnapshot("/opt/nvidia/lib")
	f.store.EXPECT().Load().Return(nil)
	f.scanner.EXPECT().Scan(gomock.Any(), []string{"/opt/nvidia/lib"}).Return(snap, nil)
	f.store.EXPECT().Save(snap).Return(nil)
	f.cli.SetArgs([]string{"-d", "/opt/nvidia/lib", "-p"})

	err := f.cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/opt/nvidia/lib\n", f.out.String())
}
