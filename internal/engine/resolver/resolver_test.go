package resolver_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.nixgl.dev/glhost/internal/core/domain"
	"go.nixgl.dev/glhost/internal/core/ports/mocks"
	"go.nixgl.dev/glhost/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

func snapshotWith(dir string, libs ...domain.Library) *domain.Snapshot {
	return domain.NewSnapshot(
		[]string{dir},
		[]domain.HostLibraryPath{{Fullpath: dir, Libraries: libs}},
	)
}

func cudaLib(dir string) domain.Library {
	return domain.Library{
		Category: domain.CategoryCUDA,
		LibraryIdentity: domain.LibraryIdentity{
			Name:             "libcuda.so.1",
			Fullpath:         dir + "/libcuda.so.1",
			LastModification: 1111,
			Size:             64,
		},
	}
}

func TestResolver_ReusesFreshSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scanner := mocks.NewMockScanner(ctrl)
	prober := mocks.NewMockProber(ctrl)
	store := mocks.NewMockSnapshotStore(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	lib := cudaLib("/usr/lib")
	cached := snapshotWith("/usr/lib", lib)

	store.EXPECT().Load().Return(cached)
	prober.EXPECT().Identify(lib.Fullpath).Return(lib.LibraryIdentity, nil)
	prober.EXPECT().ListDir("/usr/lib").Return([]string{"libcuda.so.1", "libc.so.6"}, nil)

	r := resolver.NewResolver(scanner, prober, store, log)
	snap, err := r.Resolve(context.Background(), []string{"/usr/lib"}, false)
	require.NoError(t, err)
	assert.Same(t, cached, snap)
}

func TestResolver_RescansOnModifiedLibrary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scanner := mocks.NewMockScanner(ctrl)
	prober := mocks.NewMockProber(ctrl)
	store := mocks.NewMockSnapshotStore(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	lib := cudaLib("/usr/lib")
	cached := snapshotWith("/usr/lib", lib)
	changed := lib.LibraryIdentity
	changed.Size = 128

	fresh := snapshotWith("/usr/lib")
	store.EXPECT().Load().Return(cached)
	prober.EXPECT().Identify(lib.Fullpath).Return(changed, nil)
	scanner.EXPECT().Scan(gomock.Any(), []string{"/usr/lib"}).Return(fresh, nil)
	store.EXPECT().Save(fresh).Return(nil)

	r := resolver.NewResolver(scanner, prober, store, log)
	snap, err := r.Resolve(context.Background(), []string{"/usr/lib"}, false)
	require.NoError(t, err)
	assert.Same(t, fresh, snap)
}

func TestResolver_RescansOnRemovedLibrary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scanner := mocks.NewMockScanner(ctrl)
	prober := mocks.NewMockProber(ctrl)
	store := mocks.NewMockSnapshotStore(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	lib := cudaLib("/usr/lib")
	cached := snapshotWith("/usr/lib", lib)

	fresh := snapshotWith("/usr/lib")
	store.EXPECT().Load().Return(cached)
	prober.EXPECT().Identify(lib.Fullpath).Return(domain.LibraryIdentity{}, errors.New("stat: no such file"))
	scanner.EXPECT().Scan(gomock.Any(), []string{"/usr/lib"}).Return(fresh, nil)
	store.EXPECT().Save(fresh).Return(nil)

	r := resolver.NewResolver(scanner, prober, store, log)
	snap, err := r.Resolve(context.Background(), []string{"/usr/lib"}, false)
	require.NoError(t, err)
	assert.Same(t, fresh, snap)
}

func TestResolver_RescansOnNewClassifiableFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scanner := mocks.NewMockScanner(ctrl)
	prober := mocks.NewMockProber(ctrl)
	store := mocks.NewMockSnapshotStore(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	lib := cudaLib("/usr/lib")
	cached := snapshotWith("/usr/lib", lib)

	fresh := snapshotWith("/usr/lib")
	store.EXPECT().Load().Return(cached)
	prober.EXPECT().Identify(lib.Fullpath).Return(lib.LibraryIdentity, nil)
	prober.EXPECT().ListDir("/usr/lib").Return([]string{"libcuda.so.1", "libGLX_nvidia.so.0"}, nil)
	scanner.EXPECT().Scan(gomock.Any(), []string{"/usr/lib"}).Return(fresh, nil)
	store.EXPECT().Save(fresh).Return(nil)

	r := resolver.NewResolver(scanner, prober, store, log)
	snap, err := r.Resolve(context.Background(), []string{"/usr/lib"}, false)
	require.NoError(t, err)
	assert.Same(t, fresh, snap)
}

func TestResolver_IgnoresNewUnclassifiableFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scanner := mocks.NewMockScanner(ctrl)
	prober := mocks.NewMockProber(ctrl)
	store := mocks.NewMockSnapshotStore(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	lib := cudaLib("/usr/lib")
	cached := snapshotWith("/usr/lib", lib)

	store.EXPECT().Load().Return(cached)
	prober.EXPECT().Identify(lib.Fullpath).Return(lib.LibraryIdentity, nil)
	prober.EXPECT().ListDir("/usr/lib").Return([]string{"libcuda.so.1", "libssl.so.3"}, nil)

	r := resolver.NewResolver(scanner, prober, store, log)
	snap, err := r.Resolve(context.Background(), []string{"/usr/lib"}, false)
	require.NoError(t, err)
	assert.Same(t, cached, snap)
}

func TestResolver_RescansOnDirectoryOrderChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scanner := mocks.NewMockScanner(ctrl)
	prober := mocks.NewMockProber(ctrl)
	store := mocks.NewMockSnapshotStore(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	cached := domain.NewSnapshot(
		[]string{"/usr/lib", "/lib64"},
		[]domain.HostLibraryPath{{Fullpath: "/usr/lib"}, {Fullpath: "/lib64"}},
	)
	dirs := []string{"/lib64", "/usr/lib"}

	fresh := domain.NewSnapshot(dirs, []domain.HostLibraryPath{{Fullpath: "/lib64"}, {Fullpath: "/usr/lib"}})
	store.EXPECT().Load().Return(cached)
	scanner.EXPECT().Scan(gomock.Any(), dirs).Return(fresh, nil)
	store.EXPECT().Save(fresh).Return(nil)

	r := resolver.NewResolver(scanner, prober, store, log)
	snap, err := r.Resolve(context.Background(), dirs, false)
	require.NoError(t, err)
	assert.Same(t, fresh, snap)
}

func TestResolver_AbsentCacheScans(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scanner := mocks.NewMockScanner(ctrl)
	prober := mocks.NewMockProber(ctrl)
	store := mocks.NewMockSnapshotStore(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	fresh := snapshotWith("/usr/lib")
	store.EXPECT().Load().Return(nil)
	scanner.EXPECT().Scan(gomock.Any(), []string{"/usr/lib"}).Return(fresh, nil)
	store.EXPECT().Save(fresh).Return(nil)

	r := resolver.NewResolver(scanner, prober, store, log)
	snap, err := r.Resolve(context.Background(), []string{"/usr/lib"}, false)
	require.NoError(t, err)
	assert.Same(t, fresh, snap)
}

func TestResolver_ForceBypassesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scanner := mocks.NewMockScanner(ctrl)
	prober := mocks.NewMockProber(ctrl)
	store := mocks.NewMockSnapshotStore(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	fresh := snapshotWith("/usr/lib")
	scanner.EXPECT().Scan(gomock.Any(), []string{"/usr/lib"}).Return(fresh, nil)
	store.EXPECT().Save(fresh).Return(nil)

	r := resolver.NewResolver(scanner, prober, store, log)
	snap, err := r.Resolve(context.Background(), []string{"/usr/lib"}, true)
	require.NoError(t, err)
	assert.Same(t, fresh, snap)
}

func TestResolver_SaveFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scanner := mocks.NewMockScanner(ctrl)
	prober := mocks.NewMockProber(ctrl)
	store := mocks.NewMockSnapshotStore(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any())

	fresh := snapshotWith("/usr/lib")
	store.EXPECT().Load().Return(nil)
	scanner.EXPECT().Scan(gomock.Any(), []string{"/usr/lib"}).Return(fresh, nil)
	store.EXPECT().Save(fresh).Return(errors.New("disk full"))

	r := resolver.NewResolver(scanner, prober, store, log)
	snap, err := r.Resolve(context.Background(), []string{"/usr/lib"}, false)
	require.NoError(t, err)
	assert.Same(t, fresh, snap)
}
