package ports

// EGLConfigWriter materializes the libglvnd vendor ICD files that
// steer the EGL loader toward the host vendor DSOs.
//
//go:generate go run go.uber.org/mock/mockgen -source=eglwriter.go -destination=mocks/mock_eglwriter.go -package=mocks
type EGLConfigWriter interface {
	// WriteConfigs writes the vendor ICD files into dir, creating it
	// if needed, and returns the directory to expose through
	// __EGL_VENDOR_LIBRARY_DIRS.
	WriteConfigs(dir string) (string, error)
}
