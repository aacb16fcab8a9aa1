// Package glvnd generates the libglvnd ICD configuration files that
// point the EGL loader at the vendor DSOs.
package glvnd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.nixgl.dev/glhost/internal/core/ports"
	"go.trai.ch/zerr"
)

// icdConfig is the libglvnd vendor ICD file format.
type icdConfig struct {
	FileFormatVersion string `json:"file_format_version"`
	ICD               struct {
		LibraryPath string `json:"library_path"`
	} `json:"ICD"`
}

// vendorConfigs lists the ICD files to generate. The DSOs are named by
// bare soname to give the loader legroom to pick the right file from
// the injected search path.
var vendorConfigs = []struct {
	fileName string
	dsoName  string
}{
	{"10_nvidia.json", "libEGL_nvidia.so.0"},
	{"10_nvidia_wayland.json", "libnvidia-egl-wayland.so.1"},
	{"15_nvidia_gbm.json", "libnvidia-egl-gbm.so.1"},
}

// Writer writes EGL vendor ICD configuration files.
type Writer struct {
	logger ports.Logger
}

// NewWriter creates a new Writer.
func NewWriter(logger ports.Logger) *Writer {
	return &Writer{logger: logger}
}

// WriteConfigs writes the vendor ICD files into dir, creating it if
// needed, and returns dir for use as __EGL_VENDOR_LIBRARY_DIRS.
func (w *Writer) WriteConfigs(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", zerr.Wrap(err, "failed to create EGL config directory")
	}

	for _, conf := range vendorConfigs {
		var icd icdConfig
		icd.FileFormatVersion = "1.0.0"
		icd.ICD.LibraryPath = conf.dsoName

		data, err := json.Marshal(icd)
		if err != nil {
			return "", zerr.Wrap(err, "failed to marshal EGL vendor config")
		}

		path := filepath.Join(dir, conf.fileName)
		w.logger.Debug(fmt.Sprintf("writing %s config to %s", conf.dsoName, path))
		if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // Vendor configs must be world-readable
			return "", zerr.With(zerr.Wrap(err, "failed to write EGL vendor config"), "path", path)
		}
	}
	return dir, nil
}
