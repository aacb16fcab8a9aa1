// Package domain contains the core value types and pure logic for
// host driver library resolution.
package domain

import "regexp"

// Category is the functional class of a host driver library.
type Category string

const (
	// CategoryGLX marks the vendor GLX dispatch library.
	CategoryGLX Category = "glx"
	// CategoryEGL marks the vendor EGL dispatch and platform libraries.
	CategoryEGL Category = "egl"
	// CategoryCUDA marks the CUDA driver libraries.
	CategoryCUDA Category = "cuda"
	// CategoryGeneric marks the driver core DSOs and the host helper
	// libraries they dlopen at runtime.
	CategoryGeneric Category = "generic"
)

// Categories lists all categories in classification precedence order.
// A name matching several pattern sets classifies as the first match.
// The EGL names also appear in the generic driver closure, so EGL must
// be checked before Generic.
var Categories = []Category{CategoryGLX, CategoryEGL, CategoryCUDA, CategoryGeneric}

// The pattern lists below were figured out by looking at the library
// names shipped in the nvidia_x11 driver closure.
var glxPatterns = compilePatterns([]string{
	`libGLX_nvidia\.so`,
})

var eglPatterns = compilePatterns([]string{
	`libEGL_nvidia\.so`,
	`libnvidia-egl-wayland\.so`,
	`libnvidia-egl-gbm\.so`,
})

var cudaPatterns = compilePatterns([]string{
	`libcuda\.so`,
	`libcudadebugger\.so`,
})

var genericPatterns = compilePatterns([]string{
	`libEGL_nvidia\.so`,
	`libGLESv1_CM_nvidia\.so`,
	`libGLESv2_nvidia\.so`,
	`libglxserver_nvidia\.so`,
	`libnvcuvid\.so`,
	`libnvidia-allocator\.so`,
	`libnvidia-cfg\.so`,
	`libnvidia-compiler\.so`,
	`libnvidia-eglcore\.so`,
	`libnvidia-egl-gbm\.so`,
	`libnvidia-egl-wayland\.so`,
	`libnvidia-encode\.so`,
	`libnvidia-fbc\.so`,
	`libnvidia-glcore\.so`,
	`libnvidia-glsi\.so`,
	`libnvidia-glvkspirv\.so`,
	`libnvidia-gpucomp\.so`,
	`libnvidia-ml\.so`,
	`libnvidia-ngx\.so`,
	`libnvidia-nvvm\.so`,
	`libnvidia-opencl\.so`,
	`libnvidia-opticalflow\.so`,
	`libnvidia-ptxjitcompiler\.so`,
	`libnvidia-rtcore\.so`,
	`libnvidia-tls\.so`,
	`libnvidia-vulkan-producer\.so`,
	`libnvidia-wayland-client\.so`,
	`libnvoptix\.so`,
	`libnvtegrahv\.so`,
	// Host dependencies required by the driver DSOs to operate.
	`libdrm\.so`,
	`libffi\.so`,
	`libgbm\.so`,
	`libexpat\.so`,
	`libxcb-glx\.so`,
	`libX11-xcb\.so`,
	`libX11\.so`,
	`libXext\.so`,
	`libwayland-server\.so`,
	`libwayland-client\.so`,
})

var patternsByCategory = map[Category][]*regexp.Regexp{
	CategoryGLX:     glxPatterns,
	CategoryEGL:     eglPatterns,
	CategoryCUDA:    cudaPatterns,
	CategoryGeneric: genericPatterns,
}

func compilePatterns(patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(`^` + p)
	}
	return compiled
}

// Classify maps a library file base name to its functional category.
// It is a pure function of the name; no file content is inspected.
// Names matching no pattern return false and are excluded from
// resolution entirely. Names matching several pattern sets resolve by
// the precedence order of Categories.
func Classify(filename string) (Category, bool) {
	for _, cat := range Categories {
		for _, re := range patternsByCategory[cat] {
			if re.MatchString(filename) {
				return cat, true
			}
		}
	}
	return "", false
}
