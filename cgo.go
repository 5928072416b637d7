package blend2d

// Build configuration for linking against the native Blend2D library.
//
// The blend2d/ directory is expected to contain the Blend2D sources as a git
// submodule, built statically into blend2d/build:
//
//	cd blend2d && cmake -B build -DBLEND2D_STATIC=TRUE && cmake --build build
//
// An externally installed library can be used instead by overriding CGO_CFLAGS
// and CGO_LDFLAGS.

/*
#cgo CFLAGS: -I${SRCDIR}/blend2d/src
#cgo LDFLAGS: -L${SRCDIR}/blend2d/build -lblend2d -lm -lpthread
#cgo linux LDFLAGS: -lstdc++ -lrt
#cgo darwin LDFLAGS: -lc++
*/
import "C"
