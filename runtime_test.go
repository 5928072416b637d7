package blend2d

import (
	"strings"
	"testing"
)

func TestQueryBuildInfo(t *testing.T) {
	info, err := QueryBuildInfo()
	if err != nil {
		t.Fatalf("QueryBuildInfo: %v", err)
	}

	if info.MajorVersion() == 0 && info.MinorVersion() == 0 {
		t.Errorf("version = %d.%d.%d, want nonzero", info.MajorVersion(), info.MinorVersion(), info.PatchVersion())
	}
	if info.MaxImageSize == 0 {
		t.Error("MaxImageSize should be positive")
	}
	if info.MaxThreadCount == 0 {
		t.Error("MaxThreadCount should be positive")
	}
	if info.CompilerInfo() == "" {
		t.Error("CompilerInfo() should not be empty")
	}
	if strings.ContainsRune(info.CompilerInfo(), 0) {
		t.Error("CompilerInfo() should be NUL-trimmed")
	}
}

func TestQuerySystemInfo(t *testing.T) {
	info, err := QuerySystemInfo()
	if err != nil {
		t.Fatalf("QuerySystemInfo: %v", err)
	}

	if info.ThreadCount == 0 {
		t.Error("ThreadCount should be positive")
	}
	if info.AllocationGranularity == 0 {
		t.Error("AllocationGranularity should be positive")
	}
}

func TestQueryMemoryInfo(t *testing.T) {
	// Allocate something so the runtime has memory to report.
	img, err := NewImage(64, 64, FormatPRGB32)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	defer img.Destroy()

	if _, err := QueryMemoryInfo(); err != nil {
		t.Fatalf("QueryMemoryInfo: %v", err)
	}
}

func TestCleanup(t *testing.T) {
	tests := []struct {
		name  string
		flags CleanupFlags
	}{
		{"object pool", CleanupObjectPool},
		{"zeroed pool", CleanupZeroedPool},
		{"thread pool", CleanupThreadPool},
		{"everything", CleanupEverything},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Cleanup(tt.flags); err != nil {
				t.Errorf("Cleanup(%v): %v", tt.flags, err)
			}
		})
	}
}
