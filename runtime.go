package blend2d

/*
#include <blend2d.h>
*/
import "C"

import "unsafe"

// BuildType tells whether the native library is a debug or release build.
type BuildType uint32

const (
	BuildTypeDebug   = BuildType(C.BL_RUNTIME_BUILD_TYPE_DEBUG)
	BuildTypeRelease = BuildType(C.BL_RUNTIME_BUILD_TYPE_RELEASE)
)

// CPUArch is the host CPU architecture.
type CPUArch uint32

const (
	CPUArchUnknown = CPUArch(C.BL_RUNTIME_CPU_ARCH_UNKNOWN)
	CPUArchX86     = CPUArch(C.BL_RUNTIME_CPU_ARCH_X86)
	CPUArchARM     = CPUArch(C.BL_RUNTIME_CPU_ARCH_ARM)
	CPUArchMIPS    = CPUArch(C.BL_RUNTIME_CPU_ARCH_MIPS)
)

// CPUFeatures are CPU features the native library can use.
type CPUFeatures uint32

const (
	CPUFeatureX86SSE2  = CPUFeatures(C.BL_RUNTIME_CPU_FEATURE_X86_SSE2)
	CPUFeatureX86SSE3  = CPUFeatures(C.BL_RUNTIME_CPU_FEATURE_X86_SSE3)
	CPUFeatureX86SSSE3 = CPUFeatures(C.BL_RUNTIME_CPU_FEATURE_X86_SSSE3)
	CPUFeatureX86SSE41 = CPUFeatures(C.BL_RUNTIME_CPU_FEATURE_X86_SSE4_1)
	CPUFeatureX86SSE42 = CPUFeatures(C.BL_RUNTIME_CPU_FEATURE_X86_SSE4_2)
	CPUFeatureX86AVX   = CPUFeatures(C.BL_RUNTIME_CPU_FEATURE_X86_AVX)
	CPUFeatureX86AVX2  = CPUFeatures(C.BL_RUNTIME_CPU_FEATURE_X86_AVX2)
)

// CleanupFlags select which runtime pools Cleanup releases.
type CleanupFlags uint32

const (
	// CleanupObjectPool releases the object memory pool.
	CleanupObjectPool = CleanupFlags(C.BL_RUNTIME_CLEANUP_OBJECT_POOL)
	// CleanupZeroedPool releases the zeroed memory pool.
	CleanupZeroedPool = CleanupFlags(C.BL_RUNTIME_CLEANUP_ZEROED_POOL)
	// CleanupThreadPool joins and releases unused worker threads.
	CleanupThreadPool = CleanupFlags(C.BL_RUNTIME_CLEANUP_THREAD_POOL)
	// CleanupEverything releases everything that can be released.
	CleanupEverything = CleanupObjectPool | CleanupZeroedPool | CleanupThreadPool
)

// Cleanup tells the native runtime to release cached resources.
func Cleanup(flags CleanupFlags) error {
	if err := resultToError(C.blRuntimeCleanup(C.uint32_t(flags))); err != nil {
		logger().Warn("runtime cleanup failed", "flags", flags, "error", err)
		return err
	}
	return nil
}

// BuildInfo describes the native library build. Its layout matches the
// native BLRuntimeBuildInfo.
type BuildInfo struct {
	// Version is the native library version as (major<<16 | minor<<8 |
	// patch).
	Version   uint32
	BuildType BuildType
	// BaselineCPUFeatures were required at compile time; the host CPU must
	// support them.
	BaselineCPUFeatures CPUFeatures
	// SupportedCPUFeatures can be used by optional code paths when the host
	// CPU supports them.
	SupportedCPUFeatures CPUFeatures
	// MaxImageSize is the maximum width and height of an image.
	MaxImageSize uint32
	// MaxThreadCount is the maximum worker thread count for asynchronous
	// rendering.
	MaxThreadCount uint32

	_            [2]uint32
	compilerInfo [32]byte
}

// CompilerInfo returns the compiler the native library was built with.
func (i *BuildInfo) CompilerInfo() string {
	return cString(i.compilerInfo[:])
}

// MajorVersion returns the major part of Version.
func (i *BuildInfo) MajorVersion() uint32 { return i.Version >> 16 }

// MinorVersion returns the minor part of Version.
func (i *BuildInfo) MinorVersion() uint32 { return (i.Version >> 8) & 0xFF }

// PatchVersion returns the patch part of Version.
func (i *BuildInfo) PatchVersion() uint32 { return i.Version & 0xFF }

// SystemInfo describes the host system. Its layout matches the native
// BLRuntimeSystemInfo.
type SystemInfo struct {
	CPUArch     CPUArch
	CPUFeatures CPUFeatures
	// CoreCount is the number of physical cores.
	CoreCount uint32
	// ThreadCount is the number of hardware threads.
	ThreadCount uint32
	// MinThreadStackSize is the minimum stack size of a thread.
	MinThreadStackSize uint32
	// MinWorkerStackSize is the minimum stack size of the library's worker
	// threads.
	MinWorkerStackSize uint32
	// AllocationGranularity is the virtual memory allocation granularity.
	AllocationGranularity uint32

	_ [5]uint32
}

// MemoryInfo reports how much memory the native runtime has allocated. Its
// layout matches the native BLRuntimeMemoryInfo.
type MemoryInfo struct {
	// VMUsed is the virtual memory used at this time.
	VMUsed uint
	// VMReserved is the virtual memory reserved internally.
	VMReserved uint
	// VMOverhead is the overhead of managing virtual memory allocations.
	VMOverhead uint
	// VMBlockCount is the number of virtual memory blocks allocated.
	VMBlockCount uint
	// ZMUsed is the zeroed memory used at this time.
	ZMUsed uint
	// ZMReserved is the zeroed memory reserved internally.
	ZMReserved uint
	// ZMOverhead is the overhead of managing zeroed memory allocations.
	ZMOverhead uint
	// ZMBlockCount is the number of zeroed memory blocks allocated.
	ZMBlockCount uint
	// DynamicPipelineCount is the number of dynamic pipelines created and
	// cached.
	DynamicPipelineCount uint
}

// QueryBuildInfo queries the native library's build info.
func QueryBuildInfo() (BuildInfo, error) {
	var info BuildInfo
	err := resultToError(C.blRuntimeQueryInfo(C.BL_RUNTIME_INFO_TYPE_BUILD, unsafe.Pointer(&info)))
	return info, err
}

// QuerySystemInfo queries the host system info.
func QuerySystemInfo() (SystemInfo, error) {
	var info SystemInfo
	err := resultToError(C.blRuntimeQueryInfo(C.BL_RUNTIME_INFO_TYPE_SYSTEM, unsafe.Pointer(&info)))
	return info, err
}

// QueryMemoryInfo queries the native runtime's memory use.
func QueryMemoryInfo() (MemoryInfo, error) {
	var info MemoryInfo
	err := resultToError(C.blRuntimeQueryInfo(C.BL_RUNTIME_INFO_TYPE_MEMORY, unsafe.Pointer(&info)))
	return info, err
}
