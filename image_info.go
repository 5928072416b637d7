package blend2d

import "bytes"

// ImageInfo describes an encoded image's header without its pixel data. Its
// layout matches the native BLImageInfo, so decoders fill it in directly.
type ImageInfo struct {
	// Size is the image size in pixels.
	Size SizeI
	// Density is the pixel density per meter, zero if unknown.
	Density Size
	// Flags are format flags.
	Flags uint32
	// Depth is the image depth in bits per pixel.
	Depth uint16
	// PlaneCount is the number of planes.
	PlaneCount uint16
	// FrameCount is the number of frames, zero if unknown.
	FrameCount uint64

	format      [16]byte
	compression [16]byte
}

// FormatName returns the image format name, for example "BMP".
func (i *ImageInfo) FormatName() string {
	return cString(i.format[:])
}

// CompressionName returns the compression name, empty if uncompressed.
func (i *ImageInfo) CompressionName() string {
	return cString(i.compression[:])
}

func cString(b []byte) string {
	if n := bytes.IndexByte(b, 0); n >= 0 {
		b = b[:n]
	}
	return string(b)
}
