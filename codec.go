package blend2d

/*
#include <stdlib.h>
#include <blend2d.h>
*/
import "C"

import (
	"fmt"
	"strings"
	"unsafe"
)

// CodecFeatures describes the capabilities of an image codec.
type CodecFeatures uint32

const (
	CodecFeatureRead       = CodecFeatures(C.BL_IMAGE_CODEC_FEATURE_READ)
	CodecFeatureWrite      = CodecFeatures(C.BL_IMAGE_CODEC_FEATURE_WRITE)
	CodecFeatureLossless   = CodecFeatures(C.BL_IMAGE_CODEC_FEATURE_LOSSLESS)
	CodecFeatureLossy      = CodecFeatures(C.BL_IMAGE_CODEC_FEATURE_LOSSY)
	CodecFeatureMultiFrame = CodecFeatures(C.BL_IMAGE_CODEC_FEATURE_MULTI_FRAME)
	CodecFeatureIPTC       = CodecFeatures(C.BL_IMAGE_CODEC_FEATURE_IPTC)
	CodecFeatureEXIF       = CodecFeatures(C.BL_IMAGE_CODEC_FEATURE_EXIF)
	CodecFeatureXMP        = CodecFeatures(C.BL_IMAGE_CODEC_FEATURE_XMP)
)

// ImageCodec provides encoding and decoding for one image format, for
// example BMP, PNG, or JPEG.
type ImageCodec struct {
	core C.BLImageCodecCore
}

// ImageCodecs is a list of image codecs used to pick a codec when reading or
// writing images.
type ImageCodecs struct {
	ptr *C.BLArrayCore
}

// BuiltInCodecs returns the codecs built into the native library.
func BuiltInCodecs() *ImageCodecs {
	return &ImageCodecs{ptr: C.blImageCodecBuiltInCodecs()}
}

// Len returns the number of codecs in the list.
func (cs *ImageCodecs) Len() int {
	return int(C.blArrayGetSize(cs.ptr))
}

// At returns the codec at index i as a weak clone.
func (cs *ImageCodecs) At(i int) *ImageCodec {
	data := (*C.BLImageCodecCore)(C.blArrayGetData(cs.ptr))
	item := unsafe.Pointer(uintptr(unsafe.Pointer(data)) + uintptr(i)*unsafe.Sizeof(*data))
	codec := &ImageCodec{}
	initWeak(unsafe.Pointer(&codec.core), item)
	return codec
}

// FindByName returns the codec whose name matches name, for example "BMP".
func (cs *ImageCodecs) FindByName(name string) (*ImageCodec, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	codec := &ImageCodec{}
	C.blImageCodecInit(&codec.core)
	if err := resultToError(C.blImageCodecFindByName(&codec.core, cs.ptr, cname)); err != nil {
		codec.Destroy()
		return nil, fmt.Errorf("no codec named %q: %w", name, err)
	}
	return codec, nil
}

// FindByData returns the codec that recognizes the signature of the encoded
// data.
func (cs *ImageCodecs) FindByData(data []byte) (*ImageCodec, error) {
	if len(data) == 0 {
		return nil, ErrNoMoreData
	}
	codec := &ImageCodec{}
	C.blImageCodecInit(&codec.core)
	if err := resultToError(C.blImageCodecFindByData(&codec.core, cs.ptr, unsafe.Pointer(&data[0]), C.size_t(len(data)))); err != nil {
		codec.Destroy()
		return nil, fmt.Errorf("no codec matches data: %w", err)
	}
	logger().Debug("codec matched data", "name", codec.Name())
	return codec, nil
}

func (c *ImageCodec) impl() *C.BLImageCodecImpl {
	return (*C.BLImageCodecImpl)(unsafe.Pointer(c.core.impl))
}

// Name returns the codec's name, for example "BMP".
func (c *ImageCodec) Name() string {
	return C.GoString(c.impl().name)
}

// Vendor returns the codec's vendor string.
func (c *ImageCodec) Vendor() string {
	return C.GoString(c.impl().vendor)
}

// MimeType returns the codec's mime type, for example "image/bmp".
func (c *ImageCodec) MimeType() string {
	return C.GoString(c.impl().mimeType)
}

// Extensions returns the file extensions handled by the codec.
func (c *ImageCodec) Extensions() []string {
	return strings.Split(C.GoString(c.impl().extensions), "|")
}

// Features returns the codec's capability flags.
func (c *ImageCodec) Features() CodecFeatures {
	return CodecFeatures(c.impl().features)
}

// InspectData scores how well the codec recognizes the encoded data. Higher
// is better, zero means unrecognized.
func (c *ImageCodec) InspectData(data []byte) uint32 {
	if len(data) == 0 {
		return 0
	}
	return uint32(C.blImageCodecInspectData(&c.core, unsafe.Pointer(&data[0]), C.size_t(len(data))))
}

// CreateDecoder creates a decoder for the codec's format.
func (c *ImageCodec) CreateDecoder() (*ImageDecoder, error) {
	dec := &ImageDecoder{}
	C.blImageDecoderInit(&dec.core)
	if err := resultToError(C.blImageCodecCreateDecoder(&c.core, &dec.core)); err != nil {
		dec.Destroy()
		return nil, fmt.Errorf("creating %s decoder: %w", c.Name(), err)
	}
	return dec, nil
}

// CreateEncoder creates an encoder for the codec's format.
func (c *ImageCodec) CreateEncoder() (*ImageEncoder, error) {
	enc := &ImageEncoder{}
	C.blImageEncoderInit(&enc.core)
	if err := resultToError(C.blImageCodecCreateEncoder(&c.core, &enc.core)); err != nil {
		enc.Destroy()
		return nil, fmt.Errorf("creating %s encoder: %w", c.Name(), err)
	}
	return enc, nil
}

// Clone returns a weak clone of the codec handle.
func (c *ImageCodec) Clone() *ImageCodec {
	clone := &ImageCodec{}
	initWeak(unsafe.Pointer(&clone.core), unsafe.Pointer(&c.core))
	return clone
}

// Destroy releases the codec handle. Destroy is idempotent.
func (c *ImageCodec) Destroy() {
	C.blImageCodecReset(&c.core)
}

// ImageDecoder decodes frames of a single image stream.
type ImageDecoder struct {
	core C.BLImageDecoderCore
}

func (d *ImageDecoder) impl() *C.BLImageDecoderImpl {
	return (*C.BLImageDecoderImpl)(unsafe.Pointer(d.core.impl))
}

// Restart rewinds the decoder to the beginning of the stream.
func (d *ImageDecoder) Restart() error {
	return resultToError(C.blImageDecoderRestart(&d.core))
}

// LastResult returns the result code of the last decoding operation.
func (d *ImageDecoder) LastResult() error {
	return resultToError(C.BLResult(d.impl().lastResult))
}

// FrameIndex returns the index of the next frame ReadFrame would decode.
func (d *ImageDecoder) FrameIndex() uint64 {
	return uint64(d.impl().frameIndex)
}

// ReadInfo reads the image header from data without decoding pixels.
func (d *ImageDecoder) ReadInfo(data []byte) (*ImageInfo, error) {
	if len(data) == 0 {
		return nil, ErrNoMoreData
	}
	info := &ImageInfo{}
	if err := resultToError(C.blImageDecoderReadInfo(
		&d.core,
		(*C.BLImageInfo)(unsafe.Pointer(info)),
		(*C.uint8_t)(unsafe.Pointer(&data[0])),
		C.size_t(len(data)),
	)); err != nil {
		return nil, err
	}
	return info, nil
}

// ReadFrame decodes the next frame from data.
func (d *ImageDecoder) ReadFrame(data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, ErrNoMoreData
	}
	img := &Image{}
	C.blImageInit(&img.core)
	if err := resultToError(C.blImageDecoderReadFrame(
		&d.core,
		&img.core,
		(*C.uint8_t)(unsafe.Pointer(&data[0])),
		C.size_t(len(data)),
	)); err != nil {
		img.Destroy()
		return nil, err
	}
	return img, nil
}

// Clone returns a weak clone of the decoder handle.
func (d *ImageDecoder) Clone() *ImageDecoder {
	clone := &ImageDecoder{}
	initWeak(unsafe.Pointer(&clone.core), unsafe.Pointer(&d.core))
	return clone
}

// Destroy releases the decoder handle. Destroy is idempotent.
func (d *ImageDecoder) Destroy() {
	C.blImageDecoderReset(&d.core)
}

// ImageEncoder encodes frames into a single image stream.
type ImageEncoder struct {
	core C.BLImageEncoderCore
}

func (e *ImageEncoder) impl() *C.BLImageEncoderImpl {
	return (*C.BLImageEncoderImpl)(unsafe.Pointer(e.core.impl))
}

// Restart rewinds the encoder to the beginning of the stream.
func (e *ImageEncoder) Restart() error {
	return resultToError(C.blImageEncoderRestart(&e.core))
}

// LastResult returns the result code of the last encoding operation.
func (e *ImageEncoder) LastResult() error {
	return resultToError(C.BLResult(e.impl().lastResult))
}

// FrameIndex returns the index of the next frame WriteFrame would encode.
func (e *ImageEncoder) FrameIndex() uint64 {
	return uint64(e.impl().frameIndex)
}

// WriteFrame encodes img, appending the result to dst.
func (e *ImageEncoder) WriteFrame(dst *ByteArray, img *Image) error {
	return resultToError(C.blImageEncoderWriteFrame(&e.core, &dst.core, &img.core))
}

// Clone returns a weak clone of the encoder handle.
func (e *ImageEncoder) Clone() *ImageEncoder {
	clone := &ImageEncoder{}
	initWeak(unsafe.Pointer(&clone.core), unsafe.Pointer(&e.core))
	return clone
}

// Destroy releases the encoder handle. Destroy is idempotent.
func (e *ImageEncoder) Destroy() {
	C.blImageEncoderReset(&e.core)
}
