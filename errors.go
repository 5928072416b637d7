package blend2d

/*
#include <blend2d.h>
*/
import "C"

import "fmt"

// ResultCode is a status code returned by the native library. The zero value
// means success; everything else is an error. ResultCode implements error so
// the codes double as sentinel values for errors.Is.
type ResultCode uint32

// Result codes mirroring BLResultCode.
const (
	ErrOutOfMemory               = ResultCode(C.BL_ERROR_OUT_OF_MEMORY)
	ErrInvalidValue              = ResultCode(C.BL_ERROR_INVALID_VALUE)
	ErrInvalidState              = ResultCode(C.BL_ERROR_INVALID_STATE)
	ErrInvalidHandle             = ResultCode(C.BL_ERROR_INVALID_HANDLE)
	ErrValueTooLarge             = ResultCode(C.BL_ERROR_VALUE_TOO_LARGE)
	ErrNotInitialized            = ResultCode(C.BL_ERROR_NOT_INITIALIZED)
	ErrNotImplemented            = ResultCode(C.BL_ERROR_NOT_IMPLEMENTED)
	ErrNotPermitted              = ResultCode(C.BL_ERROR_NOT_PERMITTED)
	ErrIO                        = ResultCode(C.BL_ERROR_IO)
	ErrBusy                      = ResultCode(C.BL_ERROR_BUSY)
	ErrInterrupted               = ResultCode(C.BL_ERROR_INTERRUPTED)
	ErrTryAgain                  = ResultCode(C.BL_ERROR_TRY_AGAIN)
	ErrBrokenPipe                = ResultCode(C.BL_ERROR_BROKEN_PIPE)
	ErrInvalidSeek               = ResultCode(C.BL_ERROR_INVALID_SEEK)
	ErrSymlinkLoop               = ResultCode(C.BL_ERROR_SYMLINK_LOOP)
	ErrFileTooLarge              = ResultCode(C.BL_ERROR_FILE_TOO_LARGE)
	ErrAlreadyExists             = ResultCode(C.BL_ERROR_ALREADY_EXISTS)
	ErrAccessDenied              = ResultCode(C.BL_ERROR_ACCESS_DENIED)
	ErrMediaChanged              = ResultCode(C.BL_ERROR_MEDIA_CHANGED)
	ErrReadOnlyFS                = ResultCode(C.BL_ERROR_READ_ONLY_FS)
	ErrNoDevice                  = ResultCode(C.BL_ERROR_NO_DEVICE)
	ErrNoEntry                   = ResultCode(C.BL_ERROR_NO_ENTRY)
	ErrNoMedia                   = ResultCode(C.BL_ERROR_NO_MEDIA)
	ErrNoMoreData                = ResultCode(C.BL_ERROR_NO_MORE_DATA)
	ErrNoMoreFiles               = ResultCode(C.BL_ERROR_NO_MORE_FILES)
	ErrNoSpaceLeft               = ResultCode(C.BL_ERROR_NO_SPACE_LEFT)
	ErrNotEmpty                  = ResultCode(C.BL_ERROR_NOT_EMPTY)
	ErrNotFile                   = ResultCode(C.BL_ERROR_NOT_FILE)
	ErrNotDirectory              = ResultCode(C.BL_ERROR_NOT_DIRECTORY)
	ErrNotSameDevice             = ResultCode(C.BL_ERROR_NOT_SAME_DEVICE)
	ErrNotBlockDevice            = ResultCode(C.BL_ERROR_NOT_BLOCK_DEVICE)
	ErrInvalidFileName           = ResultCode(C.BL_ERROR_INVALID_FILE_NAME)
	ErrFileNameTooLong           = ResultCode(C.BL_ERROR_FILE_NAME_TOO_LONG)
	ErrTooManyOpenFiles          = ResultCode(C.BL_ERROR_TOO_MANY_OPEN_FILES)
	ErrTooManyOpenFilesByOS      = ResultCode(C.BL_ERROR_TOO_MANY_OPEN_FILES_BY_OS)
	ErrTooManyLinks              = ResultCode(C.BL_ERROR_TOO_MANY_LINKS)
	ErrFileEmpty                 = ResultCode(C.BL_ERROR_FILE_EMPTY)
	ErrOpenFailed                = ResultCode(C.BL_ERROR_OPEN_FAILED)
	ErrNotRootDevice             = ResultCode(C.BL_ERROR_NOT_ROOT_DEVICE)
	ErrUnknownSystemError        = ResultCode(C.BL_ERROR_UNKNOWN_SYSTEM_ERROR)
	ErrInvalidSignature          = ResultCode(C.BL_ERROR_INVALID_SIGNATURE)
	ErrInvalidData               = ResultCode(C.BL_ERROR_INVALID_DATA)
	ErrInvalidString             = ResultCode(C.BL_ERROR_INVALID_STRING)
	ErrDataTruncated             = ResultCode(C.BL_ERROR_DATA_TRUNCATED)
	ErrDataTooLarge              = ResultCode(C.BL_ERROR_DATA_TOO_LARGE)
	ErrDecompressionFailed       = ResultCode(C.BL_ERROR_DECOMPRESSION_FAILED)
	ErrInvalidGeometry           = ResultCode(C.BL_ERROR_INVALID_GEOMETRY)
	ErrNoMatchingVertex          = ResultCode(C.BL_ERROR_NO_MATCHING_VERTEX)
	ErrNoMatchingCookie          = ResultCode(C.BL_ERROR_NO_MATCHING_COOKIE)
	ErrNoStatesToRestore         = ResultCode(C.BL_ERROR_NO_STATES_TO_RESTORE)
	ErrImageTooLarge             = ResultCode(C.BL_ERROR_IMAGE_TOO_LARGE)
	ErrImageNoMatchingCodec      = ResultCode(C.BL_ERROR_IMAGE_NO_MATCHING_CODEC)
	ErrImageUnknownFileFormat    = ResultCode(C.BL_ERROR_IMAGE_UNKNOWN_FILE_FORMAT)
	ErrImageDecoderNotProvided   = ResultCode(C.BL_ERROR_IMAGE_DECODER_NOT_PROVIDED)
	ErrImageEncoderNotProvided   = ResultCode(C.BL_ERROR_IMAGE_ENCODER_NOT_PROVIDED)
	ErrPNGMultipleIHDR           = ResultCode(C.BL_ERROR_PNG_MULTIPLE_IHDR)
	ErrPNGInvalidIDAT            = ResultCode(C.BL_ERROR_PNG_INVALID_IDAT)
	ErrPNGInvalidIEND            = ResultCode(C.BL_ERROR_PNG_INVALID_IEND)
	ErrPNGInvalidPLTE            = ResultCode(C.BL_ERROR_PNG_INVALID_PLTE)
	ErrPNGInvalidTRNS            = ResultCode(C.BL_ERROR_PNG_INVALID_TRNS)
	ErrPNGInvalidFilter          = ResultCode(C.BL_ERROR_PNG_INVALID_FILTER)
	ErrJPEGUnsupportedFeature    = ResultCode(C.BL_ERROR_JPEG_UNSUPPORTED_FEATURE)
	ErrJPEGInvalidSOS            = ResultCode(C.BL_ERROR_JPEG_INVALID_SOS)
	ErrJPEGInvalidSOF            = ResultCode(C.BL_ERROR_JPEG_INVALID_SOF)
	ErrJPEGMultipleSOF           = ResultCode(C.BL_ERROR_JPEG_MULTIPLE_SOF)
	ErrJPEGUnsupportedSOF        = ResultCode(C.BL_ERROR_JPEG_UNSUPPORTED_SOF)
	ErrFontNoCharacterMapping    = ResultCode(C.BL_ERROR_FONT_NO_CHARACTER_MAPPING)
	ErrFontMissingImportantTable = ResultCode(C.BL_ERROR_FONT_MISSING_IMPORTANT_TABLE)
	ErrFontFeatureNotAvailable   = ResultCode(C.BL_ERROR_FONT_FEATURE_NOT_AVAILABLE)
	ErrFontCFFInvalidData        = ResultCode(C.BL_ERROR_FONT_CFF_INVALID_DATA)
	ErrFontProgramTerminated     = ResultCode(C.BL_ERROR_FONT_PROGRAM_TERMINATED)
	ErrInvalidGlyph              = ResultCode(C.BL_ERROR_INVALID_GLYPH)
)

var resultNames = map[ResultCode]string{
	ErrOutOfMemory:               "out of memory",
	ErrInvalidValue:              "invalid value",
	ErrInvalidState:              "invalid state",
	ErrInvalidHandle:             "invalid handle",
	ErrValueTooLarge:             "value too large",
	ErrNotInitialized:            "not initialized",
	ErrNotImplemented:            "not implemented",
	ErrNotPermitted:              "not permitted",
	ErrIO:                        "I/O error",
	ErrBusy:                      "resource busy",
	ErrInterrupted:               "interrupted",
	ErrTryAgain:                  "try again",
	ErrBrokenPipe:                "broken pipe",
	ErrInvalidSeek:               "invalid seek",
	ErrSymlinkLoop:               "symlink loop",
	ErrFileTooLarge:              "file too large",
	ErrAlreadyExists:             "already exists",
	ErrAccessDenied:              "access denied",
	ErrMediaChanged:              "media changed",
	ErrReadOnlyFS:                "read-only filesystem",
	ErrNoDevice:                  "no device",
	ErrNoEntry:                   "no entry",
	ErrNoMedia:                   "no media",
	ErrNoMoreData:                "no more data",
	ErrNoMoreFiles:               "no more files",
	ErrNoSpaceLeft:               "no space left",
	ErrNotEmpty:                  "not empty",
	ErrNotFile:                   "not a file",
	ErrNotDirectory:              "not a directory",
	ErrNotSameDevice:             "not same device",
	ErrNotBlockDevice:            "not a block device",
	ErrInvalidFileName:           "invalid file name",
	ErrFileNameTooLong:           "file name too long",
	ErrTooManyOpenFiles:          "too many open files",
	ErrTooManyOpenFilesByOS:      "too many open files by OS",
	ErrTooManyLinks:              "too many links",
	ErrFileEmpty:                 "file empty",
	ErrOpenFailed:                "open failed",
	ErrNotRootDevice:             "not root device",
	ErrUnknownSystemError:        "unknown system error",
	ErrInvalidSignature:          "invalid signature",
	ErrInvalidData:               "invalid data",
	ErrInvalidString:             "invalid string",
	ErrDataTruncated:             "data truncated",
	ErrDataTooLarge:              "data too large",
	ErrDecompressionFailed:       "decompression failed",
	ErrInvalidGeometry:           "invalid geometry",
	ErrNoMatchingVertex:          "no matching vertex",
	ErrNoMatchingCookie:          "no matching cookie",
	ErrNoStatesToRestore:         "no states to restore",
	ErrImageTooLarge:             "image too large",
	ErrImageNoMatchingCodec:      "no matching image codec",
	ErrImageUnknownFileFormat:    "unknown image file format",
	ErrImageDecoderNotProvided:   "image decoder not provided",
	ErrImageEncoderNotProvided:   "image encoder not provided",
	ErrPNGMultipleIHDR:           "PNG: multiple IHDR",
	ErrPNGInvalidIDAT:            "PNG: invalid IDAT",
	ErrPNGInvalidIEND:            "PNG: invalid IEND",
	ErrPNGInvalidPLTE:            "PNG: invalid PLTE",
	ErrPNGInvalidTRNS:            "PNG: invalid tRNS",
	ErrPNGInvalidFilter:          "PNG: invalid filter",
	ErrJPEGUnsupportedFeature:    "JPEG: unsupported feature",
	ErrJPEGInvalidSOS:            "JPEG: invalid SOS",
	ErrJPEGInvalidSOF:            "JPEG: invalid SOF",
	ErrJPEGMultipleSOF:           "JPEG: multiple SOF",
	ErrJPEGUnsupportedSOF:        "JPEG: unsupported SOF",
	ErrFontNoCharacterMapping:    "font: no character mapping",
	ErrFontMissingImportantTable: "font: missing important table",
	ErrFontFeatureNotAvailable:   "font: feature not available",
	ErrFontCFFInvalidData:        "font: invalid CFF data",
	ErrFontProgramTerminated:     "font: program terminated",
	ErrInvalidGlyph:              "invalid glyph",
}

// Error implements the error interface.
func (rc ResultCode) Error() string {
	if name, ok := resultNames[rc]; ok {
		return "blend2d: " + name
	}
	return fmt.Sprintf("blend2d: unknown result code %d", uint32(rc))
}

// resultToError translates a native result code into a Go error. Success maps
// to nil; codes outside the known range collapse to ErrInvalidValue, matching
// the native library's treatment of garbage codes.
func resultToError(res C.BLResult) error {
	code := ResultCode(res)
	switch {
	case code == 0:
		return nil
	case code >= ErrOutOfMemory && code <= ErrInvalidGlyph:
		return code
	default:
		return ErrInvalidValue
	}
}

// mustOK panics if res signals failure. It guards entry points that cannot
// fail except on memory exhaustion, which the library treats as
// unrecoverable. Callers that want to recover use the Try* variants instead.
func mustOK(res C.BLResult) {
	if err := resultToError(res); err != nil {
		panic(err)
	}
}
