package blend2d

/*
#include <stdlib.h>
#include <blend2d.h>
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// FontData holds the raw bytes of a font file or font collection.
type FontData struct {
	core C.BLFontDataCore
}

// NewFontDataFromFile reads font data from the file at the given path.
func NewFontDataFromFile(path string, readFlags DataAccessFlags) (*FontData, error) {
	d := &FontData{}
	C.blFontDataInit(&d.core)
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	if err := resultToError(C.blFontDataCreateFromFile(&d.core, cpath, C.uint32_t(readFlags))); err != nil {
		d.Destroy()
		return nil, fmt.Errorf("reading font data %q: %w", path, err)
	}
	return d, nil
}

// NewFontDataFromArray creates font data backed by a byte array. The array's
// storage is shared, not copied.
func NewFontDataFromArray(data *ByteArray) (*FontData, error) {
	d := &FontData{}
	C.blFontDataInit(&d.core)
	if err := resultToError(C.blFontDataCreateFromDataArray(&d.core, &data.core)); err != nil {
		d.Destroy()
		return nil, err
	}
	return d, nil
}

func (d *FontData) impl() *C.BLFontDataImpl {
	return (*C.BLFontDataImpl)(unsafe.Pointer(d.core.impl))
}

// CreateFontFace creates a font face from the face at faceIndex.
func (d *FontData) CreateFontFace(faceIndex uint32) (*FontFace, error) {
	return NewFontFaceFromData(d, faceIndex)
}

// FaceType returns the type of faces this data provides.
func (d *FontData) FaceType() FontFaceType {
	return FontFaceType(d.impl().faceType)
}

// FaceCount returns the number of faces in the data. A single font reports
// one; a collection reports the collection size.
func (d *FontData) FaceCount() uint32 {
	return uint32(d.impl().faceCount)
}

// Flags returns the font data flags.
func (d *FontData) Flags() FontDataFlags {
	return FontDataFlags(d.impl().flags)
}

// IsCollection reports whether the data holds a font collection.
func (d *FontData) IsCollection() bool {
	return d.Flags()&FontDataFlagCollection != 0
}

// ListTags stores the table tags of the face at faceIndex into a new byte
// array of Tag values.
func (d *FontData) ListTags(faceIndex uint32) ([]Tag, error) {
	var arr C.BLArrayCore
	C.blArrayInit(&arr, C.BL_IMPL_TYPE_ARRAY_U32)
	defer C.blArrayReset(&arr)
	if err := resultToError(C.blFontDataListTags(&d.core, C.uint32_t(faceIndex), &arr)); err != nil {
		return nil, err
	}
	n := int(C.blArrayGetSize(&arr))
	if n == 0 {
		return nil, nil
	}
	src := unsafe.Slice((*Tag)(C.blArrayGetData(&arr)), n)
	tags := make([]Tag, n)
	copy(tags, src)
	return tags, nil
}

// QueryTable returns the table identified by tag in the face at faceIndex.
// The returned table aliases the font data's memory.
func (d *FontData) QueryTable(faceIndex uint32, tag Tag) (FontTable, int) {
	return d.QueryTables(faceIndex, []Tag{tag})
}

// QueryTables returns the first table matching one of tags in the face at
// faceIndex, and the number of tables matched.
func (d *FontData) QueryTables(faceIndex uint32, tags []Tag) (FontTable, int) {
	var dst C.BLFontTable
	n := int(C.blFontDataQueryTables(
		&d.core,
		C.uint32_t(faceIndex),
		&dst,
		(*C.BLTag)(unsafe.Pointer(&tags[0])),
		C.size_t(len(tags)),
	))
	var table FontTable
	if dst.size > 0 {
		table.Data = unsafe.Slice((*byte)(unsafe.Pointer(dst.data)), int(dst.size))
	}
	return table, n
}

// Equals reports whether two font data handles share the same impl.
func (d *FontData) Equals(other *FontData) bool {
	return bool(C.blFontDataEquals(&d.core, &other.core))
}

// Clone returns a weak clone of the font data handle.
func (d *FontData) Clone() *FontData {
	clone := &FontData{}
	initWeak(unsafe.Pointer(&clone.core), unsafe.Pointer(&d.core))
	return clone
}

// Destroy releases the font data handle. Destroy is idempotent.
func (d *FontData) Destroy() {
	C.blFontDataReset(&d.core)
}
