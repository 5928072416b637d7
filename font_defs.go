package blend2d

/*
#include <blend2d.h>
*/
import "C"

// Tag is a 32-bit OpenType tag such as 'cmap' or 'GPOS'.
type Tag uint32

// MakeTag builds a tag from four ASCII bytes.
func MakeTag(a, b, c, d byte) Tag {
	return Tag(a)<<24 | Tag(b)<<16 | Tag(c)<<8 | Tag(d)
}

// DataAccessFlags describe how file-backed data may be accessed.
type DataAccessFlags uint32

const (
	DataAccessRead  = DataAccessFlags(C.BL_DATA_ACCESS_READ)
	DataAccessWrite = DataAccessFlags(C.BL_DATA_ACCESS_WRITE)
	DataAccessRW    = DataAccessFlags(C.BL_DATA_ACCESS_RW)
)

// FontFaceType is the type of a font face.
type FontFaceType uint8

const (
	FontFaceTypeNone     = FontFaceType(C.BL_FONT_FACE_TYPE_NONE)
	FontFaceTypeOpenType = FontFaceType(C.BL_FONT_FACE_TYPE_OPENTYPE)
)

// FontOutlineType is the outline format of a font face.
type FontOutlineType uint8

const (
	FontOutlineNone     = FontOutlineType(C.BL_FONT_OUTLINE_TYPE_NONE)
	FontOutlineTrueType = FontOutlineType(C.BL_FONT_OUTLINE_TYPE_TRUETYPE)
	FontOutlineCFF      = FontOutlineType(C.BL_FONT_OUTLINE_TYPE_CFF)
	FontOutlineCFF2     = FontOutlineType(C.BL_FONT_OUTLINE_TYPE_CFF2)
)

// FontFaceFlags describe features provided by a font face.
type FontFaceFlags uint32

const (
	FontFaceFlagTypographicNames   = FontFaceFlags(C.BL_FONT_FACE_FLAG_TYPOGRAPHIC_NAMES)
	FontFaceFlagTypographicMetrics = FontFaceFlags(C.BL_FONT_FACE_FLAG_TYPOGRAPHIC_METRICS)
	FontFaceFlagCharToGlyphMapping = FontFaceFlags(C.BL_FONT_FACE_FLAG_CHAR_TO_GLYPH_MAPPING)
	FontFaceFlagHorizontalMetrics  = FontFaceFlags(C.BL_FONT_FACE_FLAG_HORIZONTAL_METIRCS)
	FontFaceFlagVerticalMetrics    = FontFaceFlags(C.BL_FONT_FACE_FLAG_VERTICAL_METRICS)
	FontFaceFlagHorizontalKerning  = FontFaceFlags(C.BL_FONT_FACE_FLAG_HORIZONTAL_KERNING)
	FontFaceFlagVerticalKerning    = FontFaceFlags(C.BL_FONT_FACE_FLAG_VERTICAL_KERNING)
	FontFaceFlagOpenTypeFeatures   = FontFaceFlags(C.BL_FONT_FACE_FLAG_OPENTYPE_FEATURES)
	FontFaceFlagOpenTypeVariations = FontFaceFlags(C.BL_FONT_FACE_FLAG_OPENTYPE_VARIATIONS)
	FontFaceFlagPanoseData         = FontFaceFlags(C.BL_FONT_FACE_FLAG_PANOSE_DATA)
	FontFaceFlagUnicodeCoverage    = FontFaceFlags(C.BL_FONT_FACE_FLAG_UNICODE_COVERAGE)
	FontFaceFlagVariationSequences = FontFaceFlags(C.BL_FONT_FACE_FLAG_VARIATION_SEQUENCES)
	FontFaceFlagSymbolFont         = FontFaceFlags(C.BL_FONT_FACE_FLAG_SYMBOL_FONT)
	FontFaceFlagLastResortFont     = FontFaceFlags(C.BL_FONT_FACE_FLAG_LAST_RESORT_FONT)
)

// FontFaceDiagFlags describe problems found and fixed while loading a face.
type FontFaceDiagFlags uint32

const (
	FontFaceDiagWrongNameData   = FontFaceDiagFlags(C.BL_FONT_FACE_DIAG_WRONG_NAME_DATA)
	FontFaceDiagFixedNameData   = FontFaceDiagFlags(C.BL_FONT_FACE_DIAG_FIXED_NAME_DATA)
	FontFaceDiagWrongKernData   = FontFaceDiagFlags(C.BL_FONT_FACE_DIAG_WRONG_KERN_DATA)
	FontFaceDiagFixedKernData   = FontFaceDiagFlags(C.BL_FONT_FACE_DIAG_FIXED_KERN_DATA)
	FontFaceDiagWrongCmapData   = FontFaceDiagFlags(C.BL_FONT_FACE_DIAG_WRONG_CMAP_DATA)
	FontFaceDiagWrongCmapFormat = FontFaceDiagFlags(C.BL_FONT_FACE_DIAG_WRONG_CMAP_FORMAT)
)

// FontDataFlags describe the content of font data.
type FontDataFlags uint32

const (
	// FontDataFlagCollection marks font data holding a TrueType or OpenType
	// collection.
	FontDataFlagCollection = FontDataFlags(C.BL_FONT_DATA_FLAG_COLLECTION)
)

// FontStretch is a font width class.
type FontStretch uint32

const (
	FontStretchUltraCondensed = FontStretch(C.BL_FONT_STRETCH_ULTRA_CONDENSED)
	FontStretchExtraCondensed = FontStretch(C.BL_FONT_STRETCH_EXTRA_CONDENSED)
	FontStretchCondensed      = FontStretch(C.BL_FONT_STRETCH_CONDENSED)
	FontStretchSemiCondensed  = FontStretch(C.BL_FONT_STRETCH_SEMI_CONDENSED)
	FontStretchNormal         = FontStretch(C.BL_FONT_STRETCH_NORMAL)
	FontStretchSemiExpanded   = FontStretch(C.BL_FONT_STRETCH_SEMI_EXPANDED)
	FontStretchExpanded       = FontStretch(C.BL_FONT_STRETCH_EXPANDED)
	FontStretchExtraExpanded  = FontStretch(C.BL_FONT_STRETCH_EXTRA_EXPANDED)
	FontStretchUltraExpanded  = FontStretch(C.BL_FONT_STRETCH_ULTRA_EXPANDED)
)

// FontStyle is a font slant class.
type FontStyle uint32

const (
	FontStyleNormal  = FontStyle(C.BL_FONT_STYLE_NORMAL)
	FontStyleOblique = FontStyle(C.BL_FONT_STYLE_OBLIQUE)
	FontStyleItalic  = FontStyle(C.BL_FONT_STYLE_ITALIC)
)

// FontWeight is a font weight class.
type FontWeight uint32

const (
	FontWeightThin       = FontWeight(C.BL_FONT_WEIGHT_THIN)
	FontWeightExtraLight = FontWeight(C.BL_FONT_WEIGHT_EXTRA_LIGHT)
	FontWeightLight      = FontWeight(C.BL_FONT_WEIGHT_LIGHT)
	FontWeightSemiLight  = FontWeight(C.BL_FONT_WEIGHT_SEMI_LIGHT)
	FontWeightNormal     = FontWeight(C.BL_FONT_WEIGHT_NORMAL)
	FontWeightMedium     = FontWeight(C.BL_FONT_WEIGHT_MEDIUM)
	FontWeightSemiBold   = FontWeight(C.BL_FONT_WEIGHT_SEMI_BOLD)
	FontWeightBold       = FontWeight(C.BL_FONT_WEIGHT_BOLD)
	FontWeightExtraBold  = FontWeight(C.BL_FONT_WEIGHT_EXTRA_BOLD)
	FontWeightBlack      = FontWeight(C.BL_FONT_WEIGHT_BLACK)
)

// GlyphRunFlags describe the state of a glyph buffer after processing.
type GlyphRunFlags uint32

const (
	// GlyphRunUCS4Content means the run still holds unicode codepoints
	// instead of glyph ids.
	GlyphRunUCS4Content = GlyphRunFlags(C.BL_GLYPH_RUN_FLAG_UCS4_CONTENT)
	// GlyphRunInvalidText means the text had encoding errors.
	GlyphRunInvalidText = GlyphRunFlags(C.BL_GLYPH_RUN_FLAG_INVALID_TEXT)
	// GlyphRunUndefinedGlyphs means some characters had no glyph in the font.
	GlyphRunUndefinedGlyphs = GlyphRunFlags(C.BL_GLYPH_RUN_FLAG_UNDEFINED_GLYPHS)
	// GlyphRunInvalidFontData means processing stopped on invalid font data.
	GlyphRunInvalidFontData = GlyphRunFlags(C.BL_GLYPH_RUN_FLAG_INVALID_FONT_DATA)
)

// FontFaceInfo summarizes a font face. Its layout matches the native
// BLFontFaceInfo.
type FontFaceInfo struct {
	FaceType    FontFaceType
	OutlineType FontOutlineType
	_           [2]uint8
	GlyphCount  uint32
	FaceIndex   uint32
	FaceFlags   FontFaceFlags
	DiagFlags   FontFaceDiagFlags
}

// FontMatrix is a 2x2 matrix scaling font design units into user units. The
// y factor is usually negative as fonts grow upwards.
type FontMatrix [4]float32

// FontMetrics are font face metrics scaled to a font's size. Its layout
// matches the native BLFontMetrics.
type FontMetrics struct {
	Size                   float32
	HorizontalAscent       float32
	VerticalAscent         float32
	HorizontalDescent      float32
	VerticalDescent        float32
	LineGap                float32
	XHeight                float32
	CapHeight              float32
	UnderlinePosition      float32
	UnderlineThickness     float32
	StrikethroughPosition  float32
	StrikethroughThickness float32
}

// FontDesignMetrics are font face metrics in design units. Its layout
// matches the native BLFontDesignMetrics.
type FontDesignMetrics struct {
	UnitsPerEm             int32
	LineGap                int32
	XHeight                int32
	CapHeight              int32
	HorizontalAscent       int32
	VerticalAscent         int32
	HorizontalDescent      int32
	VerticalDescent        int32
	HorizontalMinLSB       int32
	VerticalMinLSB         int32
	HorizontalMinTSB       int32
	VerticalMinTSB         int32
	HorizontalMaxAdvance   int32
	VerticalMaxAdvance     int32
	UnderlinePosition      int32
	UnderlineThickness     int32
	StrikethroughPosition  int32
	StrikethroughThickness int32
}

// TextMetrics measure a shaped glyph run. Its layout matches the native
// BLTextMetrics.
type TextMetrics struct {
	Advance     Point
	BoundingBox Box
}

// GlyphMappingState reports the outcome of mapping text to glyphs. Its
// layout matches the native BLGlyphMappingState.
type GlyphMappingState struct {
	// GlyphCount is the number of glyphs in the run.
	GlyphCount uint
	// UndefinedFirst is the index of the first character without a glyph, or
	// ^uint(0) if all characters mapped.
	UndefinedFirst uint
	// UndefinedCount is the number of characters without a glyph.
	UndefinedCount uint
}

// HasUndefined reports whether any character had no glyph in the font.
func (s *GlyphMappingState) HasUndefined() bool {
	return s.UndefinedCount != 0
}

// FontFeature is an OpenType feature tag with its value.
type FontFeature struct {
	Tag   Tag
	Value uint32
}

// FontVariation is an OpenType variation tag with its value.
type FontVariation struct {
	Tag   Tag
	Value float32
}

// FontUnicodeCoverage is a 128-bit unicode coverage bitset.
type FontUnicodeCoverage struct {
	Data [4]uint32
}

// FontTable points at a single table inside font data. The Data slice
// aliases the font data's memory.
type FontTable struct {
	Data []byte
}
