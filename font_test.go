package blend2d

import (
	"testing"
	"unsafe"

	"golang.org/x/image/font/gofont/goregular"
)

func loadTestFace(t *testing.T) *FontFace {
	t.Helper()
	arr := NewByteArray()
	t.Cleanup(arr.Destroy)
	if err := arr.Append(goregular.TTF); err != nil {
		t.Fatalf("Append: %v", err)
	}
	data, err := NewFontDataFromArray(arr)
	if err != nil {
		t.Fatalf("NewFontDataFromArray: %v", err)
	}
	t.Cleanup(data.Destroy)

	face, err := data.CreateFontFace(0)
	if err != nil {
		t.Fatalf("CreateFontFace: %v", err)
	}
	t.Cleanup(face.Destroy)
	return face
}

func TestFontDataFromArray(t *testing.T) {
	arr := NewByteArray()
	defer arr.Destroy()
	if err := arr.Append(goregular.TTF); err != nil {
		t.Fatalf("Append: %v", err)
	}

	data, err := NewFontDataFromArray(arr)
	if err != nil {
		t.Fatalf("NewFontDataFromArray: %v", err)
	}
	defer data.Destroy()

	if got := data.FaceType(); got != FontFaceTypeOpenType {
		t.Errorf("FaceType() = %v, want opentype", got)
	}
	if got := data.FaceCount(); got != 1 {
		t.Errorf("FaceCount() = %d, want 1", got)
	}
	if data.IsCollection() {
		t.Error("a single font should not report a collection")
	}
}

func TestFontDataTags(t *testing.T) {
	face := loadTestFace(t)
	data := face.Data()
	defer data.Destroy()

	tags, err := data.ListTags(0)
	if err != nil {
		t.Fatalf("ListTags: %v", err)
	}
	has := make(map[Tag]bool, len(tags))
	for _, tag := range tags {
		has[tag] = true
	}
	for _, name := range []string{"cmap", "glyf", "head"} {
		tag := MakeTag(name[0], name[1], name[2], name[3])
		if !has[tag] {
			t.Errorf("ListTags missing %q", name)
		}
	}

	table, n := data.QueryTable(0, MakeTag('h', 'e', 'a', 'd'))
	if n != 1 {
		t.Fatalf("QueryTable matched %d tables, want 1", n)
	}
	if len(table.Data) == 0 {
		t.Error("head table should not be empty")
	}
}

func TestFontFaceProperties(t *testing.T) {
	face := loadTestFace(t)

	if got := face.FaceType(); got != FontFaceTypeOpenType {
		t.Errorf("FaceType() = %v, want opentype", got)
	}
	if got := face.OutlineType(); got != FontOutlineTrueType {
		t.Errorf("OutlineType() = %v, want truetype", got)
	}
	if face.GlyphCount() == 0 {
		t.Error("GlyphCount() should be positive")
	}
	if face.FaceIndex() != 0 {
		t.Errorf("FaceIndex() = %d, want 0", face.FaceIndex())
	}
	if !face.HasCharToGlyphMapping() {
		t.Error("face should map characters to glyphs")
	}
	if got := face.FamilyName(); got != "Go" {
		t.Errorf("FamilyName() = %q, want Go", got)
	}
	if got := face.SubfamilyName(); got != "Regular" {
		t.Errorf("SubfamilyName() = %q, want Regular", got)
	}
	if got := face.Weight(); got != FontWeightNormal {
		t.Errorf("Weight() = %v, want normal", got)
	}
	if got := face.Style(); got != FontStyleNormal {
		t.Errorf("Style() = %v, want normal", got)
	}
	if got := face.UnitsPerEm(); got != 2048 {
		t.Errorf("UnitsPerEm() = %d, want 2048", got)
	}
}

func TestFontFaceDesignMetrics(t *testing.T) {
	face := loadTestFace(t)
	dm := face.DesignMetrics()

	if dm.UnitsPerEm != 2048 {
		t.Errorf("UnitsPerEm = %d, want 2048", dm.UnitsPerEm)
	}
	if dm.HorizontalAscent <= 0 {
		t.Errorf("HorizontalAscent = %d, want positive", dm.HorizontalAscent)
	}
	if dm.HorizontalMaxAdvance <= 0 {
		t.Errorf("HorizontalMaxAdvance = %d, want positive", dm.HorizontalMaxAdvance)
	}
}

func TestNewFontFromFace(t *testing.T) {
	face := loadTestFace(t)

	font, err := face.CreateFont(20)
	if err != nil {
		t.Fatalf("CreateFont: %v", err)
	}
	defer font.Destroy()

	if got := font.Size(); got != 20 {
		t.Errorf("Size() = %g, want 20", got)
	}
	if got := font.UnitsPerEm(); got != 2048 {
		t.Errorf("UnitsPerEm() = %d, want 2048", got)
	}

	metrics := font.Metrics()
	if metrics.Size != 20 {
		t.Errorf("Metrics().Size = %g, want 20", metrics.Size)
	}
	if metrics.HorizontalAscent <= 0 {
		t.Errorf("HorizontalAscent = %g, want positive", metrics.HorizontalAscent)
	}

	m := font.Matrix()
	if m[0] <= 0 {
		t.Errorf("Matrix()[0] = %g, want positive", m[0])
	}
	// Fonts grow upwards.
	if m[3] >= 0 {
		t.Errorf("Matrix()[3] = %g, want negative", m[3])
	}

	shared := font.Face()
	defer shared.Destroy()
	if !shared.Equals(face) {
		t.Error("Face() should return the face the font was created from")
	}
}

func TestFontShape(t *testing.T) {
	face := loadTestFace(t)
	font, err := face.CreateFont(16)
	if err != nil {
		t.Fatalf("CreateFont: %v", err)
	}
	defer font.Destroy()

	buf := NewGlyphBufferFromText("Hello")
	defer buf.Destroy()

	if !buf.HasText() {
		t.Fatal("buffer should hold text before shaping")
	}
	if buf.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", buf.Len())
	}

	if err := font.Shape(buf); err != nil {
		t.Fatalf("Shape: %v", err)
	}
	if !buf.HasGlyphs() {
		t.Error("buffer should hold glyphs after shaping")
	}
	if buf.HasUndefinedChars() {
		t.Error("all characters should have glyphs")
	}

	metrics, err := font.TextMetrics(buf)
	if err != nil {
		t.Fatalf("TextMetrics: %v", err)
	}
	if metrics.Advance.X <= 0 {
		t.Errorf("Advance.X = %g, want positive", metrics.Advance.X)
	}
	if metrics.BoundingBox.X1 <= metrics.BoundingBox.X0 {
		t.Errorf("BoundingBox = %+v, want non-empty", metrics.BoundingBox)
	}
}

func TestFontMapTextToGlyphs(t *testing.T) {
	face := loadTestFace(t)
	font, err := face.CreateFont(16)
	if err != nil {
		t.Fatalf("CreateFont: %v", err)
	}
	defer font.Destroy()

	buf := NewGlyphBufferFromText("abc")
	defer buf.Destroy()

	state, err := font.MapTextToGlyphs(buf)
	if err != nil {
		t.Fatalf("MapTextToGlyphs: %v", err)
	}
	if state.GlyphCount != 3 {
		t.Errorf("GlyphCount = %d, want 3", state.GlyphCount)
	}
	if state.HasUndefined() {
		t.Errorf("unexpected undefined characters: %+v", state)
	}
}

func TestFontMapUndefinedGlyphs(t *testing.T) {
	face := loadTestFace(t)
	font, err := face.CreateFont(16)
	if err != nil {
		t.Fatalf("CreateFont: %v", err)
	}
	defer font.Destroy()

	// Go Regular has no CJK coverage.
	buf := NewGlyphBufferFromText("a世b")
	defer buf.Destroy()

	state, err := font.MapTextToGlyphs(buf)
	if err != nil {
		t.Fatalf("MapTextToGlyphs: %v", err)
	}
	if !state.HasUndefined() {
		t.Fatal("mapping should report undefined characters")
	}
	if state.UndefinedFirst != 1 {
		t.Errorf("UndefinedFirst = %d, want 1", state.UndefinedFirst)
	}
	if state.UndefinedCount != 1 {
		t.Errorf("UndefinedCount = %d, want 1", state.UndefinedCount)
	}
}

func TestFillText(t *testing.T) {
	face := loadTestFace(t)
	font, err := face.CreateFont(32)
	if err != nil {
		t.Fatalf("CreateFont: %v", err)
	}
	defer font.Destroy()

	img, ctx := newTestCanvas(t, 64, 48)
	defer img.Destroy()

	if err := ctx.SetFillStyleRgba32(0xFFFFFFFF); err != nil {
		t.Fatalf("SetFillStyleRgba32: %v", err)
	}
	if err := ctx.FillText(Point{X: 4, Y: 40}, font, "Hi"); err != nil {
		t.Fatalf("FillText: %v", err)
	}
	ctx.End()

	// At least one pixel of the glyphs must be lit.
	if !hasLitPixel(img) {
		t.Error("FillText should touch the target image")
	}
}

// hasLitPixel reports whether any color channel of a PRGB32 image is nonzero,
// ignoring alpha.
func hasLitPixel(img *Image) bool {
	data := img.Data()
	for off := 0; off+3 < len(data.Data); off += 4 {
		if data.Data[off] != 0 || data.Data[off+1] != 0 || data.Data[off+2] != 0 {
			return true
		}
	}
	return false
}

func TestFillGlyphRun(t *testing.T) {
	face := loadTestFace(t)
	font, err := face.CreateFont(32)
	if err != nil {
		t.Fatalf("CreateFont: %v", err)
	}
	defer font.Destroy()

	buf := NewGlyphBufferFromText("Hi")
	defer buf.Destroy()
	if err := font.Shape(buf); err != nil {
		t.Fatalf("Shape: %v", err)
	}

	img, ctx := newTestCanvas(t, 64, 48)
	defer img.Destroy()
	if err := ctx.SetFillStyleRgba32(0xFFFFFFFF); err != nil {
		t.Fatalf("SetFillStyleRgba32: %v", err)
	}
	if err := ctx.FillGlyphRun(Point{X: 4, Y: 40}, font, buf.GlyphRun()); err != nil {
		t.Fatalf("FillGlyphRun: %v", err)
	}
	ctx.End()

	if !hasLitPixel(img) {
		t.Error("FillGlyphRun should touch the target image")
	}
}

func TestFontClone(t *testing.T) {
	face := loadTestFace(t)
	font, err := face.CreateFont(12)
	if err != nil {
		t.Fatalf("CreateFont: %v", err)
	}
	defer font.Destroy()

	clone := font.Clone()
	defer clone.Destroy()
	if implOf(unsafe.Pointer(&clone.core)) != implOf(unsafe.Pointer(&font.core)) {
		t.Error("font clone should share the impl")
	}
	if !font.Equals(clone) {
		t.Error("font should equal its clone")
	}
}

func TestGlyphBufferClear(t *testing.T) {
	buf := NewGlyphBufferFromText("abc")
	defer buf.Destroy()

	buf.Clear()
	if buf.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", buf.Len())
	}

	buf.SetText("xy")
	if buf.Len() != 2 {
		t.Errorf("Len() = %d, want 2", buf.Len())
	}
	buf.SetText("")
	if buf.Len() != 0 {
		t.Errorf("Len() after empty SetText = %d, want 0", buf.Len())
	}
}

func TestFontManagerClone(t *testing.T) {
	mgr := NewFontManager()
	defer mgr.Destroy()

	clone := mgr.Clone()
	defer clone.Destroy()
	if implOf(unsafe.Pointer(&clone.core)) != implOf(unsafe.Pointer(&mgr.core)) {
		t.Error("manager clone should share the impl")
	}
	if !mgr.Equals(clone) {
		t.Error("manager should equal its clone")
	}

	mgr.Destroy()
	mgr.Destroy()
}
