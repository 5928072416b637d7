package blend2d

import (
	"bytes"
	"errors"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/bmp"
)

func TestBuiltInCodecs(t *testing.T) {
	codecs := BuiltInCodecs()
	if codecs.Len() == 0 {
		t.Fatal("built-in codec list should not be empty")
	}

	names := make(map[string]bool)
	for i := 0; i < codecs.Len(); i++ {
		codec := codecs.At(i)
		names[codec.Name()] = true
		codec.Destroy()
	}
	for _, want := range []string{"BMP", "PNG", "JPEG"} {
		if !names[want] {
			t.Errorf("built-in codecs missing %q, have %v", want, names)
		}
	}
}

func TestFindByName(t *testing.T) {
	codec, err := BuiltInCodecs().FindByName("BMP")
	if err != nil {
		t.Fatalf("FindByName: %v", err)
	}
	defer codec.Destroy()

	if got := codec.Name(); got != "BMP" {
		t.Errorf("Name() = %q, want BMP", got)
	}
	if got := codec.MimeType(); got != "image/x-bmp" {
		t.Errorf("MimeType() = %q, want image/x-bmp", got)
	}
	if diff := cmp.Diff([]string{"bmp", "ras"}, codec.Extensions()); diff != "" {
		t.Errorf("Extensions() mismatch (-want +got):\n%s", diff)
	}
	features := codec.Features()
	if features&CodecFeatureRead == 0 || features&CodecFeatureWrite == 0 {
		t.Errorf("Features() = %v, want read and write", features)
	}
}

func TestFindByNameUnknown(t *testing.T) {
	codec, err := BuiltInCodecs().FindByName("NOPE")
	if err == nil {
		codec.Destroy()
		t.Fatal("FindByName of an unknown codec should fail")
	}
	if !errors.Is(err, ErrImageNoMatchingCodec) {
		t.Errorf("err = %v, want ErrImageNoMatchingCodec", err)
	}
}

func encodeTestImage(t *testing.T, w, h int, rgba32 uint32) []byte {
	t.Helper()
	img, err := NewImage(w, h, FormatPRGB32)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	defer img.Destroy()

	ctx, err := NewContext(img)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	if err := ctx.SetFillStyleRgba32(rgba32); err != nil {
		t.Fatalf("SetFillStyleRgba32: %v", err)
	}
	if err := ctx.FillAll(); err != nil {
		t.Fatalf("FillAll: %v", err)
	}
	ctx.End()

	codec, err := BuiltInCodecs().FindByName("BMP")
	if err != nil {
		t.Fatalf("FindByName: %v", err)
	}
	defer codec.Destroy()

	dst := NewByteArray()
	defer dst.Destroy()
	if err := img.WriteToData(dst, codec); err != nil {
		t.Fatalf("WriteToData: %v", err)
	}
	return dst.Bytes()
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	encoded := encodeTestImage(t, 8, 4, 0xFF102030)

	decoded, err := ReadImageFromData(encoded, BuiltInCodecs())
	if err != nil {
		t.Fatalf("ReadImageFromData: %v", err)
	}
	defer decoded.Destroy()

	if got := decoded.Size(); got != (SizeI{W: 8, H: 4}) {
		t.Errorf("decoded size = %+v, want {8 4}", got)
	}

	data := decoded.Data()
	// PRGB32 is BGRA in memory on little-endian.
	px := data.Data[:4]
	if px[0] != 0x30 || px[1] != 0x20 || px[2] != 0x10 || px[3] != 0xFF {
		t.Errorf("pixel = %v, want [48 32 16 255]", px)
	}
}

func TestEncodedBmpDecodesWithStdDecoder(t *testing.T) {
	encoded := encodeTestImage(t, 5, 3, 0xFF804020)

	decoded, err := bmp.Decode(bytes.NewReader(encoded))
	if err != nil {
		t.Fatalf("bmp.Decode: %v", err)
	}
	bounds := decoded.Bounds()
	if bounds.Dx() != 5 || bounds.Dy() != 3 {
		t.Fatalf("decoded bounds = %v, want 5x3", bounds)
	}

	got := color.NRGBAModel.Convert(decoded.At(0, 0)).(color.NRGBA)
	want := color.NRGBA{R: 0x80, G: 0x40, B: 0x20, A: 0xFF}
	if got != want {
		t.Errorf("decoded pixel = %+v, want %+v", got, want)
	}
}

func TestFindByData(t *testing.T) {
	encoded := encodeTestImage(t, 4, 4, 0xFFFFFFFF)

	codec, err := BuiltInCodecs().FindByData(encoded)
	if err != nil {
		t.Fatalf("FindByData: %v", err)
	}
	defer codec.Destroy()

	if got := codec.Name(); got != "BMP" {
		t.Errorf("Name() = %q, want BMP", got)
	}
	if score := codec.InspectData(encoded); score == 0 {
		t.Error("InspectData should recognize its own output")
	}
}

func TestFindByDataEmpty(t *testing.T) {
	if _, err := BuiltInCodecs().FindByData(nil); !errors.Is(err, ErrNoMoreData) {
		t.Errorf("err = %v, want ErrNoMoreData", err)
	}
}

func TestDecoder(t *testing.T) {
	encoded := encodeTestImage(t, 6, 6, 0xFF123456)

	codec, err := BuiltInCodecs().FindByName("BMP")
	if err != nil {
		t.Fatalf("FindByName: %v", err)
	}
	defer codec.Destroy()

	dec, err := codec.CreateDecoder()
	if err != nil {
		t.Fatalf("CreateDecoder: %v", err)
	}
	defer dec.Destroy()

	info, err := dec.ReadInfo(encoded)
	if err != nil {
		t.Fatalf("ReadInfo: %v", err)
	}
	if info.Size != (SizeI{W: 6, H: 6}) {
		t.Errorf("info.Size = %+v, want {6 6}", info.Size)
	}
	if got := info.FormatName(); got != "BMP" {
		t.Errorf("info.FormatName() = %q, want BMP", got)
	}

	img, err := dec.ReadFrame(encoded)
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	defer img.Destroy()
	if img.Size() != (SizeI{W: 6, H: 6}) {
		t.Errorf("frame size = %+v, want {6 6}", img.Size())
	}
	if dec.FrameIndex() != 1 {
		t.Errorf("FrameIndex() = %d, want 1", dec.FrameIndex())
	}

	if err := dec.Restart(); err != nil {
		t.Fatalf("Restart: %v", err)
	}
	if dec.FrameIndex() != 0 {
		t.Errorf("FrameIndex() after restart = %d, want 0", dec.FrameIndex())
	}
}

func TestEncoder(t *testing.T) {
	img, err := NewImage(4, 4, FormatPRGB32)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	defer img.Destroy()

	ctx, err := NewContext(img)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	if err := ctx.SetFillStyleRgba32(0xFF000000); err != nil {
		t.Fatalf("SetFillStyleRgba32: %v", err)
	}
	if err := ctx.FillAll(); err != nil {
		t.Fatalf("FillAll: %v", err)
	}
	ctx.End()

	codec, err := BuiltInCodecs().FindByName("BMP")
	if err != nil {
		t.Fatalf("FindByName: %v", err)
	}
	defer codec.Destroy()

	enc, err := codec.CreateEncoder()
	if err != nil {
		t.Fatalf("CreateEncoder: %v", err)
	}
	defer enc.Destroy()

	dst := NewByteArray()
	defer dst.Destroy()
	if err := enc.WriteFrame(dst, img); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	if dst.Len() == 0 {
		t.Error("encoder should produce output")
	}
	if enc.FrameIndex() != 1 {
		t.Errorf("FrameIndex() = %d, want 1", enc.FrameIndex())
	}
	if err := enc.LastResult(); err != nil {
		t.Errorf("LastResult() = %v, want nil", err)
	}
}
