package blend2d

import (
	"errors"
	"testing"
)

func TestResultCodeError(t *testing.T) {
	tests := []struct {
		name string
		code ResultCode
		want string
	}{
		{"out of memory", ErrOutOfMemory, "blend2d: out of memory"},
		{"invalid value", ErrInvalidValue, "blend2d: invalid value"},
		{"no matching codec", ErrImageNoMatchingCodec, "blend2d: no matching image codec"},
		{"invalid glyph", ErrInvalidGlyph, "blend2d: invalid glyph"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.code.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResultCodeErrorUnknown(t *testing.T) {
	code := ResultCode(0xFFFF)
	if got := code.Error(); got == "" {
		t.Error("unknown code should still produce a message")
	}
}

func TestErrorsAs(t *testing.T) {
	img, err := NewImage(0, 0, FormatPRGB32)
	if err == nil {
		img.Destroy()
		t.Fatal("NewImage(0, 0) should fail")
	}
	var code ResultCode
	if !errors.As(err, &code) {
		t.Fatalf("error %v should wrap a ResultCode", err)
	}
	if code != ErrInvalidValue {
		t.Errorf("code = %v, want ErrInvalidValue", code)
	}
}

func TestErrorsIs(t *testing.T) {
	_, err := ReadImageFromData(nil, BuiltInCodecs())
	if !errors.Is(err, ErrNoMoreData) {
		t.Errorf("err = %v, want ErrNoMoreData", err)
	}
}

func TestMustOKPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("mustOK should panic on a failing result")
		}
	}()
	mustOK(0x10001) // BL_ERROR_OUT_OF_MEMORY
}

func TestMustOKSuccess(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("mustOK(0) panicked: %v", r)
		}
	}()
	mustOK(0)
}
