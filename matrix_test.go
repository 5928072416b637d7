package blend2d

import (
	"math"
	"testing"
)

const matrixEpsilon = 1e-12

func matrixNear(a, b Matrix2D) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > matrixEpsilon {
			return false
		}
	}
	return true
}

func TestMatrixConstructors(t *testing.T) {
	tests := []struct {
		name string
		got  Matrix2D
		want Matrix2D
	}{
		{"identity", IdentityMatrix(), Matrix2D{1, 0, 0, 1, 0, 0}},
		{"translation", TranslationMatrix(10, 20), Matrix2D{1, 0, 0, 1, 10, 20}},
		{"scaling", ScalingMatrix(2, 3), Matrix2D{2, 0, 0, 3, 0, 0}},
		{"sin cos", SinCosMatrix(0, 1, 5, 6), Matrix2D{1, 0, 0, 1, 5, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !matrixNear(tt.got, tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestMatrixRotation(t *testing.T) {
	m := RotationMatrix(math.Pi/2, 0, 0)
	want := Matrix2D{0, 1, -1, 0, 0, 0}
	if !matrixNear(m, want) {
		t.Errorf("RotationMatrix(pi/2) = %v, want %v", m, want)
	}
}

func TestMatrixTranslateThenScale(t *testing.T) {
	m := IdentityMatrix()
	m.Translate(10, 20)
	m.Scale(2, 2)
	want := Matrix2D{2, 0, 0, 2, 10, 20}
	if !matrixNear(m, want) {
		t.Errorf("after translate+scale = %v, want %v", m, want)
	}
}

func TestMatrixPostTranslate(t *testing.T) {
	m := ScalingMatrix(2, 2)
	m.PostTranslate(10, 20)
	want := Matrix2D{2, 0, 0, 2, 10, 20}
	if !matrixNear(m, want) {
		t.Errorf("after post translate = %v, want %v", m, want)
	}
}

func TestMatrixInvert(t *testing.T) {
	src := TranslationMatrix(10, 20)
	src.Scale(2, 4)

	var inv Matrix2D
	if err := inv.Invert(&src); err != nil {
		t.Fatalf("Invert: %v", err)
	}

	var product Matrix2D = src
	product.Transform(&inv)
	if !matrixNear(product, IdentityMatrix()) {
		t.Errorf("src * inv = %v, want identity", product)
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	singular := Matrix2D{0, 0, 0, 0, 0, 0}
	var inv Matrix2D
	if err := inv.Invert(&singular); err == nil {
		t.Error("inverting a singular matrix should fail")
	}
}

func TestMatrixReset(t *testing.T) {
	m := ScalingMatrix(5, 5)
	m.Reset()
	if !matrixNear(m, IdentityMatrix()) {
		t.Errorf("Reset = %v, want identity", m)
	}
}

func TestMatrixPreVsPostOrder(t *testing.T) {
	base := TranslationMatrix(10, 20)
	tests := []struct {
		name string
		op   Matrix2D
		pre  func(m *Matrix2D)
		post func(m *Matrix2D)
	}{
		{
			"scale",
			ScalingMatrix(2, 3),
			func(m *Matrix2D) { m.Scale(2, 3) },
			func(m *Matrix2D) { m.PostScale(2, 3) },
		},
		{
			"skew",
			SkewingMatrix(0.25, 0.5),
			func(m *Matrix2D) { m.Skew(0.25, 0.5) },
			func(m *Matrix2D) { m.PostSkew(0.25, 0.5) },
		},
		{
			"rotate around",
			RotationMatrix(math.Pi/3, 4, 5),
			func(m *Matrix2D) { m.RotateAround(math.Pi/3, 4, 5) },
			func(m *Matrix2D) { m.PostRotateAround(math.Pi/3, 4, 5) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotPre := base
			tt.pre(&gotPre)
			wantPre := base
			wantPre.Transform(&tt.op)
			if !matrixNear(gotPre, wantPre) {
				t.Errorf("pre variant = %v, want %v", gotPre, wantPre)
			}

			gotPost := base
			tt.post(&gotPost)
			wantPost := base
			wantPost.PostTransform(&tt.op)
			if !matrixNear(gotPost, wantPost) {
				t.Errorf("post variant = %v, want %v", gotPost, wantPost)
			}

			if matrixNear(gotPre, gotPost) {
				t.Errorf("pre and post variants both = %v, want different order", gotPre)
			}
		})
	}
}
