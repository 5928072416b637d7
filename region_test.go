package blend2d

import (
	"testing"
	"unsafe"
)

func TestRegionTypeTransitions(t *testing.T) {
	r := NewRegion()
	defer r.Destroy()

	if !r.IsEmpty() || r.Type() != RegionEmpty {
		t.Fatal("new region should be empty")
	}

	if err := r.CombineBox(BoxI{X0: 0, Y0: 0, X1: 10, Y1: 10}, BooleanOpOr); err != nil {
		t.Fatalf("CombineBox: %v", err)
	}
	if !r.IsRect() || r.Len() != 1 {
		t.Errorf("region after one box: type %v len %d, want rect 1", r.Type(), r.Len())
	}

	// A disjoint box makes the region complex.
	if err := r.CombineBox(BoxI{X0: 20, Y0: 20, X1: 30, Y1: 30}, BooleanOpOr); err != nil {
		t.Fatalf("CombineBox: %v", err)
	}
	if !r.IsComplex() || r.Len() != 2 {
		t.Errorf("region after disjoint box: type %v len %d, want complex 2", r.Type(), r.Len())
	}

	if err := r.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if !r.IsEmpty() {
		t.Error("region should be empty after Clear")
	}
}

func TestRegionCombine(t *testing.T) {
	tests := []struct {
		name    string
		op      BooleanOp
		want    BoxI
		wantLen int
	}{
		{"and", BooleanOpAnd, BoxI{X0: 5, Y0: 5, X1: 10, Y1: 10}, 1},
		{"or", BooleanOpOr, BoxI{X0: 0, Y0: 0, X1: 15, Y1: 15}, 3},
		{"sub", BooleanOpSub, BoxI{X0: 0, Y0: 0, X1: 10, Y1: 10}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegion()
			defer r.Destroy()
			if err := r.CombineBoxes(
				BoxI{X0: 0, Y0: 0, X1: 10, Y1: 10},
				BoxI{X0: 5, Y0: 5, X1: 15, Y1: 15},
				tt.op,
			); err != nil {
				t.Fatalf("CombineBoxes: %v", err)
			}
			if got := r.BoundingBox(); got != tt.want {
				t.Errorf("BoundingBox = %+v, want %+v", got, tt.want)
			}
			if got := r.Len(); got != tt.wantLen {
				t.Errorf("Len() = %d, want %d", got, tt.wantLen)
			}
		})
	}
}

func TestRegionCombineRegions(t *testing.T) {
	a := NewRegion()
	defer a.Destroy()
	if err := a.CombineBox(BoxI{X0: 0, Y0: 0, X1: 10, Y1: 10}, BooleanOpOr); err != nil {
		t.Fatalf("CombineBox: %v", err)
	}

	b := NewRegion()
	defer b.Destroy()
	if err := b.CombineBox(BoxI{X0: 5, Y0: 0, X1: 15, Y1: 10}, BooleanOpOr); err != nil {
		t.Fatalf("CombineBox: %v", err)
	}

	if err := a.Combine(b, BooleanOpOr); err != nil {
		t.Fatalf("Combine: %v", err)
	}
	if got := a.BoundingBox(); got != (BoxI{X0: 0, Y0: 0, X1: 15, Y1: 10}) {
		t.Errorf("BoundingBox = %+v", got)
	}
	// Adjacent boxes on the same band coalesce.
	if !a.IsRect() {
		t.Errorf("type = %v, want rect", a.Type())
	}
}

func TestRegionHitTest(t *testing.T) {
	r := NewRegion()
	defer r.Destroy()
	if err := r.CombineBox(BoxI{X0: 0, Y0: 0, X1: 10, Y1: 10}, BooleanOpOr); err != nil {
		t.Fatalf("CombineBox: %v", err)
	}

	if got := r.HitTest(PointI{X: 5, Y: 5}); got != HitIn {
		t.Errorf("HitTest inside = %v, want HitIn", got)
	}
	if got := r.HitTest(PointI{X: 15, Y: 5}); got != HitOut {
		t.Errorf("HitTest outside = %v, want HitOut", got)
	}

	if got := r.HitTestBox(BoxI{X0: 2, Y0: 2, X1: 8, Y1: 8}); got != HitIn {
		t.Errorf("HitTestBox contained = %v, want HitIn", got)
	}
	if got := r.HitTestBox(BoxI{X0: 5, Y0: 5, X1: 15, Y1: 15}); got != HitPart {
		t.Errorf("HitTestBox overlapping = %v, want HitPart", got)
	}
	if got := r.HitTestBox(BoxI{X0: 20, Y0: 20, X1: 30, Y1: 30}); got != HitOut {
		t.Errorf("HitTestBox disjoint = %v, want HitOut", got)
	}
}

func TestRegionTranslate(t *testing.T) {
	r := NewRegion()
	defer r.Destroy()
	if err := r.CombineBox(BoxI{X0: 0, Y0: 0, X1: 10, Y1: 10}, BooleanOpOr); err != nil {
		t.Fatalf("CombineBox: %v", err)
	}

	if err := r.Translate(PointI{X: 5, Y: 7}); err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got := r.BoundingBox(); got != (BoxI{X0: 5, Y0: 7, X1: 15, Y1: 17}) {
		t.Errorf("BoundingBox after translate = %+v", got)
	}

	if err := r.TranslateAndClip(PointI{X: 0, Y: 0}, BoxI{X0: 0, Y0: 0, X1: 10, Y1: 10}); err != nil {
		t.Fatalf("TranslateAndClip: %v", err)
	}
	if got := r.BoundingBox(); got != (BoxI{X0: 5, Y0: 7, X1: 10, Y1: 10}) {
		t.Errorf("BoundingBox after clip = %+v", got)
	}
}

func TestRegionData(t *testing.T) {
	r := NewRegion()
	defer r.Destroy()
	if err := r.CombineBox(BoxI{X0: 0, Y0: 0, X1: 10, Y1: 10}, BooleanOpOr); err != nil {
		t.Fatalf("CombineBox: %v", err)
	}

	boxes := r.Data()
	if len(boxes) != 1 {
		t.Fatalf("len(Data()) = %d, want 1", len(boxes))
	}
	if boxes[0] != (BoxI{X0: 0, Y0: 0, X1: 10, Y1: 10}) {
		t.Errorf("Data()[0] = %+v", boxes[0])
	}
}

func TestRegionCloneIsDeep(t *testing.T) {
	r := NewRegion()
	defer r.Destroy()
	if err := r.CombineBox(BoxI{X0: 0, Y0: 0, X1: 10, Y1: 10}, BooleanOpOr); err != nil {
		t.Fatalf("CombineBox: %v", err)
	}

	clone := r.Clone()
	defer clone.Destroy()
	if implOf(unsafe.Pointer(&clone.core)) == implOf(unsafe.Pointer(&r.core)) {
		t.Error("region clone should not share the impl")
	}
	if !r.Equals(clone) {
		t.Error("region should equal its clone")
	}

	if err := clone.Translate(PointI{X: 1, Y: 1}); err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if r.Equals(clone) {
		t.Error("mutating the clone should not affect the source")
	}
}
