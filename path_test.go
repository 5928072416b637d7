package blend2d

import (
	"math"
	"testing"
	"unsafe"
)

func TestPathVertices(t *testing.T) {
	p := NewPath()
	defer p.Destroy()

	if !p.IsEmpty() {
		t.Fatal("new path should be empty")
	}
	if err := p.MoveTo(1, 2); err != nil {
		t.Fatalf("MoveTo: %v", err)
	}
	if err := p.LineTo(3, 4); err != nil {
		t.Fatalf("LineTo: %v", err)
	}
	if err := p.LineTo(5, 6); err != nil {
		t.Fatalf("LineTo: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if p.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", p.Len())
	}

	wantCmds := []PathCommand{PathCmdMove, PathCmdOn, PathCmdOn, PathCmdClose}
	cmds := p.CommandData()
	for i, want := range wantCmds {
		if got := PathCommand(cmds[i]); got != want {
			t.Errorf("command %d = %v, want %v", i, got, want)
		}
	}

	verts := p.VertexData()
	if verts[0] != (Point{X: 1, Y: 2}) || verts[1] != (Point{X: 3, Y: 4}) {
		t.Errorf("vertices = %v", verts[:2])
	}
}

func TestPathBoundingBox(t *testing.T) {
	p := NewPath()
	defer p.Destroy()

	if err := p.MoveTo(10, 20); err != nil {
		t.Fatalf("MoveTo: %v", err)
	}
	if err := p.LineTo(30, 40); err != nil {
		t.Fatalf("LineTo: %v", err)
	}
	if err := p.LineTo(10, 40); err != nil {
		t.Fatalf("LineTo: %v", err)
	}

	box, err := p.BoundingBox()
	if err != nil {
		t.Fatalf("BoundingBox: %v", err)
	}
	want := Box{X0: 10, Y0: 20, X1: 30, Y1: 40}
	if box != want {
		t.Errorf("BoundingBox = %+v, want %+v", box, want)
	}
}

func TestPathBoundingBoxEmpty(t *testing.T) {
	p := NewPath()
	defer p.Destroy()

	if _, err := p.BoundingBox(); err == nil {
		t.Error("bounding box of an empty path should fail")
	}
}

func TestPathFigureRange(t *testing.T) {
	p := NewPath()
	defer p.Destroy()

	mustMove := func(x, y float64) {
		t.Helper()
		if err := p.MoveTo(x, y); err != nil {
			t.Fatalf("MoveTo: %v", err)
		}
	}
	mustLine := func(x, y float64) {
		t.Helper()
		if err := p.LineTo(x, y); err != nil {
			t.Fatalf("LineTo: %v", err)
		}
	}

	mustMove(0, 0)
	mustLine(1, 0)
	mustLine(1, 1)
	mustMove(5, 5)
	mustLine(6, 5)

	r, err := p.FigureRange(1)
	if err != nil {
		t.Fatalf("FigureRange: %v", err)
	}
	if r != (Range{Start: 0, End: 3}) {
		t.Errorf("first figure = %+v, want {0 3}", r)
	}

	r, err = p.FigureRange(4)
	if err != nil {
		t.Fatalf("FigureRange: %v", err)
	}
	if r != (Range{Start: 3, End: 5}) {
		t.Errorf("second figure = %+v, want {3 5}", r)
	}
}

func TestPathLastVertex(t *testing.T) {
	p := NewPath()
	defer p.Destroy()

	if err := p.MoveTo(1, 1); err != nil {
		t.Fatalf("MoveTo: %v", err)
	}
	if err := p.LineTo(7, 9); err != nil {
		t.Fatalf("LineTo: %v", err)
	}

	pt, err := p.LastVertex()
	if err != nil {
		t.Fatalf("LastVertex: %v", err)
	}
	if pt != (Point{X: 7, Y: 9}) {
		t.Errorf("LastVertex = %+v, want {7 9}", pt)
	}
}

func TestPathClosestVertex(t *testing.T) {
	p := NewPath()
	defer p.Destroy()

	if err := p.MoveTo(0, 0); err != nil {
		t.Fatalf("MoveTo: %v", err)
	}
	if err := p.LineTo(10, 0); err != nil {
		t.Fatalf("LineTo: %v", err)
	}
	if err := p.LineTo(10, 10); err != nil {
		t.Fatalf("LineTo: %v", err)
	}

	idx, dist, err := p.ClosestVertex(Point{X: 9, Y: 1}, math.Inf(1))
	if err != nil {
		t.Fatalf("ClosestVertex: %v", err)
	}
	if idx != 1 {
		t.Errorf("index = %d, want 1", idx)
	}
	if math.Abs(dist-math.Sqrt2) > 1e-12 {
		t.Errorf("distance = %g, want sqrt(2)", dist)
	}
}

func TestPathHitTest(t *testing.T) {
	p := NewPath()
	defer p.Destroy()

	if err := p.AddGeometry(&Rect{X: 0, Y: 0, W: 10, H: 10}, nil, DirectionCW); err != nil {
		t.Fatalf("AddGeometry: %v", err)
	}

	tests := []struct {
		name string
		pt   Point
		want HitTest
	}{
		{"inside", Point{X: 5, Y: 5}, HitIn},
		{"outside", Point{X: 15, Y: 5}, HitOut},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.HitTest(tt.pt, FillRuleNonZero); got != tt.want {
				t.Errorf("HitTest(%+v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}

func TestPathAddGeometry(t *testing.T) {
	tests := []struct {
		name  string
		shape Geometry
	}{
		{"box", &Box{X0: 0, Y0: 0, X1: 10, Y1: 10}},
		{"rect", &Rect{X: 0, Y: 0, W: 10, H: 10}},
		{"round rect", &RoundRect{X: 0, Y: 0, W: 10, H: 10, RX: 2, RY: 2}},
		{"circle", &Circle{CX: 5, CY: 5, Radius: 4}},
		{"ellipse", &Ellipse{CX: 5, CY: 5, RX: 4, RY: 3}},
		{"triangle", &Triangle{X0: 0, Y0: 0, X1: 10, Y1: 0, X2: 5, Y2: 10}},
		{"pie", &Pie{CX: 5, CY: 5, RX: 4, RY: 4, Start: 0, Sweep: math.Pi}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPath()
			defer p.Destroy()
			if err := p.AddGeometry(tt.shape, nil, DirectionCW); err != nil {
				t.Fatalf("AddGeometry: %v", err)
			}
			if p.IsEmpty() {
				t.Error("path should have vertices after AddGeometry")
			}
		})
	}
}

func TestPathAddPolygon(t *testing.T) {
	p := NewPath()
	defer p.Destroy()

	poly := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	if err := p.AddPolygon(poly, nil, DirectionCW); err != nil {
		t.Fatalf("AddPolygon: %v", err)
	}
	if got := p.HitTest(Point{X: 5, Y: 5}, FillRuleNonZero); got != HitIn {
		t.Errorf("HitTest inside polygon = %v, want HitIn", got)
	}
}

func TestPathAddTranslatedPath(t *testing.T) {
	src := NewPath()
	defer src.Destroy()
	if err := src.MoveTo(0, 0); err != nil {
		t.Fatalf("MoveTo: %v", err)
	}
	if err := src.LineTo(1, 1); err != nil {
		t.Fatalf("LineTo: %v", err)
	}

	dst := NewPath()
	defer dst.Destroy()
	if err := dst.AddTranslatedPath(src, nil, Point{X: 10, Y: 20}); err != nil {
		t.Fatalf("AddTranslatedPath: %v", err)
	}

	verts := dst.VertexData()
	if verts[0] != (Point{X: 10, Y: 20}) || verts[1] != (Point{X: 11, Y: 21}) {
		t.Errorf("translated vertices = %v", verts)
	}
}

func TestPathTransform(t *testing.T) {
	p := NewPath()
	defer p.Destroy()
	if err := p.MoveTo(1, 2); err != nil {
		t.Fatalf("MoveTo: %v", err)
	}
	if err := p.LineTo(3, 4); err != nil {
		t.Fatalf("LineTo: %v", err)
	}

	m := ScalingMatrix(2, 2)
	if err := p.Transform(nil, &m); err != nil {
		t.Fatalf("Transform: %v", err)
	}

	verts := p.VertexData()
	if verts[0] != (Point{X: 2, Y: 4}) || verts[1] != (Point{X: 6, Y: 8}) {
		t.Errorf("scaled vertices = %v", verts)
	}
}

func TestPathEqualsAndClone(t *testing.T) {
	p := NewPath()
	defer p.Destroy()
	if err := p.MoveTo(0, 0); err != nil {
		t.Fatalf("MoveTo: %v", err)
	}
	if err := p.LineTo(5, 5); err != nil {
		t.Fatalf("LineTo: %v", err)
	}

	weak := p.Clone()
	defer weak.Destroy()
	if implOf(unsafe.Pointer(&weak.core)) != implOf(unsafe.Pointer(&p.core)) {
		t.Error("weak clone should share the impl")
	}
	if !p.Equals(weak) {
		t.Error("path should equal its weak clone")
	}

	deep := p.CloneDeep()
	defer deep.Destroy()
	if implOf(unsafe.Pointer(&deep.core)) == implOf(unsafe.Pointer(&p.core)) {
		t.Error("deep clone should not share the impl")
	}
	if !p.Equals(deep) {
		t.Error("path should equal its deep clone")
	}
}

func TestPathAddStrokedPath(t *testing.T) {
	src := NewPath()
	defer src.Destroy()
	if err := src.MoveTo(0, 0); err != nil {
		t.Fatalf("MoveTo: %v", err)
	}
	if err := src.LineTo(100, 0); err != nil {
		t.Fatalf("LineTo: %v", err)
	}

	opts := NewStrokeOptions()
	defer opts.Destroy()
	opts.SetWidth(10)
	opts.SetCaps(StrokeCapRound)

	approx := DefaultApproximationOptions()
	dst := NewPath()
	defer dst.Destroy()
	if err := dst.AddStrokedPath(src, nil, opts, &approx); err != nil {
		t.Fatalf("AddStrokedPath: %v", err)
	}
	if dst.IsEmpty() {
		t.Error("stroked path should not be empty")
	}
	if got := dst.HitTest(Point{X: 50, Y: 3}, FillRuleNonZero); got != HitIn {
		t.Errorf("point inside the stroke outline = %v, want HitIn", got)
	}
}

func TestStrokeOptionsAccessors(t *testing.T) {
	opts := NewStrokeOptions()
	defer opts.Destroy()

	if got := opts.Width(); got != 1 {
		t.Errorf("default Width() = %g, want 1", got)
	}
	opts.SetWidth(2.5)
	if got := opts.Width(); got != 2.5 {
		t.Errorf("Width() = %g, want 2.5", got)
	}

	opts.SetMiterLimit(8)
	if got := opts.MiterLimit(); got != 8 {
		t.Errorf("MiterLimit() = %g, want 8", got)
	}

	opts.SetJoin(StrokeJoinRound)
	if got := opts.Join(); got != StrokeJoinRound {
		t.Errorf("Join() = %v, want round", got)
	}

	opts.SetCaps(StrokeCapSquare)
	if opts.StartCap() != StrokeCapSquare || opts.EndCap() != StrokeCapSquare {
		t.Error("SetCaps should set both caps")
	}
	opts.SetCap(StrokeCapPositionEnd, StrokeCapTriangle)
	if opts.StartCap() != StrokeCapSquare || opts.EndCap() != StrokeCapTriangle {
		t.Error("SetCap should only change the selected position")
	}

	opts.SetTransformOrder(StrokeTransformBefore)
	if got := opts.TransformOrder(); got != StrokeTransformBefore {
		t.Errorf("TransformOrder() = %v, want before", got)
	}

	if err := opts.SetDashArray([]float64{4, 2}); err != nil {
		t.Fatalf("SetDashArray: %v", err)
	}
	opts.SetDashOffset(1)
	if got := opts.DashArray(); len(got) != 2 || got[0] != 4 || got[1] != 2 {
		t.Errorf("DashArray() = %v, want [4 2]", got)
	}
	if got := opts.DashOffset(); got != 1 {
		t.Errorf("DashOffset() = %g, want 1", got)
	}
}

func TestDefaultApproximationOptions(t *testing.T) {
	approx := DefaultApproximationOptions()
	if approx.FlattenTolerance <= 0 {
		t.Errorf("FlattenTolerance = %g, want positive", approx.FlattenTolerance)
	}
	if got := approx.FlattenMode(); got != FlattenDefault {
		t.Errorf("FlattenMode() = %v, want default", got)
	}
	approx.SetFlattenMode(FlattenRecursive)
	if got := approx.FlattenMode(); got != FlattenRecursive {
		t.Errorf("FlattenMode() after set = %v, want recursive", got)
	}
}
