package node

import (
	"math"
	"testing"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/keyframe"
	"github.com/gogpu/motion/model"
)

func rectItem(name string, size float64) *model.Rectangle {
	return &model.Rectangle{Item: model.Item{Name: name}, Size: model.Const(motion.V2(size, size))}
}

func fillItem(name string, c motion.RGBA) *model.Fill {
	return &model.Fill{Item: model.Item{Name: name}, Color: model.Const(c)}
}

func find(root *Node, name string) *Node {
	if root.Name() == name {
		return root
	}
	for _, c := range root.Children() {
		if n := find(c, name); n != nil {
			return n
		}
	}
	return nil
}

func pathsEqual(t *testing.T, got, want motion.CompoundPath, eps float64) {
	t.Helper()
	if len(got.Paths) != len(want.Paths) {
		t.Fatalf("got %d paths, want %d", len(got.Paths), len(want.Paths))
	}
	for i := range got.Paths {
		if !got.Paths[i].Equal(&want.Paths[i], eps) {
			t.Errorf("path %d = %v, want %v", i, got.Paths[i].Vertices(), want.Paths[i].Vertices())
		}
	}
}

func TestKindString(t *testing.T) {
	if got := KindGradientStroke.String(); got != "GradientStroke" {
		t.Errorf("String() = %q", got)
	}
	if got := Kind(200).String(); got != "Unknown" {
		t.Errorf("String() = %q, want Unknown", got)
	}
}

func TestShapeLeaf(t *testing.T) {
	root := Build("Layer", []model.ShapeItem{
		&model.Ellipse{Item: model.Item{Name: "Ellipse"}, Position: model.Const(motion.V2(5, 5)), Size: model.Const(motion.V2(20, 10))},
	})
	if !root.Update(0, nil, false) {
		t.Fatal("first Update() = false, want true")
	}
	want := motion.CompoundPath{Paths: []motion.BezierPath{motion.Ellipse(motion.V2(5, 5), motion.V2(20, 10), motion.Clockwise)}}
	pathsEqual(t, root.Output(), want, 1e-12)
	if e := find(root, "Ellipse"); e == nil || e.Kind() != KindEllipse || e.State() != Fresh {
		t.Errorf("ellipse node = %v", e)
	}
}

func TestUpdateIdempotent(t *testing.T) {
	root := Build("Layer", []model.ShapeItem{
		&model.Group{Item: model.Item{Name: "G"}, Items: []model.ShapeItem{
			&model.Rectangle{Item: model.Item{Name: "Rect"}, Size: model.Keys(keyframe.At(0, motion.V2(10, 10)), keyframe.At(20, motion.V2(30, 30)))},
			&model.Trim{Item: model.Item{Name: "Trim"}, End: model.Keys(keyframe.At(0, 100.0), keyframe.At(20, 50.0))},
			&model.Stroke{Item: model.Item{Name: "Stroke"}, Color: model.Const(motion.White), StrokeStyle: model.StrokeStyle{
				Width: model.Const(2.0),
				Dash:  []model.DashElement{{Type: model.DashTypeDash, Value: model.Const(4.0)}},
			}},
			&model.Repeater{Item: model.Item{Name: "Rep"}, Copies: model.Const(2.0)},
			&model.GradientFill{Item: model.Item{Name: "Grad"}, Gradient: model.Gradient{
				NumStops: 2, Colors: model.Const([]float64{0, 0, 0, 0, 1, 1, 1, 1}),
			}},
			&model.ShapeTransform{Item: model.Item{Name: "Transform"}, Transform: model.Transform{
				Rotation: model.Keys(keyframe.At(0, 0.0), keyframe.At(20, 90.0)),
			}},
		}},
	})

	for _, f := range []float64{10, 0, 25, 7.5} {
		if !root.Update(f, nil, false) {
			t.Errorf("Update(%v) after a frame change = false, want true", f)
		}
		if root.Update(f, nil, false) {
			t.Errorf("second Update(%v) = true, want false", f)
		}
	}
	if !root.Update(7.5, nil, true) {
		t.Error("forced Update() = false, want true")
	}
	root.Invalidate()
	if !root.Update(7.5, nil, false) {
		t.Error("Update() after Invalidate = false, want true")
	}
}

func TestUpdateConstantGraphSettles(t *testing.T) {
	root := Build("Layer", []model.ShapeItem{rectItem("Rect", 10), fillItem("Fill", motion.White)})
	root.Update(0, nil, false)
	for _, f := range []float64{-100, 5, 1e6} {
		if root.Update(f, nil, false) {
			t.Errorf("constant graph Update(%v) = true, want false", f)
		}
	}
}

func TestBackwardSeekMatchesFreshEvaluation(t *testing.T) {
	items := func() []model.ShapeItem {
		return []model.ShapeItem{
			&model.Group{Item: model.Item{Name: "G"}, Items: []model.ShapeItem{
				&model.Rectangle{Item: model.Item{Name: "Rect"}, Size: model.Keys(
					keyframe.Keyframe[motion.Vec2]{Time: 0, Value: motion.V2(10, 10), Ease: keyframe.NewEase(0.42, 0, 0.58, 1)},
					keyframe.At(40, motion.V2(110, 110)),
				)},
				&model.Trim{Item: model.Item{Name: "Trim"}, End: model.Keys(keyframe.At(0, 100.0), keyframe.At(40, 20.0))},
				fillItem("Fill", motion.RGB(0, 0, 1)),
			}},
		}
	}
	seeker := Build("Layer", items())
	seeker.Update(30, nil, false)
	seeker.Update(10, nil, false)

	fresh := Build("Layer", items())
	fresh.Update(10, nil, false)

	pathsEqual(t, seeker.Output(), fresh.Output(), 1e-12)
	if len(seeker.Renderables()) != 1 || len(fresh.Renderables()) != 1 {
		t.Fatal("expected one renderable")
	}
	pathsEqual(t, seeker.Renderables()[0].Geometry, fresh.Renderables()[0].Geometry, 1e-12)
}

func TestTrimNode(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		offset     float64
		want       float64
	}{
		{"half", 0, 50, 0, 200},
		{"full", 0, 100, 0, 400},
		{"empty", 50, 50, 0, 0},
		{"offset one turn", 0, 50, 360, 200},
		{"offset half turn wraps", 25, 75, 180, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := Build("Layer", []model.ShapeItem{
				rectItem("Rect", 100),
				&model.Trim{Item: model.Item{Name: "Trim"}, Start: model.Const(tt.start), End: model.Const(tt.end), Offset: model.Const(tt.offset)},
			})
			root.Update(0, nil, false)
			if got := root.Output().Length(); math.Abs(got-tt.want) > 1e-4 {
				t.Errorf("trimmed length = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRepeaterSingleCopyIsIdentity(t *testing.T) {
	root := Build("Layer", []model.ShapeItem{
		rectItem("Rect", 10),
		&model.Repeater{Item: model.Item{Name: "Rep"}, Copies: model.Const(1.0), Transform: model.RepeaterTransform{
			Position:     model.Const(motion.V2(30, 0)),
			Rotation:     model.Const(45.0),
			Scale:        model.Const(motion.V2(50, 50)),
			StartOpacity: model.Const(80.0),
			EndOpacity:   model.Const(80.0),
		}},
	})
	root.Update(0, nil, false)

	rect := find(root, "Rect")
	rep := find(root, "Rep")
	pathsEqual(t, rep.Output(), rect.Output(), 1e-12)
	inst := rep.Content().(*Repeater).Instances()
	if len(inst) != 1 || !inst[0].Matrix.IsIdentity() || inst[0].Opacity != 0.8 {
		t.Errorf("Instances() = %+v", inst)
	}
}

func TestRepeaterCopies(t *testing.T) {
	root := Build("Layer", []model.ShapeItem{
		rectItem("Rect", 10),
		fillItem("Fill", motion.White),
		&model.Repeater{Item: model.Item{Name: "Rep"}, Copies: model.Const(3.0), Transform: model.RepeaterTransform{
			Position:   model.Const(motion.V2(10, 0)),
			EndOpacity: model.Const(0.0),
		}},
	})
	root.Update(0, nil, false)

	if got := len(root.Output().Paths); got != 3 {
		t.Fatalf("output paths = %d, want 3", got)
	}
	rs := root.Renderables()
	if len(rs) != 3 {
		t.Fatalf("renderables = %d, want 3", len(rs))
	}
	for i, want := range []struct{ x, opacity float64 }{{0, 1}, {10, 0.5}, {20, 0}} {
		if rs[i].Matrix.C != want.x || rs[i].Matrix.F != 0 {
			t.Errorf("copy %d translation = (%v, %v), want (%v, 0)", i, rs[i].Matrix.C, rs[i].Matrix.F, want.x)
		}
		if rs[i].Opacity != want.opacity {
			t.Errorf("copy %d opacity = %v, want %v", i, rs[i].Opacity, want.opacity)
		}
	}

	below := Build("Layer", []model.ShapeItem{
		rectItem("Rect", 10),
		fillItem("Fill", motion.White),
		&model.Repeater{Item: model.Item{Name: "Rep"}, Copies: model.Const(2.0), Composite: model.CompositeBelow,
			Transform: model.RepeaterTransform{Position: model.Const(motion.V2(10, 0))}},
	})
	below.Update(0, nil, false)
	if rs := below.Renderables(); len(rs) != 2 || rs[0].Matrix.C != 10 || rs[1].Matrix.C != 0 {
		t.Errorf("composite below order = %+v", rs)
	}
}

func TestRepeaterZeroCopies(t *testing.T) {
	root := Build("Layer", []model.ShapeItem{
		rectItem("Rect", 10),
		fillItem("Fill", motion.White),
		&model.Repeater{Item: model.Item{Name: "Rep"}},
	})
	root.Update(0, nil, false)
	if !root.Output().IsEmpty() || len(root.Renderables()) != 0 {
		t.Errorf("zero copies: output %d paths, %d renderables", len(root.Output().Paths), len(root.Renderables()))
	}
}

func TestPaintOrderAndChain(t *testing.T) {
	red, blue := motion.RGB(1, 0, 0), motion.RGB(0, 0, 1)
	root := Build("Layer", []model.ShapeItem{
		rectItem("A", 10),
		&model.Fill{Item: model.Item{Name: "FillA"}, Color: model.Const(red), Opacity: model.Const(50.0)},
		rectItem("B", 20),
		fillItem("FillB", blue),
	})
	root.Update(0, nil, false)

	rs := root.Renderables()
	if len(rs) != 2 {
		t.Fatalf("renderables = %d, want 2", len(rs))
	}
	// Back to front: the later fill is drawn first.
	if rs[0].Node.Name() != "FillB" || rs[1].Node.Name() != "FillA" {
		t.Errorf("order = %s, %s; want FillB, FillA", rs[0].Node.Name(), rs[1].Node.Name())
	}
	if len(rs[0].Geometry.Paths) != 2 || len(rs[1].Geometry.Paths) != 1 {
		t.Errorf("geometry paths = %d, %d; want 2, 1", len(rs[0].Geometry.Paths), len(rs[1].Geometry.Paths))
	}
	if rs[1].Paint.Color != red || rs[1].Paint.Opacity != 0.5 || rs[1].Paint.Stroke {
		t.Errorf("FillA paint = %+v", rs[1].Paint)
	}
}

func TestGroupTransform(t *testing.T) {
	root := Build("Layer", []model.ShapeItem{
		&model.Group{Item: model.Item{Name: "G"}, Items: []model.ShapeItem{
			rectItem("Rect", 20),
			fillItem("Fill", motion.White),
			&model.ShapeTransform{Item: model.Item{Name: "Transform"}, Transform: model.Transform{
				Position: model.Const(motion.V2(10, 20)),
				Opacity:  model.Const(50.0),
			}},
		}},
	})
	root.Update(0, nil, false)

	rs := root.Renderables()
	if len(rs) != 1 {
		t.Fatalf("renderables = %d, want 1", len(rs))
	}
	if want := motion.Translate(10, 20); rs[0].Matrix != want || rs[0].Opacity != 0.5 {
		t.Errorf("renderable matrix = %+v opacity = %v", rs[0].Matrix, rs[0].Opacity)
	}
	b := root.Output().Bounds()
	if !b.Min.Approx(motion.V2(0, 10), 1e-9) || !b.Max.Approx(motion.V2(20, 30), 1e-9) {
		t.Errorf("output bounds = %+v", b)
	}

	g := find(root, "G")
	children := g.Children()
	if len(children) != 3 || children[0].Kind() != KindTransform || children[1].Name() != "Rect" {
		t.Errorf("Children() = %v", children)
	}
}

func TestMergeFillRule(t *testing.T) {
	root := Build("Layer", []model.ShapeItem{
		rectItem("Outer", 40),
		rectItem("Inner", 20),
		&model.Merge{Item: model.Item{Name: "Merge"}, Mode: motion.MergeSubtract},
		fillItem("Fill", motion.White),
	})
	root.Update(0, nil, false)
	rs := root.Renderables()
	if len(rs) != 1 || rs[0].Paint.FillRule != motion.FillRuleEvenOdd || len(rs[0].Geometry.Paths) != 2 {
		t.Errorf("merged fill = %+v", rs)
	}
}

func TestHiddenItemsSkipped(t *testing.T) {
	hidden := rectItem("Hidden", 10)
	hidden.Hidden = true
	root := Build("Layer", []model.ShapeItem{hidden, rectItem("Shown", 10)})
	root.Update(0, nil, false)
	if find(root, "Hidden") != nil || len(root.Output().Paths) != 1 {
		t.Error("hidden item was built")
	}
}

func TestModifierVisitsEveryNode(t *testing.T) {
	root := Build("Layer", []model.ShapeItem{
		&model.Group{Item: model.Item{Name: "G"}, Items: []model.ShapeItem{
			rectItem("Rect", 10),
			fillItem("Fill", motion.White),
			&model.ShapeTransform{Item: model.Item{Name: "Transform"}},
		}},
		rectItem("Rect2", 10),
	})
	visited := map[string]int{}
	root.Update(0, func(n *Node) { visited[n.Name()]++ }, false)
	for _, name := range []string{"Layer", "G", "Rect", "Fill", "Transform", "Rect2"} {
		if visited[name] != 1 {
			t.Errorf("visited[%s] = %d, want 1", name, visited[name])
		}
	}
}

func TestMutationRecomputesOnlyAffectedNodes(t *testing.T) {
	root := Build("Layer", []model.ShapeItem{
		&model.Group{Item: model.Item{Name: "G1"}, Items: []model.ShapeItem{rectItem("R1", 10), fillItem("F1", motion.White)}},
		&model.Group{Item: model.Item{Name: "G2"}, Items: []model.ShapeItem{rectItem("R2", 10), fillItem("F2", motion.White)}},
	})
	root.Update(0, nil, false)

	f1, f2, r2 := find(root, "F1"), find(root, "F2"), find(root, "R2")
	before1, before2 := &f1.Renderables()[0], &f2.Renderables()[0]
	r2Local := &r2.Local().Paths[0]

	p, ok := f2.Property("Color")
	if !ok {
		t.Fatal("F2 has no Color property")
	}
	if err := p.SetAny(motion.RGB(1, 0, 0), 0); err != nil {
		t.Fatalf("SetAny() = %v", err)
	}
	if !root.Update(0, nil, false) {
		t.Fatal("Update() after mutation = false, want true")
	}

	if &f1.Renderables()[0] != before1 {
		t.Error("unrelated sibling fill was recomputed")
	}
	if &r2.Local().Paths[0] != r2Local {
		t.Error("upstream rect was recomputed")
	}
	if &f2.Renderables()[0] == before2 || f2.Renderables()[0].Paint.Color != motion.RGB(1, 0, 0) {
		t.Error("mutated fill was not recomputed")
	}
	if got := root.Renderables()[0].Paint.Color; got != motion.RGB(1, 0, 0) {
		t.Errorf("root back-most renderable color = %v, want red", got)
	}
}

func TestPathTopologyFaultHoldsFirstShape(t *testing.T) {
	square := motion.Rectangle(motion.Vec2{}, motion.V2(10, 10), 0, motion.Clockwise)
	pentagon := motion.Polygon(motion.PolygonOptions{Points: 5, Radius: 10})
	root := Build("Layer", []model.ShapeItem{
		&model.Shape{Item: model.Item{Name: "Path"}, Path: model.Keys(keyframe.At(0, square), keyframe.At(10, pentagon))},
	})
	root.Update(5, nil, false)

	n := find(root, "Path")
	pathsEqual(t, n.Local(), motion.CompoundPath{Paths: []motion.BezierPath{square}}, 1e-12)
	if faults := n.Faults(); len(faults) != 1 {
		t.Errorf("Faults() = %v, want one", faults)
	}
}

func TestPropertyRegistry(t *testing.T) {
	root := Build("Layer", []model.ShapeItem{
		&model.Star{Item: model.Item{Name: "Star"}, Type: model.StarTypeStar},
		&model.Star{Item: model.Item{Name: "Polygon"}, Type: model.StarTypePolygon},
		&model.Stroke{Item: model.Item{Name: "Stroke"}, StrokeStyle: model.StrokeStyle{Dash: []model.DashElement{
			{Type: model.DashTypeDash, Value: model.Const(1.0)},
			{Type: model.DashTypeGap, Value: model.Const(2.0)},
			{Type: model.DashTypeOffset, Value: model.Const(3.0)},
		}}},
	})

	if _, ok := find(root, "Star").Property("Inner Radius"); !ok {
		t.Error("star lacks Inner Radius")
	}
	if _, ok := find(root, "Polygon").Property("Inner Radius"); ok {
		t.Error("polygon exposes Inner Radius")
	}
	var names []string
	for _, p := range find(root, "Stroke").Properties() {
		names = append(names, p.Name())
	}
	want := []string{"Color", "Opacity", "Stroke Width", "Dash 0", "Gap 0", "Dash Offset"}
	if len(names) != len(want) {
		t.Fatalf("properties = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("property %d = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestStrokePaint(t *testing.T) {
	root := Build("Layer", []model.ShapeItem{
		rectItem("Rect", 10),
		&model.Stroke{Item: model.Item{Name: "Stroke"}, Color: model.Const(motion.White), Opacity: model.Const(25.0),
			StrokeStyle: model.StrokeStyle{
				Width: model.Const(3.0),
				Cap:   motion.LineCapRound,
				Join:  motion.LineJoinBevel,
				Dash: []model.DashElement{
					{Type: model.DashTypeDash, Value: model.Const(10.0)},
					{Type: model.DashTypeGap, Value: model.Const(5.0)},
					{Type: model.DashTypeOffset, Value: model.Const(2.0)},
				},
			}},
	})
	root.Update(0, nil, false)
	p := root.Renderables()[0].Paint
	if !p.Stroke || p.Width != 3 || p.Opacity != 0.25 || p.Cap != motion.LineCapRound || p.Join != motion.LineJoinBevel || p.MiterLimit != 4 {
		t.Errorf("stroke paint = %+v", p)
	}
	if p.Dash == nil || len(p.Dash.Array) != 2 || p.Dash.Array[0] != 10 || p.Dash.Array[1] != 5 || p.Dash.Offset != 2 {
		t.Errorf("dash = %+v", p.Dash)
	}
}

func TestGradientPaint(t *testing.T) {
	root := Build("Layer", []model.ShapeItem{
		rectItem("Rect", 10),
		&model.GradientStroke{Item: model.Item{Name: "GS"},
			Gradient: model.Gradient{
				Type:     motion.GradientRadial,
				Start:    model.Const(motion.V2(0, 0)),
				End:      model.Const(motion.V2(10, 0)),
				NumStops: 2,
				Colors:   model.Keys(keyframe.At(0, []float64{0, 1, 0, 0, 1, 0, 0, 1}), keyframe.At(10, []float64{0, 0, 1, 0, 1, 0, 0, 1})),
			},
			StrokeStyle: model.StrokeStyle{Width: model.Const(2.0)},
		},
	})
	root.Update(5, nil, false)
	p := root.Renderables()[0].Paint
	if p.Gradient == nil || p.Gradient.Type != motion.GradientRadial || len(p.Gradient.Stops) != 2 {
		t.Fatalf("gradient = %+v", p.Gradient)
	}
	if got := p.Gradient.Stops[0].Color; got != motion.RGB(0.5, 0.5, 0) {
		t.Errorf("first stop at frame 5 = %v, want (0.5, 0.5, 0)", got)
	}
	if p.Gradient.End != motion.V2(10, 0) || !p.Stroke || p.Width != 2 {
		t.Errorf("gradient stroke paint = %+v", p)
	}
}

func TestForcedUpdateRunsCallbacks(t *testing.T) {
	root := Build("Layer", []model.ShapeItem{rectItem("Rect", 10), fillItem("Fill", motion.White)})
	p, ok := find(root, "Fill").Property("Opacity")
	if !ok {
		t.Fatal("Fill has no Opacity property")
	}
	calls := 0
	err := p.SetCallbackAny(func(info keyframe.CallbackInfo[float64]) float64 {
		calls++
		return info.Interpolated
	})
	if err != nil {
		t.Fatalf("SetCallbackAny() = %v", err)
	}

	root.Update(10, nil, false)
	if calls != 1 {
		t.Fatalf("calls after first update = %d, want 1", calls)
	}
	if root.Update(10, nil, false) {
		t.Error("repeated Update() = true, want false")
	}
	if calls != 1 {
		t.Errorf("calls after repeated update = %d, want 1", calls)
	}
	if !root.Update(10, nil, true) {
		t.Error("forced Update() = false, want true")
	}
	if calls != 2 {
		t.Errorf("calls after forced update = %d, want 2", calls)
	}
}
