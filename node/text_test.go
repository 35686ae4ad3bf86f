package node

import (
	"errors"
	"testing"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/keyframe"
	"github.com/gogpu/motion/model"
)

// boxTypesetter lays every document out as one square per rune.
type boxTypesetter struct {
	calls int
	err   error
}

func (b *boxTypesetter) Typeset(doc model.TextDocument) (motion.CompoundPath, error) {
	b.calls++
	if b.err != nil {
		return motion.CompoundPath{}, b.err
	}
	var out motion.CompoundPath
	x := 0.0
	for range doc.Text {
		out.Append(motion.Rectangle(motion.V2(x+doc.FontSize/2, -doc.FontSize/2), motion.V2(doc.FontSize, doc.FontSize), 0, motion.Clockwise))
		x += doc.FontSize + doc.Tracking
	}
	return out, nil
}

func textData(docs ...keyframe.Keyframe[model.TextDocument]) *model.TextData {
	return &model.TextData{Document: model.Keys(docs...)}
}

func TestTextTypesetsOncePerLayout(t *testing.T) {
	white := motion.White
	ts := &boxTypesetter{}
	n := NewText("Title", textData(
		keyframe.At(0, model.TextDocument{Text: "ab", FontSize: 10, FillColor: &white}),
		keyframe.At(10, model.TextDocument{Text: "abc", FontSize: 10, FillColor: &white}),
	), ts)

	for _, f := range []float64{0, 2, 5, 9.5} {
		n.Update(f, nil, false)
	}
	if ts.calls != 1 {
		t.Errorf("typeset calls = %d, want 1", ts.calls)
	}
	if got := len(n.Output().Paths); got != 2 {
		t.Errorf("glyphs before frame 10 = %d, want 2", got)
	}

	n.Update(12, nil, false)
	if ts.calls != 2 {
		t.Errorf("typeset calls after document change = %d, want 2", ts.calls)
	}
	if got := len(n.Output().Paths); got != 3 {
		t.Errorf("glyphs after frame 10 = %d, want 3", got)
	}
	if got := n.Content().(*Text).Resolved().Text; got != "abc" {
		t.Errorf("Resolved().Text = %q, want abc", got)
	}
}

func TestTextPaintOrder(t *testing.T) {
	red, blue := motion.RGB(1, 0, 0), motion.RGB(0, 0, 1)
	tests := []struct {
		name           string
		strokeOverFill bool
		want           []bool // Paint.Stroke, back to front
	}{
		{"fill over stroke", false, []bool{true, false}},
		{"stroke over fill", true, []bool{false, true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := model.TextDocument{
				Text: "x", FontSize: 12,
				FillColor: &red, StrokeColor: &blue, StrokeWidth: 2,
				StrokeOverFill: tt.strokeOverFill,
			}
			n := NewText("T", textData(keyframe.Static(doc)...), &boxTypesetter{})
			n.Update(0, nil, false)
			rs := n.Renderables()
			if len(rs) != len(tt.want) {
				t.Fatalf("renderables = %d, want %d", len(rs), len(tt.want))
			}
			for i, w := range tt.want {
				if rs[i].Paint.Stroke != w {
					t.Errorf("renderable %d stroke = %v, want %v", i, rs[i].Paint.Stroke, w)
				}
			}
		})
	}
}

func TestTextAnimatorOverrides(t *testing.T) {
	white, green := motion.White, motion.RGB(0, 1, 0)
	data := textData(keyframe.Static(model.TextDocument{Text: "ab", FontSize: 10, FillColor: &white})...)
	data.Animators = []model.TextAnimator{{
		Name:      "Animator 1",
		FillColor: model.Const(green),
		Opacity:   model.Const(50.0),
		Position:  model.Const(motion.V2(5, 0)),
	}}
	n := NewText("T", data, &boxTypesetter{})
	n.Update(0, nil, false)

	rs := n.Renderables()
	if len(rs) != 1 || rs[0].Paint.Color != green || rs[0].Paint.Opacity != 0.5 {
		t.Fatalf("renderables = %+v", rs)
	}
	b := n.Output().Bounds()
	if !b.Min.Approx(motion.V2(5, -10), 1e-9) {
		t.Errorf("bounds min = %v, want (5, -10)", b.Min)
	}
	if _, ok := n.Property("Fill Color"); !ok {
		t.Error("animator fill color not registered")
	}
	if _, ok := n.Property("Stroke Color"); ok {
		t.Error("unset animator property registered")
	}
}

func TestTextWithoutTypesetter(t *testing.T) {
	white := motion.White
	n := NewText("T", textData(keyframe.Static(model.TextDocument{Text: "ab", FillColor: &white})...), nil)
	n.Update(0, nil, false)
	if !n.Output().IsEmpty() {
		t.Error("text without typesetter produced geometry")
	}

	failing := NewText("T", textData(keyframe.Static(model.TextDocument{Text: "ab", FillColor: &white})...),
		&boxTypesetter{err: errors.New("no font")})
	failing.Update(0, nil, false)
	if !failing.Output().IsEmpty() {
		t.Error("failed typesetting produced geometry")
	}
}
