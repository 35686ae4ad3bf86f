package keyframe

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/motion"
)

func TestNewTrackErrors(t *testing.T) {
	tests := []struct {
		name string
		keys []Keyframe[float64]
		want error
	}{
		{"empty", nil, ErrEmpty},
		{"unordered", []Keyframe[float64]{At(10, 0.0), At(5, 1.0)}, ErrUnordered},
		{"duplicate time", []Keyframe[float64]{At(0, 0.0), At(0, 1.0)}, ErrUnordered},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTrack[float64](Float{}, tt.keys...); !errors.Is(err, tt.want) {
				t.Errorf("NewTrack() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTrack_SingleKeyframeConstant(t *testing.T) {
	tr := ConstantTrack[float64](Float{}, 42)
	for _, f := range []float64{math.Inf(-1), -1e9, -1, 0, 15.5, 1e9, math.NaN()} {
		if got := tr.ValueAt(f); got != 42 {
			t.Errorf("ValueAt(%v) = %v, want 42", f, got)
		}
	}
}

func TestTrack_LinearFormula(t *testing.T) {
	tests := []struct {
		name string
		ease *Ease
	}{
		{"no ease", nil},
		{"linear ease", &Linear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k0 := At(0, 0.0)
			k0.Ease = tt.ease
			tr := MustTrack[float64](Float{}, k0, At(30, 100.0))

			if got := tr.ValueAt(15); got != 50 {
				t.Errorf("ValueAt(15) = %v, want 50", got)
			}
			for f := 0.0; f <= 30; f += 0.75 {
				want := 0 + (100-0)*(f-0)/(30-0)
				if got := tr.ValueAt(f); math.Abs(got-want) > 1e-9 {
					t.Errorf("ValueAt(%v) = %v, want %v", f, got, want)
				}
			}
		})
	}
}

func TestTrack_Clamp(t *testing.T) {
	tr := MustTrack[float64](Float{}, At(10, 1.0), At(20, 2.0))
	tests := []struct {
		frame, want float64
	}{
		{-100, 1},
		{9.999, 1},
		{10, 1},
		{20, 2},
		{1e12, 2},
	}
	for _, tt := range tests {
		if got := tr.ValueAt(tt.frame); got != tt.want {
			t.Errorf("ValueAt(%v) = %v, want %v", tt.frame, got, tt.want)
		}
	}
}

func TestTrack_Hold(t *testing.T) {
	k0 := At(0, 10.0)
	k0.Hold = true
	tr := MustTrack[float64](Float{}, k0, At(20, 30.0), At(40, 50.0))

	for f := 0.0; f < 20; f += 0.5 {
		if got := tr.ValueAt(f); got != 10 {
			t.Errorf("ValueAt(%v) = %v, want 10", f, got)
		}
	}
	if got := tr.ValueAt(19.9999); got != 10 {
		t.Errorf("ValueAt(19.9999) = %v, want 10", got)
	}
	if got := tr.ValueAt(20); got != 30 {
		t.Errorf("ValueAt(20) = %v, want 30", got)
	}
	if got := tr.ValueAt(30); got != 40 {
		t.Errorf("ValueAt(30) = %v, want 40", got)
	}
}

func TestTrack_StartValueExact(t *testing.T) {
	keys := []Keyframe[float64]{
		{Time: 0, Value: 3.7, Ease: NewEase(0.42, 0, 0.58, 1)},
		{Time: 7, Value: -12.25, Ease: NewEase(0.25, 0.1, 0.25, 1)},
		{Time: 13.5, Value: 1e6, Hold: true},
		{Time: 20, Value: 0.1},
		{Time: 31, Value: 77},
	}
	tr := MustTrack(Float{}, keys...)
	for _, k := range keys {
		if got := tr.ValueAt(k.Time); got != k.Value {
			t.Errorf("ValueAt(%v) = %v, want exactly %v", k.Time, got, k.Value)
		}
	}
}

func TestTrack_Color(t *testing.T) {
	tr := MustTrack[motion.RGBA](Color{},
		At(0, motion.RGBA{R: 0, G: 0, B: 0, A: 1}),
		At(10, motion.RGBA{R: 1, G: 1, B: 1, A: 1}))

	want := motion.RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}
	if got := tr.ValueAt(5); got != want {
		t.Errorf("ValueAt(5) = %v, want %v", got, want)
	}
}

func TestTrack_SpatialPoint(t *testing.T) {
	k0 := At(0, motion.V2(0, 0))
	k0.SpatialOut = motion.V2(0, 100)
	k0.SpatialIn = motion.V2(0, 100)
	tr := MustTrack[motion.Vec2](Point{}, k0, At(10, motion.V2(100, 0)))

	if got := tr.ValueAt(5); !got.Approx(motion.V2(50, 75), 1e-12) {
		t.Errorf("ValueAt(5) = %v, want (50, 75)", got)
	}
	if got := tr.ValueAt(0); got != motion.V2(0, 0) {
		t.Errorf("ValueAt(0) = %v, want (0, 0)", got)
	}

	// Size tracks ignore spatial handles.
	s0 := At(0, motion.V2(0, 0))
	s0.SpatialOut = motion.V2(0, 100)
	size := MustTrack[motion.Vec2](Size{}, s0, At(10, motion.V2(100, 0)))
	if got := size.ValueAt(5); !got.Approx(motion.V2(50, 0), 1e-12) {
		t.Errorf("size ValueAt(5) = %v, want (50, 0)", got)
	}
}

func TestTrack_BackwardSeek(t *testing.T) {
	keys := []Keyframe[float64]{
		{Time: 0, Value: 0, Ease: NewEase(0.42, 0, 0.58, 1)},
		{Time: 8, Value: 80},
		{Time: 20, Value: -20, Ease: NewEase(0.1, 0.8, 0.3, 1)},
		{Time: 40, Value: 5},
	}
	seeker := MustTrack(Float{}, keys...)
	seeker.ValueAt(30)
	seeker.ValueAt(35)
	got := seeker.ValueAt(10)

	fresh := MustTrack(Float{}, keys...)
	if want := fresh.ValueAt(10); got != want {
		t.Errorf("after backward seek ValueAt(10) = %v, fresh evaluation = %v", got, want)
	}
	if b := seeker.Bracket(10); b.StartFrame != 8 || b.EndFrame != 20 {
		t.Errorf("Bracket(10) = %v..%v, want 8..20", b.StartFrame, b.EndFrame)
	}
}

func TestTrack_HasUpdate(t *testing.T) {
	hold := At(20, 1.0)
	hold.Hold = true
	tr := MustTrack[float64](Float{}, At(0, 0.0), At(10, 10.0), hold, At(30, 0.0))

	if !tr.HasUpdate(5) {
		t.Error("HasUpdate before first evaluation = false, want true")
	}
	tr.ValueAt(5)

	tests := []struct {
		name  string
		frame float64
		want  bool
	}{
		{"same frame", 5, false},
		{"moved in span", 6, true},
		{"other span", 15, true},
		{"hold span", 25, true},
		{"after", 50, true},
	}
	for _, tt := range tests {
		if got := tr.HasUpdate(tt.frame); got != tt.want {
			t.Errorf("%s: HasUpdate(%v) = %v, want %v", tt.name, tt.frame, got, tt.want)
		}
	}

	tr.ValueAt(21)
	if tr.HasUpdate(29) {
		t.Error("HasUpdate within the same hold span = true, want false")
	}
	tr.ValueAt(35)
	if tr.HasUpdate(1000) {
		t.Error("HasUpdate within the clamp region = true, want false")
	}
	tr.Invalidate()
	if !tr.HasUpdate(35) {
		t.Error("HasUpdate after Invalidate = false, want true")
	}

	c := ConstantTrack[float64](Float{}, 1)
	c.ValueAt(0)
	if c.HasUpdate(99) {
		t.Error("constant track HasUpdate = true, want false")
	}
}

func TestTrack_SetValue(t *testing.T) {
	tr := MustTrack[float64](Float{}, At(0, 0.0), At(10, 100.0))
	tr.ValueAt(5)

	tr.SetValue(50, 10)
	if tr.Len() != 2 {
		t.Fatalf("overwrite changed length to %d", tr.Len())
	}
	if !tr.HasUpdate(5) {
		t.Error("HasUpdate after SetValue = false, want true")
	}
	if got := tr.ValueAt(5); got != 25 {
		t.Errorf("ValueAt(5) after overwrite = %v, want 25", got)
	}

	tr.SetValue(0, 20)
	if tr.Len() != 3 {
		t.Fatalf("insert: Len() = %d, want 3", tr.Len())
	}
	if got := tr.ValueAt(15); got != 25 {
		t.Errorf("ValueAt(15) after insert = %v, want 25", got)
	}

	tr.SetValue(-10, -5)
	if k := tr.Keyframes(); k[0].Time != -5 || k[0].Value != -10 {
		t.Errorf("insert before first: keyframes = %+v", k)
	}

	tr.Set(7)
	if got := tr.ValueAt(15); got != 7 || tr.IsAnimated() {
		t.Errorf("Set(7): ValueAt(15) = %v, animated = %t", got, tr.IsAnimated())
	}
}

func TestTrack_Callback(t *testing.T) {
	tr := MustTrack[float64](Float{}, At(0, 0.0), At(30, 100.0))

	calls := 0
	var seen CallbackInfo[float64]
	tr.SetCallback(func(info CallbackInfo[float64]) float64 {
		calls++
		seen = info
		return info.Interpolated * 2
	})

	if got := tr.ValueAt(15); got != 100 {
		t.Errorf("ValueAt(15) with callback = %v, want 100", got)
	}
	want := CallbackInfo[float64]{StartFrame: 0, EndFrame: 30, StartValue: 0, EndValue: 100, Interpolated: 50, Progress: 0.5, Frame: 15}
	if seen != want {
		t.Errorf("callback info = %+v, want %+v", seen, want)
	}

	tr.ValueAt(15)
	if calls != 1 {
		t.Errorf("callback called %d times for a repeated frame, want 1", calls)
	}
	tr.ValueAt(16)
	if calls != 2 {
		t.Errorf("callback called %d times, want 2", calls)
	}

	tr.ClearCallback()
	if !tr.HasUpdate(16) {
		t.Error("HasUpdate after ClearCallback = false, want true")
	}
	if got := tr.ValueAt(15); got != 50 {
		t.Errorf("ValueAt(15) after ClearCallback = %v, want 50", got)
	}

	tr.SetCallback(Constant(3.0))
	if got := tr.ValueAt(1000); got != 3 {
		t.Errorf("Constant callback ValueAt = %v, want 3", got)
	}
}

func TestTrack_Property(t *testing.T) {
	tr := MustTrack[float64](Float{}, At(0, 0.0), At(10, 10.0)).Named("Opacity")
	var p Property = tr

	if p.Name() != "Opacity" || p.ValueType() != "float64" {
		t.Errorf("Name/ValueType = %q/%q", p.Name(), p.ValueType())
	}

	var te *TypeError
	if err := p.SetAny("nope", 0); !errors.As(err, &te) {
		t.Fatalf("SetAny(string) error = %v, want *TypeError", err)
	}
	if te.Want != "float64" || te.Got != "string" {
		t.Errorf("TypeError = %+v", te)
	}

	if err := p.SetAny(5.0, 0); err != nil {
		t.Fatalf("SetAny(5.0) error = %v", err)
	}
	if got := tr.ValueAt(0); got != 5 {
		t.Errorf("ValueAt(0) after SetAny = %v, want 5", got)
	}

	if err := p.SetCallbackAny(func(CallbackInfo[float64]) float64 { return 9 }); err != nil {
		t.Fatalf("SetCallbackAny(func) error = %v", err)
	}
	if got := tr.ValueAt(3); got != 9 {
		t.Errorf("ValueAt(3) with callback = %v, want 9", got)
	}
	if err := p.SetCallbackAny(Constant(motion.RGB(1, 0, 0))); !errors.As(err, &te) {
		t.Errorf("SetCallbackAny(color callback) error = %v, want *TypeError", err)
	}
	p.ClearCallback()
	if tr.HasCallback() {
		t.Error("ClearCallback left a callback attached")
	}
}

func TestTrack_PathTopologyFault(t *testing.T) {
	var buf bytes.Buffer
	orig := motion.Logger()
	motion.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { motion.SetLogger(orig) })

	square := motion.Rectangle(motion.V2(0, 0), motion.V2(10, 10), 0, motion.Clockwise)
	pentagon := motion.Polygon(motion.PolygonOptions{Points: 5, Radius: 10})
	big := motion.Rectangle(motion.V2(0, 0), motion.V2(40, 40), 0, motion.Clockwise)

	tr := MustTrack[motion.BezierPath](Path{}, At(0, square), At(10, pentagon), At(20, big)).Named("Path")

	got := tr.ValueAt(5)
	if !got.Equal(&square, 1e-12) {
		t.Errorf("faulty span value = %v, want first keyframe shape", got.Vertices())
	}
	if !strings.Contains(buf.String(), "span disabled") {
		t.Errorf("expected a warning, log = %q", buf.String())
	}

	faults := tr.Faults()
	if len(faults) != 1 {
		t.Fatalf("Faults() = %d, want 1", len(faults))
	}
	if !errors.Is(faults[0], motion.ErrTopologyMismatch) || faults[0].StartFrame != 0 || faults[0].EndFrame != 10 {
		t.Errorf("fault = %+v", faults[0])
	}

	if tr.HasUpdate(6) {
		t.Error("HasUpdate inside a faulty span = true, want false")
	}

	got = tr.ValueAt(15)
	if !got.Equal(&square, 1e-12) {
		t.Error("second faulty span should also hold the first keyframe shape")
	}
	if got := tr.ValueAt(25); !got.Equal(&big, 0.5) {
		t.Error("frames after the last keyframe should clamp to it")
	}
	if len(tr.Faults()) != 2 {
		t.Errorf("Faults() = %d, want 2", len(tr.Faults()))
	}
}

func TestTrack_PathLerp(t *testing.T) {
	a := motion.Rectangle(motion.V2(0, 0), motion.V2(10, 10), 0, motion.Clockwise)
	b := motion.Rectangle(motion.V2(0, 0), motion.V2(30, 30), 0, motion.Clockwise)
	tr := MustTrack[motion.BezierPath](Path{}, At(0, a), At(10, b))

	got := tr.ValueAt(5)
	want := motion.Rectangle(motion.V2(0, 0), motion.V2(20, 20), 0, motion.Clockwise)
	if !got.Equal(&want, 1e-12) {
		t.Errorf("ValueAt(5) = %v, want %v", got.Vertices(), want.Vertices())
	}
	if len(tr.Faults()) != 0 {
		t.Error("compatible paths recorded a fault")
	}
}

func TestKinds(t *testing.T) {
	t.Run("floats", func(t *testing.T) {
		got := Floats{}.Lerp([]float64{0, 10}, []float64{10, 20}, 0.5)
		if got[0] != 5 || got[1] != 15 {
			t.Errorf("Floats.Lerp = %v", got)
		}
		short := []float64{1}
		if got := (Floats{}).Lerp(short, []float64{1, 2}, 0.5); len(got) != 1 {
			t.Errorf("mismatched lengths before end = %v, want start value", got)
		}
		if got := (Floats{}).Lerp(short, []float64{1, 2}, 1); len(got) != 2 {
			t.Errorf("mismatched lengths at end = %v, want end value", got)
		}
	})

	t.Run("step", func(t *testing.T) {
		tr := MustTrack[string](Step[string]{}, At(0, "a"), At(10, "b"))
		if got := tr.ValueAt(9.99); got != "a" {
			t.Errorf("ValueAt(9.99) = %q, want a", got)
		}
		if got := tr.ValueAt(10); got != "b" {
			t.Errorf("ValueAt(10) = %q, want b", got)
		}
	})
}
