package motion

import (
	"math"
	"testing"
)

func TestNewDash(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want []float64
	}{
		{"none", nil, nil},
		{"all zero", []float64{0, 0}, nil},
		{"pair", []float64{5, 3}, []float64{5, 3}},
		{"zero raised", []float64{0, 5}, []float64{0.01, 5}},
		{"negative", []float64{-4, 2}, []float64{4, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDash(tt.in...)
			if tt.want == nil {
				if d != nil {
					t.Errorf("NewDash(%v) = %v, want nil", tt.in, d)
				}
				return
			}
			if d == nil || len(d.Array) != len(tt.want) {
				t.Fatalf("NewDash(%v) = %v, want %v", tt.in, d, tt.want)
			}
			for i := range tt.want {
				if d.Array[i] != tt.want[i] {
					t.Errorf("Array[%d] = %v, want %v", i, d.Array[i], tt.want[i])
				}
			}
		})
	}
}

func TestDash_PatternLength(t *testing.T) {
	if got := NewDash(5, 3).PatternLength(); got != 8 {
		t.Errorf("PatternLength([5 3]) = %v, want 8", got)
	}
	if got := NewDash(5).PatternLength(); got != 10 {
		t.Errorf("PatternLength([5]) = %v, want 10", got)
	}
	var d *Dash
	if got := d.PatternLength(); got != 0 {
		t.Errorf("nil PatternLength = %v, want 0", got)
	}
	if got := NewDash(2, 4).Scale(2).WithOffset(1); got.Array[1] != 8 || got.Offset != 1 {
		t.Errorf("Scale/WithOffset = %+v", got)
	}
}

func TestDash_Apply(t *testing.T) {
	square := CompoundPath{Paths: []BezierPath{unitSquare()}}

	tests := []struct {
		name    string
		dash    *Dash
		lengths []float64
	}{
		{"even", NewDash(100, 100), []float64{100, 100}},
		{"offset", NewDash(100, 100).WithOffset(50), []float64{50, 100, 50}},
		{"negative offset", NewDash(100, 100).WithOffset(-150), []float64{50, 100, 50}},
		{"single value", NewDash(200), []float64{200}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.dash.Apply(square)
			if len(got.Paths) != len(tt.lengths) {
				t.Fatalf("Apply produced %d dashes, want %d", len(got.Paths), len(tt.lengths))
			}
			for i, want := range tt.lengths {
				if l := got.Paths[i].Length(); math.Abs(l-want) > 1e-4 {
					t.Errorf("dash %d length = %v, want %v", i, l, want)
				}
			}
		})
	}

	var none *Dash
	if got := none.Apply(square); len(got.Paths) != 1 {
		t.Error("nil dash should return the input unchanged")
	}
}
