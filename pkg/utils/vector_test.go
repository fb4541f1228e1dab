package utils

import (
	"math"
	"testing"
)

func TestVec2Basics(t *testing.T) {
	a := NewVec2(3, 4)
	b := NewVec2(1, -1)

	if got := a.Add(b); got != (Vec2{X: 4, Y: 3}) {
		t.Errorf("Add: got %+v", got)
	}
	if got := a.Sub(b); got != (Vec2{X: 2, Y: 5}) {
		t.Errorf("Sub: got %+v", got)
	}
	if got := a.Scale(2); got != (Vec2{X: 6, Y: 8}) {
		t.Errorf("Scale: got %+v", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len: expected 5, got %f", got)
	}
	if got := Zero.DistanceTo(a); got != 5 {
		t.Errorf("DistanceTo: expected 5, got %f", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	t.Run("普通向量", func(t *testing.T) {
		n := NewVec2(0, -10).Normalize()
		if n != (Vec2{X: 0, Y: -1}) {
			t.Errorf("expected (0,-1), got %+v", n)
		}
	})

	t.Run("零向量不产生 NaN", func(t *testing.T) {
		n := Zero.Normalize()
		if !n.IsZero() {
			t.Errorf("expected zero vector, got %+v", n)
		}
	})
}

func TestVec2Angle(t *testing.T) {
	tests := []struct {
		v    Vec2
		want float64
	}{
		{NewVec2(1, 0), 0},
		{NewVec2(0, 1), 90},
		{NewVec2(-1, 0), 180},
		{NewVec2(0, -1), -90},
	}

	for _, tt := range tests {
		if got := tt.v.Angle(); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Angle(%+v): expected %f, got %f", tt.v, tt.want, got)
		}
	}
}
