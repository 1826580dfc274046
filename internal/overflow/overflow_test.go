package overflow

import (
	"math"
	"testing"
)

func TestSigned(t *testing.T) {
	tests := []struct {
		name   string
		op     func(a, b int32) (int32, bool)
		a, b   int32
		want   int32
		wantOk bool
	}{
		{"add", Add[int32], 5, 3, 8, true},
		{"add overflow", Add[int32], math.MaxInt32, 1, math.MinInt32, false},
		{"add underflow", Add[int32], math.MinInt32, -1, math.MaxInt32, false},
		{"add zero", Add[int32], math.MaxInt32, 0, math.MaxInt32, true},
		{"sub", Sub[int32], 5, 8, -3, true},
		{"sub underflow", Sub[int32], math.MinInt32, 1, math.MaxInt32, false},
		{"sub overflow", Sub[int32], 0, math.MinInt32, math.MinInt32, false},
		{"mul", Mul[int32], -4, 6, -24, true},
		{"mul overflow", Mul[int32], 1 << 16, 1 << 16, 0, false},
		{"mul min by minus one", Mul[int32], math.MinInt32, -1, math.MinInt32, false},
		{"mul min by one", Mul[int32], math.MinInt32, 1, math.MinInt32, true},
		{"div", Div[int32], -7, 2, -3, true},
		{"div by zero", Div[int32], 1, 0, 0, false},
		{"div min by minus one", Div[int32], math.MinInt32, -1, math.MinInt32, false},
		{"mod", Mod[int32], -7, 2, -1, true},
		{"mod by zero", Mod[int32], 7, 0, 0, false},
		{"mod min by minus one", Mod[int32], math.MinInt32, -1, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.op(tt.a, tt.b)
			if ok != tt.wantOk {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOk)
			}
			if ok && got != tt.want {
				t.Errorf("result = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnsigned(t *testing.T) {
	tests := []struct {
		name   string
		op     func(a, b uint8) (uint8, bool)
		a, b   uint8
		want   uint8
		wantOk bool
	}{
		{"add", Add[uint8], 200, 55, 255, true},
		{"add overflow", Add[uint8], 200, 56, 0, false},
		{"sub", Sub[uint8], 10, 10, 0, true},
		{"sub underflow", Sub[uint8], 10, 11, 0, false},
		{"mul", Mul[uint8], 15, 17, 255, true},
		{"mul overflow", Mul[uint8], 16, 16, 0, false},
		{"div", Div[uint8], 255, 16, 15, true},
		{"mod", Mod[uint8], 255, 16, 15, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.op(tt.a, tt.b)
			if ok != tt.wantOk {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOk)
			}
			if ok && got != tt.want {
				t.Errorf("result = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNegAbs(t *testing.T) {
	if _, ok := Neg[int8](math.MinInt8); ok {
		t.Errorf("Neg(MinInt8) should overflow")
	}
	if got, ok := Neg[int8](5); !ok || got != -5 {
		t.Errorf("Neg(5) = %v, %v", got, ok)
	}
	if _, ok := Neg[uint16](1); ok {
		t.Errorf("Neg[uint16](1) should overflow")
	}
	if got, ok := Abs[int64](-9); !ok || got != 9 {
		t.Errorf("Abs(-9) = %v, %v", got, ok)
	}
	if _, ok := Abs[int64](math.MinInt64); ok {
		t.Errorf("Abs(MinInt64) should overflow")
	}
}
