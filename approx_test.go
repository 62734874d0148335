package checkgroup

import (
	"math"
	"testing"
)

func TestApproxEqual(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{name: "identical", x: 1.0, y: 1.0, expected: true},
		{name: "within epsilon", x: 1.00005, y: 1.0, expected: true},
		{name: "within epsilon reversed", x: 1.0, y: 1.00005, expected: true},
		{name: "exactly epsilon apart", x: 1.0001, y: 1.0, expected: false},
		{name: "beyond epsilon", x: 1.001, y: 1.0, expected: false},
		{name: "negative values", x: -2.00003, y: -2.0, expected: true},
		{name: "zero and small", x: 0, y: 5e-5, expected: true},
		{name: "opposite signs", x: 4e-5, y: -4e-5, expected: true},
		{name: "far apart", x: 3, y: 4, expected: false},
		{name: "nan", x: math.NaN(), y: 1, expected: false},
		{name: "equal beyond float32 range", x: 1e39, y: 1e39, expected: true},
		{name: "large magnitude beyond epsilon", x: 20000, y: 20000.00015, expected: false},
		{name: "large magnitude within epsilon", x: 20000, y: 20000.00005, expected: true},
		{name: "huge magnitude half apart", x: 1e8, y: 1.000000005e8, expected: false},
		{name: "huge negative magnitude", x: -1e300, y: -1e300, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApproxEqual(tt.x, tt.y); got != tt.expected {
				t.Errorf("ApproxEqual(%v, %v) = %v, expected %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}
