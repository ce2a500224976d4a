package field

import (
	"math"
	"testing"
)

func TestOf(t *testing.T) {
	tests := []struct {
		name      string
		in        float64
		undefined bool
	}{
		{"zero", 0, false},
		{"finite", -3.5, false},
		{"NaN", math.NaN(), true},
		{"+Inf", math.Inf(1), true},
		{"-Inf", math.Inf(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Of(tt.in).IsUndefined(); got != tt.undefined {
				t.Errorf("Of(%v).IsUndefined() = %v, want %v", tt.in, got, tt.undefined)
			}
		})
	}
}

func TestValue_ZeroIsUndefined(t *testing.T) {
	var v Value
	if !v.IsUndefined() {
		t.Error("zero Value should be undefined")
	}
	if v != Undefined {
		t.Error("zero Value should equal Undefined")
	}
	if v.String() != "undefined" {
		t.Errorf("String() = %q, want %q", v.String(), "undefined")
	}
}
