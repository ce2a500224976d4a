package colormap

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/slopefield/internal/field"
)

func compressed(t *testing.T, c Compressor, v float64) float64 {
	t.Helper()
	out, ok := c(field.Defined(v)).Float()
	if !ok {
		t.Fatalf("compress(%v) returned undefined", v)
	}
	return out
}

func TestCompress_Scenario(t *testing.T) {
	if got := compressed(t, Compress, 0); got != 0 {
		t.Errorf("compress(0) = %v, want 0", got)
	}
	if got := compressed(t, Compress, 1); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("compress(1) = %v, want 0.5", got)
	}
}

func TestCompress_Bijection(t *testing.T) {
	inputs := []float64{-1e300, -1e6, -100, -3, -1, -0.25, -1e-9, 0, 1e-9, 0.25, 1, 3, 100, 1e6, 1e300}

	prev := math.Inf(-1)
	for _, v := range inputs {
		got := compressed(t, Compress, v)
		if got < -1 || got > 1 {
			t.Errorf("compress(%v) = %v outside [-1, 1]", v, got)
		}
		if math.Abs(v) < 1e6 && !(got > -1 && got < 1) {
			t.Errorf("compress(%v) = %v should be strictly inside (-1, 1)", v, got)
		}
		if math.Abs(v) < 1e6 && !(got > prev) {
			t.Errorf("compress not strictly increasing at %v: %v <= %v", v, got, prev)
		}
		prev = got

		if neg := compressed(t, Compress, -v); neg != -got {
			t.Errorf("compress(-%v) = %v, want %v", v, neg, -got)
		}
	}
}

func TestCompress_Undefined(t *testing.T) {
	for name, c := range map[string]Compressor{"atan": Compress, "logistic": CompressLogistic} {
		if !c(field.Undefined).IsUndefined() {
			t.Errorf("%s: undefined should pass through", name)
		}
	}
}

func TestCompressLogistic(t *testing.T) {
	if got := compressed(t, CompressLogistic, 0); got != 0 {
		t.Errorf("logistic(0) = %v, want 0", got)
	}
	prev := -1.0
	for _, v := range []float64{-50, -2, -0.5, 0.5, 2, 50} {
		got := compressed(t, CompressLogistic, v)
		if got < prev || got < -1 || got > 1 {
			t.Errorf("logistic(%v) = %v, prev %v", v, got, prev)
		}
		prev = got
	}
}

func TestCompressorByName(t *testing.T) {
	for _, name := range []string{"", "atan", "logistic"} {
		if _, err := CompressorByName(name); err != nil {
			t.Errorf("%q: unexpected error %v", name, err)
		}
	}
	if _, err := CompressorByName("sigmoid"); !errors.Is(err, ErrUnknownCompression) {
		t.Errorf("expected ErrUnknownCompression, got %v", err)
	}
}
