package raster

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/san-kum/slopefield/internal/colormap"
	"github.com/san-kum/slopefield/internal/field"
	"github.com/san-kum/slopefield/internal/grid"
)

func mustRect(t *testing.T, xMin, xMax, yMin, yMax float64) grid.Rect {
	t.Helper()
	r, err := grid.NewRect(xMin, xMax, yMin, yMax)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestRasterize_Coverage(t *testing.T) {
	eq, _ := field.NewRegistry().Get("default")
	r := New(eq, colormap.DefaultPalette())

	for _, size := range [][2]int{{1, 1}, {7, 3}, {64, 48}} {
		buf, err := r.Rasterize(context.Background(), mustRect(t, -5, 5, -5, 5), size[0], size[1])
		if err != nil {
			t.Fatalf("%v: %v", size, err)
		}
		if buf.Width != size[0] || buf.Height != size[1] {
			t.Errorf("buffer %dx%d, want %dx%d", buf.Width, buf.Height, size[0], size[1])
		}
		if !buf.Complete() {
			t.Errorf("%v: buffer has unassigned cells", size)
		}
	}
}

func TestRasterize_Orientation(t *testing.T) {
	// f = y: positive at the top, negative at the bottom.
	eq := field.Equation{Name: "y", Label: "y", Fn: func(x, y float64) float64 { return y }}
	pal := colormap.DefaultPalette()
	r := New(eq, pal)

	buf, err := r.Rasterize(context.Background(), mustRect(t, 0, 1, -1, 1), 3, 5)
	if err != nil {
		t.Fatal(err)
	}

	top, _ := pal.ToColor(colormap.Compress(field.Defined(1)))
	bottom, _ := pal.ToColor(colormap.Compress(field.Defined(-1)))
	middle, _ := pal.ToColor(colormap.Compress(field.Defined(0)))

	for x := 0; x < 3; x++ {
		if got := buf.At(x, 0); got != top {
			t.Errorf("row 0 col %d = %v, want %v (y max)", x, got, top)
		}
		if got := buf.At(x, 4); got != bottom {
			t.Errorf("row 4 col %d = %v, want %v (y min)", x, got, bottom)
		}
		if got := buf.At(x, 2); got != middle {
			t.Errorf("row 2 col %d = %v, want %v (y = 0)", x, got, middle)
		}
	}
}

func TestRasterize_UndefinedSentinel(t *testing.T) {
	eq, _ := field.NewRegistry().Get("rational")
	pal := colormap.DefaultPalette()
	r := New(eq, pal)

	// 5 rows over [-1, 1]: the middle row samples y = 0.
	buf, err := r.Rasterize(context.Background(), mustRect(t, -1, 1, -1, 1), 4, 5)
	if err != nil {
		t.Fatal(err)
	}
	for x := 0; x < 4; x++ {
		if got := buf.At(x, 2); got != pal.Undefined {
			t.Errorf("col %d at y=0 = %v, want sentinel %v", x, got, pal.Undefined)
		}
	}
}

func TestRasterize_WorkersAgree(t *testing.T) {
	eq, _ := field.NewRegistry().Get("default")
	rect := mustRect(t, -3, 3, -2, 2)

	serial := New(eq, colormap.DefaultPalette())
	serial.Workers = 1
	parallel := New(eq, colormap.DefaultPalette())
	parallel.Workers = 8

	a, err := serial.Rasterize(context.Background(), rect, 40, 30)
	if err != nil {
		t.Fatal(err)
	}
	b, err := parallel.Rasterize(context.Background(), rect, 40, 30)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("pixel %d differs: %v vs %v", i, a.Pix[i], b.Pix[i])
		}
	}
}

func TestRasterize_Progress(t *testing.T) {
	eq, _ := field.NewRegistry().Get("linear")
	r := New(eq, colormap.DefaultPalette())

	var calls, last atomic.Int64
	r.Progress = func(done, rows int) {
		calls.Add(1)
		if int64(done) > last.Load() {
			last.Store(int64(done))
		}
	}

	if _, err := r.Rasterize(context.Background(), mustRect(t, 0, 1, 0, 1), 5, 12); err != nil {
		t.Fatal(err)
	}
	if calls.Load() != 12 || last.Load() != 12 {
		t.Errorf("progress calls = %d, last = %d, want 12, 12", calls.Load(), last.Load())
	}
}

func TestRasterize_InvalidInput(t *testing.T) {
	eq, _ := field.NewRegistry().Get("linear")
	r := New(eq, colormap.DefaultPalette())
	rect := mustRect(t, 0, 1, 0, 1)

	if _, err := r.Rasterize(context.Background(), rect, 0, 10); !errors.Is(err, field.ErrContract) {
		t.Errorf("zero width: expected contract error, got %v", err)
	}
	if _, err := r.Rasterize(context.Background(), rect, 10, -1); !errors.Is(err, grid.ErrResolution) {
		t.Errorf("negative height: expected ErrResolution, got %v", err)
	}

	broken := New(field.Equation{Name: "nil"}, colormap.DefaultPalette())
	if _, err := broken.Rasterize(context.Background(), rect, 2, 2); !errors.Is(err, field.ErrNilFunc) {
		t.Errorf("nil func: expected ErrNilFunc, got %v", err)
	}
}

func TestRasterize_ContractViolationAborts(t *testing.T) {
	eq, _ := field.NewRegistry().Get("linear")
	r := New(eq, colormap.DefaultPalette())
	r.Compress = func(v field.Value) field.Value { return field.Defined(2) }

	_, err := r.Rasterize(context.Background(), mustRect(t, 0, 1, 0, 1), 3, 3)
	if !errors.Is(err, colormap.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestRasterize_Canceled(t *testing.T) {
	eq, _ := field.NewRegistry().Get("default")
	r := New(eq, colormap.DefaultPalette())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Rasterize(ctx, mustRect(t, 0, 1, 0, 1), 10, 10)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestPixelBuffer_Image(t *testing.T) {
	buf := NewPixelBuffer(2, 2)
	buf.Set(1, 0, colormap.RGB{R: 10, G: 20, B: 30})

	if buf.Complete() {
		t.Error("buffer should not be complete with one cell set")
	}
	if !buf.Assigned(1, 0) || buf.Assigned(0, 0) {
		t.Error("assignment tracking wrong")
	}

	img := buf.Image()
	got := img.RGBAAt(1, 0)
	if got.R != 10 || got.G != 20 || got.B != 30 || got.A != 255 {
		t.Errorf("image pixel = %v, want {10 20 30 255}", got)
	}
}

func BenchmarkRasterize(b *testing.B) {
	eq, _ := field.NewRegistry().Get("default")
	r := New(eq, colormap.DefaultPalette())
	rect, _ := grid.NewRect(-25, 25, -25, 25)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Rasterize(context.Background(), rect, 186, 186); err != nil {
			b.Fatal(err)
		}
	}
}
