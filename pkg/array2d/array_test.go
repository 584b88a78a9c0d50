package array2d

import (
	"errors"
	"slices"
	"testing"

	"mad-grid/pkg/geom"
)

type space struct{}

func pt(x, y int) geom.Index[space] { return geom.Pt[space](x, y) }
func sz(w, h int) geom.Size[space]  { return geom.Sz[space](w, h) }

func expectPanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic wrapping %v", target)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("panic %v does not wrap %v", r, target)
		}
	}()
	fn()
}

// numbered returns a w×h array where cell (x, y) holds y*100 + x.
func numbered(w, h int) *Array2D[int, space] {
	return NewFunc(sz(w, h), func(i geom.Index[space]) int { return i.Y*100 + i.X })
}

func TestNewFillsEveryCell(t *testing.T) {
	for _, s := range []geom.Size[space]{sz(0, 0), sz(1, 1), sz(5, 0), sz(0, 3), sz(7, 3), sz(48, 32)} {
		a := New(s, 9)
		if a.Size() != s {
			t.Fatalf("Size = %v, want %v", a.Size(), s)
		}
		seen := 0
		for i := range a.Indices() {
			v, ok := a.Get(i)
			if !ok || v != 9 {
				t.Fatalf("%v: Get(%v) = %d, %v", s, i, v, ok)
			}
			seen++
		}
		if seen != s.Area() {
			t.Fatalf("%v: visited %d indices, want %d", s, seen, s.Area())
		}
	}
}

func TestNewFuncRowMajorOrder(t *testing.T) {
	var order []geom.Index[space]
	a := NewFunc(sz(3, 2), func(i geom.Index[space]) int {
		order = append(order, i)
		return len(order)
	})
	want := []geom.Index[space]{pt(0, 0), pt(1, 0), pt(2, 0), pt(0, 1), pt(1, 1), pt(2, 1)}
	if !slices.Equal(order, want) {
		t.Fatalf("generator order = %v, want %v", order, want)
	}
	if v := a.At(pt(2, 1)); v != 6 {
		t.Fatalf("At(2,1) = %d, want 6", v)
	}
}

func TestNegativeSizePanics(t *testing.T) {
	expectPanic(t, ErrNegativeSize, func() { New(sz(-1, 4), 0) })
	expectPanic(t, ErrNegativeSize, func() {
		NewFunc(sz(4, -1), func(geom.Index[space]) int { return 0 })
	})
}

func TestFromSlice(t *testing.T) {
	a, err := FromSlice(sz(3, 2), []int{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	if v := a.At(pt(0, 1)); v != 4 {
		t.Fatalf("At(0,1) = %d, want 4", v)
	}
	if _, err := FromSlice(sz(3, 3), []int{1, 2}); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("expected ErrSizeMismatch, got %v", err)
	}
	if _, err := FromSlice(sz(-3, 3), []int{}); !errors.Is(err, ErrNegativeSize) {
		t.Fatalf("expected ErrNegativeSize, got %v", err)
	}
}

func TestOutOfBounds(t *testing.T) {
	a := New(sz(4, 3), 1)
	for _, i := range []geom.Index[space]{pt(4, 0), pt(0, 3), pt(4, 3), pt(-1, 0), pt(0, -1), pt(100, 100)} {
		if _, ok := a.Get(i); ok {
			t.Errorf("Get(%v) should be absent", i)
		}
		if p := a.GetMut(i); p != nil {
			t.Errorf("GetMut(%v) should be nil", i)
		}
		if a.Set(i, 5) {
			t.Errorf("Set(%v) should fail", i)
		}
		expectPanic(t, ErrOutOfBounds, func() { a.At(i) })
		expectPanic(t, ErrOutOfBounds, func() { a.SetAt(i, 5) })
	}
	for _, y := range []int{-1, 3, 10} {
		if _, ok := a.Line(y); ok {
			t.Errorf("Line(%d) should be absent", y)
		}
		if _, ok := a.LineMut(y); ok {
			t.Errorf("LineMut(%d) should be absent", y)
		}
	}
}

func TestWriteThenRead(t *testing.T) {
	a := New(sz(6, 4), 0)
	for i := range a.Indices() {
		v := i.X*10 + i.Y
		if !a.Set(i, v) {
			t.Fatalf("Set(%v) failed", i)
		}
		if got := a.At(i); got != v {
			t.Fatalf("At(%v) = %d after Set(%d)", i, got, v)
		}
	}
	*a.GetMut(pt(5, 3)) = -1
	if got, _ := a.Get(pt(5, 3)); got != -1 {
		t.Fatalf("GetMut write not visible, got %d", got)
	}
}

func TestLines(t *testing.T) {
	a := New(sz(48, 32), 0)
	rows := 0
	for row := range a.Lines() {
		if len(row) != 48 {
			t.Fatalf("row %d has %d cells", rows, len(row))
		}
		rows++
	}
	if rows != 32 {
		t.Fatalf("Lines yielded %d rows, want 32", rows)
	}

	// Each call starts over.
	for range 2 {
		n := 0
		for range a.Lines() {
			n++
			if n == 3 {
				break
			}
		}
		if n != 3 {
			t.Fatalf("early break yielded %d rows", n)
		}
	}
}

func TestCroppedLinesStayInsideRow(t *testing.T) {
	a := numbered(10, 6)
	v := a.Crop(Range(pt(2, 1), pt(5, 4)))
	if v.Stride() != 10 {
		t.Fatalf("Stride = %d, want 10", v.Stride())
	}
	y := 0
	for row := range v.Lines() {
		want := []int{(y+1)*100 + 2, (y+1)*100 + 3, (y+1)*100 + 4}
		if !slices.Equal(row, want) {
			t.Fatalf("row %d = %v, want %v", y, row, want)
		}
		if cap(row) != len(row) {
			t.Fatalf("row %d capacity %d leaks past width %d", y, cap(row), len(row))
		}
		y++
	}
	if y != 3 {
		t.Fatalf("yielded %d rows, want 3", y)
	}
}

func TestScenarioFullViews(t *testing.T) {
	a := New(sz(48, 32), 0)
	m := a.AsViewMut()
	m.SetAt(pt(3, 8), 123)
	s := a.AsView()
	if got := s.At(pt(3, 8)); got != 123 {
		t.Fatalf("read-only view sees %d, want 123", got)
	}
	n := 0
	var first []int
	for row := range a.Lines() {
		if first == nil {
			first = row
		}
		n++
	}
	if n != 32 || len(first) != 48 {
		t.Fatalf("lines = %d, first len = %d", n, len(first))
	}
}

func TestScenarioMutableCrop(t *testing.T) {
	a := New(sz(48, 32), 0)
	c := a.CropMut(Range(pt(10, 12), pt(20, 24)))
	if c.Size() != sz(10, 12) {
		t.Fatalf("crop size = %v, want 10x12", c.Size())
	}
	c.SetAt(pt(3, 5), 1000)
	small := c.Crop(To(pt(3, 3)))
	if small.Size() != sz(3, 3) {
		t.Fatalf("..(3,3) crop size = %v, want 3x3", small.Size())
	}
	if got := a.At(pt(13, 17)); got != 1000 {
		t.Fatalf("root sees %d at (13,17), want 1000", got)
	}
}

func TestCropToIgnoresLargerParent(t *testing.T) {
	a := New(sz(48, 32), 0)
	v := a.Crop(Range(pt(5, 5), pt(40, 30)))
	if got := v.Crop(To(pt(3, 3))).Size(); got != sz(3, 3) {
		t.Fatalf("size = %v, want 3x3", got)
	}
}

func TestCropClamps(t *testing.T) {
	a := numbered(8, 6)
	cases := []struct {
		name string
		r    IndexRange[space]
		want geom.Size[space]
	}{
		{"end past both edges", Range(pt(3, 2), pt(50, 50)), sz(5, 4)},
		{"end past width", Range(pt(3, 2), pt(50, 4)), sz(5, 2)},
		{"start past edge", Range(pt(9, 9), pt(20, 20)), sz(0, 0)},
		{"negative start", Range(pt(-3, -3), pt(2, 2)), sz(2, 2)},
		{"inclusive past edge", RangeInclusive(pt(6, 4), pt(9, 9)), sz(2, 2)},
		{"from", From(pt(6, 1)), sz(2, 5)},
		{"full", Full[space](), sz(8, 6)},
		{"rect literal", geom.R(pt(1, 1), pt(100, 3)), sz(7, 2)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := a.Crop(c.r)
			if v.Size() != c.want {
				t.Fatalf("size = %v, want %v", v.Size(), c.want)
			}
			m := a.CropMut(c.r)
			if m.Size() != c.want {
				t.Fatalf("mutable size = %v, want %v", m.Size(), c.want)
			}
		})
	}

	v := a.Crop(Range(pt(3, 2), pt(50, 50)))
	if got := v.At(pt(4, 3)); got != 5*100+7 {
		t.Fatalf("clamped crop corner = %d, want 507", got)
	}
}

func TestInvertedRangePanics(t *testing.T) {
	a := New(sz(8, 6), 0)
	expectPanic(t, ErrInvertedRange, func() { a.Crop(Range(pt(5, 1), pt(2, 4))) })
	expectPanic(t, ErrInvertedRange, func() { a.CropMut(geom.R(pt(1, 5), pt(4, 2))) })
}

func TestZeroAreaViews(t *testing.T) {
	a := numbered(8, 6)
	tall := a.Crop(Range(pt(3, 1), pt(3, 5)))
	if tall.Size() != sz(0, 4) {
		t.Fatalf("size = %v", tall.Size())
	}
	rows := 0
	for row := range tall.Lines() {
		if len(row) != 0 {
			t.Fatalf("zero-width row has %d cells", len(row))
		}
		rows++
	}
	if rows != 4 {
		t.Fatalf("zero-width view yielded %d rows, want 4", rows)
	}
	if _, ok := tall.Get(pt(0, 0)); ok {
		t.Fatal("zero-width view must have no cells")
	}

	flat := a.Crop(Range(pt(8, 6), pt(8, 6)))
	for range flat.Lines() {
		t.Fatal("empty view must yield no rows")
	}
	if flat.Crop(Full[space]()).Size() != sz(0, 0) {
		t.Fatal("crop of empty view must stay empty")
	}
}

// Cropping R1 then R2 must see the same cells as cropping R2 translated into
// the root's coordinates and intersected with R1.
func TestCropComposition(t *testing.T) {
	a := numbered(7, 5)
	var rects []geom.Rect[space]
	for y0 := 0; y0 <= 5; y0 += 2 {
		for x0 := 0; x0 <= 7; x0 += 2 {
			for y1 := y0; y1 <= 7; y1 += 3 {
				for x1 := x0; x1 <= 9; x1 += 3 {
					rects = append(rects, geom.R(pt(x0, y0), pt(x1, y1)))
				}
			}
		}
	}
	for _, r1 := range rects {
		outer := a.Crop(r1)
		clamped := r1.Intersect(a.IndexRange())
		for _, r2 := range rects {
			nested := outer.Crop(r2)
			inner := r2.Intersect(outer.IndexRange())
			direct := a.Crop(inner.Translate(clamped.Min.Sub(geom.Origin[space]())))
			if !Equal[int, space](nested, direct) {
				t.Fatalf("crop(%v).crop(%v) = %v, direct = %v", r1, r2, nested, direct)
			}
		}
	}
}

func TestMutationSharedWithRoot(t *testing.T) {
	a := New(sz(12, 9), 0)
	m := a.CropMut(Range(pt(4, 3), pt(10, 8)))
	inner := m.CropMut(From(pt(1, 2)))
	inner.SetAt(pt(0, 0), 42)
	row, _ := inner.LineMut(1)
	row[2] = 7
	if got := a.At(pt(5, 5)); got != 42 {
		t.Fatalf("root (5,5) = %d, want 42", got)
	}
	if got := a.At(pt(7, 6)); got != 7 {
		t.Fatalf("root (7,6) = %d, want 7", got)
	}

	a.SetAt(pt(9, 7), 99)
	if got := a.CropMut(Range(pt(4, 3), pt(10, 8))).At(pt(5, 4)); got != 99 {
		t.Fatalf("root write not visible through crop, got %d", got)
	}
}

func TestClone(t *testing.T) {
	a := numbered(4, 4)
	b := a.Clone()
	b.SetAt(pt(1, 1), -5)
	if a.At(pt(1, 1)) != 101 {
		t.Fatal("Clone must not share the buffer")
	}
	if !Equal[int, space](a.Crop(To(pt(1, 4))), b.Crop(To(pt(1, 4)))) {
		t.Fatal("Clone must copy contents")
	}
}

func TestString(t *testing.T) {
	a := numbered(2, 2)
	want := "Array2D[2x2]\n[0 1]\n[100 101]"
	if s := a.String(); s != want {
		t.Fatalf("String = %q, want %q", s, want)
	}
	if s := a.Crop(From(pt(1, 1))).String(); s != "View[1x1]\n[101]" {
		t.Fatalf("View.String = %q", s)
	}
}
