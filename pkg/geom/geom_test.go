package geom

import "testing"

type world struct{}

func TestIndexArithmetic(t *testing.T) {
	a := Pt[world](3, 8)
	b := Pt[world](10, 12)

	if got := a.Add(Vec[world](7, 4)); got != b {
		t.Fatalf("Add = %v, want %v", got, b)
	}
	if got := b.Sub(a); got != Vec[world](7, 4) {
		t.Fatalf("Sub = %v, want <7, 4>", got)
	}
	if got := a.AddSize(Sz[world](2, 2)); got != Pt[world](5, 10) {
		t.Fatalf("AddSize = %v", got)
	}
	if !a.Less(b) || b.Less(a) {
		t.Fatal("Less must be componentwise")
	}
	if Pt[world](3, 20).LessEq(b) {
		t.Fatal("LessEq must require both axes")
	}
	if got := Pt[world](3, 20).Min(b); got != Pt[world](3, 12) {
		t.Fatalf("Min = %v", got)
	}
	if got := Pt[world](3, 20).Max(b); got != Pt[world](10, 20) {
		t.Fatalf("Max = %v", got)
	}
}

func TestClamp(t *testing.T) {
	size := Sz[world](48, 32)
	cases := []struct {
		in, want Index[world]
	}{
		{Pt[world](3, 8), Pt[world](3, 8)},
		{Pt[world](100, 8), Pt[world](48, 8)},
		{Pt[world](3, 100), Pt[world](3, 32)},
		{Pt[world](-4, -1), Pt[world](0, 0)},
		{Pt[world](48, 32), Pt[world](48, 32)},
	}
	for _, c := range cases {
		if got := c.in.Clamp(size); got != c.want {
			t.Errorf("Clamp(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestSizeContains(t *testing.T) {
	s := Sz[world](4, 3)
	if s.Area() != 12 {
		t.Fatalf("Area = %d", s.Area())
	}
	for _, p := range []Index[world]{Pt[world](0, 0), Pt[world](3, 2)} {
		if !s.Contains(p) {
			t.Errorf("expected %v inside %v", p, s)
		}
	}
	for _, p := range []Index[world]{Pt[world](4, 0), Pt[world](0, 3), Pt[world](-1, 0)} {
		if s.Contains(p) {
			t.Errorf("expected %v outside %v", p, s)
		}
	}
	if !Sz[world](0, 5).Empty() || s.Empty() {
		t.Fatal("Empty mismatch")
	}
}

func TestRect(t *testing.T) {
	r := R(Pt[world](10, 12), Pt[world](20, 24))
	if r.Size() != Sz[world](10, 12) {
		t.Fatalf("Size = %v", r.Size())
	}
	if !r.Contains(Pt[world](13, 17)) || r.Contains(Pt[world](20, 17)) {
		t.Fatal("Contains must be half-open")
	}
	if got := RectFromSize(Pt[world](10, 12), Sz[world](10, 12)); got != r {
		t.Fatalf("RectFromSize = %v", got)
	}

	other := R(Pt[world](15, 0), Pt[world](40, 14))
	if got := r.Intersect(other); got != R(Pt[world](15, 12), Pt[world](20, 14)) {
		t.Fatalf("Intersect = %v", got)
	}
	disjoint := r.Intersect(R(Pt[world](30, 30), Pt[world](40, 40)))
	if !disjoint.Empty() {
		t.Fatalf("disjoint intersection = %v, want empty", disjoint)
	}

	if got := r.Translate(Vec[world](-10, -12)); got != Sz[world](10, 12).Rect() {
		t.Fatalf("Translate = %v", got)
	}
	if got := R(Pt[world](5, 1), Pt[world](2, 4)).Canon(); got != R(Pt[world](2, 1), Pt[world](5, 4)) {
		t.Fatalf("Canon = %v", got)
	}
}

func TestStrings(t *testing.T) {
	if s := Pt[world](3, 8).String(); s != "(3, 8)" {
		t.Errorf("Index.String = %q", s)
	}
	if s := Sz[world](48, 32).String(); s != "48x32" {
		t.Errorf("Size.String = %q", s)
	}
	if s := R(Pt[world](0, 0), Pt[world](1, 2)).String(); s != "(0, 0)-(1, 2)" {
		t.Errorf("Rect.String = %q", s)
	}
}
