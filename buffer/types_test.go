package buffer

import "testing"

func TestComparePos(t *testing.T) {
	t.Run("row", func(t *testing.T) {
		if got := ComparePos(Pos{Row: 0, Col: 0}, Pos{Row: 1, Col: 0}); got >= 0 {
			t.Fatalf("expected < 0, got %d", got)
		}
		if got := ComparePos(Pos{Row: 2, Col: 0}, Pos{Row: 1, Col: 999}); got <= 0 {
			t.Fatalf("expected > 0, got %d", got)
		}
	})

	t.Run("col", func(t *testing.T) {
		if got := ComparePos(Pos{Row: 1, Col: 0}, Pos{Row: 1, Col: 1}); got >= 0 {
			t.Fatalf("expected < 0, got %d", got)
		}
		if got := ComparePos(Pos{Row: 1, Col: 2}, Pos{Row: 1, Col: 1}); got <= 0 {
			t.Fatalf("expected > 0, got %d", got)
		}
	})

	t.Run("equal", func(t *testing.T) {
		if got := ComparePos(Pos{Row: 3, Col: 4}, Pos{Row: 3, Col: 4}); got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}
	})
}

func TestNormalizeSelection(t *testing.T) {
	s := NormalizeSelection(Selection{Start: 9, End: 2})
	if s != (Selection{Start: 2, End: 9}) {
		t.Fatalf("unexpected selection: %#v", s)
	}
	if s2 := NormalizeSelection(s); s2 != s {
		t.Fatalf("expected idempotent normalize: %#v != %#v", s2, s)
	}
	if s.Len() != 7 || s.IsEmpty() {
		t.Fatalf("len=%d empty=%v, want 7 false", s.Len(), s.IsEmpty())
	}
	if !Caret(3).IsEmpty() {
		t.Fatalf("caret should be empty")
	}
}

func TestClampSelection(t *testing.T) {
	cases := []struct {
		in   Selection
		want Selection
	}{
		{in: Selection{Start: -1, End: -1}, want: Selection{Start: 0, End: 0}},
		{in: Selection{Start: 999, End: 999}, want: Selection{Start: 5, End: 5}},
		{in: Selection{Start: 7, End: 1}, want: Selection{Start: 1, End: 5}},
		{in: Selection{Start: 1, End: 2}, want: Selection{Start: 1, End: 2}},
	}

	for _, tc := range cases {
		if got := ClampSelection(tc.in, 5); got != tc.want {
			t.Fatalf("ClampSelection(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
