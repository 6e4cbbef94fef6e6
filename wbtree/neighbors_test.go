package wbtree

import "testing"

func newSampleTree(t *testing.T) *Tree[int, string] {
	t.Helper()
	tree := newIntTree(t)
	for _, key := range []int{10, 20, 30, 40, 50} {
		tree = tree.Insert(key, "v")
	}
	return tree
}

func TestMinMax(t *testing.T) {
	tree := newSampleTree(t)
	if k, _, ok := tree.Min(); !ok || k != 10 {
		t.Fatalf("Min = %d/%v, want 10", k, ok)
	}
	if k, _, ok := tree.Max(); !ok || k != 50 {
		t.Fatalf("Max = %d/%v, want 50", k, ok)
	}
	empty := newIntTree(t)
	if _, _, ok := empty.Min(); ok {
		t.Fatalf("Min on empty tree should be absent")
	}
	if _, _, ok := empty.Max(); ok {
		t.Fatalf("Max on empty tree should be absent")
	}
}

func TestSearchLT(t *testing.T) {
	tree := newSampleTree(t)
	cases := []struct {
		probe  int
		want   int
		wantOK bool
	}{
		{5, 0, false},
		{10, 0, false},
		{11, 10, true},
		{30, 20, true},
		{31, 30, true},
		{99, 50, true},
	}
	for _, c := range cases {
		k, _, ok := tree.SearchLT(c.probe)
		if ok != c.wantOK || (ok && k != c.want) {
			t.Fatalf("SearchLT(%d) = %d/%v, want %d/%v", c.probe, k, ok, c.want, c.wantOK)
		}
	}
}

func TestSearchLE(t *testing.T) {
	tree := newSampleTree(t)
	cases := []struct {
		probe  int
		want   int
		wantOK bool
	}{
		{5, 0, false},
		{10, 10, true},
		{11, 10, true},
		{30, 30, true},
		{99, 50, true},
	}
	for _, c := range cases {
		k, _, ok := tree.SearchLE(c.probe)
		if ok != c.wantOK || (ok && k != c.want) {
			t.Fatalf("SearchLE(%d) = %d/%v, want %d/%v", c.probe, k, ok, c.want, c.wantOK)
		}
	}
}

func TestSearchGT(t *testing.T) {
	tree := newSampleTree(t)
	cases := []struct {
		probe  int
		want   int
		wantOK bool
	}{
		{5, 10, true},
		{10, 20, true},
		{49, 50, true},
		{50, 0, false},
		{99, 0, false},
	}
	for _, c := range cases {
		k, _, ok := tree.SearchGT(c.probe)
		if ok != c.wantOK || (ok && k != c.want) {
			t.Fatalf("SearchGT(%d) = %d/%v, want %d/%v", c.probe, k, ok, c.want, c.wantOK)
		}
	}
}

func TestSearchGE(t *testing.T) {
	tree := newSampleTree(t)
	cases := []struct {
		probe  int
		want   int
		wantOK bool
	}{
		{5, 10, true},
		{10, 10, true},
		{11, 20, true},
		{50, 50, true},
		{51, 0, false},
	}
	for _, c := range cases {
		k, _, ok := tree.SearchGE(c.probe)
		if ok != c.wantOK || (ok && k != c.want) {
			t.Fatalf("SearchGE(%d) = %d/%v, want %d/%v", c.probe, k, ok, c.want, c.wantOK)
		}
	}
}
