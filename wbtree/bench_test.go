package wbtree

import (
	"math/rand"
	"testing"
)

func benchTree(b *testing.B, n int) *Tree[int, int] {
	b.Helper()
	tree, err := New[int, int](Config[int]{Compare: intCompare})
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	r := rand.New(rand.NewSource(1))
	for i := 0; i < n; i++ {
		tree = tree.Insert(r.Int(), i)
	}
	return tree
}

func BenchmarkInsert(b *testing.B) {
	tree := benchTree(b, 1024)
	r := rand.New(rand.NewSource(2))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.Insert(r.Int(), i)
	}
}

func BenchmarkLookup(b *testing.B) {
	tree := benchTree(b, 1024)
	r := rand.New(rand.NewSource(2))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tree.Lookup(r.Int())
	}
}

func BenchmarkDelete(b *testing.B) {
	tree := benchTree(b, 1024)
	r := rand.New(rand.NewSource(2))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.Delete(r.Int())
	}
}

func BenchmarkUnion(b *testing.B) {
	left := benchTree(b, 1024)
	right := benchTree(b, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = left.Union(right, nil)
	}
}
