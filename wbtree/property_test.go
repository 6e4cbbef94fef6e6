package wbtree

import (
	"math/rand"
	"sort"
	"strconv"
	"testing"
)

// How to run:
//   - Deterministic randomized property test:
//     go test ./wbtree -run TestRandomizedInstructions -count=1
//   - Fuzz test for this file:
//     go test ./wbtree -run '^$' -fuzz FuzzRandomizedInstructions -fuzztime=10s
//   - Replay a specific saved failing input:
//     go test ./wbtree -run 'FuzzRandomizedInstructions/<id>'

func assertTreeMatchesModel(t *testing.T, tree *Tree[int, int], model map[int]int) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
	if tree.Len() != len(model) {
		t.Fatalf("size mismatch: got=%d want=%d", tree.Len(), len(model))
	}
	keys := make([]int, 0, len(model))
	for key := range model {
		keys = append(keys, key)
	}
	sort.Ints(keys)
	i := 0
	tree.ForEach(func(key, value int) bool {
		if i >= len(keys) {
			t.Fatalf("walk yields more entries than the model holds")
		}
		if key != keys[i] {
			t.Fatalf("walk out of order at %d: got key %d, want %d", i, key, keys[i])
		}
		if value != model[key] {
			t.Fatalf("value mismatch for key %d: got=%d want=%d", key, value, model[key])
		}
		i++
		return true
	})
	if i != len(keys) {
		t.Fatalf("walk yields %d entries, model holds %d", i, len(keys))
	}
}

func runRandomInstructionSequence(t *testing.T, seed uint64, steps int) {
	t.Helper()
	r := rand.New(rand.NewSource(int64(seed)))
	tree, err := New[int, int](Config[int]{Compare: intCompare})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	model := make(map[int]int)
	const keyspace = 64 // small keyspace to force collisions and deletes of present keys

	for i := 0; i < steps; i++ {
		switch r.Intn(5) {
		case 0, 1: // insert
			key := r.Intn(keyspace)
			value := r.Int()
			tree = tree.Insert(key, value)
			model[key] = value
		case 2: // delete
			key := r.Intn(keyspace)
			tree = tree.Delete(key)
			delete(model, key)
		case 3: // pop
			key := r.Intn(keyspace)
			value, ok, rest := tree.Pop(key)
			wantValue, wantOK := model[key]
			if ok != wantOK || (ok && value != wantValue) {
				t.Fatalf("Pop(%d) = %d/%v, model says %d/%v", key, value, ok, wantValue, wantOK)
			}
			tree = rest
			delete(model, key)
		case 4: // union with a small random map, receiver wins collisions
			other, otherErr := New[int, int](Config[int]{Compare: intCompare})
			if otherErr != nil {
				t.Fatalf("New failed: %v", otherErr)
			}
			n := r.Intn(6)
			otherModel := make(map[int]int, n)
			for j := 0; j < n; j++ {
				key := r.Intn(keyspace)
				value := r.Int()
				other = other.Insert(key, value)
				otherModel[key] = value
			}
			for key, value := range otherModel {
				if _, exists := model[key]; !exists {
					model[key] = value
				}
			}
			tree = tree.Union(other, nil)
		}
		assertTreeMatchesModel(t, tree, model)
	}
}

func TestRandomizedInstructions(t *testing.T) {
	seeds := []uint64{1, 2, 3, 7, 42, 99, 31337, 123456789}
	for _, seed := range seeds {
		t.Run("seed_"+strconv.FormatUint(seed, 10), func(t *testing.T) {
			runRandomInstructionSequence(t, seed, 150)
		})
	}
}

// TestLongInstructionSequence applies 1000 random insert/delete instructions
// from empty and validates the full invariant set on the result.
func TestLongInstructionSequence(t *testing.T) {
	r := rand.New(rand.NewSource(20240817))
	tree, err := New[int, int](Config[int]{Compare: intCompare})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	model := make(map[int]int)
	for i := 0; i < 1000; i++ {
		key := r.Intn(200)
		if r.Intn(3) == 0 {
			tree = tree.Delete(key)
			delete(model, key)
		} else {
			tree = tree.Insert(key, i)
			model[key] = i
		}
	}
	assertTreeMatchesModel(t, tree, model)
}

func FuzzRandomizedInstructions(f *testing.F) {
	f.Add(uint64(1), uint8(32))
	f.Add(uint64(7), uint8(64))
	f.Add(uint64(42), uint8(96))
	f.Fuzz(func(t *testing.T, seed uint64, steps uint8) {
		runRandomInstructionSequence(t, seed, int(steps%120)+1)
	})
}
