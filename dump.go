package ordmap

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Dump writes a line-per-entry listing of the map to w, keys colorized, in
// ascending key order (for debugging purposes).
func (m Map[K, V]) Dump(w io.Writer) {
	header := color.New(color.Faint)
	keystyle := color.New(color.FgCyan, color.Bold)
	header.Fprintf(w, "ordered map with %d entries\n", m.Size())
	m.tree.ForEach(func(key K, value V) bool {
		keystyle.Fprintf(w, "  %v", key)
		fmt.Fprintf(w, " = %v\n", value)
		return true
	})
}
