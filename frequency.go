package huffpack

import (
	"bytes"
	"fmt"
	"io"
)

// FrequencyTable counts the occurrences of each Symbol in some input.
//
// The zero value is an empty table, ready to use.
type FrequencyTable struct {
	counts   [NumSymbols]uint64
	total    uint64
	distinct int
}

// NewFrequencyTable counts the bytes of data in one pass.
func NewFrequencyTable(data []byte) *FrequencyTable {
	ft := new(FrequencyTable)
	ft.Add(data)
	return ft
}

// Add counts the bytes of data.  It may be called repeatedly to tally input
// that arrives in chunks.
func (ft *FrequencyTable) Add(data []byte) {
	for _, b := range data {
		if ft.counts[b] == 0 {
			ft.distinct++
		}
		ft.counts[b]++
	}
	ft.total += uint64(len(data))
}

// Count returns the number of occurrences of symbol.
func (ft *FrequencyTable) Count(symbol Symbol) uint64 {
	return ft.counts[symbol]
}

// Len returns the number of distinct symbols seen.
func (ft *FrequencyTable) Len() int {
	return ft.distinct
}

// Total returns the number of bytes counted, i.e. the sum of all counts.
func (ft *FrequencyTable) Total() uint64 {
	return ft.total
}

// Symbols returns the symbols with non-zero counts in ascending order.  This
// is the order BuildTree uses to break frequency ties.
func (ft *FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, 0, ft.distinct)
	for i, count := range ft.counts {
		if count != 0 {
			out = append(out, Symbol(i))
		}
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (ft *FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", ft.distinct)
	fmt.Fprintf(&buf, "\tTotal() = %d\n", ft.total)
	for _, symbol := range ft.Symbols() {
		fmt.Fprintf(&buf, "\tCount(%d) = %d\n", symbol, ft.counts[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
