package huffpack

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Encoder writes Huffman containers.
type Encoder struct {
	freqs *FrequencyTable
	tree  *Tree
	book  *CodeBook
}

// Init initializes this Encoder for input with the given frequencies, building
// the Huffman tree and deriving its codes.
func (e *Encoder) Init(freqs *FrequencyTable) {
	tree := BuildTree(freqs)
	book, err := NewCodeBook(tree)
	assert.Assertf(err == nil, "%v", err)
	*e = Encoder{
		freqs: freqs,
		tree:  tree,
		book:  book,
	}
}

// Tree returns the Huffman tree built by Init.
func (e *Encoder) Tree() *Tree {
	return e.tree
}

// CodeBook returns the codes derived by Init.
func (e *Encoder) CodeBook() *CodeBook {
	return e.book
}

// Encode writes the container for data to w and returns the number of bytes
// written.  On error the count covers only bytes w accepted.  data must have
// the frequencies passed to Init.
func (e *Encoder) Encode(w io.Writer, data []byte) (int64, error) {
	assert.Assertf(e.tree != nil, "Encoder.Encode called before Init")
	assert.Assertf(uint64(len(data)) == e.freqs.Total(), "len(data) %d != frequency total %d", len(data), e.freqs.Total())

	cw := &countingWriter{w: w}
	bw := NewBitWriter(cw)
	written := func() int64 {
		return cw.n
	}

	if err := writeHeader(bw, e.tree, uint64(len(data))); err != nil {
		return written(), err
	}
	for _, b := range data {
		hc := e.book.Encode(Symbol(b))
		assert.Assertf(hc.Size != 0, "symbol %d not in tree", b)
		if err := bw.WriteCode(hc); err != nil {
			return written(), err
		}
	}
	if err := bw.Close(); err != nil {
		return written(), err
	}
	return written(), nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", e.book.Len())
	fmt.Fprintf(&buf, "\tTotal() = %d\n", e.freqs.Total())
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.book.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.book.MaxSize())
	for _, symbol := range e.freqs.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, e.book.Encode(symbol))
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Compress returns the container for data.
func Compress(data []byte) []byte {
	var e Encoder
	e.Init(NewFrequencyTable(data))

	var buf bytes.Buffer
	_, err := e.Encode(&buf, data)
	assert.Assertf(err == nil, "write to bytes.Buffer failed: %v", err)
	return buf.Bytes()
}
