package huffpack

import (
	"bytes"
	"container/heap"
	"encoding"
	"fmt"
	"io"
	"math"

	"github.com/chronos-tachyon/assert"
)

// maxTreeDepth is the deepest any leaf can sit in a tree over NumSymbols
// symbols.
const maxTreeDepth = NumSymbols - 1

// Node is a node of a Huffman tree.  A leaf has neither child; an internal
// node has both, except for the root of a single-symbol tree, which has only
// a Left child.
type Node struct {
	Symbol Symbol
	Freq   uint64
	Left   *Node
	Right  *Node
}

// IsLeaf returns true iff n has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Child returns the child selected by bit: false selects Left, true selects
// Right.  The result may be nil.
func (n *Node) Child(bit bool) *Node {
	if bit {
		return n.Right
	}
	return n.Left
}

// Tree is a Huffman code tree.  The zero value is the empty tree.
type Tree struct {
	root   *Node
	leaves int
}

// BuildTree constructs the Huffman tree for the given frequencies.
//
// Nodes are merged lowest frequency first.  Ties go to the node created
// earliest: leaves count as created in ascending symbol order, before any
// internal node, and internal nodes in the order they are merged.  Of each
// merged pair, the first node popped becomes the left child.
//
// An empty table yields the empty tree.  A table with one symbol yields a
// root whose only child is the left one.
func BuildTree(ft *FrequencyTable) *Tree {
	symbols := ft.Symbols()
	numLeaves := len(symbols)

	switch numLeaves {
	case 0:
		return &Tree{}
	case 1:
		leaf := &Node{Symbol: symbols[0], Freq: ft.Count(symbols[0])}
		return &Tree{root: &Node{Freq: leaf.Freq, Left: leaf}, leaves: 1}
	}

	// Step 1: build a minheap of leaves.

	h := nodeHeap{make([]nodeAndSeq, 0, numLeaves)}
	for index, symbol := range symbols {
		leaf := &Node{Symbol: symbol, Freq: ft.Count(symbol)}
		h.list = append(h.list, nodeAndSeq{leaf, uint32(index)})
	}
	h.Init()

	// Step 2: pop two, push their parent, until one node remains.

	nextSeq := uint32(numLeaves)
	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeAndSeq)
		b := heap.Pop(&h).(nodeAndSeq)

		// Compute freqSum using saturating addition
		freqSum := a.node.Freq + b.node.Freq
		if freqSum < a.node.Freq {
			freqSum = math.MaxUint64
		}

		parent := &Node{Freq: freqSum, Left: a.node, Right: b.node}
		heap.Push(&h, nodeAndSeq{parent, nextSeq})
		nextSeq++
	}

	root := heap.Pop(&h).(nodeAndSeq).node
	assert.Assertf(nextSeq == uint32(2*numLeaves-1), "%d merges for %d leaves", nextSeq-uint32(numLeaves), numLeaves)
	return &Tree{root: root, leaves: numLeaves}
}

// Root returns the root node, or nil for the empty tree.
func (t *Tree) Root() *Node {
	return t.root
}

// Empty returns true iff the tree has no symbols.
func (t *Tree) Empty() bool {
	return t.root == nil
}

// Len returns the number of leaves.
func (t *Tree) Len() int {
	return t.leaves
}

// Depth returns the number of edges on the longest path from the root to a
// leaf, i.e. the longest code size.  The empty tree has depth 0.
func (t *Tree) Depth() int {
	_, maxSize := t.CodeSizes()
	return maxSize
}

// CodeSizes returns the shortest and longest root-to-leaf path lengths.  Unlike
// CodeBook.MinSize and CodeBook.MaxSize, it works for trees of any depth.
func (t *Tree) CodeSizes() (minSize, maxSize int) {
	if t.root == nil {
		return 0, 0
	}
	minSize = maxTreeDepth + 1
	var visit func(n *Node, depth int)
	visit = func(n *Node, depth int) {
		if n.IsLeaf() {
			if depth < minSize {
				minSize = depth
			}
			if depth > maxSize {
				maxSize = depth
			}
			return
		}
		for _, child := range [2]*Node{n.Left, n.Right} {
			if child != nil {
				visit(child, depth+1)
			}
		}
	}
	visit(t.root, 0)
	return minSize, maxSize
}

// Walk calls fn for every leaf, left to right, along with the path from the
// root to that leaf.  hc.Bits is only meaningful while hc.Size <= MaxCodeSize.
func (t *Tree) Walk(fn func(leaf *Node, hc Code)) {
	if t.root != nil {
		walk(t.root, Code{}, fn)
	}
}

func walk(n *Node, hc Code, fn func(*Node, Code)) {
	if n.IsLeaf() {
		fn(n, hc)
		return
	}
	if n.Left != nil {
		walk(n.Left, hc.Append(false), fn)
	}
	if n.Right != nil {
		walk(n.Right, hc.Append(true), fn)
	}
}

// WriteShape writes the tree-present flag followed by the pre-order shape of
// the tree.  It does not align.
func (t *Tree) WriteShape(bw *BitWriter) error {
	if err := bw.WriteBit(!t.Empty()); err != nil || t.Empty() {
		return err
	}
	root := t.root
	if root.Right == nil {
		root = root.Left
	}
	return writeShape(bw, root)
}

func writeShape(bw *BitWriter, n *Node) error {
	if n.IsLeaf() {
		if err := bw.WriteBit(true); err != nil {
			return err
		}
		return bw.WriteSymbol(n.Symbol)
	}
	if err := bw.WriteBit(false); err != nil {
		return err
	}
	if err := writeShape(bw, n.Left); err != nil {
		return err
	}
	return writeShape(bw, n.Right)
}

// ReadTree reads what WriteShape wrote.  The returned tree carries no
// frequencies.
func ReadTree(br *BitReader) (*Tree, error) {
	present, err := br.ReadBit()
	if err != nil {
		return nil, br.readError(err, MalformedContainer, "tree flag")
	}
	if !present {
		return &Tree{}, nil
	}

	sr := shapeReader{br: br}
	root, err := sr.readNode(0)
	if err != nil {
		return nil, err
	}
	if root.IsLeaf() {
		root = &Node{Left: root}
	}
	return &Tree{root: root, leaves: sr.leaves}, nil
}

type shapeReader struct {
	br     *BitReader
	seen   [NumSymbols]bool
	leaves int
}

// readNode rejects repeated symbols, which also caps the leaf count at
// NumSymbols.
func (sr *shapeReader) readNode(depth int) (*Node, error) {
	if depth > maxTreeDepth {
		return nil, corruptf(MalformedContainer, sr.br.Offset(), "tree deeper than %d", maxTreeDepth)
	}

	isLeaf, err := sr.br.ReadBit()
	if err != nil {
		return nil, sr.br.readError(err, MalformedContainer, "tree shape")
	}

	if isLeaf {
		symbol, err := sr.br.ReadSymbol()
		if err != nil {
			return nil, sr.br.readError(err, MalformedContainer, "tree leaf")
		}
		if sr.seen[symbol] {
			return nil, corruptf(MalformedContainer, sr.br.Offset(), "symbol %d appears twice", symbol)
		}
		sr.seen[symbol] = true
		sr.leaves++
		return &Node{Symbol: symbol}, nil
	}

	left, err := sr.readNode(depth + 1)
	if err != nil {
		return nil, err
	}
	right, err := sr.readNode(depth + 1)
	if err != nil {
		return nil, err
	}
	return &Node{Left: left, Right: right}, nil
}

// MarshalBinary returns the byte-aligned shape of the tree.
func (t *Tree) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	bw := NewBitWriter(&buf)
	if err := t.WriteShape(bw); err != nil {
		return nil, err
	}
	if err := bw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary replaces t with the tree whose shape is in data.
func (t *Tree) UnmarshalBinary(data []byte) error {
	br := NewBitReader(bytes.NewReader(data))
	tree, err := ReadTree(br)
	if err != nil {
		return err
	}
	br.Align()
	if eof, err := br.AtEOF(); err != nil || !eof {
		return corruptf(MalformedContainer, br.Offset(), "trailing data after tree shape")
	}
	*t = *tree
	return nil
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", t.leaves)
	if t.root != nil {
		dumpNode(&buf, t.root, 1)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func dumpNode(buf *bytes.Buffer, n *Node, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteByte('\t')
	}
	if n.IsLeaf() {
		fmt.Fprintf(buf, "Leaf(%d) freq=%d\n", n.Symbol, n.Freq)
		return
	}
	fmt.Fprintf(buf, "Internal freq=%d\n", n.Freq)
	for _, child := range [2]*Node{n.Left, n.Right} {
		if child != nil {
			dumpNode(buf, child, depth+1)
		}
	}
}

var (
	_ encoding.BinaryMarshaler   = (*Tree)(nil)
	_ encoding.BinaryUnmarshaler = (*Tree)(nil)
)

// type nodeAndSeq + type nodeHeap {{{

type nodeAndSeq struct {
	node *Node
	seq  uint32
}

type nodeHeap struct {
	list []nodeAndSeq
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Freq != b.node.Freq {
		return a.node.Freq < b.node.Freq
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndSeq))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nodeAndSeq{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
