// Package huffpack implements a lossless byte-stream compressor built on
// Huffman codes.  Compress and Decompress are the core entry points; Encoder,
// DecodeContainer and ReadHeader expose the same format over io.Writer and
// io.Reader.
//
// Container format (all bit fields are packed most significant bit first):
//
//     "HUFP"        4-byte magic
//     0x01          version
//     tree shape    1 bit tree-present flag, then a pre-order walk emitting
//                   1 + 8-bit symbol per leaf and 0 per internal node,
//                   zero-padded to a byte boundary
//     length        original byte count, uint64 big-endian
//     codes         one code per input byte, zero-padded to a byte boundary
//
// Branch convention: 0 is the left child, 1 is the right child.  A tree with a
// single symbol is stored as that one leaf; both sides treat it as the left
// child of an implicit root, so the symbol's code is "0".
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffpack
