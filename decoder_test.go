package huffpack

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"testing"
	"testing/iotest"
	"testing/quick"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func mustHex(s string) []byte {
	raw, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return raw
}

func TestDecompress_RoundTrip(t *testing.T) {
	inputs := testInputs()
	inputs["one-byte"] = []byte{0xff}
	inputs["single"] = bytes.Repeat([]byte{0x41}, 10000)
	inputs["all-symbols"] = func() []byte {
		out := make([]byte, 0, 3*NumSymbols)
		for i := 0; i < 3*NumSymbols; i++ {
			out = append(out, byte(i))
		}
		return out
	}()

	for name, data := range inputs {
		t.Run(name, func(t *testing.T) {
			out, err := Decompress(Compress(data))
			require.NoError(t, err)
			require.Equal(t, data, out)

			out, err = DecodeContainer(iotest.OneByteReader(bytes.NewReader(Compress(data))))
			require.NoError(t, err)
			require.Equal(t, data, out)
		})
	}
}

func TestDecompress_Empty(t *testing.T) {
	out, err := Decompress(Compress(nil))
	require.NoError(t, err)
	require.Empty(t, out)

	out, err = Decompress(Compress([]byte{}))
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestDecompress_Quick(t *testing.T) {
	f := func(data []byte) bool {
		out, err := Decompress(Compress(data))
		return err == nil && bytes.Equal(data, out)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestDecompress_TruncatedByOneByte(t *testing.T) {
	inputs := testInputs()
	inputs["empty"] = nil
	inputs["single"] = bytes.Repeat([]byte{0x41}, 10000)

	for name, data := range inputs {
		t.Run(name, func(t *testing.T) {
			container := Compress(data)
			truncated := container[:len(container)-1]

			out, err := Decompress(truncated)
			require.Nil(t, out)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrCorruptContainer), "%v", err)
			require.True(t, errors.Is(err, ErrTruncatedBitstream) || errors.Is(err, ErrMalformedContainer), "%v", err)

			out, err = DecodeContainer(bytes.NewReader(truncated))
			require.Nil(t, out)
			require.True(t, errors.Is(err, ErrCorruptContainer), "%v", err)
		})
	}
}

func TestDecompress_Corrupt(t *testing.T) {
	type testRow struct {
		name   string
		input  string
		expect error
	}

	testData := [...]testRow{
		{"no-data", "", ErrMalformedContainer},
		{"bad-magic", "4855465801000000000000000000", ErrMalformedContainer},
		{"bad-version", "4855465002000000000000000000", ErrMalformedContainer},
		{"short-length", "485546500100000000", ErrMalformedContainer},
		{"empty-tree-with-length", "4855465001000000000000000001", ErrMalformedContainer},
		{"tree-with-zero-length", "4855465001d0400000000000000000", ErrMalformedContainer},
		{"trailing-data", "4855465001d040000000000000000100" + "00", ErrMalformedContainer},
		{"unreachable", "4855465001d040000000000000000180", ErrUnreachableSymbol},
		{"length-exceeds-bits", "4855465001965b42df6c00000000000000644f80", ErrTruncatedBitstream},
		{"runs-out-of-bits", "4855465001965b42df6c00000000000000094f80", ErrTruncatedBitstream},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			out, err := Decompress(mustHex(row.input))
			require.Nil(t, out)
			require.True(t, errors.Is(err, row.expect), "expected %v, got %v", row.expect, err)

			out, err = DecodeContainer(bytes.NewReader(mustHex(row.input)))
			require.Nil(t, out)
			require.True(t, errors.Is(err, row.expect), "expected %v, got %v", row.expect, err)
		})
	}
}

// caterpillarContainer builds a container around the deepest tree over the
// given number of leaves.  Compress never produces one from realistic input.
func caterpillarContainer(t *testing.T, leaves int, payload []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	bw := NewBitWriter(&buf)
	for i := 0; i < len(Magic); i++ {
		require.NoError(t, bw.WriteSymbol(Symbol(Magic[i])))
	}
	require.NoError(t, bw.WriteSymbol(Version))
	writeCaterpillar(t, bw, leaves)
	require.NoError(t, bw.Align())
	require.NoError(t, bw.WriteUint64(uint64(len(payload))))
	for _, b := range payload {
		writeCaterpillarCode(t, bw, leaves, b)
	}
	require.NoError(t, bw.Close())
	return buf.Bytes()
}

func TestDecompress_DeepTree(t *testing.T) {
	type testRow struct {
		leaves  int
		payload []byte
	}

	testData := [...]testRow{
		{65, []byte{64, 0, 63, 64}},
		{71, []byte{0}},
		{NumSymbols, []byte{0, 255}},
		{NumSymbols, []byte{0, 255, 254, 128, 0, 1}},
	}
	for _, row := range testData {
		t.Run(fmt.Sprintf("leaves=%d_len=%d", row.leaves, len(row.payload)), func(t *testing.T) {
			container := caterpillarContainer(t, row.leaves, row.payload)

			out, err := Decompress(container)
			require.NoError(t, err)
			require.Equal(t, row.payload, out)

			out, err = DecodeContainer(bytes.NewReader(container))
			require.NoError(t, err)
			require.Equal(t, row.payload, out)

			hdr, err := ReadHeader(bytes.NewReader(container))
			require.NoError(t, err)
			require.Equal(t, row.leaves-1, hdr.Tree.Depth())

			_, err = NewCodeBook(hdr.Tree)
			if row.leaves-1 > MaxCodeSize {
				require.True(t, errors.Is(err, ErrCodeTooLong), "%v", err)
			} else {
				require.NoError(t, err)
			}

			// Cutting the last code byte must not decode silently.
			out, err = Decompress(container[:len(container)-1])
			require.Nil(t, out)
			require.True(t, errors.Is(err, ErrTruncatedBitstream), "%v", err)
		})
	}
}

func TestDecompress_ErrorOffset(t *testing.T) {
	_, err := Decompress(mustHex("4855465001d040000000000000000180"))

	var cce *CorruptContainerError
	require.True(t, errors.As(err, &cce))
	require.Equal(t, UnreachableSymbol, cce.Kind)
	require.Equal(t, uint64(15*8), cce.Offset)
	require.Equal(t, "huffpack: unreachable symbol at bit 120: no branch for bit 1", cce.Error())
}

func TestReadHeader(t *testing.T) {
	hdr, err := ReadHeader(bytes.NewReader(Compress(classicInput())))
	require.NoError(t, err)
	require.Equal(t, uint64(100), hdr.Length)
	require.Equal(t, 6, hdr.Tree.Len())

	hdr, err = ReadHeader(bytes.NewReader(Compress(nil)))
	require.NoError(t, err)
	require.Equal(t, uint64(0), hdr.Length)
	require.True(t, hdr.Tree.Empty())
}

func TestDecoder_Decode(t *testing.T) {
	tree := BuildTree(NewFrequencyTable(classicInput()))

	var d Decoder
	d.Init(tree)

	// "0" "1100" "111" "101"
	br := NewBitReader(bytes.NewReader([]byte{0x67, 0xa0}))
	for _, expect := range []Symbol{'f', 'a', 'e', 'd'} {
		symbol, err := d.Decode(br)
		require.NoError(t, err)
		require.Equal(t, expect, symbol)
	}
	require.Equal(t, uint64(11), br.Offset())
}
