package huffpack

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrequencyTable(t *testing.T) {
	ft := NewFrequencyTable([]byte("hello"))
	ft.Add([]byte("lo"))

	expectDump := strings.Join([]string{
		"FrequencyTable{\n",
		"\tLen() = 4\n",
		"\tTotal() = 7\n",
		"\tCount(101) = 1\n",
		"\tCount(104) = 1\n",
		"\tCount(108) = 3\n",
		"\tCount(111) = 2\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = ft.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestFrequencyTable_Empty(t *testing.T) {
	var ft FrequencyTable
	ft.Add(nil)

	require.Equal(t, 0, ft.Len())
	require.Equal(t, uint64(0), ft.Total())
	require.Empty(t, ft.Symbols())
}

func TestFrequencyTable_TotalIsSumOfCounts(t *testing.T) {
	data := make([]byte, 0, 4096)
	for i := 0; i < 4096; i++ {
		data = append(data, byte(i*i+i/7))
	}
	ft := NewFrequencyTable(data)

	var sum uint64
	for symbol := 0; symbol < NumSymbols; symbol++ {
		sum += ft.Count(Symbol(symbol))
	}
	require.Equal(t, ft.Total(), sum)
	require.Equal(t, uint64(len(data)), sum)
	require.Len(t, ft.Symbols(), ft.Len())
}
