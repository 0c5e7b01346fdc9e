package numfmt

import (
	"bytes"
	"testing"

	"github.com/tinywasm/numfmt/internal/testutils/assert"
	"github.com/tinywasm/numfmt/internal/testutils/require"
)

func TestBufferZeroValue(t *testing.T) {
	var b Buffer
	assert.True(t, b.IsEmpty())
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, "", b.String())
	assert.Empty(t, b.Bytes())
	assert.Equal(t, 1550, b.Capacity())
	assert.Equal(t, Capacity, New().Capacity())
}

func TestBufferReplacesContent(t *testing.T) {
	b := New()
	n := WriteInt(b, int64(-1234567), EN)
	assert.Equal(t, 10, n)
	assert.Equal(t, "-1,234,567", b.String())
	assert.Equal(t, []byte("-1,234,567"), b.Bytes())
	assert.False(t, b.IsEmpty())

	n = WriteUint(b, uint8(7), EN)
	assert.Equal(t, 1, n)
	assert.Equal(t, "7", b.String())
	assert.Equal(t, 1, b.Len())
}

func TestBufferRepeatedWritesAreStable(t *testing.T) {
	var b Buffer
	b.WriteFloat64(-1234.5678, HI)
	first := string(b.Bytes())
	for range 3 {
		WriteInt(&b, int64(-9876543210), FR)
		b.WriteFloat64(-1234.5678, HI)
		assert.Equal(t, first, b.String())
	}
}

func TestBufferWriteTo(t *testing.T) {
	var b Buffer
	var out bytes.Buffer
	WriteUint(&b, uint32(1234567), DE)
	n, err := b.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, int64(9), n)
	assert.Equal(t, "1.234.567", out.String())

	b.WriteFloat64(0.5, DE)
	_, err = b.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, "1.234.5670,5", out.String())
}

func TestBufferStringAliases(t *testing.T) {
	var b Buffer
	WriteUint(&b, uint16(12345), EnUSPOSIX)
	s := b.String()
	copied := string(b.Bytes())
	WriteUint(&b, uint16(54321), EnUSPOSIX)
	assert.Equal(t, "54321", s)
	assert.Equal(t, "12345", copied)
}
