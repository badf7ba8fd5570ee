package modbusaccess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitTypeDecode(t *testing.T) {
	v, err := BitType.Decode([]byte{0x01})
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	v, err = BitType.Decode([]byte{0x00})
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	// only the first packed bit is the field's value
	v, err = BitType.Decode([]byte{0x02})
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestInt16TypeDecodesSignedValues(t *testing.T) {
	v, err := Int16Type.Decode([]byte{0x00, 0x64})
	require.NoError(t, err)
	assert.Equal(t, 100.0, v)

	// 0xFFC9 = -55 as a signed 16 bit value
	v, err = Int16Type.Decode([]byte{0xFF, 0xC9})
	require.NoError(t, err)
	assert.Equal(t, -55.0, v)
}

func TestScaledInt16TypeAppliesDecimalFactor(t *testing.T) {
	// 5002 with factor 2 reads as 50.02
	v, err := ScaledInt16Type(2).Decode([]byte{0x13, 0x8A})
	require.NoError(t, err)
	assert.InDelta(t, 50.02, v, 1e-9)

	// scaling also applies to negative values
	v, err = ScaledInt16Type(1).Decode([]byte{0xFF, 0xC9})
	require.NoError(t, err)
	assert.InDelta(t, -5.5, v, 1e-9)
}

func TestUint32TypeDecodesHighWordFirst(t *testing.T) {
	v, err := Uint32Type.Decode([]byte{0x00, 0x02, 0xCB, 0xA0})
	require.NoError(t, err)
	assert.Equal(t, 183200.0, v)
}

func TestDecodeRejectsWrongLength(t *testing.T) {
	_, err := Uint16Type.Decode([]byte{0x01})
	assert.Error(t, err)

	_, err = Uint32Type.Decode([]byte{0x01, 0x02})
	assert.Error(t, err)

	_, err = Type{}.Decode([]byte{0x01, 0x02})
	assert.Error(t, err)
}
