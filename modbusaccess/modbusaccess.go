package modbusaccess

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Table identifies the Modbus data table that a field lives in.
type Table int

const (
	DiscreteInput Table = iota
	InputRegister
	HoldingRegister
	Coil
)

func (t Table) String() string {
	switch t {
	case DiscreteInput:
		return "discrete input"
	case InputRegister:
		return "input register"
	case HoldingRegister:
		return "holding register"
	case Coil:
		return "coil"
	}
	return fmt.Sprintf("table(%d)", int(t))
}

// IsBits reports whether the table holds single-bit values.
func (t Table) IsBits() bool {
	return t == DiscreteInput || t == Coil
}

// Type represents the different types of data that can be queried over modbus.
type Type struct {
	name          string                        // the name of the data type
	dataLength    uint16                        // the number of underlying bytes to represent the data type
	fromBytesFunc func([]byte) (float64, error) // function to convert the raw bytes to a numeric value
}

// Name returns the name of the data type.
func (t Type) Name() string {
	return t.name
}

// DataLength returns the number of bytes the type occupies on the wire.
func (t Type) DataLength() uint16 {
	return t.dataLength
}

// Decode converts the raw bytes read from the device into a numeric value.
// The byte slice must hold exactly the bytes the type occupies.
func (t Type) Decode(b []byte) (float64, error) {
	if t.fromBytesFunc == nil {
		return math.NaN(), fmt.Errorf("data type '%s' has no decoder", t.name)
	}
	if len(b) != int(t.dataLength) {
		return math.NaN(), fmt.Errorf("data type '%s' wants %d bytes, got %d", t.name, t.dataLength, len(b))
	}
	return t.fromBytesFunc(b)
}

// BitType represents a single discrete input or coil, decoded to 0 or 1.
// Bit reads come back packed, one byte per group of eight bits, so a
// single-bit read occupies one byte rather than a full register.
var BitType = Type{
	name:       "bit",
	dataLength: 1,
	fromBytesFunc: func(b []byte) (float64, error) {
		if b[0]&0x01 != 0 {
			return 1, nil
		}
		return 0, nil
	},
}

// Uint16Type represents the 16 bit unsigned integer data type on Modbus.
var Uint16Type = Type{
	name:       "uint16",
	dataLength: 2,
	fromBytesFunc: func(b []byte) (float64, error) {
		return float64(binary.BigEndian.Uint16(b)), nil
	},
}

// Int16Type represents the 16 bit signed integer data type on Modbus.
var Int16Type = Type{
	name:       "int16",
	dataLength: 2,
	fromBytesFunc: func(b []byte) (float64, error) {
		return float64(int16(binary.BigEndian.Uint16(b))), nil
	},
}

// Uint32Type represents the 32 bit unsigned integer data type on Modbus,
// stored high word first across two consecutive registers.
var Uint32Type = Type{
	name:       "uint32",
	dataLength: 4,
	fromBytesFunc: func(b []byte) (float64, error) {
		return float64(binary.BigEndian.Uint32(b)), nil
	},
}

// ScaledInt16Type represents a signed 16 bit value that the device publishes
// multiplied by 10^factor (transmitting scaled integers is common in Modbus).
// A factor of 2 turns a raw 5000 into 50.00.
func ScaledInt16Type(factor int) Type {
	divisor := math.Pow10(factor)
	return Type{
		name:       fmt.Sprintf("int16/10^%d", factor),
		dataLength: 2,
		fromBytesFunc: func(b []byte) (float64, error) {
			raw := float64(int16(binary.BigEndian.Uint16(b)))
			return raw / divisor, nil
		},
	}
}
