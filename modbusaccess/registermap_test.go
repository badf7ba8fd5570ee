package modbusaccess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMap() RegisterMap {
	return RegisterMap{
		{Name: "running", Table: DiscreteInput, StartAddr: 3, NumRegisters: 1, DataType: BitType},
		{Name: "voltage", Table: InputRegister, StartAddr: 501, NumRegisters: 1, DataType: Int16Type},
		{Name: "energy", Table: InputRegister, StartAddr: 530, NumRegisters: 2, DataType: Uint32Type},
	}
}

func TestValidateAcceptsWellFormedMap(t *testing.T) {
	require.NoError(t, validMap().Validate())
}

func TestValidateRejectsDuplicateNames(t *testing.T) {
	m := append(validMap(), Field{
		Name: "voltage", Table: InputRegister, StartAddr: 600, NumRegisters: 1, DataType: Int16Type,
	})
	err := m.Validate()
	assert.ErrorContains(t, err, "duplicate field name")
}

func TestValidateRejectsOverlappingRanges(t *testing.T) {
	// 531 falls inside the two-register span starting at 530
	m := append(validMap(), Field{
		Name: "clash", Table: InputRegister, StartAddr: 531, NumRegisters: 1, DataType: Int16Type,
	})
	err := m.Validate()
	assert.ErrorContains(t, err, "overlap")
}

func TestValidateAllowsSameAddressInDifferentTables(t *testing.T) {
	// address 3 is used by a discrete input; reusing it as an input
	// register is a different table and fine
	m := append(validMap(), Field{
		Name: "other", Table: InputRegister, StartAddr: 3, NumRegisters: 1, DataType: Int16Type,
	})
	assert.NoError(t, m.Validate())
}

func TestValidateRejectsTypeCountMismatch(t *testing.T) {
	m := RegisterMap{
		{Name: "bad", Table: InputRegister, StartAddr: 500, NumRegisters: 2, DataType: Int16Type},
	}
	err := m.Validate()
	assert.ErrorContains(t, err, "decodes")
}

func TestValidateRejectsZeroCountAndMissingName(t *testing.T) {
	err := RegisterMap{
		{Name: "bad", Table: InputRegister, StartAddr: 500, NumRegisters: 0, DataType: Int16Type},
	}.Validate()
	assert.ErrorContains(t, err, "zero registers")

	err = RegisterMap{
		{Table: InputRegister, StartAddr: 500, NumRegisters: 1, DataType: Int16Type},
	}.Validate()
	assert.ErrorContains(t, err, "no name")
}
