package simulator

import (
	"errors"
	"sync"

	"github.com/obsenv/gensetmon/modbusaccess"
)

// ErrInvalidRegisterRange is returned when a read requests a range that is
// not fully covered by the bank.
var ErrInvalidRegisterRange = errors.New("register range not covered by bank")

// RegisterBank holds the current word values served by the simulator, keyed
// by register address. It is seeded by test setup code and read by incoming
// poll requests; the protocol side never writes to it.
//
// The bank may be mutated between test scenarios while reads are in flight
// from another goroutine, so access goes through a read-write lock.
type RegisterBank struct {
	mu             sync.RWMutex
	discreteInputs map[uint16]bool
	inputRegisters map[uint16]uint16
}

// NewRegisterBank creates an empty bank. Every address must be seeded before
// it can be read.
func NewRegisterBank() *RegisterBank {
	return &RegisterBank{
		discreteInputs: make(map[uint16]bool),
		inputRegisters: make(map[uint16]uint16),
	}
}

// NewBankForMap creates a bank with every address of the given register map
// seeded to zero, so that any read a connector issues against the map is
// covered.
func NewBankForMap(m modbusaccess.RegisterMap) *RegisterBank {
	bank := NewRegisterBank()
	for _, f := range m {
		for i := uint16(0); i < f.NumRegisters; i++ {
			switch f.Table {
			case modbusaccess.DiscreteInput:
				bank.SetDiscreteInput(f.StartAddr+i, false)
			case modbusaccess.InputRegister:
				bank.SetInputRegister(f.StartAddr+i, 0)
			}
		}
	}
	return bank
}

// SetDiscreteInput sets the value of one discrete input bit.
func (b *RegisterBank) SetDiscreteInput(addr uint16, value bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.discreteInputs[addr] = value
}

// SetInputRegister sets the word value of one input register.
func (b *RegisterBank) SetInputRegister(addr uint16, value uint16) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.inputRegisters[addr] = value
}

// SetInputRegisterUint32 stores a 32 bit value across two consecutive input
// registers, high word first.
func (b *RegisterBank) SetInputRegisterUint32(addr uint16, value uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.inputRegisters[addr] = uint16(value >> 16)
	b.inputRegisters[addr+1] = uint16(value)
}

// ReadDiscreteInputs returns `quantity` bits starting at `addr`. The whole
// range must be covered by the bank or ErrInvalidRegisterRange is returned.
func (b *RegisterBank) ReadDiscreteInputs(addr, quantity uint16) ([]bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if quantity == 0 {
		return nil, ErrInvalidRegisterRange
	}

	out := make([]bool, quantity)
	for i := uint16(0); i < quantity; i++ {
		value, ok := b.discreteInputs[addr+i]
		if !ok {
			return nil, ErrInvalidRegisterRange
		}
		out[i] = value
	}
	return out, nil
}

// ReadInputRegisters returns `quantity` words starting at `addr`. The whole
// range must be covered by the bank or ErrInvalidRegisterRange is returned.
func (b *RegisterBank) ReadInputRegisters(addr, quantity uint16) ([]uint16, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if quantity == 0 {
		return nil, ErrInvalidRegisterRange
	}

	out := make([]uint16, quantity)
	for i := uint16(0); i < quantity; i++ {
		value, ok := b.inputRegisters[addr+i]
		if !ok {
			return nil, ErrInvalidRegisterRange
		}
		out[i] = value
	}
	return out, nil
}
