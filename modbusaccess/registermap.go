package modbusaccess

import (
	"fmt"
	"sort"
)

// Field describes one logical telemetry value on the modbus slave: where it
// lives, how many registers it spans and how to decode it.
type Field struct {
	Name         string // unique field name used for context/logging and in samples
	Table        Table  // which modbus data table the field is read from
	StartAddr    uint16 // the first register (or bit) address of the field
	NumRegisters uint16 // the number of registers (or bits) to read for this field
	DataType     Type   // how the raw bytes decode into a numeric value
	Unit         string // engineering unit of the decoded value, e.g. "V" or "Hz"
}

// RegisterMap is the fixed association between addresses on a device and the
// physical quantities they encode. It is static configuration: loaded once at
// startup and never mutated afterwards.
type RegisterMap []Field

// Validate checks that the map is internally consistent: field names are
// unique, address ranges within each table do not overlap, and each field's
// data type consumes exactly the registers the field declares.
func (m RegisterMap) Validate() error {
	names := make(map[string]struct{}, len(m))

	type span struct {
		start uint16
		end   uint16 // inclusive
		name  string
	}
	spansPerTable := make(map[Table][]span)

	for _, f := range m {
		if f.Name == "" {
			return fmt.Errorf("register map: field at address %d has no name", f.StartAddr)
		}
		if _, exists := names[f.Name]; exists {
			return fmt.Errorf("register map: duplicate field name '%s'", f.Name)
		}
		names[f.Name] = struct{}{}

		if f.NumRegisters == 0 {
			return fmt.Errorf("register map: field '%s' reads zero registers", f.Name)
		}

		// The decoder must consume exactly what the read returns: packed
		// bits for the bit tables, two bytes per register otherwise.
		wantBytes := f.NumRegisters * 2
		if f.Table.IsBits() {
			wantBytes = (f.NumRegisters + 7) / 8
		}
		if f.DataType.DataLength() != wantBytes {
			return fmt.Errorf("register map: field '%s' reads %d bytes but data type '%s' decodes %d",
				f.Name, wantBytes, f.DataType.Name(), f.DataType.DataLength())
		}

		spansPerTable[f.Table] = append(spansPerTable[f.Table], span{
			start: f.StartAddr,
			end:   f.StartAddr + f.NumRegisters - 1,
			name:  f.Name,
		})
	}

	for table, spans := range spansPerTable {
		sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
		for i := 1; i < len(spans); i++ {
			prev, cur := spans[i-1], spans[i]
			if cur.start <= prev.end {
				return fmt.Errorf("register map: fields '%s' and '%s' overlap in %s table (%d-%d vs %d-%d)",
					prev.name, cur.name, table, prev.start, prev.end, cur.start, cur.end)
			}
		}
	}

	return nil
}
