package telemetry

import (
	"time"

	"github.com/google/uuid"
)

// ReadingMeta holds the identity common to everything a device emits.
type ReadingMeta struct {
	ID       uuid.UUID // unique id of this reading
	DeviceID uuid.UUID // the device the reading was taken from
	Time     time.Time
}

// FieldValue is one decoded telemetry value.
// Valid is false when the raw registers for this field failed to decode; the
// rest of the sample is unaffected.
type FieldValue struct {
	Value float64
	Unit  string
	Valid bool
}

// GensetSample holds one polling cycle's worth of data pulled from a
// generator-set controller. Samples are immutable once emitted.
type GensetSample struct {
	ReadingMeta
	Fields map[string]FieldValue
}

// Field returns the named field value, with ok=false if the field is absent.
func (s GensetSample) Field(name string) (FieldValue, bool) {
	fv, ok := s.Fields[name]
	return fv, ok
}

// PollFailure is emitted instead of a sample when a polling cycle fails
// outright (connect failure or a dead read exchange). Retry policy is left to
// the consumer; the connector simply reports each cycle's outcome.
type PollFailure struct {
	DeviceID    uuid.UUID
	Time        time.Time
	Err         error
	Consecutive int // number of failed cycles in a row, including this one
}
