package agc150

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/obsenv/gensetmon/modbusaccess"
	"github.com/obsenv/gensetmon/telemetry"
)

// Connector handles Modbus communications with a DEIF AGC 150 generator-set
// controller.
//
// Telemetry is read regularly and sent onto the `Telemetry` channel; cycles
// that fail outright are reported on the `Failures` channel instead.
//
// Every polling cycle runs over a fresh transport session: Poll tears down
// whatever session exists and dials again before reading. Stale and half-open
// connections to the controller have caused silent data loss in the field, so
// reconnecting is an explicit step of the cycle rather than an error-path
// fallback.
//
// A Connector drives one controller and is not safe for concurrent use; run
// one Connector per controller and schedule them independently.
type Connector struct {
	Telemetry chan telemetry.GensetSample
	Failures  chan telemetry.PollFailure

	id        uuid.UUID
	endpoint  string
	registers modbusaccess.RegisterMap
	dial      DialFunc
	logger    *slog.Logger

	session             Session
	state               ConnectionState
	consecutiveFailures int
}

// New creates a connector for a controller on a modbus TCP endpoint.
func New(id uuid.UUID, endpoint string, unitID byte, timeout time.Duration) (*Connector, error) {
	return NewWithDial(id, endpoint, DialTCP(endpoint, unitID, timeout))
}

// NewRTU creates a connector for a controller on a serial line.
func NewRTU(id uuid.UUID, device string, baudRate int, unitID byte, timeout time.Duration) (*Connector, error) {
	return NewWithDial(id, device, DialRTU(device, baudRate, unitID, timeout))
}

// NewWithDial creates a connector that establishes sessions via `dial`. The
// endpoint is only used for logging and error context.
func NewWithDial(id uuid.UUID, endpoint string, dial DialFunc) (*Connector, error) {
	if err := Registers.Validate(); err != nil {
		return nil, fmt.Errorf("validate register map: %w", err)
	}

	return &Connector{
		Telemetry: make(chan telemetry.GensetSample),
		Failures:  make(chan telemetry.PollFailure),
		id:        id,
		endpoint:  endpoint,
		registers: Registers,
		dial:      dial,
		logger:    slog.Default().With("device_id", id, "endpoint", endpoint),
	}, nil
}

// State returns the connector's position in the polling cycle.
func (c *Connector) State() ConnectionState {
	return c.state
}

// Connect establishes a fresh transport session, releasing any existing one
// first. On failure the connector is left in the Failed state and the next
// cycle attempts a fresh connect again.
func (c *Connector) Connect() error {
	c.closeSession()
	c.state = Connecting

	session, err := c.dial()
	if err != nil {
		c.state = Failed
		return &ConnectionError{Endpoint: c.endpoint, Err: err}
	}

	c.session = session
	c.state = Connected
	return nil
}

// Disconnect releases the transport session. It is a no-op when already
// disconnected.
func (c *Connector) Disconnect() {
	c.closeSession()
	c.state = Disconnected
}

// closeSession releases the session without touching the connection state.
func (c *Connector) closeSession() {
	if c.session == nil {
		return
	}
	if err := c.session.Close(); err != nil {
		c.logger.Debug("Error closing modbus session", "error", err)
	}
	c.session = nil
}

// Poll performs one complete polling cycle: reconnect, read every field in
// the register map, decode, disconnect.
//
// A field whose payload fails to decode is marked invalid in the sample and
// the cycle carries on. A failed read exchange aborts the cycle with a
// PollError and no sample.
func (c *Connector) Poll() (telemetry.GensetSample, error) {
	// Reconnect step: every cycle starts from a fresh session.
	if err := c.Connect(); err != nil {
		return telemetry.GensetSample{}, err
	}

	c.state = Polling

	sample := telemetry.GensetSample{
		ReadingMeta: telemetry.ReadingMeta{
			ID:       uuid.New(),
			DeviceID: c.id,
			Time:     time.Now(),
		},
		Fields: make(map[string]telemetry.FieldValue, len(c.registers)),
	}

	for _, field := range c.registers {
		raw, err := c.readField(field)
		if err != nil {
			c.state = Failed
			c.closeSession()
			return telemetry.GensetSample{}, &PollError{Field: field.Name, Err: err}
		}

		value, err := field.DataType.Decode(raw)
		if err != nil {
			decodeErr := &DecodeError{Field: field.Name, Err: err}
			c.logger.Warn("Field failed to decode", "field", field.Name, "error", decodeErr)
			sample.Fields[field.Name] = telemetry.FieldValue{Unit: field.Unit, Valid: false}
			continue
		}

		sample.Fields[field.Name] = telemetry.FieldValue{Value: value, Unit: field.Unit, Valid: true}
	}

	c.state = Connected
	c.Disconnect()

	return sample, nil
}

// readField issues the read request for one register map entry.
func (c *Connector) readField(field modbusaccess.Field) ([]byte, error) {
	switch field.Table {
	case modbusaccess.DiscreteInput:
		return c.session.ReadDiscreteInputs(field.StartAddr, field.NumRegisters)
	case modbusaccess.InputRegister:
		return c.session.ReadInputRegisters(field.StartAddr, field.NumRegisters)
	default:
		return nil, fmt.Errorf("unsupported table '%s'", field.Table)
	}
}

// Run loops forever, polling telemetry from the controller every `period`.
// Exits when the context is cancelled.
func (c *Connector) Run(ctx context.Context, period time.Duration) error {
	readingTicker := time.NewTicker(period)
	defer readingTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.Disconnect()
			return ctx.Err()
		case t := <-readingTicker.C:
			sample, err := c.Poll()
			if err != nil {
				c.consecutiveFailures++
				c.logger.Error("Polling cycle failed", "error", err, "consecutive", c.consecutiveFailures)
				select {
				case c.Failures <- telemetry.PollFailure{
					DeviceID:    c.id,
					Time:        t,
					Err:         err,
					Consecutive: c.consecutiveFailures,
				}:
				case <-ctx.Done():
					return ctx.Err()
				}
				continue
			}

			c.consecutiveFailures = 0
			select {
			case c.Telemetry <- sample:
			case <-ctx.Done():
				c.Disconnect()
				return ctx.Err()
			}
		}
	}
}
