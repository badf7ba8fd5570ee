package simulator

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/simonvetter/modbus"
)

// Simulator is an in-process stand-in for a real controller. It serves
// register reads from a RegisterBank on a single modbus TCP endpoint and
// nothing else: no management interface, no status page, no extra listeners.
type Simulator struct {
	endpoint string
	bank     *RegisterBank
	server   *modbus.ModbusServer
	logger   *slog.Logger
	started  bool
}

// New creates a simulator serving `bank` on the given host:port endpoint.
func New(endpoint string, bank *RegisterBank) (*Simulator, error) {
	if bank == nil {
		return nil, errors.New("simulator: register bank required")
	}

	server, err := modbus.NewServer(&modbus.ServerConfiguration{
		URL:        fmt.Sprintf("tcp://%s", endpoint),
		Timeout:    30 * time.Second,
		MaxClients: 5,
	}, &bankHandler{bank: bank})
	if err != nil {
		return nil, fmt.Errorf("create modbus server: %w", err)
	}

	return &Simulator{
		endpoint: endpoint,
		bank:     bank,
		server:   server,
		logger:   slog.Default().With("simulator_endpoint", endpoint),
	}, nil
}

// Endpoint returns the host:port the simulator serves on.
func (s *Simulator) Endpoint() string {
	return s.endpoint
}

// Bank returns the register bank backing the simulator, so tests can mutate
// values between scenarios.
func (s *Simulator) Bank() *RegisterBank {
	return s.bank
}

// Start begins serving the protocol endpoint. Calling Start on a running
// simulator is a no-op.
func (s *Simulator) Start() error {
	if s.started {
		return nil
	}
	if err := s.server.Start(); err != nil {
		return fmt.Errorf("start modbus server: %w", err)
	}
	s.started = true
	s.logger.Info("Simulator listening")
	return nil
}

// Stop releases the listening endpoint. Calling Stop on a stopped simulator
// is a no-op.
func (s *Simulator) Stop() error {
	if !s.started {
		return nil
	}
	if err := s.server.Stop(); err != nil {
		return fmt.Errorf("stop modbus server: %w", err)
	}
	s.started = false
	s.logger.Info("Simulator stopped")
	return nil
}

// bankHandler answers modbus requests from the register bank. The AGC 150
// exposes telemetry through discrete inputs and input registers only, so the
// writable tables report an illegal function.
type bankHandler struct {
	bank *RegisterBank
}

func (h *bankHandler) HandleDiscreteInputs(req *modbus.DiscreteInputsRequest) ([]bool, error) {
	values, err := h.bank.ReadDiscreteInputs(req.Addr, req.Quantity)
	if err != nil {
		return nil, modbus.ErrIllegalDataAddress
	}
	return values, nil
}

func (h *bankHandler) HandleInputRegisters(req *modbus.InputRegistersRequest) ([]uint16, error) {
	values, err := h.bank.ReadInputRegisters(req.Addr, req.Quantity)
	if err != nil {
		return nil, modbus.ErrIllegalDataAddress
	}
	return values, nil
}

func (h *bankHandler) HandleCoils(req *modbus.CoilsRequest) ([]bool, error) {
	return nil, modbus.ErrIllegalFunction
}

func (h *bankHandler) HandleHoldingRegisters(req *modbus.HoldingRegistersRequest) ([]uint16, error) {
	return nil, modbus.ErrIllegalFunction
}
