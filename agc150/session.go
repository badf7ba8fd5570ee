package agc150

import (
	"time"

	"github.com/grid-x/modbus"
)

// Session is one transport-level modbus session. A session is used for at
// most one polling cycle and then closed; the connector never reuses one
// across cycles.
type Session interface {
	ReadDiscreteInputs(addr, quantity uint16) ([]byte, error)
	ReadInputRegisters(addr, quantity uint16) ([]byte, error)
	Close() error
}

// DialFunc establishes a fresh transport session. Exactly one attempt per
// call; the connector invokes it at the start of every polling cycle.
type DialFunc func() (Session, error)

// gridxSession wraps the open source modbus library's client and handler.
type gridxSession struct {
	client  modbus.Client
	handler interface{ Close() error }
}

func (s *gridxSession) ReadDiscreteInputs(addr, quantity uint16) ([]byte, error) {
	return s.client.ReadDiscreteInputs(addr, quantity)
}

func (s *gridxSession) ReadInputRegisters(addr, quantity uint16) ([]byte, error) {
	return s.client.ReadInputRegisters(addr, quantity)
}

func (s *gridxSession) Close() error {
	return s.handler.Close()
}

// DialTCP returns a DialFunc that connects to a modbus TCP endpoint.
func DialTCP(endpoint string, unitID byte, timeout time.Duration) DialFunc {
	return func() (Session, error) {
		handler := modbus.NewTCPClientHandler(endpoint)
		handler.Timeout = timeout
		handler.SlaveID = unitID

		if err := handler.Connect(); err != nil {
			return nil, err
		}

		return &gridxSession{
			client:  modbus.NewClient(handler),
			handler: handler,
		}, nil
	}
}

// DialRTU returns a DialFunc that connects to a controller on a serial line.
// The AGC 150 ships with 9600 8N1 as its factory setting.
func DialRTU(device string, baudRate int, unitID byte, timeout time.Duration) DialFunc {
	return func() (Session, error) {
		handler := modbus.NewRTUClientHandler(device)
		handler.BaudRate = baudRate
		handler.DataBits = 8
		handler.Parity = "N"
		handler.StopBits = 1
		handler.Timeout = timeout
		handler.SlaveID = unitID

		if err := handler.Connect(); err != nil {
			return nil, err
		}

		return &gridxSession{
			client:  modbus.NewClient(handler),
			handler: handler,
		}, nil
	}
}
