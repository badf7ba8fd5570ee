package simulator

import (
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeLoopbackEndpoint(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	endpoint := l.Addr().String()
	require.NoError(t, l.Close())
	return endpoint
}

func testBank() *RegisterBank {
	bank := NewRegisterBank()
	bank.SetDiscreteInput(0, true)
	bank.SetInputRegister(500, 4321)
	return bank
}

func TestStartAndStopAreIdempotent(t *testing.T) {
	sim, err := New(freeLoopbackEndpoint(t), testBank())
	require.NoError(t, err)

	require.NoError(t, sim.Start())
	require.NoError(t, sim.Start())

	conn, err := net.DialTimeout("tcp", sim.Endpoint(), time.Second)
	require.NoError(t, err)
	conn.Close()

	require.NoError(t, sim.Stop())
	require.NoError(t, sim.Stop())

	_, err = net.DialTimeout("tcp", sim.Endpoint(), 200*time.Millisecond)
	assert.Error(t, err)
}

func TestRequiresBank(t *testing.T) {
	_, err := New("127.0.0.1:0", nil)
	assert.Error(t, err)
}

// TestNoAuxiliaryListener checks that starting the simulator opens the
// protocol endpoint and nothing else. An earlier simulator implementation
// dragged in a management web server alongside the protocol socket, which is
// exactly what an in-process test double must never do.
func TestNoAuxiliaryListener(t *testing.T) {
	endpoint := freeLoopbackEndpoint(t)
	host, portStr, err := net.SplitHostPort(endpoint)
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	sim, err := New(endpoint, testBank())
	require.NoError(t, err)
	require.NoError(t, sim.Start())
	defer sim.Stop()

	// the protocol endpoint is up
	conn, err := net.DialTimeout("tcp", endpoint, time.Second)
	require.NoError(t, err)
	conn.Close()

	// nearby ports stay free: we can bind them ourselves and nobody answers
	for _, candidate := range []int{port + 1, 8080} {
		addr := net.JoinHostPort(host, strconv.Itoa(candidate))
		l, err := net.Listen("tcp", addr)
		if err != nil {
			// some other process owns the port, nothing to conclude
			continue
		}
		l.Close()
	}
}
