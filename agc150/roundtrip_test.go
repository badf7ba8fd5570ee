package agc150

import (
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obsenv/gensetmon/simulator"
)

// freeLoopbackEndpoint reserves an ephemeral port on the loopback interface
// and releases it for the simulator to bind.
func freeLoopbackEndpoint(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	endpoint := l.Addr().String()
	require.NoError(t, l.Close())
	return endpoint
}

// TestRoundTripOverTCP polls a simulated controller over a real localhost
// modbus TCP session and checks the decoded values against the seeded bank.
func TestRoundTripOverTCP(t *testing.T) {
	endpoint := freeLoopbackEndpoint(t)

	sim, err := simulator.New(endpoint, DefaultSimulatorBank())
	require.NoError(t, err)
	require.NoError(t, sim.Start())
	defer sim.Stop()

	c, err := New(uuid.New(), endpoint, 1, 5*time.Second)
	require.NoError(t, err)

	sample, err := c.Poll()
	require.NoError(t, err)

	frequency, _ := sample.Field("generatorFrequencyL1")
	assert.True(t, frequency.Valid)
	assert.InDelta(t, 50.02, frequency.Value, 1e-9)

	voltage, _ := sample.Field("generatorVoltageL1N")
	assert.True(t, voltage.Valid)
	assert.InDelta(t, 230.0, voltage.Value, 1e-9)

	power, _ := sample.Field("generatorPower")
	assert.True(t, power.Valid)
	assert.InDelta(t, 150, power.Value, 1e-9)

	energy, _ := sample.Field("generatorExportActiveEnergyCounterTotal")
	assert.True(t, energy.Valid)
	assert.InDelta(t, 183200, energy.Value, 1e-9)

	running, _ := sample.Field("running")
	assert.True(t, running.Valid)
	assert.InDelta(t, 1, running.Value, 1e-9)

	// every mapped field decodes from the default bank
	require.Len(t, sample.Fields, len(Registers))
	for name, fv := range sample.Fields {
		assert.True(t, fv.Valid, "field %s should be valid", name)
	}
}

// TestRoundTripSeesBankMutations re-seeds the bank between polling cycles,
// the way test scenarios drive different telemetry values.
func TestRoundTripSeesBankMutations(t *testing.T) {
	endpoint := freeLoopbackEndpoint(t)

	sim, err := simulator.New(endpoint, DefaultSimulatorBank())
	require.NoError(t, err)
	require.NoError(t, sim.Start())
	defer sim.Stop()

	c, err := New(uuid.New(), endpoint, 1, 5*time.Second)
	require.NoError(t, err)

	sample, err := c.Poll()
	require.NoError(t, err)
	power, _ := sample.Field("generatorPower")
	assert.InDelta(t, 150, power.Value, 1e-9)

	sim.Bank().SetInputRegister(519, 90)
	sim.Bank().SetDiscreteInput(3, false)

	sample, err = c.Poll()
	require.NoError(t, err)
	power, _ = sample.Field("generatorPower")
	assert.InDelta(t, 90, power.Value, 1e-9)
	running, _ := sample.Field("running")
	assert.InDelta(t, 0, running.Value, 1e-9)
}

// TestRoundTripSequentialCycles checks that repeated cycles against the same
// simulator each come from a fresh TCP session.
func TestRoundTripSequentialCycles(t *testing.T) {
	endpoint := freeLoopbackEndpoint(t)

	sim, err := simulator.New(endpoint, DefaultSimulatorBank())
	require.NoError(t, err)
	require.NoError(t, sim.Start())
	defer sim.Stop()

	dialCount := 0
	base := DialTCP(endpoint, 1, 5*time.Second)
	c, err := NewWithDial(uuid.New(), endpoint, func() (Session, error) {
		dialCount++
		return base()
	})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := c.Poll()
		require.NoError(t, err, "cycle %d", i)
	}
	assert.Equal(t, 3, dialCount)
	assert.Equal(t, Disconnected, c.State())
}

// TestPollAgainstStoppedSimulator covers the unreachable-endpoint path with a
// real dialler.
func TestPollAgainstStoppedSimulator(t *testing.T) {
	endpoint := freeLoopbackEndpoint(t)

	c, err := New(uuid.New(), endpoint, 1, 500*time.Millisecond)
	require.NoError(t, err)

	_, err = c.Poll()
	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, Failed, c.State())
	assert.Equal(t, endpoint, connErr.Endpoint)
}
