package agc150

// ConnectionState tracks where the connector is in its polling cycle. The
// state is owned by the connector and only changes as a result of
// connect/poll/disconnect outcomes.
type ConnectionState int

const (
	Disconnected ConnectionState = iota
	Connecting
	Connected
	Polling
	Failed
)

func (s ConnectionState) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case Polling:
		return "polling"
	case Failed:
		return "failed"
	}
	return "unknown"
}
