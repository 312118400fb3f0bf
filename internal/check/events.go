package check

// Status is the lifecycle state of one file in the check pipeline.
type Status uint8

const (
	// StatusQueued means the file is waiting for a worker.
	StatusQueued Status = iota
	// StatusWorking means the file is being parsed and validated.
	StatusWorking
	// StatusDone means the file finished cleanly.
	StatusDone
	// StatusError means the file failed to parse.
	StatusError
)

// Event is one progress notification from the check pipeline.
type Event struct {
	Path   string
	Status Status
}

// ProgressSink receives pipeline events. Implementations must be safe for
// concurrent use; the runner calls Send from worker goroutines.
type ProgressSink interface {
	Send(Event)
}

// ChannelSink forwards events into a channel, dropping them when the
// receiver falls behind. Losing a progress tick is preferable to stalling
// a worker.
type ChannelSink struct {
	Ch chan<- Event
}

// Send implements ProgressSink.
func (s ChannelSink) Send(ev Event) {
	select {
	case s.Ch <- ev:
	default:
	}
}

type nopSink struct{}

func (nopSink) Send(Event) {}
