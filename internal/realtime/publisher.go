package realtime

// Publisher fans an event out to all connected display clients. Services
// depend on this interface so broadcasting stays an injected concern.
type Publisher interface {
	Broadcast(event string, payload interface{})
}

// Events emitted by the backend.
const (
	EventSettingsChanged = "settingsChanged"
	EventScheduleChanged = "scheduleChanged"
	EventMediaChanged    = "mediaChanged"
)

// Nop is the publisher used when no connection manager is attached.
type Nop struct{}

// Broadcast discards the event.
func (Nop) Broadcast(event string, payload interface{}) {}
