package audit

import "context"

// Auditor records mutating commands.
type Auditor interface {
	// Log records an event.
	// action: what happened (e.g., "movie.create", "user.delete")
	// resource: what was affected (e.g., "Movie:3")
	// details: structured metadata about the event
	Log(ctx context.Context, action string, resource string, details map[string]interface{})
}

// Event is one recorded audit entry.
type Event struct {
	Action   string
	Resource string
	Details  map[string]interface{}
}

// Recorder keeps audit events in memory.
type Recorder struct {
	Events []Event
}

func (r *Recorder) Log(_ context.Context, action string, resource string, details map[string]interface{}) {
	r.Events = append(r.Events, Event{Action: action, Resource: resource, Details: details})
}

// Nop discards every event.
type Nop struct{}

func (Nop) Log(context.Context, string, string, map[string]interface{}) {}

var (
	_ Auditor = (*Recorder)(nil)
	_ Auditor = Nop{}
	_ Auditor = (*LoggerAuditor)(nil)
)
