package engine

import (
	"encoding/json"
	"time"
)

const msgSelectFirst = "Select a shape first."

// Notice is a transient message for the user, shown for Duration.
type Notice struct {
	Message  string
	Duration time.Duration
}

// MarshalJSON encodes the duration in milliseconds for the frontend.
func (n Notice) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Message    string `json:"message"`
		DurationMS int64  `json:"durationMs"`
	}{n.Message, n.Duration.Milliseconds()})
}

// TakeNotices returns the notices posted since the last call and forgets
// them.
func (e *Engine) TakeNotices() []Notice {
	n := e.notices
	e.notices = nil
	return n
}

func (e *Engine) notify(msg string, d time.Duration) {
	e.notices = append(e.notices, Notice{Message: msg, Duration: d})
}
