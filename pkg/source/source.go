package source

import (
	"encoding/json"

	"github.com/Girgetto/iracing-pitwall-tui/pkg/model"
)

// frame types on the wire
const (
	FrameTelemetry   = "telemetry"
	FrameSessionInfo = "sessioninfo"
)

// Frame is one feed message. Telemetry frames arrive on every poll of the
// producer, sessioninfo frames on a slower cadence. Ts is the feed time in
// seconds since the start of the recording (used for replay pacing).
type Frame struct {
	Type    string          `json:"type"`
	Ts      float64         `json:"ts,omitempty"`
	Payload json.RawMessage `json:"payload"`
}

// DataSource delivers the latest known snapshot of each feed. The boolean is
// false until the first snapshot of that feed arrived ("not yet connected").
// Implementations must hand out snapshots that are never mutated afterwards.
type DataSource interface {
	Telemetry() (*model.TelemetrySnapshot, bool)
	SessionInfo() (*model.SessionInfo, bool)
}
