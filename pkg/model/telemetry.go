package model

import "github.com/aarondl/opt/null"

// names of the per-slot value arrays within a telemetry snapshot
const (
	FieldPos    = "pos"    // overall position (0 = unclassified)
	FieldPic    = "pic"    // position in class as reported by the feed (unreliable)
	FieldLap    = "lap"    // laps completed
	FieldLapPct = "lapPct" // fraction of the current lap
	FieldLast   = "last"   // last lap time [s]
	FieldBest   = "best"   // best lap time [s]
	FieldGap    = "gap"    // gap to leader [s], >= 3600 encodes laps down
)

// TelemetrySnapshot is the volatile feed. Cars holds one value array per
// field, indexed by carIdx. Arrays may be shorter than the number of active
// slots; a missing index or a null cell means the value is absent.
// A snapshot is replaced wholesale on every poll and must not be retained
// across ticks.
type TelemetrySnapshot struct {
	SessionNum   int                            `json:"sessionNum"`
	SessionFlags SessionFlags                   `json:"sessionFlags"`
	SessionTime  float64                        `json:"sessionTime"`
	PlayerCarIdx int                            `json:"playerCarIdx"`
	Cars         map[string][]null.Val[float64] `json:"cars"`
}
