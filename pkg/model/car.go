package model

import "github.com/aarondl/opt/null"

// CarRecord is the per-tick merged view of one car. Records are rebuilt from
// scratch every tick and owned by the current render cycle.
type CarRecord struct {
	CarIdx     int    `json:"carIdx"`
	Pos        int    `json:"pos"` // 0 = unclassified
	Pic        int    `json:"pic"` // recomputed, not taken from the feed
	DriverName string `json:"driverName"`
	CarNumber  string `json:"carNumber"`
	CarClass   string `json:"carClass"`
	Lc         int    `json:"lc"`     // laps completed
	LapPct     float64 `json:"lapPct"` // clamped to [0,1]

	Last null.Val[float64] `json:"last"`
	Best null.Val[float64] `json:"best"`
	Gap  null.Val[float64] `json:"gap"`

	Stalled  bool `json:"stalled"`
	IsPlayer bool `json:"isPlayer"`

	IRating      int            `json:"iRating"`
	IRatingDelta null.Val[int] `json:"iRatingDelta"`
}

// SessionSummary holds the session level facts for the renderer.
type SessionSummary struct {
	SessionName string `json:"sessionName"`
	FlagState   string `json:"flagState"`
	// LapLimit is unset when the session has no lap limit
	LapLimit null.Val[int] `json:"lapLimit"`
	// TimeRemain is unset when the session is not timed
	TimeRemain null.Val[float64] `json:"timeRemain"`
	MultiClass bool              `json:"multiClass"`
}

// PitwallState is the complete output of one pipeline run.
type PitwallState struct {
	Cars    []*CarRecord   `json:"cars"`
	Summary SessionSummary `json:"summary"`
}
