package model

import (
	"strconv"
	"strings"
)

// SessionInfo is the slow feed: driver roster plus session metadata.
// It is updated on its own cadence and may lag behind the telemetry feed.
type SessionInfo struct {
	Sessions []SessionRecord `json:"sessions"`
	Drivers  []DriverEntry   `json:"drivers"`
}

// SessionRecord describes one session of the event (practice, qualifying, race).
type SessionRecord struct {
	Num  int    `json:"num"`
	Name string `json:"name"`
	// Laps is a number or its string form; 32767 means unlimited
	Laps any `json:"laps"`
	// Time is the session time limit in seconds; >= one week means not timed
	Time float64 `json:"time"`
}

// DriverEntry is one roster entry, keyed by carIdx. carIdx values are only
// stable within a session.
type DriverEntry struct {
	CarIdx    int    `json:"carIdx"`
	Name      string `json:"name"`
	CarNumber string `json:"carNumber"`
	CarClass  string `json:"carClass"`
	IRating   int    `json:"iRating"` // 0 means unrated
	// IsPaceCar may arrive as bool, number or string
	IsPaceCar any `json:"isPaceCar"`
}

// PaceCar reports whether the entry is the pace car. The feed encodes the
// flag as 1, "1" or true depending on source version.
func (d *DriverEntry) PaceCar() bool {
	return looseTruthy(d.IsPaceCar)
}

func looseTruthy(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	case string:
		if strings.EqualFold(v, "true") {
			return true
		}
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n != 0
		}
		return false
	default:
		return false
	}
}
