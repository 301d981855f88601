package basedata

import (
	"github.com/aarondl/opt/null"

	"github.com/Girgetto/iracing-pitwall-tui/pkg/model"
)

// Cell wraps a present per-slot value.
func Cell(v float64) null.Val[float64] { return null.From(v) }

// NullCell is an absent per-slot value.
func NullCell() null.Val[float64] { return null.Val[float64]{} }

// SampleSessionInfo returns a single race session and a roster with the
// pace car on slot 0 plus two rated drivers.
func SampleSessionInfo() *model.SessionInfo {
	return &model.SessionInfo{
		Sessions: []model.SessionRecord{
			{Num: 0, Name: "RACE", Laps: 20, Time: 604800.0},
		},
		Drivers: []model.DriverEntry{
			{CarIdx: 0, Name: "Pace Car", CarNumber: "0", CarClass: "Safety",
				IsPaceCar: 1},
			{CarIdx: 1, Name: "Alice", CarNumber: "11", CarClass: "GT3",
				IRating: 2000},
			{CarIdx: 2, Name: "Bob", CarNumber: "22", CarClass: "GT3",
				IRating: 1800},
		},
	}
}

// SampleTelemetry returns a snapshot matching SampleSessionInfo with the
// player on slot 1 leading slot 2.
func SampleTelemetry() *model.TelemetrySnapshot {
	return &model.TelemetrySnapshot{
		SessionNum:   0,
		SessionFlags: model.FlagGreen,
		SessionTime:  1250.0,
		PlayerCarIdx: 1,
		Cars: map[string][]null.Val[float64]{
			model.FieldPos:    {Cell(0), Cell(1), Cell(2)},
			model.FieldLap:    {Cell(0), Cell(5), Cell(5)},
			model.FieldLapPct: {Cell(0.0), Cell(0.5), Cell(0.45)},
			model.FieldLast:   {NullCell(), Cell(62.1), Cell(63.4)},
			model.FieldBest:   {NullCell(), Cell(61.8), Cell(62.9)},
			model.FieldGap:    {NullCell(), Cell(0.0), Cell(1.6)},
		},
	}
}
