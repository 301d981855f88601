//nolint:thelper,funlen,lll // ok for tests
package grid

import (
	"testing"

	"github.com/aarondl/opt/null"
	"github.com/stretchr/testify/assert"

	"github.com/Girgetto/iracing-pitwall-tui/pkg/model"
)

func cell(v float64) null.Val[float64] { return null.From(v) }

func nullCell() null.Val[float64] { return null.Val[float64]{} }

func singleDriverInfo() *model.SessionInfo {
	return &model.SessionInfo{
		Drivers: []model.DriverEntry{
			{CarIdx: 0, Name: "A", CarNumber: "1", CarClass: "GT3", IRating: 2000},
		},
	}
}

func TestGridProcessor_PaceCarExcluded(t *testing.T) {
	// the flag arrives as 1, "1" or true depending on source version
	for _, truthy := range []any{true, 1, 1.0, "1", "true"} {
		info := &model.SessionInfo{
			Drivers: []model.DriverEntry{
				{CarIdx: 0, Name: "Pace Car", IsPaceCar: truthy},
				{CarIdx: 1, Name: "A"},
			},
		}
		telemetry := &model.TelemetrySnapshot{
			Cars: map[string][]null.Val[float64]{
				model.FieldLapPct: {cell(0.1), cell(0.2)},
			},
		}
		cars := NewGridProcessor().Process(telemetry, info)
		assert.Len(t, cars, 1, "pace car flag %v", truthy)
		assert.Equal(t, "A", cars[0].DriverName)
	}
}

func TestGridProcessor_NoTelemetryNoRecord(t *testing.T) {
	info := &model.SessionInfo{
		Drivers: []model.DriverEntry{
			{CarIdx: 0, Name: "A"},
			{CarIdx: 1, Name: "B"}, // null cell
			{CarIdx: 7, Name: "C"}, // beyond the array
		},
	}
	telemetry := &model.TelemetrySnapshot{
		Cars: map[string][]null.Val[float64]{
			model.FieldLapPct: {cell(0.1), nullCell()},
		},
	}
	cars := NewGridProcessor().Process(telemetry, info)
	assert.Len(t, cars, 1)
	assert.Equal(t, "A", cars[0].DriverName)
}

func TestGridProcessor_OptionalFields(t *testing.T) {
	telemetry := &model.TelemetrySnapshot{
		Cars: map[string][]null.Val[float64]{
			model.FieldLapPct: {cell(0.4)},
			model.FieldPos:    {cell(2)},
			model.FieldLap:    {cell(5)},
			model.FieldLast:   {cell(-1)}, // no lap completed yet
			model.FieldGap:    {cell(12.5)},
		},
	}
	cars := NewGridProcessor().Process(telemetry, singleDriverInfo())
	assert.Len(t, cars, 1)
	rec := cars[0]
	assert.Equal(t, 2, rec.Pos)
	assert.Equal(t, 5, rec.Lc)
	assert.False(t, rec.Last.IsValue())
	assert.False(t, rec.Best.IsValue())
	assert.Equal(t, 12.5, rec.Gap.MustGet())
	assert.Equal(t, 2000, rec.IRating)
	assert.False(t, rec.IRatingDelta.IsValue())
}

func TestGridProcessor_LapPctClamped(t *testing.T) {
	telemetry := &model.TelemetrySnapshot{
		Cars: map[string][]null.Val[float64]{
			model.FieldLapPct: {cell(1.2)},
		},
	}
	cars := NewGridProcessor().Process(telemetry, singleDriverInfo())
	assert.Equal(t, 1.0, cars[0].LapPct)
}

func TestGridProcessor_Stalled(t *testing.T) {
	telemetry := &model.TelemetrySnapshot{
		Cars: map[string][]null.Val[float64]{
			model.FieldLapPct: {cell(0.0005), cell(0.0005), cell(0.5)},
			model.FieldLap:    {cell(3), cell(0), cell(3)},
		},
	}
	info := &model.SessionInfo{
		Drivers: []model.DriverEntry{
			{CarIdx: 0, Name: "stopped"},
			{CarIdx: 1, Name: "on the grid"},
			{CarIdx: 2, Name: "running"},
		},
	}
	cars := NewGridProcessor().Process(telemetry, info)
	assert.Len(t, cars, 3)
	assert.True(t, cars[0].Stalled)
	assert.False(t, cars[1].Stalled, "a car without completed laps is not stalled")
	assert.False(t, cars[2].Stalled)
}

func TestGridProcessor_PlayerFlag(t *testing.T) {
	telemetry := &model.TelemetrySnapshot{
		PlayerCarIdx: 1,
		Cars: map[string][]null.Val[float64]{
			model.FieldLapPct: {cell(0.1), cell(0.2)},
		},
	}
	info := &model.SessionInfo{
		Drivers: []model.DriverEntry{
			{CarIdx: 0, Name: "A"},
			{CarIdx: 1, Name: "B"},
		},
	}
	cars := NewGridProcessor().Process(telemetry, info)
	assert.False(t, cars[0].IsPlayer)
	assert.True(t, cars[1].IsPlayer)
}
