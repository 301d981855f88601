//nolint:thelper,funlen,lll // ok for tests
package processing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/Girgetto/iracing-pitwall-tui/pkg/processing/session"
	"github.com/Girgetto/iracing-pitwall-tui/testsupport/basedata"
)

func TestProcessor_Process(t *testing.T) {
	state := NewProcessor().Process(
		basedata.SampleTelemetry(), basedata.SampleSessionInfo())

	assert.NotNil(t, state)
	// pace car dropped, both drivers present in race order
	assert.Len(t, state.Cars, 2)
	assert.Equal(t, "Alice", state.Cars[0].DriverName)
	assert.Equal(t, "Bob", state.Cars[1].DriverName)
	assert.Equal(t, 1, state.Cars[0].Pic)
	assert.Equal(t, 2, state.Cars[1].Pic)
	assert.True(t, state.Cars[0].IsPlayer)
	assert.False(t, state.Cars[1].IsPlayer)

	// the favorite won: small symmetric exchange
	alice := state.Cars[0].IRatingDelta.MustGet()
	bob := state.Cars[1].IRatingDelta.MustGet()
	assert.Positive(t, alice)
	assert.Negative(t, bob)
	assert.Equal(t, alice, -bob)

	assert.Equal(t, "RACE", state.Summary.SessionName)
	assert.Equal(t, session.FlagStateGreen, state.Summary.FlagState)
	assert.Equal(t, 20, state.Summary.LapLimit.MustGet())
	assert.False(t, state.Summary.TimeRemain.IsValue())
	assert.False(t, state.Summary.MultiClass)
}

func TestProcessor_NilInputs(t *testing.T) {
	proc := NewProcessor()
	assert.Nil(t, proc.Process(nil, basedata.SampleSessionInfo()))
	assert.Nil(t, proc.Process(basedata.SampleTelemetry(), nil))
	assert.Nil(t, proc.Process(nil, nil))
}

func TestProcessor_InputsNotMutated(t *testing.T) {
	telemetry := basedata.SampleTelemetry()
	info := basedata.SampleSessionInfo()
	NewProcessor().Process(telemetry, info)

	if diff := cmp.Diff(basedata.SampleSessionInfo(), info); diff != "" {
		t.Errorf("roster was mutated: %s", diff)
	}
	assert.Equal(t, basedata.SampleTelemetry(), telemetry)
}
