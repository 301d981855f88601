//nolint:thelper,lll // ok for tests
package util

import (
	"testing"

	"github.com/aarondl/opt/null"
	"github.com/stretchr/testify/assert"

	"github.com/Girgetto/iracing-pitwall-tui/pkg/model"
)

func sampleCars() map[string][]null.Val[float64] {
	return map[string][]null.Val[float64]{
		model.FieldLapPct: {null.From(0.25), null.Val[float64]{}, null.From(0.5)},
		model.FieldLap:    {null.From(3.0)},
	}
}

func TestSlotExtractor_Float(t *testing.T) {
	ex := NewSlotExtractor(sampleCars())

	val, ok := ex.Float(model.FieldLapPct, 0)
	assert.True(t, ok)
	assert.Equal(t, 0.25, val)

	// explicit null cell
	_, ok = ex.Float(model.FieldLapPct, 1)
	assert.False(t, ok)

	// index beyond array length
	_, ok = ex.Float(model.FieldLap, 2)
	assert.False(t, ok)

	// unknown field
	_, ok = ex.Float("unknown", 0)
	assert.False(t, ok)

	_, ok = ex.Float(model.FieldLapPct, -1)
	assert.False(t, ok)
}

func TestSlotExtractor_Int(t *testing.T) {
	ex := NewSlotExtractor(sampleCars())

	val, ok := ex.Int(model.FieldLap, 0)
	assert.True(t, ok)
	assert.Equal(t, 3, val)
}

func TestSlotExtractor_Optional(t *testing.T) {
	ex := NewSlotExtractor(sampleCars())

	assert.True(t, ex.Optional(model.FieldLapPct, 0).IsValue())
	// both absence forms look identical to the caller
	assert.False(t, ex.Optional(model.FieldLapPct, 1).IsValue())
	assert.False(t, ex.Optional(model.FieldLapPct, 99).IsValue())
}
