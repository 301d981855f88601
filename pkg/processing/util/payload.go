package util

import (
	"github.com/aarondl/opt/null"
)

// SlotExtractor provides presence checked access to the named per-slot value
// arrays of a telemetry snapshot. An index beyond the array length and an
// explicit null cell are both reported as absent.
type SlotExtractor struct {
	cars map[string][]null.Val[float64]
}

func NewSlotExtractor(cars map[string][]null.Val[float64]) *SlotExtractor {
	return &SlotExtractor{cars: cars}
}

func (e *SlotExtractor) HasValue(field string, carIdx int) bool {
	_, ok := e.Float(field, carIdx)
	return ok
}

func (e *SlotExtractor) Float(field string, carIdx int) (float64, bool) {
	arr, ok := e.cars[field]
	if !ok || carIdx < 0 || carIdx >= len(arr) {
		return 0, false
	}
	if !arr[carIdx].IsValue() {
		return 0, false
	}
	return arr[carIdx].MustGet(), true
}

func (e *SlotExtractor) Int(field string, carIdx int) (int, bool) {
	val, ok := e.Float(field, carIdx)
	if !ok {
		return 0, false
	}
	return int(val), true
}

// Optional returns the cell preserving absence.
func (e *SlotExtractor) Optional(field string, carIdx int) null.Val[float64] {
	val, ok := e.Float(field, carIdx)
	if !ok {
		return null.Val[float64]{}
	}
	return null.From(val)
}
