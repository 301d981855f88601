package grid

import (
	"github.com/Girgetto/iracing-pitwall-tui/log"
	"github.com/Girgetto/iracing-pitwall-tui/pkg/model"
	"github.com/Girgetto/iracing-pitwall-tui/pkg/processing/util"
)

// a car below this lap fraction with completed laps is considered stalled
const StalledLapPctThreshold = 0.001

// GridProcessor joins the roster feed with the telemetry feed and derives the
// per-car classification flags. It holds no state between ticks; the candidate
// record set is a pure function of the two snapshots.
type GridProcessor struct {
	l *log.Logger
}

type GridProcessorOption func(gp *GridProcessor)

func WithLogger(l *log.Logger) GridProcessorOption {
	return func(gp *GridProcessor) {
		gp.l = l
	}
}

func NewGridProcessor(opts ...GridProcessorOption) *GridProcessor {
	gp := &GridProcessor{l: log.Default().Named("grid")}
	for _, opt := range opts {
		opt(gp)
	}
	return gp
}

// Process produces the candidate record set: every roster entry that is not
// the pace car and has a lap fraction in the current telemetry snapshot.
// Entries without telemetry are dropped, not defaulted; a record for a car
// that sent no data yet would fabricate a participant.
func (p *GridProcessor) Process(
	telemetry *model.TelemetrySnapshot,
	info *model.SessionInfo,
) []*model.CarRecord {
	ex := util.NewSlotExtractor(telemetry.Cars)
	ret := make([]*model.CarRecord, 0, len(info.Drivers))
	for i := range info.Drivers {
		entry := &info.Drivers[i]
		if entry.PaceCar() {
			continue
		}
		lapPct, ok := ex.Float(model.FieldLapPct, entry.CarIdx)
		if !ok {
			p.l.Debug("no telemetry for carIdx yet",
				log.Int("carIdx", entry.CarIdx))
			continue
		}
		ret = append(ret, p.buildRecord(entry, telemetry, ex, clampPct(lapPct)))
	}
	return ret
}

//nolint:whitespace // can't make the linters happy
func (p *GridProcessor) buildRecord(
	entry *model.DriverEntry,
	telemetry *model.TelemetrySnapshot,
	ex *util.SlotExtractor,
	lapPct float64,
) *model.CarRecord {
	rec := &model.CarRecord{
		CarIdx:     entry.CarIdx,
		DriverName: entry.Name,
		CarNumber:  entry.CarNumber,
		CarClass:   entry.CarClass,
		IRating:    entry.IRating,
		LapPct:     lapPct,
		Gap:        ex.Optional(model.FieldGap, entry.CarIdx),
		IsPlayer:   entry.CarIdx == telemetry.PlayerCarIdx,
	}
	if pos, ok := ex.Int(model.FieldPos, entry.CarIdx); ok && pos > 0 {
		rec.Pos = pos
	}
	if lc, ok := ex.Int(model.FieldLap, entry.CarIdx); ok && lc > 0 {
		rec.Lc = lc
	}
	// the feed reports laps that were never completed as negative times
	if last, ok := ex.Float(model.FieldLast, entry.CarIdx); ok && last > 0 {
		rec.Last = ex.Optional(model.FieldLast, entry.CarIdx)
	}
	if best, ok := ex.Float(model.FieldBest, entry.CarIdx); ok && best > 0 {
		rec.Best = ex.Optional(model.FieldBest, entry.CarIdx)
	}
	// a car at the start line has lap fraction ~0 as well; only a car with
	// completed laps counts as stalled
	rec.Stalled = lapPct < StalledLapPctThreshold && rec.Lc > 0
	return rec
}

func clampPct(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}
