package processing

import (
	"github.com/Girgetto/iracing-pitwall-tui/pkg/model"
	"github.com/Girgetto/iracing-pitwall-tui/pkg/processing/grid"
	"github.com/Girgetto/iracing-pitwall-tui/pkg/processing/rank"
	"github.com/Girgetto/iracing-pitwall-tui/pkg/processing/rating"
	"github.com/Girgetto/iracing-pitwall-tui/pkg/processing/session"
)

// Processor chains the pipeline stages: merge+classify, rank, estimate,
// summarize. One Process call handles one render tick.
type Processor struct {
	gridProcessor *grid.GridProcessor
	rankProcessor *rank.RankProcessor
	estimator     *rating.Estimator
	summarizer    *session.Summarizer
}

type ProcessorOption func(proc *Processor)

func WithGridProcessor(gp *grid.GridProcessor) ProcessorOption {
	return func(proc *Processor) {
		proc.gridProcessor = gp
	}
}

func NewProcessor(opts ...ProcessorOption) *Processor {
	ret := &Processor{
		gridProcessor: grid.NewGridProcessor(),
		rankProcessor: rank.NewRankProcessor(),
		estimator:     rating.NewEstimator(),
		summarizer:    session.NewSummarizer(),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Process runs one full pipeline pass. It is a pure function of the two
// snapshots: neither input is mutated or retained, so the caller may replace
// either snapshot freely between ticks. A nil snapshot yields nil ("no data
// this tick").
func (p *Processor) Process(
	telemetry *model.TelemetrySnapshot,
	info *model.SessionInfo,
) *model.PitwallState {
	if telemetry == nil || info == nil {
		return nil
	}
	cars := p.gridProcessor.Process(telemetry, info)
	multiClass := p.rankProcessor.Process(cars)
	p.estimator.Process(cars)
	return &model.PitwallState{
		Cars:    cars,
		Summary: p.summarizer.Process(telemetry, info, multiClass),
	}
}
