package pitwall

import (
	"context"
	"time"

	"github.com/Girgetto/iracing-pitwall-tui/log"
	"github.com/Girgetto/iracing-pitwall-tui/pkg/processing"
	"github.com/Girgetto/iracing-pitwall-tui/pkg/render"
	"github.com/Girgetto/iracing-pitwall-tui/pkg/source"
)

// Pitwall drives the render loop: once per tick it polls both feeds, runs the
// pipeline and renders the result. While either feed has not delivered yet,
// the tick is skipped and a waiting notice is rendered instead.
type Pitwall struct {
	src      source.DataSource
	renderer *render.Renderer
	proc     *processing.Processor
	interval time.Duration
	l        *log.Logger
}

type Option func(p *Pitwall)

func WithInterval(interval time.Duration) Option {
	return func(p *Pitwall) {
		p.interval = interval
	}
}

func WithProcessor(proc *processing.Processor) Option {
	return func(p *Pitwall) {
		p.proc = proc
	}
}

func New(src source.DataSource, renderer *render.Renderer, opts ...Option) *Pitwall {
	ret := &Pitwall{
		src:      src,
		renderer: renderer,
		proc:     processing.NewProcessor(),
		interval: 500 * time.Millisecond,
		l:        log.Default().Named("pitwall"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

func (p *Pitwall) Run(ctx context.Context) error {
	p.l.Info("starting render loop", log.Duration("interval", p.interval))
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			p.Tick()
		}
	}
}

// Tick runs one render cycle. Both snapshots are read once up front; the
// sources may replace them at any time afterwards.
func (p *Pitwall) Tick() {
	telemetry, haveTelemetry := p.src.Telemetry()
	info, haveInfo := p.src.SessionInfo()
	if !haveTelemetry || !haveInfo {
		p.renderer.RenderWaiting()
		return
	}
	p.renderer.Render(p.proc.Process(telemetry, info))
}
