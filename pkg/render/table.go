package render

import (
	"fmt"
	"io"

	"github.com/aarondl/opt/null"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Girgetto/iracing-pitwall-tui/pkg/model"
	"github.com/Girgetto/iracing-pitwall-tui/pkg/processing/session"
)

const clearSequence = "\x1b[2J\x1b[H"

// Renderer draws the ranked view as a table.
type Renderer struct {
	out         io.Writer
	clearScreen bool
}

type Option func(r *Renderer)

// WithClearScreen makes each render start at the top of the terminal.
func WithClearScreen() Option {
	return func(r *Renderer) {
		r.clearScreen = true
	}
}

func NewRenderer(out io.Writer, opts ...Option) *Renderer {
	ret := &Renderer{out: out}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// RenderWaiting is shown until both feeds delivered their first snapshot.
func (r *Renderer) RenderWaiting() {
	r.clear()
	fmt.Fprintln(r.out, "waiting for data...")
}

func (r *Renderer) Render(state *model.PitwallState) {
	if state == nil {
		r.RenderWaiting()
		return
	}
	r.clear()
	r.renderHeader(&state.Summary)

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleRounded)
	if state.Summary.MultiClass {
		t.AppendHeader(table.Row{
			"P", "PIC", "CLS", "#", "Driver", "Laps", "Last", "Best", "Gap", "iR", "ΔiR",
		})
	} else {
		t.AppendHeader(table.Row{
			"P", "#", "Driver", "Laps", "Last", "Best", "Gap", "iR", "ΔiR",
		})
	}
	for i, car := range state.Cars {
		t.AppendRow(r.carRow(car, i+1, state.Summary.MultiClass))
	}
	t.Render()
}

func (r *Renderer) renderHeader(summary *model.SessionSummary) {
	fmt.Fprintf(r.out, "%s | flag: %s | laps: %s | remaining: %s\n",
		summary.SessionName,
		summary.FlagState,
		formatLapLimit(summary.LapLimit),
		formatTimeRemain(summary.TimeRemain))
}

func (r *Renderer) carRow(car *model.CarRecord, row int, multiClass bool) table.Row {
	pos := fmt.Sprintf("%d", row)
	if car.Pos > 0 {
		pos = fmt.Sprintf("%d", car.Pos)
	}
	driver := car.DriverName
	if car.IsPlayer {
		driver = "▶ " + driver
	}
	if car.Stalled {
		driver += " (stalled)"
	}
	ret := table.Row{pos}
	if multiClass {
		ret = append(ret, fmt.Sprintf("%d", car.Pic), car.CarClass)
	}
	ret = append(ret,
		car.CarNumber,
		driver,
		car.Lc,
		formatLaptime(car.Last),
		formatLaptime(car.Best),
		formatGap(car),
		formatRating(car.IRating),
		formatDelta(car.IRatingDelta),
	)
	return ret
}

func (r *Renderer) clear() {
	if r.clearScreen {
		fmt.Fprint(r.out, clearSequence)
	}
}

func formatLaptime(val null.Val[float64]) string {
	if !val.IsValue() {
		return "-"
	}
	secs := val.MustGet()
	mins := int(secs) / 60
	return fmt.Sprintf("%d:%06.3f", mins, secs-float64(mins*60))
}

func formatGap(car *model.CarRecord) string {
	info := session.InterpretGap(car.Pos, car.Gap)
	switch info.Kind {
	case session.GapLeader:
		return "leader"
	case session.GapLapped:
		if info.Laps == 1 {
			return "1 lap"
		}
		return fmt.Sprintf("%d laps", info.Laps)
	case session.GapTime:
		return fmt.Sprintf("%.1f", info.Seconds)
	default:
		return "-"
	}
}

func formatRating(rating int) string {
	if rating == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", rating)
}

func formatDelta(delta null.Val[int]) string {
	if !delta.IsValue() {
		return "-"
	}
	return fmt.Sprintf("%+d", delta.MustGet())
}

func formatLapLimit(limit null.Val[int]) string {
	if !limit.IsValue() {
		return "unlimited"
	}
	return fmt.Sprintf("%d", limit.MustGet())
}

func formatTimeRemain(remain null.Val[float64]) string {
	if !remain.IsValue() {
		return "n/a"
	}
	secs := int(remain.MustGet())
	return fmt.Sprintf("%d:%02d:%02d", secs/3600, secs%3600/60, secs%60)
}
