package session

import (
	"math"
	"slices"
	"strconv"

	"github.com/aarondl/opt/null"

	"github.com/Girgetto/iracing-pitwall-tui/pkg/model"
)

// feed sentinels
const (
	// lap limit value standing for "unlimited"
	lapLimitUnlimited = 32767
	// a time limit of one week or more means the session is not timed
	noTimeLimit = 604800.0
	// a gap of one simulated hour per lap encodes "lapped by N"
	lappedGapThreshold = 3600.0
)

// resolved flag conditions, highest priority first
const (
	FlagStateCheckered  = "CHECKERED"
	FlagStateRed        = "RED"
	FlagStateYellow     = "YELLOW"
	FlagStateOneToGreen = "ONE_TO_GREEN"
	FlagStateWhite      = "WHITE"
	FlagStateGreen      = "GREEN"
	FlagStateNone       = "NONE"
)

const unknownSessionName = "unknown"

// Summarizer derives the session level facts of a tick.
type Summarizer struct{}

func NewSummarizer() *Summarizer {
	return &Summarizer{}
}

//nolint:whitespace // can't make the linters happy
func (s *Summarizer) Process(
	telemetry *model.TelemetrySnapshot,
	info *model.SessionInfo,
	multiClass bool,
) model.SessionSummary {
	ret := model.SessionSummary{
		SessionName: unknownSessionName,
		FlagState:   ResolveFlagState(telemetry.SessionFlags),
		MultiClass:  multiClass,
	}
	rec, ok := activeSession(info.Sessions, telemetry.SessionNum)
	if !ok {
		return ret
	}
	ret.SessionName = rec.Name
	ret.LapLimit = lapLimit(rec.Laps)
	if rec.Time > 0 && rec.Time < noTimeLimit {
		ret.TimeRemain = null.From(rec.Time)
	}
	return ret
}

// activeSession selects the session record matching the session index and
// falls back to the first record when the index has no match.
func activeSession(sessions []model.SessionRecord, num int) (model.SessionRecord, bool) {
	if len(sessions) == 0 {
		return model.SessionRecord{}, false
	}
	idx := slices.IndexFunc(sessions, func(rec model.SessionRecord) bool {
		return rec.Num == num
	})
	if idx == -1 {
		idx = 0
	}
	return sessions[idx], true
}

// lapLimit interprets the lap limit field, which arrives as a number or its
// string form. The unlimited sentinel and unparsable values yield an unset
// limit.
func lapLimit(raw any) null.Val[int] {
	var laps int
	switch v := raw.(type) {
	case float64:
		laps = int(v)
	case int:
		laps = v
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return null.Val[int]{}
		}
		laps = n
	default:
		return null.Val[int]{}
	}
	if laps <= 0 || laps >= lapLimitUnlimited {
		return null.Val[int]{}
	}
	return null.From(laps)
}

// ResolveFlagState reduces the flag bitmask to the single highest priority
// condition. Lower priority bits set at the same time are suppressed.
func ResolveFlagState(flags model.SessionFlags) string {
	cautionFamily := model.FlagCaution | model.FlagCautionWaving |
		model.FlagYellow | model.FlagYellowWaving
	greenFamily := model.FlagGreen | model.FlagGreenHeld | model.FlagStartGo

	switch {
	case flags.Has(model.FlagCheckered):
		return FlagStateCheckered
	case flags.Has(model.FlagRed):
		return FlagStateRed
	case flags.Has(cautionFamily):
		return FlagStateYellow
	case flags.Has(model.FlagOneLapToGreen):
		return FlagStateOneToGreen
	case flags.Has(model.FlagWhite):
		return FlagStateWhite
	case flags.Has(greenFamily):
		return FlagStateGreen
	default:
		return FlagStateNone
	}
}

type GapKind int

const (
	GapUnknown GapKind = iota
	GapLeader
	GapTime
	GapLapped
)

// GapInfo is the display interpretation of a gap value.
type GapInfo struct {
	Kind    GapKind
	Laps    int     // set for GapLapped
	Seconds float64 // set for GapTime
}

// InterpretGap decodes the gap field. The leader has no gap concept regardless
// of the delivered value; a gap of one hour or more per lap means the car is
// lapped.
func InterpretGap(pos int, gap null.Val[float64]) GapInfo {
	if pos == 1 {
		return GapInfo{Kind: GapLeader}
	}
	if !gap.IsValue() {
		return GapInfo{Kind: GapUnknown}
	}
	val := gap.MustGet()
	if val >= lappedGapThreshold {
		return GapInfo{Kind: GapLapped, Laps: int(math.Round(val / lappedGapThreshold))}
	}
	return GapInfo{Kind: GapTime, Seconds: val}
}
