package rank

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"github.com/Girgetto/iracing-pitwall-tui/pkg/model"
)

// RankProcessor orders the merged record set into race order and recomputes
// the per-class positions. The class position reported by the feed is not
// trusted: it is unreliable in non-race and multi-class sessions.
type RankProcessor struct{}

func NewRankProcessor() *RankProcessor {
	return &RankProcessor{}
}

// Process sorts cars in place and assigns class positions. It reports whether
// more than one car class is present.
func (p *RankProcessor) Process(cars []*model.CarRecord) bool {
	slices.SortStableFunc(cars, compareRaceOrder)
	p.assignClassPositions(cars)
	return multiClass(cars)
}

// Positioned cars come first, ascending by the feed position. Cars without a
// position (common outside of races) follow, furthest along first. Stable
// sorting keeps the feed order on equal keys; no extra tie-break is applied.
func compareRaceOrder(a, b *model.CarRecord) int {
	switch {
	case a.Pos > 0 && b.Pos > 0:
		return cmp.Compare(a.Pos, b.Pos)
	case a.Pos > 0:
		return -1
	case b.Pos > 0:
		return 1
	default:
		return cmp.Compare(progress(b), progress(a))
	}
}

// continuous progress metric for sessions without an official running order
func progress(c *model.CarRecord) float64 {
	return float64(c.Lc) + c.LapPct
}

// walk the ordered records and count per class; an empty class label forms
// its own class
func (p *RankProcessor) assignClassPositions(cars []*model.CarRecord) {
	seen := make(map[string]int)
	for i := range cars {
		seen[cars[i].CarClass]++
		cars[i].Pic = seen[cars[i].CarClass]
	}
}

func multiClass(cars []*model.CarRecord) bool {
	classes := lo.UniqBy(cars, func(c *model.CarRecord) string {
		return c.CarClass
	})
	return len(classes) > 1
}
