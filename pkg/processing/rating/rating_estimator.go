package rating

import (
	"math"

	"github.com/aarondl/opt/null"
	"github.com/samber/lo"

	"github.com/Girgetto/iracing-pitwall-tui/pkg/model"
)

// Constants of the community approximation for the iRating change. They are
// kept exactly as published; adjusting them would silently change the output
// without making it more correct.
const (
	ratingScale = 1500.0
	deltaWeight = 200.0
)

// Estimator computes a projected iRating change per classified car using a
// pairwise expected-outcome model over the ranked field. It is an
// approximation of the (undisclosed) vendor formula, not a reproduction.
type Estimator struct{}

func NewEstimator() *Estimator {
	return &Estimator{}
}

// Process assigns IRatingDelta on every classified car: positive position and
// known rating. All other cars keep an unset delta. With fewer than two
// classified cars there is no meaningful comparison and nothing is assigned.
func (e *Estimator) Process(cars []*model.CarRecord) {
	classified := lo.Filter(cars, func(c *model.CarRecord, _ int) bool {
		return c.Pos > 0 && c.IRating > 0
	})
	n := len(classified)
	if n < 2 {
		return
	}
	for _, c := range classified {
		var expected, actual float64
		for _, opp := range classified {
			if opp == c {
				continue
			}
			expected += winProbability(c.IRating, opp.IRating)
			if c.Pos < opp.Pos {
				actual++
			}
		}
		delta := math.Round((actual - expected) * (deltaWeight / float64(n)))
		c.IRatingDelta = null.From(int(delta))
	}
}

// winProbability is the logistic expectation that a beats b.
func winProbability(a, b int) float64 {
	return 1.0 / (1.0 + math.Exp(float64(b-a)/ratingScale))
}
