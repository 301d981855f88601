//nolint:thelper,lll // ok for tests
package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Girgetto/iracing-pitwall-tui/pkg/model"
)

func TestEstimator_TooFewClassified(t *testing.T) {
	cars := []*model.CarRecord{
		{Pos: 1, IRating: 2000},
		{Pos: 2, IRating: 0}, // unrated, not classified
		{Pos: 0, IRating: 1800},
	}
	NewEstimator().Process(cars)
	for _, c := range cars {
		assert.False(t, c.IRatingDelta.IsValue())
	}
}

func TestEstimator_EqualRatings(t *testing.T) {
	cars := []*model.CarRecord{
		{Pos: 1, IRating: 2000},
		{Pos: 2, IRating: 2000},
	}
	NewEstimator().Process(cars)
	// even field: the winner gains exactly what the loser pays
	assert.Equal(t, 50, cars[0].IRatingDelta.MustGet())
	assert.Equal(t, -50, cars[1].IRatingDelta.MustGet())
}

func TestEstimator_FavoriteWins(t *testing.T) {
	cars := []*model.CarRecord{
		{Pos: 1, IRating: 2000},
		{Pos: 2, IRating: 1800},
	}
	NewEstimator().Process(cars)
	// the expected outcome happened, so the exchange stays small
	assert.Equal(t, 47, cars[0].IRatingDelta.MustGet())
	assert.Equal(t, -47, cars[1].IRatingDelta.MustGet())
}

func TestEstimator_UpsetPaysMore(t *testing.T) {
	cars := []*model.CarRecord{
		{Pos: 1, IRating: 1800},
		{Pos: 2, IRating: 2000},
	}
	NewEstimator().Process(cars)
	winner := cars[0].IRatingDelta.MustGet()
	loser := cars[1].IRatingDelta.MustGet()
	assert.Positive(t, winner)
	assert.Negative(t, loser)
	assert.Greater(t, winner, 50, "beating a higher rated opponent pays more than an even win")
}

func TestEstimator_SkipsUnclassified(t *testing.T) {
	cars := []*model.CarRecord{
		{Pos: 1, IRating: 2000},
		{Pos: 2, IRating: 1800},
		{Pos: 0, IRating: 2200},
		{Pos: 3, IRating: 0},
	}
	NewEstimator().Process(cars)
	assert.True(t, cars[0].IRatingDelta.IsValue())
	assert.True(t, cars[1].IRatingDelta.IsValue())
	assert.False(t, cars[2].IRatingDelta.IsValue())
	assert.False(t, cars[3].IRatingDelta.IsValue())
}

func TestWinProbability(t *testing.T) {
	assert.InDelta(t, 0.5, winProbability(2000, 2000), 1e-9)
	assert.Greater(t, winProbability(2000, 1800), 0.5)
	assert.Less(t, winProbability(1800, 2000), 0.5)
	// complementary by construction
	sum := winProbability(2000, 1800) + winProbability(1800, 2000)
	assert.InDelta(t, 1.0, sum, 1e-9)
}
