package ga

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"morningrun-router/internal/model"
)

func scoredPopulation(scores ...float64) []*model.Solution {
	vehicles := sampleVehicles()
	pop := make([]*model.Solution, len(scores))
	for i, s := range scores {
		sol := model.NewBlankSolution(vehicles)
		sol.Assignments[0].Passengers = []model.Passenger{{ID: int64(i + 1)}}
		sol.Score = s
		pop[i] = sol
	}
	return pop
}

func TestTournamentSelectReturnsTheBestContestant(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	population := scoredPopulation(1, 2, 3, 4, 5)

	winner := tournamentSelect(rng, population, len(population))

	assert.Equal(t, 5.0, winner.Score)
}

func TestTournamentSelectCapsSizeToPopulation(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	population := scoredPopulation(10, 20)

	winner := tournamentSelect(rng, population, 50)

	assert.Equal(t, 20.0, winner.Score)
}

func TestTournamentSelectReturnsAClone(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	population := scoredPopulation(1, 2, 3)

	winner := tournamentSelect(rng, population, len(population))
	winner.Score = -999
	winner.Assignments[0].Passengers[0].ID = -1

	for _, sol := range population {
		assert.NotEqual(t, -999.0, sol.Score, "mutating the tournament winner must not alter the live population")
		for _, a := range sol.Assignments {
			for _, p := range a.Passengers {
				assert.NotEqual(t, int64(-1), p.ID)
			}
		}
	}
}

func TestTournamentSelectIsDeterministicGivenSameRNGSequence(t *testing.T) {
	population := scoredPopulation(3, 1, 4, 1, 5)

	winner1 := tournamentSelect(rand.New(rand.NewSource(42)), population, 3)
	winner2 := tournamentSelect(rand.New(rand.NewSource(42)), population, 3)

	assert.Equal(t, winner1.Score, winner2.Score)
}
