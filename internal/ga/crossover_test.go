package ga

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"morningrun-router/internal/geo"
	"morningrun-router/internal/model"
)

func sampleVehicles() []model.Vehicle {
	return []model.Vehicle{
		{ID: 1, Lat: 32.10, Lng: 34.82, Capacity: 2},
		{ID: 2, Lat: 32.05, Lng: 34.78, Capacity: 2},
	}
}

func samplePassengers() []model.Passenger {
	return []model.Passenger{
		{ID: 1, Lat: 32.11, Lng: 34.83},
		{ID: 2, Lat: 32.095, Lng: 34.81},
		{ID: 3, Lat: 32.04, Lng: 34.77},
		{ID: 4, Lat: 32.055, Lng: 34.785},
	}
}

func solutionWithAll(vehicles []model.Vehicle, buckets [][]model.Passenger) *model.Solution {
	sol := model.NewBlankSolution(vehicles)
	for i, b := range buckets {
		sol.Assignments[i].Passengers = b
	}
	return sol
}

func TestCrossoverAssignsEveryPassengerExactlyOnce(t *testing.T) {
	vehicles := sampleVehicles()
	passengers := samplePassengers()
	destination := geo.Point{Lat: 32.0741, Lng: 34.7922}

	parent1 := solutionWithAll(vehicles, [][]model.Passenger{
		{passengers[0], passengers[1]},
		{passengers[2], passengers[3]},
	})
	parent2 := solutionWithAll(vehicles, [][]model.Passenger{
		{passengers[3], passengers[0]},
		{passengers[1], passengers[2]},
	})

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		child := crossover(rng, parent1, parent2, vehicles, destination)

		seen := map[int64]int{}
		for _, a := range child.Assignments {
			for _, p := range a.Passengers {
				seen[p.ID]++
			}
		}
		for _, p := range passengers {
			assert.Equal(t, 1, seen[p.ID], "passenger %d should appear exactly once", p.ID)
		}
	}
}

func TestCrossoverRespectsCapacityWhenPossible(t *testing.T) {
	vehicles := sampleVehicles()
	passengers := samplePassengers()
	destination := geo.Point{Lat: 32.0741, Lng: 34.7922}

	parent1 := solutionWithAll(vehicles, [][]model.Passenger{
		{passengers[0], passengers[1]},
		{passengers[2], passengers[3]},
	})
	parent2 := solutionWithAll(vehicles, [][]model.Passenger{
		{passengers[3], passengers[0]},
		{passengers[1], passengers[2]},
	})

	rng := rand.New(rand.NewSource(2))
	child := crossover(rng, parent1, parent2, vehicles, destination)

	for _, a := range child.Assignments {
		assert.LessOrEqual(t, len(a.Passengers), a.Vehicle.Capacity)
	}
}

func TestCrossoverIsDeterministicGivenSameRNGSequence(t *testing.T) {
	vehicles := sampleVehicles()
	passengers := samplePassengers()
	destination := geo.Point{Lat: 32.0741, Lng: 34.7922}

	parent1 := solutionWithAll(vehicles, [][]model.Passenger{
		{passengers[0], passengers[1]},
		{passengers[2], passengers[3]},
	})
	parent2 := solutionWithAll(vehicles, [][]model.Passenger{
		{passengers[3], passengers[0]},
		{passengers[1], passengers[2]},
	})

	rng1 := rand.New(rand.NewSource(99))
	child1 := crossover(rng1, parent1, parent2, vehicles, destination)

	rng2 := rand.New(rand.NewSource(99))
	child2 := crossover(rng2, parent1, parent2, vehicles, destination)

	for i := range child1.Assignments {
		assert.Equal(t, idsOf(child1.Assignments[i].Passengers), idsOf(child2.Assignments[i].Passengers))
	}
}

func idsOf(passengers []model.Passenger) []int64 {
	ids := make([]int64, len(passengers))
	for i, p := range passengers {
		ids[i] = p.ID
	}
	return ids
}
