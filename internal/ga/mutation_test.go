package ga

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"morningrun-router/internal/geo"
	"morningrun-router/internal/model"
	"morningrun-router/internal/routemetrics"
)

func totalAssigned(sol *model.Solution) int {
	n := 0
	for _, a := range sol.Assignments {
		n += len(a.Passengers)
	}
	return n
}

func TestMutateNeverChangesTotalAssignedCount(t *testing.T) {
	destination := geo.Point{Lat: 32.0741, Lng: 34.7922}
	vehicles := sampleVehicles()
	passengers := samplePassengers()

	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 50; i++ {
		sol := solutionWithAll(vehicles, [][]model.Passenger{
			{passengers[0], passengers[1]},
			{passengers[2], passengers[3]},
		})
		before := totalAssigned(sol)
		mutate(rng, sol, destination)
		assert.Equal(t, before, totalAssigned(sol))
	}
}

func TestMutateSwapExchangesOnePassengerEachWay(t *testing.T) {
	vehicles := sampleVehicles()
	passengers := samplePassengers()
	sol := solutionWithAll(vehicles, [][]model.Passenger{
		{passengers[0], passengers[1]},
		{passengers[2], passengers[3]},
	})

	rng := rand.New(rand.NewSource(3))
	mutateSwap(rng, sol)

	allIDs := map[int64]bool{}
	for _, a := range sol.Assignments {
		assert.Len(t, a.Passengers, 2)
		for _, p := range a.Passengers {
			allIDs[p.ID] = true
		}
	}
	assert.Len(t, allIDs, 4)
}

func TestMutateReorderNoOpWithSingleStop(t *testing.T) {
	vehicles := sampleVehicles()
	passengers := samplePassengers()
	sol := solutionWithAll(vehicles, [][]model.Passenger{
		{passengers[0]},
		{},
	})

	rng := rand.New(rand.NewSource(4))
	mutateReorder(rng, sol)

	assert.Equal(t, passengers[0].ID, sol.Assignments[0].Passengers[0].ID)
}

func TestMutateMoveRelocatesPassenger(t *testing.T) {
	vehicles := sampleVehicles()
	passengers := samplePassengers()
	sol := solutionWithAll(vehicles, [][]model.Passenger{
		{passengers[0], passengers[1]},
		{},
	})

	rng := rand.New(rand.NewSource(6))
	mutateMove(rng, sol)

	assert.Equal(t, 1, len(sol.Assignments[0].Passengers))
	assert.Equal(t, 1, len(sol.Assignments[1].Passengers))
}

func TestMutate2OptNeverIncreasesThatVehiclesDistance(t *testing.T) {
	destination := geo.Point{Lat: 32.0741, Lng: 34.7922}
	vehicles := sampleVehicles()
	passengers := []model.Passenger{
		{ID: 1, Lat: 32.04, Lng: 34.77},
		{ID: 2, Lat: 32.11, Lng: 34.83},
		{ID: 3, Lat: 32.02, Lng: 34.76},
		{ID: 4, Lat: 32.09, Lng: 34.79},
	}
	sol := solutionWithAll(vehicles, [][]model.Passenger{
		passengers,
		{},
	})

	before, _ := routemetrics.ComputeRoute(sol.Assignments[0].Vehicle.Coords(), sol.Assignments[0].Passengers, destination, 1)

	rng := rand.New(rand.NewSource(8))
	for i := 0; i < 10; i++ {
		mutate2Opt(rng, sol, destination)
	}

	after, _ := routemetrics.ComputeRoute(sol.Assignments[0].Vehicle.Coords(), sol.Assignments[0].Passengers, destination, 1)
	assert.LessOrEqual(t, after, before+1e-9)
}
