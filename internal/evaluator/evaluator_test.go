package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"morningrun-router/internal/geo"
	"morningrun-router/internal/model"
)

func vehicle(id int64, cap int) model.Vehicle {
	return model.Vehicle{ID: id, Lat: 32.08, Lng: 34.80, Capacity: cap}
}

func passenger(id int64, lat, lng float64) model.Passenger {
	return model.Passenger{ID: id, Lat: lat, Lng: lng}
}

func TestScoreEmptySolution(t *testing.T) {
	sol := model.NewBlankSolution([]model.Vehicle{vehicle(1, 4)})
	e := New(geo.Point{Lat: 32.07, Lng: 34.79}, 0, 30)

	score, b := e.Score(sol)

	assert.Equal(t, 0.0, b.TotalDistanceKm)
	assert.Equal(t, 0, b.AssignedCount)
	assert.Equal(t, 0, b.UsedVehicles)
	assert.Equal(t, 0.0, score)
}

func TestScoreUnassignedPenaltyDominates(t *testing.T) {
	destination := geo.Point{Lat: 32.0741, Lng: 34.7922}
	v := vehicle(1, 1)
	p1 := passenger(1, 32.075, 34.795)
	p2 := passenger(2, 32.076, 34.796)

	full := model.NewBlankSolution([]model.Vehicle{v})
	full.Assignments[0].Passengers = []model.Passenger{p1}

	partial := model.NewBlankSolution([]model.Vehicle{v})
	partial.Assignments[0].Passengers = nil

	e := New(destination, 2, 30)
	scoreFull, _ := e.Score(full)
	scorePartial, _ := e.Score(partial)

	assert.Greater(t, scoreFull, scorePartial)
}

func TestScoreOverloadPenalized(t *testing.T) {
	destination := geo.Point{Lat: 32.0741, Lng: 34.7922}
	v := vehicle(1, 1)

	overloaded := model.NewBlankSolution([]model.Vehicle{v})
	overloaded.Assignments[0].Passengers = []model.Passenger{
		passenger(1, 32.075, 34.795),
		passenger(2, 32.076, 34.796),
	}

	e := New(destination, 2, 30)
	_, b := e.Score(overloaded)

	assert.Equal(t, 1, b.OverloadedVehicles)
}

func TestScoreIsPureFunction(t *testing.T) {
	destination := geo.Point{Lat: 32.0741, Lng: 34.7922}
	v := vehicle(1, 4)
	sol := model.NewBlankSolution([]model.Vehicle{v})
	sol.Assignments[0].Passengers = []model.Passenger{passenger(1, 32.075, 34.795)}

	e := New(destination, 1, 30)
	score1, _ := e.Score(sol)
	score2, _ := e.Score(sol)

	assert.Equal(t, score1, score2)
}

func TestScoreTimeIsExactRatioOfDistance(t *testing.T) {
	destination := geo.Point{Lat: 32.0741, Lng: 34.7922}
	v := vehicle(1, 4)
	sol := model.NewBlankSolution([]model.Vehicle{v})
	sol.Assignments[0].Passengers = []model.Passenger{passenger(1, 32.075, 34.795)}

	e := New(destination, 1, 30)
	e.Score(sol)

	a := sol.Assignments[0]
	assert.InDelta(t, a.TotalDistanceKm/30*60, a.TotalTimeMin, 1e-9)
}
