// Package routemetrics turns an ordered pickup list into distance and time
// totals, the way internal/routing/greedy.go's buildRouteWithDistances
// accumulates distance along a stop sequence in the teacher repo — except
// here the "API" calls are replaced with the pure internal/geo Haversine
// function, since this module never talks to a routing service.
package routemetrics

import (
	"morningrun-router/internal/geo"
	"morningrun-router/internal/model"
)

// ComputeRoute returns the total distance and time for a vehicle that
// starts at vehicleStart, visits orderedPassengers in order, and ends at
// destination. An empty passenger list yields (0, 0) (spec.md §4.B).
func ComputeRoute(vehicleStart geo.Point, orderedPassengers []model.Passenger, destination geo.Point, assumedSpeedKPH float64) (distanceKm, timeMin float64) {
	if len(orderedPassengers) == 0 {
		return 0, 0
	}

	total := 0.0
	current := vehicleStart
	for _, p := range orderedPassengers {
		next := p.Coords()
		total += geo.DistanceKm(current, next)
		current = next
	}
	total += geo.DistanceKm(current, destination)

	return total, timeForDistance(total, assumedSpeedKPH)
}

// timeForDistance converts a distance into minutes at the configured
// assumed speed.
func timeForDistance(distanceKm, assumedSpeedKPH float64) float64 {
	return distanceKm / assumedSpeedKPH * 60
}

// AdditionalDistance returns the change in route length if candidate were
// appended after the vehicle's current last stop (or inserted as the sole
// stop, if the vehicle is currently empty). Used by seeders and crossover
// to greedily place spill-over passengers (spec.md §4.B).
func AdditionalDistance(vehicleStart geo.Point, currentStops []model.Passenger, candidate model.Passenger, destination geo.Point) float64 {
	candidatePoint := candidate.Coords()

	if len(currentStops) == 0 {
		return geo.DistanceKm(vehicleStart, candidatePoint) + geo.DistanceKm(candidatePoint, destination)
	}

	last := currentStops[len(currentStops)-1].Coords()
	return geo.DistanceKm(last, candidatePoint) + geo.DistanceKm(candidatePoint, destination) - geo.DistanceKm(last, destination)
}

// RecomputeAssignment fills in a VehicleAssignment's cached distance/time
// totals from its current Passengers order. Callers typically do this once
// per vehicle after mutating a Solution's assignments.
func RecomputeAssignment(a *model.VehicleAssignment, destination geo.Point, assumedSpeedKPH float64) {
	a.TotalDistanceKm, a.TotalTimeMin = ComputeRoute(a.Vehicle.Coords(), a.Passengers, destination, assumedSpeedKPH)
}
