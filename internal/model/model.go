// Package model holds the immutable problem inputs and the mutable
// solution state the genetic algorithm searches over. See
// internal/ga for the driver that produces and mutates Solutions.
package model

import "morningrun-router/internal/geo"

// Passenger is a person awaiting pickup. Immutable within a GA run.
type Passenger struct {
	ID  int64   `json:"id"`
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
	// Name is an optional display attribute; never consulted by scoring.
	Name string `json:"name"`
}

// Coords returns the passenger's geographic position.
func (p Passenger) Coords() geo.Point {
	return geo.Point{Lat: p.Lat, Lng: p.Lng}
}

// Vehicle is a driver's car: identity, start location, and seat capacity.
// Immutable as an input; a Solution carries its own per-vehicle assignment
// state separately (see VehicleAssignment).
type Vehicle struct {
	ID       int64   `json:"id"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Capacity int     `json:"capacity"`
	// DriverName is an optional display attribute; never consulted by scoring.
	DriverName string `json:"driver_name"`
}

// Coords returns the vehicle's start position.
func (v Vehicle) Coords() geo.Point {
	return geo.Point{Lat: v.Lat, Lng: v.Lng}
}
