package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKmSamePoint(t *testing.T) {
	p := Point{Lat: 32.0741, Lng: 34.7922}
	assert.InDelta(t, 0.0, DistanceKm(p, p), 1e-9)
}

func TestDistanceKmKnownPair(t *testing.T) {
	dest := Point{Lat: 32.0741, Lng: 34.7922}
	driver := Point{Lat: 32.0800, Lng: 34.8000}

	d := DistanceKm(dest, driver)
	assert.Greater(t, d, 0.0)
	assert.Less(t, d, 2.0)
}

func TestDistanceKmSymmetric(t *testing.T) {
	a := Point{Lat: 40.7128, Lng: -74.0060}
	b := Point{Lat: 51.5074, Lng: -0.1278}

	assert.InDelta(t, DistanceKm(a, b), DistanceKm(b, a), 1e-9)
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(Point{Lat: 90, Lng: 180}))
	assert.True(t, Valid(Point{Lat: -90, Lng: -180}))
	assert.False(t, Valid(Point{Lat: 90.0001, Lng: 0}))
	assert.False(t, Valid(Point{Lat: 0, Lng: 180.0001}))
}

func TestBearingDegreesNorth(t *testing.T) {
	from := Point{Lat: 0, Lng: 0}
	to := Point{Lat: 1, Lng: 0}
	assert.InDelta(t, 0.0, BearingDegrees(from, to), 1e-6)
}

func TestBearingDegreesEast(t *testing.T) {
	from := Point{Lat: 0, Lng: 0}
	to := Point{Lat: 0, Lng: 1}
	assert.InDelta(t, 90.0, BearingDegrees(from, to), 1e-6)
}

func TestBearingDifferenceWrap(t *testing.T) {
	assert.InDelta(t, 20.0, BearingDifference(350, 10), 1e-9)
	assert.InDelta(t, 90.0, BearingDifference(0, 90), 1e-9)
}

func TestDistanceKmTriangleInequality(t *testing.T) {
	a := Point{Lat: 32.0741, Lng: 34.7922}
	b := Point{Lat: 32.0800, Lng: 34.8000}
	c := Point{Lat: 32.1000, Lng: 34.9000}

	assert.LessOrEqual(t, DistanceKm(a, c), DistanceKm(a, b)+DistanceKm(b, c)+1e-9)
}

func TestDistanceKmHandlesAntipodal(t *testing.T) {
	a := Point{Lat: 0, Lng: 0}
	b := Point{Lat: 0, Lng: 180}
	d := DistanceKm(a, b)
	assert.InDelta(t, math.Pi*earthRadiusKm, d, 1e-6)
}
