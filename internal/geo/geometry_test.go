package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"

	"github.com/shenikar/animal_safety_tracker/internal/models"
)

func square() []models.Coordinate {
	return []models.Coordinate{
		{Latitude: 0, Longitude: 0},
		{Latitude: 0, Longitude: 10},
		{Latitude: 10, Longitude: 10},
		{Latitude: 10, Longitude: 0},
	}
}

func TestPointInPolygon_Square(t *testing.T) {
	assert.True(t, PointInPolygon(models.Coordinate{Latitude: 5, Longitude: 5}, square()))
	assert.False(t, PointInPolygon(models.Coordinate{Latitude: 15, Longitude: 15}, square()))
	assert.False(t, PointInPolygon(models.Coordinate{Latitude: 5, Longitude: -1}, square()))
}

func TestPointInPolygon_DegeneratePolygon(t *testing.T) {
	p := models.Coordinate{Latitude: 0, Longitude: 0}

	assert.False(t, PointInPolygon(p, nil))
	assert.False(t, PointInPolygon(p, []models.Coordinate{{Latitude: 0, Longitude: 0}}))
	assert.False(t, PointInPolygon(p, []models.Coordinate{
		{Latitude: -1, Longitude: -1},
		{Latitude: 1, Longitude: 1},
	}))
}

func TestPointInPolygon_Concave(t *testing.T) {
	// Буква "U": выемка сверху посередине
	u := []models.Coordinate{
		{Latitude: 0, Longitude: 0},
		{Latitude: 0, Longitude: 9},
		{Latitude: 9, Longitude: 9},
		{Latitude: 9, Longitude: 6},
		{Latitude: 3, Longitude: 6},
		{Latitude: 3, Longitude: 3},
		{Latitude: 9, Longitude: 3},
		{Latitude: 9, Longitude: 0},
	}

	assert.True(t, PointInPolygon(models.Coordinate{Latitude: 6, Longitude: 1.5}, u))
	assert.True(t, PointInPolygon(models.Coordinate{Latitude: 1.5, Longitude: 4.5}, u))
	assert.False(t, PointInPolygon(models.Coordinate{Latitude: 6, Longitude: 4.5}, u))
}

func TestPointInPolygon_AgreesWithOrb(t *testing.T) {
	polygon := []models.Coordinate{
		{Latitude: 55.70, Longitude: 37.50},
		{Latitude: 55.80, Longitude: 37.55},
		{Latitude: 55.78, Longitude: 37.70},
		{Latitude: 55.72, Longitude: 37.68},
		{Latitude: 55.69, Longitude: 37.60},
	}
	ring := ToRing(polygon)
	orbPolygon := orb.Polygon{append(ring, ring[0])}

	for lat := 55.65; lat <= 55.85; lat += 0.013 {
		for lon := 37.45; lon <= 37.75; lon += 0.017 {
			c := models.Coordinate{Latitude: lat, Longitude: lon}
			assert.Equal(t, planar.PolygonContains(orbPolygon, ToPoint(c)), PointInPolygon(c, polygon), "lat=%f lon=%f", lat, lon)
		}
	}
}

func TestGreatCircleDistanceKm_BerlinParis(t *testing.T) {
	d := GreatCircleDistanceKm(52.5200, 13.4050, 48.8566, 2.3522)
	assert.InDelta(t, 878, d, 10)
}

func TestGreatCircleDistanceKm_AgreesWithOrb(t *testing.T) {
	a := orb.Point{13.4050, 52.5200}
	b := orb.Point{37.6173, 55.7558}

	expected := orbgeo.DistanceHaversine(a, b) / 1000
	assert.InDelta(t, expected, GreatCircleDistanceKm(a.Lat(), a.Lon(), b.Lat(), b.Lon()), 5)
}

// Ноль - обычная координата, а не "пустое значение"
func TestGreatCircleDistanceKm_ZeroCoordinatesAreValid(t *testing.T) {
	d := GreatCircleDistanceKm(0, 0, 0, 1)
	assert.InDelta(t, 111.19, d, 0.1)

	d = GreatCircleDistanceKm(0, 0, 1, 0)
	assert.InDelta(t, 111.19, d, 0.1)

	assert.Equal(t, 0.0, GreatCircleDistanceKm(0, 0, 0, 0))
}

func TestWithinRadius(t *testing.T) {
	threshold := models.Threshold{Latitude: 52.52, Longitude: 13.405, Radius: 5}

	assert.True(t, WithinRadius(models.Coordinate{Latitude: 52.53, Longitude: 13.41}, threshold))
	assert.False(t, WithinRadius(models.Coordinate{Latitude: 48.8566, Longitude: 2.3522}, threshold))
}

func TestEnclosingThreshold(t *testing.T) {
	th := EnclosingThreshold(square())

	assert.InDelta(t, 5, th.Latitude, 1e-9)
	assert.InDelta(t, 5, th.Longitude, 1e-9)
	for _, p := range square() {
		assert.True(t, WithinRadius(p, th))
	}
	assert.Equal(t, models.Threshold{}, EnclosingThreshold(nil))
}

func TestBound(t *testing.T) {
	b := Bound(square())

	assert.True(t, b.Contains(ToPoint(models.Coordinate{Latitude: 5, Longitude: 5})))
	assert.False(t, b.Contains(ToPoint(models.Coordinate{Latitude: 11, Longitude: 5})))
}

func TestValidCoordinate(t *testing.T) {
	assert.True(t, ValidCoordinate(0, 0))
	assert.True(t, ValidCoordinate(-90, 180))
	assert.False(t, ValidCoordinate(90.1, 0))
	assert.False(t, ValidCoordinate(0, -180.5))
	assert.False(t, ValidCoordinate(math.NaN(), 0))
}
