// Package geo содержит чистые геометрические функции: попадание точки в полигон
// и расстояние по большому кругу.
package geo

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/shenikar/animal_safety_tracker/internal/models"
)

// EarthRadiusKm - средний радиус Земли
const EarthRadiusKm = 6371.0

// PointInPolygon проверяет попадание точки в полигон методом трассировки луча.
// Полигон из менее чем трех вершин всегда возвращает false.
// Точки на границе классифицируются как получится: это допустимая неоднозначность.
func PointInPolygon(point models.Coordinate, polygon []models.Coordinate) bool {
	n := len(polygon)
	if n < 3 {
		return false
	}

	x, y := point.Longitude, point.Latitude
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := polygon[i].Longitude, polygon[i].Latitude
		xj, yj := polygon[j].Longitude, polygon[j].Latitude

		if (yi > y) != (yj > y) {
			xCross := (xj-xi)*(y-yi)/(yj-yi) + xi
			if x < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// GreatCircleDistanceKm считает расстояние по формуле гаверсинусов.
// Нулевые координаты считаются валидными (экватор и нулевой меридиан).
func GreatCircleDistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

// WithinRadius проверяет, что точка лежит в пределах порога (радиус в км)
func WithinRadius(point models.Coordinate, threshold models.Threshold) bool {
	d := GreatCircleDistanceKm(threshold.Latitude, threshold.Longitude, point.Latitude, point.Longitude)
	return d <= threshold.Radius
}

// EnclosingThreshold описывает полигон окружностью: центр - среднее вершин,
// радиус - расстояние до самой дальней вершины.
func EnclosingThreshold(polygon []models.Coordinate) models.Threshold {
	if len(polygon) == 0 {
		return models.Threshold{}
	}

	var sumLat, sumLon float64
	for _, p := range polygon {
		sumLat += p.Latitude
		sumLon += p.Longitude
	}
	center := models.Threshold{
		Latitude:  sumLat / float64(len(polygon)),
		Longitude: sumLon / float64(len(polygon)),
	}

	for _, p := range polygon {
		d := GreatCircleDistanceKm(center.Latitude, center.Longitude, p.Latitude, p.Longitude)
		if d > center.Radius {
			center.Radius = d
		}
	}
	return center
}

// Bound возвращает ограничивающий прямоугольник полигона (X - долгота, Y - широта)
func Bound(polygon []models.Coordinate) orb.Bound {
	return ToRing(polygon).Bound()
}

// ToRing переводит вершины в кольцо orb
func ToRing(polygon []models.Coordinate) orb.Ring {
	ring := make(orb.Ring, 0, len(polygon))
	for _, p := range polygon {
		ring = append(ring, orb.Point{p.Longitude, p.Latitude})
	}
	return ring
}

// ToPoint переводит координату в точку orb
func ToPoint(c models.Coordinate) orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// ValidCoordinate проверяет диапазоны широты и долготы
func ValidCoordinate(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
