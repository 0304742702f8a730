package geo

import (
	"fmt"
	"math"

	"github.com/swiftdispatch/emergency_dispatch_system/internal/models"
)

const (
	// earthRadiusKm - радиус Земли в км
	earthRadiusKm = 6371.0
	// avgUrbanSpeedKmh - принятая средняя городская скорость для оценки времени в пути
	avgUrbanSpeedKmh = 30.0
)

// Distance возвращает расстояние по дуге большого круга между двумя точками в км.
// Чистая функция: для конечного числового входа всегда возвращает значение,
// поведение для NaN/Inf вне контракта - координаты валидируются на границе.
func Distance(from, to models.Coordinates) float64 {
	dLat := (to.Lat - from.Lat) * math.Pi / 180
	dLon := (to.Lon - from.Lon) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(from.Lat*math.Pi/180)*math.Cos(to.Lat*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// TravelMinutes возвращает оценку времени в пути в целых минутах
// (расстояние / средняя скорость, округление вверх).
func TravelMinutes(distanceKm float64) int {
	return int(math.Ceil(distanceKm / avgUrbanSpeedKmh * 60))
}

// FormatDistance форматирует расстояние с одним десятичным знаком и единицей.
func FormatDistance(distanceKm float64) string {
	return fmt.Sprintf("%.1f km", distanceKm)
}

// FormatDuration форматирует длительность в минутах: "M min" до часа,
// "H:MM" начиная с 60 минут.
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

// Estimate возвращает готовую пару меток расстояние/время для двух точек.
func Estimate(from, to models.Coordinates) models.RouteInfo {
	dist := Distance(from, to)
	return models.RouteInfo{
		Distance: FormatDistance(dist),
		ETA:      FormatDuration(TravelMinutes(dist)),
	}
}
