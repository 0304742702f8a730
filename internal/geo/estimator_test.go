package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/models"
)

func TestDistance_SamePoint(t *testing.T) {
	p := models.Coordinates{Lat: 48.8566, Lon: 2.3522}

	assert.Equal(t, 0.0, Distance(p, p))
}

func TestDistance_Symmetric(t *testing.T) {
	a := models.Coordinates{Lat: 48.8566, Lon: 2.3522}
	b := models.Coordinates{Lat: 48.8384, Lon: 2.3653}

	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-12)
}

func TestDistance_KnownPair(t *testing.T) {
	// Париж (центр) -> Питье-Сальпетриер, порядка двух километров
	paris := models.Coordinates{Lat: 48.8566, Lon: 2.3522}
	salpetriere := models.Coordinates{Lat: 48.8384, Lon: 2.3653}

	d := Distance(paris, salpetriere)
	assert.InDelta(t, 2.24, d, 0.1)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0 min"},
		{8, "8 min"},
		{59, "59 min"},
		{60, "1:00"},
		{125, "2:05"},
		{600, "10:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.minutes))
	}
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "2.5 km", FormatDistance(2.5))
	assert.Equal(t, "0.0 km", FormatDistance(0))
	assert.Equal(t, "4.2 km", FormatDistance(4.249))
}

func TestEstimate_SamePoint(t *testing.T) {
	p := models.Coordinates{Lat: 50.0, Lon: 50.0}

	info := Estimate(p, p)
	assert.Equal(t, "0.0 km", info.Distance)
	assert.Equal(t, "0 min", info.ETA)
}

func TestTravelMinutes_CeilsToWholeMinutes(t *testing.T) {
	// 2.5 км при 30 км/ч = ровно 5 минут
	assert.Equal(t, 5, TravelMinutes(2.5))
	// 2.6 км = 5.2 минуты, округляется вверх
	assert.Equal(t, 6, TravelMinutes(2.6))
	// 30 км = ровно час
	assert.Equal(t, 60, TravelMinutes(30))
}
