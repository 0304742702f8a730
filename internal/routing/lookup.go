package routing

import (
	"context"

	"github.com/swiftdispatch/emergency_dispatch_system/internal/geo"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/models"
)

// Route - сырой результат поиска маршрута до одного кандидата.
type Route struct {
	DistanceKm      float64
	DurationMinutes int
}

// RouteLookup определяет контракт поиска маршрута между двумя точками.
// Возврат (nil, nil) означает "поиск выполнен, маршрут не найден".
type RouteLookup interface {
	Route(ctx context.Context, from, to models.Coordinates) (*Route, error)
}

// EstimatorLookup - запасная реализация RouteLookup на основе
// haversine-оценки. Не выполняет I/O и не имеет режима отказа.
type EstimatorLookup struct{}

func NewEstimatorLookup() *EstimatorLookup {
	return &EstimatorLookup{}
}

func (l *EstimatorLookup) Route(_ context.Context, from, to models.Coordinates) (*Route, error) {
	dist := geo.Distance(from, to)
	return &Route{
		DistanceKm:      dist,
		DurationMinutes: geo.TravelMinutes(dist),
	}, nil
}
