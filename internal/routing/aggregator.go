package routing

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/apperr"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/geo"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/models"
)

// Aggregator выполняет один раунд поиска маршрутов для списка кандидатов:
// все поиски стартуют одновременно, раунд завершается когда разрешился
// каждый из них, успешно или нет. Сбой одного кандидата не задерживает
// и не отменяет результаты остальных.
type Aggregator struct {
	lookup RouteLookup
	logger *logrus.Logger
}

func NewAggregator(lookup RouteLookup, logger *logrus.Logger) *Aggregator {
	return &Aggregator{
		lookup: lookup,
		logger: logger,
	}
}

// Annotate возвращает отображение id кандидата -> RouteInfo, покрывающее
// каждый входной id ровно один раз. Ошибки поиска превращаются в
// сентинельные метки и никогда не возвращаются как error.
func (a *Aggregator) Annotate(ctx context.Context, origin models.Coordinates, candidates []models.HospitalCandidate) map[int]models.RouteInfo {
	results := make(map[int]models.RouteInfo, len(candidates))
	if len(candidates) == 0 {
		return results
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)

	for _, c := range candidates {
		wg.Add(1)
		go func(c models.HospitalCandidate) {
			defer wg.Done()

			info := a.lookupOne(ctx, origin, c)

			mu.Lock()
			results[c.ID] = info
			mu.Unlock()
		}(c)
	}

	wg.Wait()
	return results
}

func (a *Aggregator) lookupOne(ctx context.Context, origin models.Coordinates, c models.HospitalCandidate) models.RouteInfo {
	route, err := a.lookup.Route(ctx, origin, c.Coordinates)
	if err != nil {
		lookupErr := &apperr.RouteLookupError{CandidateID: c.ID, Err: err}
		a.logger.WithError(lookupErr).WithField("candidate_id", c.ID).Warn("Route lookup failed")
		return models.RouteInfo{
			Distance: models.RouteError,
			ETA:      models.RouteError,
		}
	}

	if route == nil {
		a.logger.WithField("candidate_id", c.ID).Debug("No route found for candidate")
		return models.RouteInfo{
			Distance: models.RouteUnavailable,
			ETA:      models.RouteUnavailable,
		}
	}

	return models.RouteInfo{
		Distance: geo.FormatDistance(route.DistanceKm),
		ETA:      geo.FormatDuration(route.DurationMinutes),
	}
}
