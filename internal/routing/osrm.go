package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/swiftdispatch/emergency_dispatch_system/internal/models"
)

// OSRMLookup - клиент OSRM-совместимого сервиса маршрутизации.
type OSRMLookup struct {
	baseURL    string
	httpClient *http.Client
}

func NewOSRMLookup(baseURL string, timeout time.Duration) *OSRMLookup {
	return &OSRMLookup{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"` // метры
		Duration float64 `json:"duration"` // секунды
	} `json:"routes"`
}

// Route запрашивает автомобильный маршрут между двумя точками.
// OSRM принимает координаты в порядке lon,lat.
func (l *OSRMLookup) Route(ctx context.Context, from, to models.Coordinates) (*Route, error) {
	url := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=false",
		l.baseURL, from.Lon, from.Lat, to.Lon, to.Lat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create routing request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("routing service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusBadRequest {
		return nil, fmt.Errorf("routing service returned status: %d", resp.StatusCode)
	}

	var osrm osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&osrm); err != nil {
		return nil, fmt.Errorf("failed to decode routing response: %w", err)
	}

	switch osrm.Code {
	case "Ok":
		if len(osrm.Routes) == 0 {
			return nil, nil
		}
		r := osrm.Routes[0]
		return &Route{
			DistanceKm:      r.Distance / 1000,
			DurationMinutes: int(math.Round(r.Duration / 60)),
		}, nil
	case "NoRoute", "NoSegment":
		// Сервис отработал, маршрута между точками нет
		return nil, nil
	default:
		return nil, fmt.Errorf("routing service returned code %q", osrm.Code)
	}
}
