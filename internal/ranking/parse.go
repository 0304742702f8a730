package ranking

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/swiftdispatch/emergency_dispatch_system/internal/apperr"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/models"
)

// maxRankedHospitals - модель ранжирует не более четырех больниц
const maxRankedHospitals = 4

type rankedHospital struct {
	Name         string       `json:"name"`
	Geo          string       `json:"geo"`
	Specialities specialities `json:"specialities"`
	Address      string       `json:"address"`
}

// specialities принимает и строку, и массив строк - модель возвращает
// поле в обоих вариантах.
type specialities string

func (s *specialities) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = specialities(single)
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = specialities(strings.Join(many, ", "))
	return nil
}

// ParseRanking декодирует строгий JSON-ответ модели (ключи "1".."4") в
// записи кандидатов с позиционными id 1..N в порядке рангов. Любая
// недекодируемая нагрузка - ParseError, без попыток починки и повтора.
func ParseRanking(content string) ([]models.HospitalCandidate, error) {
	var ranked map[string]rankedHospital
	if err := json.Unmarshal([]byte(content), &ranked); err != nil {
		return nil, &apperr.ParseError{Op: "ranking", Err: err}
	}

	candidates := make([]models.HospitalCandidate, 0, len(ranked))
	for rank := 1; rank <= maxRankedHospitals; rank++ {
		h, ok := ranked[strconv.Itoa(rank)]
		if !ok {
			break
		}

		coords, err := parseGeo(h.Geo)
		if err != nil {
			return nil, &apperr.ParseError{
				Op:  "ranking",
				Err: fmt.Errorf("rank %d: %w", rank, err),
			}
		}

		candidates = append(candidates, models.HospitalCandidate{
			ID:           rank,
			Name:         h.Name,
			Address:      h.Address,
			Specialities: string(h.Specialities),
			Coordinates:  coords,
			Distance:     models.RoutePending,
			ETA:          models.RoutePending,
		})
	}

	return candidates, nil
}

// parseGeo нормализует строку "lat,lon" в числовую пару. Строковая форма
// дальше этой границы не передается.
func parseGeo(geo string) (models.Coordinates, error) {
	parts := strings.Split(geo, ",")
	if len(parts) != 2 {
		return models.Coordinates{}, fmt.Errorf("malformed geo %q", geo)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("malformed latitude in geo %q", geo)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("malformed longitude in geo %q", geo)
	}

	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return models.Coordinates{}, fmt.Errorf("non-finite coordinates in geo %q", geo)
	}

	return models.Coordinates{Lat: lat, Lon: lon}, nil
}
