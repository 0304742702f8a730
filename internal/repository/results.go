package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/models"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/service"
)

// rankedHospitalsKey - единственный слот результатов. Каждая отправка
// перезаписывает его целиком, последняя запись побеждает.
const rankedHospitalsKey = "ranked_hospitals"

type ResultStore struct {
	redisClient *redis.Client
}

func NewResultStore(client *redis.Client) service.ResultStore {
	return &ResultStore{
		redisClient: client,
	}
}

// SaveRankedHospitals перезаписывает слот результатов ранжирования в Redis
func (s *ResultStore) SaveRankedHospitals(ctx context.Context, hospitals []models.HospitalCandidate) error {
	val, err := json.Marshal(hospitals)
	if err != nil {
		return fmt.Errorf("failed to marshal ranked hospitals: %w", err)
	}

	// Без TTL: слот живет до следующей перезаписи
	if err := s.redisClient.Set(ctx, rankedHospitalsKey, val, 0).Err(); err != nil {
		return fmt.Errorf("failed to set ranked hospitals in store: %w", err)
	}
	return nil
}

// GetRankedHospitals возвращает содержимое слота. Пустой слот - не ошибка.
func (s *ResultStore) GetRankedHospitals(ctx context.Context) ([]models.HospitalCandidate, error) {
	val, err := s.redisClient.Get(ctx, rankedHospitalsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []models.HospitalCandidate{}, nil
		}
		return nil, fmt.Errorf("failed to get ranked hospitals from store: %w", err)
	}

	hospitals := make([]models.HospitalCandidate, 0)
	if err := json.Unmarshal(val, &hospitals); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ranked hospitals: %w", err)
	}
	return hospitals, nil
}
