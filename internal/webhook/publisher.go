package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/models"
)

const (
	dispatchQueueKey = "dispatch_events"
)

// DispatchEvent - событие завершенной диспетчеризации: заявка обработана,
// больницы ранжированы и аннотированы маршрутами.
type DispatchEvent struct {
	SubmissionID   uuid.UUID                  `json:"submission_id"`
	UrgencyLevel   string                     `json:"urgency_level"`
	IncidentType   string                     `json:"incident_type"`
	CandidateCount int                        `json:"candidate_count"`
	Hospitals      []models.HospitalCandidate `json:"hospitals,omitempty"`
	Timestamp      time.Time                  `json:"timestamp"`
}

// EventPublisher - интерфейс для публикации событий диспетчеризации
type EventPublisher interface {
	Publish(ctx context.Context, event DispatchEvent) error
}

// RedisEventPublisher - реализация EventPublisher, использующая Redis
type RedisEventPublisher struct {
	redisClient *redis.Client
}

// NewRedisEventPublisher создает новый RedisEventPublisher
func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: client,
	}
}

// Publish публикует событие диспетчеризации в очередь Redis
func (p *RedisEventPublisher) Publish(ctx context.Context, event DispatchEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal dispatch event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, dispatchQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish dispatch event to Redis: %w", err)
	}
	return nil
}
