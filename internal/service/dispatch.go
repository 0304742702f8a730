package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/apperr"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/models"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/ranking"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/webhook"
)

// TriageRepository определяет контракт для работы с бд заявок триажа
type TriageRepository interface {
	SaveSubmission(ctx context.Context, sub *models.TriageSubmission) error
	ListRecent(ctx context.Context, limit int) ([]models.TriageSubmission, error)
}

// ResultStore определяет контракт слота результатов ранжирования
type ResultStore interface {
	SaveRankedHospitals(ctx context.Context, hospitals []models.HospitalCandidate) error
	GetRankedHospitals(ctx context.Context) ([]models.HospitalCandidate, error)
}

// HospitalRanker определяет контракт шага ранжирования больниц
type HospitalRanker interface {
	Complete(ctx context.Context, emergencyData string) (string, error)
	Rank(ctx context.Context, emergencyData string) ([]models.HospitalCandidate, error)
}

// RouteAnnotator определяет контракт раунда расчета маршрутов по кандидатам
type RouteAnnotator interface {
	Annotate(ctx context.Context, origin models.Coordinates, candidates []models.HospitalCandidate) map[int]models.RouteInfo
}

// DispatchResult - результат полного цикла диспетчеризации
type DispatchResult struct {
	Submission models.TriageSubmission    `json:"submission"`
	Hospitals  []models.HospitalCandidate `json:"hospitals"`
}

// DispatchService определяет контракт бизнес-логики диспетчеризации
type DispatchService interface {
	AnalyzeEmergency(ctx context.Context, emergencyData string) (string, error)
	Dispatch(ctx context.Context, record models.TriageRecord) (*DispatchResult, error)
	RankedHospitals(ctx context.Context) ([]models.HospitalCandidate, error)
	RecentSubmissions(ctx context.Context, limit int) ([]models.TriageSubmission, error)
}

type dispatchService struct {
	repo      TriageRepository
	results   ResultStore
	ranker    HospitalRanker
	annotator RouteAnnotator
	publisher webhook.EventPublisher
	origin    models.Coordinates
	logger    *logrus.Logger
}

func NewDispatchService(
	repo TriageRepository,
	results ResultStore,
	ranker HospitalRanker,
	annotator RouteAnnotator,
	publisher webhook.EventPublisher,
	origin models.Coordinates,
	logger *logrus.Logger,
) DispatchService {
	return &dispatchService{
		repo:      repo,
		results:   results,
		ranker:    ranker,
		annotator: annotator,
		publisher: publisher,
		origin:    origin,
		logger:    logger,
	}
}

// AnalyzeEmergency отправляет описание инцидента модели ранжирования и
// возвращает сырой текст ответа. Декодирование остается за вызывающим,
// заявка триажа не сохраняется.
func (s *dispatchService) AnalyzeEmergency(ctx context.Context, emergencyData string) (string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dispatch",
		"method":  "AnalyzeEmergency",
	})
	log.Info("Requesting ranking completion for emergency data")

	response, err := s.ranker.Complete(ctx, emergencyData)
	if err != nil {
		s.logRankingFailure(log, err)
		return "", fmt.Errorf("service: could not analyze emergency data: %w", err)
	}

	log.Info("Ranking completion returned successfully")
	return response, nil
}

// Dispatch выполняет полный цикл: сохраняет заявку, форматирует данные
// инцидента, ранжирует больницы, аннотирует маршрутами и публикует событие.
func (s *dispatchService) Dispatch(ctx context.Context, record models.TriageRecord) (*DispatchResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "dispatch",
		"method":        "Dispatch",
		"urgency_level": record.UrgencyLevel,
		"incident_type": record.IncidentType,
	})
	log.Info("Dispatching triage submission")

	// Гейт отправки: оба поля обязательны
	if record.UrgencyLevel == "" {
		return nil, &apperr.ValidationError{Field: "urgencyLevel", Reason: "urgency level is required"}
	}
	if record.IncidentType == "" {
		return nil, &apperr.ValidationError{Field: "incidentType", Reason: "incident type is required"}
	}

	sub := models.TriageSubmission{Record: record}
	// Потеря записи в журнале заявок не блокирует диспетчеризацию
	if err := s.repo.SaveSubmission(ctx, &sub); err != nil {
		log.WithError(err).Warn("Failed to persist triage submission")
	}

	emergencyData := ranking.FormatEmergency(record)

	candidates, err := s.ranker.Rank(ctx, emergencyData)
	if err != nil {
		s.logRankingFailure(log, err)
		return nil, fmt.Errorf("service: could not rank hospitals: %w", err)
	}

	// Слот результатов перезаписывается целиком: сперва кандидаты с
	// начальными метками, затем аннотированные. Последняя запись побеждает.
	if err := s.results.SaveRankedHospitals(ctx, candidates); err != nil {
		log.WithError(err).Warn("Failed to store ranked hospitals")
	}

	candidates = s.annotateRoutes(ctx, candidates)

	if err := s.results.SaveRankedHospitals(ctx, candidates); err != nil {
		log.WithError(err).Warn("Failed to store annotated hospitals")
	}

	event := webhook.DispatchEvent{
		SubmissionID:   sub.ID,
		UrgencyLevel:   record.UrgencyLevel,
		IncidentType:   record.IncidentType,
		CandidateCount: len(candidates),
		Hospitals:      candidates,
		Timestamp:      time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish dispatch event")
	}

	log.WithField("candidate_count", len(candidates)).Info("Triage submission dispatched successfully")
	return &DispatchResult{Submission: sub, Hospitals: candidates}, nil
}

// RankedHospitals возвращает содержимое слота результатов ранжирования
func (s *dispatchService) RankedHospitals(ctx context.Context) ([]models.HospitalCandidate, error) {
	hospitals, err := s.results.GetRankedHospitals(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get ranked hospitals from store")
		return nil, fmt.Errorf("service: could not get ranked hospitals: %w", err)
	}
	return hospitals, nil
}

// RecentSubmissions возвращает последние заявки триажа
func (s *dispatchService) RecentSubmissions(ctx context.Context, limit int) ([]models.TriageSubmission, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}

	subs, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list recent submissions")
		return nil, fmt.Errorf("service: could not list submissions: %w", err)
	}
	return subs, nil
}

// annotateRoutes выполняет раунд расчета маршрутов и применяет результат
// к каждому кандидату. Отказ одного поиска не влияет на остальных.
func (s *dispatchService) annotateRoutes(ctx context.Context, candidates []models.HospitalCandidate) []models.HospitalCandidate {
	routes := s.annotator.Annotate(ctx, s.origin, candidates)
	for i := range candidates {
		if info, ok := routes[candidates[i].ID]; ok {
			candidates[i].ApplyRouteInfo(info)
		}
	}
	return candidates
}

// logRankingFailure различает нарушение контракта моделью и сбой транспорта
func (s *dispatchService) logRankingFailure(log *logrus.Entry, err error) {
	if apperr.IsParse(err) {
		log.WithError(err).Error("Ranking model violated the response contract")
		return
	}
	log.WithError(err).Error("Ranking upstream call failed")
}
