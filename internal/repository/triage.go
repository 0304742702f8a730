package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/models"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/service"
)

type TriageRepository struct {
	db *pgxpool.Pool
}

func NewTriageRepository(db *pgxpool.Pool) service.TriageRepository {
	return &TriageRepository{
		db: db,
	}
}

// SaveSubmission сохраняет заявку триажа в бд
func (r *TriageRepository) SaveSubmission(ctx context.Context, sub *models.TriageSubmission) error {
	query := `
		INSERT INTO triage_submissions (
			region, specialty, urgency_level, incident_type, pain_level,
			duration_hours, duration_minutes, critical_signs,
			consciousness_state, description
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		sub.Record.Region,
		sub.Record.Specialty,
		sub.Record.UrgencyLevel,
		sub.Record.IncidentType,
		sub.Record.PainLevel,
		sub.Record.DurationHours,
		sub.Record.DurationMinutes,
		sub.Record.CriticalSigns,
		sub.Record.ConsciousnessState,
		sub.Record.Description,
	).Scan(&sub.ID, &sub.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save triage submission: %w", err)
	}
	return nil
}

// ListRecent возвращает последние заявки триажа, новые первыми
func (r *TriageRepository) ListRecent(ctx context.Context, limit int) ([]models.TriageSubmission, error) {
	query := `
		SELECT
			id,
			region,
			specialty,
			urgency_level,
			incident_type,
			pain_level,
			duration_hours,
			duration_minutes,
			critical_signs,
			consciousness_state,
			description,
			created_at
		FROM triage_submissions
		ORDER BY created_at DESC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list triage submissions: %w", err)
	}
	defer rows.Close()

	subs := make([]models.TriageSubmission, 0)
	for rows.Next() {
		var sub models.TriageSubmission
		err := rows.Scan(
			&sub.ID,
			&sub.Record.Region,
			&sub.Record.Specialty,
			&sub.Record.UrgencyLevel,
			&sub.Record.IncidentType,
			&sub.Record.PainLevel,
			&sub.Record.DurationHours,
			&sub.Record.DurationMinutes,
			&sub.Record.CriticalSigns,
			&sub.Record.ConsciousnessState,
			&sub.Record.Description,
			&sub.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan triage submission row: %w", err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return subs, nil
}
