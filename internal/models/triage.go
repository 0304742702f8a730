package models

import (
	"time"

	"github.com/google/uuid"
)

// Уровни срочности, типы инцидентов и состояния сознания формы триажа.
const (
	UrgencyCritical = "critical"
	UrgencyHigh     = "high"
	UrgencyModerate = "moderate"
	UrgencyLow      = "low"
)

var (
	IncidentTypes = []string{"Cardiovascular", "Respiratory", "Neurological", "Traumatic", "Other"}

	ConsciousnessStates = []string{"Conscious", "Altered", "Unconscious"}

	CriticalSigns = []string{"Chest Pain", "Difficulty Breathing", "Active Bleeding"}
)

// TriageRecord - состояние формы триажа. Плоский набор полей, мутируется
// по одному полю на каждое действие пользователя.
type TriageRecord struct {
	Region             string   `json:"region"`
	Specialty          string   `json:"specialty"`
	UrgencyLevel       string   `json:"urgencyLevel"`
	IncidentType       string   `json:"incidentType"`
	PainLevel          string   `json:"painLevel"`
	DurationHours      string   `json:"durationHours"`
	DurationMinutes    string   `json:"durationMinutes"`
	CriticalSigns      []string `json:"criticalSigns"`
	ConsciousnessState string   `json:"consciousnessState"`
	Description        string   `json:"description"`
}

// DefaultTriageRecord возвращает запись со значениями по умолчанию.
// Каждый вызов создает новый слайс критических признаков, чтобы сброс
// не оставлял ссылку на прежний массив.
func DefaultTriageRecord() TriageRecord {
	return TriageRecord{
		Region:             "Île-de-France",
		Specialty:          "Cardiologist",
		UrgencyLevel:       "",
		IncidentType:       "",
		PainLevel:          "0",
		DurationHours:      "0",
		DurationMinutes:    "0",
		CriticalSigns:      []string{},
		ConsciousnessState: "",
		Description:        "",
	}
}

// TriageSubmission - сохраненная заявка триажа.
type TriageSubmission struct {
	ID        uuid.UUID    `json:"id"`
	Record    TriageRecord `json:"record"`
	CreatedAt time.Time    `json:"created_at"`
}
