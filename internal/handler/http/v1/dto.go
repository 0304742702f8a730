package v1

import (
	"time"

	"github.com/google/uuid"
)

// AnalyzeRequest DTO для анализа данных инцидента свободным текстом
// @Description DTO для анализа данных инцидента свободным текстом
type AnalyzeRequest struct {
	EmergencyData string `json:"emergencyData" validate:"required"`
}

// DispatchRequest DTO для диспетчеризации заявки триажа
// @Description DTO для диспетчеризации заявки триажа
type DispatchRequest struct {
	Region             string   `json:"region"`
	Specialty          string   `json:"specialty"`
	UrgencyLevel       string   `json:"urgencyLevel" validate:"required,oneof=critical high moderate low"`
	IncidentType       string   `json:"incidentType" validate:"required"`
	PainLevel          string   `json:"painLevel"`
	DurationHours      string   `json:"durationHours"`
	DurationMinutes    string   `json:"durationMinutes"`
	CriticalSigns      []string `json:"criticalSigns"`
	ConsciousnessState string   `json:"consciousnessState"`
	Description        string   `json:"description"`
}

// HospitalResponse DTO для ответа с информацией о больнице-кандидате
// @Description DTO для ответа с информацией о больнице-кандидате
type HospitalResponse struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Specialities string  `json:"specialities,omitempty"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Distance     string  `json:"distance"`
	ETA          string  `json:"eta"`
}

// AnalyzeResponse DTO для ответа анализа инцидента: сырой текст модели,
// вызывающий декодирует его сам
// @Description DTO для ответа анализа инцидента
type AnalyzeResponse struct {
	Response string `json:"response"`
}

// HospitalsResponse DTO для ответа со списком больниц-кандидатов
// @Description DTO для ответа со списком больниц-кандидатов
type HospitalsResponse struct {
	Hospitals []HospitalResponse `json:"hospitals"`
}

// DispatchResponse DTO для ответа диспетчеризации
// @Description DTO для ответа диспетчеризации
type DispatchResponse struct {
	SubmissionID uuid.UUID          `json:"submission_id"`
	Hospitals    []HospitalResponse `json:"hospitals"`
}

// SubmissionResponse DTO для ответа с сохраненной заявкой триажа
// @Description DTO для ответа с сохраненной заявкой триажа
type SubmissionResponse struct {
	ID                 uuid.UUID `json:"id"`
	Region             string    `json:"region"`
	Specialty          string    `json:"specialty"`
	UrgencyLevel       string    `json:"urgencyLevel"`
	IncidentType       string    `json:"incidentType"`
	PainLevel          string    `json:"painLevel"`
	DurationHours      string    `json:"durationHours"`
	DurationMinutes    string    `json:"durationMinutes"`
	CriticalSigns      []string  `json:"criticalSigns"`
	ConsciousnessState string    `json:"consciousnessState"`
	Description        string    `json:"description"`
	CreatedAt          time.Time `json:"created_at"`
}

// QuestionnaireResponse DTO со схемой формы триажа
// @Description DTO со схемой формы триажа
type QuestionnaireResponse struct {
	UrgencyLevels       []string        `json:"urgencyLevels"`
	IncidentTypes       []string        `json:"incidentTypes"`
	ConsciousnessStates []string        `json:"consciousnessStates"`
	CriticalSigns       []string        `json:"criticalSigns"`
	Defaults            DispatchRequest `json:"defaults"`
}

// AssessRequest DTO для предварительной оценки триажа. Факторы срочности
// передаются произвольным объектом, их ключи не фиксированы.
// @Description DTO для предварительной оценки триажа
type AssessRequest struct {
	Region         string         `json:"region"`
	Specialty      string         `json:"specialty"`
	Symptoms       []string       `json:"symptoms"`
	UrgencyFactors map[string]any `json:"urgencyFactors"`
}

// AssessResponse DTO с заглушкой оценки триажа
// @Description DTO с заглушкой оценки триажа
type AssessResponse struct {
	UrgencyLevel             string `json:"urgencyLevel"`
	RecommendedAction        string `json:"recommendedAction"`
	EstimatedWaitTime        string `json:"estimatedWaitTime"`
	TeleConsultationEligible bool   `json:"teleConsultationEligible"`
}

// StubResponse DTO для еще не реализованных операций
// @Description DTO для еще не реализованных операций
type StubResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
