package v1

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/apperr"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/config"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/models"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/service"
)

type Handler struct {
	dispatchService service.DispatchService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(dispatchService service.DispatchService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		dispatchService: dispatchService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary Analyze emergency data
// @Description Send a free-text emergency description to the ranking model and return the raw model text. The caller decodes the ranking itself.
// @Tags AI
// @Accept json
// @Produce json
// @Param request body AnalyzeRequest true "Emergency analysis request"
// @Success 200 {object} AnalyzeResponse
// @Failure 400 {object} map[string][]string "Validation errors"
// @Failure 500 {object} map[string]string "Analysis failed"
// @Router /ai/analyze [post]
func (h *Handler) analyzeEmergency(c *gin.Context) {
	var input AnalyzeRequest
	log := h.logger.WithField("method", "analyzeEmergency")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"invalid request body"}})
		return
	}

	if strings.TrimSpace(input.EmergencyData) == "" {
		log.Warn("Validation failed: emergencyData is empty")
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"emergencyData must be a non-empty string"}})
		return
	}

	response, err := h.dispatchService.AnalyzeEmergency(c.Request.Context(), input.EmergencyData)
	if err != nil {
		if apperr.IsParse(err) {
			log.WithError(err).Error("Ranking model violated the response contract")
		} else {
			log.WithError(err).Error("Failed to analyze emergency data in service")
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "analysis failed",
			"message": "failed to analyze emergency data",
		})
		return
	}

	c.JSON(http.StatusOK, AnalyzeResponse{Response: response})
}

// @Summary Dispatch a triage submission
// @Description Persist the triage form, rank hospitals and annotate them with routes.
// @Tags Triage
// @Accept json
// @Produce json
// @Param request body DispatchRequest true "Triage dispatch request"
// @Success 200 {object} DispatchResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Dispatch failed"
// @Router /dispatch [post]
func (h *Handler) dispatch(c *gin.Context) {
	var input DispatchRequest
	log := h.logger.WithField("method", "dispatch")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.dispatchService.Dispatch(c.Request.Context(), DTOToTriageRecord(input))
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, DispatchResponse{
		SubmissionID: result.Submission.ID,
		Hospitals:    ModelsToHospitalResponses(result.Hospitals),
	})
}

// @Summary Get ranked hospitals
// @Description Get the hospitals ranked by the most recent dispatch.
// @Tags Triage
// @Accept json
// @Produce json
// @Success 200 {object} HospitalsResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hospitals/ranked [get]
func (h *Handler) rankedHospitals(c *gin.Context) {
	log := h.logger.WithField("method", "rankedHospitals")

	candidates, err := h.dispatchService.RankedHospitals(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get ranked hospitals from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, HospitalsResponse{Hospitals: ModelsToHospitalResponses(candidates)})
}

// @Summary Get the triage questionnaire
// @Description Get the form schema: urgency levels, incident types, consciousness states, critical signs and defaults.
// @Tags Triage
// @Accept json
// @Produce json
// @Success 200 {object} QuestionnaireResponse
// @Router /triage/questionnaire [get]
func (h *Handler) getQuestionnaire(c *gin.Context) {
	defaults := models.DefaultTriageRecord()

	c.JSON(http.StatusOK, QuestionnaireResponse{
		UrgencyLevels:       []string{models.UrgencyCritical, models.UrgencyHigh, models.UrgencyModerate, models.UrgencyLow},
		IncidentTypes:       models.IncidentTypes,
		ConsciousnessStates: models.ConsciousnessStates,
		CriticalSigns:       models.CriticalSigns,
		Defaults: DispatchRequest{
			Region:          defaults.Region,
			Specialty:       defaults.Specialty,
			PainLevel:       defaults.PainLevel,
			DurationHours:   defaults.DurationHours,
			DurationMinutes: defaults.DurationMinutes,
			CriticalSigns:   defaults.CriticalSigns,
		},
	})
}

// @Summary Assess a triage request
// @Description Placeholder for the automated triage assessment. Returns a fixed assessment, not wired to real logic yet.
// @Tags Triage
// @Accept json
// @Produce json
// @Param request body AssessRequest true "Triage assessment request"
// @Success 200 {object} AssessResponse
// @Failure 400 {object} map[string][]string "Validation errors"
// @Router /triage/assess [post]
func (h *Handler) assessTriage(c *gin.Context) {
	var input AssessRequest
	log := h.logger.WithField("method", "assessTriage")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"invalid request body"}})
		return
	}

	var errs []string
	if strings.TrimSpace(input.Region) == "" {
		errs = append(errs, "region must be a non-empty string")
	}
	if strings.TrimSpace(input.Specialty) == "" {
		errs = append(errs, "specialty must be a non-empty string")
	}
	if len(input.Symptoms) == 0 {
		errs = append(errs, "symptoms must be a non-empty array")
	}
	if input.UrgencyFactors == nil {
		errs = append(errs, "urgencyFactors must be an object")
	}
	if len(errs) > 0 {
		log.WithField("errors", errs).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	c.JSON(http.StatusOK, AssessResponse{
		UrgencyLevel:             models.UrgencyModerate,
		RecommendedAction:        "Visit the nearest emergency department",
		EstimatedWaitTime:        "30-45 minutes",
		TeleConsultationEligible: true,
	})
}

// @Summary Get demand forecast
// @Description Placeholder for the hospital demand forecast.
// @Tags Forecast
// @Accept json
// @Produce json
// @Success 200 {object} StubResponse
// @Router /forecast [get]
func (h *Handler) getForecast(c *gin.Context) {
	c.JSON(http.StatusOK, StubResponse{
		Status:  "pending",
		Message: "forecast is not available yet",
	})
}

// @Summary Request a demand forecast
// @Description Placeholder for requesting a hospital demand forecast.
// @Tags Forecast
// @Accept json
// @Produce json
// @Success 201 {object} StubResponse
// @Router /forecast [post]
func (h *Handler) createForecast(c *gin.Context) {
	c.JSON(http.StatusCreated, StubResponse{
		Status:  "accepted",
		Message: "forecast is not available yet",
	})
}

// @Summary List recent triage submissions
// @Description Get the most recent persisted triage submissions.
// @Tags Triage
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of submissions" default(20)
// @Success 200 {array} SubmissionResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /triage/submissions [get]
func (h *Handler) listSubmissions(c *gin.Context) {
	log := h.logger.WithField("method", "listSubmissions")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	subs, err := h.dispatchService.RecentSubmissions(c.Request.Context(), limit)
	if err != nil {
		log.WithError(err).Error("Failed to list submissions from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, SubmissionsToResponses(subs))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status healthy"
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// respondServiceError транслирует таксономию ошибок сервиса в HTTP статусы.
// Валидационные ошибки исправляет вызывающий, остальные - повторная отправка.
func (h *Handler) respondServiceError(c *gin.Context, log *logrus.Entry, err error) {
	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		log.WithError(err).Warn("Validation failed in service")
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
		return
	}

	if apperr.IsParse(err) {
		log.WithError(err).Error("Ranking model violated the response contract")
	} else {
		log.WithError(err).Error("Upstream call failed in service")
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
