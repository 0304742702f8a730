package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует health-check и все маршруты API
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	// Health-check живет на корневом уровне
	router.GET("/health", h.healthCheck)

	api := router.Group("/api")
	{
		// Анализ данных инцидента моделью ранжирования
		api.POST("/ai/analyze", h.analyzeEmergency)

		// Маршруты триажа
		triage := api.Group("/triage")
		{
			triage.GET("/questionnaire", h.getQuestionnaire)
			triage.POST("/assess", h.assessTriage)
			triage.GET("/submissions", h.listSubmissions)
		}

		// Полный цикл диспетчеризации и результаты ранжирования
		api.POST("/dispatch", h.dispatch)
		api.GET("/hospitals/ranked", h.rankedHospitals)

		// Прогноз нагрузки (заглушки)
		api.GET("/forecast", h.getForecast)
		api.POST("/forecast", h.createForecast)
	}
}
