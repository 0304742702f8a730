package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/apperr"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/config"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/models"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/service"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/service/mocks"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockDispatchService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockDispatchService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		HTTPPort: "8080",
	}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.RegisterRoutes(router)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func annotatedCandidates() []models.HospitalCandidate {
	return []models.HospitalCandidate{
		{
			ID:           1,
			Name:         "Hôpital Pitié-Salpêtrière",
			Address:      "47-83 Boulevard de l'Hôpital, 75013 Paris",
			Specialities: "Neurology",
			Coordinates:  models.Coordinates{Lat: 48.8384, Lon: 2.3653},
			Distance:     "2.2 km",
			ETA:          "5 min",
		},
		{
			ID:       2,
			Name:     "Hôpital Saint-Antoine",
			Address:  "184 Rue du Faubourg Saint-Antoine, 75012 Paris",
			Distance: models.RouteUnavailable,
			ETA:      models.RouteUnavailable,
		},
	}
}

func TestAnalyzeEmergency_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := AnalyzeRequest{EmergencyData: "Emergency Patient Information\nUrgency Level: high"}
	rawRanking := `{"1": {"name": "Hôpital Saint-Antoine", "geo": "48.8498,2.3826", "specialities": "General", "address": "184 Rue du Faubourg Saint-Antoine"}}`

	mockService.EXPECT().
		AnalyzeEmergency(gomock.Any(), reqBody.EmergencyData).
		Return(rawRanking, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/ai/analyze", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)

	// Сырой текст модели возвращается как есть, декодирует вызывающий
	var resp AnalyzeResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, rawRanking, resp.Response)
}

func TestAnalyzeEmergency_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().AnalyzeEmergency(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/ai/analyze", bytes.NewBufferString(`{"emergencyData": `))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"errors"`)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestAnalyzeEmergency_BlankData(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().AnalyzeEmergency(gomock.Any(), gomock.Any()).Times(0)

	// Строка из одних пробелов не проходит валидацию
	w := makeRequest(router, "POST", "/api/ai/analyze", bytes.NewBufferString(`{"emergencyData": "   "}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"errors"`)
	assert.Contains(t, w.Body.String(), "emergencyData must be a non-empty string")
}

func TestAnalyzeEmergency_UpstreamError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := AnalyzeRequest{EmergencyData: "data"}
	serviceError := fmt.Errorf("service: could not analyze emergency data: %w",
		&apperr.UpstreamError{Op: "llm", Err: fmt.Errorf("status 502")})

	mockService.EXPECT().
		AnalyzeEmergency(gomock.Any(), reqBody.EmergencyData).
		Return("", serviceError).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/ai/analyze", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)
	assert.Contains(t, w.Body.String(), `"message"`)
}

func TestAnalyzeEmergency_ParseError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := AnalyzeRequest{EmergencyData: "data"}
	serviceError := fmt.Errorf("service: could not analyze emergency data: %w",
		&apperr.ParseError{Op: "llm", Err: fmt.Errorf("invalid character 'V'")})

	mockService.EXPECT().
		AnalyzeEmergency(gomock.Any(), reqBody.EmergencyData).
		Return("", serviceError).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/ai/analyze", bytes.NewBuffer(bodyBytes))

	// Для клиента нарушение контракта моделью неотличимо от сбоя транспорта
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "failed to analyze emergency data")
}

func TestDispatch_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	submissionID := uuid.New()
	reqBody := DispatchRequest{
		UrgencyLevel:  "high",
		IncidentType:  "Cardiovascular",
		CriticalSigns: []string{"Chest Pain"},
	}

	mockService.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		Return(&service.DispatchResult{
			Submission: models.TriageSubmission{ID: submissionID},
			Hospitals:  annotatedCandidates(),
		}, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/dispatch", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp DispatchResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, submissionID, resp.SubmissionID)
	assert.Len(t, resp.Hospitals, 2)
}

func TestDispatch_MissingUrgency(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := DispatchRequest{ // Отсутствует UrgencyLevel
		IncidentType: "Traumatic",
	}

	mockService.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/dispatch", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'UrgencyLevel' failed on the 'required' tag")
}

func TestDispatch_ServiceValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := DispatchRequest{
		UrgencyLevel: "high",
		IncidentType: "Other",
	}

	mockService.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		Return(nil, &apperr.ValidationError{Field: "incidentType", Reason: "incident type is required"}).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/dispatch", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "incidentType")
}

func TestRankedHospitals_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		RankedHospitals(gomock.Any()).
		Return(annotatedCandidates(), nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/hospitals/ranked", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp HospitalsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp.Hospitals, 2)
	assert.Equal(t, "Hôpital Pitié-Salpêtrière", resp.Hospitals[0].Name)
	assert.Equal(t, "2.2 km", resp.Hospitals[0].Distance)
	assert.Equal(t, models.RouteUnavailable, resp.Hospitals[1].ETA)
}

func TestRankedHospitals_EmptySlot(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		RankedHospitals(gomock.Any()).
		Return([]models.HospitalCandidate{}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/hospitals/ranked", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"hospitals":[]`)
}

func TestGetQuestionnaire_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/triage/questionnaire", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp QuestionnaireResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, []string{"critical", "high", "moderate", "low"}, resp.UrgencyLevels)
	assert.Contains(t, resp.IncidentTypes, "Cardiovascular")
	assert.Contains(t, resp.CriticalSigns, "Chest Pain")
	assert.Equal(t, "Île-de-France", resp.Defaults.Region)
	assert.Equal(t, "0", resp.Defaults.PainLevel)
}

func TestAssessTriage_Stub(t *testing.T) {
	_, _, router := newTestHandler(t)

	// Факторы срочности передаются объектом с произвольными ключами
	body := `{"region":"Île-de-France","specialty":"Cardiologist","symptoms":["chest pain"],"urgencyFactors":{"age":"over_65"}}`
	w := makeRequest(router, "POST", "/api/triage/assess", bytes.NewBufferString(body))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp AssessResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, models.UrgencyModerate, resp.UrgencyLevel)
	assert.NotEmpty(t, resp.RecommendedAction)
	assert.NotEmpty(t, resp.EstimatedWaitTime)
}

func TestAssessTriage_EmptyFactorsObject(t *testing.T) {
	_, _, router := newTestHandler(t)

	// Пустой объект факторов проходит валидацию, отсутствующий - нет
	body := `{"region":"Île-de-France","specialty":"Cardiologist","symptoms":["chest pain"],"urgencyFactors":{}}`
	w := makeRequest(router, "POST", "/api/triage/assess", bytes.NewBufferString(body))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAssessTriage_ValidationErrors(t *testing.T) {
	_, _, router := newTestHandler(t)

	// Регион из пробелов, без симптомов и без объекта факторов
	body := `{"region":"   ","specialty":"Cardiologist","symptoms":[]}`
	w := makeRequest(router, "POST", "/api/triage/assess", bytes.NewBufferString(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"errors"`)
	assert.Contains(t, w.Body.String(), "region must be a non-empty string")
	assert.Contains(t, w.Body.String(), "symptoms must be a non-empty array")
	assert.Contains(t, w.Body.String(), "urgencyFactors must be an object")
	assert.NotContains(t, w.Body.String(), "specialty")
}

func TestAssessTriage_InvalidJSON(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "POST", "/api/triage/assess", bytes.NewBufferString(`{`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"errors"`)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestForecast_Stubs(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/forecast", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"pending"`)

	w = makeRequest(router, "POST", "/api/forecast", nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"accepted"`)
}

func TestListSubmissions_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	subs := []models.TriageSubmission{
		{ID: uuid.New(), Record: models.DefaultTriageRecord()},
	}

	mockService.EXPECT().RecentSubmissions(gomock.Any(), 20).Return(subs, nil).Times(1)

	w := makeRequest(router, "GET", "/api/triage/submissions", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []SubmissionResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, subs[0].ID, resp[0].ID)
}

func TestListSubmissions_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		RecentSubmissions(gomock.Any(), 5).
		Return(nil, fmt.Errorf("service: could not list submissions")).
		Times(1)

	w := makeRequest(router, "GET", "/api/triage/submissions?limit=5", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
}
