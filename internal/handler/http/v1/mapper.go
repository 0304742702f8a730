package v1

import "github.com/swiftdispatch/emergency_dispatch_system/internal/models"

// DTOToTriageRecord преобразует DTO диспетчеризации в доменную запись триажа
func DTOToTriageRecord(dto DispatchRequest) models.TriageRecord {
	record := models.DefaultTriageRecord()
	if dto.Region != "" {
		record.Region = dto.Region
	}
	if dto.Specialty != "" {
		record.Specialty = dto.Specialty
	}
	record.UrgencyLevel = dto.UrgencyLevel
	record.IncidentType = dto.IncidentType
	if dto.PainLevel != "" {
		record.PainLevel = dto.PainLevel
	}
	if dto.DurationHours != "" {
		record.DurationHours = dto.DurationHours
	}
	if dto.DurationMinutes != "" {
		record.DurationMinutes = dto.DurationMinutes
	}
	if dto.CriticalSigns != nil {
		record.CriticalSigns = dto.CriticalSigns
	}
	record.ConsciousnessState = dto.ConsciousnessState
	record.Description = dto.Description
	return record
}

// ModelToHospitalResponse преобразует доменную модель кандидата в DTO для ответа
func ModelToHospitalResponse(model models.HospitalCandidate) HospitalResponse {
	return HospitalResponse{
		ID:           model.ID,
		Name:         model.Name,
		Address:      model.Address,
		Specialities: model.Specialities,
		Latitude:     model.Coordinates.Lat,
		Longitude:    model.Coordinates.Lon,
		Distance:     model.Distance,
		ETA:          model.ETA,
	}
}

// ModelsToHospitalResponses преобразует слайс моделей в слайс DTO
func ModelsToHospitalResponses(candidates []models.HospitalCandidate) []HospitalResponse {
	responses := make([]HospitalResponse, len(candidates))
	for i, candidate := range candidates {
		responses[i] = ModelToHospitalResponse(candidate)
	}
	return responses
}

// SubmissionToResponse преобразует сохраненную заявку в DTO для ответа
func SubmissionToResponse(sub models.TriageSubmission) SubmissionResponse {
	return SubmissionResponse{
		ID:                 sub.ID,
		Region:             sub.Record.Region,
		Specialty:          sub.Record.Specialty,
		UrgencyLevel:       sub.Record.UrgencyLevel,
		IncidentType:       sub.Record.IncidentType,
		PainLevel:          sub.Record.PainLevel,
		DurationHours:      sub.Record.DurationHours,
		DurationMinutes:    sub.Record.DurationMinutes,
		CriticalSigns:      sub.Record.CriticalSigns,
		ConsciousnessState: sub.Record.ConsciousnessState,
		Description:        sub.Record.Description,
		CreatedAt:          sub.CreatedAt,
	}
}

// SubmissionsToResponses преобразует слайс заявок в слайс DTO
func SubmissionsToResponses(subs []models.TriageSubmission) []SubmissionResponse {
	responses := make([]SubmissionResponse, len(subs))
	for i, sub := range subs {
		responses[i] = SubmissionToResponse(sub)
	}
	return responses
}
