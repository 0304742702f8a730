package ranking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/models"
)

func TestFormatEmergency_AllFields(t *testing.T) {
	record := models.TriageRecord{
		UrgencyLevel:       "high",
		IncidentType:       "Neurological",
		PainLevel:          "8",
		DurationHours:      "0",
		DurationMinutes:    "5",
		CriticalSigns:      []string{"Severe Headache"},
		ConsciousnessState: "Altered",
		Description:        "Sudden onset, patient disoriented",
	}

	text := FormatEmergency(record)

	assert.Contains(t, text, "Urgency Level: high")
	assert.Contains(t, text, "Incident Type: Neurological")
	assert.Contains(t, text, "Pain Level: 8/10")
	assert.Contains(t, text, "Duration: 0h 5m")
	assert.Contains(t, text, "Critical Signs: Severe Headache")
	assert.Contains(t, text, "Consciousness State: Altered")
	assert.Contains(t, text, "Description: Sudden onset, patient disoriented")
}

func TestFormatEmergency_SectionOrder(t *testing.T) {
	record := models.DefaultTriageRecord()
	record.UrgencyLevel = "critical"
	record.IncidentType = "Cardiovascular"

	text := FormatEmergency(record)

	// Порядок секций фиксирован
	urgency := strings.Index(text, "Urgency Level:")
	incident := strings.Index(text, "Incident Type:")
	pain := strings.Index(text, "Pain Level:")
	duration := strings.Index(text, "Duration:")
	signs := strings.Index(text, "Critical Signs:")
	consciousness := strings.Index(text, "Consciousness State:")
	description := strings.Index(text, "Description:")

	assert.True(t, urgency < incident)
	assert.True(t, incident < pain)
	assert.True(t, pain < duration)
	assert.True(t, duration < signs)
	assert.True(t, signs < consciousness)
	assert.True(t, consciousness < description)
}

func TestFormatEmergency_EmptyMarkers(t *testing.T) {
	record := models.DefaultTriageRecord()
	record.UrgencyLevel = "low"
	record.IncidentType = "Other"

	text := FormatEmergency(record)

	assert.Contains(t, text, "Critical Signs: None reported")
	assert.Contains(t, text, "Description: No description provided")
}

func TestFormatEmergency_MultipleSigns(t *testing.T) {
	record := models.DefaultTriageRecord()
	record.CriticalSigns = []string{"Chest Pain", "Active Bleeding"}

	text := FormatEmergency(record)

	assert.Contains(t, text, "Critical Signs: Chest Pain, Active Bleeding")
}

func TestFormatEmergency_Deterministic(t *testing.T) {
	record := models.DefaultTriageRecord()
	record.UrgencyLevel = "moderate"
	record.IncidentType = "Respiratory"
	record.CriticalSigns = []string{"Difficulty Breathing"}

	assert.Equal(t, FormatEmergency(record), FormatEmergency(record))
}
