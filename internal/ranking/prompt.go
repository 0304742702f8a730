package ranking

import (
	"fmt"
	"strings"

	"github.com/swiftdispatch/emergency_dispatch_system/internal/models"
)

// FormatEmergency сериализует запись триажа в текстовую сводку для модели
// ранжирования. Порядок секций фиксирован, сериализация детерминированная.
// Валидация здесь не выполняется - запись считается проверенной формой.
func FormatEmergency(record models.TriageRecord) string {
	var b strings.Builder

	b.WriteString("Emergency Patient Information\n")
	fmt.Fprintf(&b, "Urgency Level: %s\n", record.UrgencyLevel)
	fmt.Fprintf(&b, "Incident Type: %s\n", record.IncidentType)
	fmt.Fprintf(&b, "Pain Level: %s/10\n", record.PainLevel)
	fmt.Fprintf(&b, "Duration: %sh %sm\n", record.DurationHours, record.DurationMinutes)

	signs := "None reported"
	if len(record.CriticalSigns) > 0 {
		signs = strings.Join(record.CriticalSigns, ", ")
	}
	fmt.Fprintf(&b, "Critical Signs: %s\n", signs)

	fmt.Fprintf(&b, "Consciousness State: %s\n", record.ConsciousnessState)

	description := "No description provided"
	if record.Description != "" {
		description = record.Description
	}
	fmt.Fprintf(&b, "Description: %s", description)

	return b.String()
}
