package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/apperr"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/models"
)

const fourEntryRanking = `{
	"1": {"name": "Hôpital Pitié-Salpêtrière", "geo": "48.8384,2.3653", "specialities": "Neurology", "address": "47-83 Boulevard de l'Hôpital, 75013 Paris"},
	"2": {"name": "Hôpital Européen Georges-Pompidou", "geo": "48.8391,2.2739", "specialities": ["Cardiology", "Oncology"], "address": "20 Rue Leblanc, 75015 Paris"},
	"3": {"name": "Hôpital Saint-Antoine", "geo": "48.8498,2.3826", "specialities": "General", "address": "184 Rue du Faubourg Saint-Antoine, 75012 Paris"},
	"4": {"name": "Hôpital Lariboisière", "geo": "48.8810, 2.3525", "specialities": "Emergency", "address": "2 Rue Ambroise Paré, 75010 Paris"}
}`

func TestParseRanking_FourEntries(t *testing.T) {
	candidates, err := ParseRanking(fourEntryRanking)

	require.NoError(t, err)
	require.Len(t, candidates, 4)

	// Позиционные id 1..4 в порядке рангов
	for i, c := range candidates {
		assert.Equal(t, i+1, c.ID)
		assert.Equal(t, models.RoutePending, c.Distance)
		assert.Equal(t, models.RoutePending, c.ETA)
	}

	assert.Equal(t, "Hôpital Pitié-Salpêtrière", candidates[0].Name)
	assert.InDelta(t, 48.8384, candidates[0].Coordinates.Lat, 1e-9)
	assert.InDelta(t, 2.3653, candidates[0].Coordinates.Lon, 1e-9)

	// Массив specialities склеивается в строку
	assert.Equal(t, "Cardiology, Oncology", candidates[1].Specialities)

	// Пробел после запятой в geo допустим
	assert.InDelta(t, 2.3525, candidates[3].Coordinates.Lon, 1e-9)
}

func TestParseRanking_TwoEntries(t *testing.T) {
	content := `{
		"1": {"name": "A", "geo": "48.1,2.1", "specialities": "General", "address": "addr A"},
		"2": {"name": "B", "geo": "48.2,2.2", "specialities": "General", "address": "addr B"}
	}`

	candidates, err := ParseRanking(content)

	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, 1, candidates[0].ID)
	assert.Equal(t, 2, candidates[1].ID)
}

func TestParseRanking_InvalidJSON(t *testing.T) {
	candidates, err := ParseRanking(`Voici les hôpitaux recommandés: {"1": ...`)

	require.Error(t, err)
	assert.Nil(t, candidates)
	assert.True(t, apperr.IsParse(err))
	assert.False(t, apperr.IsUpstream(err))
}

func TestParseRanking_MalformedGeo(t *testing.T) {
	content := `{"1": {"name": "A", "geo": "not-a-coordinate", "specialities": "General", "address": "addr"}}`

	candidates, err := ParseRanking(content)

	require.Error(t, err)
	assert.Nil(t, candidates)
	assert.True(t, apperr.IsParse(err))
}

func TestParseRanking_NonFiniteGeo(t *testing.T) {
	content := `{"1": {"name": "A", "geo": "NaN,2.3", "specialities": "General", "address": "addr"}}`

	_, err := ParseRanking(content)

	require.Error(t, err)
	assert.True(t, apperr.IsParse(err))
}

func TestParseRanking_EmptyObject(t *testing.T) {
	candidates, err := ParseRanking(`{}`)

	require.NoError(t, err)
	assert.Empty(t, candidates)
}
