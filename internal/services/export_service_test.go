package services

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/SAP-F-2025/influencer-survey/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleResponses() []*models.SurveyResponse {
	at := time.Date(2025, 6, 1, 8, 15, 0, 0, time.UTC)
	age := 31
	rating := 4

	first := submittedResponse("3b9a6f4e-1c2d-4e5f-8a7b-9c0d1e2f3a4b", at)
	first.Demographics = models.Demographics{
		Gender:             models.GenderFemale,
		AgeGroup:           models.Age25To34,
		EducationLevel:     models.EducationMaster,
		ProfessionalSector: models.SectorEmployee,
		Age:                &age,
	}
	first.SocialMedia.UsesSocialMedia = true
	first.SocialMedia.Platforms = []models.Platform{models.PlatformInstagram, models.PlatformYouTube}
	first.SocialMedia.KnownCompanies = []string{"Acme", "Globex"}
	first.InvestmentKnowledge.SelfRating = &rating
	first.AdditionalFeedback = "short, but useful"

	second := submittedResponse("7c1e2d3f-4a5b-4c6d-9e8f-0a1b2c3d4e5f", at.Add(time.Hour))
	second.Demographics.AgeGroup = models.Age18To24
	second.AdditionalFeedback = `said "fine"`

	return []*models.SurveyResponse{first, second}
}

func TestExportJSON_RoundTrip(t *testing.T) {
	store := models.SurveyDataStore{
		Responses:   sampleResponses(),
		LastUpdated: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
	}

	text, err := ExportJSON(store)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "{\n  \"responses\": ["), "output must be indented")

	var decoded models.SurveyDataStore
	require.NoError(t, json.Unmarshal([]byte(text), &decoded))

	if diff := cmp.Diff(store, decoded); diff != "" {
		t.Errorf("JSON round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestExportJSON_Empty(t *testing.T) {
	text, err := ExportJSON(models.SurveyDataStore{})
	require.NoError(t, err)
	assert.Contains(t, text, `"responses": []`)
}

func TestExportCSV(t *testing.T) {
	responses := sampleResponses()

	text := ExportCSV(responses)
	lines := strings.Split(text, "\n")

	require.Len(t, lines, len(responses)+1)
	assert.Equal(t, "id,submittedAt,ageGroup,educationLevel,professionalSector,additionalFeedback", lines[0])
	assert.Equal(t,
		`3b9a6f4e-1c2d-4e5f-8a7b-9c0d1e2f3a4b,2025-06-01T08:15:00Z,25_34,master,employee,"short, but useful"`,
		lines[1])
	// quotes without commas are written as is
	assert.Equal(t, `7c1e2d3f-4a5b-4c6d-9e8f-0a1b2c3d4e5f,2025-06-01T09:15:00Z,18_24,,,said "fine"`, lines[2])
	assert.False(t, strings.HasSuffix(text, "\n"))
}

func TestExportCSV_Empty(t *testing.T) {
	assert.Equal(t, "", ExportCSV(nil))
	assert.Equal(t, "", ExportCSV([]*models.SurveyResponse{}))
}

func TestExportCSV_UnsubmittedResponse(t *testing.T) {
	text := ExportCSV([]*models.SurveyResponse{models.NewSurveyResponse("draft")})
	assert.Equal(t, "draft,,,,,", strings.Split(text, "\n")[1])
}

func TestExportXLSX(t *testing.T) {
	data, err := ExportXLSX(sampleResponses())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Responses"}, f.GetSheetList())
	rows, err := f.GetRows("Responses")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "3b9a6f4e-1c2d-4e5f-8a7b-9c0d1e2f3a4b", rows[1][0])
	assert.Equal(t, "instagram; youtube", rows[1][8])
}

func TestExportService_Export(t *testing.T) {
	ctx := context.Background()
	g := newTestGateway(nil, newSlots())
	for _, r := range sampleResponses() {
		_, err := g.SaveCompleted(ctx, r)
		require.NoError(t, err)
	}

	svc := NewExportService(g, discardLogger()).(*exportService)
	svc.now = fixedClock(gatewayClock)

	csv, err := svc.Export(ctx, models.ExportCSV)
	require.NoError(t, err)
	assert.Equal(t, "survey-responses-20250510-120000.csv", csv.Filename)
	assert.Equal(t, "text/csv", csv.ContentType)
	assert.Equal(t, 2, csv.Count)
	assert.Len(t, strings.Split(string(csv.Data), "\n"), 3)

	js, err := svc.Export(ctx, models.ExportJSON)
	require.NoError(t, err)
	var decoded models.SurveyDataStore
	require.NoError(t, json.Unmarshal(js.Data, &decoded))
	assert.Len(t, decoded.Responses, 2)

	xlsx, err := svc.Export(ctx, models.ExportXLSX)
	require.NoError(t, err)
	assert.NotEmpty(t, xlsx.Data)

	_, err = svc.Export(ctx, "pdf")
	assert.ErrorIs(t, err, ErrInvalidExportFormat)
}
