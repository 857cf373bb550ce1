package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/SAP-F-2025/influencer-survey/internal/models"
	"github.com/xuri/excelize/v2"
)

// CSVHeader is the fixed column projection of ExportCSV.
var CSVHeader = []string{"id", "submittedAt", "ageGroup", "educationLevel", "professionalSector", "additionalFeedback"}

// ExportJSON renders the full collection as indented JSON.
func ExportJSON(store models.SurveyDataStore) (string, error) {
	if store.Responses == nil {
		store.Responses = []*models.SurveyResponse{}
	}
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode responses: %w", err)
	}
	return string(data), nil
}

// ExportCSV renders the narrow CSV projection. Values containing a comma are
// wrapped in double quotes; embedded quotes are written as is. An empty
// collection yields an empty string.
func ExportCSV(responses []*models.SurveyResponse) string {
	if len(responses) == 0 {
		return ""
	}

	lines := make([]string, 0, len(responses)+1)
	lines = append(lines, strings.Join(CSVHeader, ","))
	for _, r := range responses {
		row := csvRow(r)
		for i, v := range row {
			row[i] = csvField(v)
		}
		lines = append(lines, strings.Join(row, ","))
	}
	return strings.Join(lines, "\n")
}

func csvRow(r *models.SurveyResponse) []string {
	return []string{
		r.ID,
		formatSubmittedAt(r.SubmittedAt),
		string(r.Demographics.AgeGroup),
		string(r.Demographics.EducationLevel),
		string(r.Demographics.ProfessionalSector),
		r.AdditionalFeedback,
	}
}

func csvField(v string) string {
	if strings.Contains(v, ",") {
		return `"` + v + `"`
	}
	return v
}

func formatSubmittedAt(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

var xlsxHeader = []string{
	"ID", "Submitted At", "Gender", "Age Group", "Age", "Education Level", "Professional Sector",
	"Uses Social Media", "Platforms", "Purpose", "Known Companies", "Influencer Opinion",
	"Follows Influencers", "Follow Reasons", "Trust Level",
	"Sponsored Post Reaction", "Has Purchased Product", "Influence Level", "Preferred Influencer Type",
	"Marketing Efficiency", "Knowledge Rating", "Risk Tolerance", "Additional Feedback",
}

func xlsxRow(r *models.SurveyResponse) []interface{} {
	return []interface{}{
		r.ID,
		formatSubmittedAt(r.SubmittedAt),
		string(r.Demographics.Gender),
		string(r.Demographics.AgeGroup),
		optionalInt(r.Demographics.Age),
		string(r.Demographics.EducationLevel),
		string(r.Demographics.ProfessionalSector),
		r.SocialMedia.UsesSocialMedia,
		strings.Join(models.Strings(r.SocialMedia.Platforms), "; "),
		strings.Join(models.Strings(r.SocialMedia.Purpose), "; "),
		strings.Join(r.SocialMedia.KnownCompanies, "; "),
		string(r.SocialMedia.InfluencerOpinion),
		r.InfluencerRelations.FollowsInfluencers,
		strings.Join(models.Strings(r.InfluencerRelations.FollowReasons), "; "),
		string(r.InfluencerRelations.TrustLevel),
		string(r.Engagement.SponsoredPostReaction),
		string(r.Engagement.HasPurchasedProduct),
		string(r.PurchaseIntention.InfluenceLevel),
		string(r.PurchaseIntention.PreferredInfluencerType),
		string(r.GlobalAppreciation.MarketingEfficiency),
		optionalInt(r.InvestmentKnowledge.SelfRating),
		string(r.InvestmentKnowledge.RiskTolerance),
		r.AdditionalFeedback,
	}
}

func optionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

// ExportXLSX renders a workbook with one row per response over a wider
// projection than the CSV export.
func ExportXLSX(responses []*models.SurveyResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheetName := "Responses"

	// The new workbook starts with a single default sheet
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}

	// Write headers
	for i, header := range xlsxHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheetName, cell, header)
	}

	// Write data
	for rowIndex, r := range responses {
		for colIndex, value := range xlsxRow(r) {
			cell, err := excelize.CoordinatesToCellName(colIndex+1, rowIndex+2)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(sheetName, cell, value)
		}
	}

	// Save to buffer
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportResult is a rendered export ready to be written to a file or an
// HTTP response.
type ExportResult struct {
	Format      models.ExportFormat
	Filename    string
	ContentType string
	Data        []byte
	Count       int
}

// ExportService renders the stored collection in the requested format
type ExportService interface {
	Export(ctx context.Context, format models.ExportFormat) (*ExportResult, error)
}

type exportService struct {
	gateway PersistenceGateway
	logger  *slog.Logger
	now     func() time.Time
}

// NewExportService builds an export service reading through gateway.
func NewExportService(gateway PersistenceGateway, logger *slog.Logger) ExportService {
	return &exportService{
		gateway: gateway,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *exportService) Export(ctx context.Context, format models.ExportFormat) (*ExportResult, error) {
	stamp := s.now().UTC().Format("20060102-150405")
	result := &ExportResult{Format: format}

	switch format {
	case models.ExportJSON:
		snapshot := s.gateway.Snapshot(ctx)
		text, err := ExportJSON(snapshot)
		if err != nil {
			return nil, err
		}
		result.Data = []byte(text)
		result.Count = len(snapshot.Responses)
		result.ContentType = "application/json"
	case models.ExportCSV:
		responses := s.gateway.LoadAll(ctx)
		result.Data = []byte(ExportCSV(responses))
		result.Count = len(responses)
		result.ContentType = "text/csv"
	case models.ExportXLSX:
		responses := s.gateway.LoadAll(ctx)
		data, err := ExportXLSX(responses)
		if err != nil {
			return nil, err
		}
		result.Data = data
		result.Count = len(responses)
		result.ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidExportFormat, format)
	}

	result.Filename = fmt.Sprintf("survey-responses-%s.%s", stamp, format)
	s.logger.InfoContext(ctx, "Exported survey responses",
		"format", format,
		"count", result.Count,
		"bytes", len(result.Data))
	return result, nil
}
