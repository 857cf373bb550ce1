package models

import "time"

// SurveyDataStore is the full response collection as kept in the local
// fallback slot and as exported to JSON.
type SurveyDataStore struct {
	Responses   []*SurveyResponse `json:"responses"`
	LastUpdated time.Time         `json:"lastUpdated"`
}

// EmptyDataStore is the default used when the fallback slot is missing or unreadable.
func EmptyDataStore() SurveyDataStore {
	return SurveyDataStore{Responses: []*SurveyResponse{}}
}

type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportCSV  ExportFormat = "csv"
	ExportXLSX ExportFormat = "xlsx"
)

type ExportRequest struct {
	Format ExportFormat `json:"format" form:"format" validate:"required,oneof=json csv xlsx"`
}
