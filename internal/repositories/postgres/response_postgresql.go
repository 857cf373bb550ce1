package postgres

import (
	"context"
	"time"

	"github.com/SAP-F-2025/influencer-survey/internal/models"
	"github.com/SAP-F-2025/influencer-survey/internal/repositories"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// responseRow is the table shape of a completed response. Each section is
// kept as one jsonb column.
type responseRow struct {
	ID          string     `gorm:"primaryKey;type:uuid"`
	SubmittedAt *time.Time `gorm:"index"`

	Demographics        datatypes.JSONType[models.Demographics]        `gorm:"type:jsonb"`
	SocialMedia         datatypes.JSONType[models.SocialMedia]         `gorm:"type:jsonb"`
	InfluencerRelations datatypes.JSONType[models.InfluencerRelations] `gorm:"type:jsonb"`
	Engagement          datatypes.JSONType[models.Engagement]          `gorm:"type:jsonb"`
	PurchaseIntention   datatypes.JSONType[models.PurchaseIntention]   `gorm:"type:jsonb"`
	GlobalAppreciation  datatypes.JSONType[models.GlobalAppreciation]  `gorm:"type:jsonb"`
	InvestmentKnowledge datatypes.JSONType[models.InvestmentKnowledge] `gorm:"type:jsonb"`
	Opinions            datatypes.JSONType[models.InvestmentOpinions]  `gorm:"type:jsonb"`

	AdditionalFeedback string `gorm:"type:text"`
	CreatedAt          time.Time
}

func (responseRow) TableName() string {
	return "survey_responses"
}

func toRow(r *models.SurveyResponse) *responseRow {
	return &responseRow{
		ID:                  r.ID,
		SubmittedAt:         r.SubmittedAt,
		Demographics:        datatypes.NewJSONType(r.Demographics),
		SocialMedia:         datatypes.NewJSONType(r.SocialMedia),
		InfluencerRelations: datatypes.NewJSONType(r.InfluencerRelations),
		Engagement:          datatypes.NewJSONType(r.Engagement),
		PurchaseIntention:   datatypes.NewJSONType(r.PurchaseIntention),
		GlobalAppreciation:  datatypes.NewJSONType(r.GlobalAppreciation),
		InvestmentKnowledge: datatypes.NewJSONType(r.InvestmentKnowledge),
		Opinions:            datatypes.NewJSONType(r.Opinions),
		AdditionalFeedback:  r.AdditionalFeedback,
	}
}

func (row *responseRow) toModel() *models.SurveyResponse {
	return &models.SurveyResponse{
		ID:                  row.ID,
		SubmittedAt:         row.SubmittedAt,
		Demographics:        row.Demographics.Data(),
		SocialMedia:         row.SocialMedia.Data(),
		InfluencerRelations: row.InfluencerRelations.Data(),
		Engagement:          row.Engagement.Data(),
		PurchaseIntention:   row.PurchaseIntention.Data(),
		GlobalAppreciation:  row.GlobalAppreciation.Data(),
		InvestmentKnowledge: row.InvestmentKnowledge.Data(),
		Opinions:            row.Opinions.Data(),
		AdditionalFeedback:  row.AdditionalFeedback,
	}
}

type ResponsePostgreSQL struct {
	db *gorm.DB
}

func NewResponsePostgreSQL(db *gorm.DB) repositories.ResponseRepository {
	return &ResponsePostgreSQL{db: db}
}

// AutoMigrate creates or updates the survey_responses table
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&responseRow{})
}

func (r *ResponsePostgreSQL) List(ctx context.Context) ([]*models.SurveyResponse, error) {
	var rows []*responseRow
	if err := r.db.WithContext(ctx).
		Order("submitted_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	responses := make([]*models.SurveyResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, row.toModel())
	}
	return responses, nil
}

func (r *ResponsePostgreSQL) Insert(ctx context.Context, response *models.SurveyResponse) error {
	return r.db.WithContext(ctx).Create(toRow(response)).Error
}

func (r *ResponsePostgreSQL) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&responseRow{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *ResponsePostgreSQL) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
