package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/SAP-F-2025/influencer-survey/internal/models"
)

// UnknownBucket collects responses with no value for a categorical field.
const UnknownBucket = "Unknown"

// Bucket is one category and the number of responses that fall into it.
type Bucket struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Distribution is a category count that keeps categories in the order they
// were first seen.
type Distribution []Bucket

// Get returns the count for value, or 0.
func (d Distribution) Get(value string) int {
	for _, b := range d {
		if b.Value == value {
			return b.Count
		}
	}
	return 0
}

// Keys returns the categories in first-seen order.
func (d Distribution) Keys() []string {
	keys := make([]string, len(d))
	for i, b := range d {
		keys[i] = b.Value
	}
	return keys
}

// Map returns the counts keyed by category.
func (d Distribution) Map() map[string]int {
	m := make(map[string]int, len(d))
	for _, b := range d {
		m[b.Value] = b.Count
	}
	return m
}

// MarshalJSON keeps an empty distribution as [] instead of null.
func (d Distribution) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Bucket(d))
}

type distributionBuilder struct {
	buckets Distribution
	index   map[string]int
}

func (b *distributionBuilder) add(value string) {
	if b.index == nil {
		b.index = make(map[string]int)
	}
	if i, ok := b.index[value]; ok {
		b.buckets[i].Count++
		return
	}
	b.index[value] = len(b.buckets)
	b.buckets = append(b.buckets, Bucket{Value: value, Count: 1})
}

func (b *distributionBuilder) result() Distribution {
	if b.buckets == nil {
		return Distribution{}
	}
	return b.buckets
}

// AverageOf sums the present values and divides by the number of responses.
// Absent values count as zero. An empty collection averages to 0.
func AverageOf(responses []*models.SurveyResponse, extract func(*models.SurveyResponse) (float64, bool)) float64 {
	if len(responses) == 0 {
		return 0
	}
	var sum float64
	for _, r := range responses {
		if v, ok := extract(r); ok {
			sum += v
		}
	}
	return sum / float64(len(responses))
}

// DistributionOf counts one category per response. Empty values go to the
// Unknown bucket.
func DistributionOf(responses []*models.SurveyResponse, extract func(*models.SurveyResponse) string) Distribution {
	var b distributionBuilder
	for _, r := range responses {
		v := extract(r)
		if v == "" {
			v = UnknownBucket
		}
		b.add(v)
	}
	return b.result()
}

// TagCountsOf counts every selected tag of every response.
func TagCountsOf(responses []*models.SurveyResponse, extract func(*models.SurveyResponse) []string) Distribution {
	var b distributionBuilder
	for _, r := range responses {
		for _, tag := range extract(r) {
			b.add(tag)
		}
	}
	return b.result()
}

// ProportionOf returns the share of responses matching pred, in [0, 1].
func ProportionOf(responses []*models.SurveyResponse, pred func(*models.SurveyResponse) bool) float64 {
	if len(responses) == 0 {
		return 0
	}
	n := 0
	for _, r := range responses {
		if pred(r) {
			n++
		}
	}
	return float64(n) / float64(len(responses))
}

// Field extractors shared by the summary and the CLI

func ageOf(r *models.SurveyResponse) (float64, bool) {
	if r.Demographics.Age == nil {
		return 0, false
	}
	return float64(*r.Demographics.Age), true
}

func knowledgeRatingOf(r *models.SurveyResponse) (float64, bool) {
	if r.InvestmentKnowledge.SelfRating == nil {
		return 0, false
	}
	return float64(*r.InvestmentKnowledge.SelfRating), true
}

// SurveySummary is the admin overview over a response collection.
type SurveySummary struct {
	TotalResponses         int       `json:"totalResponses"`
	CompletedResponses     int       `json:"completedResponses"`
	AverageAge             float64   `json:"averageAge"`
	AverageKnowledgeRating float64   `json:"averageKnowledgeRating"`
	SocialMediaUsers       float64   `json:"socialMediaUsers"`
	InfluencerFollowers    float64   `json:"influencerFollowers"`
	PurchasedAfterPromo    float64   `json:"purchasedAfterPromotion"`
	GeneratedAt            time.Time `json:"generatedAt"`

	Genders             Distribution `json:"genders"`
	AgeGroups           Distribution `json:"ageGroups"`
	EducationLevels     Distribution `json:"educationLevels"`
	ProfessionalSectors Distribution `json:"professionalSectors"`
	InfluencerOpinions  Distribution `json:"influencerOpinions"`
	TrustLevels         Distribution `json:"trustLevels"`
	MarketingEfficiency Distribution `json:"marketingEfficiency"`
	RiskTolerances      Distribution `json:"riskTolerances"`

	Platforms       Distribution `json:"platforms"`
	Purposes        Distribution `json:"purposes"`
	FollowReasons   Distribution `json:"followReasons"`
	InvestmentTypes Distribution `json:"investmentTypes"`
	Advantages      Distribution `json:"advantages"`
	Risks           Distribution `json:"risks"`
	Barriers        Distribution `json:"barriers"`
}

// Summarize computes every statistic from scratch over responses.
func Summarize(responses []*models.SurveyResponse) *SurveySummary {
	completed := 0
	for _, r := range responses {
		if r.IsComplete() {
			completed++
		}
	}

	return &SurveySummary{
		TotalResponses:         len(responses),
		CompletedResponses:     completed,
		AverageAge:             AverageOf(responses, ageOf),
		AverageKnowledgeRating: AverageOf(responses, knowledgeRatingOf),
		SocialMediaUsers: ProportionOf(responses, func(r *models.SurveyResponse) bool {
			return r.SocialMedia.UsesSocialMedia
		}),
		InfluencerFollowers: ProportionOf(responses, func(r *models.SurveyResponse) bool {
			return r.SocialMedia.UsesSocialMedia && r.InfluencerRelations.FollowsInfluencers
		}),
		PurchasedAfterPromo: ProportionOf(responses, func(r *models.SurveyResponse) bool {
			return r.Engagement.HasPurchasedProduct == models.TriStateYes
		}),

		Genders: DistributionOf(responses, func(r *models.SurveyResponse) string {
			return string(r.Demographics.Gender)
		}),
		AgeGroups: DistributionOf(responses, func(r *models.SurveyResponse) string {
			return string(r.Demographics.AgeGroup)
		}),
		EducationLevels: DistributionOf(responses, func(r *models.SurveyResponse) string {
			return string(r.Demographics.EducationLevel)
		}),
		ProfessionalSectors: DistributionOf(responses, func(r *models.SurveyResponse) string {
			return string(r.Demographics.ProfessionalSector)
		}),
		InfluencerOpinions: DistributionOf(responses, func(r *models.SurveyResponse) string {
			return string(r.SocialMedia.InfluencerOpinion)
		}),
		TrustLevels: DistributionOf(responses, func(r *models.SurveyResponse) string {
			return string(r.InfluencerRelations.TrustLevel)
		}),
		MarketingEfficiency: DistributionOf(responses, func(r *models.SurveyResponse) string {
			return string(r.GlobalAppreciation.MarketingEfficiency)
		}),
		RiskTolerances: DistributionOf(responses, func(r *models.SurveyResponse) string {
			return string(r.InvestmentKnowledge.RiskTolerance)
		}),

		Platforms: TagCountsOf(responses, func(r *models.SurveyResponse) []string {
			return models.Strings(r.SocialMedia.Platforms)
		}),
		Purposes: TagCountsOf(responses, func(r *models.SurveyResponse) []string {
			return models.Strings(r.SocialMedia.Purpose)
		}),
		FollowReasons: TagCountsOf(responses, func(r *models.SurveyResponse) []string {
			return models.Strings(r.InfluencerRelations.FollowReasons)
		}),
		InvestmentTypes: TagCountsOf(responses, func(r *models.SurveyResponse) []string {
			return models.Strings(r.InvestmentKnowledge.PreferredInvestmentTypes)
		}),
		Advantages: TagCountsOf(responses, func(r *models.SurveyResponse) []string {
			return r.Opinions.Advantages
		}),
		Risks: TagCountsOf(responses, func(r *models.SurveyResponse) []string {
			return r.Opinions.Risks
		}),
		Barriers: TagCountsOf(responses, func(r *models.SurveyResponse) []string {
			return r.Opinions.Barriers
		}),
	}
}

// StatsService summarizes the stored collection
type StatsService interface {
	Summary(ctx context.Context) *SurveySummary
}

type statsService struct {
	gateway PersistenceGateway
	logger  *slog.Logger
	now     func() time.Time
}

// NewStatsService builds a stats service reading through gateway.
func NewStatsService(gateway PersistenceGateway, logger *slog.Logger) StatsService {
	return &statsService{
		gateway: gateway,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *statsService) Summary(ctx context.Context) *SurveySummary {
	summary := Summarize(s.gateway.LoadAll(ctx))
	summary.GeneratedAt = s.now().UTC()
	s.logger.DebugContext(ctx, "Computed survey summary", "responses", summary.TotalResponses)
	return summary
}
