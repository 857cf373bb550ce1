package models

import "time"

// SurveyResponse is one respondent's answer set. It is a draft until
// SubmittedAt is set.
type SurveyResponse struct {
	ID          string     `json:"id" validate:"required"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`

	Demographics        Demographics        `json:"demographics"`
	SocialMedia         SocialMedia         `json:"socialMedia"`
	InfluencerRelations InfluencerRelations `json:"influencerRelations"`
	Engagement          Engagement          `json:"engagement"`
	PurchaseIntention   PurchaseIntention   `json:"purchaseIntention"`
	GlobalAppreciation  GlobalAppreciation  `json:"globalAppreciation"`

	// Investment variant of the questionnaire
	InvestmentKnowledge InvestmentKnowledge `json:"investmentKnowledge"`
	Opinions            InvestmentOpinions  `json:"opinions"`

	AdditionalFeedback string `json:"additionalFeedback,omitempty" validate:"max=5000"`
}

type Demographics struct {
	Gender             Gender             `json:"gender" validate:"gender"`
	AgeGroup           AgeGroup           `json:"ageGroup" validate:"age_group"`
	EducationLevel     EducationLevel     `json:"educationLevel" validate:"education_level"`
	ProfessionalSector ProfessionalSector `json:"professionalSector" validate:"professional_sector"`
	Age                *int               `json:"age,omitempty" validate:"omitempty,min=0,max=120"`
}

type SocialMedia struct {
	UsesSocialMedia   bool       `json:"usesSocialMedia"`
	Platforms         []Platform `json:"platforms" validate:"unique,dive,platform"`
	Purpose           []Purpose  `json:"purpose" validate:"unique,dive,purpose"`
	FrequentUsage     string     `json:"frequentUsage" validate:"max=500"`
	KnownCompanies    []string   `json:"knownCompanies" validate:"dive,max=200"`
	InfluencerOpinion Opinion    `json:"influencerOpinion" validate:"opinion"`
}

type InfluencerRelations struct {
	FollowsInfluencers bool           `json:"followsInfluencers"`
	FollowReasons      []FollowReason `json:"followReasons" validate:"unique,dive,follow_reason"`
	OtherFollowReason  string         `json:"otherFollowReason" validate:"max=500"`
	TrustLevel         TrustLevel     `json:"trustLevel" validate:"trust_level"`
}

type Engagement struct {
	HasLikedSponsoredPost bool                  `json:"hasLikedSponsoredPost"`
	SponsoredPostReaction SponsoredPostReaction `json:"sponsoredPostReaction" validate:"sponsored_post_reaction"`
	HasResearchedProduct  bool                  `json:"hasResearchedProduct"`
	HasPurchasedProduct   TriState              `json:"hasPurchasedProduct" validate:"tri_state"`
}

type PurchaseIntention struct {
	InfluenceLevel          InfluenceLevel `json:"influenceLevel" validate:"influence_level"`
	PreferredInfluencerType InfluencerType `json:"preferredInfluencerType" validate:"influencer_type"`
	IsLoyalToInfluencers    bool           `json:"isLoyalToInfluencers"`
	LoyaltyReason           string         `json:"loyaltyReason" validate:"max=500"`
}

type GlobalAppreciation struct {
	MarketingEfficiency Efficiency `json:"marketingEfficiency" validate:"efficiency"`
	AdditionalRemarks   string     `json:"additionalRemarks" validate:"max=2000"`
}

type InvestmentKnowledge struct {
	SelfRating               *int             `json:"selfRating,omitempty" validate:"omitempty,min=1,max=5"`
	HasInvested              bool             `json:"hasInvested"`
	RiskTolerance            RiskTolerance    `json:"riskTolerance" validate:"risk_tolerance"`
	PreferredInvestmentTypes []InvestmentType `json:"preferredInvestmentTypes" validate:"unique,dive,investment_type"`
}

// InvestmentOpinions holds free tag sets picked by the respondent.
type InvestmentOpinions struct {
	Advantages []string `json:"advantages" validate:"unique"`
	Risks      []string `json:"risks" validate:"unique"`
	Barriers   []string `json:"barriers" validate:"unique"`
}

// NewSurveyResponse returns the empty template for a new respondent.
func NewSurveyResponse(id string) *SurveyResponse {
	return &SurveyResponse{
		ID: id,
		SocialMedia: SocialMedia{
			Platforms:      []Platform{},
			Purpose:        []Purpose{},
			KnownCompanies: []string{},
		},
		InfluencerRelations: InfluencerRelations{
			FollowReasons: []FollowReason{},
		},
		InvestmentKnowledge: InvestmentKnowledge{
			PreferredInvestmentTypes: []InvestmentType{},
		},
		Opinions: InvestmentOpinions{
			Advantages: []string{},
			Risks:      []string{},
			Barriers:   []string{},
		},
	}
}

// IsComplete reports whether the response has been submitted.
func (r *SurveyResponse) IsComplete() bool {
	return r.SubmittedAt != nil && !r.SubmittedAt.IsZero()
}

// Clone returns a deep copy so callers can hand out snapshots of a session.
func (r *SurveyResponse) Clone() *SurveyResponse {
	if r == nil {
		return nil
	}
	c := *r
	if r.SubmittedAt != nil {
		t := *r.SubmittedAt
		c.SubmittedAt = &t
	}
	if r.Demographics.Age != nil {
		age := *r.Demographics.Age
		c.Demographics.Age = &age
	}
	if r.InvestmentKnowledge.SelfRating != nil {
		rating := *r.InvestmentKnowledge.SelfRating
		c.InvestmentKnowledge.SelfRating = &rating
	}
	c.SocialMedia.Platforms = cloneSlice(r.SocialMedia.Platforms)
	c.SocialMedia.Purpose = cloneSlice(r.SocialMedia.Purpose)
	c.SocialMedia.KnownCompanies = cloneSlice(r.SocialMedia.KnownCompanies)
	c.InfluencerRelations.FollowReasons = cloneSlice(r.InfluencerRelations.FollowReasons)
	c.InvestmentKnowledge.PreferredInvestmentTypes = cloneSlice(r.InvestmentKnowledge.PreferredInvestmentTypes)
	c.Opinions.Advantages = cloneSlice(r.Opinions.Advantages)
	c.Opinions.Risks = cloneSlice(r.Opinions.Risks)
	c.Opinions.Barriers = cloneSlice(r.Opinions.Barriers)
	return &c
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}
