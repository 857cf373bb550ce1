package models

// Update replaces a single answer on a response. Every answerable field has
// its own Update type, so an update can never address a field that does not
// exist.
type Update interface {
	Section() SectionID
	Field() string
	Apply(r *SurveyResponse)
}

// ===== DEMOGRAPHICS =====

type SetGender struct{ Value Gender }

func (SetGender) Section() SectionID         { return SectionDemographics }
func (SetGender) Field() string              { return "gender" }
func (u SetGender) Apply(r *SurveyResponse) { r.Demographics.Gender = u.Value }

type SetAgeGroup struct{ Value AgeGroup }

func (SetAgeGroup) Section() SectionID         { return SectionDemographics }
func (SetAgeGroup) Field() string              { return "ageGroup" }
func (u SetAgeGroup) Apply(r *SurveyResponse) { r.Demographics.AgeGroup = u.Value }

type SetEducationLevel struct{ Value EducationLevel }

func (SetEducationLevel) Section() SectionID         { return SectionDemographics }
func (SetEducationLevel) Field() string              { return "educationLevel" }
func (u SetEducationLevel) Apply(r *SurveyResponse) { r.Demographics.EducationLevel = u.Value }

type SetProfessionalSector struct{ Value ProfessionalSector }

func (SetProfessionalSector) Section() SectionID { return SectionDemographics }
func (SetProfessionalSector) Field() string      { return "professionalSector" }
func (u SetProfessionalSector) Apply(r *SurveyResponse) {
	r.Demographics.ProfessionalSector = u.Value
}

// SetAge stores the exact age; nil clears it.
type SetAge struct{ Value *int }

func (SetAge) Section() SectionID         { return SectionDemographics }
func (SetAge) Field() string              { return "age" }
func (u SetAge) Apply(r *SurveyResponse) { r.Demographics.Age = u.Value }

// ===== SOCIAL MEDIA =====

type SetUsesSocialMedia struct{ Value bool }

func (SetUsesSocialMedia) Section() SectionID         { return SectionSocialMedia }
func (SetUsesSocialMedia) Field() string              { return "usesSocialMedia" }
func (u SetUsesSocialMedia) Apply(r *SurveyResponse) { r.SocialMedia.UsesSocialMedia = u.Value }

type SetPlatforms struct{ Value []Platform }

func (SetPlatforms) Section() SectionID         { return SectionSocialMedia }
func (SetPlatforms) Field() string              { return "platforms" }
func (u SetPlatforms) Apply(r *SurveyResponse) { r.SocialMedia.Platforms = Dedupe(u.Value) }

type SetPurposes struct{ Value []Purpose }

func (SetPurposes) Section() SectionID         { return SectionSocialMedia }
func (SetPurposes) Field() string              { return "purpose" }
func (u SetPurposes) Apply(r *SurveyResponse) { r.SocialMedia.Purpose = Dedupe(u.Value) }

type SetFrequentUsage struct{ Value string }

func (SetFrequentUsage) Section() SectionID         { return SectionSocialMedia }
func (SetFrequentUsage) Field() string              { return "frequentUsage" }
func (u SetFrequentUsage) Apply(r *SurveyResponse) { r.SocialMedia.FrequentUsage = u.Value }

// SetKnownCompanies keeps the names in the order the respondent typed them.
type SetKnownCompanies struct{ Value []string }

func (SetKnownCompanies) Section() SectionID { return SectionSocialMedia }
func (SetKnownCompanies) Field() string      { return "knownCompanies" }
func (u SetKnownCompanies) Apply(r *SurveyResponse) {
	r.SocialMedia.KnownCompanies = append([]string{}, u.Value...)
}

type SetInfluencerOpinion struct{ Value Opinion }

func (SetInfluencerOpinion) Section() SectionID         { return SectionSocialMedia }
func (SetInfluencerOpinion) Field() string              { return "influencerOpinion" }
func (u SetInfluencerOpinion) Apply(r *SurveyResponse) { r.SocialMedia.InfluencerOpinion = u.Value }

// ===== INFLUENCER RELATIONS =====

type SetFollowsInfluencers struct{ Value bool }

func (SetFollowsInfluencers) Section() SectionID { return SectionInfluencerRelations }
func (SetFollowsInfluencers) Field() string      { return "followsInfluencers" }
func (u SetFollowsInfluencers) Apply(r *SurveyResponse) {
	r.InfluencerRelations.FollowsInfluencers = u.Value
}

type SetFollowReasons struct{ Value []FollowReason }

func (SetFollowReasons) Section() SectionID { return SectionInfluencerRelations }
func (SetFollowReasons) Field() string      { return "followReasons" }
func (u SetFollowReasons) Apply(r *SurveyResponse) {
	r.InfluencerRelations.FollowReasons = Dedupe(u.Value)
}

type SetOtherFollowReason struct{ Value string }

func (SetOtherFollowReason) Section() SectionID { return SectionInfluencerRelations }
func (SetOtherFollowReason) Field() string      { return "otherFollowReason" }
func (u SetOtherFollowReason) Apply(r *SurveyResponse) {
	r.InfluencerRelations.OtherFollowReason = u.Value
}

type SetTrustLevel struct{ Value TrustLevel }

func (SetTrustLevel) Section() SectionID         { return SectionInfluencerRelations }
func (SetTrustLevel) Field() string              { return "trustLevel" }
func (u SetTrustLevel) Apply(r *SurveyResponse) { r.InfluencerRelations.TrustLevel = u.Value }

// ===== ENGAGEMENT =====

type SetHasLikedSponsoredPost struct{ Value bool }

func (SetHasLikedSponsoredPost) Section() SectionID { return SectionEngagement }
func (SetHasLikedSponsoredPost) Field() string      { return "hasLikedSponsoredPost" }
func (u SetHasLikedSponsoredPost) Apply(r *SurveyResponse) {
	r.Engagement.HasLikedSponsoredPost = u.Value
}

type SetSponsoredPostReaction struct{ Value SponsoredPostReaction }

func (SetSponsoredPostReaction) Section() SectionID { return SectionEngagement }
func (SetSponsoredPostReaction) Field() string      { return "sponsoredPostReaction" }
func (u SetSponsoredPostReaction) Apply(r *SurveyResponse) {
	r.Engagement.SponsoredPostReaction = u.Value
}

type SetHasResearchedProduct struct{ Value bool }

func (SetHasResearchedProduct) Section() SectionID { return SectionEngagement }
func (SetHasResearchedProduct) Field() string      { return "hasResearchedProduct" }
func (u SetHasResearchedProduct) Apply(r *SurveyResponse) {
	r.Engagement.HasResearchedProduct = u.Value
}

type SetHasPurchasedProduct struct{ Value TriState }

func (SetHasPurchasedProduct) Section() SectionID { return SectionEngagement }
func (SetHasPurchasedProduct) Field() string      { return "hasPurchasedProduct" }
func (u SetHasPurchasedProduct) Apply(r *SurveyResponse) {
	r.Engagement.HasPurchasedProduct = u.Value
}

// ===== PURCHASE INTENTION =====

type SetInfluenceLevel struct{ Value InfluenceLevel }

func (SetInfluenceLevel) Section() SectionID         { return SectionPurchaseIntention }
func (SetInfluenceLevel) Field() string              { return "influenceLevel" }
func (u SetInfluenceLevel) Apply(r *SurveyResponse) { r.PurchaseIntention.InfluenceLevel = u.Value }

type SetPreferredInfluencerType struct{ Value InfluencerType }

func (SetPreferredInfluencerType) Section() SectionID { return SectionPurchaseIntention }
func (SetPreferredInfluencerType) Field() string      { return "preferredInfluencerType" }
func (u SetPreferredInfluencerType) Apply(r *SurveyResponse) {
	r.PurchaseIntention.PreferredInfluencerType = u.Value
}

type SetIsLoyalToInfluencers struct{ Value bool }

func (SetIsLoyalToInfluencers) Section() SectionID { return SectionPurchaseIntention }
func (SetIsLoyalToInfluencers) Field() string      { return "isLoyalToInfluencers" }
func (u SetIsLoyalToInfluencers) Apply(r *SurveyResponse) {
	r.PurchaseIntention.IsLoyalToInfluencers = u.Value
}

type SetLoyaltyReason struct{ Value string }

func (SetLoyaltyReason) Section() SectionID         { return SectionPurchaseIntention }
func (SetLoyaltyReason) Field() string              { return "loyaltyReason" }
func (u SetLoyaltyReason) Apply(r *SurveyResponse) { r.PurchaseIntention.LoyaltyReason = u.Value }

// ===== GLOBAL APPRECIATION =====

type SetMarketingEfficiency struct{ Value Efficiency }

func (SetMarketingEfficiency) Section() SectionID { return SectionGlobalAppreciation }
func (SetMarketingEfficiency) Field() string      { return "marketingEfficiency" }
func (u SetMarketingEfficiency) Apply(r *SurveyResponse) {
	r.GlobalAppreciation.MarketingEfficiency = u.Value
}

type SetAdditionalRemarks struct{ Value string }

func (SetAdditionalRemarks) Section() SectionID { return SectionGlobalAppreciation }
func (SetAdditionalRemarks) Field() string      { return "additionalRemarks" }
func (u SetAdditionalRemarks) Apply(r *SurveyResponse) {
	r.GlobalAppreciation.AdditionalRemarks = u.Value
}

// ===== INVESTMENT VARIANT =====

type SetKnowledgeRating struct{ Value *int }

func (SetKnowledgeRating) Section() SectionID { return SectionInvestmentKnowledge }
func (SetKnowledgeRating) Field() string      { return "selfRating" }
func (u SetKnowledgeRating) Apply(r *SurveyResponse) {
	r.InvestmentKnowledge.SelfRating = u.Value
}

type SetHasInvested struct{ Value bool }

func (SetHasInvested) Section() SectionID         { return SectionInvestmentKnowledge }
func (SetHasInvested) Field() string              { return "hasInvested" }
func (u SetHasInvested) Apply(r *SurveyResponse) { r.InvestmentKnowledge.HasInvested = u.Value }

type SetRiskTolerance struct{ Value RiskTolerance }

func (SetRiskTolerance) Section() SectionID         { return SectionInvestmentKnowledge }
func (SetRiskTolerance) Field() string              { return "riskTolerance" }
func (u SetRiskTolerance) Apply(r *SurveyResponse) { r.InvestmentKnowledge.RiskTolerance = u.Value }

type SetPreferredInvestmentTypes struct{ Value []InvestmentType }

func (SetPreferredInvestmentTypes) Section() SectionID { return SectionInvestmentKnowledge }
func (SetPreferredInvestmentTypes) Field() string      { return "preferredInvestmentTypes" }
func (u SetPreferredInvestmentTypes) Apply(r *SurveyResponse) {
	r.InvestmentKnowledge.PreferredInvestmentTypes = Dedupe(u.Value)
}

type SetAdvantages struct{ Value []string }

func (SetAdvantages) Section() SectionID         { return SectionOpinions }
func (SetAdvantages) Field() string              { return "advantages" }
func (u SetAdvantages) Apply(r *SurveyResponse) { r.Opinions.Advantages = Dedupe(u.Value) }

type SetRisks struct{ Value []string }

func (SetRisks) Section() SectionID         { return SectionOpinions }
func (SetRisks) Field() string              { return "risks" }
func (u SetRisks) Apply(r *SurveyResponse) { r.Opinions.Risks = Dedupe(u.Value) }

type SetBarriers struct{ Value []string }

func (SetBarriers) Section() SectionID         { return SectionOpinions }
func (SetBarriers) Field() string              { return "barriers" }
func (u SetBarriers) Apply(r *SurveyResponse) { r.Opinions.Barriers = Dedupe(u.Value) }

// ===== FREE TEXT =====

type SetAdditionalFeedback struct{ Value string }

func (SetAdditionalFeedback) Section() SectionID         { return SectionAdditionalFeedback }
func (SetAdditionalFeedback) Field() string              { return "additionalFeedback" }
func (u SetAdditionalFeedback) Apply(r *SurveyResponse) { r.AdditionalFeedback = u.Value }
