package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrUnknownField = errors.New("unknown survey field")

// AnswerPayload is the wire shape of a single answer change.
type AnswerPayload struct {
	Section SectionID       `json:"section" binding:"required"`
	Field   string          `json:"field" binding:"required"`
	Value   json.RawMessage `json:"value"`
}

type updateDecoder func(raw json.RawMessage) (Update, error)

func decodeAs[T any](build func(T) Update) updateDecoder {
	return func(raw json.RawMessage) (Update, error) {
		var v T
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, err
			}
		}
		return build(v), nil
	}
}

type fieldKey struct {
	section SectionID
	field   string
}

var updateDecoders = map[fieldKey]updateDecoder{
	{SectionDemographics, "gender"}:             decodeAs(func(v Gender) Update { return SetGender{v} }),
	{SectionDemographics, "ageGroup"}:           decodeAs(func(v AgeGroup) Update { return SetAgeGroup{v} }),
	{SectionDemographics, "educationLevel"}:     decodeAs(func(v EducationLevel) Update { return SetEducationLevel{v} }),
	{SectionDemographics, "professionalSector"}: decodeAs(func(v ProfessionalSector) Update { return SetProfessionalSector{v} }),
	{SectionDemographics, "age"}:                decodeAs(func(v *int) Update { return SetAge{v} }),

	{SectionSocialMedia, "usesSocialMedia"}:   decodeAs(func(v bool) Update { return SetUsesSocialMedia{v} }),
	{SectionSocialMedia, "platforms"}:         decodeAs(func(v []Platform) Update { return SetPlatforms{v} }),
	{SectionSocialMedia, "purpose"}:           decodeAs(func(v []Purpose) Update { return SetPurposes{v} }),
	{SectionSocialMedia, "frequentUsage"}:     decodeAs(func(v string) Update { return SetFrequentUsage{v} }),
	{SectionSocialMedia, "knownCompanies"}:    decodeAs(func(v []string) Update { return SetKnownCompanies{v} }),
	{SectionSocialMedia, "influencerOpinion"}: decodeAs(func(v Opinion) Update { return SetInfluencerOpinion{v} }),

	{SectionInfluencerRelations, "followsInfluencers"}: decodeAs(func(v bool) Update { return SetFollowsInfluencers{v} }),
	{SectionInfluencerRelations, "followReasons"}:      decodeAs(func(v []FollowReason) Update { return SetFollowReasons{v} }),
	{SectionInfluencerRelations, "otherFollowReason"}:  decodeAs(func(v string) Update { return SetOtherFollowReason{v} }),
	{SectionInfluencerRelations, "trustLevel"}:         decodeAs(func(v TrustLevel) Update { return SetTrustLevel{v} }),

	{SectionEngagement, "hasLikedSponsoredPost"}: decodeAs(func(v bool) Update { return SetHasLikedSponsoredPost{v} }),
	{SectionEngagement, "sponsoredPostReaction"}: decodeAs(func(v SponsoredPostReaction) Update { return SetSponsoredPostReaction{v} }),
	{SectionEngagement, "hasResearchedProduct"}:  decodeAs(func(v bool) Update { return SetHasResearchedProduct{v} }),
	{SectionEngagement, "hasPurchasedProduct"}:   decodeAs(func(v TriState) Update { return SetHasPurchasedProduct{v} }),

	{SectionPurchaseIntention, "influenceLevel"}:          decodeAs(func(v InfluenceLevel) Update { return SetInfluenceLevel{v} }),
	{SectionPurchaseIntention, "preferredInfluencerType"}: decodeAs(func(v InfluencerType) Update { return SetPreferredInfluencerType{v} }),
	{SectionPurchaseIntention, "isLoyalToInfluencers"}:    decodeAs(func(v bool) Update { return SetIsLoyalToInfluencers{v} }),
	{SectionPurchaseIntention, "loyaltyReason"}:           decodeAs(func(v string) Update { return SetLoyaltyReason{v} }),

	{SectionGlobalAppreciation, "marketingEfficiency"}: decodeAs(func(v Efficiency) Update { return SetMarketingEfficiency{v} }),
	{SectionGlobalAppreciation, "additionalRemarks"}:   decodeAs(func(v string) Update { return SetAdditionalRemarks{v} }),

	{SectionInvestmentKnowledge, "selfRating"}:               decodeAs(func(v *int) Update { return SetKnowledgeRating{v} }),
	{SectionInvestmentKnowledge, "hasInvested"}:              decodeAs(func(v bool) Update { return SetHasInvested{v} }),
	{SectionInvestmentKnowledge, "riskTolerance"}:            decodeAs(func(v RiskTolerance) Update { return SetRiskTolerance{v} }),
	{SectionInvestmentKnowledge, "preferredInvestmentTypes"}: decodeAs(func(v []InvestmentType) Update { return SetPreferredInvestmentTypes{v} }),

	{SectionOpinions, "advantages"}: decodeAs(func(v []string) Update { return SetAdvantages{v} }),
	{SectionOpinions, "risks"}:      decodeAs(func(v []string) Update { return SetRisks{v} }),
	{SectionOpinions, "barriers"}:   decodeAs(func(v []string) Update { return SetBarriers{v} }),

	{SectionAdditionalFeedback, "additionalFeedback"}: decodeAs(func(v string) Update { return SetAdditionalFeedback{v} }),
}

// DecodeUpdate turns a wire payload into its typed Update. Unknown
// section/field pairs fail with ErrUnknownField.
func DecodeUpdate(p AnswerPayload) (Update, error) {
	decode, ok := updateDecoders[fieldKey{p.Section, p.Field}]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownField, p.Section, p.Field)
	}
	u, err := decode(p.Value)
	if err != nil {
		return nil, fmt.Errorf("invalid value for %s.%s: %w", p.Section, p.Field, err)
	}
	return u, nil
}
