package models

import "slices"

type Gender string

const (
	GenderMale           Gender = "male"
	GenderFemale         Gender = "female"
	GenderOther          Gender = "other"
	GenderPreferNotToSay Gender = "prefer_not_to_say"
)

var Genders = []Gender{GenderMale, GenderFemale, GenderOther, GenderPreferNotToSay}

type AgeGroup string

const (
	AgeUnder18 AgeGroup = "under_18"
	Age18To24  AgeGroup = "18_24"
	Age25To34  AgeGroup = "25_34"
	Age35To44  AgeGroup = "35_44"
	Age45To54  AgeGroup = "45_54"
	Age55Plus  AgeGroup = "55_plus"
)

var AgeGroups = []AgeGroup{AgeUnder18, Age18To24, Age25To34, Age35To44, Age45To54, Age55Plus}

type EducationLevel string

const (
	EducationHighSchool EducationLevel = "high_school"
	EducationBachelor   EducationLevel = "bachelor"
	EducationMaster     EducationLevel = "master"
	EducationDoctorate  EducationLevel = "doctorate"
	EducationOther      EducationLevel = "other"
)

var EducationLevels = []EducationLevel{
	EducationHighSchool, EducationBachelor, EducationMaster, EducationDoctorate, EducationOther,
}

type ProfessionalSector string

const (
	SectorStudent      ProfessionalSector = "student"
	SectorEmployee     ProfessionalSector = "employee"
	SectorSelfEmployed ProfessionalSector = "self_employed"
	SectorUnemployed   ProfessionalSector = "unemployed"
	SectorRetired      ProfessionalSector = "retired"
	SectorOther        ProfessionalSector = "other"
)

var ProfessionalSectors = []ProfessionalSector{
	SectorStudent, SectorEmployee, SectorSelfEmployed, SectorUnemployed, SectorRetired, SectorOther,
}

type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
	PlatformYouTube   Platform = "youtube"
	PlatformFacebook  Platform = "facebook"
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformSnapchat  Platform = "snapchat"
	PlatformOther     Platform = "other"
)

var Platforms = []Platform{
	PlatformInstagram, PlatformTikTok, PlatformYouTube, PlatformFacebook,
	PlatformTwitter, PlatformLinkedIn, PlatformSnapchat, PlatformOther,
}

type Purpose string

const (
	PurposeEntertainment     Purpose = "entertainment"
	PurposeInformation       Purpose = "information"
	PurposeSocialInteraction Purpose = "social_interaction"
	PurposeShopping          Purpose = "shopping"
	PurposeProfessional      Purpose = "professional"
	PurposeOther             Purpose = "other"
)

var Purposes = []Purpose{
	PurposeEntertainment, PurposeInformation, PurposeSocialInteraction,
	PurposeShopping, PurposeProfessional, PurposeOther,
}

// Opinion is a five point sentiment scale.
type Opinion string

const (
	OpinionVeryNegative Opinion = "very_negative"
	OpinionNegative     Opinion = "negative"
	OpinionNeutral      Opinion = "neutral"
	OpinionPositive     Opinion = "positive"
	OpinionVeryPositive Opinion = "very_positive"
)

var Opinions = []Opinion{OpinionVeryNegative, OpinionNegative, OpinionNeutral, OpinionPositive, OpinionVeryPositive}

type FollowReason string

const (
	FollowEntertainment   FollowReason = "entertainment"
	FollowRecommendations FollowReason = "product_recommendations"
	FollowInspiration     FollowReason = "lifestyle_inspiration"
	FollowExpertise       FollowReason = "expertise"
	FollowPromotions      FollowReason = "promotions"
	FollowOther           FollowReason = "other"
)

var FollowReasons = []FollowReason{
	FollowEntertainment, FollowRecommendations, FollowInspiration, FollowExpertise, FollowPromotions, FollowOther,
}

type TrustLevel string

const (
	TrustNone       TrustLevel = "not_at_all"
	TrustLow        TrustLevel = "slightly"
	TrustModerate   TrustLevel = "moderately"
	TrustHigh       TrustLevel = "very"
	TrustCompletely TrustLevel = "completely"
)

var TrustLevels = []TrustLevel{TrustNone, TrustLow, TrustModerate, TrustHigh, TrustCompletely}

type SponsoredPostReaction string

const (
	ReactionIgnore    SponsoredPostReaction = "ignore"
	ReactionLike      SponsoredPostReaction = "like"
	ReactionComment   SponsoredPostReaction = "comment"
	ReactionShare     SponsoredPostReaction = "share"
	ReactionVisitPage SponsoredPostReaction = "visit_brand_page"
	ReactionPurchase  SponsoredPostReaction = "purchase"
)

var SponsoredPostReactions = []SponsoredPostReaction{
	ReactionIgnore, ReactionLike, ReactionComment, ReactionShare, ReactionVisitPage, ReactionPurchase,
}

// TriState is a yes/no answer that also admits "unknown".
type TriState string

const (
	TriStateYes     TriState = "yes"
	TriStateNo      TriState = "no"
	TriStateUnknown TriState = "unknown"
)

var TriStates = []TriState{TriStateYes, TriStateNo, TriStateUnknown}

type InfluenceLevel string

const (
	InfluenceNone     InfluenceLevel = "none"
	InfluenceLow      InfluenceLevel = "low"
	InfluenceModerate InfluenceLevel = "moderate"
	InfluenceHigh     InfluenceLevel = "high"
	InfluenceVeryHigh InfluenceLevel = "very_high"
)

var InfluenceLevels = []InfluenceLevel{InfluenceNone, InfluenceLow, InfluenceModerate, InfluenceHigh, InfluenceVeryHigh}

type InfluencerType string

const (
	InfluencerNano         InfluencerType = "nano"
	InfluencerMicro        InfluencerType = "micro"
	InfluencerMacro        InfluencerType = "macro"
	InfluencerMega         InfluencerType = "mega"
	InfluencerCelebrity    InfluencerType = "celebrity"
	InfluencerNoPreference InfluencerType = "no_preference"
)

var InfluencerTypes = []InfluencerType{
	InfluencerNano, InfluencerMicro, InfluencerMacro, InfluencerMega, InfluencerCelebrity, InfluencerNoPreference,
}

type Efficiency string

const (
	EfficiencyVeryLow  Efficiency = "very_ineffective"
	EfficiencyLow      Efficiency = "ineffective"
	EfficiencyNeutral  Efficiency = "neutral"
	EfficiencyHigh     Efficiency = "effective"
	EfficiencyVeryHigh Efficiency = "very_effective"
)

var Efficiencies = []Efficiency{EfficiencyVeryLow, EfficiencyLow, EfficiencyNeutral, EfficiencyHigh, EfficiencyVeryHigh}

type RiskTolerance string

const (
	RiskLow    RiskTolerance = "low"
	RiskMedium RiskTolerance = "medium"
	RiskHigh   RiskTolerance = "high"
)

var RiskTolerances = []RiskTolerance{RiskLow, RiskMedium, RiskHigh}

type InvestmentType string

const (
	InvestmentStocks     InvestmentType = "stocks"
	InvestmentBonds      InvestmentType = "bonds"
	InvestmentCrypto     InvestmentType = "crypto"
	InvestmentRealEstate InvestmentType = "real_estate"
	InvestmentFunds      InvestmentType = "funds"
	InvestmentSavings    InvestmentType = "savings"
)

var InvestmentTypes = []InvestmentType{
	InvestmentStocks, InvestmentBonds, InvestmentCrypto, InvestmentRealEstate, InvestmentFunds, InvestmentSavings,
}

// Valid reports whether v is a member of the closed set. The empty value
// means "unanswered" and is always accepted.
func Valid[T ~string](v T, set []T) bool {
	return v == "" || slices.Contains(set, v)
}

// Dedupe drops repeated entries, keeping the first occurrence of each. The
// result is never nil so cleared lists keep serializing as [].
func Dedupe[T comparable](values []T) []T {
	seen := make(map[T]struct{}, len(values))
	out := make([]T, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Strings converts a slice of string-backed enum values.
func Strings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
