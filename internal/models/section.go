package models

// SectionID identifies one page of the questionnaire.
type SectionID string

const (
	SectionDemographics        SectionID = "demographics"
	SectionSocialMedia         SectionID = "social_media"
	SectionInfluencerRelations SectionID = "influencer_relations"
	SectionEngagement          SectionID = "engagement"
	SectionPurchaseIntention   SectionID = "purchase_intention"
	SectionGlobalAppreciation  SectionID = "global_appreciation"
	SectionThankYou            SectionID = "thank_you"

	// Sections outside the gated flow
	SectionInvestmentKnowledge SectionID = "investment_knowledge"
	SectionOpinions            SectionID = "opinions"
	SectionAdditionalFeedback  SectionID = "additional_feedback"
)

// FormVariant tells the presentation layer how much of a section to render.
type FormVariant string

const (
	FormFull    FormVariant = "full"
	FormReduced FormVariant = "reduced"
	FormNotice  FormVariant = "notice"
)
