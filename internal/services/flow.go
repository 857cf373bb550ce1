package services

import "github.com/SAP-F-2025/influencer-survey/internal/models"

// SectionView is one visible section and the form it should render with.
type SectionView struct {
	ID      models.SectionID   `json:"id"`
	Variant models.FormVariant `json:"variant"`
}

// FlowPlan is the ordered list of sections a respondent currently sees.
type FlowPlan struct {
	Sections []SectionView `json:"sections"`
}

// IsVisible reports whether the section is part of the plan.
func (p FlowPlan) IsVisible(id models.SectionID) bool {
	for _, s := range p.Sections {
		if s.ID == id {
			return true
		}
	}
	return false
}

// IDs returns the section identifiers in order.
func (p FlowPlan) IDs() []models.SectionID {
	ids := make([]models.SectionID, len(p.Sections))
	for i, s := range p.Sections {
		ids[i] = s.ID
	}
	return ids
}

// PlanFlow decides which sections are visible for the response as it stands.
// Answers in hidden sections are left untouched.
func PlanFlow(r *models.SurveyResponse) FlowPlan {
	plan := FlowPlan{Sections: []SectionView{
		{ID: models.SectionDemographics, Variant: models.FormFull},
		{ID: models.SectionSocialMedia, Variant: models.FormFull},
	}}

	if r == nil || !r.SocialMedia.UsesSocialMedia {
		plan.Sections = append(plan.Sections, SectionView{ID: models.SectionThankYou, Variant: models.FormNotice})
		return plan
	}

	if !r.InfluencerRelations.FollowsInfluencers {
		plan.Sections = append(plan.Sections,
			SectionView{ID: models.SectionInfluencerRelations, Variant: models.FormReduced},
			SectionView{ID: models.SectionThankYou, Variant: models.FormNotice},
		)
		return plan
	}

	plan.Sections = append(plan.Sections,
		SectionView{ID: models.SectionInfluencerRelations, Variant: models.FormFull},
		SectionView{ID: models.SectionEngagement, Variant: models.FormFull},
		SectionView{ID: models.SectionPurchaseIntention, Variant: models.FormFull},
		SectionView{ID: models.SectionGlobalAppreciation, Variant: models.FormFull},
	)
	return plan
}

// VisibleSections returns the ordered section identifiers for the response.
func VisibleSections(r *models.SurveyResponse) []models.SectionID {
	return PlanFlow(r).IDs()
}
