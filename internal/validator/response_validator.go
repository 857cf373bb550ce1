package validator

import (
	"fmt"
	"strings"

	"github.com/SAP-F-2025/influencer-survey/internal/models"
	"github.com/google/uuid"
)

// ResponseValidator checks lifecycle rules that struct tags cannot express.
type ResponseValidator struct{}

func NewResponseValidator() *ResponseValidator {
	return &ResponseValidator{}
}

// ValidateDraft checks a response that is still being filled in.
func (v *ResponseValidator) ValidateDraft(r *models.SurveyResponse) error {
	if r == nil {
		return fmt.Errorf("response cannot be nil")
	}
	if _, err := uuid.Parse(r.ID); err != nil {
		return fmt.Errorf("response id %q is not a valid UUID", r.ID)
	}
	if r.IsComplete() {
		return fmt.Errorf("response %s is already submitted", r.ID)
	}
	return nil
}

// ValidateSubmission checks a response that is about to be persisted as complete.
func (v *ResponseValidator) ValidateSubmission(r *models.SurveyResponse) error {
	if r == nil {
		return fmt.Errorf("response cannot be nil")
	}
	if _, err := uuid.Parse(r.ID); err != nil {
		return fmt.Errorf("response id %q is not a valid UUID", r.ID)
	}
	if !r.IsComplete() {
		return fmt.Errorf("response %s has no submission time", r.ID)
	}

	for i, name := range r.SocialMedia.KnownCompanies {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("known company %d cannot be blank", i+1)
		}
	}

	return nil
}
