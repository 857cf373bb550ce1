package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError is one rejected answer. Path is the dotted wire path of
// the field inside the response, e.g. "socialMedia.platforms[1]".
type ValidationError struct {
	Field   string      `json:"field"`
	Path    string      `json:"path,omitempty"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
	Rule    string      `json:"rule,omitempty"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.location(), e.Message)
}

func (e *ValidationError) location() string {
	if e.Path != "" {
		return e.Path
	}
	return e.Field
}

// Section returns the first path segment, which names the questionnaire
// section the field belongs to. Top-level fields have no section.
func (e *ValidationError) Section() string {
	before, _, found := strings.Cut(e.Path, ".")
	if !found {
		return ""
	}
	return before
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	switch len(ve) {
	case 0:
		return "validation failed"
	case 1:
		return "validation failed: " + ve[0].Error()
	default:
		return fmt.Sprintf("validation failed: %d field errors", len(ve))
	}
}

// Paths lists the rejected field paths in order.
func (ve ValidationErrors) Paths() []string {
	paths := make([]string, len(ve))
	for i := range ve {
		paths[i] = ve[i].location()
	}
	return paths
}

// ToValidationErrors converts validator.ValidationErrors. Any other error
// yields nil.
func ToValidationErrors(err error) ValidationErrors {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil
	}

	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Path:    wirePath(fe.Namespace()),
			Message: messageFor(fe),
			Value:   fe.Value(),
			Rule:    fe.Tag(),
		})
	}
	return out
}

// wirePath drops the root struct name from a validator namespace.
func wirePath(namespace string) string {
	_, rest, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}
	return rest
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "uuid":
		return "must be a valid UUID"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "unique":
		return "must not contain duplicate entries"
	}
	if isEnumTag(fe.Tag()) {
		return fmt.Sprintf("is not an accepted %s answer", strings.ReplaceAll(fe.Tag(), "_", " "))
	}
	return fmt.Sprintf("failed the %q rule", fe.Tag())
}

var enumTags = map[string]struct{}{
	"gender": {}, "age_group": {}, "education_level": {}, "professional_sector": {},
	"platform": {}, "purpose": {}, "opinion": {}, "follow_reason": {}, "trust_level": {},
	"sponsored_post_reaction": {}, "tri_state": {}, "influence_level": {}, "influencer_type": {},
	"efficiency": {}, "risk_tolerance": {}, "investment_type": {},
}

func isEnumTag(tag string) bool {
	_, ok := enumTags[tag]
	return ok
}
