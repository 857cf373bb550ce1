package validator

import (
	"reflect"
	"strings"

	apperrors "github.com/SAP-F-2025/influencer-survey/internal/errors"
	"github.com/SAP-F-2025/influencer-survey/internal/models"
	"github.com/go-playground/validator/v10"
)

type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// Validator is the main validator instance that combines all validation types
type Validator struct {
	structValidator   *validator.Validate
	responseValidator *ResponseValidator
}

// New creates a new centralized validator instance
func New() *Validator {
	structValidator := validator.New()

	// Register all custom validators once
	registerCustomValidators(structValidator)

	return &Validator{
		structValidator:   structValidator,
		responseValidator: NewResponseValidator(),
	}
}

// ValidateStruct validates struct tags only
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.structValidator.Struct(s)
}

// Validate performs struct tag validation and converts the result to
// ValidationErrors so callers can render field messages.
func (v *Validator) Validate(s interface{}) error {
	if err := v.ValidateStruct(s); err != nil {
		if errs := apperrors.ToValidationErrors(err); len(errs) > 0 {
			return errs
		}
		return err
	}
	return nil
}

// Response returns the response validator
func (v *Validator) Response() *ResponseValidator {
	return v.responseValidator
}

// registerCustomValidators registers all custom validation functions
func registerCustomValidators(validate *validator.Validate) {
	registerEnum(validate, "gender", models.Genders)
	registerEnum(validate, "age_group", models.AgeGroups)
	registerEnum(validate, "education_level", models.EducationLevels)
	registerEnum(validate, "professional_sector", models.ProfessionalSectors)
	registerEnum(validate, "platform", models.Platforms)
	registerEnum(validate, "purpose", models.Purposes)
	registerEnum(validate, "opinion", models.Opinions)
	registerEnum(validate, "follow_reason", models.FollowReasons)
	registerEnum(validate, "trust_level", models.TrustLevels)
	registerEnum(validate, "sponsored_post_reaction", models.SponsoredPostReactions)
	registerEnum(validate, "tri_state", models.TriStates)
	registerEnum(validate, "influence_level", models.InfluenceLevels)
	registerEnum(validate, "influencer_type", models.InfluencerTypes)
	registerEnum(validate, "efficiency", models.Efficiencies)
	registerEnum(validate, "risk_tolerance", models.RiskTolerances)
	registerEnum(validate, "investment_type", models.InvestmentTypes)

	// Custom tag name function for better error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func registerEnum[T ~string](validate *validator.Validate, tag string, set []T) {
	validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return models.Valid(T(fl.Field().String()), set)
	})
}
