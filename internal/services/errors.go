package services

import (
	"errors"
	"fmt"

	apperrors "github.com/SAP-F-2025/influencer-survey/internal/errors"
	"github.com/SAP-F-2025/influencer-survey/internal/models"
)

// ===== COMMON SERVICE ERRORS =====

var (
	ErrBadRequest = errors.New("bad request")

	// Survey specific errors
	ErrResponseNotFound    = errors.New("survey response not found")
	ErrAlreadySubmitted    = errors.New("survey response already submitted")
	ErrUnknownField        = models.ErrUnknownField
	ErrInvalidExportFormat = errors.New("invalid export format")

	// Storage errors
	ErrSaveFailed         = errors.New("response could not be saved to any store")
	ErrPrimaryUnavailable = errors.New("primary store unavailable")
)

// ===== CUSTOM ERROR TYPES =====

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

type BusinessRuleError struct {
	Rule    string                 `json:"rule"`
	Message string                 `json:"message"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (bre *BusinessRuleError) Error() string {
	return fmt.Sprintf("business rule violation (%s): %s", bre.Rule, bre.Message)
}

// ===== ERROR HELPERS =====

func NewBusinessRuleError(rule, message string, context map[string]interface{}) *BusinessRuleError {
	return &BusinessRuleError{
		Rule:    rule,
		Message: message,
		Context: context,
	}
}

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrResponseNotFound)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrUnknownField) ||
		errors.Is(err, ErrInvalidExportFormat) ||
		errors.Is(err, ErrBadRequest) {
		return true
	}
	var ve apperrors.ValidationErrors
	return errors.As(err, &ve)
}

// IsBusinessRule checks if error represents a business rule violation
func IsBusinessRule(err error) bool {
	var bre *BusinessRuleError
	return errors.As(err, &bre)
}

// IsConflict checks if error represents a resource conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadySubmitted)
}

// IsStorageFailure checks if error means nothing could be persisted
func IsStorageFailure(err error) bool {
	return errors.Is(err, ErrSaveFailed)
}
