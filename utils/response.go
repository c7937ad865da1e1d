package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jaba-landing/dto"
	"github.com/jaba-landing/services"
)

// StatusForOutcome maps a submission outcome to an HTTP status
func StatusForOutcome(outcome services.Outcome) int {
	switch outcome {
	case services.OutcomeSuccess:
		return http.StatusCreated
	case services.OutcomeDuplicate:
		return http.StatusConflict
	case services.OutcomeInvalid:
		return http.StatusUnprocessableEntity
	case services.OutcomeRejected:
		return http.StatusTooManyRequests
	case services.OutcomeFailed, services.OutcomeUnexpected:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// BindingErrors lists the fields a validator rejected
func BindingErrors(err error) []dto.FieldErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]dto.FieldErrorResponse, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, dto.FieldErrorResponse{Field: fe.Field(), Rule: fe.Tag()})
	}
	return out
}

// ErrorResponse writes the standard error body
func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"status":  "error",
		"message": message,
	})
}
