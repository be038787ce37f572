package middleware

import (
	"errors"
	"net/http"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/amunitsiia/shop/internal/domain/catalog"
	"github.com/amunitsiia/shop/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Ukrainian phone numbers: optional +, digits, with spaces, dashes or brackets between them
var uaPhonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ()\-]*[0-9]$`)

var setupOnce sync.Once

// SetupValidator names validation errors after JSON fields and registers the shop tags:
// ua_phone for phone numbers and slug for URL slugs
func SetupValidator() {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			return name
		})
		_ = v.RegisterValidation("ua_phone", validateUAPhone)
		_ = v.RegisterValidation("slug", validateSlug)
	})
}

func validateUAPhone(fl validator.FieldLevel) bool {
	return IsValidPhone(fl.Field().String())
}

func validateSlug(fl validator.FieldLevel) bool {
	return catalog.IsValidSlug(fl.Field().String())
}

// IsValidPhone reports whether s looks like a phone number with 8 to 15 digits
func IsValidPhone(s string) bool {
	if !uaPhonePattern.MatchString(s) {
		return false
	}
	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 8 && digits <= 15
}

// FormatValidationErrors converts validator errors into per-field details
func FormatValidationErrors(err error) []dto.ValidationDetail {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}
	details := make([]dto.ValidationDetail, 0, len(validationErrors))
	for _, e := range validationErrors {
		details = append(details, dto.ValidationDetail{
			Field:   e.Field(),
			Message: getValidationMessage(e),
		})
	}
	return details
}

// HandleValidationError answers a failed bind: ERR_VALIDATION with details for
// rule violations, ERR_INVALID_JSON for bodies that could not be decoded
func HandleValidationError(c *gin.Context, err error) {
	requestID := GetRequestID(c)
	if details := FormatValidationErrors(err); details != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest,
			dto.NewValidationErrorResponse("Request validation failed", requestID, details))
		return
	}
	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		abortWithError(c, http.StatusRequestEntityTooLarge, dto.ErrCodeBodyTooLarge,
			"Request body exceeds maximum allowed size")
		return
	}
	abortWithError(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, "Malformed request: "+err.Error())
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		if e.Kind() == reflect.String {
			return "Must be at least " + e.Param() + " characters"
		}
		return "Must be at least " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "uuid":
		return "Invalid UUID format"
	case "oneof":
		return "Must be one of: " + e.Param()
	case "gt":
		return "Must be greater than " + e.Param()
	case "lte":
		return "Must be less than or equal to " + e.Param()
	case "ua_phone":
		return "Invalid phone number"
	case "slug":
		return "Only lowercase latin letters, digits and dashes are allowed"
	default:
		return "Invalid value"
	}
}
