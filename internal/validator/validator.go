package validator

import (
	"fmt"
	"regexp"
	"unicode"

	"github.com/cinetick/movie-ticket-booking/internal/domain"
	"github.com/go-playground/validator/v10"
)

const (
	ErrMinValue = "must be at least %s"
	ErrMaxValue = "must be at most %s"
)

var hasSpecialRgx = regexp.MustCompile(`[!@#$%^&*]`)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("seat", validateSeat)
	validator.RegisterValidation("showtime", validateShowtime)
	validator.RegisterValidation("password", validatePassword)

	return validator
}

func validateSeat(fl validator.FieldLevel) bool {
	return domain.ValidSeatNumber(fl.Field().String())
}

func validateShowtime(fl validator.FieldLevel) bool {
	return domain.ValidShowtimeToken(fl.Field().String())
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	if len(password) < 8 || len(password) > 25 {
		return false
	}

	containsUpper, containsLower, containsDigit, containsSpecial := false, false, false, false

	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			containsUpper = true
		case unicode.IsLower(ch):
			containsLower = true
		case unicode.IsDigit(ch):
			containsDigit = true
		case hasSpecialRgx.MatchString(string(ch)):
			containsSpecial = true
		}
	}

	return containsUpper && containsLower && containsDigit && containsSpecial
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf(ErrMinValue, err.Param())
	case "max":
		return fmt.Sprintf(ErrMaxValue, err.Param())
	case "alpha":
		return "must contain only letters"
	case "unique":
		return "must not contain duplicates"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())
	case "url":
		return "must be a valid URL"
	case "uuid4":
		return "must be a valid UUID"
	case "seat":
		return "must be a seat between A1 and E5"
	case "showtime":
		return "must be one of the scheduled showtimes (10:00, 14:00, 18:00, 21:00)"
	case "password":
		return "must be at least 8 characters long and include at least one uppercase letter, one lowercase letter, " +
			"one number, and one special character (!@#$%^&*)."
	default:
		return "is invalid"
	}
}
