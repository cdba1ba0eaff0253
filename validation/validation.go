// Package validation holds the format and strength checks run before any
// record is admitted to the store.
package validation

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/t-rethnee/restaurant-console/models"
)

// IsEmailValid performs a deliberately shallow check: length of at least 5,
// exactly one '@' and at least one '.'. Matches what the legacy user file
// was populated with.
func IsEmailValid(email string) bool {
	if len(email) < 5 {
		return false
	}
	return strings.Count(email, "@") == 1 && strings.Contains(email, ".")
}

// IsPhoneValid requires exactly 11 decimal digits.
func IsPhoneValid(phone string) bool {
	if len(phone) != 11 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsPasswordValid requires at least 8 characters with at least one digit and
// one punctuation or symbol character.
func IsPasswordValid(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}
	return hasDigit && hasSpecial
}

// FitsColumn reports whether s can occupy one comma-delimited column of the
// given byte width. Anything wider, or containing the delimiter itself, would
// be written by the encoder and then dropped at the next load, so it is
// refused at admission instead.
func FitsColumn(s string, max int) bool {
	return len(s) <= max && !strings.Contains(s, ",")
}

// RegisterInput carries the registration fields. Field declaration order is
// the order the checks run in: username, email, phone, password.
type RegisterInput struct {
	Username string `validate:"required,user_name"`
	Email    string `validate:"required,console_email"`
	Phone    string `validate:"required,bd_phone"`
	Password string `validate:"required,strong_password"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// registration can only fail on a nil func or empty tag, neither of
	// which happens here
	_ = v.RegisterValidation("user_name", func(fl validator.FieldLevel) bool {
		return FitsColumn(fl.Field().String(), models.MaxUsernameLen)
	})
	_ = v.RegisterValidation("console_email", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return IsEmailValid(s) && FitsColumn(s, models.MaxEmailLen)
	})
	_ = v.RegisterValidation("bd_phone", func(fl validator.FieldLevel) bool {
		return IsPhoneValid(fl.Field().String())
	})
	_ = v.RegisterValidation("strong_password", func(fl validator.FieldLevel) bool {
		return IsPasswordValid(fl.Field().String())
	})
	return v
}

var fieldReasons = map[string]string{
	"Username": "must be 1 to 49 characters without commas",
	"Email":    "must be at most 99 characters with one '@' and at least one '.'",
	"Phone":    "must be exactly 11 digits",
	"Password": "must be at least 8 characters with a digit and a special character",
}

// CheckField validates a single registration field by struct field name and
// returns a *models.ValidationError describing the failure, or nil.
func CheckField(in RegisterInput, field string) error {
	if err := validate.StructPartial(in, field); err != nil {
		return toValidationError(err)
	}
	return nil
}

// Check validates the whole input and reports the first failing field in
// declaration order.
func Check(in RegisterInput) error {
	if err := validate.Struct(in); err != nil {
		return toValidationError(err)
	}
	return nil
}

func toValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	reason, ok := fieldReasons[fe.StructField()]
	if !ok {
		reason = "invalid value"
	}
	return &models.ValidationError{
		Field:  strings.ToLower(fe.StructField()),
		Reason: reason,
	}
}
