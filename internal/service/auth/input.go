package auth

import (
	"net/mail"
	"unicode/utf8"

	"github.com/lifeos/lifeos-backend/internal/domain"
)

const (
	minPasswordLength = 6
	maxPasswordLength = 72 // bcrypt input limit
	maxUsernameLength = 50
	maxEmailLength    = 254
)

// RegisterInput holds parameters for password registration.
type RegisterInput struct {
	Email    string
	Username string
	Password string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case i.Email == "":
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	case len(i.Email) > maxEmailLength:
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	default:
		if _, err := mail.ParseAddress(i.Email); err != nil {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
		}
	}

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if utf8.RuneCountInString(i.Username) > maxUsernameLength {
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	}

	if len(i.Password) < minPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 6 characters"})
	} else if len(i.Password) > maxPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
