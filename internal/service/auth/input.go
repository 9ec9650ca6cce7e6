package auth

import (
	"net/mail"

	"github.com/heartmarshall/notekeeper-backend/internal/domain"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

const (
	maxNameLength     = 100
	maxEmailLength    = 254
	maxPasswordLength = 72 // bcrypt input limit
)

// RegisterInput holds parameters for creating an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	errs = append(errs, validateEmail(i.Email)...)

	switch {
	case i.Password == "":
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case len(i.Password) < MinPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short (min 6)"})
	case len(i.Password) > maxPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long (max 72)"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for email + password login.
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

func validateEmail(email string) []domain.FieldError {
	switch {
	case email == "":
		return []domain.FieldError{{Field: "email", Message: "required"}}
	case len(email) > maxEmailLength:
		return []domain.FieldError{{Field: "email", Message: "too long"}}
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return []domain.FieldError{{Field: "email", Message: "invalid email"}}
	}
	return nil
}
