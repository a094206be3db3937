package validate

import (
	"regexp"

	"techstore/internal/domain"
)

// Card: exactly 16 digits, no separators.
var reCard = regexp.MustCompile(`^\d{16}$`)

// FieldError reports the first registration field that failed its check,
// with the message shown to the user.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string { return e.Message }

// Registration checks the registration form field by field, in order,
// stopping at the first failure. Returns nil when every field passes.
// Login is deliberately not validated here beyond what the session
// controller enforces (non-empty name and password).
func Registration(f domain.RegistrationForm) error {
	if len(f.Name) < 1 || len(f.Name) > 30 {
		return &FieldError{Field: "name", Message: "Nome deve ter entre 1 e 30 caracteres."}
	}
	if len(f.Password) < 6 {
		return &FieldError{Field: "password", Message: "Senha deve ter no mínimo 6 caracteres."}
	}
	if len(f.Document) < 7 || len(f.Document) > 11 {
		return &FieldError{Field: "document", Message: "Documento deve ter entre 7 e 11 caracteres."}
	}
	if len(f.Address) < 1 || len(f.Address) > 50 {
		return &FieldError{Field: "address", Message: "Endereço deve ter entre 1 e 50 caracteres."}
	}
	if !reCard.MatchString(f.Card) {
		return &FieldError{Field: "card", Message: "O cartão deve conter exatamente 16 números (apenas dígitos)."}
	}
	return nil
}
