package valueobjects

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidEmail = errors.New("invalid email format")

var emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// Email é um value object que garante que emails sejam sempre válidos.
// O valor é normalizado (minúsculas, sem espaços) na construção.
type Email struct {
	value string
}

// NewEmail cria um novo Email validado e normalizado
func NewEmail(email string) (Email, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	if len(email) < 3 || len(email) > 254 || !emailPattern.MatchString(email) {
		return Email{}, ErrInvalidEmail
	}

	return Email{value: email}, nil
}

// String retorna o valor normalizado do email
func (e Email) String() string {
	return e.value
}

// IsZero indica se o Email ainda não foi construído via NewEmail
func (e Email) IsZero() bool {
	return e.value == ""
}
