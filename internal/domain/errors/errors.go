package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound       = errors.New("error.user_not_found")
	ErrEmailAlreadyExists = errors.New("error.email_already_exists")
	ErrInvalidCredentials = errors.New("error.invalid_credentials")
	ErrUnauthorized       = errors.New("error.unauthorized")
	ErrForbidden          = errors.New("error.forbidden")

	ErrPaletteNotFound       = errors.New("error.palette_not_found")
	ErrPaletteAlreadyLiked   = errors.New("error.palette_already_liked")
	ErrPaletteNotLiked       = errors.New("error.palette_not_liked")
	ErrPaletteAlreadyPublic  = errors.New("error.palette_already_public")
	ErrPaletteAlreadyPrivate = errors.New("error.palette_already_private")
)

// Domain errors
var (
	ErrInvalidEmail = errors.New("error.invalid_email")
	ErrValidation   = errors.New("error.validation")
)
