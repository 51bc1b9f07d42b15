package dto

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// MessageResponse é o envelope padrão de resposta: {message}
type MessageResponse struct {
	Message string `json:"message"`
}

// DataResponse é o envelope das listagens: {data, message}
type DataResponse struct {
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

// AuthResponse é a resposta de registro/login com o token de acesso
type AuthResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
}

// FieldError representa um erro de validação de campo
type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Value string `json:"value,omitempty"`
}

// ValidationErrorResponse é a resposta 422 com os campos rejeitados
type ValidationErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// MessageResponseI18n monta um MessageResponse traduzindo a chave
func MessageResponseI18n(c *gin.Context, key string) MessageResponse {
	return MessageResponse{Message: T(c, key)}
}

// DataResponseI18n monta um DataResponse traduzindo a chave
func DataResponseI18n(c *gin.Context, data interface{}, key string) DataResponse {
	return DataResponse{Data: data, Message: T(c, key)}
}

// ValidationErrorResponseI18n extrai os erros de campo do binding
// (go-playground/validator) e monta a resposta 422
func ValidationErrorResponseI18n(c *gin.Context, err error) ValidationErrorResponse {
	response := ValidationErrorResponse{
		Message: T(c, "error.validation"),
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldErr := range validationErrors {
			response.Errors = append(response.Errors, FieldError{
				Field: fieldErr.Field(),
				Tag:   fieldErr.Tag(),
				Value: fieldErr.Param(),
			})
		}
	}

	return response
}
