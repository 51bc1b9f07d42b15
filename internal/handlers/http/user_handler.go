package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/palettehub-backend/internal/domain/errors"
	"github.com/rafabene/palettehub-backend/internal/handlers/dto"
	"github.com/rafabene/palettehub-backend/internal/handlers/middleware"
	"github.com/rafabene/palettehub-backend/internal/infrastructure/auth"
	"github.com/rafabene/palettehub-backend/internal/services"
)

// UserHandler lida com requisições HTTP relacionadas a usuários
type UserHandler struct {
	userService *services.UserService
	tokens      *auth.TokenManager
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService, tokens *auth.TokenManager) *UserHandler {
	return &UserHandler{
		userService: userService,
		tokens:      tokens,
	}
}

// Register registra um novo usuário e devolve o token de acesso
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponseI18n(c, err))
		return
	}

	user, err := h.userService.Register(c.Request.Context(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errs.Is(err, errors.ErrEmailAlreadyExists) {
			c.JSON(http.StatusUnprocessableEntity, dto.MessageResponseI18n(c, "error.email_already_exists"))
			return
		}
		if errs.Is(err, errors.ErrInvalidEmail) || errs.Is(err, errors.ErrValidation) {
			c.JSON(http.StatusUnprocessableEntity, dto.MessageResponseI18n(c, "error.validation"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponseI18n(c, "error.internal"))
		return
	}

	token, err := h.tokens.Generate(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponseI18n(c, "error.internal"))
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Message:     dto.T(c, "user.registered"),
		AccessToken: token,
	})
}

// Login autentica um usuário e devolve o token de acesso
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponseI18n(c, err))
		return
	}

	user, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errs.Is(err, errors.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, dto.MessageResponseI18n(c, "error.invalid_credentials"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponseI18n(c, "error.internal"))
		return
	}

	token, err := h.tokens.Generate(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponseI18n(c, "error.internal"))
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Message:     dto.T(c, "user.login_successful"),
		AccessToken: token,
	})
}

// Logout encerra a sessão do cliente. O token é stateless e de curta
// duração; o cliente simplesmente o descarta.
func (h *UserHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponseI18n(c, "user.logout_successful"))
}

// Update atualiza os dados do próprio usuário
func (h *UserHandler) Update(c *gin.Context) {
	userID, ok := middleware.AuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.MessageResponseI18n(c, "error.unauthorized"))
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponseI18n(c, err))
		return
	}

	err := h.userService.Update(c.Request.Context(), userID, services.UpdateInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrUserNotFound):
			c.JSON(http.StatusUnauthorized, dto.MessageResponseI18n(c, "error.unauthorized"))
		case errs.Is(err, errors.ErrEmailAlreadyExists):
			c.JSON(http.StatusUnprocessableEntity, dto.MessageResponseI18n(c, "error.email_already_exists"))
		case errs.Is(err, errors.ErrInvalidEmail), errs.Is(err, errors.ErrValidation):
			c.JSON(http.StatusUnprocessableEntity, dto.MessageResponseI18n(c, "error.validation"))
		default:
			c.JSON(http.StatusInternalServerError, dto.MessageResponseI18n(c, "error.internal"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponseI18n(c, "user.updated"))
}

// Delete remove a conta do próprio usuário, em cascata sobre suas paletas
func (h *UserHandler) Delete(c *gin.Context) {
	userID, ok := middleware.AuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.MessageResponseI18n(c, "error.unauthorized"))
		return
	}

	err := h.userService.DeleteAccount(c.Request.Context(), userID)
	if err != nil {
		if errs.Is(err, errors.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, dto.MessageResponseI18n(c, "error.unauthorized"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponseI18n(c, "error.internal"))
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponseI18n(c, "user.deleted"))
}
