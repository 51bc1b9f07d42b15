package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/palettehub-backend/internal/domain/repositories"
	"github.com/rafabene/palettehub-backend/internal/handlers/dto"
	"github.com/rafabene/palettehub-backend/internal/infrastructure/auth"
)

// UserIDContextKey é a chave usada para armazenar o ID do usuário
// autenticado no contexto do Gin
const UserIDContextKey = "auth_user_id"

// AuthMiddleware valida o access token das rotas autenticadas
type AuthMiddleware struct {
	tokens *auth.TokenManager
	users  repositories.UserRepository
}

// NewAuthMiddleware cria um novo AuthMiddleware
func NewAuthMiddleware(tokens *auth.TokenManager, users repositories.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		users:  users,
	}
}

// RequireAuth exige um Bearer token válido de um usuário ainda ativo;
// caso contrário responde 401. Um token emitido antes da remoção da
// conta deixa de valer junto com ela.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")

		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponseI18n(c, "error.unauthorized"))
			return
		}

		userID, err := m.tokens.Verify(strings.TrimPrefix(header, prefix))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponseI18n(c, "error.unauthorized"))
			return
		}

		user, err := m.users.FindByID(c.Request.Context(), userID)
		if err != nil || user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponseI18n(c, "error.unauthorized"))
			return
		}

		c.Set(UserIDContextKey, userID)
		c.Next()
	}
}

// AuthUserID retorna o ID do usuário autenticado da requisição
func AuthUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(UserIDContextKey)
	if !exists {
		return 0, false
	}

	userID, ok := value.(uint)
	return userID, ok
}
