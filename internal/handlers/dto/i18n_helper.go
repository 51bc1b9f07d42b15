package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/palettehub-backend/internal/infrastructure/i18n"
)

const (
	// languageContextKey deve manter o mesmo valor de
	// languageContextKey (duplicado para evitar ciclo de import)
	languageContextKey = "language"
	// i18nServiceContextKey deve manter o mesmo valor de
	// i18nServiceContextKey (duplicado para evitar ciclo de import)
	i18nServiceContextKey = "i18n_service"
)

// T traduz uma chave de mensagem usando o serviço e o idioma que o
// middleware de i18n deixou no contexto. Sem serviço disponível, a
// própria chave é devolvida.
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	value, exists := c.Get(i18nServiceContextKey)
	if !exists {
		return key
	}

	service, ok := value.(*i18n.Service)
	if !ok {
		return key
	}

	return service.T(GetLanguage(c), key, params...)
}

// GetLanguage retorna o idioma resolvido para a requisição
func GetLanguage(c *gin.Context) string {
	if lang, ok := c.Get(languageContextKey); ok {
		if langStr, ok := lang.(string); ok {
			return langStr
		}
	}
	return "en"
}
