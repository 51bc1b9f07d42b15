package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/palettehub-backend/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey guarda o idioma resolvido no contexto do Gin
	LanguageContextKey = "language"
	// I18nServiceContextKey guarda o serviço de tradução no contexto
	I18nServiceContextKey = "i18n_service"
)

// I18nMiddleware resolve o idioma de cada requisição
type I18nMiddleware struct {
	i18nService *i18n.Service
}

// NewI18nMiddleware cria um novo middleware de i18n
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	return &I18nMiddleware{i18nService: i18nService}
}

// DetectLanguage resolve o idioma da requisição e o expõe no contexto,
// junto com o serviço de tradução, para os handlers montarem as
// mensagens de resposta
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(LanguageContextKey, m.resolveLanguage(c))
		c.Set(I18nServiceContextKey, m.i18nService)

		c.Next()
	}
}

// resolveLanguage aplica a ordem de prioridade: ?lang= explícito,
// depois Accept-Language, por fim o idioma padrão do serviço
func (m *I18nMiddleware) resolveLanguage(c *gin.Context) string {
	if queryLang := c.Query("lang"); m.i18nService.IsLanguageSupported(queryLang) {
		return queryLang
	}

	if lang := m.parseAcceptLanguage(c.GetHeader("Accept-Language")); lang != "" {
		return lang
	}

	return m.i18nService.GetDefaultLanguage()
}

// parseAcceptLanguage devolve o primeiro idioma suportado do header.
// Exemplo: "pt-BR,pt;q=0.9,en-US;q=0.8,en;q=0.7" -> "pt-BR"
func (m *I18nMiddleware) parseAcceptLanguage(acceptLang string) string {
	if acceptLang == "" {
		return ""
	}

	for _, lang := range strings.Split(acceptLang, ",") {
		// Descarta o peso (;q=0.9)
		lang = strings.TrimSpace(lang)
		if idx := strings.Index(lang, ";"); idx != -1 {
			lang = lang[:idx]
		}

		if m.i18nService.IsLanguageSupported(lang) {
			return lang
		}

		// Tenta a base sem região (pt-BR -> pt)
		if base, _, found := strings.Cut(lang, "-"); found && m.i18nService.IsLanguageSupported(base) {
			return base
		}
	}

	return ""
}
