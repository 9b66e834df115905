package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/OSUMed/feature-request-app/internal/infrastructure/i18n"
)

// Chaves de contexto do Gin compartilhadas com os middlewares
const (
	// LanguageContextKey guarda o idioma detectado da requisição
	LanguageContextKey = "language"
	// I18nServiceContextKey guarda o *i18n.Service
	I18nServiceContextKey = "i18n_service"
	// BaseURLContextKey guarda a URL base usada nos tipos RFC 7807
	BaseURLContextKey = "base_url"
)

// T é um helper para traduzir mensagens no contexto do Gin
// Uso: dto.T(c, "error.not_found.detail", map[string]interface{}{"Resource": "User"})
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	service := i18nService(c)
	if service == nil {
		// sem serviço no contexto a chave é devolvida
		return key
	}

	return service.T(GetLanguage(c), key, params...)
}

// GetLanguage retorna o idioma configurado no contexto da requisição
func GetLanguage(c *gin.Context) string {
	if lang := c.GetString(LanguageContextKey); lang != "" {
		return lang
	}

	if service := i18nService(c); service != nil {
		return service.GetDefaultLanguage()
	}
	return "en"
}

func i18nService(c *gin.Context) *i18n.Service {
	value, exists := c.Get(I18nServiceContextKey)
	if !exists {
		return nil
	}

	service, _ := value.(*i18n.Service)
	return service
}
