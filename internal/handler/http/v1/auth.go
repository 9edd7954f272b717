package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/fire_incident_console/internal/models"
	"github.com/shenikar/fire_incident_console/internal/service"
	"github.com/shenikar/fire_incident_console/internal/session"
	"github.com/sirupsen/logrus"
)

// sessionContextKey - ключ контекста gin, под которым лежит сессия
const sessionContextKey = "session"

// loginPath - страница входа, на которую перенаправляются запросы без
// подходящей сессии
const loginPath = "/login"

// SessionMiddleware - middleware, поднимающее сессию по токену из cookie
// или заголовка Authorization: Bearer. Отсутствие сессии не является
// ошибкой, решение принимает RequireRole.
func SessionMiddleware(sessions service.SessionStore, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("session_token")
		if err != nil || token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if token != "" {
			sess, err := sessions.Get(c.Request.Context(), token)
			if err == nil {
				c.Set(sessionContextKey, sess)
			} else if !errors.Is(err, session.ErrNotFound) {
				log.WithError(err).Error("Failed to load session")
			}
		}

		c.Next()
	}
}

// RequireRole - middleware ролевого шлюза. Запрос без сессии или с сессией
// другой роли перенаправляется на страницу входа, сама сессия при этом не
// изменяется и не уничтожается.
func RequireRole(accountType models.AccountType, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := SessionFromContext(c)
		if sess == nil || sess.AccountType != accountType {
			log.WithFields(logrus.Fields{
				"path":     c.Request.URL.Path,
				"required": accountType,
			}).Warn("Request rejected by role gate")
			c.Redirect(http.StatusSeeOther, loginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// SessionFromContext возвращает сессию запроса или nil
func SessionFromContext(c *gin.Context) *models.Session {
	value, ok := c.Get(sessionContextKey)
	if !ok {
		return nil
	}
	sess, ok := value.(*models.Session)
	if !ok {
		return nil
	}
	return sess
}
