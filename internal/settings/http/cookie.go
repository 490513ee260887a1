// Package http provides the settings page handlers, the settings cookie and
// the middleware exposing it to every page.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	settingsDomain "github.com/allisson/coursecatalog/internal/settings/domain"
	"github.com/allisson/coursecatalog/internal/web"
)

// CookieStore reads and writes the settings cookie. The value is the JSON
// encoded CredentialSet in clear text.
type CookieStore struct {
	secure bool
	logger *slog.Logger
}

// NewCookieStore creates a CookieStore. secure sets the cookie's Secure flag.
func NewCookieStore(secure bool, logger *slog.Logger) *CookieStore {
	return &CookieStore{secure: secure, logger: logger}
}

// Load returns the settings sent by the visitor, or nil when the cookie is
// absent or malformed.
func (s *CookieStore) Load(c *gin.Context) *settingsDomain.CredentialSet {
	value, err := c.Cookie(settingsDomain.CookieName)
	if err != nil || value == "" {
		return nil
	}

	var settings settingsDomain.CredentialSet
	if err := json.Unmarshal([]byte(value), &settings); err != nil {
		s.logger.DebugContext(c.Request.Context(), "ignoring malformed settings cookie", slog.Any("error", err))
		return nil
	}
	return &settings
}

// Save writes settings to the response as an HTTP-only cookie valid for one year.
func (s *CookieStore) Save(c *gin.Context, settings settingsDomain.CredentialSet) error {
	value, err := json.Marshal(settings)
	if err != nil {
		return err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(settingsDomain.CookieName, string(value), settingsDomain.CookieMaxAge, "/", "", s.secure, true)
	return nil
}

// SettingsMiddleware loads the settings cookie into the request context for
// every page.
func SettingsMiddleware(store *CookieStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		web.SetSettings(c, store.Load(c))
		c.Next()
	}
}
