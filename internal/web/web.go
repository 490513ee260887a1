// Package web holds the HTML templates of the catalogue and the view data
// shared by every page.
package web

import (
	"embed"
	"html/template"
	"net/url"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	"github.com/allisson/coursecatalog/internal/contentful"
	"github.com/allisson/coursecatalog/internal/markdown"
	settingsDomain "github.com/allisson/coursecatalog/internal/settings/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// settingsKey is the gin context key holding the visitor's CredentialSet.
const settingsKey = "settings"

// FuncMap returns the template helpers.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"markdown": markdown.Render,
		"dump":     markdown.Dump,
		"link":     Link,
	}
}

// LoadTemplates parses every embedded template.
func LoadTemplates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.html")
}

// Link returns path carrying the api query parameter when the preview API
// is selected.
func Link(path string, api contentful.API) string {
	if api != contentful.APIPreview {
		return path
	}
	return path + "?" + url.Values{"api": {api.String()}}.Encode()
}

// SetSettings stores the visitor's settings for the rest of the request.
func SetSettings(c *gin.Context, settings *settingsDomain.CredentialSet) {
	c.Set(settingsKey, settings)
}

// SettingsFrom returns the visitor's settings, or nil when none were loaded.
func SettingsFrom(c *gin.Context) *settingsDomain.CredentialSet {
	value, ok := c.Get(settingsKey)
	if !ok {
		return nil
	}
	settings, _ := value.(*settingsDomain.CredentialSet)
	return settings
}

// ViewData returns the fields every page template reads.
func ViewData(c *gin.Context, title string) gin.H {
	return gin.H{
		"Title":     title,
		"API":       contentful.ParseAPI(c.Query("api")),
		"Path":      c.Request.URL.Path,
		"Settings":  SettingsFrom(c),
		"RequestID": requestid.Get(c),
	}
}
