package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	settingsDomain "github.com/allisson/coursecatalog/internal/settings/domain"
	"github.com/allisson/coursecatalog/internal/settings/http/dto"
	settingsUseCase "github.com/allisson/coursecatalog/internal/settings/usecase"
	"github.com/allisson/coursecatalog/internal/web"
)

// SettingsTemplate is the template rendering the settings form.
const SettingsTemplate = "settings.html"

// SettingsHandler serves the settings page.
type SettingsHandler struct {
	useCase settingsUseCase.SettingsUseCase
	store   *CookieStore
	logger  *slog.Logger
}

// NewSettingsHandler creates a settings handler.
func NewSettingsHandler(
	useCase settingsUseCase.SettingsUseCase,
	store *CookieStore,
	logger *slog.Logger,
) *SettingsHandler {
	return &SettingsHandler{
		useCase: useCase,
		store:   store,
		logger:  logger,
	}
}

// GetHandler renders the persisted settings without errors.
// GET /settings
func (h *SettingsHandler) GetHandler(c *gin.Context) {
	var form settingsDomain.CredentialSet
	if settings := web.SettingsFrom(c); settings != nil {
		form = *settings
	}

	h.render(c, http.StatusOK, settingsDomain.PendingOutcome(form), false)
}

// PostHandler validates the submitted credentials and saves them on success.
// The form is always re-rendered with 200, except when rate limited (429).
// POST /settings
func (h *SettingsHandler) PostHandler(c *gin.Context) {
	if RateLimited(c) {
		// Values only refill the form; a bad body just leaves it empty.
		req, _ := bindSettingsForm(c)
		form := req.ToSubmitInput().CredentialSet()
		h.render(c, http.StatusTooManyRequests, settingsDomain.PendingOutcome(form), true)
		return
	}

	req, err := bindSettingsForm(c)
	if err != nil {
		// An unreadable body validates as an empty submission.
		h.logger.WarnContext(c.Request.Context(), "failed to bind settings form", slog.Any("error", err))
	}

	outcome := h.useCase.Validate(c.Request.Context(), req.ToSubmitInput())

	if outcome.Success {
		if err := h.store.Save(c, outcome.Settings); err != nil {
			h.logger.ErrorContext(c.Request.Context(), "failed to save settings cookie", slog.Any("error", err))
		} else {
			settings := outcome.Settings
			web.SetSettings(c, &settings)
		}
	}

	h.render(c, http.StatusOK, outcome, false)
}

// bindSettingsForm reads the submitted form, returning an empty form on error.
func bindSettingsForm(c *gin.Context) (dto.SettingsForm, error) {
	var req dto.SettingsForm
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		return dto.SettingsForm{}, err
	}
	return req, nil
}

func (h *SettingsHandler) render(
	c *gin.Context,
	status int,
	outcome *settingsDomain.ValidationOutcome,
	rateLimited bool,
) {
	data := web.ViewData(c, "Settings")
	data["Space"] = h.useCase.ConnectedSpace(c.Request.Context())
	data["Form"] = outcome.Settings
	data["Errors"] = outcome.Errors
	data["HasErrors"] = outcome.HasErrors
	data["Success"] = outcome.Success
	data["RateLimited"] = rateLimited

	c.HTML(status, SettingsTemplate, data)
}
