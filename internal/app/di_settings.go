package app

import (
	"fmt"

	"github.com/allisson/coursecatalog/internal/contentful"
	settingsHTTP "github.com/allisson/coursecatalog/internal/settings/http"
	settingsUseCase "github.com/allisson/coursecatalog/internal/settings/usecase"
)

// CredentialProber returns the prober used to test submitted credentials.
func (c *Container) CredentialProber() (settingsUseCase.CredentialProber, error) {
	var err error
	c.credentialProberInit.Do(func() {
		c.credentialProber, err = c.initCredentialProber()
		if err != nil {
			c.setInitError("credentialProber", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("credentialProber"); storedErr != nil {
		return nil, storedErr
	}
	return c.credentialProber, nil
}

// SettingsUseCase returns the settings use case.
func (c *Container) SettingsUseCase() (settingsUseCase.SettingsUseCase, error) {
	var err error
	c.settingsUseCaseInit.Do(func() {
		c.settingsUseCase, err = c.initSettingsUseCase()
		if err != nil {
			c.setInitError("settingsUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("settingsUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.settingsUseCase, nil
}

// CookieStore returns the settings cookie store.
func (c *Container) CookieStore() *settingsHTTP.CookieStore {
	c.cookieStoreInit.Do(func() {
		c.cookieStore = settingsHTTP.NewCookieStore(c.config.SettingsCookieSecure, c.Logger())
	})
	return c.cookieStore
}

// SettingsHandler returns the HTTP handler for the settings page.
func (c *Container) SettingsHandler() (*settingsHTTP.SettingsHandler, error) {
	var err error
	c.settingsHandlerInit.Do(func() {
		c.settingsHandler, err = c.initSettingsHandler()
		if err != nil {
			c.setInitError("settingsHandler", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("settingsHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.settingsHandler, nil
}

// initCredentialProber creates the prober with metrics instrumentation.
func (c *Container) initCredentialProber() (settingsUseCase.CredentialProber, error) {
	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for credential prober: %w", err)
	}

	prober := contentful.NewProber(c.config.ContentfulTimeout, c.Logger())
	prober.BaseURLs = c.baseURLs()
	return settingsUseCase.NewCredentialProberWithMetrics(prober, businessMetrics), nil
}

// initSettingsUseCase creates the settings use case with all its dependencies.
func (c *Container) initSettingsUseCase() (settingsUseCase.SettingsUseCase, error) {
	prober, err := c.CredentialProber()
	if err != nil {
		return nil, fmt.Errorf("failed to get credential prober for settings use case: %w", err)
	}

	gateway, err := c.ContentGateway()
	if err != nil {
		return nil, fmt.Errorf("failed to get content gateway for settings use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for settings use case: %w", err)
	}

	useCase := settingsUseCase.NewSettingsUseCase(prober, gateway, c.Logger())
	return settingsUseCase.NewSettingsUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initSettingsHandler creates the settings handler with all its dependencies.
func (c *Container) initSettingsHandler() (*settingsHTTP.SettingsHandler, error) {
	useCase, err := c.SettingsUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings use case for settings handler: %w", err)
	}

	return settingsHTTP.NewSettingsHandler(useCase, c.CookieStore(), c.Logger()), nil
}
