package app

import (
	"fmt"
	"log/slog"

	contentDomain "github.com/allisson/coursecatalog/internal/content/domain"
	contentHTTP "github.com/allisson/coursecatalog/internal/content/http"
	contentUseCase "github.com/allisson/coursecatalog/internal/content/usecase"
	"github.com/allisson/coursecatalog/internal/contentful"
)

// ContentGateway returns the content gateway, connected to the configured
// space when credentials are present.
func (c *Container) ContentGateway() (contentUseCase.Gateway, error) {
	var err error
	c.contentGatewayInit.Do(func() {
		c.contentGateway, err = c.initContentGateway()
		if err != nil {
			c.setInitError("contentGateway", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("contentGateway"); storedErr != nil {
		return nil, storedErr
	}
	return c.contentGateway, nil
}

// PageHandler returns the HTTP handler for catalogue pages.
func (c *Container) PageHandler() (*contentHTTP.PageHandler, error) {
	var err error
	c.pageHandlerInit.Do(func() {
		c.pageHandler, err = c.initPageHandler()
		if err != nil {
			c.setInitError("pageHandler", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("pageHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.pageHandler, nil
}

// contentConfig returns the space connection taken from configuration.
func (c *Container) contentConfig() contentDomain.Config {
	return contentDomain.Config{
		Space:         c.config.ContentfulSpaceID,
		DeliveryToken: c.config.ContentfulDeliveryToken,
		PreviewToken:  c.config.ContentfulPreviewToken,
		Environment:   c.config.ContentfulEnvironment,
	}
}

// baseURLs returns the configured endpoint overrides per API.
func (c *Container) baseURLs() map[contentful.API]string {
	return map[contentful.API]string{
		contentful.APIDelivery: c.config.ContentfulDeliveryBaseURL,
		contentful.APIPreview:  c.config.ContentfulPreviewBaseURL,
	}
}

// initContentGateway creates the gateway and connects it. A failed connection
// is logged and leaves the gateway uninitialized so pages answer 503 until a
// space is configured.
func (c *Container) initContentGateway() (contentUseCase.Gateway, error) {
	logger := c.Logger()

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for content gateway: %w", err)
	}

	factory := contentUseCase.NewClientFactory(c.config.ContentfulTimeout, logger, c.baseURLs())
	gateway := contentUseCase.NewGateway(c.contentConfig(), c.config.LandingPageSlug, factory)
	gateway = contentUseCase.NewGatewayWithMetrics(gateway, businessMetrics)

	if err := gateway.Initialize(nil); err != nil {
		logger.Warn("content gateway not connected", slog.Any("error", err))
	}

	return gateway, nil
}

// initPageHandler creates the page handler with all its dependencies.
func (c *Container) initPageHandler() (*contentHTTP.PageHandler, error) {
	gateway, err := c.ContentGateway()
	if err != nil {
		return nil, fmt.Errorf("failed to get content gateway for page handler: %w", err)
	}

	return contentHTTP.NewPageHandler(gateway, c.Logger()), nil
}
