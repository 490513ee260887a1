package usecase

import (
	"context"

	"github.com/allisson/coursecatalog/internal/contentful"
)

// apiKey is a context key type for storing the selected content API.
type apiKey struct{}

// WithAPI stores the API reads should go through.
func WithAPI(ctx context.Context, api contentful.API) context.Context {
	return context.WithValue(ctx, apiKey{}, api)
}

// APIFromContext returns the selected API, defaulting to delivery.
func APIFromContext(ctx context.Context) contentful.API {
	if api, ok := ctx.Value(apiKey{}).(contentful.API); ok {
		return api
	}
	return contentful.APIDelivery
}
