// Package http provides the catalogue page handlers.
package http

import (
	"github.com/gin-gonic/gin"

	contentUseCase "github.com/allisson/coursecatalog/internal/content/usecase"
	"github.com/allisson/coursecatalog/internal/contentful"
)

// APIMiddleware selects the delivery or preview API for the request from
// the "api" query parameter.
func APIMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		api := contentful.ParseAPI(c.Query("api"))
		ctx := contentUseCase.WithAPI(c.Request.Context(), api)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
