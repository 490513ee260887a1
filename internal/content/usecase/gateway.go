package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/allisson/coursecatalog/internal/content/domain"
	"github.com/allisson/coursecatalog/internal/contentful"
	apperrors "github.com/allisson/coursecatalog/internal/errors"
)

// gateway implements the Gateway interface.
type gateway struct {
	mu       sync.RWMutex
	delivery EntryReader
	preview  EntryReader

	defaults        domain.Config
	landingPageSlug string
	newClient       ClientFactory
}

// NewClientFactory returns a ClientFactory building contentful clients with
// the given timeout and logger. baseURLs optionally overrides the endpoint of
// each API.
func NewClientFactory(timeout time.Duration, logger *slog.Logger, baseURLs map[contentful.API]string) ClientFactory {
	return func(cfg contentful.ClientConfig) (EntryReader, error) {
		cfg.Timeout = timeout
		cfg.Logger = logger
		api := contentful.APIDelivery
		if cfg.Host == contentful.PreviewHost {
			api = contentful.APIPreview
		}
		if baseURL := baseURLs[api]; baseURL != "" {
			cfg.BaseURL = baseURL
		}
		client, err := contentful.NewClient(cfg)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
}

// NewGateway creates a gateway with no space connection. Call Initialize
// before any read.
func NewGateway(defaults domain.Config, landingPageSlug string, newClient ClientFactory) Gateway {
	return &gateway{
		defaults:        defaults,
		landingPageSlug: landingPageSlug,
		newClient:       newClient,
	}
}

// Initialize builds the delivery and preview connections. Last write wins.
func (g *gateway) Initialize(cfg *domain.Config) error {
	config := g.defaults
	if cfg != nil {
		config = *cfg
	}

	delivery, err := g.newClient(contentful.ClientConfig{
		Space:       config.Space,
		AccessToken: config.DeliveryToken,
		Host:        contentful.DeliveryHost,
		Environment: config.Environment,
	})
	if err != nil {
		return apperrors.Wrap(err, "failed to create delivery client")
	}

	preview, err := g.newClient(contentful.ClientConfig{
		Space:       config.Space,
		AccessToken: config.PreviewTokenOrDefault(),
		Host:        contentful.PreviewHost,
		Environment: config.Environment,
	})
	if err != nil {
		return apperrors.Wrap(err, "failed to create preview client")
	}

	g.mu.Lock()
	g.delivery = delivery
	g.preview = preview
	g.mu.Unlock()

	return nil
}

// reader returns the connection selected by the API stored in ctx.
func (g *gateway) reader(ctx context.Context) (EntryReader, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	client := g.delivery
	if APIFromContext(ctx) == contentful.APIPreview {
		client = g.preview
	}
	if client == nil {
		return nil, domain.ErrNotInitialized
	}
	return client, nil
}

// Space returns the descriptor of the connected space.
func (g *gateway) Space(ctx context.Context) (*contentful.Space, error) {
	client, err := g.reader(ctx)
	if err != nil {
		return nil, err
	}

	space, err := client.GetSpace(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to get space")
	}
	return space, nil
}

// GetCourses returns every course entry in the API's default order.
func (g *gateway) GetCourses(ctx context.Context) ([]*contentful.Entry, error) {
	return g.list(ctx, contentful.NewQuery(domain.ContentTypeCourse))
}

// GetLandingPage returns the landing page identified by the configured slug.
func (g *gateway) GetLandingPage(ctx context.Context) (*contentful.Entry, error) {
	query := contentful.NewQuery(domain.ContentTypeLandingPage).
		Where("fields.slug", g.landingPageSlug).
		WithInclude(domain.LinkDepth)

	return g.first(ctx, query)
}

// GetCourse returns the course entry with the given slug.
func (g *gateway) GetCourse(ctx context.Context, slug string) (*contentful.Entry, error) {
	// Links are only resolved on the collection endpoint, so a single
	// course is fetched through a filtered entries query.
	query := contentful.NewQuery(domain.ContentTypeCourse).
		Where("fields.slug", slug).
		WithInclude(domain.LinkDepth)

	return g.first(ctx, query)
}

// GetLessons is not implemented.
func (g *gateway) GetLessons(ctx context.Context, courseID string) ([]*contentful.Entry, error) {
	return nil, domain.ErrLessonsNotImplemented
}

// GetCategories returns every category entry.
func (g *gateway) GetCategories(ctx context.Context) ([]*contentful.Entry, error) {
	return g.list(ctx, contentful.NewQuery(domain.ContentTypeCategory))
}

// GetCoursesByCategory returns the courses linked to a category content type.
func (g *gateway) GetCoursesByCategory(ctx context.Context, category string) ([]*contentful.Entry, error) {
	query := contentful.NewQuery(domain.ContentTypeCourse).
		Where("fields.category.sys.contentType.sys.id", category)

	return g.list(ctx, query)
}

func (g *gateway) list(ctx context.Context, query *contentful.Query) ([]*contentful.Entry, error) {
	client, err := g.reader(ctx)
	if err != nil {
		return nil, err
	}

	collection, err := client.GetEntries(ctx, query)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to get %s entries", query.ContentType)
	}
	return collection.Items, nil
}

func (g *gateway) first(ctx context.Context, query *contentful.Query) (*contentful.Entry, error) {
	items, err := g.list(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrEntryNotFound
	}
	return items[0], nil
}
