package contentful

import (
	"net/url"
	"strconv"
)

// MaxInclude is the deepest link resolution the API supports.
const MaxInclude = 10

// Query describes an entries request.
type Query struct {
	// ContentType restricts entries to one content type id.
	ContentType string
	// Include is the link resolution depth (0-10).
	Include int
	// Fields holds equality filters keyed by field path, e.g. "fields.slug".
	Fields map[string]string
	Order  string
	Limit  int
}

// NewQuery creates a query for one content type.
func NewQuery(contentType string) *Query {
	return &Query{ContentType: contentType, Fields: map[string]string{}}
}

// WithInclude sets the link resolution depth, clamped to [0, MaxInclude].
func (q *Query) WithInclude(depth int) *Query {
	switch {
	case depth < 0:
		depth = 0
	case depth > MaxInclude:
		depth = MaxInclude
	}
	q.Include = depth
	return q
}

// Where adds an equality filter.
func (q *Query) Where(path, value string) *Query {
	if q.Fields == nil {
		q.Fields = map[string]string{}
	}
	q.Fields[path] = value
	return q
}

// Values encodes the query as URL parameters.
func (q *Query) Values() url.Values {
	values := url.Values{}
	if q == nil {
		return values
	}
	if q.ContentType != "" {
		values.Set("content_type", q.ContentType)
	}
	if q.Include > 0 {
		values.Set("include", strconv.Itoa(q.Include))
	}
	if q.Order != "" {
		values.Set("order", q.Order)
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	for path, value := range q.Fields {
		values.Set(path, value)
	}
	return values
}
