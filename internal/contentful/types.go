package contentful

import (
	"time"
)

// API selects one of the two logical endpoints of the content API.
type API string

const (
	// APIDelivery serves published content only.
	APIDelivery API = "cda"
	// APIPreview serves draft and published content.
	APIPreview API = "cpa"
)

// Production hosts of the two API surfaces.
const (
	DeliveryHost = "cdn.contentful.com"
	PreviewHost  = "preview.contentful.com"
)

// Host returns the production host serving the API.
func (a API) Host() string {
	if a == APIPreview {
		return PreviewHost
	}
	return DeliveryHost
}

// String implements fmt.Stringer.
func (a API) String() string {
	return string(a)
}

// ParseAPI maps the "api" query value used by the pages to an API.
// Anything other than "cpa" selects the delivery API.
func ParseAPI(value string) API {
	if API(value) == APIPreview {
		return APIPreview
	}
	return APIDelivery
}

// Sys holds the system metadata attached to every remote resource.
type Sys struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	LinkType    string     `json:"linkType,omitempty"`
	ContentType *Link      `json:"contentType,omitempty"`
	Locale      string     `json:"locale,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// Link is a reference to another resource.
type Link struct {
	Sys Sys `json:"sys"`
}

// Locale describes one locale enabled in a space.
type Locale struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Default bool   `json:"default"`
}

// Space is the descriptor of a content space.
type Space struct {
	Sys     Sys      `json:"sys"`
	Name    string   `json:"name"`
	Locales []Locale `json:"locales"`
}

// Entry is a content record. After link resolution, link fields hold *Entry
// or *Asset values instead of raw link objects.
type Entry struct {
	Sys    Sys            `json:"sys"`
	Fields map[string]any `json:"fields"`
}

// ContentTypeID returns the id of the entry's content type.
func (e *Entry) ContentTypeID() string {
	if e == nil || e.Sys.ContentType == nil {
		return ""
	}
	return e.Sys.ContentType.Sys.ID
}

// String returns a string field or "" when absent.
func (e *Entry) String(name string) string {
	if e == nil {
		return ""
	}
	s, _ := e.Fields[name].(string)
	return s
}

// Entry returns a resolved single-entry link field.
func (e *Entry) Entry(name string) *Entry {
	if e == nil {
		return nil
	}
	linked, _ := e.Fields[name].(*Entry)
	return linked
}

// Entries returns the resolved entries of a multi-link field, skipping
// unresolved links.
func (e *Entry) Entries(name string) []*Entry {
	if e == nil {
		return nil
	}
	values, _ := e.Fields[name].([]any)
	entries := make([]*Entry, 0, len(values))
	for _, value := range values {
		if linked, ok := value.(*Entry); ok {
			entries = append(entries, linked)
		}
	}
	return entries
}

// Asset returns a resolved asset link field.
func (e *Entry) Asset(name string) *Asset {
	if e == nil {
		return nil
	}
	asset, _ := e.Fields[name].(*Asset)
	return asset
}

// Asset is a media resource.
type Asset struct {
	Sys    Sys            `json:"sys"`
	Fields map[string]any `json:"fields"`
}

// Title returns the asset title.
func (a *Asset) Title() string {
	if a == nil {
		return ""
	}
	s, _ := a.Fields["title"].(string)
	return s
}

// URL returns the asset file URL.
func (a *Asset) URL() string {
	if a == nil {
		return ""
	}
	file, _ := a.Fields["file"].(map[string]any)
	url, _ := file["url"].(string)
	return url
}

// Includes carries linked resources returned next to a collection.
type Includes struct {
	Entry []*Entry `json:"Entry"`
	Asset []*Asset `json:"Asset"`
}

// EntryCollection is one page of entries.
type EntryCollection struct {
	Total    int      `json:"total"`
	Skip     int      `json:"skip"`
	Limit    int      `json:"limit"`
	Items    []*Entry `json:"items"`
	Includes Includes `json:"includes"`
}
