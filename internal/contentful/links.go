package contentful

// maxFieldNesting bounds recursion into nested field objects (rich text trees).
const maxFieldNesting = 32

type linkKey struct {
	linkType string
	id       string
}

// resolveLinks replaces link objects in the fields of every entry in the
// collection with pointers to the matching entries and assets from items and
// includes. Resolved resources share pointers, so reference cycles are kept
// as cycles instead of being expanded. Links to resources the API did not
// include stay as raw link objects.
func resolveLinks(collection *EntryCollection) {
	index := make(map[linkKey]any, len(collection.Items)+len(collection.Includes.Entry)+len(collection.Includes.Asset))

	entries := make([]*Entry, 0, len(collection.Items)+len(collection.Includes.Entry))
	entries = append(entries, collection.Items...)
	entries = append(entries, collection.Includes.Entry...)

	for _, entry := range entries {
		if entry == nil {
			continue
		}
		key := linkKey{linkType: "Entry", id: entry.Sys.ID}
		if _, exists := index[key]; !exists {
			index[key] = entry
		}
	}
	for _, asset := range collection.Includes.Asset {
		if asset == nil {
			continue
		}
		index[linkKey{linkType: "Asset", id: asset.Sys.ID}] = asset
	}

	for _, entry := range entries {
		if entry == nil {
			continue
		}
		for name, value := range entry.Fields {
			entry.Fields[name] = resolveValue(value, index, 0)
		}
	}
}

func resolveValue(value any, index map[linkKey]any, nesting int) any {
	if nesting > maxFieldNesting {
		return value
	}

	switch v := value.(type) {
	case map[string]any:
		if key, ok := asLink(v); ok {
			if target, found := index[key]; found {
				return target
			}
			return v
		}
		for name, nested := range v {
			v[name] = resolveValue(nested, index, nesting+1)
		}
		return v
	case []any:
		for i, nested := range v {
			v[i] = resolveValue(nested, index, nesting+1)
		}
		return v
	default:
		return value
	}
}

// asLink reports whether obj is a raw {"sys": {"type": "Link", ...}} object.
func asLink(obj map[string]any) (linkKey, bool) {
	sys, ok := obj["sys"].(map[string]any)
	if !ok {
		return linkKey{}, false
	}
	if sysType, _ := sys["type"].(string); sysType != "Link" {
		return linkKey{}, false
	}
	linkType, _ := sys["linkType"].(string)
	id, _ := sys["id"].(string)
	if linkType == "" || id == "" {
		return linkKey{}, false
	}
	return linkKey{linkType: linkType, id: id}, true
}
