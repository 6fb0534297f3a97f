package querit

import "encoding/json"

// SearchResponse wraps the raw decoded response body. Every accessor is
// total and defensive: a missing field, a non-object body, or an unexpected
// shape yields the absent value, never an error. The upstream schema is
// best-effort and may evolve; iteration over results must not break when
// it does.
type SearchResponse struct {
	raw any
}

func newSearchResponse(raw any) *SearchResponse {
	return &SearchResponse{raw: raw}
}

// Raw returns the undecorated decoded body for forward-compatible access.
func (r *SearchResponse) Raw() any { return r.raw }

// ErrorCode returns the response error code, or nil if not present.
func (r *SearchResponse) ErrorCode() *int64 {
	return intField(r.raw, "error_code")
}

// ErrorMessage returns the response error message, or nil if not present.
func (r *SearchResponse) ErrorMessage() *string {
	return stringField(r.raw, "error_msg")
}

// SearchID returns the unique id the service assigned to this search, or
// nil if not present.
func (r *SearchResponse) SearchID() *int64 {
	return intField(r.raw, "search_id")
}

// Results returns the result items found under results.result. An absent or
// malformed path yields an empty slice.
func (r *SearchResponse) Results() []SearchResultItem {
	body, ok := asObject(r.raw)
	if !ok {
		return nil
	}
	results, ok := asObject(body["results"])
	if !ok {
		return nil
	}
	entries, ok := results["result"].([]any)
	if !ok {
		return nil
	}
	items := make([]SearchResultItem, len(entries))
	for i, entry := range entries {
		items[i] = SearchResultItem{raw: entry}
	}
	return items
}

// SearchResultItem wraps a single raw result entry with typed accessors.
// Each accessor returns nil when the entry is not an object or the field is
// missing or of the wrong shape.
type SearchResultItem struct {
	raw any
}

// Raw returns the undecorated result entry.
func (i SearchResultItem) Raw() any { return i.raw }

// URL returns the result URL.
func (i SearchResultItem) URL() *string { return stringField(i.raw, "url") }

// Title returns the result title.
func (i SearchResultItem) Title() *string { return stringField(i.raw, "title") }

// Snippet returns the result text snippet.
func (i SearchResultItem) Snippet() *string { return stringField(i.raw, "snippet") }

// PageTime returns the page publish timestamp.
func (i SearchResultItem) PageTime() *int64 { return intField(i.raw, "page_time") }

// PageAge returns the page age description, e.g. a relative time.
func (i SearchResultItem) PageAge() *string { return stringField(i.raw, "page_age") }

// SiteDisplayType returns the site display type identifier.
func (i SearchResultItem) SiteDisplayType() *int64 { return intField(i.raw, "site_display_type") }

// Language returns the numeric language identifier of the result.
func (i SearchResultItem) Language() *int64 { return intField(i.raw, "language") }

// SiteAuthLevel returns the site authority level.
func (i SearchResultItem) SiteAuthLevel() *int64 { return intField(i.raw, "site_auth_level") }

// PageImages returns image metadata associated with the page.
func (i SearchResultItem) PageImages() map[string]any {
	body, ok := asObject(i.raw)
	if !ok {
		return nil
	}
	images, _ := asObject(body["page_images"])
	return images
}

func asObject(v any) (map[string]any, bool) {
	obj, ok := v.(map[string]any)
	return obj, ok
}

func stringField(v any, key string) *string {
	obj, ok := asObject(v)
	if !ok {
		return nil
	}
	s, ok := obj[key].(string)
	if !ok {
		return nil
	}
	return &s
}

// intField reads an integer field. Bodies decoded with json.Number keep
// full precision; plain float64 decoding is accepted as well.
func intField(v any, key string) *int64 {
	obj, ok := asObject(v)
	if !ok {
		return nil
	}
	switch n := obj[key].(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return nil
		}
		return &i
	case float64:
		i := int64(n)
		return &i
	case int64:
		return &n
	case int:
		i := int64(n)
		return &i
	default:
		return nil
	}
}
