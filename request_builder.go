package querit

// NewSearchRequest constructs a validated request with the required query set.
func NewSearchRequest(query string) (SearchRequest, error) {
	req := SearchRequest{Query: query}
	return req, req.Validate()
}

// SearchRequestBuilder provides a fluent builder with validation at Build.
type SearchRequestBuilder struct {
	req SearchRequest
}

// NewSearchRequestBuilder seeds the builder with the query text.
func NewSearchRequestBuilder(query string) *SearchRequestBuilder {
	return &SearchRequestBuilder{req: SearchRequest{Query: query}}
}

// Count sets the maximum number of results to return.
func (b *SearchRequestBuilder) Count(count int) *SearchRequestBuilder {
	b.req.Count = count
	return b
}

// Languages restricts results to the given languages.
func (b *SearchRequestBuilder) Languages(langs ...Language) *SearchRequestBuilder {
	b.filters().Languages = append(b.filters().Languages, langs...)
	return b
}

// Countries restricts results to the given countries.
func (b *SearchRequestBuilder) Countries(countries ...Country) *SearchRequestBuilder {
	f := b.filters()
	if f.Geo == nil {
		f.Geo = &GeoFilter{}
	}
	f.Geo.Countries = append(f.Geo.Countries, countries...)
	return b
}

// IncludeSites restricts results to the given site domains.
func (b *SearchRequestBuilder) IncludeSites(domains ...string) *SearchRequestBuilder {
	f := b.filters()
	if f.Sites == nil {
		f.Sites = &SiteFilter{}
	}
	f.Sites.Include = append(f.Sites.Include, domains...)
	return b
}

// ExcludeSites removes the given site domains from results.
func (b *SearchRequestBuilder) ExcludeSites(domains ...string) *SearchRequestBuilder {
	f := b.filters()
	if f.Sites == nil {
		f.Sites = &SiteFilter{}
	}
	f.Sites.Exclude = append(f.Sites.Exclude, domains...)
	return b
}

// TimeRange sets the opaque period token, e.g. "m7" for the past 7 months.
func (b *SearchRequestBuilder) TimeRange(token string) *SearchRequestBuilder {
	b.filters().TimeRange = token
	return b
}

// Build validates the assembled request.
func (b *SearchRequestBuilder) Build() (SearchRequest, error) {
	return b.req, b.req.Validate()
}

func (b *SearchRequestBuilder) filters() *SearchFilters {
	if b.req.Filters == nil {
		b.req.Filters = &SearchFilters{}
	}
	return b.req.Filters
}
