package querit

import "strings"

// defaultCount is the number of results requested when Count is left zero.
const defaultCount = 10

// SiteFilter includes or excludes specific site domains from results.
// Both lists may be set at the same time; the filter is inactive when both
// are empty.
type SiteFilter struct {
	Include []string
	Exclude []string
}

func (f *SiteFilter) payload() *sitesPayload {
	if f == nil || (len(f.Include) == 0 && len(f.Exclude) == 0) {
		return nil
	}
	return &sitesPayload{Include: f.Include, Exclude: f.Exclude}
}

// GeoFilter restricts results to specific countries.
type GeoFilter struct {
	Countries []Country
}

func (f *GeoFilter) payload() (*geoPayload, error) {
	if f == nil || len(f.Countries) == 0 {
		return nil, nil
	}
	include := make([]string, 0, len(f.Countries))
	for _, country := range f.Countries {
		normalized, err := country.Normalize()
		if err != nil {
			return nil, err
		}
		include = append(include, normalized)
	}
	return &geoPayload{Countries: includeList{Include: include}}, nil
}

// SearchFilters aggregates the language, geographic, site, and time range
// constraints of a search request. The zero value applies no filtering.
type SearchFilters struct {
	Languages []Language
	Geo       *GeoFilter
	Sites     *SiteFilter

	// TimeRange is an opaque period token such as "m7" (past 7 months).
	// It is passed through unvalidated.
	TimeRange string
}

// payload assembles the wire filter object. Normalization failures surface
// in field order: languages, geo, sites, timeRange. A nil return means no
// filter is active.
func (f *SearchFilters) payload() (*filtersPayload, error) {
	if f == nil {
		return nil, nil
	}
	var out filtersPayload
	if len(f.Languages) > 0 {
		include := make([]string, 0, len(f.Languages))
		for _, lang := range f.Languages {
			normalized, err := lang.Normalize()
			if err != nil {
				return nil, err
			}
			include = append(include, normalized)
		}
		out.Languages = &includeList{Include: include}
	}
	geo, err := f.Geo.payload()
	if err != nil {
		return nil, err
	}
	out.Geo = geo
	out.Sites = f.Sites.payload()
	if f.TimeRange != "" {
		out.TimeRange = &timeRangePayload{Date: f.TimeRange}
	}
	if out == (filtersPayload{}) {
		return nil, nil
	}
	return &out, nil
}

// SearchRequest describes one search: the query text, the maximum number of
// results, and optional filters. Construct it directly or through
// NewSearchRequestBuilder; a zero Count requests the default of 10.
type SearchRequest struct {
	Query   string
	Count   int
	Filters *SearchFilters
}

// Validate checks the request invariants without serializing it.
func (r SearchRequest) Validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return &ArgumentError{Name: "query", Reason: "must be a non-empty string"}
	}
	return nil
}

// payload serializes the request into the wire shape. Validation and filter
// normalization failures propagate unchanged; no partial payload is built.
func (r SearchRequest) payload() (*searchPayload, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	count := r.Count
	if count <= 0 {
		count = defaultCount
	}
	filters, err := r.Filters.payload()
	if err != nil {
		return nil, err
	}
	return &searchPayload{Query: r.Query, Count: count, Filters: filters}, nil
}

// Wire shapes. Field order is the declared order, which keeps the encoded
// payload stable across runs.

type searchPayload struct {
	Query   string          `json:"query"`
	Count   int             `json:"count"`
	Filters *filtersPayload `json:"filters,omitempty"`
}

type filtersPayload struct {
	Languages *includeList      `json:"languages,omitempty"`
	Geo       *geoPayload       `json:"geo,omitempty"`
	Sites     *sitesPayload     `json:"sites,omitempty"`
	TimeRange *timeRangePayload `json:"timeRange,omitempty"`
}

type includeList struct {
	Include []string `json:"include"`
}

type geoPayload struct {
	Countries includeList `json:"countries"`
}

type sitesPayload struct {
	Include []string `json:"include,omitempty"`
	Exclude []string `json:"exclude,omitempty"`
}

type timeRangePayload struct {
	Date string `json:"date"`
}
