package querit

import (
	"encoding/json"
	"errors"
	"testing"
)

func encodePayload(t *testing.T, req SearchRequest) string {
	t.Helper()
	payload, err := req.payload()
	if err != nil {
		t.Fatalf("payload: %v", err)
	}
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(data)
}

func TestPayloadWithoutFilters(t *testing.T) {
	got := encodePayload(t, SearchRequest{Query: "chat", Count: 5})
	want := `{"query":"chat","count":5}`
	if got != want {
		t.Fatalf("payload mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestPayloadDefaultCount(t *testing.T) {
	got := encodePayload(t, SearchRequest{Query: "chat"})
	want := `{"query":"chat","count":10}`
	if got != want {
		t.Fatalf("payload mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestPayloadEmptyFiltersOmitted(t *testing.T) {
	got := encodePayload(t, SearchRequest{
		Query:   "chat",
		Count:   5,
		Filters: &SearchFilters{},
	})
	want := `{"query":"chat","count":5}`
	if got != want {
		t.Fatalf("payload mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestPayloadSiteIncludeOnly(t *testing.T) {
	got := encodePayload(t, SearchRequest{
		Query: "chat",
		Count: 5,
		Filters: &SearchFilters{
			Sites: &SiteFilter{Include: []string{"a.com"}},
		},
	})
	want := `{"query":"chat","count":5,"filters":{"sites":{"include":["a.com"]}}}`
	if got != want {
		t.Fatalf("payload mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestPayloadAllFilters(t *testing.T) {
	got := encodePayload(t, SearchRequest{
		Query: "chat",
		Count: 5,
		Filters: &SearchFilters{
			Languages: []Language{LanguageEnglish},
			Geo:       &GeoFilter{Countries: []Country{CountryUnitedStates}},
			Sites:     &SiteFilter{Include: []string{"dictionary.cambridge.org"}},
			TimeRange: "m7",
		},
	})
	want := `{"query":"chat","count":5,"filters":{"languages":{"include":["english"]},"geo":{"countries":{"include":["united states"]}},"sites":{"include":["dictionary.cambridge.org"]},"timeRange":{"date":"m7"}}}`
	if got != want {
		t.Fatalf("payload mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestPayloadSiteBothLists(t *testing.T) {
	got := encodePayload(t, SearchRequest{
		Query: "chat",
		Filters: &SearchFilters{
			Sites: &SiteFilter{
				Include: []string{"a.com"},
				Exclude: []string{"b.com", "c.com"},
			},
		},
	})
	want := `{"query":"chat","count":10,"filters":{"sites":{"include":["a.com"],"exclude":["b.com","c.com"]}}}`
	if got != want {
		t.Fatalf("payload mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestPayloadRawStringValuesNormalized(t *testing.T) {
	got := encodePayload(t, SearchRequest{
		Query: "chat",
		Filters: &SearchFilters{
			Languages: []Language{"  English "},
			Geo:       &GeoFilter{Countries: []Country{"JAPAN"}},
		},
	})
	want := `{"query":"chat","count":10,"filters":{"languages":{"include":["english"]},"geo":{"countries":{"include":["japan"]}}}}`
	if got != want {
		t.Fatalf("payload mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestPayloadUnsupportedLanguageFailsFast(t *testing.T) {
	req := SearchRequest{
		Query: "chat",
		Filters: &SearchFilters{
			Languages: []Language{"klingon"},
			Geo:       &GeoFilter{Countries: []Country{"narnia"}},
		},
	}
	_, err := req.payload()
	var unsupported *UnsupportedValueError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedValueError, got %v", err)
	}
	// Languages normalize before geo, so the language error surfaces first.
	if unsupported.Kind != "language" {
		t.Fatalf("expected language error first, got %+v", unsupported)
	}
}

func TestValidateRejectsEmptyQuery(t *testing.T) {
	for _, query := range []string{"", "   "} {
		req := SearchRequest{Query: query}
		var argErr *ArgumentError
		if err := req.Validate(); !errors.As(err, &argErr) {
			t.Fatalf("expected ArgumentError for %q, got %v", query, err)
		}
		if _, err := req.payload(); err == nil {
			t.Fatalf("expected payload to fail for %q", query)
		}
	}
}

func TestNewSearchRequest(t *testing.T) {
	req, err := NewSearchRequest("chat")
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if req.Query != "chat" {
		t.Fatalf("unexpected request %+v", req)
	}
	if _, err := NewSearchRequest(""); err == nil {
		t.Fatal("expected error for empty query")
	}
}
