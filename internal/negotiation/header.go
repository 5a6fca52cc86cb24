package negotiation

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
)

// AcceptHeaderStrategy resolves media types from the standard Accept
// header. It has a total contract: it never returns an error.
type AcceptHeaderStrategy struct{}

// NewAcceptHeaderStrategy creates the Accept header strategy.
func NewAcceptHeaderStrategy() *AcceptHeaderStrategy {
	return &AcceptHeaderStrategy{}
}

// Name identifies the strategy.
func (s *AcceptHeaderStrategy) Name() string {
	return "accept_header"
}

// Resolve parses the Accept header into candidates ordered by quality
// value, most preferred first. An absent header, or one that reduces to
// the universal wildcard, yields the unconstrained outcome. Entries that
// fail media type parsing are skipped.
func (s *AcceptHeaderStrategy) Resolve(r *http.Request) (Outcome, error) {
	accept := r.Header.Get("Accept")
	if accept == "" {
		return Unconstrained(), nil
	}

	entries := parseAcceptHeader(accept)
	if len(entries) == 0 {
		return Unconstrained(), nil
	}

	// Sort by quality (descending), preserving header order for ties.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].quality > entries[j].quality
	})

	candidates := make([]MediaType, 0, len(entries))
	wildcardOnly := true
	for _, e := range entries {
		if e.mediaType != MediaTypeAll {
			wildcardOnly = false
		}
		candidates = append(candidates, e.mediaType)
	}

	if wildcardOnly {
		return Unconstrained(), nil
	}

	return Candidates(candidates...), nil
}

// acceptEntry is a parsed Accept header entry.
type acceptEntry struct {
	mediaType MediaType
	quality   float64
}

// parseAcceptHeader parses an Accept header into media types with
// quality values.
// Example: "application/json, application/xml;q=0.9, */*;q=0.8"
func parseAcceptHeader(header string) []acceptEntry {
	parts := strings.Split(header, ",")
	result := make([]acceptEntry, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		entry := acceptEntry{quality: 1.0}

		segments := strings.Split(part, ";")
		mt, err := ParseMediaType(strings.TrimSpace(segments[0]))
		if err != nil {
			continue
		}
		entry.mediaType = mt

		for _, segment := range segments[1:] {
			segment = strings.TrimSpace(segment)
			if strings.HasPrefix(segment, "q=") {
				if q, err := strconv.ParseFloat(strings.TrimPrefix(segment, "q="), 64); err == nil {
					entry.quality = q
				}
			}
		}

		result = append(result, entry)
	}

	return result
}
