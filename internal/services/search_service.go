package services

import (
	"context"
	"fmt"

	"travelplanner/internal/catalog"
	"travelplanner/internal/domain"
	"travelplanner/internal/utils"
)

type SearchQuery struct {
	Q       string `form:"q"`
	Country string `form:"country"`
}

type SearchResult struct {
	Results []catalog.Entry `json:"results"`
	Total   int             `json:"total"`
}

// SearchService runs the mock destination search over a static catalogue.
type SearchService struct {
	Catalog   *catalog.Catalog
	RequestID string
}

func (s SearchService) Search(_ context.Context, q SearchQuery) (SearchResult, error) {
	if q.Q == "" {
		return SearchResult{}, domain.ValidationError{Field: "q", Msg: "field required"}
	}
	if s.Catalog == nil {
		return SearchResult{}, domain.Internal("search destinations failed", fmt.Errorf("catalog not loaded"))
	}
	results := s.Catalog.Search(q.Q, q.Country)
	utils.LogEvent(s.RequestID, destinationModule, "search", fmt.Sprintf("q=%q hits=%d", q.Q, len(results)))
	return SearchResult{Results: results, Total: len(results)}, nil
}
