package search

import (
	"fmt"

	providerRepo "localserve/database/repository/provider"
	"localserve/models"
)

// SearchService exposes the provider directory with its local filter.
type SearchService interface {
	// ListProviders returns available providers matching the search term.
	ListProviders(term string) ([]models.ProviderView, error)
}

// DefaultSearchService is the production implementation of SearchService.
type DefaultSearchService struct {
	Repo providerRepo.ProviderRepository
}

// ListProviders fetches all available providers joined with owner names,
// maps them to directory entries, and applies the term filter in memory.
func (s *DefaultSearchService) ListProviders(term string) ([]models.ProviderView, error) {
	joined, err := s.Repo.ListAvailable()
	if err != nil {
		return nil, fmt.Errorf("failed to load providers: %w", err)
	}

	views := make([]models.ProviderView, 0, len(joined))
	for _, jp := range joined {
		views = append(views, models.NewProviderView(jp))
	}
	return Filter(views, term), nil
}
