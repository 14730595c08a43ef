package search

import (
	"strings"

	"localserve/models"
)

// Filter narrows a provider list by a case-insensitive substring match
// against name, bio, or any associated service name. An empty or
// whitespace-only term returns the list unchanged.
func Filter(providers []models.ProviderView, term string) []models.ProviderView {
	term = strings.TrimSpace(strings.ToLower(term))
	if term == "" {
		return providers
	}

	filtered := make([]models.ProviderView, 0, len(providers))
	for _, p := range providers {
		if matches(p, term) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func matches(p models.ProviderView, term string) bool {
	if strings.Contains(strings.ToLower(p.FullName), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Bio), term) {
		return true
	}
	for _, name := range p.ServiceNames {
		if strings.Contains(strings.ToLower(name), term) {
			return true
		}
	}
	return false
}
