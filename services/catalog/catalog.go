package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	catalogRepo "localserve/database/repository/catalog"
	"localserve/models"
	"localserve/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CatalogService exposes the service catalog that populates the request
// creation selector.
type CatalogService interface {
	ListServices() ([]models.ServiceType, error)
}

// DefaultCatalogService reads through a Redis cache in front of the catalog
// collection. The catalog is reference data and changes rarely.
type DefaultCatalogService struct {
	Repo  catalogRepo.CatalogRepository
	Cache *redis.Client
}

// ListServices returns all catalog entries ordered by name. Cache failures
// are logged and fall through to the repository.
func (s *DefaultCatalogService) ListServices() ([]models.ServiceType, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, utils.CatalogCacheKey).Result()
		if err == nil {
			var services []models.ServiceType
			if err := json.Unmarshal([]byte(cached), &services); err == nil {
				return services, nil
			}
			utils.GetLogger().Warn("ListServices: failed to decode cached catalog", zap.Error(err))
		} else if err != redis.Nil {
			utils.GetLogger().Warn("ListServices: catalog cache read failed", zap.Error(err))
		}
	}

	services, err := s.Repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load service catalog: %w", err)
	}

	if s.Cache != nil {
		if payload, err := json.Marshal(services); err == nil {
			if err := s.Cache.Set(ctx, utils.CatalogCacheKey, payload, utils.CatalogCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("ListServices: catalog cache write failed", zap.Error(err))
			}
		}
	}
	return services, nil
}

// DefaultEntries is the seed catalog used when the collection is empty.
func DefaultEntries() []models.ServiceType {
	names := []struct{ name, desc string }{
		{"Cleaning", "Home and office cleaning"},
		{"Electrical", "Wiring, fixtures, and repairs"},
		{"Gardening", "Lawn and garden maintenance"},
		{"Moving", "Packing and relocation help"},
		{"Painting", "Interior and exterior painting"},
		{"Plumbing", "Pipes, taps, and drainage"},
	}
	entries := make([]models.ServiceType, 0, len(names))
	for i, n := range names {
		entries = append(entries, models.ServiceType{
			ID:          fmt.Sprintf("svc-%02d", i+1),
			Name:        n.name,
			Description: n.desc,
		})
	}
	return entries
}
