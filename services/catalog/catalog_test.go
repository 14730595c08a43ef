package catalog

import (
	"errors"
	"testing"

	"localserve/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalogRepo struct {
	entries []models.ServiceType
	listErr error
	calls   int
}

func (f *fakeCatalogRepo) List() ([]models.ServiceType, error) {
	f.calls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.entries, nil
}

func (f *fakeCatalogRepo) Seed(entries []models.ServiceType) error { return nil }

func TestListServices_FallsThroughWithoutCache(t *testing.T) {
	repo := &fakeCatalogRepo{entries: []models.ServiceType{
		{ID: "svc-01", Name: "Cleaning"},
		{ID: "svc-02", Name: "Plumbing"},
	}}
	svc := &DefaultCatalogService{Repo: repo}

	services, err := svc.ListServices()
	require.NoError(t, err)
	assert.Len(t, services, 2)
	assert.Equal(t, 1, repo.calls)
}

func TestListServices_RepoFailureSurfaces(t *testing.T) {
	repo := &fakeCatalogRepo{listErr: errors.New("no reachable servers")}
	svc := &DefaultCatalogService{Repo: repo}

	_, err := svc.ListServices()
	assert.Error(t, err)
}

func TestDefaultEntries_SortedByName(t *testing.T) {
	entries := DefaultEntries()
	require.NotEmpty(t, entries)
	for i := 1; i < len(entries); i++ {
		assert.LessOrEqual(t, entries[i-1].Name, entries[i].Name)
	}
}
