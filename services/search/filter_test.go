package search

import (
	"testing"

	"localserve/models"

	"github.com/stretchr/testify/assert"
)

func directory() []models.ProviderView {
	return []models.ProviderView{
		{ProviderID: "p1", FullName: "Ada Jones", Bio: "Experienced plumber", ServiceNames: []string{"General Services"}},
		{ProviderID: "p2", FullName: "Bo Chen", Bio: "Gardens and lawns", ServiceNames: []string{"General Services"}},
		{ProviderID: "p3", FullName: "Cam Diaz", Bio: "Painting specialist", ServiceNames: []string{"General Services"}},
	}
}

func providerIDs(views []models.ProviderView) []string {
	ids := make([]string, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.ProviderID)
	}
	return ids
}

func TestFilter_EmptyTermReturnsAll(t *testing.T) {
	all := directory()
	assert.Len(t, Filter(all, ""), 3)
	assert.Len(t, Filter(all, "   "), 3)
	assert.Len(t, Filter(all, "\t\n"), 3)
}

func TestFilter_MatchesBioNotJustName(t *testing.T) {
	got := Filter(directory(), "plumber")
	assert.Equal(t, []string{"p1"}, providerIDs(got))
}

func TestFilter_CaseInsensitive(t *testing.T) {
	assert.Equal(t, []string{"p2"}, providerIDs(Filter(directory(), "BO CHEN")))
	assert.Equal(t, []string{"p3"}, providerIDs(Filter(directory(), "PAINTING")))
}

func TestFilter_MatchesServiceNames(t *testing.T) {
	got := Filter(directory(), "general")
	assert.Len(t, got, 3)
}

func TestFilter_NoMatch(t *testing.T) {
	assert.Empty(t, Filter(directory(), "roofing"))
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	all := directory()
	Filter(all, "plumber")
	assert.Len(t, all, 3)
}
