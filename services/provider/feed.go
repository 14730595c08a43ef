package provider

import (
	"localserve/models"
	"localserve/utils"

	"go.uber.org/zap"
)

// LoadDashboard resolves, in order: the caller's profile, the open request
// feed, and (only when a profile exists) the caller's assignments. Feed and
// assignment read failures are logged and degrade to empty lists; only a
// failed profile read is an error, since first-run setup must never be shown
// because of one.
func (s *DefaultProviderService) LoadDashboard(userID string) (*Dashboard, error) {
	profile, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	dash := &Dashboard{
		Profile:           profile,
		NeedsSetup:        profile == nil,
		AvailableRequests: []models.RequestView{},
		Assignments:       []models.AssignmentView{},
	}

	pending, err := s.Requests.ListPending()
	if err != nil {
		utils.GetLogger().Error("LoadDashboard: failed to load available requests", zap.Error(err))
	} else {
		for _, jr := range pending {
			dash.AvailableRequests = append(dash.AvailableRequests, models.NewRequestView(jr, true))
		}
	}

	if profile != nil {
		assignments, err := s.Assignments.ListByProvider(profile.ID)
		if err != nil {
			utils.GetLogger().Error("LoadDashboard: failed to load assignments",
				zap.String("providerId", profile.ID), zap.Error(err))
		} else {
			for _, ja := range assignments {
				dash.Assignments = append(dash.Assignments, models.NewAssignmentView(ja))
			}
		}
	}

	return dash, nil
}
