package provider

import (
	"fmt"
	"time"

	"localserve/models"
	"localserve/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AcceptRequest claims a pending request for the caller's profile. Two
// writes, in order: insert the assignment, then move the request to
// assigned. If the insert fails the operation aborts and the status write
// never runs. If the status write fails the assignment stands and the
// request stays visibly pending; the failure is logged but not surfaced,
// matching the workflow this service replaces (see DESIGN.md).
func (s *DefaultProviderService) AcceptRequest(userID, requestID string) error {
	profile, err := s.GetProfile(userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrNoProfile
	}

	assignment := &models.Assignment{
		ID:         uuid.New().String(),
		RequestID:  requestID,
		ProviderID: profile.ID,
		AssignedAt: time.Now(),
		Status:     models.AssignmentAssigned,
	}
	if err := s.Assignments.Create(assignment); err != nil {
		return fmt.Errorf("failed to accept request: %w", err)
	}

	if err := s.Requests.UpdateStatus(requestID, models.StatusPending, models.StatusAssigned); err != nil {
		utils.GetLogger().Error("AcceptRequest: status update failed after assignment insert",
			zap.String("requestId", requestID),
			zap.String("providerId", profile.ID),
			zap.Error(err))
	}
	return nil
}
