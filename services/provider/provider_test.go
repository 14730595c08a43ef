package provider

import (
	"errors"
	"testing"
	"time"

	providerRepo "localserve/database/repository/provider"
	"localserve/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProviderRepo struct {
	byUser  map[string]*models.ProviderProfile
	getErr  error
	created []*models.ProviderProfile
}

func newFakeProviderRepo() *fakeProviderRepo {
	return &fakeProviderRepo{byUser: make(map[string]*models.ProviderProfile)}
}

func (f *fakeProviderRepo) GetByID(id string) (*models.ProviderProfile, error) {
	for _, p := range f.byUser {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, providerRepo.ErrNotFound
}

func (f *fakeProviderRepo) GetByUserID(userID string) (*models.ProviderProfile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	p, ok := f.byUser[userID]
	if !ok {
		return nil, providerRepo.ErrNotFound
	}
	return p, nil
}

func (f *fakeProviderRepo) Create(profile *models.ProviderProfile) error {
	f.byUser[profile.UserID] = profile
	f.created = append(f.created, profile)
	return nil
}

func (f *fakeProviderRepo) UpdateFields(id string, upd models.ProviderProfileUpdate) (*models.ProviderProfile, error) {
	for _, p := range f.byUser {
		if p.ID != id {
			continue
		}
		if upd.HourlyRate != nil {
			p.HourlyRate = *upd.HourlyRate
		}
		if upd.Bio != nil {
			p.Bio = *upd.Bio
		}
		if upd.Available != nil {
			p.Available = *upd.Available
		}
		return p, nil
	}
	return nil, providerRepo.ErrNotFound
}

func (f *fakeProviderRepo) ListAvailable() ([]models.JoinedProvider, error) {
	return nil, nil
}

type fakeRequestRepo struct {
	requests map[string]*models.ServiceRequest
	listErr  error
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]*models.ServiceRequest)}
}

func (f *fakeRequestRepo) Create(req *models.ServiceRequest) error {
	f.requests[req.ID] = req
	return nil
}

func (f *fakeRequestRepo) GetByID(id string) (*models.ServiceRequest, error) {
	r, ok := f.requests[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return r, nil
}

func (f *fakeRequestRepo) ListByCustomer(customerID string) ([]models.JoinedRequest, error) {
	return nil, nil
}

func (f *fakeRequestRepo) ListPending() ([]models.JoinedRequest, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var joined []models.JoinedRequest
	for _, r := range f.requests {
		if r.Status == models.StatusPending {
			joined = append(joined, models.JoinedRequest{ServiceRequest: *r})
		}
	}
	return joined, nil
}

func (f *fakeRequestRepo) UpdateStatus(id string, from, to models.RequestStatus) error {
	r, ok := f.requests[id]
	if !ok || r.Status != from {
		return errors.New("request not matched")
	}
	r.Status = to
	return nil
}

type fakeAssignmentRepo struct {
	assignments []*models.Assignment
	requests    *fakeRequestRepo
	createErr   error
}

func (f *fakeAssignmentRepo) Create(a *models.Assignment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.assignments = append(f.assignments, a)
	return nil
}

func (f *fakeAssignmentRepo) ListByProvider(providerID string) ([]models.JoinedAssignment, error) {
	var joined []models.JoinedAssignment
	for _, a := range f.assignments {
		if a.ProviderID != providerID {
			continue
		}
		ja := models.JoinedAssignment{Assignment: *a}
		if f.requests != nil {
			if r, ok := f.requests.requests[a.RequestID]; ok {
				ja.Request = &models.JoinedRequest{ServiceRequest: *r}
			}
		}
		joined = append(joined, ja)
	}
	return joined, nil
}

func newService() (*DefaultProviderService, *fakeProviderRepo, *fakeRequestRepo, *fakeAssignmentRepo) {
	provs := newFakeProviderRepo()
	reqs := newFakeRequestRepo()
	asgs := &fakeAssignmentRepo{requests: reqs}
	svc := &DefaultProviderService{Repo: provs, Requests: reqs, Assignments: asgs}
	return svc, provs, reqs, asgs
}

func TestGetProfile_NoRowsIsNotAnError(t *testing.T) {
	svc, _, _, _ := newService()

	profile, err := svc.GetProfile("u1")
	assert.NoError(t, err)
	assert.Nil(t, profile)
}

func TestGetProfile_ReadFailureIsAnError(t *testing.T) {
	svc, provs, _, _ := newService()
	provs.getErr = errors.New("connection reset")

	_, err := svc.GetProfile("u1")
	assert.Error(t, err)
}

func TestCreateProfile_DefaultsAvailable(t *testing.T) {
	svc, provs, _, _ := newService()

	profile, err := svc.CreateProfile("u1", 45, "  seasoned electrician  ")
	require.NoError(t, err)
	require.Len(t, provs.created, 1)

	assert.True(t, profile.Available)
	assert.Equal(t, 45.0, profile.HourlyRate)
	assert.Equal(t, "seasoned electrician", profile.Bio)
	assert.Equal(t, "u1", profile.UserID)
}

func TestUpdateProfile_NoProfileIsNoOp(t *testing.T) {
	svc, provs, _, _ := newService()

	rate := 60.0
	_, err := svc.UpdateProfile("u1", models.ProviderProfileUpdate{HourlyRate: &rate})
	assert.ErrorIs(t, err, ErrNoProfile)
	assert.Empty(t, provs.created)
}

func TestUpdateProfile_TrimsBioAndReturnsStoredRow(t *testing.T) {
	svc, _, _, _ := newService()
	_, err := svc.CreateProfile("u1", 45, "old bio")
	require.NoError(t, err)

	bio := "  new bio  "
	available := false
	updated, err := svc.UpdateProfile("u1", models.ProviderProfileUpdate{Bio: &bio, Available: &available})
	require.NoError(t, err)

	assert.Equal(t, "new bio", updated.Bio)
	assert.False(t, updated.Available)
	assert.Equal(t, 45.0, updated.HourlyRate)
}

func TestAcceptRequest_NoProfileIsNoOp(t *testing.T) {
	svc, _, reqs, asgs := newService()
	reqs.Create(&models.ServiceRequest{ID: "r1", Status: models.StatusPending})

	err := svc.AcceptRequest("u1", "r1")
	assert.ErrorIs(t, err, ErrNoProfile)
	assert.Empty(t, asgs.assignments, "no assignment may be written")
	assert.Equal(t, models.StatusPending, reqs.requests["r1"].Status)
}

func TestAcceptRequest_InsertThenStatusUpdate(t *testing.T) {
	svc, _, reqs, asgs := newService()
	profile, err := svc.CreateProfile("p-user", 45, "bio")
	require.NoError(t, err)
	reqs.Create(&models.ServiceRequest{ID: "r1", Status: models.StatusPending})

	err = svc.AcceptRequest("p-user", "r1")
	require.NoError(t, err)

	require.Len(t, asgs.assignments, 1)
	a := asgs.assignments[0]
	assert.Equal(t, "r1", a.RequestID)
	assert.Equal(t, profile.ID, a.ProviderID)
	assert.Equal(t, models.AssignmentAssigned, a.Status)
	assert.WithinDuration(t, time.Now(), a.AssignedAt, 5*time.Second)
	assert.Equal(t, models.StatusAssigned, reqs.requests["r1"].Status)
}

func TestAcceptRequest_InsertFailureAbortsStatusUpdate(t *testing.T) {
	svc, _, reqs, asgs := newService()
	_, err := svc.CreateProfile("p-user", 45, "bio")
	require.NoError(t, err)
	reqs.Create(&models.ServiceRequest{ID: "r1", Status: models.StatusPending})
	asgs.createErr = errors.New("insert rejected")

	err = svc.AcceptRequest("p-user", "r1")
	require.Error(t, err)
	assert.Equal(t, models.StatusPending, reqs.requests["r1"].Status, "status write must not run")
}

func TestAcceptRequest_StatusUpdateFailureIsSwallowed(t *testing.T) {
	svc, _, reqs, asgs := newService()
	_, err := svc.CreateProfile("p-user", 45, "bio")
	require.NoError(t, err)
	// The request is already assigned, so the pending->assigned write will
	// not match. The accept still reports success with the assignment kept.
	reqs.Create(&models.ServiceRequest{ID: "r1", Status: models.StatusAssigned})

	err = svc.AcceptRequest("p-user", "r1")
	assert.NoError(t, err)
	assert.Len(t, asgs.assignments, 1)
}

func TestLoadDashboard_NeedsSetupOnlyWhenNoRows(t *testing.T) {
	svc, provs, _, _ := newService()

	dash, err := svc.LoadDashboard("u1")
	require.NoError(t, err)
	assert.True(t, dash.NeedsSetup)
	assert.Nil(t, dash.Profile)

	// A real read failure must not look like first-run setup.
	provs.getErr = errors.New("timeout")
	_, err = svc.LoadDashboard("u1")
	assert.Error(t, err)
}

func TestLoadDashboard_FeedFailureDegradesToEmpty(t *testing.T) {
	svc, _, reqs, _ := newService()
	_, err := svc.CreateProfile("p-user", 45, "bio")
	require.NoError(t, err)
	reqs.listErr = errors.New("aggregation failed")

	dash, err := svc.LoadDashboard("p-user")
	require.NoError(t, err)
	assert.Empty(t, dash.AvailableRequests)
}

func TestLoadDashboard_AssignmentsSkippedWithoutProfile(t *testing.T) {
	svc, _, reqs, asgs := newService()
	reqs.Create(&models.ServiceRequest{ID: "r1", Status: models.StatusPending})
	asgs.assignments = append(asgs.assignments, &models.Assignment{ID: "a1", ProviderID: "ghost"})

	dash, err := svc.LoadDashboard("u1")
	require.NoError(t, err)
	assert.True(t, dash.NeedsSetup)
	assert.Len(t, dash.AvailableRequests, 1)
	assert.Empty(t, dash.Assignments)
}

func TestAcceptThenReload_MovesRequestBetweenLists(t *testing.T) {
	svc, _, reqs, _ := newService()
	_, err := svc.CreateProfile("p-user", 45, "bio")
	require.NoError(t, err)
	reqs.Create(&models.ServiceRequest{ID: "R1", Status: models.StatusPending, Details: "mow lawn"})

	dash, err := svc.LoadDashboard("p-user")
	require.NoError(t, err)
	require.Len(t, dash.AvailableRequests, 1)
	assert.Empty(t, dash.Assignments)

	require.NoError(t, svc.AcceptRequest("p-user", "R1"))

	dash, err = svc.LoadDashboard("p-user")
	require.NoError(t, err)
	assert.Empty(t, dash.AvailableRequests, "accepted request leaves the open feed")
	require.Len(t, dash.Assignments, 1)
	assert.Equal(t, "R1", dash.Assignments[0].Request.RequestID)
	assert.Equal(t, models.AssignmentAssigned, dash.Assignments[0].Status)
}
