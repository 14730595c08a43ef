package user

import (
	"errors"
	"testing"

	"localserve/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	byEmail map[string]*models.UserProfile
	getErr  error
	created []*models.UserProfile
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*models.UserProfile)}
}

func (f *fakeUserRepo) GetByID(id string) (*models.UserProfile, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.UserProfile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) Create(user *models.UserProfile) error {
	f.byEmail[user.Email] = user
	f.created = append(f.created, user)
	return nil
}

func (f *fakeUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.UserProfile, error) {
	return f.GetByID(id)
}

func (f *fakeUserRepo) SetTokenHash(id string, tokenHash string) error { return nil }

func TestRegister_RequiresAllFields(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	cases := []RegistrationRequest{
		{FullName: "", Email: "a@b.c", Password: "secret", Role: models.RoleCustomer},
		{FullName: "Ada", Email: "", Password: "secret", Role: models.RoleCustomer},
		{FullName: "Ada", Email: "a@b.c", Password: "", Role: models.RoleCustomer},
		{FullName: "   ", Email: "a@b.c", Password: "secret", Role: models.RoleCustomer},
	}
	for _, req := range cases {
		_, err := svc.Register(req)
		assert.Error(t, err)
	}
}

func TestRegister_RejectsUnknownRole(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	_, err := svc.Register(RegistrationRequest{
		FullName: "Ada Jones", Email: "ada@example.com", Password: "secret", Role: models.Role("admin"),
	})
	assert.Error(t, err)
}

func TestRegister_RejectsDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	repo.byEmail["ada@example.com"] = &models.UserProfile{ID: "u1", Email: "ada@example.com"}
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.Register(RegistrationRequest{
		FullName: "Ada Jones", Email: "Ada@Example.com", Password: "secret", Role: models.RoleCustomer,
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.Empty(t, repo.created)
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	_, err := svc.Authenticate("nobody@example.com", "secret")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email or password")
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	repo := newFakeUserRepo()
	repo.byEmail["ada@example.com"] = &models.UserProfile{
		ID: "u1", Email: "ada@example.com", PasswordHash: string(hash),
	}
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.Authenticate("ada@example.com", "wrong")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email or password")
}
