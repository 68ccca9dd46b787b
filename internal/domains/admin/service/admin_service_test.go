package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"portfolio-backend/internal/domains/admin/model"
	"portfolio-backend/pkg/jwt"
)

type fakeRepo struct {
	users map[string]*model.AdminUser
}

func newFakeRepo() *fakeRepo { return &fakeRepo{users: map[string]*model.AdminUser{}} }

func (r *fakeRepo) GetByEmail(_ context.Context, email string) (*model.AdminUser, error) {
	if u, ok := r.users[email]; ok {
		return u, nil
	}
	return nil, model.ErrAdminNotFound
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*model.AdminUser, error) {
	for _, u := range r.users {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, model.ErrAdminNotFound
}

func (r *fakeRepo) Upsert(_ context.Context, email, hash string, name *string) (*model.AdminUser, error) {
	u, ok := r.users[email]
	if !ok {
		u = &model.AdminUser{ID: uuid.New(), Email: email}
		r.users[email] = u
	}
	u.PasswordHash = hash
	if name != nil {
		u.Name = name
	}
	return u, nil
}

func newTestService(repo *fakeRepo) (*adminService, *jwt.Manager) {
	tokens := jwt.NewManager("secret", time.Hour)
	svc := NewService(repo, tokens).(*adminService)
	svc.cost = bcrypt.MinCost
	return svc, tokens
}

func TestEnsureAdminThenLogin(t *testing.T) {
	repo := newFakeRepo()
	svc, tokens := newTestService(repo)

	u, err := svc.EnsureAdmin(context.Background(), model.SeedRequest{Email: "admin@example.com", Password: "s3cret-pass", Name: "Admin"})
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", u.PasswordHash)

	res, err := svc.Login(context.Background(), model.LoginRequest{Email: "admin@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, u.ID, res.Admin.ID)

	claims, err := tokens.ValidateAccessToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), claims.UserID)
	assert.Equal(t, "Admin", claims.Name)

	me, err := svc.Me(context.Background(), u.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", me.Email)
}

func TestEnsureAdmin_ResetsPassword(t *testing.T) {
	repo := newFakeRepo()
	svc, _ := newTestService(repo)

	_, err := svc.EnsureAdmin(context.Background(), model.SeedRequest{Email: "admin@example.com", Password: "first-password"})
	require.NoError(t, err)
	_, err = svc.EnsureAdmin(context.Background(), model.SeedRequest{Email: "admin@example.com", Password: "second-password"})
	require.NoError(t, err)
	assert.Len(t, repo.users, 1)

	_, err = svc.Login(context.Background(), model.LoginRequest{Email: "admin@example.com", Password: "first-password"})
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	_, err = svc.Login(context.Background(), model.LoginRequest{Email: "admin@example.com", Password: "second-password"})
	assert.NoError(t, err)
}

func TestEnsureAdmin_Validation(t *testing.T) {
	svc, _ := newTestService(newFakeRepo())
	_, err := svc.EnsureAdmin(context.Background(), model.SeedRequest{Email: "bad", Password: "short"})
	assert.Error(t, err)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newTestService(newFakeRepo())
	_, err := svc.Login(context.Background(), model.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}
