package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tgo/atrium/apiserver/internal/apperr"
	"github.com/tgo/atrium/apiserver/internal/model"
	"github.com/tgo/atrium/apiserver/internal/pkg/ident"
)

type stubAdminUserRepo struct {
	byID map[string]*model.AdminUser
}

func newStubAdminUserRepo(users ...*model.AdminUser) *stubAdminUserRepo {
	r := &stubAdminUserRepo{byID: make(map[string]*model.AdminUser)}
	for _, user := range users {
		if user.ID == "" {
			user.ID = ident.New()
		}
		r.byID[user.ID] = user
	}
	return r
}

func (r *stubAdminUserRepo) Create(_ context.Context, user *model.AdminUser) error {
	if user.ID == "" {
		user.ID = ident.New()
	}
	r.byID[user.ID] = user
	return nil
}

func (r *stubAdminUserRepo) Save(_ context.Context, user *model.AdminUser) error {
	r.byID[user.ID] = user
	return nil
}

func (r *stubAdminUserRepo) Delete(_ context.Context, user *model.AdminUser) error {
	delete(r.byID, user.ID)
	return nil
}

func (r *stubAdminUserRepo) FindByIdent(_ context.Context, raw string) (*model.AdminUser, error) {
	id, err := ident.Normalize(raw)
	if err != nil {
		return nil, apperr.ErrNotFound
	}
	if user, ok := r.byID[id]; ok {
		return user, nil
	}
	return nil, apperr.ErrNotFound
}

func (r *stubAdminUserRepo) FindByEmail(_ context.Context, email string) (*model.AdminUser, error) {
	for _, user := range r.byID {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (r *stubAdminUserRepo) FindByUsername(_ context.Context, username string) (*model.AdminUser, error) {
	for _, user := range r.byID {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (r *stubAdminUserRepo) List(_ context.Context) ([]model.AdminUser, error) {
	out := make([]model.AdminUser, 0, len(r.byID))
	for _, user := range r.byID {
		out = append(out, *user)
	}
	return out, nil
}

func newTestAdminUserService(repo AdminUserRepo) *AdminUserService {
	resolver := NewResolver(stubCatalog{}, discardLogger())
	return NewAdminUserService(repo, resolver, discardLogger())
}

func TestAdminUserCreateHashesPassword(t *testing.T) {
	repo := newStubAdminUserRepo()
	svc := newTestAdminUserService(repo)

	resp, err := svc.Create(context.Background(), &AdminUserCreate{
		Email:    "new@example.com",
		Username: "newuser",
		FullName: "New User",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.True(t, resp.IsActive)

	stored, err := repo.FindByEmail(context.Background(), "new@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret-password", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret-password")))
}

func TestAdminUserCreateRejectsDuplicateEmail(t *testing.T) {
	repo := newStubAdminUserRepo(&model.AdminUser{Email: "taken@example.com", Username: "taken"})
	svc := newTestAdminUserService(repo)

	_, err := svc.Create(context.Background(), &AdminUserCreate{
		Email:    "taken@example.com",
		Username: "other",
		FullName: "Other",
		Password: "secret-password",
	})
	assert.ErrorIs(t, err, apperr.ErrDuplicateIdentity)
}

func TestAdminUserCreateRejectsDuplicateUsername(t *testing.T) {
	repo := newStubAdminUserRepo(&model.AdminUser{Email: "taken@example.com", Username: "taken"})
	svc := newTestAdminUserService(repo)

	_, err := svc.Create(context.Background(), &AdminUserCreate{
		Email:    "other@example.com",
		Username: "taken",
		FullName: "Other",
		Password: "secret-password",
	})
	assert.ErrorIs(t, err, apperr.ErrDuplicateIdentity)
}

func TestAdminUserUpdateMergesOnlyProvidedFields(t *testing.T) {
	user := &model.AdminUser{
		Email:    "user@example.com",
		Username: "user",
		FullName: "Original Name",
		Password: "digest",
		IsActive: true,
	}
	repo := newStubAdminUserRepo(user)
	svc := newTestAdminUserService(repo)

	newName := "Updated Name"
	resp, err := svc.Update(context.Background(), user.ID, &AdminUserUpdate{FullName: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Updated Name", resp.FullName)
	assert.Equal(t, "user@example.com", resp.Email)
	assert.Equal(t, "user", resp.Username)
	assert.Equal(t, "digest", user.Password)
}

func TestAdminUserGetNotFound(t *testing.T) {
	svc := newTestAdminUserService(newStubAdminUserRepo())
	_, err := svc.Get(context.Background(), "550e8400e29b41d4a716446655440000")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestAdminUserSetActive(t *testing.T) {
	user := &model.AdminUser{Email: "user@example.com", Username: "user", IsActive: true}
	repo := newStubAdminUserRepo(user)
	svc := newTestAdminUserService(repo)

	resp, err := svc.SetActive(context.Background(), user.ID, false)
	require.NoError(t, err)
	assert.False(t, resp.IsActive)

	resp, err = svc.SetActive(context.Background(), user.ID, true)
	require.NoError(t, err)
	assert.True(t, resp.IsActive)
}

func TestAdminUserResponseProjectsCanonicalIDs(t *testing.T) {
	user := &model.AdminUser{
		Email:       "user@example.com",
		Username:    "user",
		IsActive:    true,
		RoleIDs:     model.StringList{"550e8400e29b41d4a716446655440000"},
		Permissions: model.StringList{"650e8400e29b41d4a716446655440000"},
	}
	repo := newStubAdminUserRepo(user)
	svc := newTestAdminUserService(repo)

	resp, err := svc.Get(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, ident.Canonical(user.ID), resp.ID)
	assert.Equal(t, []string{"550e8400-e29b-41d4-a716-446655440000"}, resp.RoleIDs)
	assert.Equal(t, []string{"650e8400-e29b-41d4-a716-446655440000"}, resp.Permissions)
}
