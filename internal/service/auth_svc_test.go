package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgo/atrium/apiserver/internal/apperr"
	"github.com/tgo/atrium/apiserver/internal/model"
	"github.com/tgo/atrium/apiserver/internal/pkg/ident"
	"github.com/tgo/atrium/apiserver/internal/pkg/jwt"
)

type stubDirectory struct {
	principals map[string]model.Principal
	updated    map[string]string
}

func newStubDirectory(principals ...model.Principal) *stubDirectory {
	d := &stubDirectory{principals: make(map[string]model.Principal), updated: make(map[string]string)}
	for _, p := range principals {
		d.principals[p.PrincipalEmail()] = p
	}
	return d
}

func (d *stubDirectory) FindPrincipalByEmail(_ context.Context, email string) (model.Principal, error) {
	if p, ok := d.principals[email]; ok {
		return p, nil
	}
	return nil, apperr.ErrNotFound
}

func (d *stubDirectory) UpdatePassword(_ context.Context, principal model.Principal, digest string) error {
	d.updated[principal.PrincipalEmail()] = digest
	return nil
}

func testAdmin(t *testing.T, email, password string, active bool) *model.AdminUser {
	t.Helper()
	digest, err := HashPassword(password)
	require.NoError(t, err)
	return &model.AdminUser{
		BaseModel: model.BaseModel{ID: ident.New()},
		Email:     email,
		Username:  "admin",
		FullName:  "Admin User",
		Password:  digest,
		IsActive:  active,
	}
}

func newTestAuthService(dir Directory) *AuthService {
	catalog := stubCatalog{}
	resolver := NewResolver(catalog, discardLogger())
	tokens := jwt.NewManager("test-secret", 60)
	return NewAuthService(dir, resolver, tokens, discardLogger())
}

func TestLoginSuccess(t *testing.T) {
	admin := testAdmin(t, "admin@example.com", "admin123", true)
	svc := newTestAuthService(newStubDirectory(admin))

	resp, err := svc.Login(context.Background(), &LoginRequest{Email: "admin@example.com", Password: "admin123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "admin@example.com", resp.Email)
	assert.Equal(t, ident.Canonical(admin.ID), resp.UserID)
	assert.Equal(t, model.KindAdmin, resp.UserType)
}

func TestLoginFailureIsUniform(t *testing.T) {
	active := testAdmin(t, "active@example.com", "correct-pw", true)
	inactive := testAdmin(t, "inactive@example.com", "correct-pw", false)
	svc := newTestAuthService(newStubDirectory(active, inactive))

	cases := []struct {
		name string
		req  LoginRequest
	}{
		{"unknown email", LoginRequest{Email: "nobody@example.com", Password: "whatever"}},
		{"wrong password", LoginRequest{Email: "active@example.com", Password: "wrong"}},
		{"inactive account", LoginRequest{Email: "inactive@example.com", Password: "correct-pw"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), &tc.req)
			assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
		})
	}
}

func TestAuthenticateRoundTrip(t *testing.T) {
	admin := testAdmin(t, "admin@example.com", "admin123", true)
	svc := newTestAuthService(newStubDirectory(admin))

	resp, err := svc.Login(context.Background(), &LoginRequest{Email: "admin@example.com", Password: "admin123"})
	require.NoError(t, err)

	principal, err := svc.Authenticate(context.Background(), resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, admin.Email, principal.PrincipalEmail())
}

func TestAuthenticateRejectsGarbageToken(t *testing.T) {
	svc := newTestAuthService(newStubDirectory())
	_, err := svc.Authenticate(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestAuthenticateRejectsDeactivatedPrincipal(t *testing.T) {
	admin := testAdmin(t, "admin@example.com", "admin123", true)
	svc := newTestAuthService(newStubDirectory(admin))

	resp, err := svc.Login(context.Background(), &LoginRequest{Email: "admin@example.com", Password: "admin123"})
	require.NoError(t, err)

	// Deactivation between requests invalidates the still-unexpired token.
	admin.IsActive = false
	_, err = svc.Authenticate(context.Background(), resp.AccessToken)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestAuthenticateRejectsDeletedPrincipal(t *testing.T) {
	admin := testAdmin(t, "admin@example.com", "admin123", true)
	dir := newStubDirectory(admin)
	svc := newTestAuthService(dir)

	resp, err := svc.Login(context.Background(), &LoginRequest{Email: "admin@example.com", Password: "admin123"})
	require.NoError(t, err)

	delete(dir.principals, admin.Email)
	_, err = svc.Authenticate(context.Background(), resp.AccessToken)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestChangePassword(t *testing.T) {
	admin := testAdmin(t, "admin@example.com", "old-password", true)
	dir := newStubDirectory(admin)
	svc := newTestAuthService(dir)

	err := svc.ChangePassword(context.Background(), admin, "wrong", "new-password")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
	assert.Empty(t, dir.updated)

	err = svc.ChangePassword(context.Background(), admin, "old-password", "new-password")
	require.NoError(t, err)
	assert.NotEmpty(t, dir.updated[admin.Email])
	assert.NotEqual(t, admin.Password, dir.updated[admin.Email])
}

func TestRefreshIssuesNewToken(t *testing.T) {
	admin := testAdmin(t, "admin@example.com", "admin123", true)
	svc := newTestAuthService(newStubDirectory(admin))

	resp, err := svc.Refresh(context.Background(), admin)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)

	principal, err := svc.Authenticate(context.Background(), resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, admin.Email, principal.PrincipalEmail())
}
