package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgo/atrium/apiserver/internal/apperr"
	"github.com/tgo/atrium/apiserver/internal/model"
	"github.com/tgo/atrium/apiserver/internal/pkg/ident"
)

type stubAdminRoleRepo struct {
	byID map[string]*model.AdminRole
}

func newStubAdminRoleRepo(roles ...*model.AdminRole) *stubAdminRoleRepo {
	r := &stubAdminRoleRepo{byID: make(map[string]*model.AdminRole)}
	for _, role := range roles {
		if role.ID == "" {
			role.ID = ident.New()
		}
		r.byID[role.ID] = role
	}
	return r
}

func (r *stubAdminRoleRepo) Create(_ context.Context, role *model.AdminRole) error {
	if role.ID == "" {
		role.ID = ident.New()
	}
	r.byID[role.ID] = role
	return nil
}

func (r *stubAdminRoleRepo) Save(_ context.Context, role *model.AdminRole) error {
	r.byID[role.ID] = role
	return nil
}

func (r *stubAdminRoleRepo) Delete(_ context.Context, role *model.AdminRole) error {
	delete(r.byID, role.ID)
	return nil
}

func (r *stubAdminRoleRepo) FindByIdent(_ context.Context, raw string) (*model.AdminRole, error) {
	id, err := ident.Normalize(raw)
	if err != nil {
		return nil, apperr.ErrNotFound
	}
	if role, ok := r.byID[id]; ok {
		return role, nil
	}
	return nil, apperr.ErrNotFound
}

func (r *stubAdminRoleRepo) FindByName(_ context.Context, name string) (*model.AdminRole, error) {
	for _, role := range r.byID {
		if role.Name == name {
			return role, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (r *stubAdminRoleRepo) List(_ context.Context) ([]model.AdminRole, error) {
	out := make([]model.AdminRole, 0, len(r.byID))
	for _, role := range r.byID {
		out = append(out, *role)
	}
	return out, nil
}

func TestAdminRoleCreateRejectsDuplicateName(t *testing.T) {
	repo := newStubAdminRoleRepo(&model.AdminRole{Name: "editor", IsActive: true})
	svc := NewAdminRoleService(repo, discardLogger())

	_, err := svc.Create(context.Background(), &AdminRoleCreate{Name: "editor"})
	assert.ErrorIs(t, err, apperr.ErrDuplicateName)
}

func TestAdminRoleSystemRoleImmutable(t *testing.T) {
	system := &model.AdminRole{Name: "admin", IsSystemRole: true, IsActive: true}
	repo := newStubAdminRoleRepo(system)
	svc := NewAdminRoleService(repo, discardLogger())

	newName := "renamed"
	_, err := svc.Update(context.Background(), system.ID, &AdminRoleUpdate{Name: &newName})
	assert.ErrorIs(t, err, apperr.ErrImmutableRole)
	assert.Equal(t, "admin", system.Name)

	err = svc.Delete(context.Background(), system.ID)
	assert.ErrorIs(t, err, apperr.ErrImmutableRole)
	_, err = svc.Get(context.Background(), system.ID)
	assert.NoError(t, err)
}

func TestAdminRoleUpdateMergesOnlyProvidedFields(t *testing.T) {
	role := &model.AdminRole{Name: "editor", Description: "edits things", IsActive: true}
	repo := newStubAdminRoleRepo(role)
	svc := NewAdminRoleService(repo, discardLogger())

	inactive := false
	resp, err := svc.Update(context.Background(), role.ID, &AdminRoleUpdate{IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "editor", resp.Name)
	assert.Equal(t, "edits things", resp.Description)
	assert.False(t, resp.IsActive)
}

func TestAdminRoleUpdateRejectsTakenName(t *testing.T) {
	editor := &model.AdminRole{Name: "editor", IsActive: true}
	viewer := &model.AdminRole{Name: "viewer", IsActive: true}
	repo := newStubAdminRoleRepo(editor, viewer)
	svc := NewAdminRoleService(repo, discardLogger())

	taken := "editor"
	_, err := svc.Update(context.Background(), viewer.ID, &AdminRoleUpdate{Name: &taken})
	assert.ErrorIs(t, err, apperr.ErrDuplicateName)
}

func TestAdminRoleCreateNormalizesPermissionIDs(t *testing.T) {
	repo := newStubAdminRoleRepo()
	svc := NewAdminRoleService(repo, discardLogger())

	resp, err := svc.Create(context.Background(), &AdminRoleCreate{
		Name:        "editor",
		Permissions: []string{"550E8400-E29B-41D4-A716-446655440000"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"550e8400-e29b-41d4-a716-446655440000"}, resp.Permissions)

	stored, err := repo.FindByName(context.Background(), "editor")
	require.NoError(t, err)
	assert.Equal(t, model.StringList{"550e8400e29b41d4a716446655440000"}, stored.Permissions)
}

func TestAdminRoleCreateRejectsMalformedPermissionID(t *testing.T) {
	svc := NewAdminRoleService(newStubAdminRoleRepo(), discardLogger())

	_, err := svc.Create(context.Background(), &AdminRoleCreate{
		Name:        "editor",
		Permissions: []string{"garbage"},
	})
	assert.ErrorIs(t, err, apperr.ErrMalformedIdent)
}
