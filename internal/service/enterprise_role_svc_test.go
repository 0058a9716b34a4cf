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

type stubTenantLookup struct {
	ids map[string]bool
}

func (s stubTenantLookup) FindByID(_ context.Context, id string) (*model.EnterpriseClient, error) {
	if s.ids[id] {
		return &model.EnterpriseClient{BaseModel: model.BaseModel{ID: id}}, nil
	}
	return nil, apperr.ErrNotFound
}

type stubEnterpriseRoleRepo struct {
	byID map[string]*model.EnterpriseRole
}

func newStubEnterpriseRoleRepo(roles ...*model.EnterpriseRole) *stubEnterpriseRoleRepo {
	r := &stubEnterpriseRoleRepo{byID: make(map[string]*model.EnterpriseRole)}
	for _, role := range roles {
		if role.ID == "" {
			role.ID = ident.New()
		}
		r.byID[role.ID] = role
	}
	return r
}

func (r *stubEnterpriseRoleRepo) Create(_ context.Context, role *model.EnterpriseRole) error {
	if role.ID == "" {
		role.ID = ident.New()
	}
	r.byID[role.ID] = role
	return nil
}

func (r *stubEnterpriseRoleRepo) Save(_ context.Context, role *model.EnterpriseRole) error {
	r.byID[role.ID] = role
	return nil
}

func (r *stubEnterpriseRoleRepo) Delete(_ context.Context, role *model.EnterpriseRole) error {
	delete(r.byID, role.ID)
	return nil
}

func (r *stubEnterpriseRoleRepo) FindByIdent(_ context.Context, raw string) (*model.EnterpriseRole, error) {
	id, err := ident.Normalize(raw)
	if err != nil {
		return nil, apperr.ErrNotFound
	}
	if role, ok := r.byID[id]; ok {
		return role, nil
	}
	return nil, apperr.ErrNotFound
}

func (r *stubEnterpriseRoleRepo) FindByName(_ context.Context, name, tenantID string) (*model.EnterpriseRole, error) {
	for _, role := range r.byID {
		if role.Name == name && role.EnterpriseClientID == tenantID {
			return role, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (r *stubEnterpriseRoleRepo) List(_ context.Context) ([]model.EnterpriseRole, error) {
	out := make([]model.EnterpriseRole, 0, len(r.byID))
	for _, role := range r.byID {
		out = append(out, *role)
	}
	return out, nil
}

func (r *stubEnterpriseRoleRepo) ListByTenant(_ context.Context, tenantID string) ([]model.EnterpriseRole, error) {
	var out []model.EnterpriseRole
	for _, role := range r.byID {
		if role.EnterpriseClientID == tenantID {
			out = append(out, *role)
		}
	}
	return out, nil
}

func TestEnterpriseRoleCreateRequiresExistingTenant(t *testing.T) {
	tenants := stubTenantLookup{ids: map[string]bool{tenantOne: true}}
	svc := NewEnterpriseRoleService(newStubEnterpriseRoleRepo(), tenants, discardLogger())

	_, err := svc.Create(context.Background(), &EnterpriseRoleCreate{
		Name:               "support",
		EnterpriseClientID: ident.New(),
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	resp, err := svc.Create(context.Background(), &EnterpriseRoleCreate{
		Name:               "support",
		EnterpriseClientID: tenantOne,
	})
	require.NoError(t, err)
	assert.True(t, resp.IsActive)
	assert.Equal(t, ident.Canonical(tenantOne), resp.EnterpriseClientID)
}

func TestEnterpriseRoleNameUniquePerTenant(t *testing.T) {
	otherTenant := ident.New()
	tenants := stubTenantLookup{ids: map[string]bool{tenantOne: true, otherTenant: true}}
	repo := newStubEnterpriseRoleRepo(&model.EnterpriseRole{Name: "support", EnterpriseClientID: tenantOne, IsActive: true})
	svc := NewEnterpriseRoleService(repo, tenants, discardLogger())

	_, err := svc.Create(context.Background(), &EnterpriseRoleCreate{
		Name:               "support",
		EnterpriseClientID: tenantOne,
	})
	assert.ErrorIs(t, err, apperr.ErrDuplicateName)

	// Same name under a different tenant is fine.
	_, err = svc.Create(context.Background(), &EnterpriseRoleCreate{
		Name:               "support",
		EnterpriseClientID: otherTenant,
	})
	assert.NoError(t, err)
}

func TestEnterpriseRoleListScopedByTenant(t *testing.T) {
	otherTenant := ident.New()
	tenants := stubTenantLookup{ids: map[string]bool{tenantOne: true, otherTenant: true}}
	repo := newStubEnterpriseRoleRepo(
		&model.EnterpriseRole{Name: "support", EnterpriseClientID: tenantOne, IsActive: true},
		&model.EnterpriseRole{Name: "sales", EnterpriseClientID: otherTenant, IsActive: true},
	)
	svc := NewEnterpriseRoleService(repo, tenants, discardLogger())

	all, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	scoped, err := svc.List(context.Background(), tenantOne)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, "support", scoped[0].Name)
}
