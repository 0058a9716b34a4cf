package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgo/atrium/apiserver/internal/apperr"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubSubject struct {
	tenant  string
	perms   []string
	roles   []string
}

func (s stubSubject) SubjectTenant() string         { return s.tenant }
func (s stubSubject) DirectPermissionIDs() []string { return s.perms }
func (s stubSubject) AssignedRoleIDs() []string     { return s.roles }

type stubCatalog struct {
	roles map[string]map[string]*RoleGrant
	perms map[string]map[string]*PermissionInfo
}

func (c stubCatalog) RoleByID(_ context.Context, id, tenantID string) (*RoleGrant, error) {
	if role, ok := c.roles[tenantID][id]; ok {
		return role, nil
	}
	return nil, apperr.ErrNotFound
}

func (c stubCatalog) PermissionByID(_ context.Context, id, tenantID string) (*PermissionInfo, error) {
	if perm, ok := c.perms[tenantID][id]; ok {
		return perm, nil
	}
	return nil, apperr.ErrNotFound
}

const (
	permRead   = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa1"
	permWrite  = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa2"
	permDelete = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa3"
	roleOne    = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb1"
	roleTwo    = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb2"
	tenantOne  = "ccccccccccccccccccccccccccccccc1"
)

func TestResolveUnionsDirectAndRoleGrants(t *testing.T) {
	catalog := stubCatalog{
		roles: map[string]map[string]*RoleGrant{
			"": {
				roleOne: {ID: roleOne, Name: "editor", Active: true, PermissionIDs: []string{permWrite, permRead}},
			},
		},
	}
	r := NewResolver(catalog, discardLogger())

	sub := stubSubject{perms: []string{permRead}, roles: []string{roleOne}}
	got, err := r.Resolve(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, []string{permRead, permWrite}, got)
}

func TestResolveAcceptsCanonicalReferences(t *testing.T) {
	catalog := stubCatalog{
		roles: map[string]map[string]*RoleGrant{"": {}},
	}
	r := NewResolver(catalog, discardLogger())

	sub := stubSubject{perms: []string{"aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaa1"}}
	got, err := r.Resolve(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, []string{permRead}, got)
}

func TestResolveSkipsDanglingRole(t *testing.T) {
	catalog := stubCatalog{roles: map[string]map[string]*RoleGrant{"": {}}}
	r := NewResolver(catalog, discardLogger())

	sub := stubSubject{perms: []string{permRead}, roles: []string{roleOne}}
	got, err := r.Resolve(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, []string{permRead}, got)
}

func TestResolveSkipsInactiveRole(t *testing.T) {
	catalog := stubCatalog{
		roles: map[string]map[string]*RoleGrant{
			"": {
				roleOne: {ID: roleOne, Active: false, PermissionIDs: []string{permWrite}},
			},
		},
	}
	r := NewResolver(catalog, discardLogger())

	sub := stubSubject{roles: []string{roleOne}}
	got, err := r.Resolve(context.Background(), sub)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestResolveSkipsMalformedReferences(t *testing.T) {
	catalog := stubCatalog{roles: map[string]map[string]*RoleGrant{"": {}}}
	r := NewResolver(catalog, discardLogger())

	sub := stubSubject{perms: []string{"garbage", permRead}, roles: []string{"also-garbage"}}
	got, err := r.Resolve(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, []string{permRead}, got)
}

func TestResolveTenantScoped(t *testing.T) {
	catalog := stubCatalog{
		roles: map[string]map[string]*RoleGrant{
			tenantOne: {
				roleOne: {ID: roleOne, Active: true, PermissionIDs: []string{permDelete}},
			},
			"": {
				roleTwo: {ID: roleTwo, Active: true, PermissionIDs: []string{permWrite}},
			},
		},
	}
	r := NewResolver(catalog, discardLogger())

	// Tenant subject sees only its tenant's roles; the platform role with
	// the same ID pattern contributes nothing.
	tenantSub := stubSubject{tenant: tenantOne, roles: []string{roleOne, roleTwo}}
	got, err := r.Resolve(context.Background(), tenantSub)
	require.NoError(t, err)
	assert.Equal(t, []string{permDelete}, got)

	platformSub := stubSubject{roles: []string{roleOne, roleTwo}}
	got, err = r.Resolve(context.Background(), platformSub)
	require.NoError(t, err)
	assert.Equal(t, []string{permWrite}, got)
}

func TestResolveNamesDropsDeadAndInactive(t *testing.T) {
	catalog := stubCatalog{
		roles: map[string]map[string]*RoleGrant{"": {}},
		perms: map[string]map[string]*PermissionInfo{
			"": {
				permRead:  {ID: permRead, Name: "ticket:read", Resource: "ticket", Action: "read", Active: true},
				permWrite: {ID: permWrite, Name: "ticket:write", Resource: "ticket", Action: "write", Active: false},
			},
		},
	}
	r := NewResolver(catalog, discardLogger())

	sub := stubSubject{perms: []string{permRead, permWrite, permDelete}}
	names, err := r.ResolveNames(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, []string{"ticket:read"}, names)

	// The raw set keeps every live ID regardless of the name projection.
	ids, err := r.Resolve(context.Background(), sub)
	require.NoError(t, err)
	assert.Len(t, ids, 3)
}

func TestHasThroughRoleGrant(t *testing.T) {
	catalog := stubCatalog{
		roles: map[string]map[string]*RoleGrant{
			"": {
				roleOne: {ID: roleOne, Name: "support", Active: true, PermissionIDs: []string{permRead}},
			},
		},
		perms: map[string]map[string]*PermissionInfo{
			"": {
				permRead: {ID: permRead, Name: "ticket:read", Resource: "ticket", Action: "read", Active: true},
			},
		},
	}
	r := NewResolver(catalog, discardLogger())

	sub := stubSubject{roles: []string{roleOne}}

	ok, err := r.Has(context.Background(), sub, "ticket", "read")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.Has(context.Background(), sub, "ticket", "delete")
	require.NoError(t, err)
	assert.False(t, ok)
}
