package service

import (
	"context"

	"github.com/tgo/atrium/apiserver/internal/model"
)

// RoleGrant is the catalog's schema-neutral view of a role.
type RoleGrant struct {
	ID            string
	Name          string
	Active        bool
	PermissionIDs []string
}

// PermissionInfo is the catalog's schema-neutral view of a permission.
type PermissionInfo struct {
	ID       string
	Name     string
	Resource string
	Action   string
	Active   bool
}

// Catalog serves role and permission lookups for the resolver. An empty
// tenant ID addresses the platform catalog; a non-empty one addresses
// that tenant's catalog only.
type Catalog interface {
	RoleByID(ctx context.Context, id, tenantID string) (*RoleGrant, error)
	PermissionByID(ctx context.Context, id, tenantID string) (*PermissionInfo, error)
}

// Storage ports consumed by the catalog. IDs are already normalized.
type PlatformRoleStore interface {
	FindByID(ctx context.Context, id string) (*model.AdminRole, error)
}

type PlatformPermissionStore interface {
	FindByID(ctx context.Context, id string) (*model.Permission, error)
}

type TenantRoleStore interface {
	FindByIDInTenant(ctx context.Context, id, tenantID string) (*model.EnterpriseRole, error)
}

type TenantPermissionStore interface {
	FindByIDInTenant(ctx context.Context, id, tenantID string) (*model.EnterprisePermission, error)
}

type catalogService struct {
	platformRoles PlatformRoleStore
	platformPerms PlatformPermissionStore
	tenantRoles   TenantRoleStore
	tenantPerms   TenantPermissionStore
}

func NewCatalog(roles PlatformRoleStore, perms PlatformPermissionStore, tenantRoles TenantRoleStore, tenantPerms TenantPermissionStore) Catalog {
	return &catalogService{
		platformRoles: roles,
		platformPerms: perms,
		tenantRoles:   tenantRoles,
		tenantPerms:   tenantPerms,
	}
}

func (c *catalogService) RoleByID(ctx context.Context, id, tenantID string) (*RoleGrant, error) {
	if tenantID == "" {
		role, err := c.platformRoles.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &RoleGrant{ID: role.ID, Name: role.Name, Active: role.IsActive, PermissionIDs: role.Permissions}, nil
	}
	role, err := c.tenantRoles.FindByIDInTenant(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}
	return &RoleGrant{ID: role.ID, Name: role.Name, Active: role.IsActive, PermissionIDs: role.Permissions}, nil
}

func (c *catalogService) PermissionByID(ctx context.Context, id, tenantID string) (*PermissionInfo, error) {
	if tenantID == "" {
		perm, err := c.platformPerms.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &PermissionInfo{ID: perm.ID, Name: perm.Name, Resource: perm.Resource, Action: perm.Action, Active: perm.IsActive}, nil
	}
	perm, err := c.tenantPerms.FindByIDInTenant(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}
	return &PermissionInfo{ID: perm.ID, Name: perm.Name, Resource: perm.Resource, Action: perm.Action, Active: perm.IsActive}, nil
}
