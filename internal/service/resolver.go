package service

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/tgo/atrium/apiserver/internal/apperr"
	"github.com/tgo/atrium/apiserver/internal/model"
	"github.com/tgo/atrium/apiserver/internal/pkg/ident"
)

// Resolver computes a subject's effective permission set: the union of
// directly-granted permission IDs and the IDs granted by each assigned
// role, deduplicated. Nothing is cached across requests; hard deletes
// make dangling references an expected condition, so they are skipped
// and logged, never fatal.
type Resolver struct {
	catalog Catalog
	logger  *slog.Logger
}

func NewResolver(catalog Catalog, logger *slog.Logger) *Resolver {
	return &Resolver{catalog: catalog, logger: logger}
}

// Resolve returns the effective permission IDs in storage form, sorted.
func (r *Resolver) Resolve(ctx context.Context, sub model.Subject) ([]string, error) {
	set := make(map[string]struct{})

	for _, raw := range sub.DirectPermissionIDs() {
		id, err := ident.Normalize(raw)
		if err != nil {
			r.logger.Warn("skipping malformed direct permission id", slog.String("id", raw))
			continue
		}
		set[id] = struct{}{}
	}

	tenant := sub.SubjectTenant()
	for _, raw := range sub.AssignedRoleIDs() {
		roleID, err := ident.Normalize(raw)
		if err != nil {
			r.logger.Warn("skipping malformed role id", slog.String("id", raw))
			continue
		}
		role, err := r.catalog.RoleByID(ctx, roleID, tenant)
		if errors.Is(err, apperr.ErrNotFound) {
			r.logger.Warn("skipping dangling role reference", slog.String("role_id", roleID))
			continue
		}
		if err != nil {
			return nil, err
		}
		if !role.Active {
			continue
		}
		for _, p := range role.PermissionIDs {
			permID, err := ident.Normalize(p)
			if err != nil {
				r.logger.Warn("skipping malformed permission id on role",
					slog.String("role_id", roleID), slog.String("id", p))
				continue
			}
			set[permID] = struct{}{}
		}
	}

	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// ResolveNames maps the effective set to permission names. IDs that no
// longer resolve to a live permission are dropped from the projection;
// the underlying ID stays in the raw set.
func (r *Resolver) ResolveNames(ctx context.Context, sub model.Subject) ([]string, error) {
	ids, err := r.Resolve(ctx, sub)
	if err != nil {
		return nil, err
	}
	tenant := sub.SubjectTenant()
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		perm, err := r.catalog.PermissionByID(ctx, id, tenant)
		if errors.Is(err, apperr.ErrNotFound) {
			r.logger.Warn("permission id has no live record", slog.String("id", id))
			continue
		}
		if err != nil {
			return nil, err
		}
		if !perm.Active {
			continue
		}
		names = append(names, perm.Name)
	}
	return names, nil
}

// Has reports whether the subject's effective set contains the
// (resource, action) capability.
func (r *Resolver) Has(ctx context.Context, sub model.Subject, resource, action string) (bool, error) {
	ids, err := r.Resolve(ctx, sub)
	if err != nil {
		return false, err
	}
	tenant := sub.SubjectTenant()
	for _, id := range ids {
		perm, err := r.catalog.PermissionByID(ctx, id, tenant)
		if errors.Is(err, apperr.ErrNotFound) {
			continue
		}
		if err != nil {
			return false, err
		}
		if perm.Active && perm.Resource == resource && perm.Action == action {
			return true, nil
		}
	}
	return false, nil
}
