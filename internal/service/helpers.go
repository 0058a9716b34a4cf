package service

import (
	"context"

	"github.com/tgo/atrium/apiserver/internal/model"
	"github.com/tgo/atrium/apiserver/internal/pkg/ident"
)

// TenantLookup verifies that an enterprise client exists before records
// are created under it.
type TenantLookup interface {
	FindByID(ctx context.Context, id string) (*model.EnterpriseClient, error)
}

// resolveTenant normalizes a tenant identifier and confirms the tenant
// exists, returning the storage-form ID.
func resolveTenant(ctx context.Context, tenants TenantLookup, raw string) (string, error) {
	id, err := ident.Normalize(raw)
	if err != nil {
		return "", err
	}
	if _, err := tenants.FindByID(ctx, id); err != nil {
		return "", err
	}
	return id, nil
}

// normalizeIDList converts incoming role/permission identifier lists to
// storage form. Unlike lists read back from storage (where bad entries
// are skipped), lists supplied by a caller are rejected outright.
func normalizeIDList(ids []string) (model.StringList, error) {
	out := make(model.StringList, 0, len(ids))
	for _, id := range ids {
		n, err := ident.Normalize(id)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
