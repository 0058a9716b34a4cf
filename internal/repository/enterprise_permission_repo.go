package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tgo/atrium/apiserver/internal/apperr"
	"github.com/tgo/atrium/apiserver/internal/model"
)

type EnterprisePermissionRepository struct {
	BaseRepository[model.EnterprisePermission]
}

func NewEnterprisePermissionRepository(db *gorm.DB) *EnterprisePermissionRepository {
	return &EnterprisePermissionRepository{BaseRepository[model.EnterprisePermission]{DB: db, DupErr: apperr.ErrDuplicateName}}
}

func (r *EnterprisePermissionRepository) FindByName(ctx context.Context, name, tenantID string) (*model.EnterprisePermission, error) {
	var perm model.EnterprisePermission
	err := r.DB.WithContext(ctx).
		Where("name = ? AND enterprise_client_id = ?", name, tenantID).
		First(&perm).Error
	if err != nil {
		return nil, r.translate(err)
	}
	return &perm, nil
}

func (r *EnterprisePermissionRepository) FindByIDInTenant(ctx context.Context, id, tenantID string) (*model.EnterprisePermission, error) {
	var perm model.EnterprisePermission
	err := r.DB.WithContext(ctx).
		Where("id = ? AND enterprise_client_id = ?", id, tenantID).
		First(&perm).Error
	if err != nil {
		return nil, r.translate(err)
	}
	return &perm, nil
}

func (r *EnterprisePermissionRepository) ListByTenant(ctx context.Context, tenantID string) ([]model.EnterprisePermission, error) {
	var perms []model.EnterprisePermission
	err := r.DB.WithContext(ctx).Where("enterprise_client_id = ?", tenantID).Find(&perms).Error
	return perms, r.translate(err)
}
