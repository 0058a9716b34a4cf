package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tgo/atrium/apiserver/internal/apperr"
	"github.com/tgo/atrium/apiserver/internal/model"
)

type EnterpriseRoleRepository struct {
	BaseRepository[model.EnterpriseRole]
}

func NewEnterpriseRoleRepository(db *gorm.DB) *EnterpriseRoleRepository {
	return &EnterpriseRoleRepository{BaseRepository[model.EnterpriseRole]{DB: db, DupErr: apperr.ErrDuplicateName}}
}

func (r *EnterpriseRoleRepository) FindByName(ctx context.Context, name, tenantID string) (*model.EnterpriseRole, error) {
	var role model.EnterpriseRole
	err := r.DB.WithContext(ctx).
		Where("name = ? AND enterprise_client_id = ?", name, tenantID).
		First(&role).Error
	if err != nil {
		return nil, r.translate(err)
	}
	return &role, nil
}

// FindByIDInTenant scopes the lookup so a role of one tenant never
// resolves for another.
func (r *EnterpriseRoleRepository) FindByIDInTenant(ctx context.Context, id, tenantID string) (*model.EnterpriseRole, error) {
	var role model.EnterpriseRole
	err := r.DB.WithContext(ctx).
		Where("id = ? AND enterprise_client_id = ?", id, tenantID).
		First(&role).Error
	if err != nil {
		return nil, r.translate(err)
	}
	return &role, nil
}

func (r *EnterpriseRoleRepository) ListByTenant(ctx context.Context, tenantID string) ([]model.EnterpriseRole, error) {
	var roles []model.EnterpriseRole
	err := r.DB.WithContext(ctx).Where("enterprise_client_id = ?", tenantID).Find(&roles).Error
	return roles, r.translate(err)
}
