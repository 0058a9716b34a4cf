package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tgo/atrium/apiserver/internal/apperr"
	"github.com/tgo/atrium/apiserver/internal/model"
)

type EnterpriseAdminRepository struct {
	BaseRepository[model.EnterpriseAdmin]
}

func NewEnterpriseAdminRepository(db *gorm.DB) *EnterpriseAdminRepository {
	return &EnterpriseAdminRepository{BaseRepository[model.EnterpriseAdmin]{DB: db, DupErr: apperr.ErrDuplicateIdentity}}
}

func (r *EnterpriseAdminRepository) FindByEmail(ctx context.Context, email string) (*model.EnterpriseAdmin, error) {
	var admin model.EnterpriseAdmin
	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&admin).Error
	if err != nil {
		return nil, r.translate(err)
	}
	return &admin, nil
}

func (r *EnterpriseAdminRepository) FindByUsername(ctx context.Context, username string) (*model.EnterpriseAdmin, error) {
	var admin model.EnterpriseAdmin
	err := r.DB.WithContext(ctx).Where("username = ?", username).First(&admin).Error
	if err != nil {
		return nil, r.translate(err)
	}
	return &admin, nil
}

func (r *EnterpriseAdminRepository) ListByTenant(ctx context.Context, tenantID string) ([]model.EnterpriseAdmin, error) {
	var admins []model.EnterpriseAdmin
	err := r.DB.WithContext(ctx).Where("enterprise_client_id = ?", tenantID).Find(&admins).Error
	return admins, r.translate(err)
}
