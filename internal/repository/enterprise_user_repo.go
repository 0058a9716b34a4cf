package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tgo/atrium/apiserver/internal/apperr"
	"github.com/tgo/atrium/apiserver/internal/model"
)

type EnterpriseUserRepository struct {
	BaseRepository[model.EnterpriseUser]
}

func NewEnterpriseUserRepository(db *gorm.DB) *EnterpriseUserRepository {
	return &EnterpriseUserRepository{BaseRepository[model.EnterpriseUser]{DB: db, DupErr: apperr.ErrDuplicateIdentity}}
}

func (r *EnterpriseUserRepository) FindByEmail(ctx context.Context, email string) (*model.EnterpriseUser, error) {
	var user model.EnterpriseUser
	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, r.translate(err)
	}
	return &user, nil
}

func (r *EnterpriseUserRepository) FindByUsername(ctx context.Context, username string) (*model.EnterpriseUser, error) {
	var user model.EnterpriseUser
	err := r.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, r.translate(err)
	}
	return &user, nil
}

func (r *EnterpriseUserRepository) ListByTenant(ctx context.Context, tenantID string) ([]model.EnterpriseUser, error) {
	var users []model.EnterpriseUser
	err := r.DB.WithContext(ctx).Where("enterprise_client_id = ?", tenantID).Find(&users).Error
	return users, r.translate(err)
}
