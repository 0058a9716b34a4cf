package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tgo/atrium/apiserver/internal/apperr"
	"github.com/tgo/atrium/apiserver/internal/model"
)

type AdminUserRepository struct {
	BaseRepository[model.AdminUser]
}

func NewAdminUserRepository(db *gorm.DB) *AdminUserRepository {
	return &AdminUserRepository{BaseRepository[model.AdminUser]{DB: db, DupErr: apperr.ErrDuplicateIdentity}}
}

func (r *AdminUserRepository) FindByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	var user model.AdminUser
	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, r.translate(err)
	}
	return &user, nil
}

func (r *AdminUserRepository) FindByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	var user model.AdminUser
	err := r.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, r.translate(err)
	}
	return &user, nil
}
