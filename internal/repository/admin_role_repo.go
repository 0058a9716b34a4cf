package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tgo/atrium/apiserver/internal/apperr"
	"github.com/tgo/atrium/apiserver/internal/model"
)

type AdminRoleRepository struct {
	BaseRepository[model.AdminRole]
}

func NewAdminRoleRepository(db *gorm.DB) *AdminRoleRepository {
	return &AdminRoleRepository{BaseRepository[model.AdminRole]{DB: db, DupErr: apperr.ErrDuplicateName}}
}

func (r *AdminRoleRepository) FindByName(ctx context.Context, name string) (*model.AdminRole, error) {
	var role model.AdminRole
	err := r.DB.WithContext(ctx).Where("name = ?", name).First(&role).Error
	if err != nil {
		return nil, r.translate(err)
	}
	return &role, nil
}
