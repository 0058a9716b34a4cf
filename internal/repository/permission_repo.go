package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tgo/atrium/apiserver/internal/apperr"
	"github.com/tgo/atrium/apiserver/internal/model"
)

type PermissionRepository struct {
	BaseRepository[model.Permission]
}

func NewPermissionRepository(db *gorm.DB) *PermissionRepository {
	return &PermissionRepository{BaseRepository[model.Permission]{DB: db, DupErr: apperr.ErrDuplicateName}}
}

func (r *PermissionRepository) FindByName(ctx context.Context, name string) (*model.Permission, error) {
	var perm model.Permission
	err := r.DB.WithContext(ctx).Where("name = ?", name).First(&perm).Error
	if err != nil {
		return nil, r.translate(err)
	}
	return &perm, nil
}

func (r *PermissionRepository) ListByResource(ctx context.Context, resource string) ([]model.Permission, error) {
	var perms []model.Permission
	err := r.DB.WithContext(ctx).Where("resource = ?", resource).Find(&perms).Error
	return perms, r.translate(err)
}
