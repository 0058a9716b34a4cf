package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tgo/atrium/apiserver/internal/apperr"
	"github.com/tgo/atrium/apiserver/internal/model"
)

type EnterpriseClientRepository struct {
	BaseRepository[model.EnterpriseClient]
}

func NewEnterpriseClientRepository(db *gorm.DB) *EnterpriseClientRepository {
	return &EnterpriseClientRepository{BaseRepository[model.EnterpriseClient]{DB: db, DupErr: apperr.ErrDuplicateIdentity}}
}

func (r *EnterpriseClientRepository) FindByEmail(ctx context.Context, email string) (*model.EnterpriseClient, error) {
	var client model.EnterpriseClient
	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&client).Error
	if err != nil {
		return nil, r.translate(err)
	}
	return &client, nil
}
