package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tgo/atrium/apiserver/internal/apperr"
	"github.com/tgo/atrium/apiserver/internal/model"
)

type EndClientRepository struct {
	BaseRepository[model.EndClient]
}

func NewEndClientRepository(db *gorm.DB) *EndClientRepository {
	return &EndClientRepository{BaseRepository[model.EndClient]{DB: db, DupErr: apperr.ErrDuplicateIdentity}}
}

func (r *EndClientRepository) FindByEmail(ctx context.Context, email string) (*model.EndClient, error) {
	var client model.EndClient
	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&client).Error
	if err != nil {
		return nil, r.translate(err)
	}
	return &client, nil
}

func (r *EndClientRepository) ListByTenant(ctx context.Context, tenantID string) ([]model.EndClient, error) {
	var clients []model.EndClient
	err := r.DB.WithContext(ctx).Where("enterprise_client_id = ?", tenantID).Find(&clients).Error
	return clients, r.translate(err)
}
