package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tgo/atrium/apiserver/internal/model"
)

// NewGormDB opens the postgres connection. TranslateError makes
// unique-index violations surface as gorm.ErrDuplicatedKey so the
// repositories can map them onto the duplicate errors; the database
// constraint, not the service pre-check, is authoritative.
func NewGormDB(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.AdminUser{},
		&model.AdminRole{},
		&model.Permission{},
		&model.EnterpriseClient{},
		&model.EnterpriseAdmin{},
		&model.EnterpriseUser{},
		&model.EnterpriseRole{},
		&model.EnterprisePermission{},
		&model.EndClient{},
	)
}
