package db

import (
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tgo/atrium/apiserver/internal/model"
)

// Resources managed by the platform catalog. Each gets a permission per
// CRUD action at bootstrap.
var seedResources = []string{
	"admin-user",
	"admin-role",
	"permission",
	"enterprise-client",
	"enterprise-admin",
	"enterprise-user",
	"enterprise-role",
	"enterprise-permission",
	"end-client",
}

var seedActions = []string{"create", "read", "update", "delete"}

// Seed creates the default catalog, system roles and the bootstrap
// platform admin. Safe to run on every start.
func Seed(db *gorm.DB, logger *slog.Logger, adminEmail, adminPassword string) error {
	permIDs, err := seedPermissions(db, logger)
	if err != nil {
		return err
	}

	adminRole, err := seedRole(db, logger, "admin", "Administrator with full system access", permIDs)
	if err != nil {
		return err
	}
	if _, err := seedRole(db, logger, "user", "Regular user with basic access", nil); err != nil {
		return err
	}
	if _, err := seedRole(db, logger, "moderator", "Moderator with limited administrative access", nil); err != nil {
		return err
	}

	return seedAdmin(db, logger, adminEmail, adminPassword, adminRole.ID)
}

func seedPermissions(db *gorm.DB, logger *slog.Logger) ([]string, error) {
	ids := make([]string, 0, len(seedResources)*len(seedActions))
	for _, resource := range seedResources {
		for _, action := range seedActions {
			name := model.Capability(resource, action)
			var perm model.Permission
			err := db.Where("name = ?", name).First(&perm).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				perm = model.Permission{
					Name:        name,
					Description: fmt.Sprintf("%s %s records", action, resource),
					Resource:    resource,
					Action:      action,
					IsActive:    true,
				}
				if err := db.Create(&perm).Error; err != nil {
					return nil, err
				}
				logger.Info("seeded permission", slog.String("name", name))
			} else if err != nil {
				return nil, err
			}
			ids = append(ids, perm.ID)
		}
	}
	return ids, nil
}

func seedRole(db *gorm.DB, logger *slog.Logger, name, description string, permIDs []string) (*model.AdminRole, error) {
	var role model.AdminRole
	err := db.Where("name = ?", name).First(&role).Error
	if err == nil {
		return &role, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	role = model.AdminRole{
		Name:         name,
		Description:  description,
		IsSystemRole: true,
		IsActive:     true,
		Permissions:  model.StringList(permIDs),
	}
	if role.Permissions == nil {
		role.Permissions = model.StringList{}
	}
	if err := db.Create(&role).Error; err != nil {
		return nil, err
	}
	logger.Info("seeded system role", slog.String("name", name))
	return &role, nil
}

func seedAdmin(db *gorm.DB, logger *slog.Logger, email, password, adminRoleID string) error {
	var count int64
	if err := db.Model(&model.AdminUser{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := model.AdminUser{
		Email:       email,
		Username:    "admin",
		FullName:    "System Administrator",
		Password:    string(digest),
		RoleIDs:     model.StringList{adminRoleID},
		Permissions: model.StringList{},
		IsActive:    true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	logger.Info("seeded bootstrap admin", slog.String("email", email))
	logger.Warn("change the bootstrap admin password after first login")
	return nil
}
