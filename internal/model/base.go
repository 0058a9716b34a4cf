package model

import (
	"time"

	"gorm.io/gorm"

	"github.com/tgo/atrium/apiserver/internal/pkg/ident"
)

// BaseModel carries the fields shared by every entity. Primary keys are
// UUIDs stored in hyphen-stripped hex form. Deletes are hard deletes.
type BaseModel struct {
	ID        string    `gorm:"size:32;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = ident.New()
	}
	return nil
}

// Principal kinds carried in token claims and login responses.
const (
	KindAdmin           = "admin"
	KindEnterpriseAdmin = "enterprise_admin"
	KindEnterpriseUser  = "enterprise_user"
)

// Subject is what the permission resolver needs from any entity that can
// hold grants.
type Subject interface {
	// SubjectTenant returns the owning enterprise client ID, or "" for
	// platform-level subjects.
	SubjectTenant() string
	DirectPermissionIDs() []string
	AssignedRoleIDs() []string
}

// Principal is an authenticatable actor.
type Principal interface {
	Subject
	PrincipalID() string
	PrincipalEmail() string
	PrincipalUsername() string
	PrincipalFullName() string
	PrincipalKind() string
	PasswordDigest() string
	Activated() bool
}
