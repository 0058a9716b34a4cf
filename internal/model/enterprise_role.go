package model

// EnterpriseRole is a tenant-scoped role. Names are unique within a
// tenant, not globally.
type EnterpriseRole struct {
	BaseModel
	Name               string     `gorm:"size:100;not null;uniqueIndex:idx_ent_role_name_tenant" json:"name"`
	Description        string     `gorm:"size:500" json:"description,omitempty"`
	Permissions        StringList `gorm:"type:text" json:"permissions"`
	IsActive           bool       `gorm:"default:true" json:"is_active"`
	EnterpriseClientID string     `gorm:"size:32;not null;index;uniqueIndex:idx_ent_role_name_tenant" json:"enterprise_client_id"`
}

func (EnterpriseRole) TableName() string {
	return "enterprise_roles"
}
