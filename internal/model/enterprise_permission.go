package model

// EnterprisePermission is a tenant-scoped capability.
type EnterprisePermission struct {
	BaseModel
	Name               string `gorm:"size:100;not null;uniqueIndex:idx_ent_perm_name_tenant" json:"name"`
	Description        string `gorm:"size:500" json:"description,omitempty"`
	Resource           string `gorm:"size:100;not null;index" json:"resource"`
	Action             string `gorm:"size:100;not null;index" json:"action"`
	IsActive           bool   `gorm:"default:true" json:"is_active"`
	EnterpriseClientID string `gorm:"size:32;not null;index;uniqueIndex:idx_ent_perm_name_tenant" json:"enterprise_client_id"`
}

func (EnterprisePermission) TableName() string {
	return "enterprise_permissions"
}
