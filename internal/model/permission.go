package model

// Permission is a platform-level capability. The name follows the
// "resource:action" convention.
type Permission struct {
	BaseModel
	Name        string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string `gorm:"size:500" json:"description,omitempty"`
	Resource    string `gorm:"size:100;not null;index" json:"resource"`
	Action      string `gorm:"size:100;not null;index" json:"action"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
}

func (Permission) TableName() string {
	return "admin_permissions"
}

// Capability builds the "resource:action" name for a permission pair.
func Capability(resource, action string) string {
	return resource + ":" + action
}
