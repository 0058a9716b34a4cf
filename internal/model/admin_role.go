package model

type AdminRole struct {
	BaseModel
	Name         string     `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description  string     `gorm:"size:500" json:"description,omitempty"`
	IsSystemRole bool       `gorm:"default:false;index" json:"is_system_role"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	Permissions  StringList `gorm:"type:text" json:"permissions"`
}

func (AdminRole) TableName() string {
	return "admin_roles"
}
