package model

// EnterpriseClient is the tenant under which enterprise admins, users,
// roles, permissions and end clients are scoped.
type EnterpriseClient struct {
	BaseModel
	Name          string     `gorm:"size:200;not null" json:"name"`
	Email         string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	ContactPerson string     `gorm:"size:100" json:"contact_person"`
	Phone         string     `gorm:"size:20" json:"phone,omitempty"`
	Address       string     `gorm:"size:500" json:"address,omitempty"`
	RoleIDs       StringList `gorm:"type:text" json:"role_ids"`
	Permissions   StringList `gorm:"type:text" json:"permissions"`
	IsActive      bool       `gorm:"default:true" json:"is_active"`
}

func (EnterpriseClient) TableName() string {
	return "enterprise_clients"
}

func (c *EnterpriseClient) SubjectTenant() string         { return c.ID }
func (c *EnterpriseClient) DirectPermissionIDs() []string { return c.Permissions }
func (c *EnterpriseClient) AssignedRoleIDs() []string     { return c.RoleIDs }
