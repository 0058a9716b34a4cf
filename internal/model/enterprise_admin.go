package model

type EnterpriseAdmin struct {
	BaseModel
	Email              string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Username           string     `gorm:"size:50;uniqueIndex;not null" json:"username"`
	FullName           string     `gorm:"size:100" json:"full_name"`
	Password           string     `gorm:"size:255;not null" json:"-"`
	RoleIDs            StringList `gorm:"type:text" json:"role_ids"`
	Permissions        StringList `gorm:"type:text" json:"permissions"`
	IsActive           bool       `gorm:"default:true" json:"is_active"`
	EnterpriseClientID string     `gorm:"size:32;not null;index" json:"enterprise_client_id"`
}

func (EnterpriseAdmin) TableName() string {
	return "enterprise_admins"
}

func (a *EnterpriseAdmin) SubjectTenant() string         { return a.EnterpriseClientID }
func (a *EnterpriseAdmin) DirectPermissionIDs() []string { return a.Permissions }
func (a *EnterpriseAdmin) AssignedRoleIDs() []string     { return a.RoleIDs }
func (a *EnterpriseAdmin) PrincipalID() string           { return a.ID }
func (a *EnterpriseAdmin) PrincipalEmail() string        { return a.Email }
func (a *EnterpriseAdmin) PrincipalUsername() string     { return a.Username }
func (a *EnterpriseAdmin) PrincipalFullName() string     { return a.FullName }
func (a *EnterpriseAdmin) PrincipalKind() string         { return KindEnterpriseAdmin }
func (a *EnterpriseAdmin) PasswordDigest() string        { return a.Password }
func (a *EnterpriseAdmin) Activated() bool               { return a.IsActive }
