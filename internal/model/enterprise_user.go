package model

type EnterpriseUser struct {
	BaseModel
	Email              string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Username           string     `gorm:"size:50;uniqueIndex;not null" json:"username"`
	FullName           string     `gorm:"size:100" json:"full_name"`
	UserType           string     `gorm:"size:50" json:"user_type"`
	Department         string     `gorm:"size:100" json:"department,omitempty"`
	Position           string     `gorm:"size:100" json:"position,omitempty"`
	Phone              string     `gorm:"size:20" json:"phone,omitempty"`
	Password           string     `gorm:"size:255;not null" json:"-"`
	RoleIDs            StringList `gorm:"type:text" json:"role_ids"`
	Permissions        StringList `gorm:"type:text" json:"permissions"`
	Settings           JSONMap    `gorm:"type:text" json:"settings,omitempty"`
	IsActive           bool       `gorm:"default:true" json:"is_active"`
	EnterpriseClientID string     `gorm:"size:32;not null;index" json:"enterprise_client_id"`
	CreatedBy          string     `gorm:"size:32" json:"created_by,omitempty"`
}

func (EnterpriseUser) TableName() string {
	return "enterprise_users"
}

func (u *EnterpriseUser) SubjectTenant() string         { return u.EnterpriseClientID }
func (u *EnterpriseUser) DirectPermissionIDs() []string { return u.Permissions }
func (u *EnterpriseUser) AssignedRoleIDs() []string     { return u.RoleIDs }
func (u *EnterpriseUser) PrincipalID() string           { return u.ID }
func (u *EnterpriseUser) PrincipalEmail() string        { return u.Email }
func (u *EnterpriseUser) PrincipalUsername() string     { return u.Username }
func (u *EnterpriseUser) PrincipalFullName() string     { return u.FullName }
func (u *EnterpriseUser) PrincipalKind() string         { return KindEnterpriseUser }
func (u *EnterpriseUser) PasswordDigest() string        { return u.Password }
func (u *EnterpriseUser) Activated() bool               { return u.IsActive }
