package model

type AdminUser struct {
	BaseModel
	Email       string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Username    string     `gorm:"size:100;uniqueIndex;not null" json:"username"`
	FullName    string     `gorm:"size:100" json:"full_name"`
	Password    string     `gorm:"size:255;not null" json:"-"`
	RoleIDs     StringList `gorm:"type:text" json:"role_ids"`
	Permissions StringList `gorm:"type:text" json:"permissions"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}

func (u *AdminUser) SubjectTenant() string          { return "" }
func (u *AdminUser) DirectPermissionIDs() []string  { return u.Permissions }
func (u *AdminUser) AssignedRoleIDs() []string      { return u.RoleIDs }
func (u *AdminUser) PrincipalID() string            { return u.ID }
func (u *AdminUser) PrincipalEmail() string         { return u.Email }
func (u *AdminUser) PrincipalUsername() string      { return u.Username }
func (u *AdminUser) PrincipalFullName() string      { return u.FullName }
func (u *AdminUser) PrincipalKind() string          { return KindAdmin }
func (u *AdminUser) PasswordDigest() string         { return u.Password }
func (u *AdminUser) Activated() bool                { return u.IsActive }
