package model

// EndClient is a managed customer record under a tenant. End clients
// carry no credential and cannot authenticate.
type EndClient struct {
	BaseModel
	Name               string  `gorm:"size:200;not null" json:"name"`
	Email              string  `gorm:"size:255;uniqueIndex;not null" json:"email"`
	ContactPerson      string  `gorm:"size:100" json:"contact_person"`
	Phone              string  `gorm:"size:20" json:"phone,omitempty"`
	Address            string  `gorm:"size:500" json:"address,omitempty"`
	CompanySize        string  `gorm:"size:50" json:"company_size,omitempty"`
	Industry           string  `gorm:"size:100" json:"industry,omitempty"`
	Settings           JSONMap `gorm:"type:text" json:"settings,omitempty"`
	IsActive           bool    `gorm:"default:true" json:"is_active"`
	EnterpriseClientID string  `gorm:"size:32;not null;index" json:"enterprise_client_id"`
	CreatedBy          string  `gorm:"size:32" json:"created_by,omitempty"`
}

func (EndClient) TableName() string {
	return "end_clients"
}
