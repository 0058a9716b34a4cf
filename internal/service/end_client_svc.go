package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/tgo/atrium/apiserver/internal/apperr"
	"github.com/tgo/atrium/apiserver/internal/model"
	"github.com/tgo/atrium/apiserver/internal/pkg/ident"
)

type EndClientRepo interface {
	Create(ctx context.Context, client *model.EndClient) error
	Save(ctx context.Context, client *model.EndClient) error
	Delete(ctx context.Context, client *model.EndClient) error
	FindByIdent(ctx context.Context, raw string) (*model.EndClient, error)
	FindByEmail(ctx context.Context, email string) (*model.EndClient, error)
	List(ctx context.Context) ([]model.EndClient, error)
	ListByTenant(ctx context.Context, tenantID string) ([]model.EndClient, error)
}

// EndClientService manages customer records under a tenant. End clients
// never authenticate, so there is no password handling here.
type EndClientService struct {
	repo    EndClientRepo
	tenants TenantLookup
	logger  *slog.Logger
}

func NewEndClientService(repo EndClientRepo, tenants TenantLookup, logger *slog.Logger) *EndClientService {
	return &EndClientService{repo: repo, tenants: tenants, logger: logger}
}

type EndClientCreate struct {
	Name               string                 `json:"name" binding:"required,max=200"`
	Email              string                 `json:"email" binding:"required,email"`
	ContactPerson      string                 `json:"contact_person"`
	Phone              string                 `json:"phone"`
	Address            string                 `json:"address"`
	CompanySize        string                 `json:"company_size"`
	Industry           string                 `json:"industry"`
	Settings           map[string]interface{} `json:"settings"`
	EnterpriseClientID string                 `json:"enterprise_client_id" binding:"required"`
}

type EndClientUpdate struct {
	Name          *string                 `json:"name,omitempty"`
	Email         *string                 `json:"email,omitempty" binding:"omitempty,email"`
	ContactPerson *string                 `json:"contact_person,omitempty"`
	Phone         *string                 `json:"phone,omitempty"`
	Address       *string                 `json:"address,omitempty"`
	CompanySize   *string                 `json:"company_size,omitempty"`
	Industry      *string                 `json:"industry,omitempty"`
	Settings      *map[string]interface{} `json:"settings,omitempty"`
	IsActive      *bool                   `json:"is_active,omitempty"`
}

type EndClientResponse struct {
	ID                 string                 `json:"id"`
	Name               string                 `json:"name"`
	Email              string                 `json:"email"`
	ContactPerson      string                 `json:"contact_person,omitempty"`
	Phone              string                 `json:"phone,omitempty"`
	Address            string                 `json:"address,omitempty"`
	CompanySize        string                 `json:"company_size,omitempty"`
	Industry           string                 `json:"industry,omitempty"`
	Settings           map[string]interface{} `json:"settings,omitempty"`
	IsActive           bool                   `json:"is_active"`
	EnterpriseClientID string                 `json:"enterprise_client_id"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
}

func endClientResponse(client *model.EndClient) *EndClientResponse {
	return &EndClientResponse{
		ID:                 ident.Canonical(client.ID),
		Name:               client.Name,
		Email:              client.Email,
		ContactPerson:      client.ContactPerson,
		Phone:              client.Phone,
		Address:            client.Address,
		CompanySize:        client.CompanySize,
		Industry:           client.Industry,
		Settings:           client.Settings,
		IsActive:           client.IsActive,
		EnterpriseClientID: ident.Canonical(client.EnterpriseClientID),
		CreatedAt:          client.CreatedAt,
		UpdatedAt:          client.UpdatedAt,
	}
}

func (s *EndClientService) Create(ctx context.Context, req *EndClientCreate, createdBy string) (*EndClientResponse, error) {
	tenantID, err := resolveTenant(ctx, s.tenants, req.EnterpriseClientID)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, apperr.ErrDuplicateIdentity
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	client := &model.EndClient{
		Name:               req.Name,
		Email:              req.Email,
		ContactPerson:      req.ContactPerson,
		Phone:              req.Phone,
		Address:            req.Address,
		CompanySize:        req.CompanySize,
		Industry:           req.Industry,
		Settings:           req.Settings,
		IsActive:           true,
		EnterpriseClientID: tenantID,
		CreatedBy:          createdBy,
	}
	if err := s.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	s.logger.Info("end client created",
		slog.String("email", client.Email),
		slog.String("tenant", client.EnterpriseClientID))
	return endClientResponse(client), nil
}

func (s *EndClientService) Get(ctx context.Context, rawID string) (*EndClientResponse, error) {
	client, err := s.repo.FindByIdent(ctx, rawID)
	if err != nil {
		return nil, err
	}
	return endClientResponse(client), nil
}

func (s *EndClientService) List(ctx context.Context, rawTenantID string) ([]EndClientResponse, error) {
	var (
		clients []model.EndClient
		err     error
	)
	if rawTenantID != "" {
		tenantID, nerr := ident.Normalize(rawTenantID)
		if nerr != nil {
			return nil, nerr
		}
		clients, err = s.repo.ListByTenant(ctx, tenantID)
	} else {
		clients, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	out := make([]EndClientResponse, 0, len(clients))
	for i := range clients {
		out = append(out, *endClientResponse(&clients[i]))
	}
	return out, nil
}

func (s *EndClientService) Update(ctx context.Context, rawID string, req *EndClientUpdate) (*EndClientResponse, error) {
	client, err := s.repo.FindByIdent(ctx, rawID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != client.Email {
		if _, err := s.repo.FindByEmail(ctx, *req.Email); err == nil {
			return nil, apperr.ErrDuplicateIdentity
		} else if !errors.Is(err, apperr.ErrNotFound) {
			return nil, err
		}
		client.Email = *req.Email
	}
	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.ContactPerson != nil {
		client.ContactPerson = *req.ContactPerson
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.CompanySize != nil {
		client.CompanySize = *req.CompanySize
	}
	if req.Industry != nil {
		client.Industry = *req.Industry
	}
	if req.Settings != nil {
		client.Settings = *req.Settings
	}
	if req.IsActive != nil {
		client.IsActive = *req.IsActive
	}

	if err := s.repo.Save(ctx, client); err != nil {
		return nil, err
	}
	s.logger.Info("end client updated", slog.String("email", client.Email))
	return endClientResponse(client), nil
}

func (s *EndClientService) Delete(ctx context.Context, rawID string) error {
	client, err := s.repo.FindByIdent(ctx, rawID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, client); err != nil {
		return err
	}
	s.logger.Info("end client deleted", slog.String("email", client.Email))
	return nil
}
