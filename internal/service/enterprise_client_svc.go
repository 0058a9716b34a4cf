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

type EnterpriseClientRepo interface {
	Create(ctx context.Context, client *model.EnterpriseClient) error
	Save(ctx context.Context, client *model.EnterpriseClient) error
	Delete(ctx context.Context, client *model.EnterpriseClient) error
	FindByIdent(ctx context.Context, raw string) (*model.EnterpriseClient, error)
	FindByID(ctx context.Context, id string) (*model.EnterpriseClient, error)
	FindByEmail(ctx context.Context, email string) (*model.EnterpriseClient, error)
	List(ctx context.Context) ([]model.EnterpriseClient, error)
}

type EnterpriseClientService struct {
	repo   EnterpriseClientRepo
	logger *slog.Logger
}

func NewEnterpriseClientService(repo EnterpriseClientRepo, logger *slog.Logger) *EnterpriseClientService {
	return &EnterpriseClientService{repo: repo, logger: logger}
}

type EnterpriseClientCreate struct {
	Name          string   `json:"name" binding:"required,max=200"`
	Email         string   `json:"email" binding:"required,email"`
	ContactPerson string   `json:"contact_person" binding:"required,max=100"`
	Phone         string   `json:"phone"`
	Address       string   `json:"address"`
	RoleIDs       []string `json:"role_ids"`
	Permissions   []string `json:"permissions"`
}

type EnterpriseClientUpdate struct {
	Name          *string   `json:"name,omitempty"`
	Email         *string   `json:"email,omitempty" binding:"omitempty,email"`
	ContactPerson *string   `json:"contact_person,omitempty"`
	Phone         *string   `json:"phone,omitempty"`
	Address       *string   `json:"address,omitempty"`
	RoleIDs       *[]string `json:"role_ids,omitempty"`
	Permissions   *[]string `json:"permissions,omitempty"`
	IsActive      *bool     `json:"is_active,omitempty"`
}

type EnterpriseClientResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ContactPerson string    `json:"contact_person"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	RoleIDs       []string  `json:"role_ids"`
	Permissions   []string  `json:"permissions"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func enterpriseClientResponse(client *model.EnterpriseClient) *EnterpriseClientResponse {
	return &EnterpriseClientResponse{
		ID:            ident.Canonical(client.ID),
		Name:          client.Name,
		Email:         client.Email,
		ContactPerson: client.ContactPerson,
		Phone:         client.Phone,
		Address:       client.Address,
		RoleIDs:       ident.CanonicalAll(client.RoleIDs),
		Permissions:   ident.CanonicalAll(client.Permissions),
		IsActive:      client.IsActive,
		CreatedAt:     client.CreatedAt,
		UpdatedAt:     client.UpdatedAt,
	}
}

func (s *EnterpriseClientService) Create(ctx context.Context, req *EnterpriseClientCreate) (*EnterpriseClientResponse, error) {
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, apperr.ErrDuplicateIdentity
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	roleIDs, err := normalizeIDList(req.RoleIDs)
	if err != nil {
		return nil, err
	}
	permIDs, err := normalizeIDList(req.Permissions)
	if err != nil {
		return nil, err
	}
	client := &model.EnterpriseClient{
		Name:          req.Name,
		Email:         req.Email,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Address:       req.Address,
		RoleIDs:       roleIDs,
		Permissions:   permIDs,
		IsActive:      true,
	}
	if err := s.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	s.logger.Info("enterprise client created", slog.String("email", client.Email))
	return enterpriseClientResponse(client), nil
}

func (s *EnterpriseClientService) Get(ctx context.Context, rawID string) (*EnterpriseClientResponse, error) {
	client, err := s.repo.FindByIdent(ctx, rawID)
	if err != nil {
		return nil, err
	}
	return enterpriseClientResponse(client), nil
}

func (s *EnterpriseClientService) List(ctx context.Context) ([]EnterpriseClientResponse, error) {
	clients, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]EnterpriseClientResponse, 0, len(clients))
	for i := range clients {
		out = append(out, *enterpriseClientResponse(&clients[i]))
	}
	return out, nil
}

func (s *EnterpriseClientService) Update(ctx context.Context, rawID string, req *EnterpriseClientUpdate) (*EnterpriseClientResponse, error) {
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
	if req.RoleIDs != nil {
		roleIDs, err := normalizeIDList(*req.RoleIDs)
		if err != nil {
			return nil, err
		}
		client.RoleIDs = roleIDs
	}
	if req.Permissions != nil {
		permIDs, err := normalizeIDList(*req.Permissions)
		if err != nil {
			return nil, err
		}
		client.Permissions = permIDs
	}
	if req.IsActive != nil {
		client.IsActive = *req.IsActive
	}

	if err := s.repo.Save(ctx, client); err != nil {
		return nil, err
	}
	s.logger.Info("enterprise client updated", slog.String("email", client.Email))
	return enterpriseClientResponse(client), nil
}

func (s *EnterpriseClientService) Delete(ctx context.Context, rawID string) error {
	client, err := s.repo.FindByIdent(ctx, rawID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, client); err != nil {
		return err
	}
	s.logger.Info("enterprise client deleted", slog.String("email", client.Email))
	return nil
}

func (s *EnterpriseClientService) SetActive(ctx context.Context, rawID string, active bool) (*EnterpriseClientResponse, error) {
	client, err := s.repo.FindByIdent(ctx, rawID)
	if err != nil {
		return nil, err
	}
	client.IsActive = active
	if err := s.repo.Save(ctx, client); err != nil {
		return nil, err
	}
	return enterpriseClientResponse(client), nil
}
