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

type EnterpriseRoleRepo interface {
	Create(ctx context.Context, role *model.EnterpriseRole) error
	Save(ctx context.Context, role *model.EnterpriseRole) error
	Delete(ctx context.Context, role *model.EnterpriseRole) error
	FindByIdent(ctx context.Context, raw string) (*model.EnterpriseRole, error)
	FindByName(ctx context.Context, name, tenantID string) (*model.EnterpriseRole, error)
	List(ctx context.Context) ([]model.EnterpriseRole, error)
	ListByTenant(ctx context.Context, tenantID string) ([]model.EnterpriseRole, error)
}

type EnterpriseRoleService struct {
	repo    EnterpriseRoleRepo
	tenants TenantLookup
	logger  *slog.Logger
}

func NewEnterpriseRoleService(repo EnterpriseRoleRepo, tenants TenantLookup, logger *slog.Logger) *EnterpriseRoleService {
	return &EnterpriseRoleService{repo: repo, tenants: tenants, logger: logger}
}

type EnterpriseRoleCreate struct {
	Name               string   `json:"name" binding:"required,max=100"`
	Description        string   `json:"description"`
	Permissions        []string `json:"permissions"`
	EnterpriseClientID string   `json:"enterprise_client_id" binding:"required"`
}

type EnterpriseRoleUpdate struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Permissions *[]string `json:"permissions,omitempty"`
	IsActive    *bool     `json:"is_active,omitempty"`
}

type EnterpriseRoleResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description,omitempty"`
	Permissions        []string  `json:"permissions"`
	IsActive           bool      `json:"is_active"`
	EnterpriseClientID string    `json:"enterprise_client_id"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func enterpriseRoleResponse(role *model.EnterpriseRole) *EnterpriseRoleResponse {
	return &EnterpriseRoleResponse{
		ID:                 ident.Canonical(role.ID),
		Name:               role.Name,
		Description:        role.Description,
		Permissions:        ident.CanonicalAll(role.Permissions),
		IsActive:           role.IsActive,
		EnterpriseClientID: ident.Canonical(role.EnterpriseClientID),
		CreatedAt:          role.CreatedAt,
		UpdatedAt:          role.UpdatedAt,
	}
}

func (s *EnterpriseRoleService) Create(ctx context.Context, req *EnterpriseRoleCreate) (*EnterpriseRoleResponse, error) {
	tenantID, err := resolveTenant(ctx, s.tenants, req.EnterpriseClientID)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.FindByName(ctx, req.Name, tenantID); err == nil {
		return nil, apperr.ErrDuplicateName
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	permIDs, err := normalizeIDList(req.Permissions)
	if err != nil {
		return nil, err
	}
	role := &model.EnterpriseRole{
		Name:               req.Name,
		Description:        req.Description,
		Permissions:        permIDs,
		IsActive:           true,
		EnterpriseClientID: tenantID,
	}
	if err := s.repo.Create(ctx, role); err != nil {
		return nil, err
	}
	s.logger.Info("enterprise role created",
		slog.String("name", role.Name),
		slog.String("tenant", role.EnterpriseClientID))
	return enterpriseRoleResponse(role), nil
}

func (s *EnterpriseRoleService) Get(ctx context.Context, rawID string) (*EnterpriseRoleResponse, error) {
	role, err := s.repo.FindByIdent(ctx, rawID)
	if err != nil {
		return nil, err
	}
	return enterpriseRoleResponse(role), nil
}

func (s *EnterpriseRoleService) List(ctx context.Context, rawTenantID string) ([]EnterpriseRoleResponse, error) {
	var (
		roles []model.EnterpriseRole
		err   error
	)
	if rawTenantID != "" {
		tenantID, nerr := ident.Normalize(rawTenantID)
		if nerr != nil {
			return nil, nerr
		}
		roles, err = s.repo.ListByTenant(ctx, tenantID)
	} else {
		roles, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	out := make([]EnterpriseRoleResponse, 0, len(roles))
	for i := range roles {
		out = append(out, *enterpriseRoleResponse(&roles[i]))
	}
	return out, nil
}

func (s *EnterpriseRoleService) Update(ctx context.Context, rawID string, req *EnterpriseRoleUpdate) (*EnterpriseRoleResponse, error) {
	role, err := s.repo.FindByIdent(ctx, rawID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != role.Name {
		if _, err := s.repo.FindByName(ctx, *req.Name, role.EnterpriseClientID); err == nil {
			return nil, apperr.ErrDuplicateName
		} else if !errors.Is(err, apperr.ErrNotFound) {
			return nil, err
		}
		role.Name = *req.Name
	}
	if req.Description != nil {
		role.Description = *req.Description
	}
	if req.Permissions != nil {
		permIDs, err := normalizeIDList(*req.Permissions)
		if err != nil {
			return nil, err
		}
		role.Permissions = permIDs
	}
	if req.IsActive != nil {
		role.IsActive = *req.IsActive
	}

	if err := s.repo.Save(ctx, role); err != nil {
		return nil, err
	}
	s.logger.Info("enterprise role updated", slog.String("name", role.Name))
	return enterpriseRoleResponse(role), nil
}

func (s *EnterpriseRoleService) Delete(ctx context.Context, rawID string) error {
	role, err := s.repo.FindByIdent(ctx, rawID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, role); err != nil {
		return err
	}
	s.logger.Info("enterprise role deleted", slog.String("name", role.Name))
	return nil
}
