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

type EnterprisePermissionRepo interface {
	Create(ctx context.Context, perm *model.EnterprisePermission) error
	Save(ctx context.Context, perm *model.EnterprisePermission) error
	Delete(ctx context.Context, perm *model.EnterprisePermission) error
	FindByIdent(ctx context.Context, raw string) (*model.EnterprisePermission, error)
	FindByName(ctx context.Context, name, tenantID string) (*model.EnterprisePermission, error)
	List(ctx context.Context) ([]model.EnterprisePermission, error)
	ListByTenant(ctx context.Context, tenantID string) ([]model.EnterprisePermission, error)
}

type EnterprisePermissionService struct {
	repo    EnterprisePermissionRepo
	tenants TenantLookup
	logger  *slog.Logger
}

func NewEnterprisePermissionService(repo EnterprisePermissionRepo, tenants TenantLookup, logger *slog.Logger) *EnterprisePermissionService {
	return &EnterprisePermissionService{repo: repo, tenants: tenants, logger: logger}
}

type EnterprisePermissionCreate struct {
	Name               string `json:"name" binding:"required,max=100"`
	Description        string `json:"description"`
	Resource           string `json:"resource" binding:"required,max=100"`
	Action             string `json:"action" binding:"required,max=100"`
	EnterpriseClientID string `json:"enterprise_client_id" binding:"required"`
}

type EnterprisePermissionUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Resource    *string `json:"resource,omitempty"`
	Action      *string `json:"action,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type EnterprisePermissionResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description,omitempty"`
	Resource           string    `json:"resource"`
	Action             string    `json:"action"`
	IsActive           bool      `json:"is_active"`
	EnterpriseClientID string    `json:"enterprise_client_id"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func enterprisePermissionResponse(perm *model.EnterprisePermission) *EnterprisePermissionResponse {
	return &EnterprisePermissionResponse{
		ID:                 ident.Canonical(perm.ID),
		Name:               perm.Name,
		Description:        perm.Description,
		Resource:           perm.Resource,
		Action:             perm.Action,
		IsActive:           perm.IsActive,
		EnterpriseClientID: ident.Canonical(perm.EnterpriseClientID),
		CreatedAt:          perm.CreatedAt,
		UpdatedAt:          perm.UpdatedAt,
	}
}

func (s *EnterprisePermissionService) Create(ctx context.Context, req *EnterprisePermissionCreate) (*EnterprisePermissionResponse, error) {
	tenantID, err := resolveTenant(ctx, s.tenants, req.EnterpriseClientID)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.FindByName(ctx, req.Name, tenantID); err == nil {
		return nil, apperr.ErrDuplicateName
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	perm := &model.EnterprisePermission{
		Name:               req.Name,
		Description:        req.Description,
		Resource:           req.Resource,
		Action:             req.Action,
		IsActive:           true,
		EnterpriseClientID: tenantID,
	}
	if err := s.repo.Create(ctx, perm); err != nil {
		return nil, err
	}
	s.logger.Info("enterprise permission created",
		slog.String("name", perm.Name),
		slog.String("tenant", perm.EnterpriseClientID))
	return enterprisePermissionResponse(perm), nil
}

func (s *EnterprisePermissionService) Get(ctx context.Context, rawID string) (*EnterprisePermissionResponse, error) {
	perm, err := s.repo.FindByIdent(ctx, rawID)
	if err != nil {
		return nil, err
	}
	return enterprisePermissionResponse(perm), nil
}

func (s *EnterprisePermissionService) List(ctx context.Context, rawTenantID string) ([]EnterprisePermissionResponse, error) {
	var (
		perms []model.EnterprisePermission
		err   error
	)
	if rawTenantID != "" {
		tenantID, nerr := ident.Normalize(rawTenantID)
		if nerr != nil {
			return nil, nerr
		}
		perms, err = s.repo.ListByTenant(ctx, tenantID)
	} else {
		perms, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	out := make([]EnterprisePermissionResponse, 0, len(perms))
	for i := range perms {
		out = append(out, *enterprisePermissionResponse(&perms[i]))
	}
	return out, nil
}

func (s *EnterprisePermissionService) Update(ctx context.Context, rawID string, req *EnterprisePermissionUpdate) (*EnterprisePermissionResponse, error) {
	perm, err := s.repo.FindByIdent(ctx, rawID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != perm.Name {
		if _, err := s.repo.FindByName(ctx, *req.Name, perm.EnterpriseClientID); err == nil {
			return nil, apperr.ErrDuplicateName
		} else if !errors.Is(err, apperr.ErrNotFound) {
			return nil, err
		}
		perm.Name = *req.Name
	}
	if req.Description != nil {
		perm.Description = *req.Description
	}
	if req.Resource != nil {
		perm.Resource = *req.Resource
	}
	if req.Action != nil {
		perm.Action = *req.Action
	}
	if req.IsActive != nil {
		perm.IsActive = *req.IsActive
	}

	if err := s.repo.Save(ctx, perm); err != nil {
		return nil, err
	}
	s.logger.Info("enterprise permission updated", slog.String("name", perm.Name))
	return enterprisePermissionResponse(perm), nil
}

func (s *EnterprisePermissionService) Delete(ctx context.Context, rawID string) error {
	perm, err := s.repo.FindByIdent(ctx, rawID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, perm); err != nil {
		return err
	}
	s.logger.Info("enterprise permission deleted", slog.String("name", perm.Name))
	return nil
}
