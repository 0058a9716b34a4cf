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

type AdminRoleRepo interface {
	Create(ctx context.Context, role *model.AdminRole) error
	Save(ctx context.Context, role *model.AdminRole) error
	Delete(ctx context.Context, role *model.AdminRole) error
	FindByIdent(ctx context.Context, raw string) (*model.AdminRole, error)
	FindByName(ctx context.Context, name string) (*model.AdminRole, error)
	List(ctx context.Context) ([]model.AdminRole, error)
}

type AdminRoleService struct {
	repo   AdminRoleRepo
	logger *slog.Logger
}

func NewAdminRoleService(repo AdminRoleRepo, logger *slog.Logger) *AdminRoleService {
	return &AdminRoleService{repo: repo, logger: logger}
}

type AdminRoleCreate struct {
	Name        string   `json:"name" binding:"required,max=100"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

type AdminRoleUpdate struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Permissions *[]string `json:"permissions,omitempty"`
	IsActive    *bool     `json:"is_active,omitempty"`
}

type AdminRoleResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	IsSystemRole bool      `json:"is_system_role"`
	IsActive     bool      `json:"is_active"`
	Permissions  []string  `json:"permissions"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func adminRoleResponse(role *model.AdminRole) *AdminRoleResponse {
	return &AdminRoleResponse{
		ID:           ident.Canonical(role.ID),
		Name:         role.Name,
		Description:  role.Description,
		IsSystemRole: role.IsSystemRole,
		IsActive:     role.IsActive,
		Permissions:  ident.CanonicalAll(role.Permissions),
		CreatedAt:    role.CreatedAt,
		UpdatedAt:    role.UpdatedAt,
	}
}

func (s *AdminRoleService) Create(ctx context.Context, req *AdminRoleCreate) (*AdminRoleResponse, error) {
	if _, err := s.repo.FindByName(ctx, req.Name); err == nil {
		return nil, apperr.ErrDuplicateName
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	permIDs, err := normalizeIDList(req.Permissions)
	if err != nil {
		return nil, err
	}
	role := &model.AdminRole{
		Name:        req.Name,
		Description: req.Description,
		Permissions: permIDs,
		IsActive:    true,
	}
	if err := s.repo.Create(ctx, role); err != nil {
		return nil, err
	}
	s.logger.Info("admin role created", slog.String("name", role.Name))
	return adminRoleResponse(role), nil
}

func (s *AdminRoleService) Get(ctx context.Context, rawID string) (*AdminRoleResponse, error) {
	role, err := s.repo.FindByIdent(ctx, rawID)
	if err != nil {
		return nil, err
	}
	return adminRoleResponse(role), nil
}

func (s *AdminRoleService) List(ctx context.Context) ([]AdminRoleResponse, error) {
	roles, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]AdminRoleResponse, 0, len(roles))
	for i := range roles {
		out = append(out, *adminRoleResponse(&roles[i]))
	}
	return out, nil
}

func (s *AdminRoleService) Update(ctx context.Context, rawID string, req *AdminRoleUpdate) (*AdminRoleResponse, error) {
	role, err := s.repo.FindByIdent(ctx, rawID)
	if err != nil {
		return nil, err
	}
	if role.IsSystemRole {
		return nil, apperr.ErrImmutableRole
	}

	if req.Name != nil && *req.Name != role.Name {
		if _, err := s.repo.FindByName(ctx, *req.Name); err == nil {
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
	s.logger.Info("admin role updated", slog.String("name", role.Name))
	return adminRoleResponse(role), nil
}

func (s *AdminRoleService) Delete(ctx context.Context, rawID string) error {
	role, err := s.repo.FindByIdent(ctx, rawID)
	if err != nil {
		return err
	}
	if role.IsSystemRole {
		return apperr.ErrImmutableRole
	}
	// Principals referencing this role keep the dangling ID; the
	// resolver treats it as zero permissions.
	if err := s.repo.Delete(ctx, role); err != nil {
		return err
	}
	s.logger.Info("admin role deleted", slog.String("name", role.Name))
	return nil
}
