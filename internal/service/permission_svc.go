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

type PermissionRepo interface {
	Create(ctx context.Context, perm *model.Permission) error
	Save(ctx context.Context, perm *model.Permission) error
	Delete(ctx context.Context, perm *model.Permission) error
	FindByIdent(ctx context.Context, raw string) (*model.Permission, error)
	FindByName(ctx context.Context, name string) (*model.Permission, error)
	List(ctx context.Context) ([]model.Permission, error)
	ListByResource(ctx context.Context, resource string) ([]model.Permission, error)
}

type PermissionService struct {
	repo   PermissionRepo
	logger *slog.Logger
}

func NewPermissionService(repo PermissionRepo, logger *slog.Logger) *PermissionService {
	return &PermissionService{repo: repo, logger: logger}
}

type PermissionCreate struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
	Resource    string `json:"resource" binding:"required,max=100"`
	Action      string `json:"action" binding:"required,max=100"`
}

type PermissionUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Resource    *string `json:"resource,omitempty"`
	Action      *string `json:"action,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type PermissionResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Resource    string    `json:"resource"`
	Action      string    `json:"action"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func permissionResponse(perm *model.Permission) *PermissionResponse {
	return &PermissionResponse{
		ID:          ident.Canonical(perm.ID),
		Name:        perm.Name,
		Description: perm.Description,
		Resource:    perm.Resource,
		Action:      perm.Action,
		IsActive:    perm.IsActive,
		CreatedAt:   perm.CreatedAt,
		UpdatedAt:   perm.UpdatedAt,
	}
}

func (s *PermissionService) Create(ctx context.Context, req *PermissionCreate) (*PermissionResponse, error) {
	if _, err := s.repo.FindByName(ctx, req.Name); err == nil {
		return nil, apperr.ErrDuplicateName
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	perm := &model.Permission{
		Name:        req.Name,
		Description: req.Description,
		Resource:    req.Resource,
		Action:      req.Action,
		IsActive:    true,
	}
	if err := s.repo.Create(ctx, perm); err != nil {
		return nil, err
	}
	s.logger.Info("permission created", slog.String("name", perm.Name))
	return permissionResponse(perm), nil
}

func (s *PermissionService) Get(ctx context.Context, rawID string) (*PermissionResponse, error) {
	perm, err := s.repo.FindByIdent(ctx, rawID)
	if err != nil {
		return nil, err
	}
	return permissionResponse(perm), nil
}

func (s *PermissionService) List(ctx context.Context, resource string) ([]PermissionResponse, error) {
	var perms []model.Permission
	var err error
	if resource != "" {
		perms, err = s.repo.ListByResource(ctx, resource)
	} else {
		perms, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	out := make([]PermissionResponse, 0, len(perms))
	for i := range perms {
		out = append(out, *permissionResponse(&perms[i]))
	}
	return out, nil
}

func (s *PermissionService) Update(ctx context.Context, rawID string, req *PermissionUpdate) (*PermissionResponse, error) {
	perm, err := s.repo.FindByIdent(ctx, rawID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != perm.Name {
		if _, err := s.repo.FindByName(ctx, *req.Name); err == nil {
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
	s.logger.Info("permission updated", slog.String("name", perm.Name))
	return permissionResponse(perm), nil
}

func (s *PermissionService) Delete(ctx context.Context, rawID string) error {
	perm, err := s.repo.FindByIdent(ctx, rawID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, perm); err != nil {
		return err
	}
	s.logger.Info("permission deleted", slog.String("name", perm.Name))
	return nil
}
