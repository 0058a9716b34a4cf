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

type EnterpriseUserRepo interface {
	Create(ctx context.Context, user *model.EnterpriseUser) error
	Save(ctx context.Context, user *model.EnterpriseUser) error
	Delete(ctx context.Context, user *model.EnterpriseUser) error
	FindByIdent(ctx context.Context, raw string) (*model.EnterpriseUser, error)
	FindByEmail(ctx context.Context, email string) (*model.EnterpriseUser, error)
	FindByUsername(ctx context.Context, username string) (*model.EnterpriseUser, error)
	List(ctx context.Context) ([]model.EnterpriseUser, error)
	ListByTenant(ctx context.Context, tenantID string) ([]model.EnterpriseUser, error)
}

type EnterpriseUserService struct {
	repo     EnterpriseUserRepo
	tenants  TenantLookup
	resolver *Resolver
	logger   *slog.Logger
}

func NewEnterpriseUserService(repo EnterpriseUserRepo, tenants TenantLookup, resolver *Resolver, logger *slog.Logger) *EnterpriseUserService {
	return &EnterpriseUserService{repo: repo, tenants: tenants, resolver: resolver, logger: logger}
}

type EnterpriseUserCreate struct {
	Email              string                 `json:"email" binding:"required,email"`
	Username           string                 `json:"username" binding:"required"`
	FullName           string                 `json:"full_name" binding:"required"`
	Password           string                 `json:"password" binding:"required,min=8"`
	UserType           string                 `json:"user_type"`
	Department         string                 `json:"department"`
	Position           string                 `json:"position"`
	Phone              string                 `json:"phone"`
	EnterpriseClientID string                 `json:"enterprise_client_id" binding:"required"`
	RoleIDs            []string               `json:"role_ids"`
	Permissions        []string               `json:"permissions"`
	Settings           map[string]interface{} `json:"settings"`
}

type EnterpriseUserUpdate struct {
	Email       *string                 `json:"email,omitempty" binding:"omitempty,email"`
	Username    *string                 `json:"username,omitempty"`
	FullName    *string                 `json:"full_name,omitempty"`
	Password    *string                 `json:"password,omitempty" binding:"omitempty,min=8"`
	UserType    *string                 `json:"user_type,omitempty"`
	Department  *string                 `json:"department,omitempty"`
	Position    *string                 `json:"position,omitempty"`
	Phone       *string                 `json:"phone,omitempty"`
	RoleIDs     *[]string               `json:"role_ids,omitempty"`
	Permissions *[]string               `json:"permissions,omitempty"`
	Settings    *map[string]interface{} `json:"settings,omitempty"`
	IsActive    *bool                   `json:"is_active,omitempty"`
}

type EnterpriseUserResponse struct {
	ID                 string                 `json:"id"`
	Email              string                 `json:"email"`
	Username           string                 `json:"username"`
	FullName           string                 `json:"full_name"`
	UserType           string                 `json:"user_type"`
	Department         string                 `json:"department,omitempty"`
	Position           string                 `json:"position,omitempty"`
	Phone              string                 `json:"phone,omitempty"`
	EnterpriseClientID string                 `json:"enterprise_client_id"`
	Settings           map[string]interface{} `json:"settings,omitempty"`
	IsActive           bool                   `json:"is_active"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
	RoleIDs            []string               `json:"role_ids"`
	Permissions        []string               `json:"permissions"`
	PermissionNames    []string               `json:"permission_names"`
}

func (s *EnterpriseUserService) response(ctx context.Context, user *model.EnterpriseUser) (*EnterpriseUserResponse, error) {
	effective, err := s.resolver.Resolve(ctx, user)
	if err != nil {
		return nil, err
	}
	names, err := s.resolver.ResolveNames(ctx, user)
	if err != nil {
		return nil, err
	}
	return &EnterpriseUserResponse{
		ID:                 ident.Canonical(user.ID),
		Email:              user.Email,
		Username:           user.Username,
		FullName:           user.FullName,
		UserType:           user.UserType,
		Department:         user.Department,
		Position:           user.Position,
		Phone:              user.Phone,
		EnterpriseClientID: ident.Canonical(user.EnterpriseClientID),
		Settings:           user.Settings,
		IsActive:           user.IsActive,
		CreatedAt:          user.CreatedAt,
		UpdatedAt:          user.UpdatedAt,
		RoleIDs:            ident.CanonicalAll(user.RoleIDs),
		Permissions:        ident.CanonicalAll(effective),
		PermissionNames:    names,
	}, nil
}

func (s *EnterpriseUserService) Create(ctx context.Context, req *EnterpriseUserCreate, createdBy string) (*EnterpriseUserResponse, error) {
	tenantID, err := resolveTenant(ctx, s.tenants, req.EnterpriseClientID)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, apperr.ErrDuplicateIdentity
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}
	if _, err := s.repo.FindByUsername(ctx, req.Username); err == nil {
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
	digest, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.EnterpriseUser{
		Email:              req.Email,
		Username:           req.Username,
		FullName:           req.FullName,
		UserType:           req.UserType,
		Department:         req.Department,
		Position:           req.Position,
		Phone:              req.Phone,
		Password:           digest,
		RoleIDs:            roleIDs,
		Permissions:        permIDs,
		Settings:           req.Settings,
		IsActive:           true,
		EnterpriseClientID: tenantID,
		CreatedBy:          createdBy,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("enterprise user created",
		slog.String("email", user.Email),
		slog.String("tenant", user.EnterpriseClientID))
	return s.response(ctx, user)
}

func (s *EnterpriseUserService) Get(ctx context.Context, rawID string) (*EnterpriseUserResponse, error) {
	user, err := s.repo.FindByIdent(ctx, rawID)
	if err != nil {
		return nil, err
	}
	return s.response(ctx, user)
}

func (s *EnterpriseUserService) List(ctx context.Context, rawTenantID string) ([]EnterpriseUserResponse, error) {
	var (
		users []model.EnterpriseUser
		err   error
	)
	if rawTenantID != "" {
		tenantID, nerr := ident.Normalize(rawTenantID)
		if nerr != nil {
			return nil, nerr
		}
		users, err = s.repo.ListByTenant(ctx, tenantID)
	} else {
		users, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	out := make([]EnterpriseUserResponse, 0, len(users))
	for i := range users {
		resp, err := s.response(ctx, &users[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

func (s *EnterpriseUserService) Update(ctx context.Context, rawID string, req *EnterpriseUserUpdate) (*EnterpriseUserResponse, error) {
	user, err := s.repo.FindByIdent(ctx, rawID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		if _, err := s.repo.FindByEmail(ctx, *req.Email); err == nil {
			return nil, apperr.ErrDuplicateIdentity
		} else if !errors.Is(err, apperr.ErrNotFound) {
			return nil, err
		}
		user.Email = *req.Email
	}
	if req.Username != nil && *req.Username != user.Username {
		if _, err := s.repo.FindByUsername(ctx, *req.Username); err == nil {
			return nil, apperr.ErrDuplicateIdentity
		} else if !errors.Is(err, apperr.ErrNotFound) {
			return nil, err
		}
		user.Username = *req.Username
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Password != nil && *req.Password != "" {
		digest, err := HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = digest
	}
	if req.UserType != nil {
		user.UserType = *req.UserType
	}
	if req.Department != nil {
		user.Department = *req.Department
	}
	if req.Position != nil {
		user.Position = *req.Position
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.RoleIDs != nil {
		roleIDs, err := normalizeIDList(*req.RoleIDs)
		if err != nil {
			return nil, err
		}
		user.RoleIDs = roleIDs
	}
	if req.Permissions != nil {
		permIDs, err := normalizeIDList(*req.Permissions)
		if err != nil {
			return nil, err
		}
		user.Permissions = permIDs
	}
	if req.Settings != nil {
		user.Settings = *req.Settings
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("enterprise user updated", slog.String("email", user.Email))
	return s.response(ctx, user)
}

func (s *EnterpriseUserService) Delete(ctx context.Context, rawID string) error {
	user, err := s.repo.FindByIdent(ctx, rawID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, user); err != nil {
		return err
	}
	s.logger.Info("enterprise user deleted", slog.String("email", user.Email))
	return nil
}

func (s *EnterpriseUserService) SetActive(ctx context.Context, rawID string, active bool) (*EnterpriseUserResponse, error) {
	user, err := s.repo.FindByIdent(ctx, rawID)
	if err != nil {
		return nil, err
	}
	user.IsActive = active
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}
	return s.response(ctx, user)
}
