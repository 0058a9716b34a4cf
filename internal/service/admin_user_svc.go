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

// AdminUserRepo is the storage port for platform admin accounts.
type AdminUserRepo interface {
	Create(ctx context.Context, user *model.AdminUser) error
	Save(ctx context.Context, user *model.AdminUser) error
	Delete(ctx context.Context, user *model.AdminUser) error
	FindByIdent(ctx context.Context, raw string) (*model.AdminUser, error)
	FindByEmail(ctx context.Context, email string) (*model.AdminUser, error)
	FindByUsername(ctx context.Context, username string) (*model.AdminUser, error)
	List(ctx context.Context) ([]model.AdminUser, error)
}

type AdminUserService struct {
	repo     AdminUserRepo
	resolver *Resolver
	logger   *slog.Logger
}

func NewAdminUserService(repo AdminUserRepo, resolver *Resolver, logger *slog.Logger) *AdminUserService {
	return &AdminUserService{repo: repo, resolver: resolver, logger: logger}
}

type AdminUserCreate struct {
	Email       string   `json:"email" binding:"required,email"`
	Username    string   `json:"username" binding:"required"`
	FullName    string   `json:"full_name" binding:"required"`
	Password    string   `json:"password" binding:"required,min=8"`
	RoleIDs     []string `json:"role_ids"`
	Permissions []string `json:"permissions"`
}

// AdminUserUpdate merges explicitly, field by field. Only fields present
// in the payload change; there is no reflective attribute copying.
type AdminUserUpdate struct {
	Email       *string   `json:"email,omitempty" binding:"omitempty,email"`
	Username    *string   `json:"username,omitempty"`
	FullName    *string   `json:"full_name,omitempty"`
	Password    *string   `json:"password,omitempty" binding:"omitempty,min=8"`
	RoleIDs     *[]string `json:"role_ids,omitempty"`
	Permissions *[]string `json:"permissions,omitempty"`
	IsActive    *bool     `json:"is_active,omitempty"`
}

type AdminUserResponse struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Username        string    `json:"username"`
	FullName        string    `json:"full_name"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	RoleIDs         []string  `json:"role_ids"`
	Permissions     []string  `json:"permissions"`
	PermissionNames []string  `json:"permission_names"`
}

func (s *AdminUserService) response(ctx context.Context, user *model.AdminUser) (*AdminUserResponse, error) {
	effective, err := s.resolver.Resolve(ctx, user)
	if err != nil {
		return nil, err
	}
	names, err := s.resolver.ResolveNames(ctx, user)
	if err != nil {
		return nil, err
	}
	return &AdminUserResponse{
		ID:              ident.Canonical(user.ID),
		Email:           user.Email,
		Username:        user.Username,
		FullName:        user.FullName,
		IsActive:        user.IsActive,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
		RoleIDs:         ident.CanonicalAll(user.RoleIDs),
		Permissions:     ident.CanonicalAll(effective),
		PermissionNames: names,
	}, nil
}

func (s *AdminUserService) Create(ctx context.Context, req *AdminUserCreate) (*AdminUserResponse, error) {
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

	user := &model.AdminUser{
		Email:       req.Email,
		Username:    req.Username,
		FullName:    req.FullName,
		Password:    digest,
		RoleIDs:     roleIDs,
		Permissions: permIDs,
		IsActive:    true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("admin user created", slog.String("email", user.Email))
	return s.response(ctx, user)
}

func (s *AdminUserService) Get(ctx context.Context, rawID string) (*AdminUserResponse, error) {
	user, err := s.repo.FindByIdent(ctx, rawID)
	if err != nil {
		return nil, err
	}
	return s.response(ctx, user)
}

func (s *AdminUserService) List(ctx context.Context) ([]AdminUserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]AdminUserResponse, 0, len(users))
	for i := range users {
		resp, err := s.response(ctx, &users[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

func (s *AdminUserService) Update(ctx context.Context, rawID string, req *AdminUserUpdate) (*AdminUserResponse, error) {
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
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("admin user updated", slog.String("email", user.Email))
	return s.response(ctx, user)
}

func (s *AdminUserService) Delete(ctx context.Context, rawID string) error {
	user, err := s.repo.FindByIdent(ctx, rawID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, user); err != nil {
		return err
	}
	s.logger.Info("admin user deleted", slog.String("email", user.Email))
	return nil
}

func (s *AdminUserService) SetActive(ctx context.Context, rawID string, active bool) (*AdminUserResponse, error) {
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
