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

type EnterpriseAdminRepo interface {
	Create(ctx context.Context, admin *model.EnterpriseAdmin) error
	Save(ctx context.Context, admin *model.EnterpriseAdmin) error
	Delete(ctx context.Context, admin *model.EnterpriseAdmin) error
	FindByIdent(ctx context.Context, raw string) (*model.EnterpriseAdmin, error)
	FindByEmail(ctx context.Context, email string) (*model.EnterpriseAdmin, error)
	FindByUsername(ctx context.Context, username string) (*model.EnterpriseAdmin, error)
	List(ctx context.Context) ([]model.EnterpriseAdmin, error)
	ListByTenant(ctx context.Context, tenantID string) ([]model.EnterpriseAdmin, error)
}

type EnterpriseAdminService struct {
	repo     EnterpriseAdminRepo
	tenants  TenantLookup
	resolver *Resolver
	logger   *slog.Logger
}

func NewEnterpriseAdminService(repo EnterpriseAdminRepo, tenants TenantLookup, resolver *Resolver, logger *slog.Logger) *EnterpriseAdminService {
	return &EnterpriseAdminService{repo: repo, tenants: tenants, resolver: resolver, logger: logger}
}

type EnterpriseAdminCreate struct {
	Email              string   `json:"email" binding:"required,email"`
	Username           string   `json:"username" binding:"required"`
	FullName           string   `json:"full_name" binding:"required"`
	Password           string   `json:"password" binding:"required,min=8"`
	EnterpriseClientID string   `json:"enterprise_client_id" binding:"required"`
	RoleIDs            []string `json:"role_ids"`
	Permissions        []string `json:"permissions"`
}

type EnterpriseAdminUpdate struct {
	Email       *string   `json:"email,omitempty" binding:"omitempty,email"`
	Username    *string   `json:"username,omitempty"`
	FullName    *string   `json:"full_name,omitempty"`
	Password    *string   `json:"password,omitempty" binding:"omitempty,min=8"`
	RoleIDs     *[]string `json:"role_ids,omitempty"`
	Permissions *[]string `json:"permissions,omitempty"`
	IsActive    *bool     `json:"is_active,omitempty"`
}

type EnterpriseAdminResponse struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	Username           string    `json:"username"`
	FullName           string    `json:"full_name"`
	EnterpriseClientID string    `json:"enterprise_client_id"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	RoleIDs            []string  `json:"role_ids"`
	Permissions        []string  `json:"permissions"`
	PermissionNames    []string  `json:"permission_names"`
}

func (s *EnterpriseAdminService) response(ctx context.Context, admin *model.EnterpriseAdmin) (*EnterpriseAdminResponse, error) {
	effective, err := s.resolver.Resolve(ctx, admin)
	if err != nil {
		return nil, err
	}
	names, err := s.resolver.ResolveNames(ctx, admin)
	if err != nil {
		return nil, err
	}
	return &EnterpriseAdminResponse{
		ID:                 ident.Canonical(admin.ID),
		Email:              admin.Email,
		Username:           admin.Username,
		FullName:           admin.FullName,
		EnterpriseClientID: ident.Canonical(admin.EnterpriseClientID),
		IsActive:           admin.IsActive,
		CreatedAt:          admin.CreatedAt,
		UpdatedAt:          admin.UpdatedAt,
		RoleIDs:            ident.CanonicalAll(admin.RoleIDs),
		Permissions:        ident.CanonicalAll(effective),
		PermissionNames:    names,
	}, nil
}

func (s *EnterpriseAdminService) Create(ctx context.Context, req *EnterpriseAdminCreate) (*EnterpriseAdminResponse, error) {
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

	admin := &model.EnterpriseAdmin{
		Email:              req.Email,
		Username:           req.Username,
		FullName:           req.FullName,
		Password:           digest,
		RoleIDs:            roleIDs,
		Permissions:        permIDs,
		IsActive:           true,
		EnterpriseClientID: tenantID,
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		return nil, err
	}
	s.logger.Info("enterprise admin created",
		slog.String("email", admin.Email),
		slog.String("tenant", admin.EnterpriseClientID))
	return s.response(ctx, admin)
}

func (s *EnterpriseAdminService) Get(ctx context.Context, rawID string) (*EnterpriseAdminResponse, error) {
	admin, err := s.repo.FindByIdent(ctx, rawID)
	if err != nil {
		return nil, err
	}
	return s.response(ctx, admin)
}

// List returns all enterprise admins, optionally scoped to one tenant.
func (s *EnterpriseAdminService) List(ctx context.Context, rawTenantID string) ([]EnterpriseAdminResponse, error) {
	var (
		admins []model.EnterpriseAdmin
		err    error
	)
	if rawTenantID != "" {
		tenantID, nerr := ident.Normalize(rawTenantID)
		if nerr != nil {
			return nil, nerr
		}
		admins, err = s.repo.ListByTenant(ctx, tenantID)
	} else {
		admins, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	out := make([]EnterpriseAdminResponse, 0, len(admins))
	for i := range admins {
		resp, err := s.response(ctx, &admins[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

func (s *EnterpriseAdminService) Update(ctx context.Context, rawID string, req *EnterpriseAdminUpdate) (*EnterpriseAdminResponse, error) {
	admin, err := s.repo.FindByIdent(ctx, rawID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != admin.Email {
		if _, err := s.repo.FindByEmail(ctx, *req.Email); err == nil {
			return nil, apperr.ErrDuplicateIdentity
		} else if !errors.Is(err, apperr.ErrNotFound) {
			return nil, err
		}
		admin.Email = *req.Email
	}
	if req.Username != nil && *req.Username != admin.Username {
		if _, err := s.repo.FindByUsername(ctx, *req.Username); err == nil {
			return nil, apperr.ErrDuplicateIdentity
		} else if !errors.Is(err, apperr.ErrNotFound) {
			return nil, err
		}
		admin.Username = *req.Username
	}
	if req.FullName != nil {
		admin.FullName = *req.FullName
	}
	if req.Password != nil && *req.Password != "" {
		digest, err := HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		admin.Password = digest
	}
	if req.RoleIDs != nil {
		roleIDs, err := normalizeIDList(*req.RoleIDs)
		if err != nil {
			return nil, err
		}
		admin.RoleIDs = roleIDs
	}
	if req.Permissions != nil {
		permIDs, err := normalizeIDList(*req.Permissions)
		if err != nil {
			return nil, err
		}
		admin.Permissions = permIDs
	}
	if req.IsActive != nil {
		admin.IsActive = *req.IsActive
	}

	if err := s.repo.Save(ctx, admin); err != nil {
		return nil, err
	}
	s.logger.Info("enterprise admin updated", slog.String("email", admin.Email))
	return s.response(ctx, admin)
}

func (s *EnterpriseAdminService) Delete(ctx context.Context, rawID string) error {
	admin, err := s.repo.FindByIdent(ctx, rawID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, admin); err != nil {
		return err
	}
	s.logger.Info("enterprise admin deleted", slog.String("email", admin.Email))
	return nil
}

func (s *EnterpriseAdminService) SetActive(ctx context.Context, rawID string, active bool) (*EnterpriseAdminResponse, error) {
	admin, err := s.repo.FindByIdent(ctx, rawID)
	if err != nil {
		return nil, err
	}
	admin.IsActive = active
	if err := s.repo.Save(ctx, admin); err != nil {
		return nil, err
	}
	return s.response(ctx, admin)
}
