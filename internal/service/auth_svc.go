package service

import (
	"context"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/tgo/atrium/apiserver/internal/apperr"
	"github.com/tgo/atrium/apiserver/internal/model"
	"github.com/tgo/atrium/apiserver/internal/pkg/ident"
	"github.com/tgo/atrium/apiserver/internal/pkg/jwt"
)

type AuthService struct {
	dir      Directory
	resolver *Resolver
	tokens   *jwt.Manager
	logger   *slog.Logger
}

func NewAuthService(dir Directory, resolver *Resolver, tokens *jwt.Manager, logger *slog.Logger) *AuthService {
	return &AuthService{dir: dir, resolver: resolver, tokens: tokens, logger: logger}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	UserID      string   `json:"user_id"`
	Email       string   `json:"email"`
	Username    string   `json:"username"`
	FullName    string   `json:"full_name"`
	RoleIDs     []string `json:"role_ids"`
	Permissions []string `json:"permissions"`
	UserType    string   `json:"user_type"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type ProfileResponse struct {
	UserID          string   `json:"user_id"`
	Email           string   `json:"email"`
	Username        string   `json:"username"`
	FullName        string   `json:"full_name"`
	UserType        string   `json:"user_type"`
	IsActive        bool     `json:"is_active"`
	RoleIDs         []string `json:"role_ids"`
	Permissions     []string `json:"permissions"`
	PermissionNames []string `json:"permission_names"`
}

// Login verifies credentials and issues a token. The external error is
// uniform across unknown email, inactive account and wrong password so
// the endpoint cannot be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	principal, err := s.dir.FindPrincipalByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Warn("login failed: principal not found", slog.String("email", req.Email))
		return nil, apperr.ErrInvalidCredentials
	}
	if !principal.Activated() {
		s.logger.Warn("login failed: principal inactive", slog.String("email", req.Email))
		return nil, apperr.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(principal.PasswordDigest()), []byte(req.Password)); err != nil {
		s.logger.Warn("login failed: password mismatch", slog.String("email", req.Email))
		return nil, apperr.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(principal.PrincipalEmail(), principal.PrincipalKind())
	if err != nil {
		return nil, err
	}

	effective, err := s.resolver.Resolve(ctx, principal)
	if err != nil {
		return nil, err
	}

	s.logger.Info("login succeeded", slog.String("email", req.Email), slog.String("kind", principal.PrincipalKind()))
	return &LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		UserID:      ident.Canonical(principal.PrincipalID()),
		Email:       principal.PrincipalEmail(),
		Username:    principal.PrincipalUsername(),
		FullName:    principal.PrincipalFullName(),
		RoleIDs:     ident.CanonicalAll(principal.AssignedRoleIDs()),
		Permissions: ident.CanonicalAll(effective),
		UserType:    principal.PrincipalKind(),
	}, nil
}

// Authenticate reconstitutes the principal behind a bearer token. The
// token carries identity only; the principal and its authorization
// state are re-fetched fresh from storage on every request.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (model.Principal, error) {
	claims, err := s.tokens.Validate(tokenString)
	if err != nil {
		s.logger.Warn("token rejected", slog.Any("error", err))
		return nil, apperr.ErrUnauthenticated
	}
	if claims.Subject == "" {
		return nil, apperr.ErrUnauthenticated
	}

	principal, err := s.dir.FindPrincipalByEmail(ctx, claims.Subject)
	if err != nil {
		s.logger.Warn("token subject no longer exists", slog.String("email", claims.Subject))
		return nil, apperr.ErrUnauthenticated
	}
	if !principal.Activated() {
		s.logger.Warn("token subject is inactive", slog.String("email", claims.Subject))
		return nil, apperr.ErrUnauthenticated
	}
	return principal, nil
}

// Refresh issues a new token for an already-authenticated principal.
func (s *AuthService) Refresh(ctx context.Context, principal model.Principal) (*TokenResponse, error) {
	token, err := s.tokens.Generate(principal.PrincipalEmail(), principal.PrincipalKind())
	if err != nil {
		return nil, err
	}
	return &TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// ChangePassword re-verifies the current password before committing the
// new digest.
func (s *AuthService) ChangePassword(ctx context.Context, principal model.Principal, currentPassword, newPassword string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(principal.PasswordDigest()), []byte(currentPassword)); err != nil {
		return apperr.ErrInvalidCredentials
	}
	digest, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.dir.UpdatePassword(ctx, principal, digest); err != nil {
		return err
	}
	s.logger.Info("password changed", slog.String("email", principal.PrincipalEmail()))
	return nil
}

// Profile builds the /auth/me projection.
func (s *AuthService) Profile(ctx context.Context, principal model.Principal) (*ProfileResponse, error) {
	effective, err := s.resolver.Resolve(ctx, principal)
	if err != nil {
		return nil, err
	}
	names, err := s.resolver.ResolveNames(ctx, principal)
	if err != nil {
		return nil, err
	}
	return &ProfileResponse{
		UserID:          ident.Canonical(principal.PrincipalID()),
		Email:           principal.PrincipalEmail(),
		Username:        principal.PrincipalUsername(),
		FullName:        principal.PrincipalFullName(),
		UserType:        principal.PrincipalKind(),
		IsActive:        principal.Activated(),
		RoleIDs:         ident.CanonicalAll(principal.AssignedRoleIDs()),
		Permissions:     ident.CanonicalAll(effective),
		PermissionNames: names,
	}, nil
}

// HashPassword produces a bcrypt digest.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}
