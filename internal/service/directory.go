package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tgo/atrium/apiserver/internal/apperr"
	"github.com/tgo/atrium/apiserver/internal/model"
)

// Directory is the identity store contract the authentication pipeline
// consumes: find a principal by email across every credentialed family,
// and persist a new password digest.
type Directory interface {
	FindPrincipalByEmail(ctx context.Context, email string) (model.Principal, error)
	UpdatePassword(ctx context.Context, principal model.Principal, digest string) error
}

type AdminUserStore interface {
	FindByEmail(ctx context.Context, email string) (*model.AdminUser, error)
	Save(ctx context.Context, user *model.AdminUser) error
}

type EnterpriseAdminStore interface {
	FindByEmail(ctx context.Context, email string) (*model.EnterpriseAdmin, error)
	Save(ctx context.Context, admin *model.EnterpriseAdmin) error
}

type EnterpriseUserStore interface {
	FindByEmail(ctx context.Context, email string) (*model.EnterpriseUser, error)
	Save(ctx context.Context, user *model.EnterpriseUser) error
}

type directory struct {
	admins     AdminUserStore
	entAdmins  EnterpriseAdminStore
	entUsers   EnterpriseUserStore
}

func NewDirectory(admins AdminUserStore, entAdmins EnterpriseAdminStore, entUsers EnterpriseUserStore) Directory {
	return &directory{admins: admins, entAdmins: entAdmins, entUsers: entUsers}
}

// FindPrincipalByEmail checks platform admins first, then enterprise
// admins, then enterprise users. Emails are unique within each family.
func (d *directory) FindPrincipalByEmail(ctx context.Context, email string) (model.Principal, error) {
	if user, err := d.admins.FindByEmail(ctx, email); err == nil {
		return user, nil
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	if admin, err := d.entAdmins.FindByEmail(ctx, email); err == nil {
		return admin, nil
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	if user, err := d.entUsers.FindByEmail(ctx, email); err == nil {
		return user, nil
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	return nil, apperr.ErrNotFound
}

func (d *directory) UpdatePassword(ctx context.Context, principal model.Principal, digest string) error {
	switch p := principal.(type) {
	case *model.AdminUser:
		p.Password = digest
		return d.admins.Save(ctx, p)
	case *model.EnterpriseAdmin:
		p.Password = digest
		return d.entAdmins.Save(ctx, p)
	case *model.EnterpriseUser:
		p.Password = digest
		return d.entUsers.Save(ctx, p)
	default:
		return fmt.Errorf("unsupported principal type %T", principal)
	}
}
