// Package services contains the application services: account and session
// management, the product catalog, and report aggregation. Services own the
// business rules; repositories only move rows.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/darazkeeper/internal/common"
	"github.com/dmitrijs2005/darazkeeper/internal/dbx"
	"github.com/dmitrijs2005/darazkeeper/internal/models"
	"github.com/dmitrijs2005/darazkeeper/internal/repositories/session"
	"github.com/dmitrijs2005/darazkeeper/internal/repositories/users"
	"github.com/google/uuid"
)

// AuthService defines account and session operations.
//
// Contract:
//   - Signup: create an account; does NOT establish a session.
//   - Login: verify credentials exactly and store a full user copy as the session.
//   - Logout: clear the session; idempotent.
//   - CurrentUser: the session copy, or nil when nobody is logged in.
//   - UpdateUser: replace a stored account and refresh the session copy in the
//     same transaction when it belongs to the same user.
type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) (*models.User, error)
}

// SignupInput carries the fields of a new account.
type SignupInput struct {
	FirstName      string
	LastName       string
	Email          string
	Password       string
	DarazStoreLink string
}

type authService struct {
	db    *sql.DB
	delay time.Duration
}

// NewAuthService constructs an AuthService over the given database. The delay
// is the artificial latency applied before each operation (zero disables it).
func NewAuthService(db *sql.DB, delay time.Duration) AuthService {
	return &authService{db: db, delay: delay}
}

func (a *authService) usersRepo(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

func (a *authService) sessionRepo(db dbx.DBTX) session.Repository {
	return session.NewSQLiteRepository(db)
}

// Signup creates a new account. The email must not be taken: the comparison
// is an exact, case-sensitive match, so "A@b.com" and "a@b.com" are distinct.
func (a *authService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	if err := wait(ctx, a.delay); err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", common.ErrorValidation)
	}

	repo := a.usersRepo(a.db)

	_, err := repo.GetByEmail(ctx, in.Email)
	if err == nil {
		return nil, common.ErrorEmailAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error checking email: %w", err)
	}

	user := &models.User{
		ID:             uuid.NewString(),
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		Password:       in.Password,
		DarazStoreLink: in.DarazStoreLink,
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return user, nil
}

// Login verifies email and password against the stored record byte for byte
// and, on success, writes a full copy of the user into the session. The check
// and the session write run in one transaction, so a failed login never
// leaves a half-written session behind.
func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if err := wait(ctx, a.delay); err != nil {
		return nil, err
	}

	var user *models.User
	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		u, err := a.usersRepo(tx).GetByCredentials(ctx, email, password)
		if err != nil {
			return err
		}
		if err := a.sessionRepo(tx).Set(ctx, u); err != nil {
			return fmt.Errorf("error saving session: %w", err)
		}
		user = u
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, fmt.Errorf("error logging in: %w", err)
	}
	return user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := wait(ctx, a.delay); err != nil {
		return err
	}
	return a.sessionRepo(a.db).Clear(ctx)
}

// CurrentUser restores the authenticated user from the session. A missing
// session is not an error: (nil, nil) means nobody is logged in.
func (a *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	user, err := a.sessionRepo(a.db).Get(ctx)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// UpdateUser replaces the stored record entirely with the given value. When
// the session holds the same user, the session copy is refreshed in the same
// transaction, so a reload sees the update immediately. An unknown ID is
// silently dropped and the input returned unchanged; callers must not rely
// on that round trip meaning the write happened.
func (a *authService) UpdateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if err := wait(ctx, a.delay); err != nil {
		return nil, err
	}

	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		replaced, err := a.usersRepo(tx).Update(ctx, user)
		if err != nil {
			return err
		}
		if !replaced {
			return nil
		}

		sessRepo := a.sessionRepo(tx)
		current, err := sessRepo.Get(ctx)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return nil
			}
			return err
		}
		if current.ID == user.ID {
			return sessRepo.Set(ctx, user)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error updating user: %w", err)
	}
	return user, nil
}
