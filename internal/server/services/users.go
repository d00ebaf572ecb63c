// Package services contains the application services sitting between the
// HTTP layer and the repositories.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/newsgate/internal/common"
	"github.com/dmitrijs2005/newsgate/internal/cryptox"
	"github.com/dmitrijs2005/newsgate/internal/dbx"
	"github.com/dmitrijs2005/newsgate/internal/server/auth"
	"github.com/dmitrijs2005/newsgate/internal/server/config"
	"github.com/dmitrijs2005/newsgate/internal/server/models"
	"github.com/dmitrijs2005/newsgate/internal/server/repositories/repomanager"
)

// UserService implements sign-up and sign-in.
type UserService struct {
	db                 *sql.DB
	repomanager        repomanager.RepositoryManager
	jwtSecret          []byte
	sessionValidity    time.Duration
	keepSignedValidity time.Duration
	hashParams         cryptox.Params
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                 db,
		repomanager:        m,
		jwtSecret:          []byte(cfg.SecretKey),
		sessionValidity:    cfg.SessionValidityDuration,
		keepSignedValidity: cfg.KeepSignedValidityDuration,
		hashParams:         cryptox.DefaultParams(),
	}
}

func validRole(role string) bool {
	return role == models.RoleUser || role == models.RoleAdmin
}

// Register creates an account with a freshly derived credential. All four
// fields are required; a taken email yields common.ErrEmailExists. The
// existence pre-check and the insert run in one transaction, with the
// unique constraint on email as the final arbiter against concurrent
// sign-ups. Registering does not sign the user in.
func (s *UserService) Register(ctx context.Context, name, email, password, role string) (*models.User, error) {

	if name == "" || email == "" || password == "" || role == "" || !validRole(role) {
		return nil, common.ErrorMissingRequired
	}

	stored, err := cryptox.HashPassword(password, s.hashParams)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: stored,
		Role:     role,
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		exists, err := repo.ExistsByEmail(ctx, email)
		if err != nil {
			return err
		}
		if exists {
			return common.ErrEmailExists
		}

		user, err = repo.Create(ctx, user)
		return err
	})

	if err != nil {
		if errors.Is(err, common.ErrEmailExists) {
			return nil, common.ErrEmailExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and issues a session token whose validity
// depends on the keepSigned flag. Unknown email and wrong password are
// indistinguishable to the caller: both return common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string, keepSigned bool) (string, *models.User, error) {

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil, common.ErrorUnauthorized
		}
		return "", nil, common.ErrorInternal
	}

	if !cryptox.VerifyPassword(password, user.Password) {
		return "", nil, common.ErrorUnauthorized
	}

	validity := s.sessionValidity
	if keepSigned {
		validity = s.keepSignedValidity
	}

	token, err := auth.IssueToken(user.ID, user.Role, keepSigned, s.jwtSecret, validity)
	if err != nil {
		return "", nil, common.ErrorInternal
	}

	return token, user, nil
}
