package service

import (
	"context"
	"errors"
	"strings"

	"github.com/PremjitDas/Task-Management-App/internal/apperror"
	dom "github.com/PremjitDas/Task-Management-App/internal/domain"
	"github.com/PremjitDas/Task-Management-App/internal/repo"
	"github.com/PremjitDas/Task-Management-App/internal/token"
	"github.com/PremjitDas/Task-Management-App/internal/utils"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles registration and login.
type UserService struct {
	repo   repo.UserRepo
	tokens *token.Codec
}

// NewUserService returns a new UserService.
func NewUserService(repo repo.UserRepo, tokens *token.Codec) *UserService {
	return &UserService{repo: repo, tokens: tokens}
}

// Register creates a new user with a hashed password and returns it.
// Duplicate username or email is a Conflict. The password is hashed as
// given; trimming is only for the blank-check, so whatever string the
// user registered with is the string that logs them in.
func (s *UserService) Register(ctx context.Context, username, email, password string) (dom.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || strings.TrimSpace(password) == "" {
		return dom.User{}, apperror.NewValidation("all fields are required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return dom.User{}, apperror.NewUnexpected("registration failed", err)
	}
	u, err := s.repo.Create(ctx, username, email, string(hash))
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.User{}, apperror.NewConflict("user already exists")
		}
		return dom.User{}, apperror.NewUnexpected("registration failed", err)
	}
	return u, nil
}

// Login verifies the credentials and issues a session token.
// Unknown email and wrong password stay separate kinds on purpose: the
// original contract already exposes them as distinct responses.
func (s *UserService) Login(ctx context.Context, email, password string) (dom.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return dom.User{}, "", apperror.NewValidation("email is required")
	}
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, "", apperror.NewNotFound("user does not exist")
		}
		return dom.User{}, "", apperror.NewUnexpected("login failed", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return dom.User{}, "", apperror.NewAuthentication("invalid user credentials", nil)
	}
	signed, err := s.tokens.Issue(u.ID)
	if err != nil {
		return dom.User{}, "", apperror.NewUnexpected("login failed", err)
	}
	return u, signed, nil
}
