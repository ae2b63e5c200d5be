package application

import (
	"context"
	"errors"
	"expvar"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/domain/entity"
	repo "github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/domain/repository"
	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)

// UserType is the record type the API reports for accounts.
const UserType = "users"

var (
	accountsCreated = expvar.NewInt("accounts_created")
	sessionsIssued  = expvar.NewInt("sessions_issued")
)

// AccountService backs the reference session API: it owns account creation
// and session issuance on the server side of the contract.
type AccountService struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAccountService(repo repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AccountService {
	return &AccountService{Repo: repo, JWT: jwt, Logger: logger}
}

// CreateAccount stores a new user with a bcrypt-hashed password.
func (s *AccountService) CreateAccount(ctx context.Context, email, password string) (*entity.User, error) {
	if existing, err := s.Repo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	}
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Email: email, Type: UserType, Password: hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		if s.Logger != nil {
			s.Logger.WithError(err).Error("create user failed")
		}
		return nil, err
	}
	accountsCreated.Add(1)
	return u, nil
}

// Authenticate validates email/password and returns the stored user.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// OpenSession authenticates and issues a signed session token.
func (s *AccountService) OpenSession(ctx context.Context, email, password string) (*entity.Session, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	token, _, err := s.JWT.GenerateSessionToken(u.ID, uuid.NewString())
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate session token failed")
		}
		return nil, err
	}
	sessionsIssued.Add(1)
	return &entity.Session{Token: token}, nil
}
