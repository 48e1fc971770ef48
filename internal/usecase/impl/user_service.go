package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"drivematch/internal/domain/entity"
	domainerrors "drivematch/internal/domain/errors"
	"drivematch/internal/domain/repository"
	"drivematch/internal/domain/service"
	"drivematch/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for the user service, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

// Register creates a new account. The password is stored only as a bcrypt
// hash and the SSN only as its last four digits.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.logger.Info("Starting registration", slog.String("email", input.Email))

	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to look up email during registration")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.UserAccount{
		Name:         input.Name,
		Email:        input.Email,
		PhoneNumber:  input.PhoneNumber,
		PasswordHash: passwordHash,
		SSNLast4:     ssnLast4(input.SSN),
		CreatedAt:    time.Now().UTC(),
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		// A concurrent registration can slip past the lookup; the unique
		// index is the source of truth.
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	srv.logger.Debug("Registration completed", slog.String("userID", user.ID))

	return &usecase.RegisterOutput{User: user}, nil
}

// Login looks up the account by exact email+phone match. There is no password
// challenge on this endpoint; a mismatch on either field is unauthorized.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmailAndPhone(ctx, input.Email, input.PhoneNumber)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Warn("Login failed", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "no account matches email and phone")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to look up account during login")
	}

	return &usecase.LoginOutput{User: user}, nil
}

// ssnLast4 keeps only the last four digits of the submitted SSN.
func ssnLast4(ssn string) string {
	var digits strings.Builder
	for _, r := range ssn {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	s := digits.String()
	if len(s) <= 4 {
		return s
	}

	return s[len(s)-4:]
}
